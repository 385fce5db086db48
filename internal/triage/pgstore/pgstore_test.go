package pgstore_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/linnemanlabs/intake/internal/catalog"
	"github.com/linnemanlabs/intake/internal/postgres"
	"github.com/linnemanlabs/intake/internal/triage"
	"github.com/linnemanlabs/intake/internal/triage/pgstore"
)

func openStore(t *testing.T) *pgstore.Store {
	t.Helper()
	dsn := os.Getenv("INTAKE_TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("INTAKE_TEST_DATABASE_URL not set, skipping integration test")
	}
	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, dsn)
	if err != nil {
		t.Fatalf("postgres.NewPool: %v", err)
	}
	t.Cleanup(pool.Close)
	s, err := pgstore.New(ctx, pool)
	if err != nil {
		t.Fatalf("pgstore.New: %v", err)
	}
	return s
}

func TestPutAndGet(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	now := time.Now().Truncate(time.Microsecond).UTC()
	a := &triage.Assessment{
		ID: "test-put-get-001",
		Patient: triage.PatientData{
			Name:     "Test Patient",
			Age:      40,
			Gender:   triage.GenderMale,
			Symptoms: []string{"Chest Pain"},
			Vitals:   triage.Vitals{HeartRate: 115, Temperature: 38.2},
		},
		Result: triage.TriageResult{
			RiskLevel:        triage.RiskHigh,
			Department:       catalog.Cardiology,
			ConfidenceScore:  80,
			Recommendations:  []string{"Seek emergency medical attention immediately"},
			WaitTimePriority: 1,
		},
		Source:    triage.SourceLocal,
		CreatedAt: now,
		Duration:  0.002,
	}

	if err := s.Put(ctx, a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(ctx, a.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("Get returned ok=false, want true")
	}

	assertEqual(t, "ID", a.ID, got.ID)
	assertEqual(t, "Patient.Name", a.Patient.Name, got.Patient.Name)
	assertEqual(t, "Patient.Age", a.Patient.Age, got.Patient.Age)
	assertEqual(t, "Result.RiskLevel", string(a.Result.RiskLevel), string(got.Result.RiskLevel))
	assertEqual(t, "Result.Department", string(a.Result.Department), string(got.Result.Department))
	assertEqual(t, "Result.ConfidenceScore", a.Result.ConfidenceScore, got.Result.ConfidenceScore)
	assertEqual(t, "Result.WaitTimePriority", a.Result.WaitTimePriority, got.Result.WaitTimePriority)
	assertEqual(t, "Source", string(a.Source), string(got.Source))
	assertEqual(t, "Duration", a.Duration, got.Duration)

	if len(got.Result.Recommendations) != 1 {
		t.Errorf("Recommendations mismatch: got %v", got.Result.Recommendations)
	}
}

func TestGetMissing(t *testing.T) {
	s := openStore(t)

	_, ok, err := s.Get(context.Background(), "nonexistent-id")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("Get returned ok=true for nonexistent ID")
	}
}

func TestPutOverwritesExplanation(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	a := &triage.Assessment{
		ID: "test-explain-001",
		Result: triage.TriageResult{
			RiskLevel:        triage.RiskLow,
			Department:       catalog.GeneralMedicine,
			WaitTimePriority: 3,
		},
		Source:    triage.SourceLocal,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.Put(ctx, a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	a.Explanation = "no concerning findings"
	if err := s.Put(ctx, a); err != nil {
		t.Fatalf("Put update: %v", err)
	}

	got, ok, err := s.Get(ctx, a.ID)
	if err != nil || !ok {
		t.Fatalf("Get = %v, %v", ok, err)
	}
	if got.Explanation != a.Explanation {
		t.Errorf("Explanation = %q, want %q", got.Explanation, a.Explanation)
	}
}

func TestAnalytics(t *testing.T) {
	s := openStore(t)
	ctx := context.Background()

	put := func(id string, risk triage.RiskLevel, dept catalog.Department) {
		t.Helper()
		err := s.Put(ctx, &triage.Assessment{
			ID:        id,
			Result:    triage.TriageResult{RiskLevel: risk, Department: dept},
			Source:    triage.SourceLocal,
			CreatedAt: time.Now().UTC(),
		})
		if err != nil {
			t.Fatalf("Put %s: %v", id, err)
		}
	}
	put("test-analytics-1", triage.RiskHigh, catalog.Emergency)
	put("test-analytics-2", triage.RiskLow, catalog.GeneralMedicine)

	rep, err := s.Analytics(ctx)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if rep.TotalAssessments < 2 {
		t.Errorf("TotalAssessments = %d, want >= 2", rep.TotalAssessments)
	}
	if rep.HighRisk < 1 {
		t.Errorf("HighRisk = %d, want >= 1", rep.HighRisk)
	}
	if rep.ByDepartment["Emergency"] < 1 {
		t.Errorf("ByDepartment[Emergency] = %d, want >= 1", rep.ByDepartment["Emergency"])
	}
}

func assertEqual[T comparable](t *testing.T, field string, want, got T) {
	t.Helper()
	if got != want {
		t.Errorf("%s = %v, want %v", field, got, want)
	}
}
