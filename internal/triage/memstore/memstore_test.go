package memstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/linnemanlabs/intake/internal/catalog"
	"github.com/linnemanlabs/intake/internal/triage"
)

func sampleAssessment(id string, risk triage.RiskLevel, dept catalog.Department) *triage.Assessment {
	return &triage.Assessment{
		ID: id,
		Result: triage.TriageResult{
			RiskLevel:  risk,
			Department: dept,
		},
		Source: triage.SourceLocal,
	}
}

func TestStore_PutAndGet(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	a := sampleAssessment("a-1", triage.RiskLow, catalog.GeneralMedicine)
	if err := s.Put(ctx, a); err != nil {
		t.Fatalf("Put: %v", err)
	}

	got, ok, err := s.Get(ctx, "a-1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected assessment to be found")
	}
	if got.ID != "a-1" {
		t.Errorf("ID = %q, want %q", got.ID, "a-1")
	}
	if got.Result.Department != catalog.GeneralMedicine {
		t.Errorf("Department = %q, want %q", got.Result.Department, catalog.GeneralMedicine)
	}
}

func TestStore_GetMissing(t *testing.T) {
	t.Parallel()

	s := New()
	_, ok, err := s.Get(context.Background(), "nonexistent")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Fatal("expected ok=false for missing ID")
	}
}

func TestStore_PutOverwrites(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	_ = s.Put(ctx, sampleAssessment("a-3", triage.RiskLow, catalog.GeneralMedicine))

	updated := sampleAssessment("a-3", triage.RiskLow, catalog.GeneralMedicine)
	updated.Explanation = "benign presentation"
	_ = s.Put(ctx, updated)

	got, ok, err := s.Get(ctx, "a-3")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("expected assessment to be found")
	}
	if got.Explanation != "benign presentation" {
		t.Errorf("Explanation = %q, want %q", got.Explanation, "benign presentation")
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	_ = s.Put(ctx, sampleAssessment("a-c", triage.RiskLow, catalog.GeneralMedicine))

	got, _, _ := s.Get(ctx, "a-c")
	got.Explanation = "mutated"

	again, _, _ := s.Get(ctx, "a-c")
	if again.Explanation == "mutated" {
		t.Fatal("Get must return a copy, not a pointer into the store")
	}
}

func TestStore_Analytics(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	_ = s.Put(ctx, sampleAssessment("a-1", triage.RiskHigh, catalog.Cardiology))
	_ = s.Put(ctx, sampleAssessment("a-2", triage.RiskHigh, catalog.Emergency))
	_ = s.Put(ctx, sampleAssessment("a-3", triage.RiskLow, catalog.Cardiology))

	rep, err := s.Analytics(ctx)
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if rep.TotalAssessments != 3 {
		t.Errorf("TotalAssessments = %d, want 3", rep.TotalAssessments)
	}
	if rep.HighRisk != 2 {
		t.Errorf("HighRisk = %d, want 2", rep.HighRisk)
	}
	if rep.ByDepartment["Cardiology"] != 2 {
		t.Errorf("ByDepartment[Cardiology] = %d, want 2", rep.ByDepartment["Cardiology"])
	}
	if rep.ByRiskLevel["High"] != 2 {
		t.Errorf("ByRiskLevel[High] = %d, want 2", rep.ByRiskLevel["High"])
	}
}

func TestStore_AnalyticsEmpty(t *testing.T) {
	t.Parallel()

	s := New()
	rep, err := s.Analytics(context.Background())
	if err != nil {
		t.Fatalf("Analytics: %v", err)
	}
	if rep.TotalAssessments != 0 || rep.HighRisk != 0 {
		t.Errorf("empty store report = %+v, want zeroes", rep)
	}
}

func TestStore_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	s := New()
	ctx := context.Background()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n * 2)

	for i := range n {
		id := fmt.Sprintf("id-%d", i)

		go func() {
			defer wg.Done()
			_ = s.Put(ctx, sampleAssessment(id, triage.RiskLow, catalog.GeneralMedicine))
		}()

		go func() {
			defer wg.Done()
			_, _, _ = s.Get(ctx, id)
			_, _ = s.Analytics(ctx)
		}()
	}

	wg.Wait()
}
