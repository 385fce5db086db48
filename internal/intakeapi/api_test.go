package intakeapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/linnemanlabs/go-core/log"

	"github.com/linnemanlabs/intake/internal/hospital"
	"github.com/linnemanlabs/intake/internal/triage"
	"github.com/linnemanlabs/intake/internal/triage/memstore"
)

type fakeLocator struct {
	h   *hospital.Hospital
	err error
}

func (f *fakeLocator) Nearest(context.Context, float64, float64) (*hospital.Hospital, error) {
	return f.h, f.err
}

type fakeExplainer struct {
	text string
	err  error
}

func (f *fakeExplainer) Explain(context.Context, *triage.Assessment) (string, error) {
	return f.text, f.err
}

func newTestRouter(t *testing.T, opts ...func(*testDeps)) chi.Router {
	t.Helper()

	deps := &testDeps{
		locator: &fakeLocator{h: &hospital.Hospital{Name: "St Mary's", Lat: 51.5, Lon: -0.12, DistanceKM: 1.2}},
	}
	for _, o := range opts {
		o(deps)
	}

	svc := triage.NewService(memstore.New(), nil, deps.explainer, nil, 0, nil, nil)
	api := New(nil, svc, deps.locator)
	r := chi.NewRouter()
	api.RegisterRoutes(r)
	return r
}

type testDeps struct {
	locator   HospitalLocator
	explainer triage.Explainer
}

func withLocator(l HospitalLocator) func(*testDeps) {
	return func(d *testDeps) { d.locator = l }
}

func withExplainer(e triage.Explainer) func(*testDeps) {
	return func(d *testDeps) { d.explainer = e }
}

func doJSON(t *testing.T, r chi.Router, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

//  New / constructor

func TestNew_NilLogger(t *testing.T) {
	t.Parallel()

	svc := triage.NewService(memstore.New(), nil, nil, nil, 0, nil, nil)
	api := New(nil, svc, nil)
	if api == nil {
		t.Fatal("New(nil, svc, nil) returned nil API")
	}
	if api.logger == nil {
		t.Fatal("New(nil, svc, nil) left logger nil; expected Nop logger")
	}
}

func TestNew_WithLogger(t *testing.T) {
	t.Parallel()

	svc := triage.NewService(memstore.New(), nil, nil, nil, 0, nil, nil)
	api := New(log.Nop(), svc, nil)
	if api == nil || api.logger == nil {
		t.Fatal("New(logger, svc, nil) did not keep the logger")
	}
}

func TestNew_NilService_Panics(t *testing.T) {
	t.Parallel()

	defer func() {
		if r := recover(); r == nil {
			t.Fatal("New(nil, nil, nil) did not panic; expected panic for nil service")
		}
	}()
	New(nil, nil, nil)
}

// Assessments

func TestCreateAssessment(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	body := `{
		"name": "Jane Roe",
		"age": 40,
		"gender": "Female",
		"symptoms": ["Chest Pain", "Shortness of Breath"],
		"vitals": {"heart_rate": 115, "temperature": 38.2},
		"pre_existing_conditions": ["Hypertension"]
	}`

	rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments", body)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201; body: %s", rec.Code, rec.Body.String())
	}

	var got triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if got.ID == "" {
		t.Error("response has no assessment ID")
	}
	if got.Result.RiskLevel != triage.RiskHigh {
		t.Errorf("risk = %q, want High", got.Result.RiskLevel)
	}
	if got.Result.Department != "Cardiology" {
		t.Errorf("department = %q, want Cardiology", got.Result.Department)
	}
	if got.Result.WaitTimePriority != 1 {
		t.Errorf("priority = %d, want 1", got.Result.WaitTimePriority)
	}
}

func TestCreateAssessment_ThenGet(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments", `{"age":30,"symptoms":["Cough"]}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create status = %d", rec.Code)
	}
	var created triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, r, http.MethodGet, "/api/v1/assessments/"+created.ID, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, want 200", rec.Code)
	}
	var got triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID != created.ID {
		t.Errorf("got ID %q, want %q", got.ID, created.ID)
	}
}

func TestCreateAssessment_Validation(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
	}{
		{"invalid JSON", `{bad`, http.StatusBadRequest},
		{"negative age", `{"age":-1}`, http.StatusBadRequest},
		{"age too large", `{"age":200}`, http.StatusBadRequest},
		{"bad gender", `{"age":30,"gender":"robot"}`, http.StatusBadRequest},
		{"empty body accepted", `{}`, http.StatusCreated},
		{"unknown symptom accepted", `{"age":30,"symptoms":["No Such Thing"]}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments", tt.body)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d; body: %s", rec.Code, tt.wantStatus, rec.Body.String())
			}
		})
	}
}

func TestGetAssessment_NotFound(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/assessments/01AN4Z07BY79KA1307SR9X4MV3", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// Explain

func TestExplainAssessment(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, withExplainer(&fakeExplainer{text: "- driven by chest pain and tachycardia"}))

	rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments", `{"age":30,"symptoms":["Cough"]}`)
	var created triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+created.ID+"/explain", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}
	var got triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Explanation == "" {
		t.Error("expected explanation in response")
	}
}

func TestExplainAssessment_NotConfigured(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments", `{"age":30}`)
	var created triage.Assessment
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode: %v", err)
	}

	rec = doJSON(t, r, http.MethodPost, "/api/v1/assessments/"+created.ID+"/explain", "")
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

// brokenService fails every operation, as when the database is unreachable.
type brokenService struct{ err error }

func (b *brokenService) Assess(context.Context, *triage.PatientData) (*triage.Assessment, error) {
	return nil, b.err
}

func (b *brokenService) Get(context.Context, string) (*triage.Assessment, bool, error) {
	return nil, false, b.err
}

func (b *brokenService) Explain(context.Context, string) (*triage.Assessment, bool, error) {
	return nil, false, b.err
}

func (b *brokenService) Analytics(context.Context) (*triage.AnalyticsReport, error) {
	return nil, b.err
}

func TestExplainAssessment_StoreFailure(t *testing.T) {
	t.Parallel()

	api := New(nil, &brokenService{err: errors.New("db down")}, nil)
	r := chi.NewRouter()
	api.RegisterRoutes(r)

	rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments/some-id/explain", "")
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500 when the store fails", rec.Code)
	}
}

func TestExplainAssessment_NotFound(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, withExplainer(&fakeExplainer{text: "x"}))
	rec := doJSON(t, r, http.MethodPost, "/api/v1/assessments/nope/explain", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

// Catalog

func TestListSymptoms(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/catalog/symptoms", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Symptoms []symptomEntry `json:"symptoms"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Symptoms) < 30 {
		t.Errorf("symptom count = %d, want a full catalog", len(got.Symptoms))
	}
	for _, s := range got.Symptoms {
		if s.Name == "" || s.Severity == "" {
			t.Errorf("incomplete symptom entry: %+v", s)
		}
	}
}

func TestListConditions(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodGet, "/api/v1/catalog/conditions", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got struct {
		Conditions []conditionEntry `json:"conditions"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Conditions) < 10 {
		t.Errorf("condition count = %d, want a full catalog", len(got.Conditions))
	}
}

// Analytics

func TestAnalytics(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	doJSON(t, r, http.MethodPost, "/api/v1/assessments", `{"age":30,"symptoms":["Cough"]}`)
	doJSON(t, r, http.MethodPost, "/api/v1/assessments", `{"age":40,"symptoms":["Severe Bleeding"]}`)

	rec := doJSON(t, r, http.MethodGet, "/api/v1/analytics", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var got triage.AnalyticsReport
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.TotalAssessments != 2 {
		t.Errorf("total = %d, want 2", got.TotalAssessments)
	}
	if got.HighRisk != 1 {
		t.Errorf("high risk = %d, want 1", got.HighRisk)
	}
}

// Hospitals

func TestNearestHospital(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hospitals/nearest", `{"lat":51.5,"lon":-0.12}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var got hospital.Hospital
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Name != "St Mary's" {
		t.Errorf("name = %q, want St Mary's", got.Name)
	}
}

func TestNearestHospital_Validation(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"bad JSON", `{`},
		{"lat out of range", `{"lat":91,"lon":0}`},
		{"lon out of range", `{"lat":0,"lon":181}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec := doJSON(t, r, http.MethodPost, "/api/v1/hospitals/nearest", tt.body)
			if rec.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400", rec.Code)
			}
		})
	}
}

func TestNearestHospital_NoneFound(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, withLocator(&fakeLocator{err: hospital.ErrNoneFound}))
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hospitals/nearest", `{"lat":51.5,"lon":-0.12}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestNearestHospital_UpstreamFailure(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, withLocator(&fakeLocator{err: errors.New("overpass timeout")}))
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hospitals/nearest", `{"lat":51.5,"lon":-0.12}`)
	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestNearestHospital_NotConfigured(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t, withLocator(nil))
	rec := doJSON(t, r, http.MethodPost, "/api/v1/hospitals/nearest", `{"lat":51.5,"lon":-0.12}`)
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

// Routing

func TestRoutes_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	r := newTestRouter(t)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/hospitals/nearest"},
		{http.MethodDelete, "/api/v1/assessments/abc"},
		{http.MethodPut, "/api/v1/assessments"},
		{http.MethodPost, "/api/v1/catalog/symptoms"},
	}

	for _, tt := range tests {
		rec := doJSON(t, r, tt.method, tt.path, "")
		if rec.Code != http.StatusMethodNotAllowed {
			t.Errorf("%s %s = %d, want 405", tt.method, tt.path, rec.Code)
		}
	}
}
