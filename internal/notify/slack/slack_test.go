package slack

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/linnemanlabs/intake/internal/catalog"
	"github.com/linnemanlabs/intake/internal/triage"
)

func highRiskAssessment() *triage.Assessment {
	return &triage.Assessment{
		ID: "01JN123",
		Patient: triage.PatientData{
			Age:      40,
			Symptoms: []string{"Chest Pain", "Shortness of Breath"},
		},
		Result: triage.TriageResult{
			RiskLevel:       triage.RiskHigh,
			Department:      catalog.Cardiology,
			ConfidenceScore: 80,
			ContributingFactors: []triage.Factor{
				{Factor: "Febrile tachycardia", Description: "Heart rate 115 bpm with temperature 38.2", Impact: catalog.SeverityHigh},
			},
			WaitTimePriority: 1,
		},
		Source:    triage.SourceLocal,
		CreatedAt: time.Date(2026, 2, 26, 14, 23, 0, 0, time.UTC),
	}
}

func TestSend_PostsToWebhook(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			t.Errorf("content-type = %q, want application/json", r.Header.Get("Content-Type"))
		}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := New(srv.URL)
	if err := n.Send(context.Background(), highRiskAssessment()); err != nil {
		t.Fatalf("Send: %v", err)
	}

	blocks, ok := got["blocks"].([]any)
	if !ok {
		t.Fatal("expected blocks array in payload")
	}

	// header, divider, fields, divider, factors, divider, context = 7 blocks
	if len(blocks) != 7 {
		t.Errorf("blocks count = %d, want 7", len(blocks))
	}

	header := blocks[0].(map[string]any)
	headerText := header["text"].(map[string]any)["text"].(string)
	if !strings.Contains(headerText, "Cardiology") {
		t.Errorf("header text = %q, want to contain Cardiology", headerText)
	}
	if !strings.Contains(headerText, "\U0001f534") {
		t.Error("header should contain red circle for high risk")
	}

	factors := blocks[4].(map[string]any)
	factorsText := factors["text"].(map[string]any)["text"].(string)
	if !strings.Contains(factorsText, "Febrile tachycardia") {
		t.Errorf("factors text = %q, want to contain the contributing factor", factorsText)
	}
}

func TestSend_NoOpWithoutURL(t *testing.T) {
	t.Parallel()

	n := New("")
	if err := n.Send(context.Background(), &triage.Assessment{}); err != nil {
		t.Fatalf("Send with empty URL should be no-op, got: %v", err)
	}
}

func TestSend_WebhookError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "invalid_payload", http.StatusBadRequest)
	}))
	defer srv.Close()

	n := New(srv.URL)
	err := n.Send(context.Background(), highRiskAssessment())
	if err == nil {
		t.Fatal("expected error for 400 response")
	}
	if !strings.Contains(err.Error(), "400") {
		t.Errorf("error = %v, want to mention status 400", err)
	}
}

func TestSend_CapsFactorList(t *testing.T) {
	t.Parallel()

	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := highRiskAssessment()
	a.Result.ContributingFactors = nil
	for i := 0; i < maxFactors+4; i++ {
		a.Result.ContributingFactors = append(a.Result.ContributingFactors, triage.Factor{
			Factor: "Fever", Description: "Elevated temperature", Impact: catalog.SeverityMedium,
		})
	}

	if err := New(srv.URL).Send(context.Background(), a); err != nil {
		t.Fatalf("Send: %v", err)
	}

	blocks := got["blocks"].([]any)
	factorsText := blocks[4].(map[string]any)["text"].(map[string]any)["text"].(string)
	if n := strings.Count(factorsText, "•"); n != maxFactors {
		t.Errorf("factor bullets = %d, want %d", n, maxFactors)
	}
}

func TestRiskEmoji(t *testing.T) {
	t.Parallel()

	tests := []struct {
		risk triage.RiskLevel
		want string
	}{
		{triage.RiskHigh, "\U0001f534"},
		{triage.RiskMedium, "\U0001f7e1"},
		{triage.RiskLow, "\U0001f7e2"},
		{triage.RiskLevel("unknown"), "\U0001f7e2"},
	}

	for _, tt := range tests {
		if got := riskEmoji(tt.risk); got != tt.want {
			t.Errorf("riskEmoji(%q) = %q, want %q", tt.risk, got, tt.want)
		}
	}
}
