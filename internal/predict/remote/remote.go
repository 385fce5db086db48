// Package remote is an HTTP client for an external prediction service. It
// posts the patient record and maps the partial response onto a
// triage.RemoteAssessment; callers treat any failure as "no remote opinion".
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/linnemanlabs/intake/internal/triage"
)

const httpTimeout = 10 * time.Second

// Client calls a remote prediction endpoint.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// New creates a client for the given prediction endpoint URL.
func New(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: httpTimeout,
		},
	}
}

// Predict implements triage.Predictor.
func (c *Client) Predict(ctx context.Context, p *triage.PatientData) (*triage.RemoteAssessment, error) {
	body, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("marshal patient: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("predictor error %d: %s", resp.StatusCode, string(respBody))
	}

	var out triage.RemoteAssessment
	if err := json.Unmarshal(respBody, &out); err != nil {
		return nil, fmt.Errorf("unmarshal response: %w", err)
	}

	return &out, nil
}
