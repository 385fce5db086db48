// Package slack sends high-risk assessment notifications to Slack via
// incoming webhooks.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/linnemanlabs/intake/internal/triage"
)

const (
	maxFactors  = 6
	httpTimeout = 10 * time.Second
)

// Notifier sends assessments to a Slack webhook.
type Notifier struct {
	webhookURL string
	client     *http.Client
}

// New creates a new Slack notifier. If webhookURL is empty, Send is a no-op.
func New(webhookURL string) *Notifier {
	return &Notifier{
		webhookURL: webhookURL,
		client:     &http.Client{Timeout: httpTimeout},
	}
}

// Send posts an assessment to the configured Slack webhook.
// If no webhook URL is configured, it returns nil immediately.
func (n *Notifier) Send(ctx context.Context, a *triage.Assessment) error {
	if n.webhookURL == "" {
		return nil
	}

	msg := buildMessage(a)

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("slack: marshal message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.webhookURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("slack: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return fmt.Errorf("slack: post webhook: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("slack: webhook returned %d: %s", resp.StatusCode, string(respBody))
	}
	return nil
}

func buildMessage(a *triage.Assessment) map[string]any {
	return map[string]any{
		"blocks": []map[string]any{
			headerBlock(a),
			{"type": "divider"},
			fieldsBlock(a),
			{"type": "divider"},
			factorsBlock(a),
			{"type": "divider"},
			contextBlock(a),
		},
	}
}

func headerBlock(a *triage.Assessment) map[string]any {
	text := fmt.Sprintf("%s High-Risk Patient: %s", riskEmoji(a.Result.RiskLevel), a.Result.Department)

	return map[string]any{
		"type": "header",
		"text": map[string]any{
			"type": "plain_text",
			"text": text,
		},
	}
}

func fieldsBlock(a *triage.Assessment) map[string]any {
	fields := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Risk:* %s", a.Result.RiskLevel),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Department:* %s", a.Result.Department),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Priority:* %d", a.Result.WaitTimePriority),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Confidence:* %d%%", a.Result.ConfidenceScore),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Age:* %d", a.Patient.Age),
		},
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Symptoms:* %s", strings.Join(a.Patient.Symptoms, ", ")),
		},
	}

	return map[string]any{
		"type":   "section",
		"fields": fields,
	}
}

func factorsBlock(a *triage.Assessment) map[string]any {
	factors := a.Result.ContributingFactors
	if len(factors) > maxFactors {
		factors = factors[:maxFactors]
	}

	var lines []string
	for _, f := range factors {
		lines = append(lines, fmt.Sprintf("• *%s* (%s): %s", f.Factor, f.Impact, f.Description))
	}
	text := strings.Join(lines, "\n")
	if text == "" {
		text = "_No contributing factors recorded._"
	}

	return map[string]any{
		"type": "section",
		"text": map[string]any{
			"type": "mrkdwn",
			"text": fmt.Sprintf("*Contributing factors*\n\n%s", text),
		},
	}
}

func contextBlock(a *triage.Assessment) map[string]any {
	elements := []map[string]any{
		{
			"type": "mrkdwn",
			"text": fmt.Sprintf("intake • assessment %s • %s", a.ID, a.CreatedAt.UTC().Format("2006-01-02 15:04 UTC")),
		},
	}

	return map[string]any{
		"type":     "context",
		"elements": elements,
	}
}

func riskEmoji(risk triage.RiskLevel) string {
	switch risk {
	case triage.RiskHigh:
		return "\U0001f534" // red circle
	case triage.RiskMedium:
		return "\U0001f7e1" // yellow circle
	default:
		return "\U0001f7e2" // green circle
	}
}
