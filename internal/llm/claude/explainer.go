// Package claude generates plain-language rationales for finished
// assessments using the Anthropic API. The rationale never changes the
// classification; it only explains it.
package claude

import (
	"context"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/linnemanlabs/intake/internal/triage"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-sonnet-4-5"

const maxTokens = 1024

const systemPrompt = `You are a clinical triage assistant. You are given a completed
triage assessment produced by a deterministic rule engine. Write a short rationale
for clinical staff explaining why the engine reached this result.

Rules:
- Do NOT change, second-guess, or re-derive the department, risk level, or priority.
  They are final. Your job is only to explain them.
- Write 3 to 5 short bullet points.
- Reference the specific symptoms, vital signs, and medical history that drove the result.
- No preamble, no closing remarks, bullets only.`

// Explainer produces assessment rationales via the Anthropic Messages API.
type Explainer struct {
	client anthropic.Client
	model  string
}

// New creates an Explainer. An empty model falls back to DefaultModel.
func New(apiKey, model string) *Explainer {
	if model == "" {
		model = DefaultModel
	}
	return &Explainer{
		client: anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:  model,
	}
}

// Explain implements triage.Explainer.
func (e *Explainer) Explain(ctx context.Context, a *triage.Assessment) (string, error) {
	msg, err := e.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(e.model),
		MaxTokens: maxTokens,
		System:    []anthropic.TextBlockParam{{Text: systemPrompt}},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildPrompt(a))),
		},
	})
	if err != nil {
		return "", fmt.Errorf("claude: %w", err)
	}

	text := extractText(msg)
	if text == "" {
		return "", fmt.Errorf("claude: empty response")
	}
	return text, nil
}

// buildPrompt renders the assessment as a compact plain-text block.
func buildPrompt(a *triage.Assessment) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Patient: age %d", a.Patient.Age)
	if a.Patient.Gender != "" {
		fmt.Fprintf(&b, ", %s", a.Patient.Gender)
	}
	b.WriteString("\n")

	if len(a.Patient.Symptoms) > 0 {
		fmt.Fprintf(&b, "Symptoms: %s\n", strings.Join(a.Patient.Symptoms, ", "))
	}
	if len(a.Patient.PreExistingConditions) > 0 {
		fmt.Fprintf(&b, "Medical history: %s\n", strings.Join(a.Patient.PreExistingConditions, ", "))
	}

	v := a.Patient.Vitals
	var vitals []string
	if v.HeartRate > 0 {
		vitals = append(vitals, fmt.Sprintf("heart rate %.0f bpm", v.HeartRate))
	}
	if v.Temperature > 0 {
		vitals = append(vitals, fmt.Sprintf("temperature %.1f C", v.Temperature))
	}
	if v.SystolicBP > 0 && v.DiastolicBP > 0 {
		vitals = append(vitals, fmt.Sprintf("blood pressure %.0f/%.0f mmHg", v.SystolicBP, v.DiastolicBP))
	}
	if v.OxygenSaturation > 0 {
		vitals = append(vitals, fmt.Sprintf("oxygen saturation %.0f%%", v.OxygenSaturation))
	}
	if len(vitals) > 0 {
		fmt.Fprintf(&b, "Vitals: %s\n", strings.Join(vitals, ", "))
	}

	fmt.Fprintf(&b, "\nAssessment (final):\n")
	fmt.Fprintf(&b, "- Department: %s\n", a.Result.Department)
	fmt.Fprintf(&b, "- Risk level: %s\n", a.Result.RiskLevel)
	fmt.Fprintf(&b, "- Confidence: %d%%\n", a.Result.ConfidenceScore)
	fmt.Fprintf(&b, "- Wait-time priority: %d\n", a.Result.WaitTimePriority)

	if len(a.Result.ContributingFactors) > 0 {
		b.WriteString("- Contributing factors:\n")
		for _, f := range a.Result.ContributingFactors {
			fmt.Fprintf(&b, "  - %s (%s): %s\n", f.Factor, f.Impact, f.Description)
		}
	}

	return b.String()
}

// extractText concatenates the text blocks of a response.
func extractText(msg *anthropic.Message) string {
	var parts []string
	for _, block := range msg.Content {
		if block.Type == "text" && block.Text != "" {
			parts = append(parts, block.Text)
		}
	}
	return strings.TrimSpace(strings.Join(parts, "\n"))
}
