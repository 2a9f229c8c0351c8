// Package explain turns the similarity statistics of a flagged pair
// into a short narrative a proctor can act on. When an LLM provider is
// configured the narrative comes from the model, constrained to a JSON
// schema; otherwise a deterministic template is used.
package explain

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"text/template"

	"github.com/serkanatas/kopya/internal/collusion"
	"github.com/serkanatas/kopya/internal/llm"
)

// Config holds the LLM generation settings for explanations.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns sensible defaults.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   512,
		Temperature: 0.3,
	}
}

// Request carries one flagged pair plus the exam context the narrative
// needs.
type Request struct {
	Pair           collusion.ScoredPair
	TotalExaminees int
	Questions      int
	Thresholds     collusion.Config
}

// Explanation is the narrative output.
type Explanation struct {
	Summary  string   `json:"summary"`
	Severity string   `json:"severity"`
	Caveats  []string `json:"caveats"`
}

// Explainer generates explanations through an LLM provider.
type Explainer struct {
	provider llm.Provider
	cfg      Config
}

// NewExplainer creates an LLM-backed explainer.
func NewExplainer(provider llm.Provider, cfg Config) *Explainer {
	return &Explainer{provider: provider, cfg: cfg}
}

// Explain asks the model for a narrative reading of the pair.
func (e *Explainer) Explain(ctx context.Context, req Request) (*Explanation, error) {
	ctx = llm.WithPurpose(ctx, "pair-explain")

	userMsg, err := buildPairMessage(req)
	if err != nil {
		return nil, fmt.Errorf("build explanation prompt: %w", err)
	}

	resp, err := e.provider.Generate(ctx, llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: userMsg},
		},
		Schema:      ExplanationSchema,
		MaxTokens:   e.cfg.MaxTokens,
		Temperature: e.cfg.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("explanation generation failed: %w", err)
	}

	var out Explanation
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse explanation response: %w", err)
	}
	return &out, nil
}

const explanationSystemPrompt = `You are a psychometrician explaining answer-copying statistics to an exam proctor with no statistics background.

Instructions:
- Explain what the numbers mean for THIS pair in plain language. Do not define the indices abstractly.
- Statistical similarity is never proof of copying. Always frame the finding as grounds for further review, not as an accusation.
- List concrete caveats: small numbers of shared wrong answers, popular distractors, unknown seating.
- Keep the summary to at most four sentences.`

var pairTemplate = template.Must(template.New("pair").Parse(`Exam: {{.Questions}} questions, {{.TotalExaminees}} examinees.

Pair under review: {{.Pair.IDA}} and {{.Pair.IDB}}.
- identical answers: {{.Pair.Agreements}}
- identical wrong answers: {{.Pair.WrongAgreements}}
- questions answered differently: {{.Pair.Differences}}
- K-index (prob. of this much wrong-answer copying by chance): {{printf "%.4g" .MinK}} (flag threshold {{printf "%.4g" .Thresholds.KIndexCeiling}})
- Harpp-Hogan ratio (identical wrong / differences): {{printf "%.2f" .Pair.HarppHogan}} (flag threshold {{printf "%.2f" .Thresholds.HarppHoganFloor}})
- rarity score of shared wrong answers: {{printf "%.2f" .Pair.RarityScore}} (flag threshold {{printf "%.2f" .Thresholds.RarityFloor}})
- GBT z-score of total agreement: {{printf "%.2f" .Pair.GBTZ}}
- scores: {{.Pair.IDA}} answered {{.Pair.CorrectA}} correct / {{.Pair.WrongA}} wrong / {{.Pair.BlankA}} blank; {{.Pair.IDB}} answered {{.Pair.CorrectB}} correct / {{.Pair.WrongB}} wrong / {{.Pair.BlankB}} blank.

Flag reasons: {{.Pair.Reason}}`))

func buildPairMessage(req Request) (string, error) {
	data := struct {
		Request
		MinK float64
	}{Request: req, MinK: req.Pair.MinKIndex()}

	var buf bytes.Buffer
	if err := pairTemplate.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Deterministic produces a template-based explanation without an LLM.
// Used when no provider is configured.
func Deterministic(req Request) *Explanation {
	p := req.Pair

	var parts []string
	parts = append(parts, fmt.Sprintf(
		"Examinees %s and %s gave identical wrong answers on %d questions and answered only %d questions differently.",
		p.IDA, p.IDB, p.WrongAgreements, p.Differences))

	severity := "low"
	if p.KIndexAB < req.Thresholds.KIndexCeiling || p.KIndexBA < req.Thresholds.KIndexCeiling {
		parts = append(parts, fmt.Sprintf(
			"The chance of this much wrong-answer overlap occurring randomly is about %.2g.", p.MinKIndex()))
		severity = "high"
	}
	if p.HarppHogan >= req.Thresholds.HarppHoganFloor {
		parts = append(parts, fmt.Sprintf(
			"Their identical-wrong-to-difference ratio of %.2f is above the review threshold of %.2f.",
			p.HarppHogan, req.Thresholds.HarppHoganFloor))
		if severity == "low" {
			severity = "moderate"
		}
	}
	if p.RarityScore >= req.Thresholds.RarityFloor {
		parts = append(parts, "The wrong answers they share are rare in this group, which makes coincidence less likely.")
		if severity == "low" {
			severity = "moderate"
		}
	}
	parts = append(parts, "Statistical similarity alone is not proof of copying; treat this as grounds for further review.")

	caveats := []string{
		"Similarity statistics cannot distinguish copying from shared preparation.",
		"Seating arrangement is unknown to this analysis.",
	}
	if p.WrongAgreements < 3 {
		caveats = append(caveats, "The number of shared wrong answers is small, so the evidence is thin.")
	}
	if req.TotalExaminees < 30 {
		caveats = append(caveats, "The group is small, which makes the answer-frequency estimates noisy.")
	}

	return &Explanation{
		Summary:  strings.Join(parts, " "),
		Severity: severity,
		Caveats:  caveats,
	}
}
