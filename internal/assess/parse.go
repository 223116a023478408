package assess

import (
	"strings"

	"github.com/assessagent/backend/internal/model"
)

// Labels the evaluation prompt instructs the model to emit. Extraction is
// anchored on these; anything else in the reply is ignored.
const (
	labelScore    = "Score:"
	labelFeedback = "Feedback:"
	labelSkillGap = "Skill Gap:"
	labelSolution = "Correct Approach/Solution Highlights:"
)

var evalLabels = []string{labelScore, labelFeedback, labelSkillGap, labelSolution}

// ParseEvaluation extracts the labeled fields from a model evaluation reply.
// Each field is captured independently: a missing or empty label yields that
// field's fixed fallback, never an error. The result always carries all four
// keys.
func ParseEvaluation(raw string) model.EvaluationResult {
	return model.EvaluationResult{
		Score:              extractField(raw, labelScore, model.NotAvailable),
		Feedback:           extractField(raw, labelFeedback, "Could not parse detailed feedback from AI."),
		SkillGap:           extractField(raw, labelSkillGap, "Could not parse skill gap analysis from AI."),
		SolutionHighlights: extractField(raw, labelSolution, "Could not parse solution highlights from AI."),
	}
}

// extractField captures the text after label up to the next known label or
// the end of the reply.
func extractField(raw, label, fallback string) string {
	idx := strings.Index(raw, label)
	if idx < 0 {
		return fallback
	}
	rest := raw[idx+len(label):]

	end := len(rest)
	for _, other := range evalLabels {
		if other == label {
			continue
		}
		if j := strings.Index(rest, other); j >= 0 && j < end {
			end = j
		}
	}

	value := strings.TrimSpace(rest[:end])
	if value == "" {
		return fallback
	}
	return value
}
