package assess

import (
	"context"
	"fmt"

	"github.com/assessagent/backend/internal/llm/prompts"
)

// NoSkillGapsRecommendation is returned when no gaps were supplied. No model
// call is made in that case.
const NoSkillGapsRecommendation = "No specific skill gaps identified to recommend new tests."

// RecommendTests asks the model for follow-up assessments and learning
// resources targeting the identified skill gaps, relayed verbatim.
func (s *Service) RecommendTests(ctx context.Context, skillGaps []string, profile map[string]any) (string, error) {
	if len(skillGaps) == 0 {
		return NoSkillGapsRecommendation, nil
	}

	prompt, err := prompts.BuildRecommendation(skillGaps, profile)
	if err != nil {
		return "", fmt.Errorf("build recommendation prompt: %w", err)
	}
	recommendations, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("recommend tests: %w", err)
	}
	return recommendations, nil
}
