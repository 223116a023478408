package assess

import (
	"context"
	"fmt"

	"github.com/assessagent/backend/internal/llm/prompts"
)

// NoCorpusReport is returned when there is nothing to compare against. No
// model call is made in that case.
const NoCorpusReport = "No corpus provided for comparison. Cannot perform a detailed plagiarism check."

// CheckPlagiarism asks the model for a similarity analysis of the answer
// against the known corpus and relays its report verbatim.
func (s *Service) CheckPlagiarism(ctx context.Context, answer string, corpus []string) (string, error) {
	if len(corpus) == 0 {
		return NoCorpusReport, nil
	}

	prompt, err := prompts.BuildPlagiarism(answer, corpus)
	if err != nil {
		return "", fmt.Errorf("build plagiarism prompt: %w", err)
	}
	report, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		return "", fmt.Errorf("check plagiarism: %w", err)
	}
	return report, nil
}
