package assess

import (
	"context"
	"fmt"

	"github.com/assessagent/backend/internal/llm/prompts"
	"github.com/assessagent/backend/internal/model"
)

// GenerateParams is a validated question-generation request. Exactly one of
// Topic and SyllabusText is set; the handler enforces this before calling.
type GenerateParams struct {
	Topic        string
	SyllabusText string
	Total        int
	Difficulty   model.Difficulty
	Types        []string
}

// Generate produces the requested question set, issuing one completion call
// per selected question type (at most two, sequential). The model's text is
// returned verbatim; no structural parsing happens at generation time.
func (s *Service) Generate(ctx context.Context, p GenerateParams) (model.GeneratedQuestionSet, error) {
	var set model.GeneratedQuestionSet

	counts, err := SplitCounts(p.Total, p.Types)
	if err != nil {
		return set, err
	}

	data := prompts.GenerationData{
		Difficulty: p.Difficulty,
	}
	if p.SyllabusText != "" {
		data.Instruction = prompts.SyllabusInstruction
		data.Syllabus = p.SyllabusText
	} else {
		data.Instruction = prompts.TopicInstruction(p.Topic)
	}

	if counts.MCQ > 0 {
		data.Count = counts.MCQ
		prompt, err := prompts.BuildMCQGeneration(data)
		if err != nil {
			return set, fmt.Errorf("build MCQ prompt: %w", err)
		}
		text, err := s.llm.Complete(ctx, prompt)
		if err != nil {
			return set, fmt.Errorf("generate MCQs: %w", err)
		}
		set.MCQs = text
	}

	if counts.Subjective > 0 {
		data.Count = counts.Subjective
		prompt, err := prompts.BuildSubjectiveGeneration(data)
		if err != nil {
			return set, fmt.Errorf("build subjective prompt: %w", err)
		}
		text, err := s.llm.Complete(ctx, prompt)
		if err != nil {
			return set, fmt.Errorf("generate subjective questions: %w", err)
		}
		set.Subjective = text
	}

	return set, nil
}
