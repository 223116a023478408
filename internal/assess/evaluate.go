package assess

import (
	"context"
	"log/slog"
	"strings"

	"github.com/assessagent/backend/internal/llm/prompts"
	"github.com/assessagent/backend/internal/model"
)

// Fixed strings for field-local model failures. A completion error on a
// non-critical call downgrades that single field; the request still succeeds.
const (
	explanationFailure = "Could not generate solution explanation due to an AI error."
	solutionFailure    = "Could not generate solution highlights due to an AI error."
	evaluationFailure  = "Failed to evaluate subjective answer due to an AI error."
)

// Evaluate scores a submitted answer. MCQ scoring is a deterministic branch
// on the trimmed, case-insensitive answer letter; subjective scoring
// delegates to the model and parses its labeled reply; coding is an explicit
// not-implemented placeholder.
func (s *Service) Evaluate(ctx context.Context, req model.EvaluationRequest) (model.EvaluationResult, error) {
	switch req.QuestionType {
	case model.TypeMCQ:
		if strings.TrimSpace(req.CorrectAnswer) == "" {
			return model.EvaluationResult{}, ErrMissingCorrectAnswer
		}
		return s.evaluateMCQ(ctx, req), nil
	case model.TypeSubjective:
		return s.evaluateSubjective(ctx, req), nil
	case model.TypeCoding:
		return codingPlaceholder(), nil
	default:
		return model.EvaluationResult{}, ErrInvalidQuestionType
	}
}

func (s *Service) evaluateMCQ(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult {
	res := model.NewEvaluationResult()

	answer := strings.ToUpper(strings.TrimSpace(req.UserAnswer))
	correct := strings.ToUpper(strings.TrimSpace(req.CorrectAnswer))

	// Explain the correct answer for any non-matching submission, including
	// a blank one. A correct answer needs no explanation.
	if answer != correct {
		res.SolutionHighlights = s.mcqExplanation(ctx, req.QuestionText, req.CorrectAnswer)
	}

	switch {
	case answer == "":
		res.Score = "Incorrect"
		res.Feedback = "No answer provided."
		res.SkillGap = "Incomplete Answer"
	case answer == correct:
		res.Score = "Correct"
		res.Feedback = "Your answer is correct!"
		res.SkillGap = model.NotAvailable
		res.SolutionHighlights = model.NotAvailable
	default:
		res.Score = "Incorrect"
		res.Feedback = "Your answer is incorrect."
		res.SkillGap = "Conceptual Understanding"
	}

	return res
}

func (s *Service) mcqExplanation(ctx context.Context, question, correctAnswer string) string {
	prompt, err := prompts.BuildMCQExplanation(question, correctAnswer)
	if err != nil {
		slog.Error("build MCQ explanation prompt", "error", err)
		return explanationFailure
	}
	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		slog.Error("generate MCQ explanation", "error", err)
		return explanationFailure
	}
	return strings.TrimSpace(text)
}

func (s *Service) evaluateSubjective(ctx context.Context, req model.EvaluationRequest) model.EvaluationResult {
	if strings.TrimSpace(req.UserAnswer) == "" {
		res := model.NewEvaluationResult()
		res.Score = "0/10"
		res.Feedback = "No answer provided for this subjective question."
		res.SkillGap = "No Answer Provided"
		res.SolutionHighlights = s.subjectiveSolution(ctx, req.QuestionText, req.Rubric)
		return res
	}

	prompt, err := prompts.BuildSubjectiveEval(req.QuestionText, req.UserAnswer, req.Rubric)
	if err != nil {
		slog.Error("build subjective evaluation prompt", "error", err)
		return evaluationFailureResult(err)
	}

	raw, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		slog.Error("evaluate subjective answer", "error", err)
		return evaluationFailureResult(err)
	}

	return ParseEvaluation(raw)
}

func (s *Service) subjectiveSolution(ctx context.Context, question, rubric string) string {
	prompt, err := prompts.BuildSubjectiveSolution(question, rubric)
	if err != nil {
		slog.Error("build subjective solution prompt", "error", err)
		return solutionFailure
	}
	text, err := s.llm.Complete(ctx, prompt)
	if err != nil {
		slog.Error("generate subjective solution", "error", err)
		return solutionFailure
	}
	return strings.TrimSpace(text)
}

// evaluationFailureResult keeps the response contract intact when the
// load-bearing evaluation call fails: a generic feedback message plus the
// raw error detail for diagnostics.
func evaluationFailureResult(err error) model.EvaluationResult {
	res := model.NewEvaluationResult()
	res.Feedback = evaluationFailure
	res.ModelError = err.Error()
	return res
}

func codingPlaceholder() model.EvaluationResult {
	res := model.NewEvaluationResult()
	res.Feedback = "Coding test evaluation is a complex feature that requires a secure execution environment and test cases. This is a placeholder."
	res.SkillGap = "Not applicable for placeholder coding evaluation."
	return res
}
