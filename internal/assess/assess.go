// Package assess implements the assessment operations: question generation,
// answer evaluation, plagiarism checking, and test recommendation. All state
// is request-scoped; the only dependency is the completion service.
package assess

import (
	"context"
	"errors"
)

// Completer is the narrow view of the completion service the assessment
// logic needs: an opaque function from prompt to text.
type Completer interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Sentinel errors for client input problems. Handlers map these to 4xx.
var (
	ErrNoQuestionTypes      = errors.New("no valid question type selected")
	ErrInvalidQuestionType  = errors.New("invalid question type")
	ErrMissingCorrectAnswer = errors.New("correct_answer is required for MCQ evaluation")
)

// Service runs assessment operations against a completion backend.
type Service struct {
	llm Completer
}

// New creates a Service backed by the given completion client.
func New(llm Completer) *Service {
	return &Service{llm: llm}
}
