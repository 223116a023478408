package model

// NotAvailable is the sentinel value for evaluation fields that do not apply
// or were never filled in.
const NotAvailable = "N/A"

// QuestionType represents the kind of question being generated or evaluated.
type QuestionType string

const (
	// TypeMCQ is a multiple-choice question with four lettered options.
	TypeMCQ QuestionType = "mcq"
	// TypeSubjective is a free-text question graded against a rubric.
	TypeSubjective QuestionType = "subjective"
	// TypeCoding is a coding exercise. Evaluation is a placeholder: there is
	// no execution sandbox, so coding answers are never actually graded.
	TypeCoding QuestionType = "coding"
)

// IsValid reports whether t is a question type the evaluator knows about.
func (t QuestionType) IsValid() bool {
	switch t {
	case TypeMCQ, TypeSubjective, TypeCoding:
		return true
	}
	return false
}

// Difficulty represents the requested difficulty of generated questions.
type Difficulty string

const (
	DifficultyBasic  Difficulty = "basic"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)

// GeneratedQuestionSet holds the raw model output for one generation request.
// The text blocks are returned to the client verbatim; they are only parsed
// later, at evaluation time, one question at a time.
type GeneratedQuestionSet struct {
	MCQs       string `json:"mcqs"`
	Subjective string `json:"subjective_questions"`
}

// EvaluationRequest is the JSON body of an answer-evaluation call.
type EvaluationRequest struct {
	QuestionText  string       `json:"question_text"`
	UserAnswer    string       `json:"user_answer"`
	QuestionType  QuestionType `json:"question_type"`
	CorrectAnswer string       `json:"correct_answer"`
	Rubric        string       `json:"rubric"`
}

// EvaluationResult is the response of an answer-evaluation call. Every field
// is always present; fields that do not apply carry the "N/A" sentinel.
type EvaluationResult struct {
	Score              string `json:"score"`
	Feedback           string `json:"feedback"`
	SkillGap           string `json:"skill_gap"`
	SolutionHighlights string `json:"solution_highlights"`
	// ModelError carries the raw completion error when the primary subjective
	// evaluation call fails. Diagnostic only; empty on the happy path.
	ModelError string `json:"model_error,omitempty"`
}

// NewEvaluationResult returns a result with every field set to its sentinel.
// Branches overwrite fields independently; the contract is that all four keys
// are present no matter which branch ran.
func NewEvaluationResult() EvaluationResult {
	return EvaluationResult{
		Score:              NotAvailable,
		Feedback:           "No evaluation performed.",
		SkillGap:           NotAvailable,
		SolutionHighlights: NotAvailable,
	}
}

// PlagiarismRequest is the JSON body of a plagiarism-check call.
type PlagiarismRequest struct {
	UserAnswer  string   `json:"user_answer"`
	KnownCorpus []string `json:"known_corpus"`
}

// RecommendationRequest is the JSON body of a test-recommendation call.
type RecommendationRequest struct {
	SkillGaps   []string       `json:"skill_gaps"`
	UserProfile map[string]any `json:"user_profile"`
}

// ServiceConfig holds runtime parameters set via CLI flags and environment.
// It is built once at startup and passed explicitly to the handler.
type ServiceConfig struct {
	Addr        string
	LLMURL      string
	LLMModel    string
	CORSOrigins []string
}
