package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/assessagent/backend/internal/assess"
	"github.com/assessagent/backend/internal/model"
	"github.com/assessagent/backend/internal/pdf"
)

// Handler holds shared dependencies for HTTP handlers.
type Handler struct {
	assess    *assess.Service
	extractor pdf.Extractor
}

// New creates a new Handler.
func New(svc *assess.Service, extractor pdf.Extractor) *Handler {
	return &Handler{assess: svc, extractor: extractor}
}

// Routes registers all HTTP routes.
func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.handleIndex)
	r.Post("/generate_assessment", h.handleGenerateAssessment)
	r.Post("/evaluate_answer", h.handleEvaluateAnswer)
	r.Post("/check_plagiarism", h.handleCheckPlagiarism)
	r.Post("/recommend_tests", h.handleRecommendTests)
}

func (h *Handler) handleIndex(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("Assessment Agent Backend is running!"))
}

func (h *Handler) handleEvaluateAnswer(w http.ResponseWriter, r *http.Request) {
	var req model.EvaluationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	if req.QuestionText == "" || req.QuestionType == "" {
		respondError(w, http.StatusBadRequest, "Missing essential question parameters for evaluation.")
		return
	}
	if !req.QuestionType.IsValid() {
		respondError(w, http.StatusBadRequest, "Invalid question type.")
		return
	}

	result, err := h.assess.Evaluate(r.Context(), req)
	switch {
	case errors.Is(err, assess.ErrInvalidQuestionType):
		respondError(w, http.StatusBadRequest, "Invalid question type.")
		return
	case errors.Is(err, assess.ErrMissingCorrectAnswer):
		respondError(w, http.StatusBadRequest, "Missing correct answer for MCQ evaluation.")
		return
	case err != nil:
		slog.Error("evaluation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to evaluate answer.")
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleCheckPlagiarism(w http.ResponseWriter, r *http.Request) {
	var req model.PlagiarismRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}
	if req.UserAnswer == "" {
		respondError(w, http.StatusBadRequest, "No answer provided for plagiarism check.")
		return
	}

	report, err := h.assess.CheckPlagiarism(r.Context(), req.UserAnswer, req.KnownCorpus)
	if err != nil {
		slog.Error("plagiarism check failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to check plagiarism due to AI error.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"plagiarism_report": report})
}

func (h *Handler) handleRecommendTests(w http.ResponseWriter, r *http.Request) {
	var req model.RecommendationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON body.")
		return
	}

	recommendations, err := h.assess.RecommendTests(r.Context(), req.SkillGaps, req.UserProfile)
	if err != nil {
		slog.Error("recommendation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate recommendations due to AI error.")
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"recommendations": recommendations})
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", "error", err)
	}
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
