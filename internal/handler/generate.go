package handler

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/assessagent/backend/internal/assess"
	"github.com/assessagent/backend/internal/model"
)

const maxUploadBytes = 32 << 20

// defaultQuestionTypes applies when the question_types field is absent.
var defaultQuestionTypes = []string{"mcq", "subjective"}

func (h *Handler) handleGenerateAssessment(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid multipart form.")
		return
	}

	topic := strings.TrimSpace(r.FormValue("topic"))

	total := 10
	if s := r.FormValue("total_questions"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n <= 0 {
			respondError(w, http.StatusBadRequest, "total_questions must be a positive integer.")
			return
		}
		total = n
	}

	difficulty := model.Difficulty(r.FormValue("difficulty"))
	if difficulty == "" {
		difficulty = model.DifficultyMedium
	}
	switch difficulty {
	case model.DifficultyBasic, model.DifficultyMedium, model.DifficultyHard:
	default:
		respondError(w, http.StatusBadRequest, "difficulty must be one of: basic, medium, hard.")
		return
	}

	questionTypes := defaultQuestionTypes
	if s := r.FormValue("question_types"); s != "" {
		// Decode into a fresh slice; reusing the default as the target would
		// let Unmarshal write through its backing array and corrupt the
		// default for later requests.
		var explicit []string
		if err := json.Unmarshal([]byte(s), &explicit); err != nil {
			respondError(w, http.StatusBadRequest, "Invalid question_types parameter.")
			return
		}
		questionTypes = explicit
	}

	syllabusFile, _, err := r.FormFile("syllabus_pdf")
	hasSyllabus := err == nil
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		respondError(w, http.StatusBadRequest, "Invalid syllabus_pdf upload.")
		return
	}
	if hasSyllabus {
		defer syllabusFile.Close()
	}

	// Exactly one content source.
	if topic == "" && !hasSyllabus {
		respondError(w, http.StatusBadRequest, "Please provide a topic or upload a syllabus PDF.")
		return
	}
	if topic != "" && hasSyllabus {
		respondError(w, http.StatusBadRequest, "Provide either a topic or a syllabus PDF, not both.")
		return
	}

	var syllabusText string
	if hasSyllabus {
		syllabusText, err = h.extractSyllabus(syllabusFile)
		if err != nil {
			slog.Error("syllabus extraction failed", "error", err)
			respondError(w, http.StatusInternalServerError, "Failed to parse PDF syllabus.")
			return
		}
	}

	set, err := h.assess.Generate(r.Context(), assess.GenerateParams{
		Topic:        topic,
		SyllabusText: syllabusText,
		Total:        total,
		Difficulty:   difficulty,
		Types:        questionTypes,
	})
	switch {
	case errors.Is(err, assess.ErrNoQuestionTypes):
		respondError(w, http.StatusBadRequest, "No valid question type selected.")
		return
	case err != nil:
		slog.Error("assessment generation failed", "error", err)
		respondError(w, http.StatusInternalServerError, "Failed to generate assessment. Please try again.")
		return
	}

	respondJSON(w, http.StatusOK, set)
}

// extractSyllabus spools the upload to a temporary file and extracts its
// text. The temp file is removed on every exit path.
func (h *Handler) extractSyllabus(upload multipart.File) (string, error) {
	tmp, err := os.CreateTemp("", "syllabus-*.pdf")
	if err != nil {
		return "", err
	}
	defer os.Remove(tmp.Name())

	_, copyErr := io.Copy(tmp, upload)
	closeErr := tmp.Close()
	if copyErr != nil {
		return "", copyErr
	}
	if closeErr != nil {
		return "", closeErr
	}

	return h.extractor.ExtractText(tmp.Name())
}
