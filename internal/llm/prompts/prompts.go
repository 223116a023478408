// Package prompts renders the instruction text sent to the completion
// service. Every prompt embeds a literal output template the model is asked
// to mimic, so downstream parsing has stable anchors.
package prompts

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"text/template"

	"github.com/assessagent/backend/internal/model"
)

//go:embed templates/*.txt
var templateFS embed.FS

var templateNames = []string{
	"mcq_generation",
	"subjective_generation",
	"mcq_explanation",
	"subjective_solution",
	"subjective_eval",
	"plagiarism",
	"recommend",
}

var (
	loadOnce  sync.Once
	loadErr   error
	templates map[string]*template.Template
)

// Load parses the embedded prompt templates. It uses sync.Once so templates
// are parsed exactly once; callers must invoke it before any Build function.
func Load() error {
	loadOnce.Do(func() {
		templates = make(map[string]*template.Template)
		for _, name := range templateNames {
			content, err := templateFS.ReadFile("templates/" + name + ".txt")
			if err != nil {
				loadErr = errors.New("read prompt file " + name + ": " + err.Error())
				return
			}
			tmpl, err := template.New(name).Parse(string(content))
			if err != nil {
				loadErr = errors.New("parse prompt template " + name + ": " + err.Error())
				return
			}
			templates[name] = tmpl
		}
	})
	return loadErr
}

func render(name string, data any) (string, error) {
	if templates == nil {
		return "", errors.New("templates not initialized: call Load first")
	}
	tmpl, ok := templates[name]
	if !ok {
		return "", errors.New("unknown prompt template: " + name)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// SyllabusInstruction is the header for syllabus-derived generation. The
// model must draw questions from the syllabus's subject matter, never about
// the syllabus document itself.
const SyllabusInstruction = "Derive questions from the content and topics described within the following syllabus. " +
	"Do NOT ask questions ABOUT the syllabus document (e.g., about its structure, objectives count, or sections)."

// TopicInstruction returns the header for topic-derived generation.
func TopicInstruction(topic string) string {
	return fmt.Sprintf("Generate questions for the topic %q.", topic)
}

// GenerationData carries the fields for a question-generation prompt.
// Syllabus is the extracted syllabus text, or "N/A" in topic mode.
type GenerationData struct {
	Instruction string
	Count       int
	Difficulty  model.Difficulty
	Syllabus    string
}

// BuildMCQGeneration renders the MCQ generation prompt.
func BuildMCQGeneration(data GenerationData) (string, error) {
	if data.Syllabus == "" {
		data.Syllabus = model.NotAvailable
	}
	return render("mcq_generation", data)
}

// BuildSubjectiveGeneration renders the subjective-question generation prompt.
func BuildSubjectiveGeneration(data GenerationData) (string, error) {
	if data.Syllabus == "" {
		data.Syllabus = model.NotAvailable
	}
	return render("subjective_generation", data)
}

// BuildMCQExplanation renders the prompt asking why the given letter is the
// correct answer to an MCQ.
func BuildMCQExplanation(question, correctAnswer string) (string, error) {
	return render("mcq_explanation", struct {
		Question      string
		CorrectAnswer string
	}{question, correctAnswer})
}

// BuildSubjectiveSolution renders the prompt asking for key points of a
// correct answer, used when the student left a subjective question blank.
func BuildSubjectiveSolution(question, rubric string) (string, error) {
	if rubric == "" {
		rubric = model.NotAvailable
	}
	return render("subjective_solution", struct {
		Question string
		Rubric   string
	}{question, rubric})
}

// BuildSubjectiveEval renders the rubric-based evaluation prompt for an
// answered subjective question. The user's answer is sanitized first.
func BuildSubjectiveEval(question, answer, rubric string) (string, error) {
	if rubric == "" {
		rubric = model.NotAvailable
	}
	return render("subjective_eval", struct {
		Question string
		Answer   string
		Rubric   string
	}{question, SanitizeAnswer(answer), rubric})
}

// BuildPlagiarism renders the similarity-analysis prompt comparing the
// user's answer against the supplied corpus.
func BuildPlagiarism(answer string, corpus []string) (string, error) {
	return render("plagiarism", struct {
		Answer string
		Corpus string
	}{SanitizeAnswer(answer), strings.Join(corpus, "\n")})
}

// BuildRecommendation renders the test-recommendation prompt from identified
// skill gaps and a free-form user profile.
func BuildRecommendation(skillGaps []string, profile map[string]any) (string, error) {
	return render("recommend", struct {
		SkillGaps string
		Profile   string
	}{strings.Join(skillGaps, ", "), formatProfile(profile)})
}

// formatProfile flattens the free-form profile in key order so identical
// requests produce identical prompts.
func formatProfile(profile map[string]any) string {
	if len(profile) == 0 {
		return model.NotAvailable
	}
	keys := make([]string, 0, len(profile))
	for k := range profile {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s: %v", k, profile[k]))
	}
	return strings.Join(parts, ", ")
}
