package prompts

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var (
	userAnswerRegex         = regexp.MustCompile(`(?i)</?\s*user-answer\b[^>]*>`)
	systemInstructionsRegex = regexp.MustCompile(`(?i)</?\s*system-instructions\b[^>]*>`)
)

const maxAnswerRunes = 10000

// SanitizeAnswer strips prompt-injection tag markers from user-supplied text
// and caps its length before the text is embedded in a prompt.
func SanitizeAnswer(answer string) string {
	answer = userAnswerRegex.ReplaceAllString(answer, "")
	answer = systemInstructionsRegex.ReplaceAllString(answer, "")
	answer = strings.TrimSpace(answer)

	if answer == "" {
		return "[No answer provided]"
	}

	if utf8.RuneCountInString(answer) > maxAnswerRunes {
		runes := []rune(answer)
		answer = string(runes[:maxAnswerRunes]) + "\n\n[Answer truncated due to length]"
	}

	return answer
}
