package assess

import (
	"math"
	"slices"
)

// Counts is the per-type question allocation derived from a generation
// request.
type Counts struct {
	MCQ        int
	Subjective int
}

// SplitCounts allocates total questions across the requested types. With
// both types selected, MCQs get round(total * 2/3) and subjective the rest,
// with each forced to at least 1 when total > 0. If the forced minimums push
// the sum past total, the strictly larger side is shrunk to fit; on a tie
// the subjective side gives way, so total=1 resolves to (1, 0).
func SplitCounts(total int, types []string) (Counts, error) {
	wantMCQ := slices.Contains(types, "mcq")
	wantSubjective := slices.Contains(types, "subjective")

	switch {
	case wantMCQ && wantSubjective:
		mcq := int(math.Round(float64(total) * 2 / 3))
		subjective := total - mcq
		if total > 0 {
			if mcq == 0 {
				mcq = 1
			}
			if subjective == 0 {
				subjective = 1
			}
			if mcq+subjective > total {
				if mcq > subjective {
					mcq = total - subjective
				} else {
					subjective = total - mcq
				}
			}
		}
		return Counts{MCQ: mcq, Subjective: subjective}, nil
	case wantMCQ:
		return Counts{MCQ: total}, nil
	case wantSubjective:
		return Counts{Subjective: total}, nil
	default:
		return Counts{}, ErrNoQuestionTypes
	}
}
