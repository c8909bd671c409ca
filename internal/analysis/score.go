package analysis

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	outOfTenRe   = regexp.MustCompile(`(\d+)/10`)
	scoreLabelRe = regexp.MustCompile(`(?i)(?:Score|Punteggio):\s*(\d+)`)
	leadingIntRe = regexp.MustCompile(`^(\d+)`)

	outOfFiveRe  = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*5`)
	levelLabelRe = regexp.MustCompile(`(?i)(?:Level|Livello):\s*(\d+)`)
)

// ExtractScore pulls the overall 1-10 score out of the score section using a
// fallback cascade: "N/10", then "Score:/Punteggio: N", then a bare leading
// integer in range. nil means no score was found; callers must surface that
// as "unavailable", never as zero.
func ExtractScore(sections map[string]string) *int {
	text := sections[KeyScore]
	if text == "" {
		return nil
	}

	if m := outOfTenRe.FindStringSubmatch(text); m != nil {
		return atoiPtr(m[1])
	}

	if m := scoreLabelRe.FindStringSubmatch(text); m != nil {
		return atoiPtr(m[1])
	}

	if m := leadingIntRe.FindStringSubmatch(strings.TrimSpace(text)); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 && n <= 10 {
			return &n
		}
	}

	return nil
}

// ExtractFeasibility pulls the 1-5 technical feasibility level via "N/5" or
// "Level/Livello: N". nil when absent.
func ExtractFeasibility(sections map[string]string) *int {
	text := sections[KeyFeasibility]
	if text == "" {
		return nil
	}

	if m := outOfFiveRe.FindStringSubmatch(text); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			n := int(f)
			return &n
		}
	}

	if m := levelLabelRe.FindStringSubmatch(text); m != nil {
		return atoiPtr(m[1])
	}

	return nil
}

func atoiPtr(s string) *int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}
