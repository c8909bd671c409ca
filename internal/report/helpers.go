package report

import (
	"sort"
	"strconv"
	"strings"
)

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func joinLines(parts []string) string {
	return strings.Join(parts, "\n")
}

// scoreLabel renders the overall score, "N/D" (non disponibile) when the
// analysis reply carried no recognizable number.
func scoreLabel(score *int) string {
	if score == nil {
		return "N/D"
	}
	return strconv.Itoa(*score) + "/10"
}

func feasibilityLabel(level *int) string {
	if level == nil {
		return "N/D"
	}
	return strconv.Itoa(*level) + "/5"
}
