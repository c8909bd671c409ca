// Package listparse turns one free-text field into an ordered list of items.
// The same text box may receive typed, newline-separated input or voice
// transcriptions where items arrive comma- and period-separated, so the
// splitting style is auto-detected. Parsing is pure: callers persist only
// the raw text and re-parse on every render.
package listparse

import (
	"regexp"
	"strings"
)

const separator = "|||"

var (
	enumMarker     = regexp.MustCompile(`^\d+[\.\)\-\:]?\s*`)
	sentencePeriod = regexp.MustCompile(`\.\s+`)
)

// Steps parses process-step lists. Leading enumeration markers ("1.", "2)")
// are stripped, spoken input is additionally split on sentence-final periods,
// and fragments shorter than 2 characters are discarded.
func Steps(text string) []string {
	return parse(text, true, 2)
}

// Items parses lighter-weight lists (roles, time estimates): no enumeration
// stripping, no period splitting, fragments survive from 1 character up.
func Items(text string) []string {
	return parse(text, false, 1)
}

func parse(text string, stepMode bool, minLen int) []string {
	if text == "" {
		return nil
	}

	var fragments []string
	// Comma majority means spoken input: split on commas and semicolons
	// instead of raw newlines.
	if strings.Count(text, ",") > strings.Count(text, "\n") {
		normalized := strings.ReplaceAll(text, ";", separator)
		normalized = strings.ReplaceAll(normalized, ",", separator)
		if stepMode {
			// Period splits only when followed by whitespace, so decimals
			// like "2.5" stay intact.
			normalized = sentencePeriod.ReplaceAllString(normalized, separator)
		}
		normalized = strings.ReplaceAll(normalized, "\n", separator)
		fragments = strings.Split(normalized, separator)
	} else {
		fragments = strings.Split(strings.TrimSpace(text), "\n")
	}

	items := make([]string, 0, len(fragments))
	for _, fragment := range fragments {
		item := strings.TrimSpace(fragment)
		if stepMode {
			item = enumMarker.ReplaceAllString(item, "")
		}
		item = strings.TrimRight(item, ".,;:!?")
		item = strings.TrimSpace(item)

		if len([]rune(item)) >= minLen {
			items = append(items, item)
		}
	}

	if len(items) == 0 {
		return nil
	}
	return items
}
