package analysis

import "strings"

// ParseResponse splits an LLM reply into a mapping of normalized section
// keys to body text. A line counts as a section header when it starts with a
// markdown heading marker and contains one of the expected labels. Body
// lines keep their relative order; blank lines are dropped. Text before the
// first header lands under "introduction". Headings the reply never
// produced are simply absent from the result; malformed input never fails.
func ParseResponse(text string) map[string]string {
	sections := make(map[string]string)

	currentKey := KeyIntroduction
	var body []string

	flush := func() {
		if len(body) > 0 {
			sections[currentKey] = strings.TrimSpace(strings.Join(body, "\n"))
			body = body[:0]
		}
	}

	for _, line := range strings.Split(text, "\n") {
		if label, ok := matchHeader(line); ok {
			flush()
			currentKey = normalizeKey(label)
			continue
		}
		if strings.TrimSpace(line) != "" {
			body = append(body, line)
		}
	}
	flush()

	return sections
}

func matchHeader(line string) (string, bool) {
	if !strings.HasPrefix(line, "#") {
		return "", false
	}
	for _, marker := range sectionMarkers {
		if strings.Contains(line, marker) {
			return marker, true
		}
	}
	return "", false
}
