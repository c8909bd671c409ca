package analysis

// Section is a labeled analysis section in presentation order.
type Section struct {
	Key   string
	Label string
	Body  string
}

const introductionLabel = "Introduzione"

// OrderedSections returns the sections present in the map in the canonical
// heading order, introduction first. Absent sections are skipped.
func OrderedSections(sections map[string]string) []Section {
	out := make([]Section, 0, len(sections))

	if body, ok := sections[KeyIntroduction]; ok && body != "" {
		out = append(out, Section{Key: KeyIntroduction, Label: introductionLabel, Body: body})
	}

	for _, marker := range sectionMarkers {
		key := normalizeKey(marker)
		if body, ok := sections[key]; ok && body != "" {
			out = append(out, Section{Key: key, Label: marker, Body: body})
		}
	}

	return out
}
