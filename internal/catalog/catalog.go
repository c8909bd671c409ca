package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/ifab-lab/workshop-backend/internal/entity"
)

// Catalog is the immutable, ordered question set the wizard walks through.
// Navigation is purely index-based within a phase, so the slice order is
// load-bearing.
type Catalog struct {
	phases  []entity.Phase
	byPhase map[entity.Phase][]entity.Question
	byID    map[string]entity.Question
}

// New builds a catalog from question definitions grouped by phase. The phase
// order given here is the navigation order; the terminal ANALYSIS phase is
// appended implicitly and holds no questions.
func New(questions map[entity.Phase][]entity.Question) (*Catalog, error) {
	c := &Catalog{
		phases:  []entity.Phase{entity.PhaseAsIs, entity.PhaseToBe, entity.PhaseAnalysis},
		byPhase: make(map[entity.Phase][]entity.Question),
		byID:    make(map[string]entity.Question),
	}

	for phase, qs := range questions {
		if err := phase.Validate(); err != nil {
			return nil, err
		}
		c.byPhase[phase] = qs
		for _, q := range qs {
			if err := q.Type.Validate(); err != nil {
				return nil, fmt.Errorf("question %s: %w", q.ID, err)
			}
			if strings.TrimSpace(q.ID) == "" {
				return nil, fmt.Errorf("question in phase %s has empty id", phase)
			}
			if _, exists := c.byID[q.ID]; exists {
				return nil, fmt.Errorf("duplicate question id: %s", q.ID)
			}
			c.byID[q.ID] = q
		}
	}

	return c, nil
}

// Default returns the compiled-in workshop question set.
func Default() *Catalog {
	c, err := New(defaultQuestions())
	if err != nil {
		// The compiled-in set is validated by tests; reaching this is a bug.
		panic(fmt.Sprintf("invalid built-in catalog: %v", err))
	}
	return c
}

// catalogFile is the on-disk override format.
type catalogFile struct {
	Questions map[entity.Phase][]entity.Question `json:"questions"`
}

// LoadFile reads a catalog override from a JSON file. Callers fall back to
// Default when the file does not exist.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog JSON: %w", err)
	}

	if len(file.Questions) == 0 {
		return nil, fmt.Errorf("catalog file contains no questions: %s", path)
	}

	return New(file.Questions)
}

// Phases returns the navigation order, terminal phase included.
func (c *Catalog) Phases() []entity.Phase {
	return c.phases
}

// Questions returns the ordered questions of a phase.
func (c *Catalog) Questions(phase entity.Phase) []entity.Question {
	return c.byPhase[phase]
}

// PhaseLength returns the number of questions in a phase.
func (c *Catalog) PhaseLength(phase entity.Phase) int {
	return len(c.byPhase[phase])
}

// ByID looks a question up by id.
func (c *Catalog) ByID(id string) (entity.Question, error) {
	q, ok := c.byID[id]
	if !ok {
		return entity.Question{}, fmt.Errorf("%w: %s", entity.ErrQuestionNotFound, id)
	}
	return q, nil
}

// TotalQuestions counts questions across all phases.
func (c *Catalog) TotalQuestions() int {
	total := 0
	for _, qs := range c.byPhase {
		total += len(qs)
	}
	return total
}

// FlatIndex converts a (phase, index) position into a single index over the
// whole catalog, phases concatenated in navigation order. Snapshots store the
// position in this form.
func (c *Catalog) FlatIndex(phase entity.Phase, index int) int {
	flat := 0
	for _, p := range c.phases {
		if p == phase {
			return flat + index
		}
		flat += len(c.byPhase[p])
	}
	return flat
}

// PositionFromFlat is the inverse of FlatIndex. Out-of-range values clamp to
// the start of the terminal phase.
func (c *Catalog) PositionFromFlat(flat int) (entity.Phase, int) {
	if flat < 0 {
		flat = 0
	}
	for _, p := range c.phases {
		n := len(c.byPhase[p])
		if flat < n {
			return p, flat
		}
		flat -= n
	}
	return c.phases[len(c.phases)-1], 0
}

// Progress computes answered/total counts overall and per phase. An answer
// counts only if it is non-empty.
func (c *Catalog) Progress(answers map[string]entity.Answer) entity.PhaseProgress {
	progress := entity.PhaseProgress{
		ByPhase: make(map[entity.Phase]entity.PhaseStat),
	}

	for _, phase := range c.phases {
		stat := entity.PhaseStat{Total: len(c.byPhase[phase])}
		for _, q := range c.byPhase[phase] {
			if a, ok := answers[q.ID]; ok && !a.IsEmpty() {
				stat.Answered++
			}
		}
		progress.ByPhase[phase] = stat
		progress.Answered += stat.Answered
		progress.Total += stat.Total
	}

	if progress.Total > 0 {
		progress.Percent = float64(progress.Answered) / float64(progress.Total) * 100
	}
	return progress
}
