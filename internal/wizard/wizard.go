// Package wizard sequences a session through the question catalog: one
// phase at a time, one question at a time, gated on required answers.
package wizard

import (
	"fmt"

	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/entity"
)

type Wizard struct {
	catalog *catalog.Catalog
}

func New(c *catalog.Catalog) *Wizard {
	return &Wizard{catalog: c}
}

// InitialPosition returns the starting (phase, index) pair.
func (w *Wizard) InitialPosition() (entity.Phase, int) {
	return w.catalog.Phases()[0], 0
}

// CurrentQuestion returns the catalog entry at the session's position.
// Returns ErrOutOfRange once the session has moved past the last question of
// its phase (in particular, on the terminal analysis phase).
func (w *Wizard) CurrentQuestion(s *entity.Session) (entity.Question, error) {
	questions := w.catalog.Questions(s.CurrentPhase)
	if s.CurrentIndex < 0 || s.CurrentIndex >= len(questions) {
		return entity.Question{}, fmt.Errorf("%w: phase %s index %d", entity.ErrOutOfRange, s.CurrentPhase, s.CurrentIndex)
	}
	return questions[s.CurrentIndex], nil
}

// Validate reports whether the answer satisfies the question's required
// constraint. Non-required questions always validate.
func (w *Wizard) Validate(q entity.Question, a entity.Answer) bool {
	if !q.Required {
		return true
	}
	return !a.IsEmpty()
}

// Advance moves to the next question, rolling into the next phase when the
// current one is exhausted. A required question without a non-empty recorded
// answer blocks the move: ErrAnswerRequired is returned and the position is
// left untouched.
func (w *Wizard) Advance(s *entity.Session) error {
	q, err := w.CurrentQuestion(s)
	if err != nil {
		return err
	}

	if q.Required {
		if a, ok := s.Answers[q.ID]; !ok || a.IsEmpty() {
			return fmt.Errorf("%w: %s", entity.ErrAnswerRequired, q.ID)
		}
	}

	w.step(s)
	return nil
}

// Skip advances without an answer. Only permitted on non-required questions.
func (w *Wizard) Skip(s *entity.Session) error {
	q, err := w.CurrentQuestion(s)
	if err != nil {
		return err
	}

	if q.Required {
		return fmt.Errorf("%w: %s", entity.ErrSkipNotAllowed, q.ID)
	}

	w.step(s)
	return nil
}

// Retreat moves one question back. At index 0 of the first phase it is a
// no-op; at index 0 of any later phase it moves to the last question of the
// previous phase.
func (w *Wizard) Retreat(s *entity.Session) {
	if s.CurrentIndex > 0 {
		s.CurrentIndex--
		return
	}

	phases := w.catalog.Phases()
	for i, phase := range phases {
		if phase != s.CurrentPhase {
			continue
		}
		if i == 0 {
			return
		}
		prev := phases[i-1]
		s.CurrentPhase = prev
		if n := w.catalog.PhaseLength(prev); n > 0 {
			s.CurrentIndex = n - 1
		} else {
			s.CurrentIndex = 0
		}
		return
	}
}

// Completed reports whether the session has reached the terminal phase.
func (w *Wizard) Completed(s *entity.Session) bool {
	phases := w.catalog.Phases()
	return len(phases) > 0 && s.CurrentPhase == phases[len(phases)-1]
}

// step performs the unguarded index increment and phase rollover.
func (w *Wizard) step(s *entity.Session) {
	s.CurrentIndex++
	if s.CurrentIndex < w.catalog.PhaseLength(s.CurrentPhase) {
		return
	}

	phases := w.catalog.Phases()
	for i, phase := range phases {
		if phase == s.CurrentPhase && i+1 < len(phases) {
			s.CurrentPhase = phases[i+1]
			s.CurrentIndex = 0
			return
		}
	}
}
