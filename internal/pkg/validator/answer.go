package validator

import (
	"fmt"

	"github.com/ifab-lab/workshop-backend/internal/entity"
)

// ValidateAnswerShape checks that the answer payload matches the shape the
// question type expects. Required-answer gating happens in the wizard; this
// only rejects structurally wrong payloads.
func (v *Validator) ValidateAnswerShape(q entity.Question, a entity.Answer) error {
	switch q.Type {
	case entity.TypeShortText, entity.TypeMultilineText:
		if len(a.Fields) > 0 || len(a.Selected) > 0 {
			return fmt.Errorf("%w: question %s accepts free text only", entity.ErrInvalidFormat, q.ID)
		}

	case entity.TypeStructuredTable:
		if len(a.Selected) > 0 {
			return fmt.Errorf("%w: question %s accepts table fields only", entity.ErrInvalidFormat, q.ID)
		}
		allowed := make(map[string]bool, len(q.Columns))
		for _, col := range q.Columns {
			allowed[col] = true
		}
		for key := range a.Fields {
			if !allowed[key] {
				return fmt.Errorf("%w: unknown column %q for question %s", entity.ErrInvalidFormat, key, q.ID)
			}
		}

	case entity.TypeGroupedChecklist, entity.TypeMultiMetric:
		if err := validateSelections(q, a); err != nil {
			return err
		}

	case entity.TypeSingleChoiceVisual, entity.TypeTimelineChoice:
		if len(a.Selected) > 1 {
			return fmt.Errorf("%w: question %s accepts a single choice", entity.ErrInvalidFormat, q.ID)
		}
		if err := validateSelections(q, a); err != nil {
			return err
		}

	default:
		return fmt.Errorf("%w: unknown question type %q", entity.ErrInvalidFormat, q.Type)
	}

	return nil
}

func validateSelections(q entity.Question, a entity.Answer) error {
	allowed := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		allowed[opt.Value] = true
	}

	for _, sel := range a.Selected {
		if allowed[sel] {
			continue
		}
		if q.AllowOther && sel == entity.OtherOptionValue {
			continue
		}
		return fmt.Errorf("%w: unknown option %q for question %s", entity.ErrInvalidFormat, sel, q.ID)
	}

	return nil
}
