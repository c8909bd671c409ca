package session

import (
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/entity"
)

// ToSessionDTO projects a session onto its API representation.
func ToSessionDTO(s *entity.Session, cat *catalog.Catalog) *entity.SessionDTO {
	progress := cat.Progress(s.Answers)

	return &entity.SessionDTO{
		ID:           s.ID,
		CurrentPhase: s.CurrentPhase,
		CurrentIndex: s.CurrentIndex,
		Answered:     progress.Answered,
		Total:        progress.Total,
		HasAnalysis:  s.Analysis != nil,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

func toCurrentQuestionDTO(s *entity.Session, q entity.Question, progress entity.PhaseProgress) *entity.CurrentQuestionDTO {
	dto := &entity.CurrentQuestionDTO{
		SessionID: s.ID,
		Phase:     s.CurrentPhase,
		Index:     s.CurrentIndex,
		Question:  q,
		Progress:  progress,
	}

	if a, ok := s.Answers[q.ID]; ok {
		answer := a
		dto.Answer = &answer
	}

	return dto
}

// ToAnalysisDTO projects the analysis result onto its API representation.
func ToAnalysisDTO(a *entity.AnalysisResult) *entity.AnalysisDTO {
	return &entity.AnalysisDTO{
		Sections:    a.Sections,
		Score:       a.Score,
		Feasibility: a.Feasibility,
		Radar:       a.Radar,
		Risks:       a.Risks,
		ImpactX:     a.ImpactX,
		ImpactY:     a.ImpactY,
		Model:       a.Model,
		GeneratedAt: a.GeneratedAt,
	}
}
