package session

import (
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	usecase "github.com/ifab-lab/workshop-backend/internal/usecase/session"
)

func toSessionDTO(session *entity.Session, cat *catalog.Catalog) *entity.SessionDTO {
	return usecase.ToSessionDTO(session, cat)
}

func toAnalysisDTO(analysis *entity.AnalysisResult) *entity.AnalysisDTO {
	return usecase.ToAnalysisDTO(analysis)
}
