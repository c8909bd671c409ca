package session

import (
	"context"

	"github.com/ifab-lab/workshop-backend/internal/entity"
	usecase "github.com/ifab-lab/workshop-backend/internal/usecase/session"
)

type SessionUsecase interface {
	StartSession(ctx context.Context) (*entity.Session, error)
	GetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	ResetSession(ctx context.Context, sessionID string) (*entity.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
	CurrentQuestion(ctx context.Context, sessionID string) (*entity.CurrentQuestionDTO, error)
	RecordAnswer(ctx context.Context, sessionID, questionID string, req *entity.SubmitAnswerRequest) (*entity.Session, error)
	SubmitAudioAnswer(ctx context.Context, sessionID, questionID string, audioData []byte, filename string) (*entity.Session, error)
	Advance(ctx context.Context, sessionID string) (*entity.Session, error)
	Retreat(ctx context.Context, sessionID string) (*entity.Session, error)
	Skip(ctx context.Context, sessionID string) (*entity.Session, error)
	GenerateAnalysis(ctx context.Context, sessionID string) (*entity.Session, error)
	GetAnalysis(ctx context.Context, sessionID string) (*entity.AnalysisResult, error)
	ExportSnapshot(ctx context.Context, sessionID string, version int) (any, error)
	ImportSnapshot(ctx context.Context, sessionID string, raw []byte) (*entity.Session, error)
	BuildReport(ctx context.Context, sessionID string, format entity.ReportFormat) (*usecase.ReportFile, error)
}
