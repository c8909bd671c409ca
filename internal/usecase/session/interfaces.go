package session

import (
	"context"

	"github.com/ifab-lab/workshop-backend/internal/entity"
)

type LLMConnector interface {
	Complete(ctx context.Context, req *entity.LLMCompleteRequest) (*entity.LLMCompleteResponse, error)
}

type ASRConnector interface {
	TranscribeBytes(ctx context.Context, audioData []byte, filename string) (string, error)
}

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	Get(ctx context.Context, sessionID string) (*entity.Session, error)
	Update(ctx context.Context, session *entity.Session) error
	Delete(ctx context.Context, sessionID string) error
}
