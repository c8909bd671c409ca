package asr

import (
	"context"
	"fmt"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector is a canned ASR implementation for local runs and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) TranscribeBytes(ctx context.Context, audioData []byte, filename string) (string, error) {
	if len(audioData) == 0 {
		return "", fmt.Errorf("empty audio data provided")
	}

	ctxzap.Info(ctx, "[MOCK] transcribing audio via ASR",
		zap.String("filename", filename),
		zap.Int("size", len(audioData)),
	)

	mockTranscription := `Il processo attuale prevede la ricezione delle richieste via email, la classificazione manuale da parte del team di supporto e l'inoltro al reparto competente. Le attività principali sono: raccolta della richiesta, verifica dei dati del cliente, ricerca nella knowledge base e preparazione della risposta.`

	ctxzap.Info(ctx, "[MOCK] audio transcribed", zap.Int("transcription_length", len(mockTranscription)))
	return mockTranscription, nil
}
