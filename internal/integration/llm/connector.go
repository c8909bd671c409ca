package llm

import (
	"context"
	"fmt"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/ifab-lab/workshop-backend/internal/integration/common"
	pkghttp "github.com/ifab-lab/workshop-backend/pkg/http"
	"go.uber.org/zap"
)

type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger),
		config:    cfg,
		logger:    logger,
	}
}

// Complete sends a completion request for a single model. Model fallback is
// handled by the caller, which owns the ordered model list.
func (c *Connector) Complete(ctx context.Context, req *entity.LLMCompleteRequest) (*entity.LLMCompleteResponse, error) {
	ctxzap.Info(ctx, "requesting completion via LLM service",
		zap.String("model", req.Model),
		zap.Int("prompt_length", len(req.Prompt)),
	)

	var resp entity.LLMCompleteResponse
	err := c.connector.DoRequest(ctx, http.MethodPost, c.config.CompleteEndpoint, req, &resp)
	if err != nil {
		return nil, fmt.Errorf("complete failed: %w", err)
	}

	if resp.Text == "" {
		return nil, fmt.Errorf("invalid completion response: empty or missing text field")
	}

	ctxzap.Info(ctx, "completion received", zap.Int("text_length", len(resp.Text)))

	return &resp, nil
}
