package session

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/config"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	pkgRetry "github.com/ifab-lab/workshop-backend/internal/pkg/retry"
	"github.com/ifab-lab/workshop-backend/internal/pkg/validator"
	"github.com/ifab-lab/workshop-backend/internal/report"
	"github.com/ifab-lab/workshop-backend/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const analysisReply = `## FATTIBILITÀ TECNICA
Livello: 4/5. Il processo è ben strutturato.

## RISCHI E CRITICITÀ
Rischio basso e gestibile.

## SCORE COMPLESSIVO
8/10 - progetto promettente.
`

// stubLLM fails the models listed in failFor and answers with reply for
// everything else. Calls records the cascade order actually walked.
type stubLLM struct {
	failFor map[string]error
	reply   string
	calls   []string
}

func (s *stubLLM) Complete(_ context.Context, req *entity.LLMCompleteRequest) (*entity.LLMCompleteResponse, error) {
	s.calls = append(s.calls, req.Model)
	if err, ok := s.failFor[req.Model]; ok {
		return nil, err
	}
	return &entity.LLMCompleteResponse{Text: s.reply}, nil
}

type stubASR struct {
	transcription string
	err           error
}

func (s *stubASR) TranscribeBytes(_ context.Context, _ []byte, _ string) (string, error) {
	return s.transcription, s.err
}

func testLLMConfig() config.LLMConnectorConfig {
	return config.LLMConnectorConfig{
		Models:      []string{"model-small", "model-medium", "model-large"},
		MaxTokens:   4000,
		Temperature: 0.7,
		Retry: pkgRetry.RetryConfig{
			Attempts: 2,
			Delay:    time.Millisecond,
			MaxDelay: time.Millisecond,
		},
	}
}

func newTestUsecase(llm LLMConnector, asr ASRConnector) *SessionUsecase {
	return NewUsecase(
		repository.NewSessionRepository(time.Minute, time.Minute),
		catalog.Default(),
		validator.NewValidator(config.FileUploadConfig{MaxAudioFileSize: 1 << 20}),
		llm,
		asr,
		report.NewFactory(config.ReportConfig{Title: "Report", Organization: "Org"}),
		testLLMConfig(),
		zap.NewNop(),
	)
}

func startSession(t *testing.T, uc *SessionUsecase) *entity.Session {
	t.Helper()
	session, err := uc.StartSession(context.Background())
	require.NoError(t, err)
	return session
}

func TestStartSession_InitialPosition(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})

	session := startSession(t, uc)

	assert.NotEmpty(t, session.ID)
	assert.Equal(t, entity.PhaseAsIs, session.CurrentPhase)
	assert.Zero(t, session.CurrentIndex)
	assert.Empty(t, session.Answers)
}

func TestCurrentQuestion(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	dto, err := uc.CurrentQuestion(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, "as_is_processo", dto.Question.ID)
	assert.Nil(t, dto.Answer)
	assert.Zero(t, dto.Progress.Answered)
}

func TestRecordAnswer_WithoutAdvance(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	updated, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: "gestione ordini"},
	})
	require.NoError(t, err)

	assert.Equal(t, "gestione ordini", updated.Answers["as_is_processo"].Text)
	assert.Zero(t, updated.CurrentIndex)
}

func TestRecordAnswer_WithAdvance(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	updated, err := uc.RecordAnswer(context.Background(), session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer:  entity.Answer{Text: "gestione ordini"},
		Advance: true,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, updated.CurrentIndex)
}

func TestRecordAnswer_GatedAdvanceStillPersists(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	// An empty answer on a required question blocks the advance.
	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer:  entity.Answer{Text: "   "},
		Advance: true,
	})
	assert.ErrorIs(t, err, entity.ErrAnswerRequired)

	stored, err := uc.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Contains(t, stored.Answers, "as_is_processo")
	assert.Zero(t, stored.CurrentIndex)
}

func TestRecordAnswer_UnknownQuestion(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.RecordAnswer(context.Background(), session.ID, "nope", &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: "x"},
	})

	assert.ErrorIs(t, err, entity.ErrQuestionNotFound)
}

func TestAdvance_RequiresAnswer(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.Advance(context.Background(), session.ID)

	assert.ErrorIs(t, err, entity.ErrAnswerRequired)
}

func TestSkip_RequiredQuestionRejected(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.Skip(context.Background(), session.ID)

	assert.ErrorIs(t, err, entity.ErrSkipNotAllowed)
}

func TestRetreat_ClampsAtFirstQuestion(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	updated, err := uc.Retreat(context.Background(), session.ID)
	require.NoError(t, err)

	assert.Equal(t, entity.PhaseAsIs, updated.CurrentPhase)
	assert.Zero(t, updated.CurrentIndex)
}

func TestSubmitAudioAnswer(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{transcription: "trascrizione vocale"})
	session := startSession(t, uc)

	updated, err := uc.SubmitAudioAnswer(context.Background(), session.ID, "as_is_processo", []byte("audio"), "nota.wav")
	require.NoError(t, err)

	assert.Equal(t, "trascrizione vocale", updated.Answers["as_is_processo"].Text)
}

func TestSubmitAudioAnswer_TranscriptionFails(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{err: errors.New("service unavailable")})
	session := startSession(t, uc)

	_, err := uc.SubmitAudioAnswer(context.Background(), session.ID, "as_is_processo", []byte("audio"), "nota.wav")

	assert.ErrorContains(t, err, "transcribe audio")
}

func TestResetSession(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer:  entity.Answer{Text: "gestione ordini"},
		Advance: true,
	})
	require.NoError(t, err)

	reset, err := uc.ResetSession(ctx, session.ID)
	require.NoError(t, err)

	assert.Empty(t, reset.Answers)
	assert.Nil(t, reset.Analysis)
	assert.Equal(t, entity.PhaseAsIs, reset.CurrentPhase)
	assert.Zero(t, reset.CurrentIndex)
}

func TestDeleteSession(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	require.NoError(t, uc.DeleteSession(ctx, session.ID))

	_, err := uc.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
}

func TestGenerateAnalysis_FirstModelSucceeds(t *testing.T) {
	llm := &stubLLM{reply: analysisReply}
	uc := newTestUsecase(llm, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: "gestione ordini"},
	})
	require.NoError(t, err)

	updated, err := uc.GenerateAnalysis(ctx, session.ID)
	require.NoError(t, err)
	require.NotNil(t, updated.Analysis)

	assert.Equal(t, "model-small", updated.Analysis.Model)
	assert.Equal(t, []string{"model-small"}, llm.calls)
	require.NotNil(t, updated.Analysis.Score)
	assert.Equal(t, 8, *updated.Analysis.Score)
	require.NotNil(t, updated.Analysis.Feasibility)
	assert.Equal(t, 4, *updated.Analysis.Feasibility)
}

func TestGenerateAnalysis_CascadeFallsBack(t *testing.T) {
	llm := &stubLLM{
		reply:   analysisReply,
		failFor: map[string]error{"model-small": errors.New("overloaded")},
	}
	uc := newTestUsecase(llm, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: "gestione ordini"},
	})
	require.NoError(t, err)

	updated, err := uc.GenerateAnalysis(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, "model-medium", updated.Analysis.Model)
	// The failing model used its full retry budget before the fallback.
	assert.Equal(t, []string{"model-small", "model-small", "model-medium"}, llm.calls)
}

func TestGenerateAnalysis_CascadeExhausted(t *testing.T) {
	llm := &stubLLM{
		failFor: map[string]error{
			"model-small":  errors.New("overloaded"),
			"model-medium": errors.New("overloaded"),
			"model-large":  errors.New("quota exceeded"),
		},
	}
	uc := newTestUsecase(llm, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: "gestione ordini"},
	})
	require.NoError(t, err)

	_, err = uc.GenerateAnalysis(ctx, session.ID)

	assert.ErrorIs(t, err, entity.ErrAnalysisFailed)
	// The last model's error survives in the message.
	assert.ErrorContains(t, err, "quota exceeded")

	_, gerr := uc.GetAnalysis(ctx, session.ID)
	assert.ErrorIs(t, gerr, entity.ErrNoAnalysis)
}

func TestGenerateAnalysis_NoAnswers(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.GenerateAnalysis(context.Background(), session.ID)

	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestExportImportSnapshotV1RoundTrip(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer:  entity.Answer{Text: "gestione ordini"},
		Advance: true,
	})
	require.NoError(t, err)
	_, err = uc.GenerateAnalysis(ctx, session.ID)
	require.NoError(t, err)

	snap, err := uc.ExportSnapshot(ctx, session.ID, 1)
	require.NoError(t, err)
	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	// Import into a fresh session restores answers, position and analysis.
	target := startSession(t, uc)
	restored, err := uc.ImportSnapshot(ctx, target.ID, raw)
	require.NoError(t, err)

	assert.Equal(t, "gestione ordini", restored.Answers["as_is_processo"].Text)
	assert.Equal(t, entity.PhaseAsIs, restored.CurrentPhase)
	assert.Equal(t, 1, restored.CurrentIndex)
	require.NotNil(t, restored.Analysis)
	assert.Equal(t, "model-small", restored.Analysis.Model)
}

func TestExportImportSnapshotV2RoundTrip(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer:  entity.Answer{Text: "gestione ordini"},
		Advance: true,
	})
	require.NoError(t, err)

	snap, err := uc.ExportSnapshot(ctx, session.ID, 2)
	require.NoError(t, err)

	v2, ok := snap.(*entity.SnapshotV2)
	require.True(t, ok)
	assert.Equal(t, entity.SnapshotV2Tag, v2.Version)

	raw, err := json.Marshal(snap)
	require.NoError(t, err)

	target := startSession(t, uc)
	restored, err := uc.ImportSnapshot(ctx, target.ID, raw)
	require.NoError(t, err)

	assert.Equal(t, "gestione ordini", restored.Answers["as_is_processo"].Text)
	assert.Equal(t, 1, restored.CurrentIndex)
	// The condensed form never carries an analysis.
	assert.Nil(t, restored.Analysis)
}

func TestExportSnapshot_UnsupportedVersion(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.ExportSnapshot(context.Background(), session.ID, 3)

	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}

func TestImportSnapshot_MissingAnswers(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.ImportSnapshot(context.Background(), session.ID, []byte(`{"current_question": 3}`))

	assert.ErrorIs(t, err, entity.ErrSnapshotNoAnswers)
}

func TestImportSnapshot_UnknownVersion(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.ImportSnapshot(context.Background(), session.ID,
		[]byte(`{"version": "3.0", "answers": {}, "current_question": 0}`))

	assert.ErrorIs(t, err, entity.ErrSnapshotIncompatible)
}

func TestImportSnapshot_MalformedJSON(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.ImportSnapshot(context.Background(), session.ID, []byte(`{not json`))

	assert.ErrorIs(t, err, entity.ErrInvalidFile)
}

func TestBuildReport_Markdown(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)
	ctx := context.Background()

	_, err := uc.RecordAnswer(ctx, session.ID, "as_is_processo", &entity.SubmitAnswerRequest{
		Answer: entity.Answer{Text: "gestione ordini"},
	})
	require.NoError(t, err)
	_, err = uc.GenerateAnalysis(ctx, session.ID)
	require.NoError(t, err)

	file, err := uc.BuildReport(ctx, session.ID, entity.FormatMarkdown)
	require.NoError(t, err)

	assert.NotEmpty(t, file.Data)
	assert.Contains(t, file.Filename, ".md")
	assert.Contains(t, string(file.Data), "gestione ordini")
}

func TestBuildReport_WithoutAnalysis(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.BuildReport(context.Background(), session.ID, entity.FormatPDF)

	assert.ErrorIs(t, err, entity.ErrNoAnalysis)
}

func TestBuildReport_InvalidFormat(t *testing.T) {
	uc := newTestUsecase(&stubLLM{reply: analysisReply}, &stubASR{})
	session := startSession(t, uc)

	_, err := uc.BuildReport(context.Background(), session.ID, entity.ReportFormat("xlsx"))

	assert.ErrorIs(t, err, entity.ErrInvalidParameter)
}
