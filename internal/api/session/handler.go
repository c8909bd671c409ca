package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/ifab-lab/workshop-backend/internal/pkg/logger"
	"github.com/ifab-lab/workshop-backend/internal/pkg/response"
	"github.com/ifab-lab/workshop-backend/internal/pkg/validator"
	"go.uber.org/zap"
)

const maxImportSize = 5 << 20 // 5 MiB snapshot cap

type Handler struct {
	usecase   SessionUsecase
	validator *validator.Validator
	catalog   *catalog.Catalog
}

func NewHandler(
	usecase SessionUsecase,
	validator *validator.Validator,
	cat *catalog.Catalog,
) *Handler {
	return &Handler{
		usecase:   usecase,
		validator: validator,
		catalog:   cat,
	}
}

// StartSession handles POST /workshop-session - Start new session
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "StartSession")

	session, err := h.usecase.StartSession(ctx)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusCreated, toSessionDTO(session, h.catalog))
}

// GetSession handles GET /workshop-session/{id} - Get session state
func (h *Handler) GetSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetSession")

	session, err := h.usecase.GetSession(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session, h.catalog))
}

// GetCurrentQuestion handles GET /workshop-session/{id}/question
func (h *Handler) GetCurrentQuestion(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetCurrentQuestion")

	dto, err := h.usecase.CurrentQuestion(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, dto)
}

// SubmitAnswer handles POST /workshop-session/{id}/answer/{question_id}
func (h *Handler) SubmitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SubmitAnswer")
	questionID := chi.URLParam(r, "question_id")
	ctx = logger.AddFields(ctx, zap.String("question_id", questionID))

	var req entity.SubmitAnswerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	session, err := h.usecase.RecordAnswer(ctx, sessionID, questionID, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session, h.catalog))
}

// SubmitAudioAnswer handles POST /workshop-session/{id}/answer/audio/{question_id}
func (h *Handler) SubmitAudioAnswer(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "SubmitAudioAnswer")
	questionID := chi.URLParam(r, "question_id")
	ctx = logger.AddFields(ctx, zap.String("question_id", questionID))

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "failed to parse form", err)
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "audio file is required", err)
		return
	}
	defer file.Close()

	if err := h.validator.ValidateAudioUpload(header); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	audioData, err := io.ReadAll(file)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "failed to read audio file", err)
		return
	}

	ctxzap.Info(ctx, "submitting audio answer", zap.Int64("size_bytes", header.Size))

	session, err := h.usecase.SubmitAudioAnswer(ctx, sessionID, questionID, audioData, header.Filename)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session, h.catalog))
}

// Advance handles POST /workshop-session/{id}/advance
func (h *Handler) Advance(w http.ResponseWriter, r *http.Request) {
	h.moveSession(w, r, "Advance", h.usecase.Advance)
}

// Retreat handles POST /workshop-session/{id}/back
func (h *Handler) Retreat(w http.ResponseWriter, r *http.Request) {
	h.moveSession(w, r, "Retreat", h.usecase.Retreat)
}

// Skip handles POST /workshop-session/{id}/skip
func (h *Handler) Skip(w http.ResponseWriter, r *http.Request) {
	h.moveSession(w, r, "Skip", h.usecase.Skip)
}

// ResetSession handles POST /workshop-session/{id}/reset
func (h *Handler) ResetSession(w http.ResponseWriter, r *http.Request) {
	h.moveSession(w, r, "ResetSession", h.usecase.ResetSession)
}

func (h *Handler) moveSession(w http.ResponseWriter, r *http.Request, action string, op func(context.Context, string) (*entity.Session, error)) {
	ctx, sessionID := h.sessionContext(r, action)

	session, err := op(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session, h.catalog))
}

// ExportSnapshot handles GET /workshop-session/{id}/export?version=1|2
func (h *Handler) ExportSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "ExportSnapshot")

	version := 1
	if v := r.URL.Query().Get("version"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			h.respondError(ctx, w, http.StatusBadRequest, "invalid version parameter", err)
			return
		}
		version = parsed
	}

	snapshot, err := h.usecase.ExportSnapshot(ctx, sessionID, version)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "failed to encode snapshot", err)
		return
	}

	response.File(w, "application/json", "workshop-snapshot.json", data)
}

// ImportSnapshot handles POST /workshop-session/{id}/import
func (h *Handler) ImportSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "ImportSnapshot")

	raw, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "failed to read request body", err)
		return
	}

	session, err := h.usecase.ImportSnapshot(ctx, sessionID, raw)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toSessionDTO(session, h.catalog))
}

// GenerateAnalysis handles POST /workshop-session/{id}/analysis
func (h *Handler) GenerateAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GenerateAnalysis")

	session, err := h.usecase.GenerateAnalysis(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toAnalysisDTO(session.Analysis))
}

// GetAnalysis handles GET /workshop-session/{id}/analysis
func (h *Handler) GetAnalysis(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetAnalysis")

	analysis, err := h.usecase.GetAnalysis(ctx, sessionID)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toAnalysisDTO(analysis))
}

// GetReport handles GET /workshop-session/{id}/report?format=markdown|docx|pdf
func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "GetReport")

	formatParam := r.URL.Query().Get("format")
	if formatParam == "" {
		formatParam = string(entity.FormatPDF)
	}

	report, err := h.usecase.BuildReport(ctx, sessionID, entity.ReportFormat(formatParam))
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.File(w, report.ContentType, report.Filename, report.Data)
}

// DeleteSession handles DELETE /workshop-session/{id}
func (h *Handler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	ctx, sessionID := h.sessionContext(r, "DeleteSession")

	if err := h.usecase.DeleteSession(ctx, sessionID); err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, map[string]string{
		"message": "session deleted successfully",
	})
}

// Helper methods
func (h *Handler) sessionContext(r *http.Request, action string) (context.Context, string) {
	sessionID := chi.URLParam(r, "id")
	ctx := logger.AddFields(r.Context(),
		zap.String("session_id", sessionID),
		zap.String("action", action),
	)
	return ctx, sessionID
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	ctxzap.Error(ctx, message, zap.Error(err))
	h.respondJSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrQuestionNotFound),
		errors.Is(err, entity.ErrNoAnalysis):
		h.respondError(ctx, w, http.StatusNotFound, "resource not found", err)

	case errors.Is(err, entity.ErrAnswerRequired),
		errors.Is(err, entity.ErrSkipNotAllowed),
		errors.Is(err, entity.ErrOutOfRange):
		h.respondError(ctx, w, http.StatusConflict, err.Error(), err)

	case errors.Is(err, entity.ErrInvalidParameter),
		errors.Is(err, entity.ErrInvalidFormat),
		errors.Is(err, entity.ErrMissingField),
		errors.Is(err, entity.ErrInvalidFile),
		errors.Is(err, entity.ErrSnapshotNoAnswers),
		errors.Is(err, entity.ErrSnapshotIncompatible),
		errors.Is(err, entity.ErrInvalidExtension),
		errors.Is(err, entity.ErrFileTooLarge):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)

	case errors.Is(err, entity.ErrAnalysisFailed):
		h.respondError(ctx, w, http.StatusBadGateway, err.Error(), err)

	default:
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
