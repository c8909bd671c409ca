package entity

import "errors"

// Domain errors
var (
	// Session errors
	ErrSessionNotFound  = errors.New("session not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrOutOfRange       = errors.New("question index out of range")
	ErrNoAnalysis       = errors.New("analysis result not available")

	// Wizard errors
	ErrAnswerRequired = errors.New("answer required before advancing")
	ErrSkipNotAllowed = errors.New("required question cannot be skipped")

	// Validation errors
	ErrMissingField     = errors.New("required field is missing")
	ErrInvalidFormat    = errors.New("invalid format")
	ErrInvalidParameter = errors.New("invalid parameter")

	// File errors
	ErrInvalidFile      = errors.New("invalid file")
	ErrFileTooLarge     = errors.New("file too large")
	ErrInvalidExtension = errors.New("invalid file extension")

	// Snapshot errors
	ErrSnapshotNoAnswers    = errors.New("snapshot is missing the 'answers' section")
	ErrSnapshotIncompatible = errors.New("snapshot version is incompatible")

	// Analysis errors
	ErrAnalysisFailed = errors.New("analysis failed on every configured model")
)
