package entity

import "time"

type SubmitAnswerRequest struct {
	Answer  Answer `json:"answer"`
	Advance bool   `json:"advance,omitempty"`
}

type SessionDTO struct {
	ID           string    `json:"session_id"`
	CurrentPhase Phase     `json:"current_phase"`
	CurrentIndex int       `json:"current_index"`
	Answered     int       `json:"answered"`
	Total        int       `json:"total"`
	HasAnalysis  bool      `json:"has_analysis"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CurrentQuestionDTO pairs the active catalog entry with the answer recorded
// so far and the overall progress, which is what the wizard UI renders.
type CurrentQuestionDTO struct {
	SessionID string        `json:"session_id"`
	Phase     Phase         `json:"phase"`
	Index     int           `json:"index"`
	Question  Question      `json:"question"`
	Answer    *Answer       `json:"answer,omitempty"`
	Progress  PhaseProgress `json:"progress"`
}

// PhaseProgress reports answered/total counts overall and per phase.
type PhaseProgress struct {
	Answered int                 `json:"answered"`
	Total    int                 `json:"total"`
	Percent  float64             `json:"percent"`
	ByPhase  map[Phase]PhaseStat `json:"by_phase"`
}

type PhaseStat struct {
	Answered int `json:"answered"`
	Total    int `json:"total"`
}

// AnalysisDTO is the API projection of an AnalysisResult. Score and
// Feasibility stay nullable so the client can distinguish "unavailable"
// from a real value.
type AnalysisDTO struct {
	Sections    map[string]string `json:"sections"`
	Score       *int              `json:"score"`
	Feasibility *int              `json:"feasibility"`
	Radar       [5]float64        `json:"radar"`
	Risks       [5]int            `json:"risks"`
	ImpactX     float64           `json:"impact_x"`
	ImpactY     float64           `json:"impact_y"`
	Model       string            `json:"model"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
