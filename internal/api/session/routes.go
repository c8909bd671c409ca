package session

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers session routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/workshop-session", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Get("/{id}", h.GetSession)
		r.Delete("/{id}", h.DeleteSession)
		r.Get("/{id}/question", h.GetCurrentQuestion)
		r.Post("/{id}/answer/{question_id}", h.SubmitAnswer)
		r.Post("/{id}/answer/audio/{question_id}", h.SubmitAudioAnswer)
		r.Post("/{id}/advance", h.Advance)
		r.Post("/{id}/back", h.Retreat)
		r.Post("/{id}/skip", h.Skip)
		r.Post("/{id}/reset", h.ResetSession)
		r.Get("/{id}/export", h.ExportSnapshot)
		r.Post("/{id}/import", h.ImportSnapshot)
		r.Post("/{id}/analysis", h.GenerateAnalysis)
		r.Get("/{id}/analysis", h.GetAnalysis)
		r.Get("/{id}/report", h.GetReport)
	})
}
