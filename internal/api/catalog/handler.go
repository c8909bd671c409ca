package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/ifab-lab/workshop-backend/internal/catalog"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/ifab-lab/workshop-backend/internal/pkg/response"
)

type Handler struct {
	catalog *catalog.Catalog
}

func NewHandler(cat *catalog.Catalog) *Handler {
	return &Handler{catalog: cat}
}

type questionsResponse struct {
	Phases    []entity.Phase                     `json:"phases"`
	Questions map[entity.Phase][]entity.Question `json:"questions"`
	Total     int                                `json:"total"`
}

// GetQuestions handles GET /questions - the full catalog listing
func (h *Handler) GetQuestions(w http.ResponseWriter, r *http.Request) {
	resp := questionsResponse{
		Phases:    h.catalog.Phases(),
		Questions: make(map[entity.Phase][]entity.Question),
		Total:     h.catalog.TotalQuestions(),
	}
	for _, phase := range h.catalog.Phases() {
		resp.Questions[phase] = h.catalog.Questions(phase)
	}

	response.Success(w, resp)
}

// RegisterRoutes registers catalog routes
func RegisterRoutes(r chi.Router, h *Handler) {
	r.Get("/questions", h.GetQuestions)
}
