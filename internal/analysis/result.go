package analysis

import (
	"time"

	"github.com/ifab-lab/workshop-backend/internal/entity"
)

// BuildResult assembles the immutable AnalysisResult from a raw LLM reply:
// parsed sections, the score cascade and every derived estimate, computed
// once at generation time.
func BuildResult(raw, model string, answers map[string]entity.Answer, now time.Time) *entity.AnalysisResult {
	sections := ParseResponse(raw)
	impactX, impactY := ProcessPosition(sections, answers)

	return &entity.AnalysisResult{
		Sections:    sections,
		Score:       ExtractScore(sections),
		Feasibility: ExtractFeasibility(sections),
		Radar:       RadarValues(sections),
		Risks:       RiskLevels(sections),
		ImpactX:     impactX,
		ImpactY:     impactY,
		Model:       model,
		RawText:     raw,
		GeneratedAt: now,
	}
}
