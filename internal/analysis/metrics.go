package analysis

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/ifab-lab/workshop-backend/internal/pkg/listparse"
)

// The values in this file are keyword-driven estimates for the charts, not
// authoritative parses. Their only contract is determinism and staying
// inside the documented bounds.

var floatOutOfTenRe = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*10`)

// Radar axis order: feasibility, business impact, risk handling, expected
// ROI, ease of implementation. All values are in [1, 5].
func RadarValues(sections map[string]string) [5]float64 {
	var values [5]float64

	feasibility := strings.ToLower(sections[KeyFeasibility])
	if m := outOfFiveRe.FindStringSubmatch(feasibility); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			values[0] = clampFloat(f, 1, 5)
		}
	}
	if values[0] == 0 {
		switch {
		case containsAny(feasibility, "alta", "elevata", "ottima"):
			values[0] = 4.5
		case containsAny(feasibility, "media", "moderata"):
			values[0] = 3.0
		case containsAny(feasibility, "bassa", "difficile"):
			values[0] = 2.0
		default:
			values[0] = 3.5
		}
	}

	impact := strings.ToLower(sections[KeyCostCuts] + sections[KeyTimeSavings])
	switch {
	case containsAny(impact, "significativ", "notevole", "alto", "50%", "60%", "70%"):
		values[1] = 4.5
	case containsAny(impact, "moderat", "medio", "30%", "40%"):
		values[1] = 3.5
	default:
		values[1] = 3.0
	}

	risks := strings.ToLower(sections[KeyRisks])
	switch {
	case containsAny(risks, "alto rischio", "critico", "grave"):
		values[2] = 2.0
	case containsAny(risks, "medio", "moderato"):
		values[2] = 3.0
	case containsAny(risks, "basso", "minim", "gestibil"):
		values[2] = 4.5
	default:
		values[2] = 3.0
	}

	// ROI tracks the overall score halved onto the 5-point scale.
	if m := floatOutOfTenRe.FindStringSubmatch(sections[KeyScore]); m != nil {
		if f, err := strconv.ParseFloat(m[1], 64); err == nil {
			values[3] = clampFloat(f/2, 1, 5)
		}
	}
	if values[3] == 0 {
		values[3] = 3.5
	}

	ease := strings.ToLower(sections[KeyRoadmap] + sections[KeyTraining])
	switch {
	case containsAny(ease, "semplice", "facile", "rapida", "minima"):
		values[4] = 4.5
	case containsAny(ease, "complessa", "lunga", "estesa"):
		values[4] = 2.0
	default:
		values[4] = 3.0
	}

	return values
}

// Risk axis order: technical, privacy/GDPR, organizational, legal, change
// resistance. Severities are in [1, 5].
func RiskLevels(sections map[string]string) [5]int {
	var risks [5]int

	riskText := strings.ToLower(sections[KeyRisks])
	legalText := strings.ToLower(sections[KeyLegal])
	trainingText := strings.ToLower(sections[KeyTraining])

	switch {
	case containsAny(riskText, "tecnico alto", "complessita elevata", "complessità elevata"):
		risks[0] = 4
	case strings.Contains(riskText, "tecnic"):
		risks[0] = 3
	default:
		risks[0] = 2
	}

	if containsAny(legalText, "gdpr", "privacy", "dati personali") {
		if containsAny(legalText, "critico", "alto") {
			risks[1] = 4
		} else {
			risks[1] = 3
		}
	} else {
		risks[1] = 2
	}

	if containsAny(riskText, "cambiamento", "resistenza", "organizzativ") {
		risks[2] = 3
	} else {
		risks[2] = 2
	}

	if containsAny(legalText, "responsabilita", "responsabilità", "legal", "compliance") {
		risks[3] = 3
	} else {
		risks[3] = 2
	}

	if containsAny(riskText+trainingText, "resistenza", "change management") {
		risks[4] = 3
	} else {
		risks[4] = 2
	}

	return risks
}

// ProcessPosition places the project on the impact matrix. X measures
// process complexity from bounded counts of steps, systems and tools; Y
// measures AI autonomy from keyword presence in the impact section and the
// user's own autonomy answer. Both coordinates are clamped to [0.1, 0.9].
func ProcessPosition(sections map[string]string, answers map[string]entity.Answer) (float64, float64) {
	complexity := 0

	if steps := listparse.Steps(answerText(answers, "as_is_step")); len(steps) > 0 {
		complexity += minInt(len(steps), 10)
	}
	if systems := listparse.Items(answerText(answers, "to_be_dati_sistemi")); len(systems) > 0 {
		complexity += minInt(len(systems), 5)
	}
	if tools := listparse.Items(answerText(answers, "to_be_tool")); len(tools) > 0 {
		complexity += minInt(len(tools), 5)
	}

	x := clampFloat(float64(complexity)/15, 0.1, 0.9)

	autonomy := 0.5

	impactText := strings.ToLower(sections[KeyImpact])
	for _, kw := range []string{"sostituzione", "automazione completa", "completamente automatizzato", "senza intervento", "autonomo", "sostituire"} {
		if strings.Contains(impactText, kw) {
			autonomy += 0.1
		}
	}
	for _, kw := range []string{"augmentation", "supporto", "assistenza", "affiancamento", "supervisione", "approvazione", "revisione umana"} {
		if strings.Contains(impactText, kw) {
			autonomy -= 0.1
		}
	}

	limitsText := strings.ToLower(answerText(answers, "to_be_azioni_limiti"))
	if limitsText != "" {
		if containsAny(limitsText, "senza supervisione", "autonomamente", "automatico") {
			autonomy += 0.15
		}
		if containsAny(limitsText, "approvazione", "conferma", "supervisione", "controllo umano") {
			autonomy -= 0.15
		}
	}

	y := clampFloat(autonomy, 0.1, 0.9)

	return x, y
}

func answerText(answers map[string]entity.Answer, id string) string {
	a, ok := answers[id]
	if !ok {
		return ""
	}
	return renderAnswerText(a)
}

// renderAnswerText is renderAnswer without the missing-answer placeholder,
// so empty answers count as empty instead of as one item.
func renderAnswerText(a entity.Answer) string {
	text := renderAnswer(a)
	if text == missingAnswer {
		return ""
	}
	return text
}

func containsAny(text string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
