package analysis

import (
	"testing"

	"github.com/ifab-lab/workshop-backend/internal/entity"
	"github.com/stretchr/testify/assert"
)

func TestRadarValues_Defaults(t *testing.T) {
	values := RadarValues(map[string]string{})

	assert.Equal(t, [5]float64{3.5, 3.0, 3.0, 3.5, 3.0}, values)
}

func TestRadarValues_FeasibilityFromScale(t *testing.T) {
	values := RadarValues(map[string]string{KeyFeasibility: "Livello: 4/5"})

	assert.Equal(t, 4.0, values[0])
}

func TestRadarValues_FeasibilityFromKeywords(t *testing.T) {
	values := RadarValues(map[string]string{KeyFeasibility: "Fattibilità alta, tecnologie mature"})
	assert.Equal(t, 4.5, values[0])

	values = RadarValues(map[string]string{KeyFeasibility: "Fattibilità bassa"})
	assert.Equal(t, 2.0, values[0])
}

func TestRadarValues_ImpactKeywords(t *testing.T) {
	values := RadarValues(map[string]string{KeyTimeSavings: "Risparmio significativo, circa il 50% del tempo"})

	assert.Equal(t, 4.5, values[1])
}

func TestRadarValues_RiskInverted(t *testing.T) {
	// Low risk maps to a high risk-handling value.
	values := RadarValues(map[string]string{KeyRisks: "Rischio basso e gestibile"})
	assert.Equal(t, 4.5, values[2])

	values = RadarValues(map[string]string{KeyRisks: "Alto rischio critico"})
	assert.Equal(t, 2.0, values[2])
}

func TestRadarValues_ROIFromScore(t *testing.T) {
	values := RadarValues(map[string]string{KeyScore: "8/10"})

	assert.Equal(t, 4.0, values[3])
}

func TestRiskLevels_Defaults(t *testing.T) {
	risks := RiskLevels(map[string]string{})

	assert.Equal(t, [5]int{2, 2, 2, 2, 2}, risks)
}

func TestRiskLevels_PrivacyEscalation(t *testing.T) {
	risks := RiskLevels(map[string]string{KeyLegal: "Trattamento dati personali, GDPR critico"})

	assert.Equal(t, 4, risks[1])

	risks = RiskLevels(map[string]string{KeyLegal: "Attenzione al GDPR"})
	assert.Equal(t, 3, risks[1])
}

func TestRiskLevels_ChangeResistance(t *testing.T) {
	risks := RiskLevels(map[string]string{KeyRisks: "Possibile resistenza al cambiamento"})

	assert.Equal(t, 3, risks[2])
	assert.Equal(t, 3, risks[4])
}

func TestProcessPosition_EmptyAnswersLandLow(t *testing.T) {
	x, y := ProcessPosition(map[string]string{}, map[string]entity.Answer{})

	assert.Equal(t, 0.1, x)
	assert.Equal(t, 0.5, y)
}

func TestProcessPosition_ComplexityFromCounts(t *testing.T) {
	answers := map[string]entity.Answer{
		"as_is_step":         {Text: "uno due\ndue tre\ntre quattro"},
		"to_be_dati_sistemi": {Selected: []string{"crm", "docs"}},
		"to_be_tool":         {Text: "email"},
	}

	x, _ := ProcessPosition(map[string]string{}, answers)

	// 3 steps + 2 systems + 1 tool = 6 of 15.
	assert.InDelta(t, 6.0/15.0, x, 1e-9)
}

func TestProcessPosition_StepCountCapped(t *testing.T) {
	var steps string
	for i := 0; i < 20; i++ {
		steps += "passo importante\n"
	}
	answers := map[string]entity.Answer{"as_is_step": {Text: steps}}

	x, _ := ProcessPosition(map[string]string{}, answers)

	// 20 steps cap at 10 of 15.
	assert.InDelta(t, 10.0/15.0, x, 1e-9)
}

func TestProcessPosition_AutonomyNudges(t *testing.T) {
	sections := map[string]string{
		KeyImpact: "Sostituzione completa, processo autonomo senza intervento",
	}

	_, y := ProcessPosition(sections, map[string]entity.Answer{})

	// Three matched substitution keywords push autonomy to 0.8.
	assert.InDelta(t, 0.8, y, 1e-9)
}

func TestProcessPosition_UserLimitsPullDown(t *testing.T) {
	sections := map[string]string{KeyImpact: "augmentation con supervisione"}
	answers := map[string]entity.Answer{
		"to_be_azioni_limiti": {Text: "ogni azione richiede approvazione umana"},
	}

	_, y := ProcessPosition(sections, answers)

	// 0.5 - 0.1 (augmentation) - 0.1 (supervisione) - 0.15 (approvazione) = 0.15.
	assert.InDelta(t, 0.15, y, 1e-9)
}

func TestProcessPosition_Clamped(t *testing.T) {
	sections := map[string]string{
		KeyImpact: "sostituzione, automazione completa, completamente automatizzato, senza intervento, autonomo, sostituire",
	}
	answers := map[string]entity.Answer{
		"to_be_azioni_limiti": {Text: "tutto automatico"},
	}

	_, y := ProcessPosition(sections, answers)

	assert.Equal(t, 0.9, y)
}
