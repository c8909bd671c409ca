// Package analysis holds everything around the LLM feasibility analysis:
// building the prompt, splitting the reply back into sections, and the
// heuristic numeric estimates derived from them.
package analysis

import "strings"

// sectionMarkers are the headings the prompt template mandates, verbatim.
// The response parser matches these as substrings of markdown heading lines,
// so prompt and parser must never drift apart.
var sectionMarkers = []string{
	"FATTIBILITÀ TECNICA",
	"ANALISI IMPATTO: SOSTITUZIONE VS AUGMENTATION",
	"RISPARMIO DI TEMPO STIMATO",
	"RIDUZIONE COSTI",
	"ATTIVITÀ ELIMINATE O OTTIMIZZATE",
	"RISCHI E CRITICITÀ",
	"FORMAZIONE NECESSARIA",
	"PROBLEMI LEGALI E PRIVACY",
	"ROADMAP IMPLEMENTAZIONE",
	"DIAGRAMMA FLUSSO AGENTICO",
	"RACCOMANDAZIONI FINALI",
	"SCORE COMPLESSIVO",
}

// Normalized section keys used throughout the codebase.
const (
	KeyIntroduction = "introduction"
	KeyFeasibility  = "fattibilita_tecnica"
	KeyImpact       = "analisi_impatto_sostituzione_vs_augmentation"
	KeyTimeSavings  = "risparmio_di_tempo_stimato"
	KeyCostCuts     = "riduzione_costi"
	KeyActivities   = "attivita_eliminate_o_ottimizzate"
	KeyRisks        = "rischi_e_criticita"
	KeyTraining     = "formazione_necessaria"
	KeyLegal        = "problemi_legali_e_privacy"
	KeyRoadmap      = "roadmap_implementazione"
	KeyFlowDiagram  = "diagramma_flusso_agentico"
	KeyFinalAdvice  = "raccomandazioni_finali"
	KeyScore        = "score_complessivo"
)

var accentReplacer = strings.NewReplacer(
	"à", "a", "è", "e", "é", "e", "ì", "i", "ò", "o", "ù", "u",
	"á", "a", "í", "i", "ó", "o", "ú", "u",
)

// normalizeKey derives a stable ASCII map key from a heading label:
// lowercase, spaces to underscores, colons stripped, accented vowels
// replaced by their plain equivalents.
func normalizeKey(label string) string {
	key := strings.ToLower(label)
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, ":", "")
	return accentReplacer.Replace(key)
}
