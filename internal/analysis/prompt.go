package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ifab-lab/workshop-backend/internal/entity"
)

// missingAnswer is the fixed placeholder substituted for any answer the user
// never provided (or left empty).
const missingAnswer = "Non specificato"

// BuildPrompt renders the answer store into the consulting prompt sent to
// the LLM. Pure string templating: same answers, same prompt. The output
// template names every section heading verbatim; the response parser relies
// on the model echoing them back unchanged.
func BuildPrompt(answers map[string]entity.Answer) string {
	get := func(id string) string {
		return renderAnswer(answers[id])
	}

	var b strings.Builder

	b.WriteString("Sei un esperto consulente in trasformazione digitale e Agentic AI.\n")
	b.WriteString("Devi analizzare un progetto di reimplementazione di un processo aziendale con l'AI.\n\n")

	b.WriteString("# PROCESSO AS-IS (Situazione Attuale)\n\n")
	fmt.Fprintf(&b, "**Processo:** %s\n\n", get("as_is_processo"))
	fmt.Fprintf(&b, "**Step del processo:**\n%s\n\n", get("as_is_step"))
	fmt.Fprintf(&b, "**Ruoli coinvolti:**\n%s\n\n", get("as_is_ruoli"))
	fmt.Fprintf(&b, "**Problemi e criticità:**\n%s\n\n", get("as_is_problemi"))
	fmt.Fprintf(&b, "**Strumenti attuali:** %s\n\n", get("as_is_strumenti"))
	fmt.Fprintf(&b, "**Tempo stimato AS-IS:** %s\n\n", get("as_is_tempo"))

	b.WriteString("---\n\n# PROCESSO TO-BE (Con Agentic AI)\n\n")
	fmt.Fprintf(&b, "**Visione:** %s\n\n", get("to_be_visione"))
	fmt.Fprintf(&b, "**Agenti AI previsti:**\n%s\n\n", get("to_be_agenti"))
	fmt.Fprintf(&b, "**Input e output:**\n%s\n\n", get("to_be_input_output"))
	fmt.Fprintf(&b, "**Azioni autonome e limiti:**\n%s\n\n", get("to_be_azioni_limiti"))
	fmt.Fprintf(&b, "**Dati e sistemi:**\n%s\n\n", get("to_be_dati_sistemi"))
	fmt.Fprintf(&b, "**Tool da integrare:**\n%s\n\n", get("to_be_tool"))
	fmt.Fprintf(&b, "**Flusso agentico:**\n%s\n\n", get("to_be_flusso"))
	fmt.Fprintf(&b, "**Benefici previsti:**\n%s\n\n", get("to_be_benefici"))
	fmt.Fprintf(&b, "**Rischi identificati:**\n%s\n\n", get("to_be_rischi"))
	fmt.Fprintf(&b, "**Soluzioni esistenti:**\n%s\n\n", get("to_be_soluzioni"))
	fmt.Fprintf(&b, "**Metriche di successo:**\n%s\n\n", get("to_be_metriche"))
	fmt.Fprintf(&b, "**Timeline prevista:**\n%s\n\n", get("to_be_timeline"))
	fmt.Fprintf(&b, "**System Prompt:**\n%s\n\n", get("to_be_system_prompt"))

	b.WriteString("---\n\n# COMPITO\n\n")
	b.WriteString("Fornisci un'analisi approfondita e strutturata del progetto, seguendo ESATTAMENTE questo formato con i titoli indicati:\n\n")

	for _, section := range promptTemplate {
		fmt.Fprintf(&b, "## %s\n%s\n\n", section.marker, section.instruction)
	}

	b.WriteString("Rispondi in italiano, in modo professionale ma accessibile. Usa esempi concreti quando possibile.")

	return b.String()
}

// promptTemplate pairs every mandated heading with the instruction the model
// receives for that section. Markers come from sectionMarkers so the prompt
// and the parser cannot disagree.
var promptTemplate = []struct {
	marker      string
	instruction string
}{
	{sectionMarkers[0], "[Valuta la fattibilità tecnica del progetto su scala 1-5 e spiega. Considera: complessità tecnica, disponibilità di dati, integrazioni necessarie, maturità delle tecnologie]"},
	{sectionMarkers[1], "[Analizza se il progetto è orientato alla sostituzione completa del lavoro umano o all'augmentation (supporto). Considera: complessità del task, necessità di giudizio umano, rischio errori AI, impatto sul cliente, margine di errore ammesso. Fornisci una chiara raccomandazione.]"},
	{sectionMarkers[2], "[Calcola il risparmio di tempo confrontando AS-IS e TO-BE, se possibile. Fornisci stime percentuali o quantitative.]"},
	{sectionMarkers[3], "[Analizza quali costi potrebbero essere ridotti: personale, errori, ritardi, inefficienze]"},
	{sectionMarkers[4], "[Elenca le specifiche attività che verranno eliminate o significativamente velocizzate]"},
	{sectionMarkers[5], "[Identifica i principali rischi: tecnici, organizzativi, legali, privacy/GDPR, resistenza al cambiamento. Valuta la gravità di ciascuno.]"},
	{sectionMarkers[6], "[Specifica che tipo di formazione sarà necessaria per chi utilizzerà il sistema e per chi lo gestirà]"},
	{sectionMarkers[7], "[Analizza aspetti GDPR, privacy, responsabilità legale, audit trail, compliance]"},
	{sectionMarkers[8], "[Suggerisci se partire con un pilota, un MVP, o implementazione completa. Definisci fasi consigliate.]"},
	{sectionMarkers[9], "[Genera un diagramma Mermaid del flusso agentico proposto, con nodi per agenti AI, decisioni e azioni autonome, e frecce per il flusso.]"},
	{sectionMarkers[10], "[Fornisci 3-5 raccomandazioni chiave e concrete per il successo del progetto]"},
	{sectionMarkers[11], "[Assegna uno score finale al progetto su scala 1-10 considerando: fattibilità, impatto, rischi, costi/benefici. Spiega il punteggio.]"},
}

// renderAnswer flattens an answer into prompt text. Deterministic: map
// fields are emitted in sorted key order.
func renderAnswer(a entity.Answer) string {
	var parts []string

	if text := strings.TrimSpace(a.Text); text != "" {
		parts = append(parts, text)
	}

	for _, key := range sortedKeys(a.Fields) {
		if value := strings.TrimSpace(a.Fields[key]); value != "" {
			parts = append(parts, fmt.Sprintf("%s: %s", key, value))
		}
	}

	for _, sel := range a.Selected {
		line := sel
		if note := strings.TrimSpace(a.Notes[sel]); note != "" {
			line = fmt.Sprintf("%s (%s)", sel, note)
		}
		parts = append(parts, line)
	}

	// Notes not tied to a selection (e.g. the free "other" field).
	for _, key := range sortedKeys(a.Notes) {
		if containsString(a.Selected, key) {
			continue
		}
		if note := strings.TrimSpace(a.Notes[key]); note != "" {
			parts = append(parts, note)
		}
	}

	if len(parts) == 0 {
		return missingAnswer
	}
	return strings.Join(parts, "\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
