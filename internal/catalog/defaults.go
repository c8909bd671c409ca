package catalog

import "github.com/ifab-lab/workshop-backend/internal/entity"

// defaultQuestions is the built-in workshop questionnaire: the AS-IS phase
// maps the current process, the TO-BE phase designs its agentic-AI version.
// Wording is kept in Italian to match the prompt the analysis is built from.
func defaultQuestions() map[entity.Phase][]entity.Question {
	return map[entity.Phase][]entity.Question{
		entity.PhaseAsIs: {
			{
				ID:          "as_is_processo",
				Phase:       entity.PhaseAsIs,
				Number:      1,
				Text:        "Qual è il processo che stai analizzando?",
				Type:        entity.TypeShortText,
				Required:    true,
				Help:        "Esempi: gestione ordini, gestione reclami, selezione del personale, redazione di offerte commerciali",
				Placeholder: "Descrivi il processo aziendale che vuoi analizzare...",
			},
			{
				ID:          "as_is_step",
				Phase:       entity.PhaseAsIs,
				Number:      2,
				Text:        "Quali sono i singoli passi (step)?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Scrivili uno per riga, oppure dettali a voce separandoli con virgole.",
				Placeholder: "Esempio: 1. Ricezione richiesta cliente\n2. Verifica disponibilità\n3. Preparazione preventivo...",
			},
			{
				ID:       "as_is_ruoli",
				Phase:    entity.PhaseAsIs,
				Number:   3,
				Text:     "Chi esegue attualmente ciascun passo?",
				Type:     entity.TypeStructuredTable,
				Required: true,
				Help:     "Specifica i ruoli, non solo i nomi (es. HR, Customer Service, Sales Manager)",
				Columns:  []string{"Step", "Ruolo Responsabile", "N. Persone Coinvolte"},
			},
			{
				ID:          "as_is_strumenti",
				Phase:       entity.PhaseAsIs,
				Number:      4,
				Text:        "Quali strumenti o software vengono usati?",
				Type:        entity.TypeMultilineText,
				Required:    false,
				Help:        "Esempi: Excel, CRM, Outlook, ERP, software specifici",
				Placeholder: "Elenca gli strumenti utilizzati...",
			},
			{
				ID:       "as_is_tempo",
				Phase:    entity.PhaseAsIs,
				Number:   5,
				Text:     "Quanto tempo richiede ogni passo?",
				Type:     entity.TypeStructuredTable,
				Required: false,
				Help:     "Anche stime 'a spanne' vanno bene (es. 10 minuti, 2 giorni)",
				Columns:  []string{"Step", "Tempo Stimato", "Unità (min/ore/giorni)"},
			},
			{
				ID:          "as_is_problemi",
				Phase:       entity.PhaseAsIs,
				Number:      6,
				Text:        "Quali sono i problemi e le criticità?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Esempi: passaggi ripetitivi, errori frequenti, ritardi, troppe attività manuali, colli di bottiglia",
				Placeholder: "Descrivi i principali problemi e inefficienze del processo attuale...",
			},
		},
		entity.PhaseToBe: {
			{
				ID:          "to_be_visione",
				Phase:       entity.PhaseToBe,
				Number:      1,
				Text:        "Come immagini il nuovo processo con l'agentic AI?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Descrivi la tua visione del processo trasformato",
				Placeholder: "Descrivi come sarà il processo dopo l'introduzione dell'AI...",
			},
			{
				ID:       "to_be_agenti",
				Phase:    entity.PhaseToBe,
				Number:   2,
				Text:     "Quanti e quali agenti AI immagini? Qual è il loro obiettivo?",
				Type:     entity.TypeStructuredTable,
				Required: true,
				Help:     "Esempi: Agentic Lead (arricchimento lead), Agentic Knowledge (consultazione KB), Agentic Support (gestione ticket)",
				Columns:  []string{"Nome Agente", "Obiettivo/Scopo", "Tipologia"},
			},
			{
				ID:          "to_be_input_output",
				Phase:       entity.PhaseToBe,
				Number:      3,
				Text:        "Quali input riceve e quali output produce?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Specifica formati, canali, documenti generati per ciascun agente",
				Placeholder: "Esempio: Input: Email cliente, documenti PDF. Output: Risposta strutturata, ticket aggiornato...",
			},
			{
				ID:          "to_be_azioni_limiti",
				Phase:       entity.PhaseToBe,
				Number:      4,
				Text:        "Quali azioni deve sapere eseguire in autonomia e con quali limiti?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Decisioni consentite, intervento umano necessario, soglie di confidenza, escalation umana",
				Placeholder: "Esempio: Può rispondere autonomamente a domande standard, ma deve escalare se confidenza < 80%...",
			},
			{
				ID:         "to_be_dati_sistemi",
				Phase:      entity.PhaseToBe,
				Number:     5,
				Text:       "Su quali dati e sistemi lavora?",
				Type:       entity.TypeGroupedChecklist,
				Required:   true,
				Help:       "Seleziona tutte le fonti di dati che l'AI dovrebbe consultare",
				AllowOther: true,
				Options: []entity.ChoiceOption{
					{Value: "crm", Label: "Database clienti (CRM)", Description: "Anagrafica clienti, storico interazioni, preferenze"},
					{Value: "tickets", Label: "Storico conversazioni/ticket", Description: "Email, chat, telefonate precedenti"},
					{Value: "docs", Label: "Documenti e policy aziendali", Description: "Manuali, FAQ, procedure interne"},
					{Value: "product", Label: "Dati di prodotto/servizio", Description: "Catalogo, specifiche tecniche, prezzi"},
					{Value: "external", Label: "Fonti esterne", Description: "Web, API terze parti, database pubblici"},
				},
			},
			{
				ID:          "to_be_tool",
				Phase:       entity.PhaseToBe,
				Number:      6,
				Text:        "Quali tool deve integrare?",
				Type:        entity.TypeMultilineText,
				Required:    false,
				Help:        "Esempi: Calendari, email, database, API esterne, sistemi di pagamento",
				Placeholder: "Elenca i tool e le integrazioni necessarie...",
			},
			{
				ID:       "to_be_flusso",
				Phase:    entity.PhaseToBe,
				Number:   7,
				Text:     "Quale flusso agentico state immaginando?",
				Type:     entity.TypeSingleChoiceVisual,
				Required: true,
				Help:     "Seleziona il template che più si avvicina alla tua idea",
				Options: []entity.ChoiceOption{
					{Value: "single_agent", Label: "Assistente Unico", Description: "Un solo agente AI gestisce l'intero processo end-to-end"},
					{Value: "multi_agent", Label: "Team di Specialisti", Description: "Più agenti AI specializzati collaborano in sequenza o in parallelo"},
					{Value: "orchestrator", Label: "Orchestratore", Description: "Un agente coordinatore smista il lavoro ad agenti esecutori"},
					{Value: "router", Label: "Router", Description: "Un classificatore indirizza ogni richiesta all'agente giusto"},
					{Value: "feedback_loop", Label: "Loop di Feedback", Description: "Un agente produce, un altro valuta e richiede correzioni"},
				},
			},
			{
				ID:          "to_be_soluzioni",
				Phase:       entity.PhaseToBe,
				Number:      8,
				Text:        "Esistono già soluzioni da acquistare adatte e affidabili?",
				Type:        entity.TypeMultilineText,
				Required:    false,
				Help:        "Se sì, quali? Indicare vendor, prodotti, costi stimati",
				Placeholder: "Esempio: Intercom AI Agent, Zendesk AI, custom con LangChain...",
			},
			{
				ID:       "to_be_tempo",
				Phase:    entity.PhaseToBe,
				Number:   9,
				Text:     "Quanto tempo richiederà ogni step nel TO-BE?",
				Type:     entity.TypeStructuredTable,
				Required: false,
				Help:     "Idealmente minore rispetto all'AS-IS. Anche stime vanno bene.",
				Columns:  []string{"Step", "Tempo Stimato", "Unità (min/ore/giorni)"},
			},
			{
				ID:          "to_be_benefici",
				Phase:       entity.PhaseToBe,
				Number:      10,
				Text:        "Quali benefici prevedi?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Esempi: meno errori, più velocità, minor costo, meno carico di lavoro, migliore customer experience",
				Placeholder: "Descrivi i benefici attesi dall'implementazione...",
			},
			{
				ID:          "to_be_rischi",
				Phase:       entity.PhaseToBe,
				Number:      11,
				Text:        "Ci sono rischi o ostacoli da gestire?",
				Type:        entity.TypeMultilineText,
				Required:    true,
				Help:        "Esempi: resistenze interne, costi iniziali, privacy/GDPR, training necessario, change management",
				Placeholder: "Identifica i principali rischi e ostacoli...",
			},
			{
				ID:          "to_be_system_prompt",
				Phase:       entity.PhaseToBe,
				Number:      12,
				Text:        "Abbozziamo un system prompt?",
				Type:        entity.TypeMultilineText,
				Required:    false,
				Help:        "Prova a scrivere le istruzioni che daresti all'agente AI principale",
				Placeholder: "Sei un assistente AI che...",
			},
			{
				ID:       "to_be_metriche",
				Phase:    entity.PhaseToBe,
				Number:   13,
				Text:     "Come misurerai il successo di questo progetto?",
				Type:     entity.TypeMultiMetric,
				Required: false,
				Help:     "Seleziona le metriche e indica un target per ciascuna",
				Options: []entity.ChoiceOption{
					{Value: "tempo_risposta", Label: "Tempo di risposta", Description: "Da richiesta a risposta completata"},
					{Value: "costo_pratica", Label: "Costo per pratica", Description: "Costo pieno di una singola esecuzione"},
					{Value: "tasso_errore", Label: "Tasso di errore", Description: "Percentuale di esecuzioni da rilavorare"},
					{Value: "soddisfazione", Label: "Soddisfazione cliente", Description: "NPS o CSAT"},
					{Value: "volume_gestito", Label: "Volume gestito", Description: "Pratiche completate per periodo"},
				},
			},
			{
				ID:       "to_be_timeline",
				Phase:    entity.PhaseToBe,
				Number:   14,
				Text:     "Quando vorresti partire e con quale approccio?",
				Type:     entity.TypeTimelineChoice,
				Required: false,
				Help:     "Un pilota limitato riduce il rischio; il full deployment accelera il ritorno",
				Options: []entity.ChoiceOption{
					{Value: "pilot_1m", Label: "Pilota entro 1 mese", Description: "Perimetro ristretto, pochi utenti, misurazione rapida"},
					{Value: "pilot_3m", Label: "Pilota entro 3 mesi", Description: "Tempo per preparare dati e integrazioni"},
					{Value: "mvp_6m", Label: "MVP entro 6 mesi", Description: "Prima versione utilizzabile in produzione"},
					{Value: "full_12m", Label: "Full deployment entro 12 mesi", Description: "Rollout completo sul processo"},
				},
			},
		},
		entity.PhaseAnalysis: {},
	}
}
