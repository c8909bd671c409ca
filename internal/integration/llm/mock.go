package llm

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/ifab-lab/workshop-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector is a canned LLM implementation for local runs and tests.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

// Complete returns a fixed analysis reply following the same heading contract
// as the real service, so the full parse and report pipeline is exercised.
func (m *MockConnector) Complete(ctx context.Context, req *entity.LLMCompleteRequest) (*entity.LLMCompleteResponse, error) {
	ctxzap.Info(ctx, "[MOCK] requesting completion via LLM",
		zap.String("model", req.Model),
		zap.Int("prompt_length", len(req.Prompt)),
	)

	text := `Analisi di fattibilità per il processo descritto. Il caso d'uso presenta buone caratteristiche per un'automazione agentica. (MOCK)

## FATTIBILITÀ TECNICA
Livello: 4/5. Il processo è ben strutturato e le integrazioni richieste (CRM, knowledge base) sono supportate dalle piattaforme agentiche attuali.

## ANALISI IMPATTO: SOSTITUZIONE VS AUGMENTATION
Il sistema proposto si configura come augmentation del lavoro umano: l'agente supporta gli operatori nelle attività ripetitive mantenendo la supervisione umana sulle decisioni critiche.

## RISPARMIO DI TEMPO STIMATO
Si stima un risparmio significativo del tempo dedicato alle attività manuali, in particolare nella fase di raccolta e classificazione delle richieste.

## RIDUZIONE COSTI
Riduzione moderata dei costi operativi grazie all'ottimizzazione dei tempi di gestione.

## ATTIVITÀ ELIMINATE O OTTIMIZZATE
- Smistamento manuale delle richieste
- Ricerca di informazioni su sistemi multipli
- Compilazione di report ripetitivi

## RISCHI E CRITICITÀ
Rischio medio legato alla qualità dei dati di input e alla gestione dei casi limite. Necessaria una fase di monitoraggio iniziale.

## FORMAZIONE NECESSARIA
Formazione di base del team sulle modalità di interazione con l'agente e sulle procedure di escalation.

## PROBLEMI LEGALI E PRIVACY
Attenzione al trattamento di dati personali secondo GDPR. Richiesta una valutazione di impatto prima del rilascio in produzione.

## ROADMAP IMPLEMENTAZIONE
1. Fase pilota su un sottoinsieme del processo (4-6 settimane)
2. Estensione graduale con monitoraggio
3. Rilascio completo e ottimizzazione continua

## DIAGRAMMA FLUSSO AGENTICO
Input utente -> Agente di classificazione -> Agente di elaborazione -> Revisione umana -> Output

## RACCOMANDAZIONI FINALI
Procedere con un progetto pilota a perimetro ridotto, definendo metriche di successo chiare prima dell'estensione.

## SCORE COMPLESSIVO
Score: 7/10. Caso d'uso promettente con fattibilità tecnica solida e rischi gestibili.

---
*Analisi generata automaticamente (MOCK)*`

	ctxzap.Info(ctx, "[MOCK] completion generated", zap.Int("text_length", len(text)))
	return &entity.LLMCompleteResponse{Text: text}, nil
}
