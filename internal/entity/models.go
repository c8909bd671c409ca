package entity

import (
	"fmt"
	"strings"
	"time"
)

type Phase string

// Phases of the guided workshop. Navigation is strictly ordered: the user
// maps the current process (AS-IS), designs the AI-augmented one (TO-BE) and
// lands on the terminal analysis phase.
const (
	PhaseAsIs     Phase = "AS-IS"
	PhaseToBe     Phase = "TO-BE"
	PhaseAnalysis Phase = "ANALYSIS"
)

func (p Phase) Validate() error {
	switch p {
	case PhaseAsIs, PhaseToBe, PhaseAnalysis:
		return nil
	default:
		return fmt.Errorf("unknown phase: %s", p)
	}
}

type QuestionType string

const (
	TypeShortText          QuestionType = "SHORT_TEXT"
	TypeMultilineText      QuestionType = "MULTILINE_TEXT"
	TypeStructuredTable    QuestionType = "STRUCTURED_TABLE"
	TypeGroupedChecklist   QuestionType = "GROUPED_CHECKLIST"
	TypeSingleChoiceVisual QuestionType = "SINGLE_CHOICE_VISUAL"
	TypeMultiMetric        QuestionType = "MULTI_METRIC"
	TypeTimelineChoice     QuestionType = "TIMELINE_CHOICE"
)

func (qt QuestionType) Validate() error {
	switch qt {
	case TypeShortText, TypeMultilineText, TypeStructuredTable,
		TypeGroupedChecklist, TypeSingleChoiceVisual, TypeMultiMetric,
		TypeTimelineChoice:
		return nil
	default:
		return fmt.Errorf("unknown question type: %s", qt)
	}
}

// OtherOptionValue marks a free-form selection on checklist questions that
// accept entries outside the predefined options.
const OtherOptionValue = "other"

// ChoiceOption is one selectable entry of a checklist, visual selector,
// metric selector or timeline question.
type ChoiceOption struct {
	Value       string `json:"value"`
	Label       string `json:"label"`
	Description string `json:"description,omitempty"`
}

// Question is a catalog entry. Questions are defined at load time and never
// mutated; ordering within a phase drives wizard navigation.
type Question struct {
	ID          string         `json:"id"`
	Phase       Phase          `json:"phase"`
	Number      int            `json:"number"`
	Text        string         `json:"text"`
	Type        QuestionType   `json:"type"`
	Required    bool           `json:"required"`
	Help        string         `json:"help,omitempty"`
	Placeholder string         `json:"placeholder,omitempty"`
	Columns     []string       `json:"columns,omitempty"`
	Options     []ChoiceOption `json:"options,omitempty"`
	AllowOther  bool           `json:"allow_other,omitempty"`
}

// Answer holds the recorded value for one question. Which fields are set
// depends on the question type: Text for free text, Fields for tables and
// two-column input keyed by column name, Selected plus Notes for choice
// questions.
type Answer struct {
	Text     string            `json:"text,omitempty"`
	Fields   map[string]string `json:"fields,omitempty"`
	Selected []string          `json:"selected,omitempty"`
	Notes    map[string]string `json:"notes,omitempty"`
}

// IsEmpty reports whether the answer carries no content. Text answers are
// empty when whitespace-only; structured answers are empty only when every
// sub-field and selection is empty.
func (a Answer) IsEmpty() bool {
	if strings.TrimSpace(a.Text) != "" {
		return false
	}
	for _, v := range a.Fields {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	for _, s := range a.Selected {
		if strings.TrimSpace(s) != "" {
			return false
		}
	}
	for _, n := range a.Notes {
		if strings.TrimSpace(n) != "" {
			return false
		}
	}
	return true
}

// Session is the full state of one interactive workshop run. It has exactly
// one owner; import replaces it wholesale, reset restores the zero state.
type Session struct {
	ID           string            `json:"session_id"`
	Answers      map[string]Answer `json:"answers"`
	CurrentPhase Phase             `json:"current_phase"`
	CurrentIndex int               `json:"current_index"`
	Analysis     *AnalysisResult   `json:"analysis,omitempty"`
	CreatedAt    time.Time         `json:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at"`
}

// AnalysisResult is the structured form of one LLM feasibility analysis.
// Immutable once produced; regeneration discards and replaces it.
//
// Score and Feasibility are nil when no numeric pattern was found in the
// reply; consumers must render that as "unavailable", never as zero. Radar,
// Risks and the impact coordinates are keyword-based estimates, not
// authoritative parses.
type AnalysisResult struct {
	Sections    map[string]string `json:"sections"`
	Score       *int              `json:"score,omitempty"`
	Feasibility *int              `json:"feasibility,omitempty"`
	Radar       [5]float64        `json:"radar"`
	Risks       [5]int            `json:"risks"`
	ImpactX     float64           `json:"impact_x"`
	ImpactY     float64           `json:"impact_y"`
	Model       string            `json:"model"`
	RawText     string            `json:"raw_text"`
	GeneratedAt time.Time         `json:"generated_at"`
}

type ReportFormat string

const (
	FormatMarkdown ReportFormat = "markdown"
	FormatDOCX     ReportFormat = "docx"
	FormatPDF      ReportFormat = "pdf"
)

func (rf ReportFormat) Validate() error {
	switch rf {
	case FormatMarkdown, FormatDOCX, FormatPDF:
		return nil
	default:
		return fmt.Errorf("unknown report format: %s", rf)
	}
}
