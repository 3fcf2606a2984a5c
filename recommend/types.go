package recommend

// Priority levels for recommendation items.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityLow      = "low"
)

// Item is one schema recommendation with its static metadata.
type Item struct {
	Schema     string `json:"schema"`
	Priority   string `json:"priority"`
	Reason     string `json:"reason"`
	Impact     string `json:"impact"`
	Difficulty string `json:"difficulty"`
	SEOValue   int    `json:"seoValue"`
}

// Set partitions recommendations by tier. The three lists are disjoint by
// construction (drawn from disjoint catalog tiers) and contain only schema
// names absent from the page's existing markup.
type Set struct {
	Missing      []Item `json:"missing"`
	Improvements []Item `json:"improvements"`
	Optional     []Item `json:"optional"`
}

// PlanStep is one schema in the phased implementation plan, enriched with
// an effort estimate and a pre-filled JSON-LD snippet.
type PlanStep struct {
	Schema        string                 `json:"schema"`
	Priority      string                 `json:"priority"`
	EstimatedTime string                 `json:"estimatedTime"`
	Guide         []string               `json:"guide"`
	Snippet       map[string]interface{} `json:"snippet"`
}

// Plan phases the work: missing items are immediate, improvements are
// short-term, optional items are long-term.
type Plan struct {
	Immediate []PlanStep `json:"immediate"`
	ShortTerm []PlanStep `json:"shortTerm"`
	LongTerm  []PlanStep `json:"longTerm"`
}

// Benefits are bounded linear estimates over item counts. They are
// presentation heuristics, not measured outcomes; the exact coefficients
// are part of the output contract.
type Benefits struct {
	RichSnippetProbability int `json:"richSnippetProbability"`
	RankingImprovement     int `json:"rankingImprovement"`
	CTRImprovement         int `json:"ctrImprovement"`
	LocalSearchVisibility  int `json:"localSearchVisibility"`
}

// BusinessAdvice is the LocalBusiness-specific refinement block: a narrower
// subtype suggestion plus opening-hours and geo additions.
type BusinessAdvice struct {
	SuggestedSubtype string `json:"suggestedSubtype,omitempty"`
	SubtypeReason    string `json:"subtypeReason,omitempty"`
	AddOpeningHours  bool   `json:"addOpeningHours"`
	AddGeo           bool   `json:"addGeo"`
	Items            []Item `json:"items,omitempty"`
}

// Output is the full result of a recommendation pass.
type Output struct {
	Recommendations Set             `json:"recommendations"`
	Plan            Plan            `json:"implementationPlan"`
	Benefits        Benefits        `json:"expectedBenefits"`
	Business        *BusinessAdvice `json:"localBusiness,omitempty"`
	ExistingTypes   []string        `json:"existingTypes"`
}
