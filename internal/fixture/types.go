// Package fixture holds the static example payloads the mock services return,
// keyed by operation and locale, plus the input-driven customization that keeps
// responses from being byte-identical canned data.
package fixture

// Operation names. These are the fixture keys and the labels used for request
// logging and metrics.
const (
	OpAnalyzeIdea         = "analyze_idea"
	OpAnalyzeHackathon    = "analyze_hackathon"
	OpSuggestImprovements = "suggest_improvements"
	OpCompareIdeas        = "compare_ideas"
	OpGenerateMashup      = "generate_mashup"
)

// Scores are the per-dimension sub-scores of an analysis. All values live in
// [0, 100].
type Scores struct {
	Originality     int `yaml:"originality" json:"originality"`
	Feasibility     int `yaml:"feasibility" json:"feasibility"`
	MarketPotential int `yaml:"market_potential" json:"marketPotential"`
	WowFactor       int `yaml:"wow_factor" json:"wowFactor"`
	Scalability     int `yaml:"scalability" json:"scalability"`
}

// AnalysisResult mirrors the real analysis service's response for both idea and
// hackathon-project analysis.
type AnalysisResult struct {
	Title        string   `yaml:"title" json:"title"`
	Summary      string   `yaml:"summary" json:"summary"`
	OverallScore int      `yaml:"overall_score" json:"overallScore"`
	Scores       Scores   `yaml:"scores" json:"scores"`
	Strengths    []string `yaml:"strengths" json:"strengths,omitempty"`
	Weaknesses   []string `yaml:"weaknesses" json:"weaknesses,omitempty"`
	Suggestions  []string `yaml:"suggestions" json:"suggestions,omitempty"`
}

func (a *AnalysisResult) Clone() *AnalysisResult {
	out := *a
	out.Strengths = append([]string(nil), a.Strengths...)
	out.Weaknesses = append([]string(nil), a.Weaknesses...)
	out.Suggestions = append([]string(nil), a.Suggestions...)
	return &out
}

// Partial drops the optional enrichments while keeping every required scored
// field, matching the partial_response scenario.
func (a *AnalysisResult) Partial() *AnalysisResult {
	out := a.Clone()
	out.Strengths = nil
	out.Weaknesses = nil
	out.Suggestions = nil
	return out
}

// Suggestion is one improvement recommendation.
type Suggestion struct {
	Priority    string `yaml:"priority" json:"priority"`
	Effort      string `yaml:"effort" json:"effort"`
	Description string `yaml:"description" json:"description"`
}

// ImprovementPlan is the suggest-improvements response.
type ImprovementPlan struct {
	Title       string       `yaml:"title" json:"title"`
	Summary     string       `yaml:"summary" json:"summary,omitempty"`
	Suggestions []Suggestion `yaml:"suggestions" json:"suggestions"`
	Projected   Scores       `yaml:"projected" json:"projected,omitempty"`
}

func (p *ImprovementPlan) Clone() *ImprovementPlan {
	out := *p
	out.Suggestions = append([]Suggestion(nil), p.Suggestions...)
	return &out
}

func (p *ImprovementPlan) Partial() *ImprovementPlan {
	out := p.Clone()
	out.Summary = ""
	out.Projected = Scores{}
	return out
}

// IdeaScore is one side of a comparison.
type IdeaScore struct {
	Title        string `yaml:"title" json:"title"`
	OverallScore int    `yaml:"overall_score" json:"overallScore"`
	Scores       Scores `yaml:"scores" json:"scores"`
}

// Comparison is the compare-ideas response. Ideas always has two entries;
// Winner is 1 or 2.
type Comparison struct {
	Winner    int         `yaml:"winner" json:"winner"`
	Rationale string      `yaml:"rationale" json:"rationale,omitempty"`
	Ideas     []IdeaScore `yaml:"ideas" json:"ideas"`
}

func (c *Comparison) Clone() *Comparison {
	out := *c
	out.Ideas = append([]IdeaScore(nil), c.Ideas...)
	return &out
}

func (c *Comparison) Partial() *Comparison {
	out := c.Clone()
	out.Rationale = ""
	return out
}

// MashupMetrics are the scored dimensions of a generated mashup.
type MashupMetrics struct {
	Originality int `yaml:"originality" json:"originality"`
	Feasibility int `yaml:"feasibility" json:"feasibility"`
	WowFactor   int `yaml:"wow_factor" json:"wowFactor"`
	Scalability int `yaml:"scalability" json:"scalability"`
	Impact      int `yaml:"impact" json:"impact"`
}

// MashupResult mirrors the Frankenstein generator's response.
type MashupResult struct {
	Title            string        `yaml:"title" json:"title"`
	ValueProposition string        `yaml:"value_proposition" json:"valueProposition"`
	Elements         []string      `yaml:"elements" json:"elements"`
	TechStack        []string      `yaml:"tech_stack" json:"techStack,omitempty"`
	NextSteps        []string      `yaml:"next_steps" json:"nextSteps,omitempty"`
	Metrics          MashupMetrics `yaml:"metrics" json:"metrics"`
}

func (m *MashupResult) Clone() *MashupResult {
	out := *m
	out.Elements = append([]string(nil), m.Elements...)
	out.TechStack = append([]string(nil), m.TechStack...)
	out.NextSteps = append([]string(nil), m.NextSteps...)
	return &out
}

func (m *MashupResult) Partial() *MashupResult {
	out := m.Clone()
	out.TechStack = nil
	out.NextSteps = nil
	return out
}
