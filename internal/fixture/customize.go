package fixture

import (
	"fmt"
	"strings"
)

// titleRunes caps the fragment taken from the caller's input.
const titleRunes = 60

// awsStack maps the generic stack tokens used in base fixtures to concrete AWS
// services for "aws" mode mashups. The table is fixed; tokens outside it pass
// through untouched.
var awsStack = map[string]string{
	"compute":        "AWS Lambda",
	"database":       "Amazon DynamoDB",
	"object storage": "Amazon S3",
	"message queue":  "Amazon SQS",
	"cache":          "Amazon ElastiCache",
	"auth service":   "Amazon Cognito",
	"cdn":            "Amazon CloudFront",
	"search index":   "Amazon OpenSearch",
}

// Mashup generation modes.
const (
	ModeClassic   = "classic"
	ModeAWS       = "aws"
	ModeCompanies = "companies"
)

// Manager supplies customized results for a given operation, locale, and
// caller input. Customization is deterministic: the same input always produces
// the same output, and with variability disabled the transform is the identity
// beyond title substitution.
type Manager struct {
	store       *Store
	variability bool
}

func NewManager(store *Store, enableVariability bool) *Manager {
	return &Manager{store: store, variability: enableVariability}
}

func (m *Manager) Store() *Store {
	return m.store
}

// AnalysisFixture fetches the base analysis fixture for the pair.
func (m *Manager) AnalysisFixture(operation, locale string) (*AnalysisResult, error) {
	return m.store.Analysis(operation, locale)
}

// CustomizeAnalysis derives a response from the caller's input text: the title
// comes from the input's first line, and with variability enabled each
// sub-score is perturbed by a small function of the input length so different
// inputs never collide on output.
func (m *Manager) CustomizeAnalysis(base *AnalysisResult, inputText string) *AnalysisResult {
	out := base.Clone()
	out.Title = titleFragment(inputText, base.Title)
	if !m.variability {
		return out
	}

	n := len([]rune(inputText))
	out.Scores.Originality = clampScore(out.Scores.Originality + n%7 - 3)
	out.Scores.Feasibility = clampScore(out.Scores.Feasibility + (n*3)%5 - 2)
	out.Scores.MarketPotential = clampScore(out.Scores.MarketPotential + n%11 - 5)
	out.Scores.WowFactor = clampScore(out.Scores.WowFactor + (n*7)%9 - 4)
	out.Scores.Scalability = clampScore(out.Scores.Scalability + n%5 - 2)
	out.OverallScore = meanScore(out.Scores)
	out.Summary = fmt.Sprintf("%s %s", summaryLead(inputText), base.Summary)
	return out
}

// CustomizeImprovements derives an improvement plan titled after the caller's
// idea, with projected scores perturbed the same way analysis scores are.
func (m *Manager) CustomizeImprovements(base *ImprovementPlan, inputText string) *ImprovementPlan {
	out := base.Clone()
	out.Title = fmt.Sprintf("Improvement Plan: %s", titleFragment(inputText, "Idea"))
	if !m.variability {
		return out
	}

	n := len([]rune(inputText))
	out.Projected.Originality = clampScore(out.Projected.Originality + n%7 - 3)
	out.Projected.Feasibility = clampScore(out.Projected.Feasibility + (n*3)%5 - 2)
	out.Projected.MarketPotential = clampScore(out.Projected.MarketPotential + n%11 - 5)
	out.Projected.WowFactor = clampScore(out.Projected.WowFactor + (n*7)%9 - 4)
	out.Projected.Scalability = clampScore(out.Projected.Scalability + n%5 - 2)
	return out
}

// CustomizeComparison titles the two sides after the callers' inputs and, with
// variability on, perturbs each side by its own input length so the comparison
// is not a fixed stalemate.
func (m *Manager) CustomizeComparison(base *Comparison, firstIdea, secondIdea string) *Comparison {
	out := base.Clone()
	if len(out.Ideas) == 2 {
		out.Ideas[0].Title = titleFragment(firstIdea, out.Ideas[0].Title)
		out.Ideas[1].Title = titleFragment(secondIdea, out.Ideas[1].Title)
	}
	if !m.variability || len(out.Ideas) != 2 {
		return out
	}

	for i, input := range []string{firstIdea, secondIdea} {
		n := len([]rune(input))
		s := &out.Ideas[i].Scores
		s.Originality = clampScore(s.Originality + n%7 - 3)
		s.Feasibility = clampScore(s.Feasibility + (n*3)%5 - 2)
		s.MarketPotential = clampScore(s.MarketPotential + n%11 - 5)
		s.WowFactor = clampScore(s.WowFactor + (n*7)%9 - 4)
		s.Scalability = clampScore(s.Scalability + n%5 - 2)
		out.Ideas[i].OverallScore = meanScore(*s)
	}
	if out.Ideas[0].OverallScore >= out.Ideas[1].OverallScore {
		out.Winner = 1
	} else {
		out.Winner = 2
	}
	return out
}

// CustomizeMashup applies the Frankenstein rule set: title shape and metric
// deltas follow the element count (more moving parts reads as more exciting
// but less buildable), and the mode substitutes concrete stacks or company
// names. All metric adjustments are clamped to [0, 100].
func (m *Manager) CustomizeMashup(base *MashupResult, elements []string, mode string) *MashupResult {
	out := base.Clone()
	out.Elements = append([]string(nil), elements...)

	joined := strings.Join(elements, " + ")
	switch {
	case len(elements) == 2:
		out.Title = joined + " Fusion Platform"
		out.Metrics.Originality = clampScore(out.Metrics.Originality + 5)
		out.Metrics.Feasibility = clampScore(out.Metrics.Feasibility + 5)
	case len(elements) == 3:
		out.Title = joined + " Integration Hub"
		out.Metrics.Originality = clampScore(out.Metrics.Originality + 12)
		out.Metrics.Feasibility = clampScore(out.Metrics.Feasibility - 8)
	default: // >= 4
		out.Title = joined + " Ecosystem"
		out.Metrics.Originality = clampScore(out.Metrics.Originality + 20)
		out.Metrics.WowFactor = clampScore(out.Metrics.WowFactor + 15)
		out.Metrics.Feasibility = clampScore(out.Metrics.Feasibility - 15)
	}

	switch mode {
	case ModeAWS:
		for i, token := range out.TechStack {
			if svc, ok := awsStack[strings.ToLower(token)]; ok {
				out.TechStack[i] = svc
			}
		}
		out.Metrics.Scalability = clampScore(out.Metrics.Scalability + 10)
		out.Metrics.Feasibility = clampScore(out.Metrics.Feasibility + 5)
	case ModeCompanies:
		// The façade validates element count, but guard direct callers too.
		if len(elements) >= 2 {
			out.ValueProposition = fmt.Sprintf(
				"Pairs %s's distribution with %s's product DNA. %s",
				elements[0], elements[1], base.ValueProposition)
			out.Metrics.Impact = clampScore(out.Metrics.Impact + 10)
			out.Metrics.WowFactor = clampScore(out.Metrics.WowFactor + 8)
		}
	}

	return out
}

// ---- helpers ----

// titleFragment takes the first line of the input, truncated to titleRunes.
// Blank input keeps the fallback title.
func titleFragment(input, fallback string) string {
	line := input
	if i := strings.IndexAny(input, "\r\n"); i >= 0 {
		line = input[:i]
	}
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return trimRunes(line, titleRunes)
}

func summaryLead(input string) string {
	return fmt.Sprintf("Assessment of %q.", titleFragment(input, "the submission"))
}

func trimRunes(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n]) + "…"
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func meanScore(s Scores) int {
	return (s.Originality + s.Feasibility + s.MarketPotential + s.WowFactor + s.Scalability) / 5
}
