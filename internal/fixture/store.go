package fixture

import (
	"embed"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed fixtures/*.yaml
var fixtureFS embed.FS

// NotFoundError signals that no base fixture exists for an
// (operation, locale) pair. This is a configuration mistake and is never
// recoverable at runtime.
type NotFoundError struct {
	Operation string
	Locale    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("fixture: no fixture for operation %q, locale %q", e.Operation, e.Locale)
}

// MalformedError signals a fixture that parsed but is missing required fields
// or carries out-of-range scores. Store construction fails loudly on these.
type MalformedError struct {
	Operation string
	Locale    string
	Reason    string
}

func (e *MalformedError) Error() string {
	return fmt.Sprintf("fixture: malformed fixture %s/%s: %s", e.Operation, e.Locale, e.Reason)
}

// localeSet is one locale's fixture document. Operations absent from the file
// stay nil and surface as NotFoundError on lookup.
type localeSet struct {
	AnalyzeIdea         *AnalysisResult  `yaml:"analyze_idea"`
	AnalyzeHackathon    *AnalysisResult  `yaml:"analyze_hackathon"`
	SuggestImprovements *ImprovementPlan `yaml:"suggest_improvements"`
	CompareIdeas        *Comparison      `yaml:"compare_ideas"`
	GenerateMashup      *MashupResult    `yaml:"generate_mashup"`
}

// Store is the loaded-once, immutable fixture table. Lookups return deep
// copies; the base fixtures are never handed out directly, so customization
// cannot contaminate later calls.
type Store struct {
	locales map[string]*localeSet
}

// NewStore parses and validates every embedded fixture document. Any malformed
// fixture fails construction; mock correctness is load-bearing for test trust,
// so nothing is skipped silently.
func NewStore() (*Store, error) {
	entries, err := fs.Glob(fixtureFS, "fixtures/*.yaml")
	if err != nil {
		return nil, fmt.Errorf("fixture: glob embedded fixtures: %w", err)
	}
	sort.Strings(entries)

	s := &Store{locales: make(map[string]*localeSet)}
	for _, path := range entries {
		locale := strings.TrimSuffix(filepath.Base(path), ".yaml")

		raw, err := fixtureFS.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("fixture: read %s: %w", path, err)
		}

		set := &localeSet{}
		if err := yaml.Unmarshal(raw, set); err != nil {
			return nil, fmt.Errorf("fixture: parse %s: %w", path, err)
		}
		if err := set.validate(locale); err != nil {
			return nil, err
		}
		s.locales[locale] = set
	}
	if len(s.locales) == 0 {
		return nil, fmt.Errorf("fixture: no fixture documents embedded")
	}
	return s, nil
}

// Locales lists the available fixture locales in sorted order.
func (s *Store) Locales() []string {
	out := make([]string, 0, len(s.locales))
	for l := range s.locales {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Has reports whether a base fixture exists for the pair.
func (s *Store) Has(operation, locale string) bool {
	set, ok := s.locales[locale]
	if !ok {
		return false
	}
	switch operation {
	case OpAnalyzeIdea:
		return set.AnalyzeIdea != nil
	case OpAnalyzeHackathon:
		return set.AnalyzeHackathon != nil
	case OpSuggestImprovements:
		return set.SuggestImprovements != nil
	case OpCompareIdeas:
		return set.CompareIdeas != nil
	case OpGenerateMashup:
		return set.GenerateMashup != nil
	}
	return false
}

// Analysis returns a copy of the analysis fixture for OpAnalyzeIdea or
// OpAnalyzeHackathon.
func (s *Store) Analysis(operation, locale string) (*AnalysisResult, error) {
	set, ok := s.locales[locale]
	if !ok {
		return nil, &NotFoundError{Operation: operation, Locale: locale}
	}
	var base *AnalysisResult
	switch operation {
	case OpAnalyzeIdea:
		base = set.AnalyzeIdea
	case OpAnalyzeHackathon:
		base = set.AnalyzeHackathon
	default:
		return nil, &NotFoundError{Operation: operation, Locale: locale}
	}
	if base == nil {
		return nil, &NotFoundError{Operation: operation, Locale: locale}
	}
	return base.Clone(), nil
}

// Improvements returns a copy of the suggest-improvements fixture.
func (s *Store) Improvements(locale string) (*ImprovementPlan, error) {
	set, ok := s.locales[locale]
	if !ok || set.SuggestImprovements == nil {
		return nil, &NotFoundError{Operation: OpSuggestImprovements, Locale: locale}
	}
	return set.SuggestImprovements.Clone(), nil
}

// Comparison returns a copy of the compare-ideas fixture.
func (s *Store) Comparison(locale string) (*Comparison, error) {
	set, ok := s.locales[locale]
	if !ok || set.CompareIdeas == nil {
		return nil, &NotFoundError{Operation: OpCompareIdeas, Locale: locale}
	}
	return set.CompareIdeas.Clone(), nil
}

// Mashup returns a copy of the frankenstein fixture.
func (s *Store) Mashup(locale string) (*MashupResult, error) {
	set, ok := s.locales[locale]
	if !ok || set.GenerateMashup == nil {
		return nil, &NotFoundError{Operation: OpGenerateMashup, Locale: locale}
	}
	return set.GenerateMashup.Clone(), nil
}

// ---- validation ----

func (set *localeSet) validate(locale string) error {
	if set.AnalyzeIdea != nil {
		if err := validateAnalysis(set.AnalyzeIdea, OpAnalyzeIdea, locale); err != nil {
			return err
		}
	}
	if set.AnalyzeHackathon != nil {
		if err := validateAnalysis(set.AnalyzeHackathon, OpAnalyzeHackathon, locale); err != nil {
			return err
		}
	}
	if p := set.SuggestImprovements; p != nil {
		if p.Title == "" {
			return &MalformedError{OpSuggestImprovements, locale, "missing title"}
		}
		if len(p.Suggestions) == 0 {
			return &MalformedError{OpSuggestImprovements, locale, "missing suggestions"}
		}
		if !scoresInRange(p.Projected) {
			return &MalformedError{OpSuggestImprovements, locale, "projected scores outside [0,100]"}
		}
	}
	if c := set.CompareIdeas; c != nil {
		if len(c.Ideas) != 2 {
			return &MalformedError{OpCompareIdeas, locale, fmt.Sprintf("expected 2 ideas, found %d", len(c.Ideas))}
		}
		if c.Winner != 1 && c.Winner != 2 {
			return &MalformedError{OpCompareIdeas, locale, fmt.Sprintf("winner must be 1 or 2, got %d", c.Winner)}
		}
		for _, idea := range c.Ideas {
			if idea.Title == "" {
				return &MalformedError{OpCompareIdeas, locale, "idea missing title"}
			}
			if !scoreInRange(idea.OverallScore) || !scoresInRange(idea.Scores) {
				return &MalformedError{OpCompareIdeas, locale, "idea scores outside [0,100]"}
			}
		}
	}
	if m := set.GenerateMashup; m != nil {
		if m.Title == "" || m.ValueProposition == "" {
			return &MalformedError{OpGenerateMashup, locale, "missing title or value proposition"}
		}
		if !metricsInRange(m.Metrics) {
			return &MalformedError{OpGenerateMashup, locale, "metrics outside [0,100]"}
		}
	}
	return nil
}

func validateAnalysis(a *AnalysisResult, operation, locale string) error {
	if a.Title == "" {
		return &MalformedError{operation, locale, "missing title"}
	}
	if a.Summary == "" {
		return &MalformedError{operation, locale, "missing summary"}
	}
	if !scoreInRange(a.OverallScore) || !scoresInRange(a.Scores) {
		return &MalformedError{operation, locale, "scores outside [0,100]"}
	}
	return nil
}

func scoreInRange(v int) bool {
	return v >= 0 && v <= 100
}

func scoresInRange(s Scores) bool {
	return scoreInRange(s.Originality) && scoreInRange(s.Feasibility) &&
		scoreInRange(s.MarketPotential) && scoreInRange(s.WowFactor) && scoreInRange(s.Scalability)
}

func metricsInRange(m MashupMetrics) bool {
	return scoreInRange(m.Originality) && scoreInRange(m.Feasibility) &&
		scoreInRange(m.WowFactor) && scoreInRange(m.Scalability) && scoreInRange(m.Impact)
}
