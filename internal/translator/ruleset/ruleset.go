// Package ruleset loads the declarative rule tables the resolution pipeline
// interprets: the slang map, the ordered phonetic substitution table, the
// compound-splitting rules, the pattern-rewrite rules, and the reference
// phrases for fuzzy matching.
//
// The default tables are embedded; reference phrases can additionally be
// supplied from an external YAML file. Rules carry no executable parts —
// pattern rules are tagged variants (prefix/suffix/wrap) evaluated by a
// single generic evaluator in the translator package.
package ruleset

import (
	_ "embed"
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

//go:embed rules.yaml
var defaultRules []byte

// PhoneticRule is a single (substring, replacement) pair. Table order is
// semantically significant: rules apply sequentially to one evolving buffer.
type PhoneticRule struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// CompoundRule splits one glued-together token into exactly two parts.
type CompoundRule struct {
	Pattern     string `yaml:"pattern"`
	Description string `yaml:"description"`

	// Regexp is the compiled, anchored, case-insensitive form of Pattern.
	Regexp *regexp.Regexp `yaml:"-"`
}

// PatternKind tags how a pattern rule combines its affixes with the
// translated base phrase.
type PatternKind string

const (
	// KindPrefix produces "<prefix> <base>".
	KindPrefix PatternKind = "prefix"
	// KindSuffix produces "<base> <suffix>".
	KindSuffix PatternKind = "suffix"
	// KindWrap produces "<prefix> <base><suffix>" (no space before suffix).
	KindWrap PatternKind = "wrap"
)

// PatternRule rewrites a query that matches a grammatical shape. The match
// expression must contain a capture group named "base"; the base phrase is
// translated separately and combined per Kind.
type PatternRule struct {
	Name       string      `yaml:"name"`
	Match      string      `yaml:"match"`
	Kind       PatternKind `yaml:"kind"`
	Prefix     string      `yaml:"prefix"`
	Suffix     string      `yaml:"suffix"`
	Confidence float64     `yaml:"confidence"`

	// Regexp is the compiled, anchored, case-insensitive form of Match.
	Regexp *regexp.Regexp `yaml:"-"`
	// BaseIndex is the subexpression index of the "base" group.
	BaseIndex int `yaml:"-"`
}

// Rules holds every table the pipeline needs, compiled and validated.
type Rules struct {
	Slang            map[string]string `yaml:"slang"`
	Phonetic         []PhoneticRule    `yaml:"phonetic"`
	Compound         []CompoundRule    `yaml:"compound"`
	Pattern          []PatternRule     `yaml:"pattern"`
	ReferencePhrases []string          `yaml:"reference_phrases"`
}

// Default parses and compiles the embedded rule tables.
func Default() (*Rules, error) {
	return Parse(defaultRules)
}

// Parse loads rule tables from YAML, compiles all regular expressions, and
// validates the result. Patterns are compiled anchored (`^...$`) and
// case-insensitive, matching the whole query.
func Parse(data []byte) (*Rules, error) {
	var r Rules
	if err := yaml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("ruleset: parse yaml: %w", err)
	}

	for i := range r.Compound {
		cr := &r.Compound[i]
		re, err := regexp.Compile("(?i)^" + cr.Pattern + "$")
		if err != nil {
			return nil, fmt.Errorf("ruleset: compound %q: %w", cr.Description, err)
		}
		if re.NumSubexp() != 2 {
			return nil, fmt.Errorf("ruleset: compound %q: want 2 capture groups, got %d",
				cr.Description, re.NumSubexp())
		}
		cr.Regexp = re
	}

	for i := range r.Pattern {
		pr := &r.Pattern[i]
		if err := pr.compile(); err != nil {
			return nil, err
		}
	}

	if err := r.validate(); err != nil {
		return nil, err
	}

	return &r, nil
}

func (pr *PatternRule) compile() error {
	re, err := regexp.Compile("(?i)^" + pr.Match + "$")
	if err != nil {
		return fmt.Errorf("ruleset: pattern %q: %w", pr.Name, err)
	}

	idx := re.SubexpIndex("base")
	if idx < 0 {
		return fmt.Errorf("ruleset: pattern %q: missing capture group \"base\"", pr.Name)
	}

	pr.Regexp = re
	pr.BaseIndex = idx
	return nil
}

func (r *Rules) validate() error {
	for _, pr := range r.Pattern {
		if pr.Name == "" {
			return fmt.Errorf("ruleset: pattern with empty name")
		}
		if pr.Confidence < 0 || pr.Confidence > 1 {
			return fmt.Errorf("ruleset: pattern %q: confidence %v outside [0,1]", pr.Name, pr.Confidence)
		}
		switch pr.Kind {
		case KindPrefix:
			if pr.Prefix == "" {
				return fmt.Errorf("ruleset: pattern %q: kind prefix needs a prefix", pr.Name)
			}
		case KindSuffix:
			if pr.Suffix == "" {
				return fmt.Errorf("ruleset: pattern %q: kind suffix needs a suffix", pr.Name)
			}
		case KindWrap:
			if pr.Prefix == "" || pr.Suffix == "" {
				return fmt.Errorf("ruleset: pattern %q: kind wrap needs prefix and suffix", pr.Name)
			}
		default:
			return fmt.Errorf("ruleset: pattern %q: unknown kind %q", pr.Name, pr.Kind)
		}
	}

	for _, ph := range r.Phonetic {
		if ph.From == "" {
			return fmt.Errorf("ruleset: phonetic rule with empty source")
		}
	}

	return nil
}

// PhrasesFromFile loads reference phrases from a YAML file: either a bare
// list of strings or a document with a `reference_phrases` key.
func PhrasesFromFile(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("ruleset: read phrases %s: %w", path, err)
	}

	var plain []string
	if err := yaml.Unmarshal(data, &plain); err == nil && len(plain) > 0 {
		return plain, nil
	}

	var doc struct {
		ReferencePhrases []string `yaml:"reference_phrases"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("ruleset: parse phrases %s: %w", path, err)
	}
	if len(doc.ReferencePhrases) == 0 {
		return nil, fmt.Errorf("ruleset: phrases %s: no phrases found", path)
	}

	return doc.ReferencePhrases, nil
}
