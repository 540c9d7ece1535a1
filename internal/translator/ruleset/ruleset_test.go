package ruleset

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	r, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	if len(r.Slang) == 0 {
		t.Error("slang map is empty")
	}
	if got, want := r.Slang["gonna"], "going to"; got != want {
		t.Errorf("slang[gonna] = %q, want %q", got, want)
	}
	if got, want := r.Slang["kmn"], "kemon"; got != want {
		t.Errorf("slang[kmn] = %q, want %q", got, want)
	}

	if len(r.Phonetic) != 12 {
		t.Errorf("phonetic rules: got %d, want 12", len(r.Phonetic))
	}
	// Order matters: ph must come before kh so "ph"→"f" runs first.
	if r.Phonetic[0].From != "ph" || r.Phonetic[0].To != "f" {
		t.Errorf("first phonetic rule = %+v, want ph→f", r.Phonetic[0])
	}

	if len(r.Compound) != 4 {
		t.Errorf("compound rules: got %d, want 4", len(r.Compound))
	}
	for _, cr := range r.Compound {
		if cr.Regexp == nil {
			t.Errorf("compound %q: not compiled", cr.Description)
		}
	}

	if len(r.Pattern) != 9 {
		t.Errorf("pattern rules: got %d, want 9", len(r.Pattern))
	}
	for _, pr := range r.Pattern {
		if pr.Regexp == nil {
			t.Errorf("pattern %q: not compiled", pr.Name)
		}
		if pr.Confidence < 0.75 || pr.Confidence > 0.85 {
			t.Errorf("pattern %q: confidence %v outside [0.75, 0.85]", pr.Name, pr.Confidence)
		}
	}

	if len(r.ReferencePhrases) == 0 {
		t.Error("reference phrases are empty")
	}
}

func TestDefaultRuleOrder(t *testing.T) {
	t.Parallel()

	r, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	// possession_amar_have must precede possession_amar so "amar X ache"
	// becomes "I have X" rather than "my X ache".
	haveIdx, myIdx := -1, -1
	for i, pr := range r.Pattern {
		switch pr.Name {
		case "possession_amar_have":
			haveIdx = i
		case "possession_amar":
			myIdx = i
		}
	}
	if haveIdx < 0 || myIdx < 0 {
		t.Fatalf("possession rules missing: have=%d my=%d", haveIdx, myIdx)
	}
	if haveIdx > myIdx {
		t.Errorf("possession_amar_have (%d) must precede possession_amar (%d)", haveIdx, myIdx)
	}
}

func TestPatternMatching(t *testing.T) {
	t.Parallel()

	r, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	byName := map[string]PatternRule{}
	for _, pr := range r.Pattern {
		byName[pr.Name] = pr
	}

	tests := []struct {
		rule     string
		query    string
		wantBase string
	}{
		{"question_ki", "bari ki", "bari"},
		{"question_ki", "bari ki?", "bari"},
		{"question_keno", "tumi keno", "tumi"},
		{"possession_amar_have", "amar boi ache", "boi"},
		{"possession_amar", "amar bari", "bari"},
		{"future_tense_korbo", "ami kaj korbo", "kaj"},
		{"negation_na", "bhalo na", "bhalo"},
	}

	for _, tt := range tests {
		pr, ok := byName[tt.rule]
		if !ok {
			t.Fatalf("rule %q not found", tt.rule)
		}
		m := pr.Regexp.FindStringSubmatch(tt.query)
		if m == nil {
			t.Errorf("rule %q: no match for %q", tt.rule, tt.query)
			continue
		}
		if got := m[pr.BaseIndex]; got != tt.wantBase {
			t.Errorf("rule %q on %q: base = %q, want %q", tt.rule, tt.query, got, tt.wantBase)
		}
	}
}

func TestCompoundMatching(t *testing.T) {
	t.Parallel()

	r, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}

	// First matching rule wins: "chotobari" hits the house/building rule
	// before the adjective rule.
	for _, cr := range r.Compound {
		if m := cr.Regexp.FindStringSubmatch("chotobari"); m != nil {
			if cr.Description != "house/building compounds" {
				t.Errorf("chotobari matched %q first", cr.Description)
			}
			if m[1] != "choto" || m[2] != "bari" {
				t.Errorf("chotobari split = [%q %q]", m[1], m[2])
			}
			break
		}
	}

	// Anchored: a compound pattern must not match inside a longer phrase.
	for _, cr := range r.Compound {
		if cr.Regexp.MatchString("amar chotobari valo") {
			t.Errorf("compound %q matched a multi-word phrase", cr.Description)
		}
	}
}

func TestParseRejectsBadRules(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		yaml string
	}{
		{"bad regex", "compound:\n  - pattern: '([a-'\n    description: broken\n"},
		{"one group", "compound:\n  - pattern: '(\\w+)suffix'\n    description: single group\n"},
		{"missing base", "pattern:\n  - name: x\n    match: '(.+) ki'\n    kind: prefix\n    prefix: what\n    confidence: 0.8\n"},
		{"bad kind", "pattern:\n  - name: x\n    match: '(?P<base>.+) ki'\n    kind: infix\n    prefix: what\n    confidence: 0.8\n"},
		{"bad confidence", "pattern:\n  - name: x\n    match: '(?P<base>.+) ki'\n    kind: prefix\n    prefix: what\n    confidence: 1.5\n"},
		{"wrap without suffix", "pattern:\n  - name: x\n    match: '(?P<base>.+) ki'\n    kind: wrap\n    prefix: what\n    confidence: 0.8\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if _, err := Parse([]byte(tt.yaml)); err == nil {
				t.Errorf("Parse accepted invalid rules: %s", tt.name)
			}
		})
	}
}

func TestPhrasesFromFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	bare := filepath.Join(dir, "bare.yaml")
	if err := os.WriteFile(bare, []byte("- kemon acho\n- dhonnobad\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	phrases, err := PhrasesFromFile(bare)
	if err != nil {
		t.Fatalf("bare list: %v", err)
	}
	if len(phrases) != 2 || phrases[0] != "kemon acho" {
		t.Errorf("bare list: got %v", phrases)
	}

	keyed := filepath.Join(dir, "keyed.yaml")
	if err := os.WriteFile(keyed, []byte("reference_phrases:\n  - ki koro\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	phrases, err = PhrasesFromFile(keyed)
	if err != nil {
		t.Fatalf("keyed list: %v", err)
	}
	if len(phrases) != 1 || phrases[0] != "ki koro" {
		t.Errorf("keyed list: got %v", phrases)
	}

	if _, err := PhrasesFromFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("missing file should error")
	}
}
