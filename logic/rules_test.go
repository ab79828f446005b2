package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCheckRule(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name       string
		lines      []string
		rule       string
		conclusion string
		expected   bool
	}{
		{"MP", []string{"A→B", "A"}, "MP", "B", true},
		{"MP wrong conclusion", []string{"A→B", "A"}, "MP", "C", false},
		{"MP wrong antecedent", []string{"A→B", "B"}, "MP", "B", false},
		{"MP complex", []string{"(A∧C) ⊃ ~(B∨D)", "[A ∧ C]"}, "mp", "~(B∨D)", true},
		{"MP grouped conclusion", []string{"A→(B∧C)", "A"}, "MP", "B∧C", true},
		{"MP not a conditional", []string{"A∧B", "A"}, "MP", "B", false},
		{"MP one line", []string{"A→B"}, "MP", "B", false},
		{"MP chained line", []string{"A→B∧C", "A"}, "MP", "B", false},
		{"MT", []string{"A→B", "~B"}, "MT", "~A", true},
		{"MT grouped", []string{"(A∨C)⇒(B∧D)", "~(B∧D)"}, "MT", "~(A∨C)", true},
		{"MT missing negation", []string{"A→B", "B"}, "MT", "~A", false},
		{"MT wrong conclusion", []string{"A→B", "~B"}, "MT", "A", false},
		{"HS", []string{"A→B", "B→C"}, "HS", "A→C", true},
		{"HS broken chain", []string{"A→B", "C→D"}, "HS", "A→D", false},
		{"HS not conditionals", []string{"A→B", "B∧C"}, "HS", "A→C", false},
		{"DS", []string{"A∨B", "~A"}, "DS", "B", true},
		{"DS alias", []string{"A + B", "~A"}, "Ds", "B", true},
		{"DS wrong side", []string{"A∨B", "~B"}, "DS", "A", false},
		{"DS not a disjunction", []string{"A∧B", "~A"}, "DS", "B", false},
		{"CD", []string{"(P→Q)∧(R→S)", "P∨R"}, "CD", "Q∨S", true},
		{"CD mixed glyphs", []string{"[P⊃Q] • {R⇒S}", "P+R"}, "CD", "Q∥S", true},
		{"CD swapped conclusion", []string{"(P→Q)∧(R→S)", "P∨R"}, "CD", "S∨Q", false},
		{"CD swapped disjunction", []string{"(P→Q)∧(R→S)", "R∨P"}, "CD", "Q∨S", false},
		{"CD not conditionals", []string{"(P∧Q)∧(R→S)", "P∨R"}, "CD", "Q∨S", false},
		{"CD one line", []string{"(P→Q)∧(R→S)"}, "CD", "Q∨S", false},
		{"CONJ", []string{"A", "B"}, "CONJ", "A∧B", true},
		{"CONJ grouped", []string{"A→B", "~C"}, "conj", "(A→B)&~C", true},
		{"CONJ swapped", []string{"A", "B"}, "CONJ", "B∧A", false},
		{"CONJ disjunction", []string{"A", "B"}, "CONJ", "A∨B", false},
		{"ADD", []string{"A"}, "ADD", "A∨B", true},
		{"ADD grouped", []string{"A∧B"}, "ADD", "(A∧B)∨~C", true},
		{"ADD wrong side", []string{"A"}, "ADD", "B∨A", false},
		{"ADD two lines", []string{"A", "B"}, "ADD", "A∨B", false},
		{"SIMP", []string{"A∧B"}, "SIMP", "A", true},
		{"SIMP grouped", []string{"(A∨B)⦁C"}, "Simp", "A∨B", true},
		{"SIMP nested groups", []string{"((A)∨(B))∧C"}, "SIMP", "(A)∨(B)", true},
		{"SIMP right operand", []string{"A∧B"}, "SIMP", "B", false},
		{"SIMP not a conjunction", []string{"A∨B"}, "SIMP", "A", false},
		{"malformed line", []string{"→", ""}, "MP", "", false},
		{"empty lines", nil, "MP", "B", false},
		{"rule of replacement", []string{"A"}, "DN", "~~A", true},
		{"anything goes", []string{"A", "B", "C"}, "whatever", "D", true},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, CheckRule(tt.lines, tt.rule, tt.conclusion))
		})
	}
}

func TestParseRule(t *testing.T) {
	t.Parallel()
	for _, r := range Rules {
		got, ok := ParseRule(r.String())
		assert.True(t, ok)
		assert.Equal(t, r, got)
	}
	r, ok := ParseRule("  simp ")
	assert.True(t, ok)
	assert.Equal(t, Simplification, r)
	r, ok = ParseRule("Comm")
	assert.False(t, ok)
	assert.Equal(t, Unvalidated, r)
	assert.Equal(t, "UNVALIDATED", r.String())
	assert.Equal(t, -1, r.Premises())
}

func TestValidatorAdvisesOnce(t *testing.T) {
	t.Parallel()
	var advised []string
	v := &Validator{Advise: func(label string) { advised = append(advised, label) }}

	assert.True(t, v.Check([]string{"A→B", "A"}, "MP", "B"))
	assert.Empty(t, advised, "validated rules do not trigger the advisory")

	assert.True(t, v.Check([]string{"A"}, "DN", "~~A"))
	assert.True(t, v.Check([]string{"A∨B"}, "Comm", "B∨A"))
	assert.True(t, v.Check([]string{"A"}, "DN", "~~A"))
	assert.Equal(t, []string{"DN"}, advised)

	other := &Validator{Advise: func(label string) { advised = append(advised, label) }}
	other.Check(nil, "Taut", "A")
	assert.Equal(t, []string{"DN", "Taut"}, advised, "each validator has its own latch")
}

func TestValidatorStrict(t *testing.T) {
	t.Parallel()
	called := false
	v := &Validator{Strict: true, Advise: func(string) { called = true }}
	assert.False(t, v.Check([]string{"A"}, "DN", "~~A"))
	assert.True(t, v.Check([]string{"A"}, "ADD", "A∨B"))
	assert.False(t, called)
}

func TestValidatorVerdict(t *testing.T) {
	t.Parallel()
	var v Validator
	assert.Equal(t, Verdict{Valid: true, Validated: true}, v.Verdict([]string{"A∧B"}, "SIMP", "A"))
	assert.Equal(t, Verdict{Valid: false, Validated: true}, v.Verdict([]string{"A∧B"}, "SIMP", "C"))
	assert.Equal(t, Verdict{Valid: true, Validated: false}, v.Verdict([]string{"A∧B"}, "Comm", "B∧A"))
}

func TestValidatorAdvisesOnceWithoutCallback(t *testing.T) {
	t.Parallel()
	var v Validator
	assert.True(t, v.Check([]string{"A"}, "DN", "~~A"))

	called := false
	v.Advise = func(string) { called = true }
	assert.True(t, v.Check([]string{"A∨B"}, "Comm", "B∨A"))
	assert.False(t, called, "the first fallback used up the advisory")
}

func TestValidatorConclusions(t *testing.T) {
	t.Parallel()
	lines := []string{"A→B", "B→C"}
	tests := []struct {
		conclusion string
		loose      bool
		chained    bool
	}{
		{"A→C", true, true},
		{"(A) ⇒ [C]", true, true},
		{"Z", true, false},
		{"C→A", true, false},
		{"A∧C", true, false},
	}
	loose := &Validator{}
	chained := &Validator{Conclusions: true}
	for _, tt := range tests {
		assert.Equal(t, tt.loose, loose.Check(lines, "HS", tt.conclusion), tt.conclusion)
		assert.Equal(t, tt.chained, chained.Check(lines, "HS", tt.conclusion), tt.conclusion)
	}
	assert.False(t, chained.Check([]string{"A→B", "C→D"}, "HS", "A→D"))
	assert.True(t, chained.Check([]string{"A→B", "A"}, "MP", "B"), "other rules are unaffected")
}
