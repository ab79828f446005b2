package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// To each expression, associate its expected top-level segments.
var exprToSegments = map[string][]string{
	"":                   nil,
	"A":                  {"A"},
	"~~A":                {"~~A"},
	"A∧B":                {"A", "∧", "B"},
	" A  ∧  B ":          {"A", "∧", "B"},
	"(A ∨ B) → ~C":       {"(A∨B)", "→", "~C"},
	"[A & B] ⇔ {C + D}":  {"[A&B]", "⇔", "{C+D}"},
	"~(A∧B)∨C":           {"~(A∧B)", "∨", "C"},
	"((A→B))•C":          {"((A→B))", "•", "C"},
	"A∧B∧C":              {"A", "∧", "B", "∧", "C"},
	"(A]":                {"(A]"},
	"x(A∧B)":             {"x(A∧B)"},
	"(A)(B)":             {"(A)", "(B)"},
	"{[A ⊃ B] ∥ C} ≡ ~D": {"{[A⊃B]∥C}", "≡", "~D"},
}

func TestSegment(t *testing.T) {
	t.Parallel()
	for expr, expected := range exprToSegments {
		assert.Equal(t, expected, Segment(expr), "segments of %q", expr)
	}
}

func TestTrim(t *testing.T) {
	t.Parallel()
	tests := []struct {
		token    string
		expected string
	}{
		{"(A∧B)", "A∧B"},
		{"[(A)]", "(A)"},
		{"{A}", "A"},
		{"A", "A"},
		{"~(A)", "~(A)"},
		{"", ""},
		{"(", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Trim(tt.token), "trim of %q", tt.token)
	}
}

func TestSegmentAtomIdempotent(t *testing.T) {
	t.Parallel()
	for _, token := range []string{"A", "~A", "~~b", "(A∧B)", "~[C→D]"} {
		segs := Segment(token)
		assert.Equal(t, []string{token}, segs)
		if Trim(token) == token {
			assert.Equal(t, []string{token}, Segment(Trim(segs[0])))
		}
	}
}

func TestLookupOperator(t *testing.T) {
	t.Parallel()
	expected := map[Connective]string{
		Conjunction:   "⦁•∧^&",
		Conditional:   "⊃→⇒",
		Biconditional: "≡↔⇔",
		Disjunction:   "∨+∥",
	}
	for c, syms := range expected {
		assert.Equal(t, []rune(syms), c.Symbols())
		assert.Equal(t, string([]rune(syms)[:1]), c.Symbol())
		for _, sym := range syms {
			got, ok := LookupOperator(string(sym))
			assert.True(t, ok, "%q should be an operator", sym)
			assert.Equal(t, c, got)
		}
	}
	for _, tok := range []string{"", "v", "~", "(", "->", "∧∧"} {
		_, ok := LookupOperator(tok)
		assert.False(t, ok, "%q should not be an operator", tok)
	}
}
