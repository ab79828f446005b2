package logic

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVariables(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"A", "B", "C", "a"}, Variables("B ∧ a", "(A → C) ∨ ~B"))
	assert.Equal(t, []string{"P"}, Variables("~~P", "[P]"))
	assert.Nil(t, Variables())
	assert.Nil(t, Variables("→ ∧ ()"))
}

func TestEnumerate(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		exprs    []string
		expected [][]bool
	}{
		{"single variable", []string{"A"}, [][]bool{{true}, {false}}},
		{"conjunction", []string{"A∧B"}, [][]bool{{true}, {false}, {false}, {false}}},
		{"conditional", []string{"A→B"}, [][]bool{{true}, {false}, {true}, {true}}},
		{
			"columns follow expressions",
			[]string{"B", "A", "A≡B"},
			[][]bool{{true, true, true}, {false, true, false}, {true, false, false}, {false, false, true}},
		},
		{"no expression", nil, [][]bool{{}}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rows, err := Enumerate(tt.exprs)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.expected, rows); diff != "" {
				t.Errorf("unexpected rows (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTruthTableOrder(t *testing.T) {
	t.Parallel()
	table, err := TruthTable([]string{"(A ∨ B) ⊃ C"})
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, table.Variables)
	require.Len(t, table.Assignments, 8)
	require.Len(t, table.Rows, 8)
	// The first variable is the most significant bit, true before false.
	for i, a := range table.Assignments {
		assert.Equal(t, i < 4, a["A"], "row %d", i)
		assert.Equal(t, i%4 < 2, a["B"], "row %d", i)
		assert.Equal(t, i%2 == 0, a["C"], "row %d", i)
	}
	expected := []bool{true, false, true, false, true, false, true, true}
	for i, row := range table.Rows {
		assert.Equal(t, expected[i], row[0], "row %d", i)
	}
}

func TestTruthTableSize(t *testing.T) {
	t.Parallel()
	rows, err := Enumerate([]string{"(A∧B)∨(C∧D)", "E⇔a"})
	require.NoError(t, err)
	assert.Len(t, rows, 64)
}

func TestEnumerateError(t *testing.T) {
	t.Parallel()
	_, err := Enumerate([]string{"A", "A ∧ B ∧ C"})
	assert.True(t, errors.Is(err, ErrMalformed))
	_, err = TruthTable([]string{"A ⊕ B"})
	assert.True(t, errors.Is(err, ErrUndefinedVariable), "got %v", err)
}
