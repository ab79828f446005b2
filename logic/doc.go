// Package logic evaluates propositional formulas written in the notation used
// in introductory logic courses, and checks hand-written derivations.
//
// Several glyphs are accepted for each connective, so that formulas can be
// copied from textbooks as they are:
//
//	conjunction    ⦁ • ∧ ^ &
//	conditional    ⊃ → ⇒
//	biconditional  ≡ ↔ ⇔
//	disjunction    ∨ + ∥
//
// Variables are single ASCII letters, negation is a run of leading '~' and
// subformulas are grouped with (), [] or {}. Each grouping level must hold
// exactly one connective application: "A ∧ B ∧ C" is rejected, while
// "(A ∧ B) ∧ C" is accepted. Whitespace is ignored everywhere.
//
// For instance, the following program prints the truth table of modus ponens:
//
//	t, err := logic.TruthTable([]string{"A → B", "A", "B"})
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, row := range t.Rows {
//		fmt.Println(t.Assignments[i], row)
//	}
//
// Truth tables are computed by brute force: the cost is exponential in the
// number of distinct variables and callers are expected to bound it.
//
// CheckRule and Validator do not evaluate anything. They compare the shape of
// premise lines and of a conclusion with the signature of one of eight rules
// of inference (MP, MT, HS, DS, CD, CONJ, ADD, SIMP).
package logic
