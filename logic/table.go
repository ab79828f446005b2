package logic

import "sort"

func isVariable(r rune) bool {
	return ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Variables returns the sorted list of distinct variables appearing in exprs.
// Uppercase letters sort before lowercase ones.
func Variables(exprs ...string) []string {
	seen := make(map[rune]bool)
	var vars []string
	for _, expr := range exprs {
		for _, r := range expr {
			if isVariable(r) && !seen[r] {
				seen[r] = true
				vars = append(vars, string(r))
			}
		}
	}
	sort.Strings(vars)
	return vars
}

// A Table is the truth table of a list of expressions.
// Rows[i][j] is the value of Expressions[j] under Assignments[i].
type Table struct {
	Variables   []string
	Expressions []string
	Assignments []Assignment
	Rows        [][]bool
}

// TruthTable computes the truth table of exprs.
//
// Assignments are enumerated as a binary counter over Variables(exprs...),
// the first variable being the most significant bit and true coming before
// false: for variables A and B, the order is TT, TF, FT, FF.
// When there is no variable, the table has exactly one row.
//
// There are 2^n rows for n distinct variables and each of them evaluates every
// expression: callers are responsible for bounding n.
func TruthTable(exprs []string) (*Table, error) {
	return defaultEvaluator.TruthTable(exprs)
}

// TruthTable computes the truth table of exprs, like the package-level function.
func (e *Evaluator) TruthTable(exprs []string) (*Table, error) {
	t := &Table{
		Variables:   Variables(exprs...),
		Expressions: exprs,
	}
	err := enumerate(t.Variables, make(Assignment, len(t.Variables)), func(a Assignment) error {
		row := make([]bool, len(exprs))
		for i, expr := range exprs {
			val, err := e.Evaluate(expr, a)
			if err != nil {
				return err
			}
			row[i] = val
		}
		t.Assignments = append(t.Assignments, a.clone())
		t.Rows = append(t.Rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Enumerate returns the rows of the truth table of exprs.
// See TruthTable for the order of rows.
func Enumerate(exprs []string) ([][]bool, error) {
	t, err := TruthTable(exprs)
	if err != nil {
		return nil, err
	}
	return t.Rows, nil
}

// enumerate calls visit once for each total assignment of vars, completing the
// partial assignment a. a is reused between calls.
func enumerate(vars []string, a Assignment, visit func(Assignment) error) error {
	if len(vars) == 0 {
		return visit(a)
	}
	for _, val := range [2]bool{true, false} {
		a[vars[0]] = val
		if err := enumerate(vars[1:], a, visit); err != nil {
			return err
		}
	}
	delete(a, vars[0])
	return nil
}

func (a Assignment) clone() Assignment {
	res := make(Assignment, len(a))
	for k, v := range a {
		res[k] = v
	}
	return res
}
