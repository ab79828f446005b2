package logic

import "errors"

// errFound stops the enumeration once a model was found.
var errFound = errors.New("model found")

// IsConsistent indicates whether there is at least one assignment under which
// all exprs are true. An empty list is consistent.
// Like TruthTable, it enumerates every assignment in the worst case.
func IsConsistent(exprs []string) (bool, error) {
	model, err := Witness(exprs)
	if err != nil {
		return false, err
	}
	return model != nil, nil
}

// Witness returns the first assignment, in truth table order, under which all
// exprs are true, or nil if there is none.
func Witness(exprs []string) (Assignment, error) {
	vars := Variables(exprs...)
	var model Assignment
	err := enumerate(vars, make(Assignment, len(vars)), func(a Assignment) error {
		all := true
		for _, expr := range exprs {
			// No short-circuit: malformed expressions are reported on the first row.
			val, err := Evaluate(expr, a)
			if err != nil {
				return err
			}
			all = all && val
		}
		if !all {
			return nil
		}
		model = a.clone()
		return errFound
	})
	if err != nil && err != errFound {
		return nil, err
	}
	return model, nil
}
