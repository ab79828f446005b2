package logic

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownOperator is returned when the middle segment of a binary
	// expression is not a connective.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrUndefinedVariable is returned when an atom is neither bound by the
	// assignment nor a grouped subformula.
	ErrUndefinedVariable = errors.New("undefined variable")
	// ErrMalformed is returned when an expression is empty or has a number of
	// top-level segments other than 1 or 3.
	ErrMalformed = errors.New("malformed expression")
)

// An EvalError describes why an expression could not be evaluated or compiled.
// It wraps one of ErrUnknownOperator, ErrUndefinedVariable or ErrMalformed.
type EvalError struct {
	Expr  string // The (sub)expression being processed
	Token string // The offending segment, if any
	Err   error
}

func (e *EvalError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("%v %q", e.Err, e.Expr)
	}
	return fmt.Sprintf("%v %q in %q", e.Err, e.Token, e.Expr)
}

func (e *EvalError) Unwrap() error {
	return e.Err
}

// checkShape makes sure segments describe either an atom or a single binary
// application. On success, it returns the connective of a binary application.
func checkShape(expr string, segments []string) (c Connective, binary bool, err error) {
	switch len(segments) {
	case 1:
		return 0, false, nil
	case 3:
		c, ok := LookupOperator(segments[1])
		if !ok {
			return 0, false, &EvalError{Expr: expr, Token: segments[1], Err: ErrUnknownOperator}
		}
		return c, true, nil
	case 0:
		return 0, false, &EvalError{Expr: expr, Err: ErrMalformed}
	default:
		// Chains must be grouped explicitly: report the first segment that does not fit.
		return 0, false, &EvalError{Expr: expr, Token: at(segments, 3), Err: ErrMalformed}
	}
}
