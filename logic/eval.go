package logic

import (
	"go.uber.org/zap"
)

// An Assignment binds variable names to truth values.
type Assignment map[string]bool

// An Evaluator computes the truth value of expressions.
// If Logger is not nil, each step of the computation is logged at debug level.
// The zero value is ready to use.
type Evaluator struct {
	Logger *zap.Logger
}

var defaultEvaluator Evaluator

// Evaluate returns the truth value of expr under the assignment a.
//
// Each level of expr must either be a (possibly negated) atom or exactly one
// binary application: "A ∧ B ∧ C" is malformed, "(A ∧ B) ∧ C" is not.
// An atom is either a variable bound by a, or a grouped subformula.
// The returned error, if any, is an *EvalError.
func Evaluate(expr string, a Assignment) (bool, error) {
	return defaultEvaluator.Evaluate(expr, a)
}

// Evaluate returns the truth value of expr under the assignment a.
// See the package-level Evaluate function for the accepted syntax.
func (e *Evaluator) Evaluate(expr string, a Assignment) (bool, error) {
	log := e.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return evaluate(log, expr, a, 0)
}

func evaluate(log *zap.Logger, expr string, a Assignment, depth int) (bool, error) {
	segments := Segment(expr)
	c, binary, err := checkShape(expr, segments)
	if err != nil {
		return false, err
	}
	if binary {
		left, err := evaluate(log, Trim(segments[0]), a, depth+1)
		if err != nil {
			return false, err
		}
		right, err := evaluate(log, Trim(segments[2]), a, depth+1)
		if err != nil {
			return false, err
		}
		value := c.Apply(left, right)
		if ce := log.Check(zap.DebugLevel, "apply"); ce != nil {
			ce.Write(
				zap.Int("depth", depth),
				zap.Strings("segments", segments),
				zap.Stringer("connective", c),
				zap.Bool("left", left),
				zap.Bool("right", right),
				zap.Bool("value", value),
			)
		}
		return value, nil
	}
	bare, nb := negations(segments[0])
	if bare == "" {
		return false, &EvalError{Expr: expr, Token: segments[0], Err: ErrMalformed}
	}
	value, ok := a[bare]
	if !ok {
		trimmed := Trim(bare)
		if trimmed == bare {
			return false, &EvalError{Expr: expr, Token: bare, Err: ErrUndefinedVariable}
		}
		if value, err = evaluate(log, trimmed, a, depth+1); err != nil {
			return false, err
		}
	}
	if nb%2 == 1 {
		value = !value
	}
	if ce := log.Check(zap.DebugLevel, "atom"); ce != nil {
		ce.Write(
			zap.Int("depth", depth),
			zap.String("token", segments[0]),
			zap.Bool("value", value),
		)
	}
	return value, nil
}
