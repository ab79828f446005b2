package logic

import "fmt"

// A Formula is the compiled form of an expression.
type Formula interface {
	// String returns a prefix rendering of the formula, such as "implies(A, not(B))".
	String() string
	// Eval returns the value of the formula under the given assignment.
	// It panics if a variable of the formula is not bound by the assignment.
	Eval(a Assignment) bool
}

// Var returns the formula made of the single variable name.
func Var(name string) Formula {
	return variable(name)
}

type variable string

func (v variable) String() string { return string(v) }

func (v variable) Eval(a Assignment) bool {
	b, ok := a[string(v)]
	if !ok {
		panic(fmt.Errorf("assignment lacks binding for variable %s", string(v)))
	}
	return b
}

// Not returns the negation of f.
func Not(f Formula) Formula {
	return not{f}
}

type not [1]Formula

func (n not) String() string { return "not(" + n[0].String() + ")" }

func (n not) Eval(a Assignment) bool { return !n[0].Eval(a) }

// Apply returns the formula "left c right".
func Apply(c Connective, left, right Formula) Formula {
	return binary{c: c, left: left, right: right}
}

type binary struct {
	c           Connective
	left, right Formula
}

func (b binary) String() string {
	return b.c.String() + "(" + b.left.String() + ", " + b.right.String() + ")"
}

func (b binary) Eval(a Assignment) bool {
	return b.c.Apply(b.left.Eval(a), b.right.Eval(a))
}

// Compile parses expr into a Formula.
// It accepts exactly the expressions Evaluate accepts when every variable is
// bound, and the resulting formula has the same value as Evaluate under any
// total assignment. Variables are single ASCII letters.
// The returned error, if any, is an *EvalError.
func Compile(expr string) (Formula, error) {
	segments := Segment(expr)
	c, isBinary, err := checkShape(expr, segments)
	if err != nil {
		return nil, err
	}
	if isBinary {
		left, err := Compile(Trim(segments[0]))
		if err != nil {
			return nil, err
		}
		right, err := Compile(Trim(segments[2]))
		if err != nil {
			return nil, err
		}
		return Apply(c, left, right), nil
	}
	bare, nb := negations(segments[0])
	var f Formula
	switch trimmed := Trim(bare); {
	case bare == "":
		return nil, &EvalError{Expr: expr, Token: segments[0], Err: ErrMalformed}
	case len(bare) == 1 && isVariable(rune(bare[0])):
		f = Var(bare)
	case trimmed == bare:
		return nil, &EvalError{Expr: expr, Token: bare, Err: ErrUndefinedVariable}
	default:
		if f, err = Compile(trimmed); err != nil {
			return nil, err
		}
	}
	for i := 0; i < nb; i++ {
		f = Not(f)
	}
	return f, nil
}
