package logic

import (
	"strings"
	"sync"
)

// A Rule is one of the rules of inference whose shape can be checked.
type Rule int

const (
	// Unvalidated stands for any label that is not a known rule of inference,
	// typically a rule of replacement.
	Unvalidated Rule = iota
	// ModusPonens (MP): from A → B and A, infer B.
	ModusPonens
	// ModusTollens (MT): from A → B and ~B, infer ~A.
	ModusTollens
	// HypotheticalSyllogism (HS): from A → B and B → C, infer A → C.
	HypotheticalSyllogism
	// DisjunctiveSyllogism (DS): from A ∨ B and ~A, infer B.
	DisjunctiveSyllogism
	// ConstructiveDilemma (CD): from (P → Q) ⦁ (R → S) and P ∨ R, infer Q ∨ S.
	ConstructiveDilemma
	// ConjunctionIntro (CONJ): from A and B, infer A ⦁ B.
	ConjunctionIntro
	// Addition (ADD): from A, infer A ∨ B.
	Addition
	// Simplification (SIMP): from A ⦁ B, infer A.
	Simplification
)

var ruleLabels = [...]string{
	Unvalidated:           "",
	ModusPonens:           "MP",
	ModusTollens:          "MT",
	HypotheticalSyllogism: "HS",
	DisjunctiveSyllogism:  "DS",
	ConstructiveDilemma:   "CD",
	ConjunctionIntro:      "CONJ",
	Addition:              "ADD",
	Simplification:        "SIMP",
}

// Rules lists the rules that can be validated, in canonical order.
var Rules = []Rule{
	ModusPonens, ModusTollens, HypotheticalSyllogism, DisjunctiveSyllogism,
	ConstructiveDilemma, ConjunctionIntro, Addition, Simplification,
}

// ParseRule returns the rule whose label is the given one, ignoring case and
// surrounding spaces. If there is none, it returns Unvalidated and false.
func ParseRule(label string) (Rule, bool) {
	label = strings.ToUpper(strings.TrimSpace(label))
	for _, r := range Rules {
		if ruleLabels[r] == label {
			return r, true
		}
	}
	return Unvalidated, false
}

func (r Rule) String() string {
	if r <= Unvalidated || int(r) >= len(ruleLabels) {
		return "UNVALIDATED"
	}
	return ruleLabels[r]
}

// Premises returns the number of lines the rule is applied to.
// It returns -1 for Unvalidated.
func (r Rule) Premises() int {
	switch r {
	case Addition, Simplification:
		return 1
	case Unvalidated:
		return -1
	default:
		return 2
	}
}

// Matches indicates whether conclusion can be inferred from lines with r.
// Only the shape of the formulas is examined: operands are compared as strings,
// once whitespace and one outer level of grouping are removed. Logically
// equivalent but differently written operands do not match.
// Unvalidated never matches.
// HS only checks that the lines chain; see Validator.Conclusions.
func (r Rule) Matches(lines []string, conclusion string) bool {
	return r.match(lines, conclusion, false)
}

func (r Rule) match(lines []string, conclusion string, chained bool) bool {
	if len(lines) != r.Premises() {
		return false
	}
	segs := make([][]string, len(lines))
	for i, line := range lines {
		segs[i] = Segment(line)
	}
	concl := Segment(conclusion)
	switch r {
	case ModusPonens:
		a, b, ok := operands(segs[0], Conditional)
		return ok && same(a, join(segs[1])) && same(b, join(concl))
	case ModusTollens:
		a, b, ok := operands(segs[0], Conditional)
		return ok && same(join(segs[1]), "~"+b) && same(join(concl), "~"+a)
	case HypotheticalSyllogism:
		a, b, ok1 := operands(segs[0], Conditional)
		b2, c, ok2 := operands(segs[1], Conditional)
		if !ok1 || !ok2 || !same(b, b2) {
			return false
		}
		if !chained {
			return true
		}
		c1, c2, ok := operands(concl, Conditional)
		return ok && same(c1, a) && same(c2, c)
	case DisjunctiveSyllogism:
		a, b, ok := operands(segs[0], Disjunction)
		return ok && same(join(segs[1]), "~"+a) && same(b, join(concl))
	case ConstructiveDilemma:
		left, right, ok := operands(segs[0], Conjunction)
		if !ok {
			return false
		}
		ante1, cons1, ok1 := operands(Segment(Trim(left)), Conditional)
		ante2, cons2, ok2 := operands(Segment(Trim(right)), Conditional)
		d1, d2, ok3 := operands(segs[1], Disjunction)
		c1, c2, ok4 := operands(concl, Disjunction)
		return ok1 && ok2 && ok3 && ok4 &&
			same(ante1, d1) && same(ante2, d2) &&
			same(cons1, c1) && same(cons2, c2)
	case ConjunctionIntro:
		c1, c2, ok := operands(concl, Conjunction)
		return ok && same(c1, join(segs[0])) && same(c2, join(segs[1]))
	case Addition:
		c1, _, ok := operands(concl, Disjunction)
		return ok && same(c1, join(segs[0]))
	case Simplification:
		a, _, ok := operands(segs[0], Conjunction)
		return ok && same(join(concl), a)
	default:
		return false
	}
}

// operands returns the operands of segments if they are a single application of c.
func operands(segments []string, c Connective) (left, right string, ok bool) {
	if len(segments) != 3 || !c.is(segments[1]) {
		return "", "", false
	}
	return segments[0], segments[2], true
}

// same compares two operands, ignoring one level of grouping around each one.
func same(x, y string) bool {
	return unwrap(x) == unwrap(y)
}

// unwrap removes the outer grouping of x, provided it spans the whole of x:
// "(A∨B)" becomes "A∨B" but "(A)∨(B)" is left unchanged.
func unwrap(x string) string {
	segs := Segment(x)
	if len(segs) != 1 {
		return join(segs)
	}
	runes := []rune(segs[0])
	if !isOpening(runes[0]) || !isClosing(runes[len(runes)-1]) {
		return segs[0]
	}
	return Trim(segs[0])
}

// A Verdict is the outcome of a rule check.
type Verdict struct {
	Valid     bool // Whether the step is accepted
	Validated bool // Whether the rule was actually checked, as opposed to let through
}

// A Validator checks that lines of a proof follow from previous ones.
//
// Labels that are not rules of inference are accepted without validation,
// unless Strict is set. In that case they are rejected.
// When a label is let through for the first time in the life of the Validator,
// Advise is called with that label, if it is not nil, so that the caller
// can warn the user once. It is never called again by that Validator.
//
// The zero value is a permissive validator that advises nobody.
// A Validator must not be copied after first use.
type Validator struct {
	Strict bool
	Advise func(label string)
	// Conclusions makes HS also require the conclusion to be the conditional
	// from the first antecedent to the last consequent.
	Conclusions bool

	advised sync.Once
}

// Check indicates whether conclusion follows from lines by the rule with the
// given label.
func (v *Validator) Check(lines []string, label string, conclusion string) bool {
	return v.Verdict(lines, label, conclusion).Valid
}

// Verdict is like Check but also reports whether the rule was validated.
func (v *Validator) Verdict(lines []string, label string, conclusion string) Verdict {
	r, ok := ParseRule(label)
	if ok {
		return Verdict{Valid: r.match(lines, conclusion, v.Conclusions), Validated: true}
	}
	if v.Strict {
		return Verdict{}
	}
	v.advised.Do(func() {
		if v.Advise != nil {
			v.Advise(label)
		}
	})
	return Verdict{Valid: true}
}

// CheckRule indicates whether conclusion follows from lines by the rule with
// the given label. Labels such as "mp" or "Simp" are accepted.
// Labels that are not one of the eight rules of inference are accepted without
// any check; use a Validator to change that.
func CheckRule(lines []string, label string, conclusion string) bool {
	var v Validator
	return v.Check(lines, label, conclusion)
}
