package proof

import (
	"fmt"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"github.com/crillab/gologic/logic"
)

// Options is a set of options for the checking process.
type Options struct {
	// If Strict is true, steps justified by a label that is not a rule of
	// inference are rejected instead of being accepted unchecked.
	Strict bool
	// Advise is called the first time a step is accepted unchecked.
	Advise func(label string)
	// MaxVariables bounds the number of variables for which the consistency
	// of premises is computed. 0 means no bound.
	MaxVariables int
	// Logger, if not nil, receives a debug entry for each step.
	Logger *zap.Logger
}

// A StepResult is the outcome of checking one step.
type StepResult struct {
	Line      int
	Step      Step
	Valid     bool
	Validated bool   // False if the step was accepted without checking its rule
	Reason    string // Why the step is invalid
}

// A Report is the outcome of checking a whole proof.
type Report struct {
	Steps []StepResult
	// PremisesChecked is false when there were too many variables to check
	// the consistency of premises.
	PremisesChecked bool
	// PremisesConsistent is meaningful only if PremisesChecked is true.
	// Anything follows from inconsistent premises.
	PremisesConsistent bool
	// ConclusionReached is true if the last line is the expected conclusion,
	// or if no conclusion was expected.
	ConclusionReached bool
}

// Valid is true iff all steps are valid and the conclusion was reached.
func (r *Report) Valid() bool {
	for _, step := range r.Steps {
		if !step.Valid {
			return false
		}
	}
	return r.ConclusionReached
}

// Unvalidated returns the number of steps that were accepted unchecked.
func (r *Report) Unvalidated() int {
	nb := 0
	for _, step := range r.Steps {
		if step.Valid && !step.Validated {
			nb++
		}
	}
	return nb
}

// Check checks every step of p.
// Invalid steps are not errors: they are described in the report.
// An error is returned if a premise is not a well-formed expression.
func Check(p *Proof, opts Options) (*Report, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	for i, premise := range p.Premises {
		if _, err := logic.Compile(premise); err != nil {
			return nil, fmt.Errorf("premise on line %d: %w", i+1, err)
		}
	}
	var report Report
	if vars := logic.Variables(p.Premises...); opts.MaxVariables <= 0 || len(vars) <= opts.MaxVariables {
		ok, err := logic.IsConsistent(p.Premises)
		if err != nil {
			return nil, fmt.Errorf("could not check premises: %w", err)
		}
		report.PremisesChecked = true
		report.PremisesConsistent = ok
	} else {
		log.Warn("too many variables to check premises", zap.Int("variables", len(vars)), zap.Int("max", opts.MaxVariables))
	}
	v := &logic.Validator{Strict: opts.Strict, Advise: opts.Advise, Conclusions: true}
	lines := p.Lines()
	for i, step := range p.Steps {
		res := checkStep(v, lines, len(p.Premises)+i+1, step)
		log.Debug("step",
			zap.Int("line", res.Line),
			zap.String("expr", step.Expr),
			zap.String("rule", step.Rule),
			zap.Ints("from", step.From),
			zap.Bool("valid", res.Valid),
			zap.Bool("validated", res.Validated),
		)
		report.Steps = append(report.Steps, res)
	}
	switch {
	case p.Conclusion == "":
		report.ConclusionReached = true
	case len(lines) > 0:
		report.ConclusionReached = compact(lines[len(lines)-1]) == compact(p.Conclusion)
	}
	log.Debug("proof checked",
		zap.Int("steps", len(report.Steps)),
		zap.Bool("valid", report.Valid()),
		zap.Int("unvalidated", report.Unvalidated()),
	)
	return &report, nil
}

func checkStep(v *logic.Validator, lines []string, line int, step Step) StepResult {
	res := StepResult{Line: line, Step: step}
	if _, err := logic.Compile(step.Expr); err != nil {
		res.Reason = err.Error()
		return res
	}
	from := make([]string, len(step.From))
	for i, ref := range step.From {
		if ref < 1 || ref >= line {
			res.Reason = fmt.Sprintf("line %d is not a previous line", ref)
			return res
		}
		from[i] = lines[ref-1]
	}
	verdict := v.Verdict(from, step.Rule, step.Expr)
	res.Valid, res.Validated = verdict.Valid, verdict.Validated
	if !res.Valid {
		if verdict.Validated {
			res.Reason = fmt.Sprintf("does not follow from %s by %s", refs(step.From), strings.ToUpper(step.Rule))
		} else {
			res.Reason = fmt.Sprintf("%q is not a rule of inference", step.Rule)
		}
	}
	return res
}

func refs(from []int) string {
	if len(from) == 0 {
		return "no line"
	}
	strs := make([]string, len(from))
	for i, ref := range from {
		strs[i] = fmt.Sprint(ref)
	}
	if len(strs) == 1 {
		return "line " + strs[0]
	}
	return "lines " + strings.Join(strs, ", ")
}

// compact removes all whitespace from expr.
func compact(expr string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, expr)
}
