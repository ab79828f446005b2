package proof

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// A Proof is a list of premises followed by derived steps.
type Proof struct {
	Premises []string `yaml:"premises"`
	Steps    []Step   `yaml:"steps"`
	// Conclusion, if not empty, is the expression the last line must be.
	Conclusion string `yaml:"conclusion,omitempty"`
}

// A Step is a line derived from previous ones.
type Step struct {
	Expr string `yaml:"expr"`
	Rule string `yaml:"rule"`
	From []int  `yaml:"from,flow"` // 1-based line numbers, in the order the rule expects them
}

// Parse parses a YAML proof from r.
// Unknown fields are rejected, every step must have an expression and a rule,
// and the proof must have at least one line.
func Parse(r io.Reader) (*Proof, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var p Proof
	if err := dec.Decode(&p); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("could not parse proof: empty document")
		}
		return nil, fmt.Errorf("could not parse proof: %w", err)
	}
	if err := p.validate(); err != nil {
		return nil, fmt.Errorf("invalid proof: %w", err)
	}
	return &p, nil
}

func (p *Proof) validate() error {
	if len(p.Premises) == 0 && len(p.Steps) == 0 {
		return fmt.Errorf("no premise and no step")
	}
	for i, premise := range p.Premises {
		if premise == "" {
			return fmt.Errorf("line %d: empty premise", i+1)
		}
	}
	for i, step := range p.Steps {
		line := len(p.Premises) + i + 1
		if step.Expr == "" {
			return fmt.Errorf("line %d: missing expression", line)
		}
		if step.Rule == "" {
			return fmt.Errorf("line %d: missing rule", line)
		}
	}
	return nil
}

// Lines returns the expressions of all lines of p, premises first.
func (p *Proof) Lines() []string {
	lines := make([]string, 0, len(p.Premises)+len(p.Steps))
	lines = append(lines, p.Premises...)
	for _, step := range p.Steps {
		lines = append(lines, step.Expr)
	}
	return lines
}
