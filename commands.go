package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/crillab/gologic/logic"
	"github.com/crillab/gologic/proof"
)

// cli holds the state shared by all commands.
type cli struct {
	stdin       io.Reader
	interactive bool // Whether missing variable values can be prompted on stdin
	in          *bufio.Reader

	configPath string
	strict     bool
	verbose    bool
	color      string

	cfg Config
	log *zap.Logger
}

func newRootCmd(c *cli) *cobra.Command {
	root := &cobra.Command{
		Use:   "gologic",
		Short: "Evaluate propositional formulas and check proofs",
		Long: `gologic evaluates propositional formulas written with the usual textbook glyphs.

Connectives: conjunction ⦁ • ∧ ^ &, conditional ⊃ → ⇒, biconditional ≡ ↔ ⇔,
disjunction ∨ + ∥. Negation is a leading ~, variables are single letters and
subformulas are grouped with (), [] or {}, one connective per group.

Without a command, expressions are read from a terminal and evaluated one by one.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !c.interactive {
				return cmd.Help()
			}
			return c.session(cmd, logic.Assignment{}, false)
		},
	}
	flags := root.PersistentFlags()
	flags.StringVar(&c.configPath, "config", "", "path to a YAML configuration file")
	flags.BoolVar(&c.strict, "strict", false, "reject rules that cannot be validated")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "log debug information on stderr")
	flags.StringVar(&c.color, "color", "auto", "colorize output: auto, always or never")
	root.AddCommand(
		c.evalCmd(),
		c.tableCmd(),
		c.consistentCmd(),
		c.ruleCmd(),
		c.proofCmd(),
		c.parseCmd(),
	)
	return root
}

// setup loads the configuration and applies the flags that were set.
func (c *cli) setup(cmd *cobra.Command, args []string) error {
	c.cfg = defaultConfig()
	if c.configPath != "" {
		cfg, err := loadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	flags := cmd.Flags()
	if flags.Changed("strict") {
		c.cfg.Strict = c.strict
	}
	if flags.Changed("verbose") {
		c.cfg.Verbose = c.verbose
	}
	if flags.Changed("color") {
		if err := validateColor(c.color); err != nil {
			return err
		}
		c.cfg.Color = c.color
	}
	c.log = newLogger(cmd.ErrOrStderr(), c.cfg.Verbose)
	c.log.Debug("configuration loaded",
		zap.String("path", c.configPath),
		zap.Bool("strict", c.cfg.Strict),
		zap.Int("max_variables", c.cfg.MaxVariables),
		zap.String("color", c.cfg.Color),
	)
	return nil
}

func (c *cli) stdout(cmd *cobra.Command) *printer {
	return newPrinter(cmd.OutOrStdout(), c.cfg.Color)
}

func (c *cli) stderr(cmd *cobra.Command) *printer {
	return newPrinter(cmd.ErrOrStderr(), c.cfg.Color)
}

// checkSize makes sure a truth table over vars is not too big.
func (c *cli) checkSize(vars []string) error {
	if limit := c.cfg.MaxVariables; limit > 0 && len(vars) > limit {
		return fmt.Errorf("%d variables (%s), more than the maximum of %d: raise max_variables to proceed",
			len(vars), strings.Join(vars, ", "), limit)
	}
	return nil
}

// advisor returns the function warning the user about unvalidated rules.
func (c *cli) advisor(cmd *cobra.Command) func(string) {
	p := c.stderr(cmd)
	return func(label string) {
		c.log.Debug("unvalidated rule", zap.String("rule", label))
		p.note("%q is not one of the rules of inference (%s): it is accepted without validation.\n"+
			"It is up to you to make sure it is applied correctly. This notice will not be shown again.",
			label, ruleList())
	}
}

func ruleList() string {
	labels := make([]string, len(logic.Rules))
	for i, r := range logic.Rules {
		labels[i] = r.String()
	}
	return strings.Join(labels, ", ")
}

func (c *cli) evalCmd() *cobra.Command {
	var (
		values []string
		trace  bool
	)
	cmd := &cobra.Command{
		Use:   "eval [EXPR]",
		Short: "Evaluate an expression",
		Long: `Evaluate an expression under the values given with -a.
Values of missing variables are asked for when stdin is a terminal.
Without EXPR on a terminal, expressions are read one per line until an empty line.`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && c.interactive {
				return nil
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseAssignment(values)
			if err != nil {
				return err
			}
			if len(args) == 0 {
				return c.session(cmd, a, trace)
			}
			val, err := c.evaluate(cmd, args[0], a, trace)
			if err != nil {
				return err
			}
			if !val {
				return resultError{exitFalse}
			}
			return nil
		},
	}
	cmd.Flags().StringArrayVarP(&values, "assign", "a", nil, "value of a variable, as in A=true or B=f (repeatable)")
	cmd.Flags().BoolVar(&trace, "trace", false, "log each evaluation step on stderr")
	return cmd
}

// evaluate completes a with the values of the variables of expr, then prints
// the value of expr.
func (c *cli) evaluate(cmd *cobra.Command, expr string, a logic.Assignment, trace bool) (bool, error) {
	if err := c.complete(cmd, a, logic.Variables(expr)); err != nil {
		return false, err
	}
	ev := logic.Evaluator{Logger: c.log}
	if trace {
		ev.Logger = newLogger(cmd.ErrOrStderr(), true)
	}
	start := time.Now()
	val, err := ev.Evaluate(expr, a)
	if err != nil {
		return false, err
	}
	p := c.stdout(cmd)
	p.printf("%s is %s\n", expr, p.value(val))
	p.printf("%s\n", p.dimStyle.Sprintf("took %v", time.Since(start)))
	return val, nil
}

// session evaluates expressions read on stdin until an empty line or the end
// of input. Values in base are used for every expression.
func (c *cli) session(cmd *cobra.Command, base logic.Assignment, trace bool) error {
	p := c.stderr(cmd)
	in := c.input()
	for {
		p.printf("%s ", p.headerStyle.Sprint("Expression:"))
		line, err := in.ReadString('\n')
		if err != nil && err != io.EOF {
			return fmt.Errorf("could not read expression: %w", err)
		}
		expr := strings.TrimSpace(line)
		if expr == "" {
			return nil
		}
		a := make(logic.Assignment, len(base))
		for v, b := range base {
			a[v] = b
		}
		if _, evalErr := c.evaluate(cmd, expr, a, trace); evalErr != nil {
			c.log.Debug("evaluation failed", zap.String("expr", expr), zap.Error(evalErr))
			p.error(evalErr)
		}
		if err == io.EOF {
			return nil
		}
	}
}

// input returns the reader shared by all prompts.
func (c *cli) input() *bufio.Reader {
	if c.in == nil {
		c.in = bufio.NewReader(c.stdin)
	}
	return c.in
}

// parseAssignment parses values of the form "A=true".
func parseAssignment(values []string) (logic.Assignment, error) {
	a := make(logic.Assignment, len(values))
	for _, v := range values {
		name, raw, ok := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid value %q: expected VAR=true or VAR=false", v)
		}
		b, err := strconv.ParseBool(strings.TrimSpace(raw))
		if err != nil {
			return nil, fmt.Errorf("invalid value for %s: %q is not a boolean", name, raw)
		}
		a[name] = b
	}
	return a, nil
}

// complete asks for the values of variables that are missing from a.
func (c *cli) complete(cmd *cobra.Command, a logic.Assignment, vars []string) error {
	var missing []string
	for _, v := range vars {
		if _, ok := a[v]; !ok {
			missing = append(missing, v)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	if !c.interactive {
		return fmt.Errorf("no value for %s: use -a %s=true or -a %s=false", strings.Join(missing, ", "), missing[0], missing[0])
	}
	p := c.stderr(cmd)
	in := c.input()
	for _, v := range missing {
		p.printf("  -> %s: ", p.headerStyle.Sprint(v))
		line, err := in.ReadString('\n')
		if err != nil && (err != io.EOF || line == "") {
			return fmt.Errorf("could not read value of %s: %w", v, err)
		}
		switch answer := strings.ToLower(strings.TrimSpace(line)); {
		case strings.HasPrefix(answer, "t"):
			a[v] = true
		case strings.HasPrefix(answer, "f"):
			a[v] = false
		default:
			return fmt.Errorf("invalid value %q for %s: expected t or f", strings.TrimSpace(line), v)
		}
	}
	return nil
}

func (c *cli) tableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table EXPR...",
		Short: "Print the truth table of expressions",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.checkSize(logic.Variables(args...)); err != nil {
				return err
			}
			ev := logic.Evaluator{Logger: c.log}
			t, err := ev.TruthTable(args)
			if err != nil {
				return err
			}
			c.log.Debug("truth table computed", zap.Int("variables", len(t.Variables)), zap.Int("rows", len(t.Rows)))
			c.stdout(cmd).table(t)
			return nil
		},
	}
}

func (c *cli) consistentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "consistent EXPR...",
		Short: "Tell whether expressions can all be true together",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vars := logic.Variables(args...)
			if err := c.checkSize(vars); err != nil {
				return err
			}
			model, err := logic.Witness(args)
			if err != nil {
				return err
			}
			p := c.stdout(cmd)
			if model == nil {
				p.printf("%s\n", p.falseStyle.Sprint("inconsistent"))
				return resultError{exitFalse}
			}
			p.printf("%s: %s\n", p.trueStyle.Sprint("consistent"), p.assignment(vars, model))
			return nil
		},
	}
}

func (c *cli) ruleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rule RULE CONCLUSION [LINE...]",
		Short: "Check that a conclusion follows from lines by a rule of inference",
		Long: `Check that CONCLUSION follows from the given lines by RULE, one of
MP, MT, HS, DS, CD, CONJ, ADD or SIMP. Only the shape of the formulas is checked.
Other rules are accepted without validation, unless --strict is set.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			label, conclusion, lines := args[0], args[1], args[2:]
			v := &logic.Validator{Strict: c.cfg.Strict, Advise: c.advisor(cmd)}
			verdict := v.Verdict(lines, label, conclusion)
			c.log.Debug("rule checked",
				zap.String("rule", label),
				zap.Strings("lines", lines),
				zap.String("conclusion", conclusion),
				zap.Bool("valid", verdict.Valid),
				zap.Bool("validated", verdict.Validated),
			)
			p := c.stdout(cmd)
			switch {
			case !verdict.Valid:
				p.printf("%s\n", p.falseStyle.Sprint("invalid"))
				return resultError{exitFalse}
			case verdict.Validated:
				p.printf("%s\n", p.trueStyle.Sprint("valid"))
			default:
				p.printf("%s\n", p.noteStyle.Sprint("accepted without validation"))
			}
			return nil
		},
	}
}

func (c *cli) proofCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "proof FILE",
		Short: "Check a proof written in YAML (- reads stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.readProof(args[0])
			if err != nil {
				return err
			}
			report, err := proof.Check(p, proof.Options{
				Strict:       c.cfg.Strict,
				Advise:       c.advisor(cmd),
				MaxVariables: c.cfg.MaxVariables,
				Logger:       c.log,
			})
			if err != nil {
				return fmt.Errorf("could not check %s: %w", args[0], err)
			}
			c.printReport(cmd, p, report)
			if !report.Valid() {
				return resultError{exitFalse}
			}
			return nil
		},
	}
}

func (c *cli) readProof(path string) (*proof.Proof, error) {
	if path == "-" {
		return proof.Parse(c.stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()
	p, err := proof.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func (c *cli) printReport(cmd *cobra.Command, pr *proof.Proof, report *proof.Report) {
	p := c.stdout(cmd)
	width := len(strconv.Itoa(len(pr.Premises) + len(pr.Steps)))
	for i, premise := range pr.Premises {
		p.printf("%*d  %s  %s\n", width, i+1, premise, p.dimStyle.Sprint("premise"))
	}
	for _, res := range report.Steps {
		justif := strings.ToUpper(res.Step.Rule)
		if len(res.Step.From) > 0 {
			refs := make([]string, len(res.Step.From))
			for i, ref := range res.Step.From {
				refs[i] = strconv.Itoa(ref)
			}
			justif += " " + strings.Join(refs, ",")
		}
		var status string
		switch {
		case !res.Valid:
			status = p.falseStyle.Sprint("✗ " + res.Reason)
		case res.Validated:
			status = p.trueStyle.Sprint("✓")
		default:
			status = p.noteStyle.Sprint("unchecked")
		}
		p.printf("%*d  %s  %s  %s\n", width, res.Line, res.Step.Expr, p.dimStyle.Sprint(justif), status)
	}
	switch {
	case !report.PremisesChecked:
		p.note("the consistency of premises was not checked: too many variables")
	case !report.PremisesConsistent:
		p.note("premises are inconsistent: anything follows from them")
	}
	if !report.ConclusionReached {
		p.printf("%s\n", p.falseStyle.Sprintf("the proof does not end with %s", pr.Conclusion))
	}
	if report.Valid() {
		p.printf("%s\n", p.trueStyle.Sprint("valid proof"))
	} else {
		p.printf("%s\n", p.falseStyle.Sprint("invalid proof"))
	}
}

func (c *cli) parseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "parse EXPR",
		Short: "Show how an expression is parsed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := logic.Compile(args[0])
			if err != nil {
				return err
			}
			segments := logic.Segment(args[0])
			p := c.stdout(cmd)
			p.printf("segments:  %s\n", strings.Join(segments, "  "))
			if len(segments) == 3 {
				op, _ := logic.LookupOperator(segments[1])
				p.printf("operator:  %s (%s)\n", op, op.Symbol())
			}
			p.printf("formula:   %s\n", f)
			p.printf("variables: %s\n", strings.Join(logic.Variables(args[0]), " "))
			return nil
		},
	}
}
