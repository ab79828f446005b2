package logic

// A Connective is one of the four binary operators of the language.
type Connective int

const (
	// Conjunction is true when both operands are true.
	Conjunction Connective = iota
	// Conditional is material implication: it is only false when the antecedent
	// is true and the consequent false.
	Conditional
	// Biconditional is true when both operands have the same value.
	Biconditional
	// Disjunction is the inclusive or.
	Disjunction
)

type connectiveDef struct {
	name    string
	symbols []rune
	apply   func(left, right bool) bool
}

// connectives is indexed by Connective.
var connectives = [...]connectiveDef{
	Conjunction: {
		name:    "and",
		symbols: []rune{'⦁', '•', '∧', '^', '&'},
		apply:   func(left, right bool) bool { return left && right },
	},
	Conditional: {
		name:    "implies",
		symbols: []rune{'⊃', '→', '⇒'},
		apply: func(left, right bool) bool {
			if left {
				return right
			}
			return true
		},
	},
	Biconditional: {
		name:    "iff",
		symbols: []rune{'≡', '↔', '⇔'},
		apply:   func(left, right bool) bool { return left == right },
	},
	Disjunction: {
		name:    "or",
		symbols: []rune{'∨', '+', '∥'},
		apply:   func(left, right bool) bool { return left || right },
	},
}

// operators associates each accepted symbol with its connective.
var operators = make(map[rune]Connective)

func init() {
	for c, def := range connectives {
		for _, sym := range def.symbols {
			operators[sym] = Connective(c)
		}
	}
}

// groupings associates opening grouping characters with their closing counterpart.
var groupings = map[rune]rune{'(': ')', '[': ']', '{': '}'}

func isOpening(r rune) bool {
	_, ok := groupings[r]
	return ok
}

func isClosing(r rune) bool {
	return r == ')' || r == ']' || r == '}'
}

// LookupOperator returns the connective denoted by the given token.
// The token must be exactly one registered symbol.
func LookupOperator(token string) (Connective, bool) {
	runes := []rune(token)
	if len(runes) != 1 {
		return 0, false
	}
	c, ok := operators[runes[0]]
	return c, ok
}

// Symbols returns every glyph accepted for c, the preferred one first.
func (c Connective) Symbols() []rune {
	syms := make([]rune, len(connectives[c].symbols))
	copy(syms, connectives[c].symbols)
	return syms
}

// Symbol returns the preferred glyph for c.
func (c Connective) Symbol() string {
	return string(connectives[c].symbols[0])
}

// Apply computes the value of "left c right".
func (c Connective) Apply(left, right bool) bool {
	return connectives[c].apply(left, right)
}

func (c Connective) String() string {
	return connectives[c].name
}

// is reports whether token is one of the symbols of c.
func (c Connective) is(token string) bool {
	c2, ok := LookupOperator(token)
	return ok && c2 == c
}
