// Package proof checks derivations written as YAML documents.
//
// A proof lists premises, then derived steps. Lines are numbered from 1,
// premises first, and each step names the rule it applies and the lines it is
// applied to:
//
//	premises:
//	  - A → B
//	  - B → C
//	  - A
//	steps:
//	  - {expr: A → C, rule: HS, from: [1, 2]}
//	  - {expr: C, rule: MP, from: [4, 3]}
//	conclusion: C
//
// Steps are checked with logic.Validator: the eight rules of inference are
// validated structurally, any other label (such as a rule of replacement) is
// accepted as is unless strict checking is requested. A step justified by HS
// must state the conditional that links the two lines it is applied to.
package proof
