package lint

import (
	"fmt"
	"sort"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"bpflint/bpfc"
)

// Lint is a named structural pattern rule together with the message
// reported for each of its matches.
type Lint struct {
	// The lint's name.
	Name string
	// The lint's pattern in the form of a tree-sitter query. A lint
	// carries exactly one top-level pattern; see Validate.
	Query string
	// The message reported in a Match.
	Message string
}

// Match describes one occurrence of a lint's pattern in source code.
type Match struct {
	// The name of the lint that matched.
	LintName string
	// The lint's message.
	Message string
	// The code range that triggered the lint.
	Range Range
}

// check evaluates a single lint against an already parsed tree,
// dropping suppressed and internal captures.
func check(tree *sitter.Tree, code []byte, l *Lint) ([]Match, error) {
	query, err := sitter.NewQuery([]byte(l.Query), bpfc.GetLanguage())
	if err != nil {
		return nil, fmt.Errorf("failed to compile query of lint `%s`: %w", l.Name, err)
	}
	defer query.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()

	var matches []Match
	qc.Exec(query, tree.RootNode())
	for m, goNext := qc.NextMatch(); goNext; m, goNext = qc.NextMatch() {
		m = qc.FilterPredicates(m, code)
		for _, capture := range m.Captures {
			if isDisabled(l.Name, capture.Node, code) {
				continue
			}

			// Captures starting with a double underscore are internal
			// to the lint and are not reported.
			name := query.CaptureNameForId(capture.Index)
			if strings.HasPrefix(name, "__") {
				continue
			}

			matches = append(matches, Match{
				LintName: l.Name,
				Message:  l.Message,
				Range:    FromNode(capture.Node),
			})
		}
	}
	return matches, nil
}

// CheckCustom lints code using the provided set of lints.
//
// The source is parsed once and every lint is evaluated against the
// same tree, in the order given. Matches are reported in source code
// order; lints keep their evaluation order where ranges coincide. A
// query that fails to compile aborts the whole call.
func CheckCustom(code []byte, lints []Lint) ([]Match, error) {
	tree, err := bpfc.Parse(code)
	if err != nil {
		return nil, fmt.Errorf("failed to parse source code: %w", err)
	}
	defer tree.Close()

	var results []Match
	for i := range lints {
		matches, err := check(tree, code, &lints[i])
		if err != nil {
			return nil, err
		}
		results = append(results, matches...)
	}

	sort.SliceStable(results, func(i, j int) bool {
		ri, rj := &results[i].Range, &results[j].Range
		if c := ri.StartPoint.Cmp(rj.StartPoint); c != 0 {
			return c < 0
		}
		return ri.EndPoint.Cmp(rj.EndPoint) < 0
	})
	return results, nil
}

// Check lints code using the built-in set of lints. Matches are
// reported in source code order.
func Check(code []byte) ([]Match, error) {
	return CheckCustom(code, Builtins())
}
