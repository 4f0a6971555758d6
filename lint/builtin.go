package lint

import (
	"embed"
	"fmt"
	"path"

	"github.com/BurntSushi/toml"
	sitter "github.com/smacker/go-tree-sitter"

	"bpflint/bpfc"
)

//go:embed lints/*.toml
var lintFS embed.FS

type lintFile struct {
	Name    string `toml:"name"`
	Message string `toml:"message"`
	Query   string `toml:"query"`
}

var builtins = mustLoadBuiltins()

func mustLoadBuiltins() []Lint {
	entries, err := lintFS.ReadDir("lints")
	if err != nil {
		panic(err)
	}

	// ReadDir reports entries sorted by filename, which fixes the
	// evaluation order of the built-in lints.
	lints := make([]Lint, 0, len(entries))
	for _, entry := range entries {
		data, err := lintFS.ReadFile(path.Join("lints", entry.Name()))
		if err != nil {
			panic(err)
		}
		var file lintFile
		if err := toml.Unmarshal(data, &file); err != nil {
			panic(fmt.Sprintf("malformed built-in lint %s: %v", entry.Name(), err))
		}
		lints = append(lints, Lint{
			Name:    file.Name,
			Query:   file.Query,
			Message: file.Message,
		})
	}
	return lints
}

// Builtins returns the list of lints shipped with the library.
func Builtins() []Lint {
	lints := make([]Lint, len(builtins))
	copy(lints, builtins)
	return lints
}

// Validate checks the invariants every lint has to uphold: its query
// compiles and contains exactly one top-level pattern, and its message
// is a single concise line without terminal punctuation. Rule sets are
// validated once when loaded; the checks are not repeated per match.
func Validate(l Lint) error {
	query, err := sitter.NewQuery([]byte(l.Query), bpfc.GetLanguage())
	if err != nil {
		return fmt.Errorf("failed to compile query of lint `%s`: %w", l.Name, err)
	}
	defer query.Close()

	if n := query.PatternCount(); n != 1 {
		return fmt.Errorf("lint `%s` has %d patterns: only a single one is supported", l.Name, n)
	}

	if l.Message == "" {
		return fmt.Errorf("lint `%s` has an empty message", l.Name)
	}
	switch l.Message[len(l.Message)-1] {
	case '.', '!', '?', '\n':
		return fmt.Errorf(
			"message of lint `%s` should be concise and not a fully blown sentence with punctuation",
			l.Name,
		)
	}
	return nil
}
