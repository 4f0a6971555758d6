package lint

import (
	"strings"
	"unicode/utf8"

	"github.com/golang/glog"
	sitter "github.com/smacker/go-tree-sitter"
)

// isDisabled walks the syntax tree upwards from node, checking whether
// a comment directly preceding the node or one of its ancestors
// disables the given lint. Only the immediate previous sibling is
// consulted at each level, so a directive covers exactly the node
// following it (and that node's descendants), not later siblings.
func isDisabled(lintName string, node *sitter.Node, code []byte) bool {
	for n := node; n != nil; n = n.Parent() {
		sibling := n.PrevSibling()
		if sibling == nil || sibling.Type() != "comment" {
			continue
		}

		raw := code[sibling.StartByte():sibling.EndByte()]
		if !utf8.Valid(raw) {
			// If it's not valid UTF-8 it can't be a directive for us
			// to consider.
			glog.Warningf(
				"encountered invalid UTF-8 in code comment at bytes `%d..%d`",
				sibling.StartByte(), sibling.EndByte(),
			)
			continue
		}

		// The comment node still contains the actual comment syntax.
		// Delimiters may repeat, as in `//// comment` banners.
		comment := string(raw)
		for strings.HasPrefix(comment, "//") {
			comment = comment[2:]
		}
		for strings.HasPrefix(comment, "/*") {
			comment = comment[2:]
		}
		for strings.HasSuffix(comment, "*/") {
			comment = comment[:len(comment)-2]
		}
		comment = strings.TrimSpace(comment)

		rest, found := strings.CutPrefix(comment, "bpflint:")
		if !found {
			continue
		}
		key, found := strings.CutPrefix(strings.TrimSpace(rest), "disable=")
		if !found {
			continue
		}
		if key == "all" || key == lintName {
			return true
		}
	}
	return false
}
