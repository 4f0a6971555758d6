package report

import (
	"strings"

	"github.com/fatih/color"
	sitter "github.com/smacker/go-tree-sitter"

	"bpflint/bpfc"
)

// Highlighter maps a span of source text to a styled string for
// terminal display. Implementations have to be deterministic for the
// surrounding report to stay reproducible.
type Highlighter interface {
	Highlight(code []byte) (string, error)
}

// ANSI colors BPF C source with 24-bit ANSI escapes, following the
// GitHub Sublime theme palette. The zero value is ready for use.
type ANSI struct{}

var (
	ghPurple   = color.RGB(121, 93, 163)  // #795da3
	ghTeal     = color.RGB(0, 134, 179)   // #0086B3
	ghPink     = color.RGB(167, 29, 93)   // #a71d5d
	ghBlue     = color.RGB(24, 54, 145)   // #183691
	ghGray     = color.RGB(150, 152, 150) // #969896
	ghDarkGray = color.RGB(51, 51, 51)    // #333333
)

var cKeywords = map[string]bool{
	"break": true, "case": true, "const": true, "continue": true,
	"default": true, "do": true, "else": true, "enum": true,
	"extern": true, "for": true, "goto": true, "if": true,
	"inline": true, "return": true, "sizeof": true, "static": true,
	"struct": true, "switch": true, "typedef": true, "union": true,
	"volatile": true, "while": true,
}

// styleFor picks the color of a leaf node, or nil for unstyled text.
func styleFor(n *sitter.Node) *color.Color {
	kind := n.Type()
	switch kind {
	case "comment":
		return ghGray
	case "string_literal", "string_content", "char_literal", "system_lib_string":
		return ghBlue
	case "number_literal":
		return ghTeal
	case "primitive_type", "type_identifier", "sized_type_specifier":
		return ghPink
	case "preproc_directive", "#include", "#define", "#if", "#endif", "#else", "#ifdef", "#ifndef":
		return ghPurple
	case "identifier":
		if p := n.Parent(); p != nil && p.Type() == "call_expression" {
			return ghPurple
		}
		return ghTeal
	case "field_identifier":
		return ghTeal
	case "{", "}", "(", ")", "[", "]", ";", ",":
		return ghDarkGray
	}
	if cKeywords[kind] {
		return ghPink
	}
	return nil
}

// Highlight parses code and re-emits it with color escapes around the
// recognized tokens. Bytes the parser does not attribute to a token
// pass through unchanged.
func (ANSI) Highlight(code []byte) (string, error) {
	tree, err := bpfc.Parse(code)
	if err != nil {
		return "", err
	}
	defer tree.Close()

	var b strings.Builder
	pos := uint32(0)

	emit := func(text string, style *color.Color) {
		if style != nil {
			b.WriteString(style.Sprint(text))
		} else {
			b.WriteString(text)
		}
	}

	var walk func(n *sitter.Node)
	walk = func(n *sitter.Node) {
		count := int(n.ChildCount())
		if count == 0 {
			start, end := n.StartByte(), n.EndByte()
			if end > uint32(len(code)) {
				end = uint32(len(code))
			}
			if start < pos || start > end {
				return
			}
			if start > pos {
				b.WriteString(lossy(code[pos:start]))
			}
			emit(lossy(code[start:end]), styleFor(n))
			pos = end
			return
		}
		for i := 0; i < count; i++ {
			walk(n.Child(i))
		}
	}
	walk(tree.RootNode())

	if int(pos) < len(code) {
		b.WriteString(lossy(code[pos:]))
	}
	return b.String(), nil
}

func lossy(raw []byte) string {
	return strings.ToValidUTF8(string(raw), "�")
}
