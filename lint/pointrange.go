package lint

import (
	"cmp"

	sitter "github.com/smacker/go-tree-sitter"
)

// Point is a position in a multi-line text document, in terms of rows
// and columns, both zero-based.
type Point struct {
	Row uint32
	Col uint32
}

// Cmp orders points lexicographically, row major.
func (p Point) Cmp(o Point) int {
	if c := cmp.Compare(p.Row, o.Row); c != 0 {
		return c
	}
	return cmp.Compare(p.Col, o.Col)
}

// Range is a range of positions in a multi-line text document, both in
// terms of bytes and of rows and columns. A zero-length byte range is
// valid and represents a synthetic location without source text.
type Range struct {
	StartByte  uint32
	EndByte    uint32
	StartPoint Point
	EndPoint   Point
}

// FromNode captures the source range of a syntax tree node.
func FromNode(n *sitter.Node) Range {
	return Range{
		StartByte:  n.StartByte(),
		EndByte:    n.EndByte(),
		StartPoint: Point{Row: n.StartPoint().Row, Col: n.StartPoint().Column},
		EndPoint:   Point{Row: n.EndPoint().Row, Col: n.EndPoint().Column},
	}
}

// Empty reports whether the range covers no bytes.
func (r Range) Empty() bool {
	return r.StartByte == r.EndByte
}
