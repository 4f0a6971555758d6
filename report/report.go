// Package report renders lint matches as terminal style diagnostics
// with source code context.
package report

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"bpflint/lint"
)

// Opts are configuration options for terminal reporting.
type Opts struct {
	// Extra lines of source context to include before and after a
	// match.
	Before uint8
	After  uint8
	// Highlighter decorates echoed source lines. When nil, lines are
	// echoed as-is, with invalid UTF-8 replaced.
	Highlighter Highlighter
}

// echo prepares one source line for display.
func (o *Opts) echo(line []byte) (string, error) {
	if o.Highlighter != nil {
		return o.Highlighter.Highlight(line)
	}
	return strings.ToValidUTF8(string(line), "�"), nil
}

// sourceLines splits code into its physical lines, without line
// terminators. A trailing newline does not open a final empty line.
func sourceLines(code []byte) [][]byte {
	lines := bytes.Split(code, []byte("\n"))
	if n := len(lines); n > 0 && len(lines[n-1]) == 0 {
		lines = lines[:n-1]
	}
	return lines
}

// lineIndexOf returns the index of the physical line containing the
// given byte offset.
func lineIndexOf(code []byte, offset uint32) int {
	if int(offset) > len(code) {
		offset = uint32(len(code))
	}
	return bytes.Count(code[:offset], []byte("\n"))
}

// errWriter batches the error handling of sequential writes: the first
// failed write sticks and later calls become no-ops.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

// Terminal writes a report for a lint match in terminal style.
//
//   - m is the match to create a report for
//   - code is the source code in question, as passed to lint.Check
//   - path should be the path of the file to which code corresponds
//     and is echoed verbatim in the location line
//   - w is the destination to which to write the report
//
// Example:
//
//	warning: [probe-read] bpf_probe_read() is deprecated and replaced by
//	         bpf_probe_read_user() and bpf_probe_read_kernel(); refer to bpf-helpers(7)
//	  --> example.bpf.c:43:24
//	   |
//	43 |                         bpf_probe_read(event.comm, TASK_COMM_LEN, prev->comm);
//	   |                         ^^^^^^^^^^^^^^
//	   |
func Terminal(m *lint.Match, code []byte, path string, w io.Writer) error {
	return TerminalOpts(m, code, path, &Opts{}, w)
}

// TerminalOpts writes a report for a lint match in terminal style,
// with extra lines of context as configured in opts.
//
// The echoed source lines are anchored on the match's byte range; the
// row numbers of the match label the gutter. Rendering is
// deterministic: identical inputs produce byte-identical output.
func TerminalOpts(m *lint.Match, code []byte, path string, opts *Opts, w io.Writer) error {
	startRow := int(m.Range.StartPoint.Row)
	endRow := int(m.Range.EndPoint.Row)
	startCol := int(m.Range.StartPoint.Col)
	endCol := int(m.Range.EndPoint.Col)

	ew := &errWriter{w: w}
	ew.printf("warning: [%s] %s\n", m.LintName, m.Message)
	ew.printf("  --> %s:%d:%d\n", path, startRow, startCol)

	// A match without bytes has no code snippet to echo.
	if m.Range.Empty() {
		return ew.err
	}

	// Size the gutter for the largest number it will hold, so line
	// numbers stay right-aligned across digit-count boundaries.
	width := len(strconv.Itoa(endRow + int(opts.After)))
	border := fmt.Sprintf("%*s | ", width, "")

	lines := sourceLines(code)
	matchLine := lineIndexOf(code, m.Range.StartByte)

	echoLine := func(idx int) (string, error) {
		if idx < 0 || idx >= len(lines) {
			return "", nil
		}
		return opts.echo(lines[idx])
	}

	ew.printf("%s\n", border)

	// Context before the match, clipped at the start of file.
	before := int(opts.Before)
	if before > matchLine {
		before = matchLine
	}
	for i := before; i >= 1; i-- {
		text, err := echoLine(matchLine - i)
		if err != nil {
			return err
		}
		ew.printf("%*d | %s\n", width, startRow-i, text)
	}

	// The number of physical lines the match body consumed, so the
	// trailing context picks up where the body left off.
	consumed := 0

	if startRow == endRow {
		text, err := echoLine(matchLine)
		if err != nil {
			return err
		}
		ew.printf("%*d | %s\n", width, startRow, text)
		consumed = 1

		span := endCol - startCol
		if span < 0 {
			span = 0
		}
		ew.printf("%s%s%s\n", border, strings.Repeat(" ", startCol), strings.Repeat("^", span))
	} else {
		for row := startRow; row <= endRow; row++ {
			// The range may nominally extend past the final physical
			// line, e.g. when a match includes a trailing newline.
			// Stop echoing instead of inventing lines.
			if matchLine+consumed >= len(lines) {
				break
			}
			marker := "|"
			if row == startRow {
				marker = "/"
			}
			text, err := echoLine(matchLine + consumed)
			if err != nil {
				return err
			}
			ew.printf("%*d |  %s %s\n", width, row, marker, text)
			consumed++
		}
		ew.printf("%s |%s^\n", border, strings.Repeat("_", endCol))
	}

	// Context after the match, clipped at the end of file.
	for i := 0; i < int(opts.After); i++ {
		idx := matchLine + consumed + i
		if idx >= len(lines) {
			break
		}
		text, err := echoLine(idx)
		if err != nil {
			return err
		}
		ew.printf("%*d | %s\n", width, endRow+1+i, text)
	}

	ew.printf("%s\n", border)
	return ew.err
}
