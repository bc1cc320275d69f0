// Package cliutil provides the output formatting shared by cmd/asinine's
// subcommands: indented tree printing and hex dumps of raw leaf bytes. It
// has no knowledge of cobra or os.Args — it only ever receives already
// parsed asinine.Token values.
package cliutil

import (
	"fmt"
	"io"
	"strings"

	"github.com/charliexp/asinine"
)

// Indent returns depth levels of two-space indentation.
func Indent(depth int) string {
	return strings.Repeat("  ", depth)
}

// HexDump renders data as a single line of space-separated uppercase hex
// pairs, truncated with a trailing "..." past max bytes.
func HexDump(data []byte, max int) string {
	n := len(data)
	truncated := false
	if n > max {
		n = max
		truncated = true
	}

	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		fmt.Fprintf(&b, "%02X", data[i])
	}
	if truncated {
		b.WriteString(" ...")
	}
	return b.String()
}

// PrintTokenHeader writes one tree line describing tok: its depth-indented
// type name, class/tag numbers, compound marker and content length.
func PrintTokenHeader(w io.Writer, depth int, tok asinine.Token) {
	compound := " "
	if tok.Compound() {
		compound = "*"
	}
	fmt.Fprintf(w, "%s%s[class=%d tag=%d]%s len=%d\n",
		Indent(depth), asinine.TypeName(tok.Class(), tok.Tag()), tok.Class(), tok.Tag(),
		compound, tok.Length())
}

// PrintLeafValue writes one indented line with a leaf's label and its
// already formatted value.
func PrintLeafValue(w io.Writer, depth int, label string, value string) {
	fmt.Fprintf(w, "%s  -> %s: %s\n", Indent(depth), label, value)
}
