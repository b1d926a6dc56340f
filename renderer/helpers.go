package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock let you fully write a block and decide at the end to print it or not.
// If the block function returns true, the content is printed to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// markdown accumulates a markdown document.
type markdown struct {
	strings.Builder
}

// Printf formats according to a format specifier and writes to the document.
func (r *markdown) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}

// escape makes s safe to use inside a table cell.
func escape(s string) string {
	return strings.NewReplacer("|", `\|`, "\n", " ").Replace(s)
}

// plural returns "1 year" or "3 years".
func plural(n float64, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return fmt.Sprintf("%g %ss", n, noun)
}
