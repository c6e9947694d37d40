package cli

import (
	"fmt"
	"io"

	"github.com/bigattichouse/taguchi/oa"
)

// ListArrays implements `list-arrays` (§6.6): print the catalog with
// (rows, cols, levels) for each array, in catalog order.
func ListArrays(out io.Writer) error {
	fmt.Fprintln(out, "Available orthogonal arrays:")
	for _, name := range oa.ListNames() {
		rows, cols, base, ok := oa.Info(name)
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %-6s rows=%-5d cols=%-5d levels=%d\n", name, rows, cols, base)
	}
	return nil
}
