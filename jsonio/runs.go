package jsonio

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bigattichouse/taguchi"
)

// MarshalRuns renders runs as the §6.4 wire format: an array of objects,
// one per run, each with "run_id" first followed by one key per factor in
// insertion order.
func MarshalRuns(runs []taguchi.Run) []byte {
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range runs {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('{')
		b.WriteString(`"run_id":`)
		b.WriteString(strconv.Itoa(r.RunID))
		for _, fv := range r.Values {
			b.WriteByte(',')
			writeJSONString(&b, fv.Factor)
			b.WriteByte(':')
			writeJSONString(&b, fv.Level)
		}
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return []byte(b.String())
}

// writeJSONString escapes s per §6.4: `"`, `\`, and the ASCII control
// substitutes \b \f \n \r \t. Any other control character (not named by
// §6.4 but still illegal unescaped in JSON) falls back to a \u00XX
// escape so the output is always valid JSON.
func writeJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(b, `\u%04x`, r)
			} else {
				b.WriteRune(r)
			}
		}
	}
	b.WriteByte('"')
}
