// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/pdiddy/quizconv/pkg/types"
)

const jsonIndent = "    "

// EncodeJSON writes t as a pretty-printed JSON array of objects. Non-ASCII
// and HTML characters are written literally.
func EncodeJSON(w io.Writer, t *types.Table) error {
	var compact bytes.Buffer
	compact.WriteByte('[')
	for i, row := range t.Rows {
		if i > 0 {
			compact.WriteByte(',')
		}
		compact.WriteByte('{')
		for j, col := range t.Columns {
			if j > 0 {
				compact.WriteByte(',')
			}
			if err := writeJSONString(&compact, col); err != nil {
				return err
			}
			compact.WriteByte(':')
			cell := row.Cells[j]
			if cell.IsNull() {
				compact.WriteString("null")
				continue
			}
			if err := writeJSONString(&compact, cell.Value); err != nil {
				return fmt.Errorf("line %d, column %q: %w", row.Line, col, err)
			}
		}
		compact.WriteByte('}')
	}
	compact.WriteByte(']')

	var out bytes.Buffer
	if err := json.Indent(&out, compact.Bytes(), "", jsonIndent); err != nil {
		return fmt.Errorf("indenting JSON: %w", err)
	}
	out.WriteByte('\n')
	_, err := w.Write(out.Bytes())
	return err
}

func writeJSONString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(unescapeLineSeparators(bytes.TrimSuffix(tmp.Bytes(), []byte("\n"))))
	return nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes encoding/json
// always emits back into literal runes. Escaped backslashes are copied as a
// pair so text that merely spells out an escape is left alone.
func unescapeLineSeparators(b []byte) []byte {
	if !bytes.Contains(b, []byte(`\u202`)) {
		return b
	}
	out := make([]byte, 0, len(b))
	for i := 0; i < len(b); i++ {
		if b[i] != '\\' || i+1 >= len(b) {
			out = append(out, b[i])
			continue
		}
		if i+5 < len(b) && b[i+1] == 'u' {
			switch string(b[i+2 : i+6]) {
			case "2028":
				out = append(out, "\u2028"...)
				i += 5
				continue
			case "2029":
				out = append(out, "\u2029"...)
				i += 5
				continue
			}
		}
		out = append(out, b[i], b[i+1])
		i++
	}
	return out
}
