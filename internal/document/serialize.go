package document

import (
	"io"
	"strings"
)

const continuationIndent = "    "

// String renders the document in its textual format. Scalars are written
// inline, lists as a bare key followed by indented entries. The output is
// canonical rather than byte-identical to the input, but parses back to a
// structurally equal Document.
func (d *Document) String() string {
	var b strings.Builder
	for i, section := range d.Sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString("[")
		b.WriteString(section.Name)
		b.WriteString("]\n")
		for _, setting := range section.Settings {
			if setting.Scalar() {
				b.WriteString(setting.Key)
				b.WriteString(" = ")
				b.WriteString(setting.Value())
				b.WriteString("\n")
				continue
			}
			b.WriteString(setting.Key)
			b.WriteString(" =\n")
			for _, value := range setting.Values {
				b.WriteString(continuationIndent)
				b.WriteString(value)
				b.WriteString("\n")
			}
		}
	}
	return b.String()
}

// WriteTo writes the serialized document to w.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, d.String())
	return int64(n), err
}
