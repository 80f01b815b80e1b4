package document

import "fmt"

// MalformedDocumentError reports a line that parses as neither a section
// header, a key/value pair, nor a continuation line.
type MalformedDocumentError struct {
	Line   int
	Reason string
}

func (e *MalformedDocumentError) Error() string {
	return fmt.Sprintf("line %d: malformed document: %s", e.Line, e.Reason)
}

// DuplicateKeyError reports a key defined twice within one section when
// parsing under the Strict policy. Line is the second occurrence. An empty
// Key means the section header itself was duplicated.
type DuplicateKeyError struct {
	Line    int
	Section string
	Key     string
}

func (e *DuplicateKeyError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("line %d: duplicate section [%s]", e.Line, e.Section)
	}
	return fmt.Sprintf("line %d: duplicate key %q in section [%s]", e.Line, e.Key, e.Section)
}
