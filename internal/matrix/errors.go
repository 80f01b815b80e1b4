package matrix

import "fmt"

// UnknownSectionReferenceError reports a section referencing another named
// section that does not exist in the document.
type UnknownSectionReferenceError struct {
	Section   string
	Reference string
}

func (e *UnknownSectionReferenceError) Error() string {
	return fmt.Sprintf("section [%s] references unknown environment %q", e.Section, e.Reference)
}

// ValueError reports a setting whose value cannot be interpreted as the
// type its key requires.
type ValueError struct {
	Line    int
	Section string
	Key     string
	Reason  string
}

func (e *ValueError) Error() string {
	return fmt.Sprintf("line %d: [%s] %s: %s", e.Line, e.Section, e.Key, e.Reason)
}
