// Package document parses and serializes environment matrix documents.
//
// # Format
//
// A document is plain text made of sections, settings, and continuation
// lines:
//
//	[name]
//	key = value
//	list =
//	    first
//	    second
//
// A section header is a name in square brackets at the start of a line.
// A setting is `key = value` (or `key=value`) at zero indentation; a
// setting followed by indented non-blank lines collects those lines as an
// ordered list of entries. Lines starting with '#' or ';' and blank lines
// are ignored. Values are kept verbatim; the package attaches no meaning
// to them.
//
// # Parse contract
//
// Parsing either returns the complete Document or fails with an error
// carrying the offending 1-based line number. There is no partial result
// and no recovery: a line that is neither a section header, a key/value
// pair, a continuation line, nor ignorable text fails the whole load with
// a MalformedDocumentError. How a key (or section header) appearing twice
// is treated depends on the DuplicatePolicy: last-write-wins keeps the
// final occurrence, strict fails with a DuplicateKeyError.
//
// Parsing is a pure read/transform operation: the same input always yields
// a structurally equal Document, and serializing a Document with WriteTo
// produces text that parses back to an equal Document.
package document
