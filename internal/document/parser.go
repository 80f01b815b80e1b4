package document

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"git.sr.ht/~spc/go-log"
)

// Options control parsing behavior.
type Options struct {
	Duplicates DuplicatePolicy
}

// Load reads and parses the document at path.
func Load(path string, opts Options) (*Document, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read document %s: %w", path, err)
	}
	defer file.Close()

	doc, err := Parse(file, opts)
	if err != nil {
		return nil, fmt.Errorf("cannot parse document %s: %w", path, err)
	}
	log.Debugf("loaded document %s: %d sections", path, len(doc.Sections))
	return doc, nil
}

// ParseString parses a document from a string.
func ParseString(text string, opts Options) (*Document, error) {
	return Parse(strings.NewReader(text), opts)
}

// Parse reads a complete document from r. It either returns the full
// Document or the first error encountered; there is no partial result.
func Parse(r io.Reader, opts Options) (*Document, error) {
	doc := &Document{}

	var section *Section
	var setting *Setting

	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		raw := scanner.Text()
		trimmed := strings.TrimSpace(raw)

		// Ignorable lines. Blank entries inside continuation blocks are
		// discarded as well.
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, ";") {
			continue
		}

		if strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t") {
			if setting == nil {
				return nil, &MalformedDocumentError{Line: line, Reason: "continuation line without a preceding setting"}
			}
			setting.Values = append(setting.Values, trimmed)
			continue
		}

		if strings.HasPrefix(trimmed, "[") {
			var err error
			section, err = beginSection(doc, trimmed, line, opts.Duplicates)
			if err != nil {
				return nil, err
			}
			setting = nil
			continue
		}

		key, value, found := cutKeyValue(trimmed)
		if !found {
			return nil, &MalformedDocumentError{Line: line, Reason: "expected section header or key/value pair"}
		}
		if key == "" {
			return nil, &MalformedDocumentError{Line: line, Reason: "setting has no key"}
		}
		if section == nil {
			return nil, &MalformedDocumentError{Line: line, Reason: "setting before any section header"}
		}

		var err error
		setting, err = beginSetting(section, key, value, line, opts.Duplicates)
		if err != nil {
			return nil, err
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read document: %w", err)
	}

	return doc, nil
}

// beginSection parses a section header line and returns the section that
// subsequent settings belong to.
func beginSection(doc *Document, trimmed string, line int, policy DuplicatePolicy) (*Section, error) {
	end := strings.Index(trimmed, "]")
	if end < 0 {
		return nil, &MalformedDocumentError{Line: line, Reason: "unterminated section header"}
	}
	if end != len(trimmed)-1 {
		return nil, &MalformedDocumentError{Line: line, Reason: "trailing characters after section header"}
	}
	name := strings.TrimSpace(trimmed[1:end])
	if name == "" {
		return nil, &MalformedDocumentError{Line: line, Reason: "empty section name"}
	}

	if existing, ok := doc.Section(name); ok {
		if policy == Strict {
			return nil, &DuplicateKeyError{Line: line, Section: name}
		}
		// Merge: later settings land in the original section.
		return existing, nil
	}

	section := &Section{Name: name, Line: line}
	doc.put(section)
	return section, nil
}

// beginSetting records a key/value line and returns the setting that
// continuation lines append to.
func beginSetting(section *Section, key, value string, line int, policy DuplicatePolicy) (*Setting, error) {
	setting := &Setting{Key: key, Line: line}
	if value != "" {
		setting.Values = []string{value}
		setting.Inline = true
	}

	if existing, ok := section.Lookup(key); ok {
		if policy == Strict {
			return nil, &DuplicateKeyError{Line: line, Section: section.Name, Key: key}
		}
		// Last write wins: overwrite in place so the mapping equals the
		// one produced by a document holding only the final occurrence.
		*existing = *setting
		return existing, nil
	}

	section.put(setting)
	return setting, nil
}

// cutKeyValue splits a `key = value` line on the first '=', trimming both
// halves. found is false when the line contains no '='.
func cutKeyValue(line string) (key, value string, found bool) {
	i := strings.Index(line, "=")
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(line[:i]), strings.TrimSpace(line[i+1:]), true
}
