package document

// DuplicatePolicy controls how the parser treats a key, or a section
// header, that appears more than once.
type DuplicatePolicy int

const (
	// LastWriteWins keeps the final occurrence of a duplicated key and
	// merges the settings of a duplicated section into the first one.
	LastWriteWins DuplicatePolicy = iota
	// Strict fails the load with a DuplicateKeyError pointing at the
	// second occurrence.
	Strict
)

// Setting is one key with its value. A setting written inline
// (`key = value`) holds a single scalar; indented continuation lines turn
// the value into an ordered list.
type Setting struct {
	Key    string
	Line   int
	Values []string
	// Inline records that the first value appeared on the key's own line.
	Inline bool
}

// Scalar reports whether the setting holds exactly one inline value.
func (s *Setting) Scalar() bool {
	return s.Inline && len(s.Values) == 1
}

// Value returns the scalar value. It returns the empty string for list
// settings; use Values for those.
func (s *Setting) Value() string {
	if s.Scalar() {
		return s.Values[0]
	}
	return ""
}

// Section is a named group of settings, in document order.
type Section struct {
	Name     string
	Line     int
	Settings []*Setting

	index map[string]*Setting
}

// Lookup returns the setting for key, if present.
func (s *Section) Lookup(key string) (*Setting, bool) {
	setting, ok := s.index[key]
	return setting, ok
}

// Get returns the scalar value of key, or the empty string when the key is
// absent or holds a list.
func (s *Section) Get(key string) string {
	if setting, ok := s.index[key]; ok {
		return setting.Value()
	}
	return ""
}

// List returns all values of key, in order, regardless of whether they were
// written inline or as continuation entries.
func (s *Section) List(key string) []string {
	if setting, ok := s.index[key]; ok {
		return setting.Values
	}
	return nil
}

// Keys returns the setting keys in document order.
func (s *Section) Keys() []string {
	keys := make([]string, 0, len(s.Settings))
	for _, setting := range s.Settings {
		keys = append(keys, setting.Key)
	}
	return keys
}

func (s *Section) put(setting *Setting) {
	if s.index == nil {
		s.index = make(map[string]*Setting)
	}
	s.Settings = append(s.Settings, setting)
	s.index[setting.Key] = setting
}

// Document is an ordered collection of uniquely named sections.
type Document struct {
	Sections []*Section

	index map[string]*Section
}

// Section returns the section with the given name, if present.
func (d *Document) Section(name string) (*Section, bool) {
	section, ok := d.index[name]
	return section, ok
}

// Names returns the section names in document order.
func (d *Document) Names() []string {
	names := make([]string, 0, len(d.Sections))
	for _, section := range d.Sections {
		names = append(names, section.Name)
	}
	return names
}

// Mapping flattens the document into plain maps: each setting key maps to
// a string for scalars or a []string for lists. Useful for structural
// comparison and for export encoders.
func (d *Document) Mapping() map[string]map[string]interface{} {
	mapping := make(map[string]map[string]interface{}, len(d.Sections))
	for _, section := range d.Sections {
		settings := make(map[string]interface{}, len(section.Settings))
		for _, setting := range section.Settings {
			if setting.Scalar() {
				settings[setting.Key] = setting.Value()
			} else {
				values := setting.Values
				if values == nil {
					values = []string{}
				}
				settings[setting.Key] = values
			}
		}
		mapping[section.Name] = settings
	}
	return mapping
}

func (d *Document) put(section *Section) {
	if d.index == nil {
		d.index = make(map[string]*Section)
	}
	d.Sections = append(d.Sections, section)
	d.index[section.Name] = section
}
