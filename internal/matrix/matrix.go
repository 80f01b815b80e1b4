package matrix

import (
	"strconv"
	"strings"

	"git.sr.ht/~spc/go-log"

	"github.com/envmatrix/mcfg/internal/document"
)

// Section names and setting keys the typed view recognizes. Everything
// else in a document is carried by the Document model but ignored here.
const (
	SectionCore    = "matrix"
	SectionEnvBase = "env"
	SectionStyle   = "style"
	SectionCollect = "collect"

	envSectionPrefix = "env:"
)

// Options control how the typed view is built.
type Options struct {
	// StrictRefs fails the build when an environment name in the core
	// list resolves to no environment section.
	StrictRefs bool
}

// EnvVar is one KEY=VALUE pair from a setenv block.
type EnvVar struct {
	Name  string
	Value string
}

// Command is one raw command line. The document defines no shell quoting,
// so the raw line is authoritative; Fields is a convenience split.
type Command string

// Fields splits the command line on whitespace.
func (c Command) Fields() []string {
	return strings.Fields(string(c))
}

// Env is one test environment.
type Env struct {
	Name             string
	SetEnv           []EnvVar
	PassEnv          []string
	Deps             []DependencySpec
	ExternalCommands []string
	Commands         []Command
}

// Style holds the style checker settings.
type Style struct {
	MaxLineLength int
	Exclude       []string
	ShowSource    bool
}

// Collector holds the test collector settings.
type Collector struct {
	SkipDirs    []string
	FilePattern string
	DefaultOpts []string
}

// Matrix is the typed view of one document.
type Matrix struct {
	// EnvNames is the ordered environment list from the core section, or
	// the named environment sections in document order when the core
	// section declares none.
	EnvNames    []string
	SkipInstall bool

	Envs map[string]*Env
	// Base holds the settings of the [env] section, nil when absent.
	// Named environments inherit from it key by key.
	Base *Env

	Style     *Style
	Collector *Collector
}

// Resolved reports whether an environment name from the core list has a
// section backing it, either its own or the base.
func (m *Matrix) Resolved(name string) bool {
	if _, ok := m.Envs[name]; ok {
		return true
	}
	return m.Base != nil
}

// Env returns the environment with the given name. When the document has
// no [env:name] section but declares a base [env], the base settings are
// returned under the requested name.
func (m *Matrix) Env(name string) (*Env, bool) {
	if env, ok := m.Envs[name]; ok {
		return env, true
	}
	if m.Base != nil {
		env := *m.Base
		env.Name = name
		return &env, true
	}
	return nil, false
}

// FromDocument builds the typed view of doc.
func FromDocument(doc *document.Document, opts Options) (*Matrix, error) {
	m := &Matrix{Envs: make(map[string]*Env)}

	if section, ok := doc.Section(SectionEnvBase); ok {
		m.Base = buildEnv(SectionEnvBase, section, nil)
	}

	for _, section := range doc.Sections {
		if !strings.HasPrefix(section.Name, envSectionPrefix) {
			continue
		}
		name := strings.TrimPrefix(section.Name, envSectionPrefix)
		m.Envs[name] = buildEnv(name, section, m.Base)
	}

	core, hasCore := doc.Section(SectionCore)
	if hasCore {
		m.EnvNames = splitList(core.List("envs"), core.Get("envs"))

		if setting, ok := core.Lookup("skip_install"); ok {
			value, err := parseBool(core.Name, setting)
			if err != nil {
				return nil, err
			}
			m.SkipInstall = value
		}
	}
	if len(m.EnvNames) == 0 {
		// No declared list: every named environment section participates.
		for _, section := range doc.Sections {
			if strings.HasPrefix(section.Name, envSectionPrefix) {
				m.EnvNames = append(m.EnvNames, strings.TrimPrefix(section.Name, envSectionPrefix))
			}
		}
	}

	for _, name := range m.EnvNames {
		if m.Resolved(name) {
			continue
		}
		if opts.StrictRefs {
			return nil, &UnknownSectionReferenceError{Section: SectionCore, Reference: name}
		}
		log.Debugf("environment %q has no section and no base environment", name)
	}

	if section, ok := doc.Section(SectionStyle); ok {
		style, err := buildStyle(section)
		if err != nil {
			return nil, err
		}
		m.Style = style
	}

	if section, ok := doc.Section(SectionCollect); ok {
		m.Collector = &Collector{
			SkipDirs:    section.List("skip_dirs"),
			FilePattern: section.Get("file_pattern"),
			DefaultOpts: splitOpts(section),
		}
	}

	return m, nil
}

func buildEnv(name string, section *document.Section, base *Env) *Env {
	env := &Env{Name: name}
	if base != nil {
		*env = *base
		env.Name = name
	}

	// An environment's own key replaces the inherited one wholesale;
	// lists are not concatenated across sections.
	if setting, ok := section.Lookup("setenv"); ok {
		env.SetEnv = parseEnvVars(setting.Values)
	}
	if setting, ok := section.Lookup("passenv"); ok {
		env.PassEnv = setting.Values
	}
	if setting, ok := section.Lookup("deps"); ok {
		env.Deps = parseDependencies(setting.Values)
	}
	if setting, ok := section.Lookup("external_commands"); ok {
		env.ExternalCommands = setting.Values
	}
	if setting, ok := section.Lookup("commands"); ok {
		commands := make([]Command, 0, len(setting.Values))
		for _, line := range setting.Values {
			commands = append(commands, Command(line))
		}
		env.Commands = commands
	}
	return env
}

func buildStyle(section *document.Section) (*Style, error) {
	style := &Style{}
	if setting, ok := section.Lookup("max_line_length"); ok {
		length, err := strconv.Atoi(setting.Value())
		if err != nil {
			return nil, &ValueError{
				Line:    setting.Line,
				Section: section.Name,
				Key:     setting.Key,
				Reason:  "not an integer",
			}
		}
		style.MaxLineLength = length
	}
	style.Exclude = splitList(section.List("exclude"), section.Get("exclude"))
	if setting, ok := section.Lookup("show_source"); ok {
		value, err := parseBool(section.Name, setting)
		if err != nil {
			return nil, err
		}
		style.ShowSource = value
	}
	return style, nil
}

// parseEnvVars splits KEY=VALUE entries. Entries without '=' become a
// name with an empty value.
func parseEnvVars(entries []string) []EnvVar {
	vars := make([]EnvVar, 0, len(entries))
	for _, entry := range entries {
		name, value, found := strings.Cut(entry, "=")
		if !found {
			vars = append(vars, EnvVar{Name: strings.TrimSpace(entry)})
			continue
		}
		vars = append(vars, EnvVar{Name: strings.TrimSpace(name), Value: strings.TrimSpace(value)})
	}
	return vars
}

// parseBool accepts the spellings conventionally used in these documents.
func parseBool(sectionName string, setting *document.Setting) (bool, error) {
	switch strings.ToLower(setting.Value()) {
	case "true", "yes", "on", "1":
		return true, nil
	case "false", "no", "off", "0":
		return false, nil
	}
	return false, &ValueError{
		Line:    setting.Line,
		Section: sectionName,
		Key:     setting.Key,
		Reason:  "not a boolean",
	}
}

// splitList normalizes a setting that may be written either as a
// comma-separated scalar or as a continuation list. Entries themselves may
// contain commas in either form.
func splitList(values []string, scalar string) []string {
	if scalar != "" {
		values = []string{scalar}
	}
	var out []string
	for _, value := range values {
		for _, entry := range strings.Split(value, ",") {
			entry = strings.TrimSpace(entry)
			if entry != "" {
				out = append(out, entry)
			}
		}
	}
	return out
}

// splitOpts flattens default_opts into individual option tokens, whether
// written inline or as a continuation list.
func splitOpts(section *document.Section) []string {
	setting, ok := section.Lookup("default_opts")
	if !ok {
		return nil
	}
	var opts []string
	for _, value := range setting.Values {
		opts = append(opts, strings.Fields(value)...)
	}
	return opts
}
