package matrix

import "strings"

// DependencySpec names an external package, optionally with a version
// constraint. The constraint is carried verbatim and never resolved.
type DependencySpec struct {
	Raw        string
	Name       string
	Constraint string
}

// constraintChars are the characters that can open a version constraint.
const constraintChars = "<>!~="

// ParseDependency splits a dependency specifier into its package name and
// its constraint, if any.
func ParseDependency(raw string) DependencySpec {
	raw = strings.TrimSpace(raw)
	spec := DependencySpec{Raw: raw, Name: raw}

	if i := strings.IndexAny(raw, constraintChars); i >= 0 {
		spec.Name = strings.TrimSpace(raw[:i])
		spec.Constraint = strings.TrimSpace(raw[i:])
	}
	return spec
}

func parseDependencies(entries []string) []DependencySpec {
	specs := make([]DependencySpec, 0, len(entries))
	for _, entry := range entries {
		specs = append(specs, ParseDependency(entry))
	}
	return specs
}
