// Package matrix builds a typed view over a parsed environment matrix
// document.
//
// The document format itself attaches no meaning to section names; this
// package implements the conventions the surrounding tooling relies on:
//
//   - [matrix] declares the ordered environment list (`envs`) and the
//     `skip_install` flag.
//   - [env] holds base settings that every named environment inherits.
//   - [env:NAME] declares one environment: `setenv`, `passenv`, `deps`,
//     `external_commands`, and `commands`.
//   - [style] configures the style checker (`max_line_length`, `exclude`,
//     `show_source`).
//   - [collect] configures the test collector (`skip_dirs`, `file_pattern`,
//     `default_opts`).
//
// Cross-section coupling is by name only. A lenient build ignores
// environment names that resolve to no section; a strict build fails with
// an UnknownSectionReferenceError.
package matrix
