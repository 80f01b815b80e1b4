package conf

// Package conf implements drop-in configuration file support for mcfg.
//
// # Usage
//
// The global Configuration variable is automatically loaded at package initialization:
//
//	import "github.com/envmatrix/mcfg/internal/conf"
//
//	func main() {
//	    fmt.Println(conf.Configuration.LogLevel)
//	}
//
// For custom configuration loading (e.g., testing), use ConfigSource:
//
//	cs := &conf.ConfigSource{
//	    Path:      "/custom/path/config.toml",
//	    DropInDir: "/custom/path/config.toml.d",
//	}
//	config, err := cs.Read()
//
// # Load Order
//
// Config is loaded and applied in three layers:
//
//  1. In-memory defaults
//  2. Main config file: /etc/mcfg/config.toml
//  3. Drop-in files: /etc/mcfg/config.toml.d/*.toml, in lexicographic order
//
// # Settings
//
//   - log-level: trace, debug, info, warn, or error.
//   - duplicate-policy: "last" keeps the final occurrence of a duplicated
//     document key, "strict" fails the parse at the second occurrence.
//   - strict-refs: fail when the environment list names an environment
//     that has no section.
//
// # Internal Architecture
//
// The implementation uses a DTO (Data Transfer Object) pattern with clear
// separation of concerns:
//
//   - configDTO: internal struct with pointer fields for TOML parsing.
//     Pointers allow distinguishing "not set" (nil) from "set to zero value".
//
//   - Config: public struct with value fields. Has Update() method
//     to apply DTO values.
//
//   - ConfigSource: orchestrates loading from multiple sources and manages
//     their merging.
//
//   - parseConfigDTO: function that parses TOML string into configDTO.
//     Separate from loading for clean separation of I/O and parsing.
