package conf

import (
	"os"
	"path/filepath"
	"testing"

	"git.sr.ht/~spc/go-log"
	"github.com/google/go-cmp/cmp"

	"github.com/envmatrix/mcfg/internal/document"
)

// Helper functions for creating pointer values in DTO tests
func stringPtr(s string) *string { return &s }
func boolPtr(b bool) *bool       { return &b }

func TestConfig_Update(t *testing.T) {
	tests := []struct {
		name     string
		base     Config
		overlay  configDTO
		expected Config
	}{
		{
			name: "overlay replaces values",
			base: Config{
				LogLevel:   log.LevelInfo,
				Duplicates: document.LastWriteWins,
			},
			overlay: configDTO{
				LogLevel:        stringPtr("debug"),
				DuplicatePolicy: stringPtr("strict"),
			},
			expected: Config{
				LogLevel:   log.LevelDebug,
				Duplicates: document.Strict,
			},
		},
		{
			name: "overlay partial update",
			base: Config{
				LogLevel:   log.LevelInfo,
				Duplicates: document.Strict,
				StrictRefs: true,
			},
			overlay: configDTO{
				LogLevel: stringPtr("trace"),
			},
			expected: Config{
				LogLevel:   log.LevelTrace,
				Duplicates: document.Strict,
				StrictRefs: true,
			},
		},
		{
			name: "empty overlay does nothing",
			base: Config{
				LogLevel:   log.LevelWarn,
				StrictRefs: true,
			},
			overlay: configDTO{},
			expected: Config{
				LogLevel:   log.LevelWarn,
				StrictRefs: true,
			},
		},
		{
			name: "overlay can clear strict-refs",
			base: Config{
				StrictRefs: true,
			},
			overlay: configDTO{
				StrictRefs: boolPtr(false),
			},
			expected: Config{
				StrictRefs: false,
			},
		},
		{
			name: "unknown spellings are ignored",
			base: Config{
				LogLevel:   log.LevelInfo,
				Duplicates: document.LastWriteWins,
			},
			overlay: configDTO{
				LogLevel:        stringPtr("loud"),
				DuplicatePolicy: stringPtr("first"),
			},
			expected: Config{
				LogLevel:   log.LevelInfo,
				Duplicates: document.LastWriteWins,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.base
			result.Update(tt.overlay)
			if diff := cmp.Diff(tt.expected, result); diff != "" {
				t.Errorf("Update() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConfigSource_ReadFile(t *testing.T) {
	// Create a temporary directory for test files
	tmpDir := t.TempDir()

	tests := []struct {
		name        string
		fileContent string
		setupFile   bool
		expectError bool
		expected    Config
	}{
		{
			name: "valid config file",
			fileContent: `log-level = "debug"
duplicate-policy = "strict"
strict-refs = true
`,
			setupFile:   true,
			expectError: false,
			expected: Config{
				LogLevel:   log.LevelDebug,
				Duplicates: document.Strict,
				StrictRefs: true,
			},
		},
		{
			name:        "missing file uses defaults",
			setupFile:   false,
			expectError: false,
			expected: Config{
				LogLevel:   log.LevelInfo, // from defaults
				Duplicates: document.LastWriteWins,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			testFile := filepath.Join(tmpDir, "test-"+tt.name+".toml")

			if tt.setupFile {
				if err := os.WriteFile(testFile, []byte(tt.fileContent), 0644); err != nil {
					t.Fatalf("failed to write test file: %v", err)
				}
			}

			source := &ConfigSource{Path: testFile, DropInDir: filepath.Join(tmpDir, "nonexistent")}
			result, err := source.Read()

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("Read() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestParseConfigDTO(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		expected    configDTO
	}{
		{
			name: "valid TOML string",
			input: `
log-level = "warn"
strict-refs = true
`,
			expectError: false,
			expected: configDTO{
				LogLevel:   stringPtr("warn"),
				StrictRefs: boolPtr(true),
			},
		},
		{
			name:        "empty string",
			input:       "",
			expectError: false,
			expected:    configDTO{},
		},
		{
			name:        "invalid TOML",
			input:       "not valid toml ===",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseConfigDTO(tt.input)

			if tt.expectError && err == nil {
				t.Error("expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if !tt.expectError {
				if diff := cmp.Diff(tt.expected, result); diff != "" {
					t.Errorf("parseConfigDTO() mismatch (-want +got):\n%s", diff)
				}
			}
		})
	}
}

func TestConfigSource_FullStack(t *testing.T) {
	// Create temporary directory structure for testing
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d")

	// Create drop-in directory
	if err := os.Mkdir(dropinDir, 0755); err != nil {
		t.Fatalf("failed to create drop-in directory: %v", err)
	}

	// Test case: main config + drop-ins with proper ordering
	t.Run("full configuration stack", func(t *testing.T) {
		// Write main config
		mainConfig := `
log-level = "info"
duplicate-policy = "last"
`
		if err := os.WriteFile(mainConfigPath, []byte(mainConfig), 0644); err != nil {
			t.Fatalf("failed to write main config: %v", err)
		}

		// Write drop-in files (should be loaded in lexicographic order)
		dropinFiles := map[string]string{
			"10-policy.toml": `duplicate-policy = "strict"`,
			"20-debug.toml":  `log-level = "debug"`,
			"30-refs.toml":   `strict-refs = true`,
		}

		for filename, content := range dropinFiles {
			path := filepath.Join(dropinDir, filename)
			if err := os.WriteFile(path, []byte(content), 0644); err != nil {
				t.Fatalf("failed to write drop-in file %s: %v", filename, err)
			}
		}

		// Load configuration
		cs := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
		config, err := cs.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// Verify final configuration
		// Defaults < Main < Drop-ins (in order)
		if config.LogLevel != log.LevelDebug {
			t.Errorf("expected LogLevel=debug, got %v", config.LogLevel)
		}
		if config.Duplicates != document.Strict {
			t.Errorf("expected Duplicates=strict, got %v", config.Duplicates)
		}
		if !config.StrictRefs {
			t.Error("expected StrictRefs=true")
		}
	})

	t.Run("drop-in shadowing", func(t *testing.T) {
		// Test that later drop-ins override earlier ones
		tmpDir2 := t.TempDir()
		mainPath2 := filepath.Join(tmpDir2, "config.toml")
		dropinDir2 := filepath.Join(tmpDir2, "config.toml.d")
		os.Mkdir(dropinDir2, 0755)

		// Main config sets log level
		os.WriteFile(mainPath2, []byte(`log-level = "info"`), 0644)

		// Drop-in files that override each other
		os.WriteFile(filepath.Join(dropinDir2, "10-first.toml"), []byte(`log-level = "warn"`), 0644)
		os.WriteFile(filepath.Join(dropinDir2, "20-second.toml"), []byte(`log-level = "debug"`), 0644)

		cs := &ConfigSource{Path: mainPath2, DropInDir: dropinDir2}
		config, err := cs.Read()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		// The last drop-in (20-second.toml) should win
		if config.LogLevel != log.LevelDebug {
			t.Errorf("expected LogLevel=debug, got %v", config.LogLevel)
		}
	})
}

func TestConfigSource_MissingDropinDir(t *testing.T) {
	tmpDir := t.TempDir()
	mainConfigPath := filepath.Join(tmpDir, "config.toml")
	dropinDir := filepath.Join(tmpDir, "config.toml.d") // doesn't exist

	// Write main config
	mainConfig := `log-level = "warn"`
	if err := os.WriteFile(mainConfigPath, []byte(mainConfig), 0644); err != nil {
		t.Fatalf("failed to write main config: %v", err)
	}

	// Should not error when drop-in directory is missing
	cs := &ConfigSource{Path: mainConfigPath, DropInDir: dropinDir}
	config, err := cs.Read()
	if err != nil {
		t.Fatalf("unexpected error when drop-in dir missing: %v", err)
	}

	if config.LogLevel != log.LevelWarn {
		t.Errorf("expected LogLevel=warn, got %v", config.LogLevel)
	}
}

func TestEmbeddedDefault(t *testing.T) {
	// Test that the embedded default config is valid TOML
	dto, err := parseConfigDTO(defaultConfig)
	if err != nil {
		t.Fatalf("embedded default config is invalid: %v", err)
	}

	// Apply to Config
	config := Config{}
	config.Update(dto)

	// Verify the actual default values are loaded
	if config.LogLevel != log.LevelInfo {
		t.Errorf("expected LogLevel=info, got %v", config.LogLevel)
	}
	if config.Duplicates != document.LastWriteWins {
		t.Errorf("expected last-write-wins duplicate policy, got %v", config.Duplicates)
	}
	if config.StrictRefs {
		t.Error("expected StrictRefs=false")
	}
}
