package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigWithDefaults(t *testing.T) {
	// Load config without a file (should use defaults)
	cfg, err := Load("nonexistent.yaml")
	if err != nil {
		t.Fatalf("Failed to load config with defaults: %v", err)
	}

	if len(cfg.Input.SpreadsheetExtensions) == 0 {
		t.Error("Expected at least one spreadsheet extension")
	}
	if len(cfg.Input.DocumentExtensions) == 0 {
		t.Error("Expected at least one document extension")
	}
	if cfg.Extraction.MinRunLength != 2 {
		t.Errorf("Expected MinRunLength 2, got %d", cfg.Extraction.MinRunLength)
	}
	if cfg.Extraction.DensityThreshold != 0.5 {
		t.Errorf("Expected DensityThreshold 0.5, got %v", cfg.Extraction.DensityThreshold)
	}
	if cfg.Extraction.MinBlockRows != 2 {
		t.Errorf("Expected MinBlockRows 2, got %d", cfg.Extraction.MinBlockRows)
	}
	if !cfg.Extraction.IncludeMergeList {
		t.Error("Expected merge list enabled by default")
	}
	if cfg.Extraction.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", cfg.Extraction.Workers)
	}
	if cfg.Output.Suffix == "" {
		t.Error("Expected a default output suffix")
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
extraction:
  min_run_length: 3
  density_threshold: 0.7
  workers: 2
output:
  suffix: "_tables"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Extraction.MinRunLength != 3 {
		t.Errorf("Expected MinRunLength 3, got %d", cfg.Extraction.MinRunLength)
	}
	if cfg.Extraction.DensityThreshold != 0.7 {
		t.Errorf("Expected DensityThreshold 0.7, got %v", cfg.Extraction.DensityThreshold)
	}
	if cfg.Extraction.Workers != 2 {
		t.Errorf("Expected Workers 2, got %d", cfg.Extraction.Workers)
	}
	if cfg.Output.Suffix != "_tables" {
		t.Errorf("Expected suffix _tables, got %q", cfg.Output.Suffix)
	}
	// Untouched settings keep their defaults
	if cfg.Extraction.MinBlockRows != 2 {
		t.Errorf("Expected default MinBlockRows 2, got %d", cfg.Extraction.MinBlockRows)
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Input: InputConfig{
				SpreadsheetExtensions: []string{".xlsx"},
				DocumentExtensions:    []string{".docx"},
			},
			Extraction: ExtractionConfig{
				MinRunLength:     2,
				DensityThreshold: 0.5,
				MinBlockRows:     2,
				Workers:          4,
			},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"Run length too small", func(c *Config) { c.Extraction.MinRunLength = 1 }, true},
		{"Threshold zero", func(c *Config) { c.Extraction.DensityThreshold = 0 }, true},
		{"Threshold above one", func(c *Config) { c.Extraction.DensityThreshold = 1.5 }, true},
		{"Threshold at one", func(c *Config) { c.Extraction.DensityThreshold = 1 }, false},
		{"Block rows zero", func(c *Config) { c.Extraction.MinBlockRows = 0 }, true},
		{"No workers", func(c *Config) { c.Extraction.Workers = 0 }, true},
		{"No extensions at all", func(c *Config) {
			c.Input.SpreadsheetExtensions = nil
			c.Input.DocumentExtensions = nil
		}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFileRouting(t *testing.T) {
	cfg := &Config{
		Input: InputConfig{
			SpreadsheetExtensions: []string{".xlsx", ".xlsm"},
			DocumentExtensions:    []string{".docx"},
		},
	}

	tests := []struct {
		path        string
		spreadsheet bool
		document    bool
	}{
		{"report.xlsx", true, false},
		{"report.XLSX", true, false},
		{"macro.xlsm", true, false},
		{"letter.docx", false, true},
		{"notes.txt", false, false},
		{"archive.xlsx.zip", false, false},
	}

	for _, tt := range tests {
		if got := cfg.IsSpreadsheet(tt.path); got != tt.spreadsheet {
			t.Errorf("IsSpreadsheet(%s) = %v, expected %v", tt.path, got, tt.spreadsheet)
		}
		if got := cfg.IsDocument(tt.path); got != tt.document {
			t.Errorf("IsDocument(%s) = %v, expected %v", tt.path, got, tt.document)
		}
	}
}

func TestOutputPathFor(t *testing.T) {
	tests := []struct {
		name     string
		dir      string
		suffix   string
		input    string
		expected string
	}{
		{"Next to input", "", "_extracted", "/data/report.xlsx", "/data/report_extracted.md"},
		{"Configured dir", "/out", "_extracted", "/data/report.xlsx", "/out/report_extracted.md"},
		{"Custom suffix", "", "_md", "book.xlsm", "book_md.md"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{Output: OutputConfig{Dir: tt.dir, Suffix: tt.suffix}}
			if got := cfg.OutputPathFor(tt.input); got != filepath.FromSlash(tt.expected) {
				t.Errorf("OutputPathFor(%s) = %q, expected %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestEngineOptions(t *testing.T) {
	cfg := &Config{
		Extraction: ExtractionConfig{
			MinRunLength:     3,
			DensityThreshold: 0.8,
			MinBlockRows:     4,
			IncludeMergeList: false,
		},
	}

	opts := cfg.EngineOptions()
	if opts.MinRunLength != 3 || opts.DensityThreshold != 0.8 ||
		opts.MinBlockRows != 4 || opts.IncludeMergeList {
		t.Errorf("EngineOptions mismatch: %+v", opts)
	}
}
