package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gridmark/internal/engine"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Input      InputConfig      `mapstructure:"input"`
	Extraction ExtractionConfig `mapstructure:"extraction"`
	Output     OutputConfig     `mapstructure:"output"`
}

// InputConfig holds settings for the source documents
type InputConfig struct {
	SpreadsheetExtensions []string `mapstructure:"spreadsheet_extensions"` // Extensions routed to the spreadsheet engine
	DocumentExtensions    []string `mapstructure:"document_extensions"`    // Extensions routed to the document converter
}

// ExtractionConfig holds the table reconstruction tuning
type ExtractionConfig struct {
	MinRunLength     int     `mapstructure:"min_run_length"`     // Minimum equal-value run before collapsing
	DensityThreshold float64 `mapstructure:"density_threshold"`  // Fraction of modal row density, range (0,1]
	MinBlockRows     int     `mapstructure:"min_block_rows"`     // Minimum contiguous rows for a data block
	IncludeMergeList bool    `mapstructure:"include_merge_list"` // Emit merge-region bullet list above tables
	Workers          int     `mapstructure:"workers"`            // Max sheets processed concurrently
}

// OutputConfig holds output settings
type OutputConfig struct {
	Dir    string `mapstructure:"dir"`    // Output directory ("" = next to the input file)
	Suffix string `mapstructure:"suffix"` // Appended to the input base name
}

// Load reads the configuration from a file or uses defaults.
// If the file doesn't exist, sensible defaults apply.
func Load(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath == "" {
		configPath = "config.yaml"
	}
	v.SetConfigFile(configPath)

	if err := v.ReadInConfig(); err != nil {
		if os.IsNotExist(err) || strings.Contains(err.Error(), "no such file") ||
			strings.Contains(err.Error(), "cannot find") {
			// Config file not found - defaults are fine
		} else {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults configures sensible default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("input.spreadsheet_extensions", []string{".xlsx", ".xlsm"})
	v.SetDefault("input.document_extensions", []string{".docx"})

	v.SetDefault("extraction.min_run_length", 2)
	v.SetDefault("extraction.density_threshold", 0.5)
	v.SetDefault("extraction.min_block_rows", 2)
	v.SetDefault("extraction.include_merge_list", true)
	v.SetDefault("extraction.workers", 4)

	v.SetDefault("output.dir", "")
	v.SetDefault("output.suffix", "_extracted")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Extraction.MinRunLength < 2 {
		return fmt.Errorf("extraction.min_run_length must be at least 2, got %d", c.Extraction.MinRunLength)
	}
	if c.Extraction.DensityThreshold <= 0 || c.Extraction.DensityThreshold > 1 {
		return fmt.Errorf("extraction.density_threshold must lie in (0,1], got %v", c.Extraction.DensityThreshold)
	}
	if c.Extraction.MinBlockRows < 1 {
		return fmt.Errorf("extraction.min_block_rows must be at least 1, got %d", c.Extraction.MinBlockRows)
	}
	if c.Extraction.Workers < 1 {
		return fmt.Errorf("extraction.workers must be at least 1, got %d", c.Extraction.Workers)
	}
	if len(c.Input.SpreadsheetExtensions) == 0 && len(c.Input.DocumentExtensions) == 0 {
		return fmt.Errorf("at least one input extension must be configured")
	}
	return nil
}

// EngineOptions maps the extraction settings onto the engine's options
func (c *Config) EngineOptions() engine.Options {
	return engine.Options{
		MinRunLength:     c.Extraction.MinRunLength,
		DensityThreshold: c.Extraction.DensityThreshold,
		MinBlockRows:     c.Extraction.MinBlockRows,
		IncludeMergeList: c.Extraction.IncludeMergeList,
	}
}

// IsSpreadsheet checks whether a path routes to the spreadsheet engine
func (c *Config) IsSpreadsheet(path string) bool {
	return hasExtension(path, c.Input.SpreadsheetExtensions)
}

// IsDocument checks whether a path routes to the document converter
func (c *Config) IsDocument(path string) bool {
	return hasExtension(path, c.Input.DocumentExtensions)
}

// OutputPathFor derives the markdown output path for an input file:
// base name plus the configured suffix, in the configured directory or
// next to the input when no directory is set
func (c *Config) OutputPathFor(inputPath string) string {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	dir := c.Output.Dir
	if dir == "" {
		dir = filepath.Dir(inputPath)
	}
	return filepath.Join(dir, base+c.Output.Suffix+".md")
}

// EnsureOutputDir creates the output directory if one is configured
func (c *Config) EnsureOutputDir() error {
	if c.Output.Dir == "" {
		return nil
	}
	if err := os.MkdirAll(c.Output.Dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}

// Print displays the current configuration
func (c *Config) Print() {
	fmt.Println("=== Gridmark Configuration ===")
	fmt.Printf("Spreadsheet Exts:  %v\n", c.Input.SpreadsheetExtensions)
	fmt.Printf("Document Exts:     %v\n", c.Input.DocumentExtensions)
	fmt.Printf("Min Run Length:    %d\n", c.Extraction.MinRunLength)
	fmt.Printf("Density Threshold: %.2f\n", c.Extraction.DensityThreshold)
	fmt.Printf("Min Block Rows:    %d\n", c.Extraction.MinBlockRows)
	fmt.Printf("Merge List:        %v\n", c.Extraction.IncludeMergeList)
	fmt.Printf("Workers:           %d\n", c.Extraction.Workers)
	fmt.Printf("Output Directory:  %s\n", c.Output.Dir)
	fmt.Printf("Output Suffix:     %s\n", c.Output.Suffix)
	fmt.Println("==============================")
}

func hasExtension(path string, extensions []string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range extensions {
		if ext == strings.ToLower(e) {
			return true
		}
	}
	return false
}
