package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"gridmark/internal/config"
	"gridmark/internal/exporter"
	"gridmark/internal/extractor"
	"gridmark/internal/logger"
	"gridmark/internal/model"
	"gridmark/internal/ui"
)

const (
	appName    = "Gridmark"
	appVersion = "1.0.0"
	appDesc    = "Converts spreadsheets and Word documents to clean markdown with merged-cell aware tables"

	previewLimit = 300
)

var (
	configPath  string
	outputPath  string
	verbose     bool
	showVersion bool
)

func init() {
	flag.StringVar(&configPath, "config", "config.yaml", "Path to configuration file")
	flag.StringVar(&configPath, "c", "config.yaml", "Path to configuration file (shorthand)")
	flag.StringVar(&outputPath, "output", "", "Override output file path")
	flag.StringVar(&outputPath, "o", "", "Override output file path (shorthand)")
	flag.BoolVar(&verbose, "verbose", false, "Enable verbose logging (DEBUG level)")
	flag.BoolVar(&verbose, "v", false, "Enable verbose logging (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
}

func main() {
	os.Exit(run())
}

func run() int {
	flag.Parse()

	if showVersion {
		fmt.Printf("%s v%s\n%s\n", appName, appVersion, appDesc)
		return 0
	}

	if flag.NArg() < 1 {
		printBanner()
		printUsage()
		return 1
	}
	inputPath := flag.Arg(0)

	printBanner()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Printf("❌ Failed to load configuration: %v\n", err)
		return 1
	}

	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		fmt.Printf("❌ Error: File '%s' not found.\n", inputPath)
		return 1
	}

	if outputPath == "" {
		outputPath = cfg.OutputPathFor(inputPath)
	}

	logPath := filepath.Join(filepath.Dir(outputPath), "gridmark.log")
	if err := logger.Init(os.Stdout, logPath, verbose); err != nil {
		fmt.Printf("❌ Failed to initialize logger: %v\n", err)
		return 1
	}
	defer logger.Close()

	if err := runExtraction(cfg, inputPath, outputPath); err != nil {
		logger.Error("Extraction failed: %v", err)
		return 1
	}

	return 0
}

func runExtraction(cfg *config.Config, inputPath, outputPath string) error {
	pipeline := ui.NewPipeline([]ui.Phase{
		ui.PhaseReading,
		ui.PhaseExtracting,
		ui.PhaseWriting,
	})

	logger.Info("Processing: %s", inputPath)

	// --- Phase 1: Route & read ---
	readBar := pipeline.NextPhase(1)
	ext, err := extractor.ForFile(inputPath, cfg)
	if err != nil {
		return err
	}
	readBar.Finish()

	// --- Phase 2: Extract ---
	extractBar := pipeline.NextPhase(1)
	results, err := ext.Extract(inputPath)
	if err != nil {
		return err
	}
	extractBar.Finish()

	// --- Phase 3: Write ---
	writeBar := pipeline.NextPhase(1)
	content, err := exporter.NewMarkdownExporter().Export(results, outputPath)
	if err != nil {
		return err
	}
	writeBar.Finish()
	pipeline.Finish()

	printSummary(results, content, outputPath)
	return nil
}

// printSummary mirrors the end-of-run report users rely on: sheet and
// merge counts, cleanup totals, output location and a short preview.
func printSummary(results []model.RenderResult, content, outputPath string) {
	stats := exporter.SumStats(results)

	logger.Info("✓ Processed %d sheet(s)", len(results))
	logger.Info("✓ Detected %d merged cell region(s)", stats.MergedRegionsDetected)
	if stats.DuplicatesRemoved > 0 {
		logger.Info("✓ Cleared %d duplicate cell(s)", stats.DuplicatesRemoved)
	}
	if stats.CharsBefore > 0 {
		reduction := 100 * (stats.CharsBefore - stats.CharsAfter) / stats.CharsBefore
		logger.Info("✓ Cell content reduced by %d%% (%d → %d chars)", reduction, stats.CharsBefore, stats.CharsAfter)
	}
	logger.Info("✓ Results saved to: %s", outputPath)
	logger.Info("✓ Output size: %d characters", len(content))

	fmt.Println("\nPreview (first 300 characters):")
	fmt.Println("----------------------------------------")
	preview := content
	if len(preview) > previewLimit {
		preview = preview[:previewLimit] + "..."
	}
	fmt.Println(preview)

	fmt.Println("\n✅ Processing completed successfully!")
}

func printBanner() {
	banner := `
╔═══════════════════════════════════════════════════════════╗
║                      GRIDMARK v1.0.0                      ║
║       Merged-Cell Aware Document to Markdown Export       ║
╚═══════════════════════════════════════════════════════════╝
`
	fmt.Println(banner)
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  gridmark [flags] <input_file>")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  gridmark report.xlsx")
	fmt.Println("  gridmark -o clean_output.md report.xlsx")
	fmt.Println("  gridmark document.docx")
	fmt.Println()
	fmt.Println("Supported formats: .xlsx, .xlsm, .docx")
}
