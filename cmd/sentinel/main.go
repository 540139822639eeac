package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/engine"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/filehandler"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/models"
	"github.com/LegendeTestimony/sentinel-AI-sub000/pkg/signature"
)

var version = "dev"

var (
	// Color printers
	infoColor    = color.New(color.FgBlue).SprintFunc()
	successColor = color.New(color.FgGreen).SprintFunc()
	warningColor = color.New(color.FgYellow).SprintFunc()
	errorColor   = color.New(color.FgRed).SprintFunc()
	alertColor   = color.New(color.FgRed, color.Bold).SprintFunc()
)

func printInfo(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", infoColor("[*]"), fmt.Sprintf(format, args...))
}

func printSuccess(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", successColor("[+]"), fmt.Sprintf(format, args...))
}

func printWarning(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", warningColor("[!]"), fmt.Sprintf(format, args...))
}

func printError(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s %s\n", errorColor("[-]"), fmt.Sprintf(format, args...))
}

func printAlert(format string, args ...interface{}) {
	fmt.Printf("%s %s\n", alertColor("[!!!]"), fmt.Sprintf(format, args...))
}

var (
	flagJSON      bool
	flagConfig    string
	flagVerbose   bool
	flagRecursive bool
	flagInclude   string
)

var rootCmd = &cobra.Command{
	Use:     "sentinel",
	Short:   "Static file forensics: identification, steganography, polyglots, payloads",
	Version: version,
}

var scanCmd = &cobra.Command{
	Use:   "scan <path> [path...]",
	Short: "Analyze files or directories and report a threat assessment",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if !flagJSON {
			printBanner()
		}
		cfg := engine.DefaultConfig()
		if flagConfig != "" {
			loaded, err := engine.LoadConfig(flagConfig)
			if err != nil {
				return err
			}
			cfg = loaded
		}

		level := slog.LevelWarn
		if flagVerbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		targets, err := filehandler.Collect(args, filehandler.Options{
			Recursive: flagRecursive,
			Include:   flagInclude,
		})
		if err != nil {
			return err
		}
		if len(targets) == 0 {
			return fmt.Errorf("no files to scan")
		}

		eng := engine.New(cfg, logger)
		failed := 0
		for _, path := range targets {
			data, err := filehandler.ReadCapped(path)
			if err != nil {
				printError("cannot read %s: %v", path, err)
				failed++
				continue
			}
			report := eng.Analyze(data, path)
			if flagJSON {
				enc := json.NewEncoder(os.Stdout)
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return fmt.Errorf("encode report: %w", err)
				}
				continue
			}
			printReport(report)
		}
		if failed > 0 {
			return fmt.Errorf("%d file(s) could not be read", failed)
		}
		return nil
	},
}

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List all recognized file types",
	Run: func(cmd *cobra.Command, args []string) {
		byType := make(map[string]string, len(signature.Table))
		for _, entry := range signature.Table {
			if _, seen := byType[entry.TypeID]; !seen {
				byType[entry.TypeID] = entry.MIME
			}
		}
		types := make([]string, 0, len(byType))
		for t := range byType {
			types = append(types, t)
		}
		sort.Strings(types)
		for _, t := range types {
			fmt.Printf("- %-8s %s\n", t, byType[t])
		}
	},
}

func printReport(report engine.Report) {
	fmt.Println("---------------------------------")
	printInfo("file: %s (%d bytes, digest %s)", report.Filename, report.Size, report.Digest)

	id := report.Identification
	printInfo("type: %s (%s), confidence %d%%", id.TypeID, id.MIME, id.Confidence)
	if id.ExtensionMismatch {
		printWarning("extension mismatch: content is %s but name claims .%s (%s)",
			id.TypeID, id.ClaimedExtension, id.MismatchSeverity)
	}
	for _, note := range id.SecurityNotes {
		printWarning("%s", note)
	}

	printInfo("entropy: %.3f bits/byte (%s)", report.Entropy.Value, report.Entropy.Status)
	if report.Entropy.Suspicious {
		printWarning("%s", report.Entropy.Explanation)
	}

	if report.Steganography.Detected {
		printWarning("steganography: %s", report.Steganography.Summary)
		for _, t := range report.Steganography.Techniques {
			printWarning("  %s (%d%%): %s", t.Name, t.Confidence, t.Description)
		}
		if ext := report.Steganography.Extracted; ext != nil {
			for _, msg := range ext.Messages {
				printAlert("recovered message: %q", msg)
			}
			for _, loc := range ext.Locations {
				printInfo("  hidden data location: %s", loc)
			}
		}
	} else {
		printSuccess("steganography: no indicators")
	}

	if report.Polyglot.IsPolyglot {
		printWarning("polyglot: valid as %s (risk %s)",
			strings.Join(report.Polyglot.Formats, " + "), report.Polyglot.Risk)
	}

	if len(report.Payloads.Payloads) > 0 {
		printWarning("payloads: %s (risk %d)", report.Payloads.Summary, report.Payloads.Risk)
		for _, p := range report.Payloads.Payloads {
			printWarning("  %s at offset %d (%d%%): %s", p.Kind, p.Offset, p.Confidence, p.Description)
		}
	}

	score := report.Threat
	line := fmt.Sprintf("threat score: %d/100 (%s)", score.Score, score.Level)
	switch score.Level {
	case models.RiskSafe, models.RiskLow:
		printSuccess("%s", line)
	case models.RiskMedium:
		printWarning("%s", line)
	default:
		printAlert("%s", line)
	}
	printInfo("%s", score.Explanation)
}

func printBanner() {
	fmt.Printf("sentinel %s\n", version)
	fmt.Println("Static file forensics toolkit")
	fmt.Println("---------------------------------")
}

func main() {
	scanCmd.Flags().BoolVar(&flagJSON, "json", false, "Emit the full report as JSON")
	scanCmd.Flags().StringVar(&flagConfig, "config", "", "Path to a YAML thresholds file")
	scanCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
	scanCmd.Flags().BoolVarP(&flagRecursive, "recursive", "r", false, "Descend into subdirectories")
	scanCmd.Flags().StringVar(&flagInclude, "include", "", "Only scan directory entries matching this glob, e.g. \"*.png\"")
	rootCmd.AddCommand(scanCmd, formatsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
