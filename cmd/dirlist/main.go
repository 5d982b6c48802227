package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/IvanShishkin/dirlist/internal/config"
	"github.com/IvanShishkin/dirlist/internal/core"
	"github.com/IvanShishkin/dirlist/internal/digest"
	"github.com/IvanShishkin/dirlist/internal/progress"
	"github.com/IvanShishkin/dirlist/internal/report"
	"github.com/IvanShishkin/dirlist/pkg/bytesize"
	"github.com/IvanShishkin/dirlist/pkg/models"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ANSI colors
const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
)

var version = "1.0.0"

// globalFlags are shared by every subcommand
type globalFlags struct {
	verbose    bool
	configFile string
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd builds the command tree writing to the given streams
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "dirlist",
		Short: "dirlist - recursive directory listing with file metadata and digests",
		Long: `Walks a directory tree and produces one row per regular file with its size,
timestamps, detected content type and optional MD5/SHA-1/SHA-256 digests.`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
		Run: func(cmd *cobra.Command, args []string) {
			cmd.Help()
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose notifications")
	rootCmd.PersistentFlags().StringVar(&flags.configFile, "config", "", "Config file (YAML)")

	// Add commands
	rootCmd.AddCommand(scanCmd(flags))
	rootCmd.AddCommand(sizeCmd())
	rootCmd.AddCommand(digestCmd(flags))

	return rootCmd
}

// newLogger builds a development logger when verbose, otherwise a quiet JSON logger
func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapcore.WarnLevel),
		Encoding:         "json",
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		EncoderConfig:    zap.NewProductionEncoderConfig(),
	}
	return cfg.Build()
}

// scanCmd creates the scan command
func scanCmd(flags *globalFlags) *cobra.Command {
	var (
		dir          string
		outputFile   string
		md5          bool
		sha1         bool
		sha256       bool
		reportFormat string
		barWidth     int
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "Create a directory listing",
		Long:  `Recursively list every regular file under a start directory, hidden files included.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			stdout, stderr := cmd.OutOrStdout(), cmd.ErrOrStderr()

			// Load configuration
			cfg, err := config.LoadConfig(flags.configFile)
			if err != nil {
				return err
			}

			// Override config with CLI flags
			if dir != "" {
				cfg.Path = dir
			}
			if outputFile != "" {
				cfg.OutputFile = outputFile
			}
			if md5 {
				cfg.MD5 = true
			}
			if sha1 {
				cfg.SHA1 = true
			}
			if sha256 {
				cfg.SHA256 = true
			}
			if flags.verbose {
				cfg.Verbose = true
			}
			if cmd.Flags().Changed("format") {
				cfg.ReportFormat = reportFormat
			}
			if cmd.Flags().Changed("bar-width") {
				cfg.BarWidth = barWidth
			}

			if err := cfg.Validate(); err != nil {
				fmt.Fprintf(stderr, "\n  %s✗ Invalid parameter:%s %s\n\n", colorRed, colorReset, err.Error())
				return err
			}

			logger, err := newLogger(cfg.Verbose)
			if err != nil {
				fmt.Fprintf(stderr, "Failed to initialize logger: %v\n", err)
				return err
			}
			defer logger.Sync()

			gen, err := report.NewGenerator(cfg.ReportFormat, logger)
			if err != nil {
				return err
			}

			inv := core.NewInventory(cfg.ScanOptions(), logger)

			// Progress goes to stderr so the listing on stdout stays clean
			bar := progress.NewBar(stderr, cfg.BarWidth)
			inv.SetProgressCallback(func(p core.Progress) {
				switch p.Phase {
				case core.PhaseLoading:
					bar.Loading(p.Processed)
				case core.PhaseLoaded:
					bar.LoadingDone()
				case core.PhaseProcessing:
					bar.Report(p.Processed, p.Total, p.Label())
				}
			})

			listing, err := inv.BuildReport()
			if err != nil {
				logger.Error("Inventory failed", zap.Error(err))
				return err
			}

			return writeOrPrint(gen, listing, cfg.OutputFile, stdout, stderr)
		},
	}

	// Flags
	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Start directory")
	cmd.Flags().StringVarP(&outputFile, "write", "w", "", "File to write results to")
	cmd.Flags().BoolVar(&md5, "md5", false, "Include MD5 in the output")
	cmd.Flags().BoolVar(&sha1, "sha1", false, "Include SHA1 in the output")
	cmd.Flags().BoolVar(&sha256, "sha256", false, "Include SHA256 in the output")
	cmd.Flags().StringVarP(&reportFormat, "format", "f", report.FormatText,
		"Report format: "+strings.Join(report.Formats, ", "))
	cmd.Flags().IntVar(&barWidth, "bar-width", progress.DefaultWidth, "Progress bar width")

	return cmd
}

// writeOrPrint writes the listing to outputFile, or to stdout when no file is
// given. A failed write is reported on stderr and the listing is printed instead.
func writeOrPrint(gen *report.Generator, listing *models.InventoryReport, outputFile string, stdout, stderr io.Writer) error {
	if outputFile != "" {
		err := gen.Write(listing, outputFile)
		if err == nil {
			return nil
		}
		if !models.IsKind(err, models.KindOutputWrite) {
			return err
		}
		fmt.Fprintf(stderr, "Error writing to file: %s (%v)\n", outputFile, err)
	}

	data, err := gen.Render(listing)
	if err != nil {
		return err
	}
	_, err = stdout.Write(data)
	return err
}

// sizeCmd creates the size command
func sizeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "size <bytes | size string>",
		Short: "Convert between a byte count and a human-readable size",
		Long: `Formats a plain byte count ("1536" -> "1.5 KB") or parses a size string
back to bytes ("1.5 KB" -> "1536"). Parsing is lossy.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value := strings.Join(args, " ")

			if n, err := strconv.ParseUint(strings.TrimSpace(value), 10, 64); err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), bytesize.Format(n))
				return nil
			}

			n, err := bytesize.Parse(value)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

// digestCmd creates the digest command
func digestCmd(flags *globalFlags) *cobra.Command {
	var md5, sha1, sha256 bool

	cmd := &cobra.Command{
		Use:   "digest <file>",
		Short: "Print the digests of a single file",
		Long:  `Hash one file with the selected algorithms, or with all of them when none is selected.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filePath := args[0]

			// Check if file exists
			if info, err := os.Stat(filePath); err != nil {
				return fmt.Errorf("file not found: %s", filePath)
			} else if info.IsDir() {
				return fmt.Errorf("not a regular file: %s", filePath)
			}

			opts := models.ScanOptions{IncludeMD5: md5, IncludeSHA1: sha1, IncludeSHA256: sha256}
			algs := opts.Algorithms()
			if len(algs) == 0 {
				algs = models.Algorithms
			}

			logger, err := newLogger(flags.verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			results := digest.ComputeAll(filePath, algs)
			for _, alg := range algs {
				d := results[alg]
				if !d.OK() {
					logger.Warn("Digest failed", zap.String("path", filePath), zap.Error(d.Err))
					return d.Err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-6s %s  %s\n", alg, d.Hex, filePath)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&md5, "md5", false, "Print MD5")
	cmd.Flags().BoolVar(&sha1, "sha1", false, "Print SHA1")
	cmd.Flags().BoolVar(&sha256, "sha256", false, "Print SHA256")

	return cmd
}
