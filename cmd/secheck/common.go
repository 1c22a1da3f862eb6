package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/nao1215/secheck/internal/config"
	seclog "github.com/nao1215/secheck/internal/log"
	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/report"
)

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// getConfigFlag retrieves the config flag from the command or its parent.
func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		path, err = cmd.Root().PersistentFlags().GetString("config")
		if err != nil {
			return ""
		}
	}
	return path
}

// buildConfig creates a Config from the global flags and the configuration file.
// Command specific flags are read by each command afterwards.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.NewConfig()
	cfg.Verbose = getVerboseFlag(cmd)
	cfg.ConfigFilePath = getConfigFlag(cmd)

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently run without a file.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	switch {
	case configPath != "":
		f, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.ApplyFile(f, func(name string) bool {
			flag := cmd.Flags().Lookup(name)
			return flag != nil && flag.Changed
		})
	case cfg.ConfigFilePath != "":
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	return cfg, nil
}

// setupLogger creates the secure structured logger used by every command.
func setupLogger(cmd *cobra.Command, verbose bool) *slog.Logger {
	logger := seclog.NewSecureLogger(cmd.ErrOrStderr(), verbose)
	slog.SetDefault(logger)
	return logger
}

// addReportFlags registers the report flags shared by the analysis commands.
func addReportFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false,
		"Disable coloured output")
}

// readReportFlags copies the report flags into cfg.
func readReportFlags(cmd *cobra.Command, cfg *config.Config) error {
	var err error

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	cfg.NoColor, err = cmd.Flags().GetBool("no-color")
	return err
}

// reportFormat returns the format selected by the report flags.
func reportFormat(cfg *config.Config) report.Format {
	switch {
	case cfg.JSONReport:
		return report.FormatJSON
	case cfg.MarkdownReport:
		return report.FormatMarkdown
	default:
		return report.FormatText
	}
}

// outputReports writes reports in the requested format to the report file
// or the command's standard output.
func outputReports(cmd *cobra.Command, cfg *config.Config, reports []*model.Report) error {
	var output io.Writer = cmd.OutOrStdout()
	if cfg.ReportFile != "" {
		if err := ensureDir(cfg.ReportFile); err != nil {
			return err
		}

		// Reports may describe weak passwords or networks, so only the owner can read them.
		f, err := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	}

	writer := report.NewWriter(reportFormat(cfg), output, report.Options{
		Color:   !cfg.NoColor && cfg.ReportFile == "" && !color.NoColor,
		Verbose: cfg.Verbose,
		Version: getVersion(),
	})

	if len(reports) == 1 {
		_, err := writer.Write(reports[0])
		return err
	}
	_, err := writer.WriteAll(reports)
	return err
}
