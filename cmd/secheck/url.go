package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nao1215/secheck/internal/config"
	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/phishing"
	"github.com/nao1215/secheck/internal/rule"
)

// NewURLCmd creates the url command.
func NewURLCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "url [url...]",
		Short: "Estimate the phishing risk of URLs",
		Long: `URL rates how likely each URL is to be a phishing link, from 0 (safe) to 100.

Only the text of the URL is inspected; nothing is fetched. The checks look for:
- Missing HTTPS, raw IP addresses and unusual ports
- Brand names in the hostname and look-alike characters
- Excessive subdomains, hyphens and digits in the domain
- Account and login keywords in the path or query

Levels: Safe (<=25), Suspicious (<=60), Dangerous.

Examples:
  # Analyze a single URL
  secheck url https://paypal-secure.example.com/login

  # Analyze URLs listed in a file, 20 at a time
  secheck url --list urls.txt --batch 20

  # Output JSON report
  secheck url --json https://example.com`,
		Args: cobra.ArbitraryArgs,
		RunE: runURLCmd,
	}

	cmd.Flags().StringP("list", "L", "",
		"File with one URL per line (blank lines and lines starting with # are skipped)")
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of URLs analysed concurrently")
	addReportFlags(cmd)

	return cmd
}

// runURLCmd executes the url command.
func runURLCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("batch") {
		if cfg.BatchSize, err = cmd.Flags().GetInt("batch"); err != nil {
			return err
		}
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	targets := args
	listPath, err := cmd.Flags().GetString("list")
	if err != nil {
		return err
	}
	if listPath != "" {
		listed, err := readURLList(listPath)
		if err != nil {
			return err
		}
		targets = append(targets, listed...)
	}
	if len(targets) == 0 {
		return errors.New("no URLs provided (specify URLs as arguments or with --list)")
	}

	// Set up context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reports, err := analyzeURLs(ctx, cfg, targets, logger)
	if err != nil {
		return fmt.Errorf("url analysis interrupted: %w", err)
	}

	return outputReports(cmd, cfg, reports)
}

// analyzeURLs scores targets concurrently and returns reports in input order.
func analyzeURLs(ctx context.Context, cfg *config.Config, targets []string, logger *slog.Logger) ([]*model.Report, error) {
	analyzer := newPhishingAnalyzer(cfg, logger)

	bp := rule.NewBatchProcessor(
		func(_ context.Context, raw string) *model.Report {
			return urlReport(analyzer, raw)
		},
		rule.WithConcurrency(min(cfg.BatchSize, len(targets))),
		rule.WithBatchLogger(logger),
	)

	return bp.Process(ctx, targets)
}

// newPhishingAnalyzer builds an Analyzer with the configured keyword lists.
func newPhishingAnalyzer(cfg *config.Config, logger *slog.Logger) *phishing.Analyzer {
	opts := []phishing.Option{phishing.WithLogger(logger)}
	if cfg.File != nil {
		opts = append(opts,
			phishing.WithBrands(cfg.File.Phishing.Brands),
			phishing.WithSuspiciousKeywords(cfg.File.Phishing.SuspiciousKeywords),
		)
	}
	return phishing.NewAnalyzer(opts...)
}

// urlReport scores raw and wraps the result in a report.
func urlReport(analyzer *phishing.Analyzer, raw string) *model.Report {
	analysis := analyzer.Analyze(raw)

	r := model.NewReport(model.ReportURL, analysis.URL)
	if !analysis.IsValid() {
		r.Reject(analysis.Rejected)
		return r
	}

	r.Result = analysis.ScoreResult
	r.AddDetail("Host", analysis.Host)
	if analysis.UnicodeHost != "" {
		r.AddDetail("Decoded host", analysis.UnicodeHost)
	}
	return r
}

// readURLList reads URLs from path, one per line.
func readURLList(path string) ([]string, error) {
	f, err := os.Open(path) //nolint:gosec // User-provided list path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to open URL list: %w", err)
	}
	defer f.Close()

	lines, err := readLines(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read URL list %s: %w", path, err)
	}

	urls := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		urls = append(urls, line)
	}
	return urls, nil
}
