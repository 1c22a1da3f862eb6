package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/nao1215/secheck/internal/breach"
	"github.com/nao1215/secheck/internal/model"
)

// NewBreachCmd creates the breach command.
func NewBreachCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "breach <email>",
		Short: "Demonstrate a breach lookup with simulated data",
		Long: `Breach shows what a data breach lookup for an email address looks like.

The result is SIMULATED. No breach database is queried and nothing leaves
this machine; the outcome is derived from the email's domain and a fixed list
of well-known breaches. Use a real breach notification service to check an
address.

Examples:
  secheck breach someone@example.com
  secheck breach --json someone@example.com`,
		Args: cobra.ExactArgs(1),
		RunE: runBreachCmd,
	}

	addReportFlags(cmd)

	return cmd
}

// runBreachCmd executes the breach command.
func runBreachCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var checker breach.Checker = breach.NewSimulator(logger)
	result, err := checker.Lookup(ctx, args[0])
	if err != nil {
		return err
	}

	return outputReports(cmd, cfg, []*model.Report{breachReport(result)})
}

// breachReport wraps a lookup result in a report with one warning per breach.
func breachReport(result breach.Result) *model.Report {
	r := model.NewReport(model.ReportBreach, result.Email)
	r.Simulated = result.Simulated

	p := message.NewPrinter(language.English)
	findings := make([]model.Finding, 0, len(result.Breaches))
	for _, b := range result.Breaches {
		findings = append(findings, model.NewWarning("breach_found", 0,
			p.Sprintf("%s (%s): %d accounts exposed", b.Title, b.BreachDate, b.PwnCount)))
	}

	level := model.LevelNotBreached
	if result.Breached {
		level = model.LevelBreached
	}
	r.Result = model.ScoreResult{Level: level, Findings: findings}

	r.AddDetail("Result", result.Message)
	r.AddDetail("Breaches", strconv.Itoa(len(result.Breaches)))
	r.Actions = result.Actions
	return r
}
