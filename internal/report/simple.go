package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/nao1215/secheck/internal/model"
)

const ruleWidth = 70

// SimpleWriter outputs human-readable text reports.
// This format is designed for terminal display with colour-coded levels and
// severities and clear section formatting.
type SimpleWriter struct {
	baseWriter

	// verbose adds the recommendation of every warning.
	verbose bool

	// palette holds the colours used for output. Colours are disabled
	// unless WithColor(true) is given.
	palette palette
}

type palette struct {
	good, fair, bad, critical, heading, notice *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		good:     color.New(color.FgGreen),
		fair:     color.New(color.FgYellow),
		bad:      color.New(color.FgRed),
		critical: color.New(color.FgRed, color.Bold),
		heading:  color.New(color.FgCyan, color.Bold),
		notice:   color.New(color.FgBlack, color.BgYellow, color.Bold),
	}
	for _, c := range []*color.Color{p.good, p.fair, p.bad, p.critical, p.heading, p.notice} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output with recommendations.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// WithColor enables or disables ANSI colours.
func WithColor(enabled bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.palette = newPalette(enabled)
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
		palette:    newPalette(false),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs a single report in human-readable format.
func (w *SimpleWriter) Write(report *model.Report) (int, error) {
	var sb strings.Builder
	w.writeReport(&sb, report)
	return io.WriteString(w.output, sb.String())
}

// WriteAll outputs each report followed by a one-line-per-report overview.
func (w *SimpleWriter) WriteAll(reports []*model.Report) (int, error) {
	var sb strings.Builder
	for _, r := range reports {
		w.writeReport(&sb, r)
	}
	if len(reports) > 1 {
		w.writeOverview(&sb, reports)
	}
	return io.WriteString(w.output, sb.String())
}

func (w *SimpleWriter) writeReport(sb *strings.Builder, report *model.Report) {
	w.writeHeader(sb, report)
	if report.IsRejected() {
		fmt.Fprintf(sb, "Status:   %s\n\n", w.palette.bad.Sprint("REJECTED - "+report.Rejected))
		w.writeFooter(sb)
		return
	}
	w.writeDetails(sb, report)
	w.writeWarnings(sb, report)
	w.writePositives(sb, report)
	w.writeActions(sb, report)
	w.writeFooter(sb)
}

// writeHeader writes the report title, subject and score.
func (w *SimpleWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	title := strings.ToUpper(report.Kind.Title()) + " REPORT"
	pad := max(0, (ruleWidth-len(title))/2)
	sb.WriteString(strings.Repeat(" ", pad))
	sb.WriteString(w.palette.heading.Sprint(title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n\n")

	if report.Simulated {
		sb.WriteString(w.palette.notice.Sprint(" " + SimulatedNotice + " "))
		sb.WriteString("\n\n")
	}

	fmt.Fprintf(sb, "Subject:  %s\n", report.Subject)
	fmt.Fprintf(sb, "Date:     %s\n", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST"))
	if report.HasScore() {
		fmt.Fprintf(sb, "Score:    %s (%s)\n", scoreText(report), scoreMeaning(report.Kind))
	}
	if !report.IsRejected() {
		fmt.Fprintf(sb, "Level:    %s\n", w.levelColor(report.Result.Level).Sprint(report.Result.Level))
	}
	sb.WriteString("\n")
}

// levelColor maps a level to a colour.
func (w *SimpleWriter) levelColor(level model.Level) *color.Color {
	switch level {
	case model.LevelStrong, model.LevelVeryStrong, model.LevelSafe, model.LevelExcellent, model.LevelNotBreached:
		return w.palette.good
	case model.LevelGood, model.LevelFair, model.LevelSuspicious:
		return w.palette.fair
	case model.LevelDangerous, model.LevelBreached:
		return w.palette.critical
	default:
		return w.palette.bad
	}
}

// severityColor maps a severity to a colour.
func (w *SimpleWriter) severityColor(severity model.Severity) *color.Color {
	switch severity {
	case model.SeverityCritical:
		return w.palette.critical
	case model.SeverityHigh:
		return w.palette.bad
	case model.SeverityMedium:
		return w.palette.fair
	default:
		return w.palette.heading
	}
}

func (w *SimpleWriter) writeSection(sb *strings.Builder, name string) {
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString(name)
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", ruleWidth))
	sb.WriteString("\n\n")
}

func (w *SimpleWriter) writeDetails(sb *strings.Builder, report *model.Report) {
	if len(report.Details) == 0 {
		return
	}
	w.writeSection(sb, "DETAILS")

	width := 0
	for _, d := range report.Details {
		width = max(width, len(d.Label))
	}
	for _, d := range report.Details {
		fmt.Fprintf(sb, "  %-*s  %s\n", width+1, d.Label+":", d.Value)
	}
	sb.WriteString("\n")
}

// writeWarnings writes warnings grouped by severity, most serious first.
func (w *SimpleWriter) writeWarnings(sb *strings.Builder, report *model.Report) {
	if !report.Result.HasWarnings() {
		return
	}
	w.writeSection(sb, "WARNINGS")

	for _, severity := range severityOrder {
		findings := report.Result.WarningsBySeverity(severity)
		if len(findings) == 0 {
			continue
		}
		fmt.Fprintf(sb, "[%s] %s\n", getSeverityIndicator(severity), w.severityColor(severity).Sprint(severity.String()))
		for _, f := range findings {
			fmt.Fprintf(sb, "  * %s\n", f.Message)
			if w.verbose {
				if rec := f.Recommendation(); rec != "" {
					fmt.Fprintf(sb, "    Fix: %s\n", rec)
				}
			}
		}
		sb.WriteString("\n")
	}
}

func (w *SimpleWriter) writePositives(sb *strings.Builder, report *model.Report) {
	positives := report.Result.Positives()
	if len(positives) == 0 {
		return
	}
	w.writeSection(sb, "POSITIVE INDICATORS")
	for _, f := range positives {
		fmt.Fprintf(sb, "  %s %s\n", w.palette.good.Sprint("[+]"), f.Message)
	}
	sb.WriteString("\n")
}

func (w *SimpleWriter) writeActions(sb *strings.Builder, report *model.Report) {
	if len(report.Actions) == 0 {
		return
	}
	w.writeSection(sb, "RECOMMENDED ACTIONS")
	for i, a := range report.Actions {
		fmt.Fprintf(sb, "  %d. %s\n", i+1, a)
	}
	sb.WriteString("\n")
}

// writeOverview writes one line per report after a batch.
func (w *SimpleWriter) writeOverview(sb *strings.Builder, reports []*model.Report) {
	w.writeSection(sb, "OVERVIEW")
	for _, r := range reports {
		score := "-"
		if r.HasScore() {
			score = scoreText(r)
		}
		fmt.Fprintf(sb, "  %s %-7s %s\n", w.levelColor(r.Result.Level).Sprintf("%-11s", r.Result.Level), score, r.Subject)
	}
	sb.WriteString("\n")
}

// getSeverityIndicator returns a visual indicator for the severity level.
func getSeverityIndicator(severity model.Severity) string {
	switch severity {
	case model.SeverityCritical:
		return "!!!"
	case model.SeverityHigh:
		return "!!"
	case model.SeverityMedium:
		return "!"
	case model.SeverityLow:
		return "-"
	case model.SeverityInfo:
		return "i"
	default:
		return "?"
	}
}

// writeFooter writes the report footer.
func (w *SimpleWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
	sb.WriteString("Report generated by secheck - all analysis is local and heuristic\n")
	sb.WriteString(strings.Repeat("=", ruleWidth))
	sb.WriteString("\n")
}
