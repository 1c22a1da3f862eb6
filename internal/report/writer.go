package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/nao1215/secheck/internal/model"
)

// SimulatedNotice is shown on every report built from demo data.
const SimulatedNotice = "SIMULATED RESULT: generated locally from demo data, not from a real breach database."

// Writer defines the interface for report output.
type Writer interface {
	// Write outputs a single report.
	// Returns the number of bytes written and any error encountered.
	Write(report *model.Report) (int, error)

	// WriteAll outputs several reports in order, e.g. the results of a batch.
	WriteAll(reports []*model.Report) (int, error)
}

// Format selects a Writer implementation.
type Format int

const (
	// FormatText is human-readable text.
	FormatText Format = iota

	// FormatMarkdown is GitHub Flavored Markdown.
	FormatMarkdown

	// FormatJSON is indented JSON.
	FormatJSON
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatMarkdown:
		return "markdown"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Options holds the settings shared by NewWriter.
type Options struct {
	// Color enables ANSI colours in text output.
	Color bool

	// Verbose adds recommendations to text output.
	Verbose bool

	// Version is embedded in JSON output.
	Version string
}

// NewWriter returns the Writer for format.
func NewWriter(format Format, output io.Writer, opts Options) Writer {
	switch format {
	case FormatMarkdown:
		return NewMarkdownWriter(output)
	case FormatJSON:
		return NewJSONWriter(output, WithPrettyPrint(), WithVersion(opts.Version))
	default:
		return NewSimpleWriter(output, WithColor(opts.Color), WithVerbose(opts.Verbose))
	}
}

// baseWriter provides common functionality for report writers.
type baseWriter struct {
	output io.Writer
}

// newBaseWriter creates a baseWriter with the given output destination.
func newBaseWriter(output io.Writer) baseWriter {
	return baseWriter{output: output}
}

// severityOrder lists severities from most to least serious.
var severityOrder = []model.Severity{
	model.SeverityCritical,
	model.SeverityHigh,
	model.SeverityMedium,
	model.SeverityLow,
	model.SeverityInfo,
}

// scoreText formats the score of a report, e.g. "85/100".
func scoreText(report *model.Report) string {
	return fmt.Sprintf("%d/%d", report.Result.Score, model.MaxScore)
}

// scoreMeaning explains which end of the scale is good.
func scoreMeaning(kind model.ReportKind) string {
	if kind == model.ReportPassword {
		return "higher is stronger"
	}
	return "higher is riskier"
}

// truncateString truncates a string to maxLen runes with ellipsis.
func truncateString(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}

// orDash returns "-" for empty strings, for table cells.
func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
