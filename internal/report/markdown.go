package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"

	"github.com/nao1215/secheck/internal/model"
)

// MarkdownWriter outputs reports in GitHub Flavored Markdown.
// This format is designed for documentation and sharing.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs a single report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	return w.WriteAll([]*model.Report{report})
}

// WriteAll outputs several reports in one document. Batches of more than one
// report start with an overview table.
func (w *MarkdownWriter) WriteAll(reports []*model.Report) (int, error) {
	md := markdown.NewMarkdown(w.output)

	if len(reports) > 1 {
		md.H1("secheck Report")
		md.PlainText("")
		w.writeOverview(md, reports)
	}
	for _, r := range reports {
		w.writeReport(md, r, len(reports) > 1)
	}
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

func (w *MarkdownWriter) writeReport(md *markdown.Markdown, report *model.Report, nested bool) {
	if nested {
		md.H2(report.Kind.Title() + ": " + report.Subject)
	} else {
		md.H1(report.Kind.Title() + " Report")
	}
	md.PlainText("")

	if report.Simulated {
		md.Cautionf("%s", SimulatedNotice)
		md.PlainText("")
	}

	w.writeHeader(md, report)
	if report.IsRejected() {
		md.Warningf("%s", report.Rejected)
		md.PlainText("")
		return
	}

	w.writeSummary(md, report)
	w.writeFindings(md, report)
	w.writeActions(md, report)
}

// writeHeader writes the basic information table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	rows := [][]string{
		{"Subject", "`" + report.Subject + "`"},
		{"Date", report.DateAnalyzed.Format("2006-01-02 15:04:05 MST")},
	}
	if report.HasScore() {
		rows = append(rows, []string{"Score", scoreText(report) + " (" + scoreMeaning(report.Kind) + ")"})
	}
	rows = append(rows, []string{"Level", "**" + string(report.Result.Level) + "**"})
	for _, d := range report.Details {
		rows = append(rows, []string{d.Label, orDash(d.Value)})
	}

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeSummary writes the severity summary, pie chart and alert.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	summary := report.Summary()

	md.H3("Severity Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Severity", "Count"},
		Rows: [][]string{
			{"🔴 Critical", strconv.Itoa(summary.CriticalCount)},
			{"🟠 High", strconv.Itoa(summary.HighCount)},
			{"🟡 Medium", strconv.Itoa(summary.MediumCount)},
			{"🔵 Low", strconv.Itoa(summary.LowCount)},
			{"⚪ Info", strconv.Itoa(summary.InfoCount)},
			{"✅ Positive", strconv.Itoa(summary.PositiveCount)},
			{"**Total warnings**", "**" + strconv.Itoa(summary.TotalWarnings()) + "**"},
		},
	})
	md.PlainText("")

	if summary.TotalWarnings() > 0 {
		w.writePieChart(md, summary)
	}
	w.writeAlert(md, summary)
}

// writePieChart writes a mermaid pie chart for the warning severity distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, summary model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Warning Severity Distribution"),
		piechart.WithShowData(true),
	)

	counts := []struct {
		label string
		count int
	}{
		{"Critical", summary.CriticalCount},
		{"High", summary.HighCount},
		{"Medium", summary.MediumCount},
		{"Low", summary.LowCount},
		{"Info", summary.InfoCount},
	}
	for _, c := range counts {
		if c.count > 0 {
			chart.LabelAndIntValue(c.label, uint64(c.count))
		}
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on severity counts.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, summary model.Summary) {
	switch {
	case summary.CriticalCount > 0:
		md.Cautionf("%d critical issue(s) found. Address them first.", summary.CriticalCount)
	case summary.HighCount > 0:
		md.Warningf("%d high severity issue(s) found.", summary.HighCount)
	case summary.MediumCount > 0:
		md.Importantf("%d medium severity issue(s) found.", summary.MediumCount)
	case summary.TotalWarnings() > 0:
		md.Note("Only low severity and informational warnings found.")
	default:
		md.Tip("No warnings found.")
	}
	md.PlainText("")
}

// writeFindings writes warnings by severity and then positive indicators.
func (w *MarkdownWriter) writeFindings(md *markdown.Markdown, report *model.Report) {
	md.H3("Findings")
	md.PlainText("")

	headers := map[model.Severity]string{
		model.SeverityCritical: "#### 🔴 Critical",
		model.SeverityHigh:     "#### 🟠 High",
		model.SeverityMedium:   "#### 🟡 Medium",
		model.SeverityLow:      "#### 🔵 Low",
		model.SeverityInfo:     "#### ⚪ Info",
	}

	for _, severity := range severityOrder {
		findings := report.Result.WarningsBySeverity(severity)
		if len(findings) == 0 {
			continue
		}
		md.PlainText(headers[severity])
		md.PlainText("")
		w.writeFindingsTable(md, findings)
	}

	positives := report.Result.Positives()
	if len(positives) > 0 {
		md.PlainText("#### ✅ Positive indicators")
		md.PlainText("")
		items := make([]string, len(positives))
		for i, f := range positives {
			items[i] = f.Message
		}
		md.BulletList(items...)
		md.PlainText("")
	}
}

// writeFindingsTable writes a table of warnings with recommendations.
func (w *MarkdownWriter) writeFindingsTable(md *markdown.Markdown, findings []model.Finding) {
	rows := make([][]string, len(findings))
	for i, f := range findings {
		rows[i] = []string{
			f.Message,
			strconv.Itoa(f.Points),
			truncateString(orDash(f.Recommendation()), 80),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Warning", "Points", "Recommendation"},
		Rows:   rows,
	})
	md.PlainText("")
}

func (w *MarkdownWriter) writeActions(md *markdown.Markdown, report *model.Report) {
	if len(report.Actions) == 0 {
		return
	}
	md.H3("Recommended Actions")
	md.PlainText("")
	md.BulletList(report.Actions...)
	md.PlainText("")
}

// writeOverview writes one table row per report.
func (w *MarkdownWriter) writeOverview(md *markdown.Markdown, reports []*model.Report) {
	rows := make([][]string, len(reports))
	for i, r := range reports {
		score := "-"
		if r.HasScore() {
			score = scoreText(r)
		}
		rows[i] = []string{"`" + r.Subject + "`", string(r.Result.Level), score}
	}

	md.H2("Overview")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Subject", "Level", "Score"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainText("*Report generated by secheck. All analysis is local and heuristic.*")
}
