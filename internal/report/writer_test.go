package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/nao1215/secheck/internal/model"
)

// createTestReport creates a URL report with sample findings.
func createTestReport() *model.Report {
	report := model.NewReport(model.ReportURL, "http://192.168.1.1/login")
	report.DateAnalyzed = time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	report.Result = model.ScoreResult{
		Score: 85,
		Level: model.LevelDangerous,
		Findings: []model.Finding{
			model.NewWarning("url_ip_address", 40, "URL uses an IP address instead of a domain"),
			model.NewWarning("url_no_https", 25, "URL does not use HTTPS"),
			model.NewWarning("url_suspicious_keyword", 20, "URL contains suspicious keyword: login"),
			model.NewPositive("url_length_ok", 0, "URL length is normal"),
		},
	}
	report.AddDetail("Host", "192.168.1.1")
	return report
}

// createBreachReport creates a simulated breach report.
func createBreachReport() *model.Report {
	report := model.NewReport(model.ReportBreach, "someone@example.com")
	report.Simulated = true
	report.Result = model.ScoreResult{
		Level: model.LevelBreached,
		Findings: []model.Finding{
			model.NewWarning("breach_found", 0, "Found in LinkedIn breach (2012)"),
		},
	}
	report.Actions = []string{"Change your password", "Enable 2FA"}
	return report
}

// TestSimpleWriter tests the human-readable report writer.
func TestSimpleWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes report header", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)

		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "URL PHISHING RISK REPORT") {
			t.Error("expected output to contain header")
		}
		if !strings.Contains(output, "http://192.168.1.1/login") {
			t.Error("expected output to contain subject")
		}
		if !strings.Contains(output, "85/100") {
			t.Error("expected output to contain score")
		}
		if !strings.Contains(output, "Dangerous") {
			t.Error("expected output to contain level")
		}
	})

	t.Run("orders warnings by severity", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		critical := strings.Index(output, "CRITICAL")
		high := strings.Index(output, "HIGH")
		medium := strings.Index(output, "MEDIUM")
		if critical < 0 || high < 0 || medium < 0 {
			t.Fatalf("expected all severities in output:\n%s", output)
		}
		if critical >= high || high >= medium {
			t.Error("expected CRITICAL before HIGH before MEDIUM")
		}
		if !strings.Contains(output, "POSITIVE INDICATORS") {
			t.Error("expected positive indicators section")
		}
	})

	t.Run("verbose mode includes recommendations", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithVerbose(true))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "Fix:") {
			t.Error("expected recommendations in verbose mode")
		}
	})

	t.Run("no colour codes by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Contains(buf.String(), "\x1b[") {
			t.Error("expected no ANSI escape codes")
		}
	})

	t.Run("colour enabled adds escape codes", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf, WithColor(true))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\x1b[") {
			t.Error("expected ANSI escape codes")
		}
	})

	t.Run("simulated banner and actions", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.Write(createBreachReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, SimulatedNotice) {
			t.Error("expected simulated notice")
		}
		if strings.Contains(output, "Score:") {
			t.Error("breach reports carry no score")
		}
		if !strings.Contains(output, "1. Change your password") {
			t.Error("expected numbered actions")
		}
	})

	t.Run("rejected report shows message only", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport(model.ReportURL, "not a url")
		report.Reject("Invalid URL format")

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "REJECTED - Invalid URL format") {
			t.Error("expected rejection message")
		}
		if strings.Contains(output, "WARNINGS") {
			t.Error("rejected reports have no findings")
		}
	})

	t.Run("write all adds overview", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewSimpleWriter(&buf)
		if _, err := w.WriteAll([]*model.Report{createTestReport(), createBreachReport()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "OVERVIEW") {
			t.Error("expected overview for multiple reports")
		}
	})
}

// TestMarkdownWriter tests the Markdown report writer.
func TestMarkdownWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes markdown headers and tables", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "# URL Phishing Risk Report") {
			t.Error("expected H1 header")
		}
		if !strings.Contains(output, "|") {
			t.Error("expected markdown tables")
		}
		if !strings.Contains(output, "mermaid") {
			t.Error("expected mermaid pie chart")
		}
		if !strings.Contains(output, "#### 🔴 Critical") {
			t.Error("expected critical findings section")
		}
	})

	t.Run("simulated reports carry caution", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		if _, err := w.Write(createBreachReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), SimulatedNotice) {
			t.Error("expected simulated notice")
		}
	})

	t.Run("write all adds overview", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewMarkdownWriter(&buf)
		if _, err := w.WriteAll([]*model.Report{createTestReport(), createBreachReport()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		output := buf.String()
		if !strings.Contains(output, "## Overview") {
			t.Error("expected overview section")
		}
		if !strings.Contains(output, "## URL Phishing Risk: http://192.168.1.1/login") {
			t.Error("expected nested report heading")
		}
	})
}

// TestJSONWriter tests the JSON report writer.
func TestJSONWriter(t *testing.T) {
	t.Parallel()

	t.Run("writes valid JSON", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithVersion("1.2.3"))
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		var decoded struct {
			Version string `json:"version"`
			Reports []struct {
				Kind    string `json:"kind"`
				Subject string `json:"subject"`
				Result  struct {
					Score int    `json:"score"`
					Level string `json:"level"`
				} `json:"result"`
				Simulated bool          `json:"simulated"`
				Summary   model.Summary `json:"summary"`
			} `json:"reports"`
		}
		if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
			t.Fatalf("invalid JSON: %v\n%s", err, buf.String())
		}

		if decoded.Version != "1.2.3" {
			t.Errorf("expected version 1.2.3, got %q", decoded.Version)
		}
		if len(decoded.Reports) != 1 {
			t.Fatalf("expected 1 report, got %d", len(decoded.Reports))
		}
		r := decoded.Reports[0]
		if r.Kind != "url" || r.Result.Score != 85 || r.Result.Level != "Dangerous" {
			t.Errorf("unexpected report: %+v", r)
		}
		if r.Summary.CriticalCount != 1 {
			t.Errorf("expected 1 critical, got %d", r.Summary.CriticalCount)
		}
	})

	t.Run("compact output by default", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf)
		if _, err := w.Write(createTestReport()); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if strings.Count(buf.String(), "\n") != 1 {
			t.Error("expected single-line output")
		}
	})

	t.Run("pretty print indents", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		w := NewJSONWriter(&buf, WithPrettyPrint())
		if _, err := w.WriteAll([]*model.Report{createTestReport(), createBreachReport()}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !strings.Contains(buf.String(), "\n  ") {
			t.Error("expected indented output")
		}
		if !strings.Contains(buf.String(), `"simulated": true`) {
			t.Error("expected simulated flag for breach report")
		}
	})

	t.Run("rejected report has empty findings", func(t *testing.T) {
		t.Parallel()

		report := model.NewReport(model.ReportURL, "not a url")
		report.Reject("Invalid URL format")

		var buf bytes.Buffer
		if _, err := NewJSONWriter(&buf).Write(report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, `"findings":[]`) {
			t.Errorf("expected empty findings array, got %s", out)
		}
		if strings.Contains(out, "null") {
			t.Errorf("expected no null values, got %s", out)
		}
		if !strings.Contains(out, `"level":"Invalid"`) {
			t.Errorf("expected Invalid level, got %s", out)
		}
	})
}

// TestNewWriter tests writer selection by format.
func TestNewWriter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if _, ok := NewWriter(FormatText, &buf, Options{}).(*SimpleWriter); !ok {
		t.Error("expected SimpleWriter for text")
	}
	if _, ok := NewWriter(FormatMarkdown, &buf, Options{}).(*MarkdownWriter); !ok {
		t.Error("expected MarkdownWriter for markdown")
	}
	if _, ok := NewWriter(FormatJSON, &buf, Options{}).(*JSONWriter); !ok {
		t.Error("expected JSONWriter for json")
	}
	if FormatJSON.String() != "json" {
		t.Errorf("unexpected format name %q", FormatJSON.String())
	}
}

// TestTruncateString tests rune-aware truncation.
func TestTruncateString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in       string
		maxLen   int
		expected string
	}{
		{"short", 10, "short"},
		{"exactly10!", 10, "exactly10!"},
		{"this is too long", 10, "this is..."},
		{"日本語のテキスト", 5, "日本..."},
		{"abcdef", 3, "abc"},
	}
	for _, tc := range testCases {
		if got := truncateString(tc.in, tc.maxLen); got != tc.expected {
			t.Errorf("truncateString(%q, %d) = %q, want %q", tc.in, tc.maxLen, got, tc.expected)
		}
	}
}
