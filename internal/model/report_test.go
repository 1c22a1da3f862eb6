package model

import (
	"encoding/json"
	"testing"
)

func TestBandsLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		bands    Bands
		score    int
		expected Level
	}{
		{"password 0 is weak", PasswordBands, 0, LevelWeak},
		{"password 29 is weak", PasswordBands, 29, LevelWeak},
		{"password 30 is fair", PasswordBands, 30, LevelFair},
		{"password 50 is good", PasswordBands, 50, LevelGood},
		{"password 75 is strong", PasswordBands, 75, LevelStrong},
		{"password 89 is strong", PasswordBands, 89, LevelStrong},
		{"password 90 is very strong", PasswordBands, 90, LevelVeryStrong},
		{"url 25 is safe", URLBands, 25, LevelSafe},
		{"url 26 is suspicious", URLBands, 26, LevelSuspicious},
		{"url 60 is suspicious", URLBands, 60, LevelSuspicious},
		{"url 61 is dangerous", URLBands, 61, LevelDangerous},
		{"wifi 10 is excellent", WiFiBands, 10, LevelExcellent},
		{"wifi 30 is good", WiFiBands, 30, LevelGood},
		{"wifi 50 is fair", WiFiBands, 50, LevelFair},
		{"wifi 51 is poor", WiFiBands, 51, LevelPoor},
		{"above every band uses last level", URLBands, 500, LevelDangerous},
		{"empty bands are invalid", Bands{}, 10, LevelInvalid},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := tc.bands.Level(tc.score); got != tc.expected {
				t.Errorf("Level(%d) = %q, expected %q", tc.score, got, tc.expected)
			}
		})
	}
}

func TestClamp(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in, want int
	}{
		{-40, 0},
		{0, 0},
		{55, 55},
		{100, 100},
		{135, 100},
	}
	for _, tc := range testCases {
		if got := Clamp(tc.in); got != tc.want {
			t.Errorf("Clamp(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestFindingConstructors(t *testing.T) {
	t.Parallel()

	t.Run("warning takes severity from catalog", func(t *testing.T) {
		t.Parallel()

		f := NewWarning("url_ip_address", 40, "raw IP")
		if !f.IsWarning() {
			t.Error("expected warning")
		}
		if f.Severity != SeverityCritical {
			t.Errorf("expected SeverityCritical, got %v", f.Severity)
		}
		if f.SeverityText != "CRITICAL" {
			t.Errorf("expected CRITICAL, got %q", f.SeverityText)
		}
		if f.Recommendation() == "" {
			t.Error("expected a recommendation")
		}
	})

	t.Run("positive is informational", func(t *testing.T) {
		t.Parallel()

		f := NewPositive("url_https", 0, "uses https")
		if f.IsWarning() {
			t.Error("expected positive")
		}
		if f.Severity != SeverityInfo {
			t.Errorf("expected SeverityInfo, got %v", f.Severity)
		}
		if f.Recommendation() != "" {
			t.Error("positive findings have no recommendation")
		}
	})
}

func TestReportSummary(t *testing.T) {
	t.Parallel()

	report := NewReport(ReportURL, "http://192.168.0.1/login")
	report.Result = ScoreResult{
		Score: 85,
		Level: LevelDangerous,
		Findings: []Finding{
			NewWarning("url_no_https", 25, "no https"),
			NewWarning("url_ip_address", 40, "ip"),
			NewWarning("url_suspicious_keyword", 20, "login"),
			NewPositive("url_length_ok", 0, "short"),
		},
	}

	s := report.Summary()
	if s.CriticalCount != 1 || s.HighCount != 1 || s.MediumCount != 1 {
		t.Errorf("unexpected counts: %+v", s)
	}
	if s.PositiveCount != 1 {
		t.Errorf("expected 1 positive, got %d", s.PositiveCount)
	}
	if s.TotalWarnings() != 3 {
		t.Errorf("expected 3 warnings, got %d", s.TotalWarnings())
	}
	if len(report.Result.WarningsBySeverity(SeverityCritical)) != 1 {
		t.Error("expected one critical warning")
	}
	if len(report.Result.Positives()) != 1 {
		t.Error("expected one positive")
	}
}

func TestReportReject(t *testing.T) {
	t.Parallel()

	report := NewReport(ReportURL, "not a url")
	report.Reject("Invalid URL format")

	if !report.IsRejected() {
		t.Fatal("expected rejected report")
	}
	if report.HasScore() {
		t.Error("rejected report should not carry a score")
	}
	if report.Result.Level != LevelInvalid {
		t.Errorf("expected Invalid level, got %q", report.Result.Level)
	}
	if report.Result.Findings == nil || len(report.Result.Findings) != 0 {
		t.Error("rejected report should have an empty, non-nil findings list")
	}
}

func TestReportJSON(t *testing.T) {
	t.Parallel()

	report := NewReport(ReportBreach, "someone@example.com")
	report.Simulated = true
	report.AddDetail("Breaches", "2")

	data, err := json.Marshal(report)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}
	if decoded["simulated"] != true {
		t.Error("simulated flag must always be serialized")
	}
	if decoded["kind"] != "breach" {
		t.Errorf("expected kind breach, got %v", decoded["kind"])
	}
	if report.HasScore() {
		t.Error("breach reports carry no score")
	}
}
