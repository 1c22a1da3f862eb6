package model

import "time"

// ReportKind identifies which analyzer produced a report.
type ReportKind string

const (
	// ReportPassword is produced by the password strength scorer.
	ReportPassword ReportKind = "password"

	// ReportURL is produced by the URL risk scorer.
	ReportURL ReportKind = "url"

	// ReportWiFi is produced by the WiFi configuration scorer.
	ReportWiFi ReportKind = "wifi"

	// ReportBreach is produced by the breach lookup. It carries no score.
	ReportBreach ReportKind = "breach"
)

// Title returns the report heading for the kind.
func (k ReportKind) Title() string {
	switch k {
	case ReportPassword:
		return "Password Strength"
	case ReportURL:
		return "URL Phishing Risk"
	case ReportWiFi:
		return "WiFi Security"
	case ReportBreach:
		return "Breach Lookup"
	default:
		return "Analysis"
	}
}

// Detail is a labelled value specific to one kind of analysis,
// e.g. the entropy estimate of a password or the encryption of a network.
type Detail struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Report wraps a ScoreResult with what was analyzed and when.
// Every report writer renders this one type.
type Report struct {
	// Kind is the analyzer that produced the report.
	Kind ReportKind `json:"kind"`

	// Subject identifies what was analyzed. For passwords this is a
	// fingerprint, never the password itself.
	Subject string `json:"subject"`

	// DateAnalyzed is when the analysis was performed.
	DateAnalyzed time.Time `json:"date_analyzed"`

	// Result is the score, level and findings.
	Result ScoreResult `json:"result"`

	// Rejected holds the user-facing message when the input was rejected.
	Rejected string `json:"rejected,omitempty"`

	// Simulated marks results built from local demo data rather than a real source.
	Simulated bool `json:"simulated"`

	// Details are kind-specific values shown under the summary.
	Details []Detail `json:"details,omitempty"`

	// Actions are recommended next steps.
	Actions []string `json:"actions,omitempty"`
}

// NewReport creates a new Report for the given kind and subject.
func NewReport(kind ReportKind, subject string) *Report {
	return &Report{
		Kind:         kind,
		Subject:      subject,
		DateAnalyzed: time.Now(),
	}
}

// AddDetail appends a labelled value to the report.
func (r *Report) AddDetail(label, value string) {
	r.Details = append(r.Details, Detail{Label: label, Value: value})
}

// Reject marks the report as rejected with a user-facing message.
func (r *Report) Reject(message string) {
	r.Rejected = message
	r.Result = ScoreResult{Score: 0, Level: LevelInvalid, Findings: []Finding{}}
}

// IsRejected reports whether the input was rejected.
func (r *Report) IsRejected() bool {
	return r.Rejected != ""
}

// HasScore reports whether the report carries a meaningful numeric score.
func (r *Report) HasScore() bool {
	return r.Kind != ReportBreach && !r.IsRejected()
}

// Summary counts warnings by severity.
type Summary struct {
	CriticalCount int `json:"critical_count"`
	HighCount     int `json:"high_count"`
	MediumCount   int `json:"medium_count"`
	LowCount      int `json:"low_count"`
	InfoCount     int `json:"info_count"`
	PositiveCount int `json:"positive_count"`
}

// TotalWarnings returns the number of warnings across all severities.
func (s Summary) TotalWarnings() int {
	return s.CriticalCount + s.HighCount + s.MediumCount + s.LowCount + s.InfoCount
}

// Summary counts the report's findings.
func (r *Report) Summary() Summary {
	var s Summary
	for _, f := range r.Result.Findings {
		if !f.IsWarning() {
			s.PositiveCount++
			continue
		}
		switch f.Severity {
		case SeverityCritical:
			s.CriticalCount++
		case SeverityHigh:
			s.HighCount++
		case SeverityMedium:
			s.MediumCount++
		case SeverityLow:
			s.LowCount++
		default:
			s.InfoCount++
		}
	}
	return s
}
