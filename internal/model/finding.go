package model

// FindingKind tells whether a finding raises risk or is a positive indicator.
type FindingKind string

const (
	// KindWarning marks a risk-increasing finding.
	KindWarning FindingKind = "warning"

	// KindPositive marks a positive indicator.
	KindPositive FindingKind = "positive"
)

// Finding is a single human-readable message produced by a rule.
type Finding struct {
	// Key is the stable identifier of the finding.
	// Warning keys are listed in the finding catalog (see severity.go).
	Key string `json:"key"`

	// Kind is either KindWarning or KindPositive.
	Kind FindingKind `json:"kind"`

	// Message is the text shown to the user.
	Message string `json:"message"`

	// Points is the signed contribution of this finding to the score.
	// Zero for purely informational findings.
	Points int `json:"points"`

	// Severity is looked up from the catalog when the finding is created.
	Severity Severity `json:"severity"`

	// SeverityText is the human-readable severity.
	SeverityText string `json:"severity_text"`
}

// NewWarning creates a warning finding. The severity comes from the catalog.
func NewWarning(key string, points int, message string) Finding {
	severity := GetSeverity(key)
	return Finding{
		Key:          key,
		Kind:         KindWarning,
		Message:      message,
		Points:       points,
		Severity:     severity,
		SeverityText: severity.String(),
	}
}

// NewPositive creates a positive indicator.
func NewPositive(key string, points int, message string) Finding {
	return Finding{
		Key:          key,
		Kind:         KindPositive,
		Message:      message,
		Points:       points,
		Severity:     SeverityInfo,
		SeverityText: SeverityInfo.String(),
	}
}

// IsWarning reports whether the finding is a warning.
func (f Finding) IsWarning() bool {
	return f.Kind == KindWarning
}

// Recommendation returns the catalog recommendation for the finding, if any.
func (f Finding) Recommendation() string {
	if !f.IsWarning() {
		return ""
	}
	return GetFindingInfo(f.Key).Recommendation
}
