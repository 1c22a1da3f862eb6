package model

// ScoreResult is the outcome of one analysis.
// It is recomputed from scratch for every input; nothing is carried over.
type ScoreResult struct {
	// Score is the clamped score in [MinScore, MaxScore].
	Score int `json:"score"`

	// Level is derived from Score through fixed bands.
	Level Level `json:"level"`

	// Findings are kept in rule evaluation order.
	Findings []Finding `json:"findings"`
}

// Warnings returns the warning findings in evaluation order.
func (r ScoreResult) Warnings() []Finding {
	return r.filter(KindWarning)
}

// Positives returns the positive findings in evaluation order.
func (r ScoreResult) Positives() []Finding {
	return r.filter(KindPositive)
}

// HasWarnings reports whether at least one warning was raised.
func (r ScoreResult) HasWarnings() bool {
	for _, f := range r.Findings {
		if f.IsWarning() {
			return true
		}
	}
	return false
}

// WarningsBySeverity returns the warnings of a specific severity level.
func (r ScoreResult) WarningsBySeverity(severity Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.IsWarning() && f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

func (r ScoreResult) filter(kind FindingKind) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Kind == kind {
			out = append(out, f)
		}
	}
	return out
}
