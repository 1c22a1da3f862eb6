// Package model defines the core data structures used throughout secheck.
//
// This package contains the following main types:
//   - Finding: a single warning or positive indicator produced by a rule
//   - ScoreResult: the clamped score, level and findings of one analysis
//   - Report: a ScoreResult wrapped with the subject and analysis metadata
//   - Severity: the risk level of a finding, looked up in a central catalog
//
// The scorers, the rule engine and the report writers all import this package.
//
// The models are serializable to JSON for report output.
package model
