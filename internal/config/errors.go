package config

import "errors"

// Configuration validation errors returned by Config.Validate.
// Callers can test them with errors.Is.
var (
	// ErrInvalidBatchSize is returned when the batch size is not positive.
	ErrInvalidBatchSize = errors.New("invalid batch size: must be positive")

	// ErrConflictingReportFormats is returned when both --json and --markdown
	// are specified. Only one output format can be used at a time.
	ErrConflictingReportFormats = errors.New("conflicting report formats: --json and --markdown cannot be used together")

	// ErrInvalidLength is returned when the password length is out of range.
	ErrInvalidLength = errors.New("invalid password length: must be between 4 and 32")

	// ErrInvalidCount is returned when the number of passwords to generate
	// is not between 1 and MaxPasswordCount.
	ErrInvalidCount = errors.New("invalid password count: must be between 1 and 100")

	// ErrConfigNotFound is returned when the configuration file does not exist.
	ErrConfigNotFound = errors.New("configuration file not found")
)
