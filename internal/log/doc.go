// Package log provides slog loggers that never write analysed secrets.
//
// secheck handles passwords, email addresses and network names given by the
// user. Debug logging is useful when tuning rules, but those inputs must not
// end up in a terminal scrollback or a shared log file. SecureHandler wraps
// any slog.Handler and rewrites attributes before they are written:
//   - Keys such as "password", "pwd" or "passphrase" are replaced with MaskValue
//   - Email addresses keep only their first character and domain ("a***@example.com")
//   - Values that look like tokens or private keys are replaced with MaskValue
//
// Values are sanitised in verbose mode too.
//
// # Usage
//
//	logger := log.NewSecureLogger(os.Stderr, verbose)
//	slog.SetDefault(logger)
//
//	logger.Debug("lookup done", "email", "alice@example.com") // email=a***@example.com
package log
