// Package phishing scores URLs for phishing indicators.
//
// Ten additive checks run in a fixed order over the scheme, host, path,
// query, port and length of the URL. A URL that raises no warning at all is
// given a nominal score of 5. Scores are clamped to [0, 100] and mapped to
// Safe, Suspicious or Dangerous.
//
// Internationalised hostnames are decoded from punycode and normalised to NFC
// before the host checks run, so look-alike characters are visible to them.
package phishing
