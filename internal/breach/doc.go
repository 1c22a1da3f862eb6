// Package breach looks up whether an email address appears in known data
// breaches.
//
// Only a simulated source is provided. It derives a stable result from the
// email's domain and a fixed list of well-known breaches, and every result it
// returns is marked Simulated so callers can label it as demo data. No
// network request is ever made.
package breach
