// Package main provides the entry point for the secheck CLI.
//
// secheck is a local security self-check toolkit. It scores password
// strength, generates passwords, rates URLs for phishing risk, audits WiFi
// configurations and runs a simulated breach lookup.
//
// Usage:
//
//	secheck password analyze <password>
//	secheck url <url>...
//	secheck wifi --ssid <name> --encryption <type>
//
// See --help for all available options.
package main

// main is the entry point for secheck.
func main() {
	Execute()
}
