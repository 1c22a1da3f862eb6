// Package wifi scores a WiFi network configuration.
//
// The score is a risk score: higher is worse. Encryption dominates it, and
// the SSID, channel and signal strength add smaller amounts. Scores are
// clamped to [0, 100] and mapped to Excellent, Good, Fair or Poor.
package wifi
