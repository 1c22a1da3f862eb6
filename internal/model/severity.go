package model

// Severity represents the risk level of a finding.
// Warnings are ranked with it so reports can list the most serious issues first.
type Severity int

const (
	// SeverityInfo indicates informational findings with no direct security impact.
	// Every positive indicator is reported at this level.
	SeverityInfo Severity = iota

	// SeverityLow indicates minor issues with limited impact.
	// Examples: long URL, weak WiFi signal, short SSID.
	SeverityLow

	// SeverityMedium indicates moderate issues that warrant attention.
	// Examples: missing character classes, overlapping WiFi channel.
	SeverityMedium

	// SeverityHigh indicates serious issues.
	// Examples: dictionary passwords, brand mimicry, outdated WPA.
	SeverityHigh

	// SeverityCritical indicates issues that defeat the protection entirely.
	// Examples: raw IP address URLs, open or WEP networks.
	SeverityCritical
)

// String returns a human-readable representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "INFO"
	case SeverityLow:
		return "LOW"
	case SeverityMedium:
		return "MEDIUM"
	case SeverityHigh:
		return "HIGH"
	case SeverityCritical:
		return "CRITICAL"
	default:
		return "UNKNOWN"
	}
}

// FindingInfo contains metadata about a finding key including severity
// and a remediation recommendation.
type FindingInfo struct {
	Severity       Severity
	Recommendation string
}

// findingInfoMapping maps finding keys to their metadata.
// Only warning keys are listed; positive indicators fall back to SeverityInfo.
var findingInfoMapping = map[string]FindingInfo{
	// Password
	"password_too_short": {
		Severity:       SeverityHigh,
		Recommendation: "Use at least 12 characters; a passphrase of several random words is easiest to remember.",
	},
	"password_too_long": {
		Severity:       SeverityInfo,
		Recommendation: "Store very long passwords in a password manager instead of memorising them.",
	},
	"password_no_lowercase": {
		Severity:       SeverityMedium,
		Recommendation: "Mix lowercase letters into the password.",
	},
	"password_no_uppercase": {
		Severity:       SeverityMedium,
		Recommendation: "Mix uppercase letters into the password.",
	},
	"password_no_digits": {
		Severity:       SeverityMedium,
		Recommendation: "Mix digits into the password.",
	},
	"password_no_symbols": {
		Severity:       SeverityMedium,
		Recommendation: "Mix special characters into the password.",
	},
	"password_repeated_chars": {
		Severity:       SeverityMedium,
		Recommendation: "Avoid runs of the same character.",
	},
	"password_simple_pattern": {
		Severity:       SeverityMedium,
		Recommendation: "Avoid a word followed by a number; interleave character types instead.",
	},
	"password_sequential": {
		Severity:       SeverityHigh,
		Recommendation: "Avoid keyboard and alphabet sequences such as 123 or abc.",
	},
	"password_dictionary": {
		Severity:       SeverityCritical,
		Recommendation: "Never build a password around a commonly used password.",
	},

	// URL
	"url_no_https": {
		Severity:       SeverityHigh,
		Recommendation: "Do not enter credentials on pages served without HTTPS.",
	},
	"url_brand_mimicry": {
		Severity:       SeverityHigh,
		Recommendation: "Navigate to the brand's site directly instead of following the link.",
	},
	"url_ip_address": {
		Severity:       SeverityCritical,
		Recommendation: "Legitimate services use domain names; treat raw IP links as hostile.",
	},
	"url_excessive_subdomains": {
		Severity:       SeverityMedium,
		Recommendation: "Read the registrable domain at the end of the hostname, not the first label.",
	},
	"url_idn_spoofing": {
		Severity:       SeverityHigh,
		Recommendation: "Compare the hostname character by character; look-alike letters are a spoofing trick.",
	},
	"url_many_hyphens": {
		Severity:       SeverityMedium,
		Recommendation: "Be wary of hyphenated domains that stitch brand names together.",
	},
	"url_suspicious_keyword": {
		Severity:       SeverityMedium,
		Recommendation: "Account, login and billing links in messages are a common lure; open the site yourself.",
	},
	"url_long": {
		Severity:       SeverityLow,
		Recommendation: "Expand the full URL before trusting it; long URLs can hide the real destination.",
	},
	"url_nonstandard_port": {
		Severity:       SeverityLow,
		Recommendation: "Public websites rarely use unusual ports.",
	},
	"url_numeric_domain": {
		Severity:       SeverityLow,
		Recommendation: "Randomly generated domains often contain long digit runs.",
	},

	// WiFi
	"wifi_open": {
		Severity:       SeverityCritical,
		Recommendation: "Enable WPA2 or WPA3 encryption on the access point.",
	},
	"wifi_wep": {
		Severity:       SeverityCritical,
		Recommendation: "Replace WEP with WPA2 or WPA3; WEP keys can be recovered in minutes.",
	},
	"wifi_wpa": {
		Severity:       SeverityHigh,
		Recommendation: "Upgrade the access point to WPA2 or WPA3.",
	},
	"wifi_unknown_encryption": {
		Severity:       SeverityMedium,
		Recommendation: "Check the router admin panel to confirm which encryption is in use.",
	},
	"wifi_default_ssid": {
		Severity:       SeverityMedium,
		Recommendation: "Rename the network and change the router's default admin credentials.",
	},
	"wifi_public_ssid": {
		Severity:       SeverityMedium,
		Recommendation: "Use a VPN and avoid sensitive transactions on guest or public networks.",
	},
	"wifi_short_ssid": {
		Severity:       SeverityLow,
		Recommendation: "Pick a longer, custom network name.",
	},
	"wifi_hidden_ssid": {
		Severity:       SeverityInfo,
		Recommendation: "Hiding the SSID is not a security control; rely on encryption instead.",
	},
	"wifi_overlapping_channel": {
		Severity:       SeverityLow,
		Recommendation: "Move the 2.4 GHz radio to channel 1, 6 or 11.",
	},
	"wifi_weak_signal": {
		Severity:       SeverityLow,
		Recommendation: "Move the access point or add a mesh node to improve coverage.",
	},

	// Breach
	"breach_found": {
		Severity:       SeverityHigh,
		Recommendation: "Change the password of the affected account and every account that reuses it.",
	},
}

// GetSeverity returns the severity level for a finding key.
// Returns SeverityInfo if the key is not in the mapping.
func GetSeverity(key string) Severity {
	if info, ok := findingInfoMapping[key]; ok {
		return info.Severity
	}
	return SeverityInfo
}

// GetFindingInfo returns the full finding information for a finding key.
// Returns a default FindingInfo with SeverityInfo if the key is not in the mapping.
func GetFindingInfo(key string) FindingInfo {
	if info, ok := findingInfoMapping[key]; ok {
		return info
	}
	return FindingInfo{
		Severity:       SeverityInfo,
		Recommendation: "",
	}
}
