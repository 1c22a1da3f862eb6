package phishing

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nao1215/secheck/internal/model"
)

// Points added by each warning.
const (
	noHTTPSPoints      = 25
	brandPoints        = 35
	ipPoints           = 40
	subdomainPoints    = 20
	idnPoints          = 30
	hyphenPoints       = 15
	keywordPoints      = 20
	longURLPoints      = 15
	portPoints         = 10
	numericDomainPoint = 15
)

const (
	maxLabels       = 4
	standardLabels  = 3
	maxHyphens      = 2
	longURLLength   = 150
	shortURLLength  = 100
	nominalNoIssues = 5
)

var (
	ipPattern     = regexp.MustCompile(`^\d+\.\d+\.\d+\.\d+`)
	digitRun      = regexp.MustCompile(`\d{4,}`)
	standardPorts = []string{"80", "443", "8080", "8443"}
)

func httpsRule(t target) []model.Finding {
	if t.scheme != "https" {
		return []model.Finding{model.NewWarning("url_no_https", noHTTPSPoints,
			"Not using HTTPS - connection is NOT encrypted")}
	}
	return []model.Finding{model.NewPositive("url_https", 0, "Using secure HTTPS encryption")}
}

// brandRule flags hosts that contain a brand keyword without being that
// brand's .com or .org domain. Only the first matching brand is reported.
func brandRule(brands []string) func(target) []model.Finding {
	return func(t target) []model.Finding {
		for _, kw := range brands {
			if strings.Contains(t.host, kw) &&
				!strings.HasSuffix(t.host, kw+".com") &&
				!strings.HasSuffix(t.host, kw+".org") {
				return []model.Finding{model.NewWarning("url_brand_mimicry", brandPoints,
					fmt.Sprintf("Domain mimics %q but uses different domain", kw))}
			}
		}
		return []model.Finding{model.NewPositive("url_no_mimicry", 0, "Domain does not mimic well-known services")}
	}
}

func ipRule(t target) []model.Finding {
	if ipPattern.MatchString(t.host) {
		return []model.Finding{model.NewWarning("url_ip_address", ipPoints,
			"URL uses raw IP address instead of domain name - major red flag")}
	}
	return []model.Finding{model.NewPositive("url_domain_name", 0, "URL uses proper domain name, not IP address")}
}

func subdomainRule(t target) []model.Finding {
	labels := len(strings.Split(t.host, "."))
	switch {
	case labels > maxLabels:
		return []model.Finding{model.NewWarning("url_excessive_subdomains", subdomainPoints,
			fmt.Sprintf("Excessive subdomains (%d) - unusual structure", labels))}
	case labels <= standardLabels:
		return []model.Finding{model.NewPositive("url_standard_structure", 0, "Standard domain structure")}
	default:
		return nil
	}
}

// idnRule flags hosts whose decoded form has any non-ASCII rune.
func idnRule(t target) []model.Finding {
	if !hasNonASCII(t.unicodeHost) {
		return nil
	}
	return []model.Finding{model.NewWarning("url_idn_spoofing", idnPoints,
		"Domain contains non-ASCII characters - possible IDN spoofing")}
}

func hasNonASCII(s string) bool {
	for _, r := range s {
		if r > unicode.MaxASCII {
			return true
		}
	}
	return false
}

func hyphenRule(t target) []model.Finding {
	if strings.Count(t.host, "-") <= maxHyphens {
		return nil
	}
	return []model.Finding{model.NewWarning("url_many_hyphens", hyphenPoints,
		"Multiple hyphens in domain - possible domain spoofing")}
}

// keywordRule flags the first suspicious keyword found in the path or query.
func keywordRule(keywords []string) func(target) []model.Finding {
	return func(t target) []model.Finding {
		for _, kw := range keywords {
			if strings.Contains(t.path, kw) || strings.Contains(t.query, kw) {
				return []model.Finding{model.NewWarning("url_suspicious_keyword", keywordPoints,
					fmt.Sprintf("URL contains suspicious parameter: %q", kw))}
			}
		}
		return nil
	}
}

func lengthRule(t target) []model.Finding {
	n := utf8.RuneCountInString(t.raw)
	switch {
	case n > longURLLength:
		return []model.Finding{model.NewWarning("url_long", longURLPoints,
			"Unusually long URL - may hide malicious parameters")}
	case n <= shortURLLength:
		return []model.Finding{model.NewPositive("url_length_ok", 0, "URL length is reasonable")}
	default:
		return nil
	}
}

func portRule(t target) []model.Finding {
	if t.port == "" || slices.Contains(standardPorts, t.port) {
		return nil
	}
	return []model.Finding{model.NewWarning("url_nonstandard_port", portPoints,
		fmt.Sprintf("Non-standard port %s - unusual but not necessarily malicious", t.port))}
}

func numericDomainRule(t target) []model.Finding {
	first, _, _ := strings.Cut(t.host, ".")
	if !digitRun.MatchString(first) {
		return nil
	}
	return []model.Finding{model.NewWarning("url_numeric_domain", numericDomainPoint,
		"Domain contains many numbers - may be randomly generated")}
}

// nominalScore gives URLs without any warning a score of 5.
func nominalScore(total int, findings []model.Finding) (int, []model.Finding) {
	for _, f := range findings {
		if f.IsWarning() {
			return total, findings
		}
	}
	return nominalNoIssues, append(findings,
		model.NewPositive("url_no_indicators", 0, "No major phishing indicators detected"),
		model.NewPositive("url_legitimate_structure", 0, "Domain structure appears legitimate"),
	)
}
