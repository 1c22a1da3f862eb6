package phishing

import (
	"log/slog"
	"net/url"
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"

	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/rule"
)

const maxPort = 65535

// InvalidURLMessage is shown when the input is not an absolute URL.
const InvalidURLMessage = "Invalid URL format. Please enter a valid URL (e.g., https://example.com)"

// DefaultBrands are the brand keywords a host may impersonate.
var DefaultBrands = []string{
	"paypal", "amazon", "apple", "google", "microsoft", "bank", "security",
	"verify", "confirm", "update", "validate", "authenticate", "facebook",
	"instagram", "twitter", "linkedin", "wells", "chase", "discover",
}

// DefaultSuspiciousKeywords are the keywords looked for in the path and query.
var DefaultSuspiciousKeywords = []string{
	"verify", "confirm", "update", "login", "secure", "validate",
	"authenticate", "account", "payment", "billing", "reset", "activate",
}

// Analysis is the result of scoring one URL.
type Analysis struct {
	model.ScoreResult

	// URL is the trimmed input.
	URL string `json:"url"`

	// Host is the lowercased ASCII hostname the host checks ran against.
	// Internationalized names appear in punycode.
	Host string `json:"host,omitempty"`

	// UnicodeHost is the decoded hostname when it differs from Host.
	UnicodeHost string `json:"unicode_host,omitempty"`

	// Rejected holds the user-facing message when the input is not a URL.
	Rejected string `json:"rejected,omitempty"`
}

// IsValid reports whether the input was scored.
func (a Analysis) IsValid() bool {
	return a.Rejected == ""
}

// target is a parsed URL as seen by the rules.
type target struct {
	raw    string
	scheme string
	// host is the ASCII (punycode) form; unicodeHost is the decoded NFC form.
	host        string
	unicodeHost string
	path        string
	query       string
	port        string
}

// Analyzer scores URLs.
// An Analyzer is safe for concurrent use.
type Analyzer struct {
	engine *rule.Engine[target]
}

// Option configures an Analyzer.
type Option func(*analyzerOptions)

type analyzerOptions struct {
	brands   []string
	keywords []string
	logger   *slog.Logger
}

// WithBrands replaces the brand keyword list. An empty list keeps the default.
func WithBrands(brands []string) Option {
	return func(o *analyzerOptions) {
		if len(brands) > 0 {
			o.brands = brands
		}
	}
}

// WithSuspiciousKeywords replaces the path and query keyword list.
// An empty list keeps the default.
func WithSuspiciousKeywords(keywords []string) Option {
	return func(o *analyzerOptions) {
		if len(keywords) > 0 {
			o.keywords = keywords
		}
	}
}

// WithLogger sets the logger passed to the rule engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *analyzerOptions) {
		o.logger = logger
	}
}

// NewAnalyzer creates an Analyzer with the built-in rules.
func NewAnalyzer(opts ...Option) *Analyzer {
	o := &analyzerOptions{
		brands:   DefaultBrands,
		keywords: DefaultSuspiciousKeywords,
	}
	for _, opt := range opts {
		opt(o)
	}

	engine := rule.NewEngine[target](model.URLBands, rule.WithLogger(o.logger))
	engine.AddRules(
		rule.New("https", httpsRule),
		rule.New("brand_mimicry", brandRule(lowerAll(o.brands))),
		rule.New("ip_address", ipRule),
		rule.New("subdomains", subdomainRule),
		rule.New("idn_spoofing", idnRule),
		rule.New("hyphens", hyphenRule),
		rule.New("suspicious_keyword", keywordRule(lowerAll(o.keywords))),
		rule.New("length", lengthRule),
		rule.New("port", portRule),
		rule.New("numeric_domain", numericDomainRule),
	)
	engine.AddFinalizer(nominalScore)

	return &Analyzer{engine: engine}
}

// Analyze scores raw. Leading and trailing whitespace is ignored.
// Input that is not an absolute URL is rejected with level Invalid,
// score 0 and no findings.
func (a *Analyzer) Analyze(raw string) Analysis {
	raw = strings.TrimSpace(raw)
	t, ok := parse(raw)
	if !ok {
		return Analysis{
			ScoreResult: model.ScoreResult{Score: 0, Level: model.LevelInvalid, Findings: []model.Finding{}},
			URL:         raw,
			Rejected:    InvalidURLMessage,
		}
	}

	analysis := Analysis{
		ScoreResult: a.engine.Evaluate(t),
		URL:         raw,
		Host:        t.host,
	}
	if t.unicodeHost != t.host {
		analysis.UnicodeHost = t.unicodeHost
	}
	return analysis
}

// Analyze scores raw with the default Analyzer.
func Analyze(raw string) Analysis {
	return defaultAnalyzer.Analyze(raw)
}

var defaultAnalyzer = NewAnalyzer()

// parse splits raw into the parts the rules look at.
func parse(raw string) (target, bool) {
	if raw == "" {
		return target{}, false
	}
	u, err := url.Parse(raw)
	if err != nil || u.Scheme == "" || u.Hostname() == "" || !validPort(u.Port()) {
		return target{}, false
	}

	query := ""
	if u.RawQuery != "" {
		query = "?" + u.RawQuery
	}

	return target{
		raw:    raw,
		scheme: strings.ToLower(u.Scheme),
		host:        asciiHost(u.Hostname()),
		unicodeHost: decodeHost(u.Hostname()),
		path:        strings.ToLower(u.EscapedPath()),
		query:       strings.ToLower(query),
		port:        u.Port(),
	}, true
}

// validPort reports whether port is empty or a number in [0, 65535].
func validPort(port string) bool {
	if port == "" {
		return true
	}
	n, err := strconv.Atoi(port)
	return err == nil && n >= 0 && n <= maxPort
}

// asciiHost lowercases host and converts Unicode labels to punycode.
// Hosts that fail to convert are kept lowercased.
func asciiHost(host string) string {
	host = strings.ToLower(host)
	if encoded, err := idna.ToASCII(host); err == nil {
		return encoded
	}
	return host
}

// decodeHost lowercases host and converts punycode labels to Unicode in NFC.
// Hosts that fail to decode are kept as they are.
func decodeHost(host string) string {
	host = strings.ToLower(host)
	if decoded, err := idna.ToUnicode(host); err == nil {
		host = decoded
	}
	return norm.NFC.String(host)
}

func lowerAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			out = append(out, w)
		}
	}
	return out
}
