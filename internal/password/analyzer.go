package password

import (
	"log/slog"
	"math"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/rule"
)

// maxSuggestions is the number of remediation messages kept in an Analysis.
const maxSuggestions = 4

// DefaultWeakPasswords is the built-in weak-password dictionary.
var DefaultWeakPasswords = []string{"password", "admin", "letmein", "welcome", "monkey", "dragon", "123456"}

// Analysis is the result of scoring one password.
type Analysis struct {
	model.ScoreResult

	// Suggestions are the first remediation messages, in rule order.
	Suggestions []string `json:"suggestions"`

	// CharClasses lists the detected character classes.
	CharClasses []string `json:"char_classes"`

	// Entropy is the rough entropy estimate in bits.
	Entropy float64 `json:"entropy"`

	// Estimate is the informational zxcvbn estimate.
	Estimate Estimate `json:"estimate"`
}

// Analyzer scores passwords.
// An Analyzer is safe for concurrent use.
type Analyzer struct {
	engine *rule.Engine[string]
}

// Option configures an Analyzer.
type Option func(*analyzerOptions)

type analyzerOptions struct {
	extraWeak []string
	logger    *slog.Logger
}

// WithExtraWeakPasswords extends the weak-password dictionary.
// Entries are matched case-insensitively; empty entries are ignored.
func WithExtraWeakPasswords(words []string) Option {
	return func(o *analyzerOptions) {
		o.extraWeak = append(o.extraWeak, words...)
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
	o := &analyzerOptions{}
	for _, opt := range opts {
		opt(o)
	}

	dictionary := make([]string, 0, len(DefaultWeakPasswords)+len(o.extraWeak))
	for _, w := range append(append([]string{}, DefaultWeakPasswords...), o.extraWeak...) {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			dictionary = append(dictionary, w)
		}
	}

	engine := rule.NewEngine[string](model.PasswordBands, rule.WithLogger(o.logger))
	engine.AddRules(
		rule.New("length", lengthRule),
		rule.New("char_classes", classRule),
		rule.New("repeated_chars", repeatRule),
		rule.New("simple_pattern", simplePatternRule),
		rule.New("sequential", sequentialRule),
		rule.New("dictionary", dictionaryRule(dictionary)),
		rule.New("entropy", entropyRule),
	)

	return &Analyzer{engine: engine}
}

// Analyze scores pwd. It returns false for the empty string, which has no
// result rather than a zero score.
func (a *Analyzer) Analyze(pwd string) (Analysis, bool) {
	if pwd == "" {
		return Analysis{}, false
	}

	result := a.engine.Evaluate(pwd)
	classes := detectClasses(pwd)

	suggestions := make([]string, 0, maxSuggestions)
	for _, f := range result.Warnings() {
		if len(suggestions) == maxSuggestions {
			break
		}
		suggestions = append(suggestions, f.Message)
	}

	return Analysis{
		ScoreResult: result,
		Suggestions: suggestions,
		CharClasses: classes.labels(),
		Entropy:     math.Round(entropy(pwd, classes)*10) / 10,
		Estimate:    NewEstimate(pwd),
	}, true
}

// Analyze scores pwd with the default Analyzer.
func Analyze(pwd string) (Analysis, bool) {
	return defaultAnalyzer.Analyze(pwd)
}

var defaultAnalyzer = NewAnalyzer()

// entropy returns length * log2(pool), or 0 when no known class is present.
func entropy(pwd string, c charClasses) float64 {
	pool := c.poolSize()
	if pool == 0 {
		return 0
	}
	return float64(utf8.RuneCountInString(pwd)) * math.Log2(float64(pool))
}
