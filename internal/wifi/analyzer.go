package wifi

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/rule"
)

var (
	// ErrMissingSSID is returned when the network name is empty.
	ErrMissingSSID = errors.New("SSID is required")

	// ErrMissingEncryption is returned when no encryption type is given.
	ErrMissingEncryption = errors.New("encryption type is required")

	// ErrInvalidChannel is returned for channel numbers below 1.
	ErrInvalidChannel = errors.New("channel must be a positive number")
)

// Network is the configuration being analysed.
type Network struct {
	// SSID is the network name. Required.
	SSID string

	// Encryption is the security protocol. Required.
	Encryption Encryption

	// Channel is the radio channel, or nil when not specified.
	Channel *int

	// Signal is the signal strength in dBm, or nil when not specified.
	Signal *int
}

// Validate checks the required fields.
func (n Network) Validate() error {
	if n.SSID == "" {
		return ErrMissingSSID
	}
	if n.Encryption == "" {
		return ErrMissingEncryption
	}
	if n.Channel != nil && *n.Channel < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidChannel, *n.Channel)
	}
	return nil
}

// Analysis is the result of scoring one network.
type Analysis struct {
	model.ScoreResult

	SSID       string         `json:"ssid"`
	Encryption Encryption     `json:"encryption"`
	Info       EncryptionInfo `json:"encryption_info"`
	Channel    string         `json:"channel"`
	Signal     string         `json:"signal"`
}

// Analyzer scores network configurations.
// An Analyzer is safe for concurrent use.
type Analyzer struct {
	engine *rule.Engine[Network]
}

// Option configures an Analyzer.
type Option func(*analyzerOptions)

type analyzerOptions struct {
	logger *slog.Logger
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

	engine := rule.NewEngine[Network](model.WiFiBands, rule.WithLogger(o.logger))
	engine.AddRules(
		rule.New("encryption", encryptionRule),
		rule.New("ssid", ssidRule),
		rule.New("hidden_ssid", hiddenRule),
		rule.New("channel", channelRule),
		rule.New("signal", signalRule),
	)
	engine.AddFinalizer(excellentConfig)

	return &Analyzer{engine: engine}
}

// Analyze validates and scores n.
func (a *Analyzer) Analyze(n Network) (Analysis, error) {
	if err := n.Validate(); err != nil {
		return Analysis{}, err
	}

	return Analysis{
		ScoreResult: a.engine.Evaluate(n),
		SSID:        n.SSID,
		Encryption:  n.Encryption,
		Info:        n.Encryption.Info(),
		Channel:     describe(n.Channel, ""),
		Signal:      describe(n.Signal, "dBm"),
	}, nil
}

// Analyze scores n with the default Analyzer.
func Analyze(n Network) (Analysis, error) {
	return defaultAnalyzer.Analyze(n)
}

var defaultAnalyzer = NewAnalyzer()

func describe(v *int, unit string) string {
	if v == nil {
		return "Not specified"
	}
	return fmt.Sprintf("%d%s", *v, unit)
}
