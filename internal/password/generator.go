package password

import (
	cryptorand "crypto/rand"
	"errors"
	"math/rand/v2"
	"strings"
)

// Character pools used by Generate, in concatenation order.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
)

// ErrEmptyCharset is returned when no character type is selected.
var ErrEmptyCharset = errors.New("select at least one character type")

// CharsetSelection selects the character pools used by Generate.
// At least one field must be true.
type CharsetSelection struct {
	Uppercase bool
	Lowercase bool
	Digits    bool
	Symbols   bool
}

// AllCharsets selects every pool.
func AllCharsets() CharsetSelection {
	return CharsetSelection{Uppercase: true, Lowercase: true, Digits: true, Symbols: true}
}

// Alphabet returns the concatenation of the selected pools.
func (c CharsetSelection) Alphabet() string {
	var b strings.Builder
	if c.Uppercase {
		b.WriteString(Uppercase)
	}
	if c.Lowercase {
		b.WriteString(Lowercase)
	}
	if c.Digits {
		b.WriteString(Digits)
	}
	if c.Symbols {
		b.WriteString(Symbols)
	}
	return b.String()
}

// Generator draws passwords from the selected character pools.
// A Generator is not safe for concurrent use.
type Generator struct {
	rng *rand.Rand
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithRand sets the random source, e.g. a seeded one in tests.
// A nil source keeps the default.
func WithRand(r *rand.Rand) GeneratorOption {
	return func(g *Generator) {
		if r != nil {
			g.rng = r
		}
	}
}

// NewGenerator creates a Generator backed by a ChaCha8 source seeded by
// crypto/rand unless WithRand is given.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = newSource()
	}
	return g
}

// Generate returns length characters drawn uniformly from the selected pools.
// A non-positive length yields an empty string.
func (g *Generator) Generate(length int, charset CharsetSelection) (string, error) {
	alphabet := []rune(charset.Alphabet())
	if len(alphabet) == 0 {
		return "", ErrEmptyCharset
	}
	if length <= 0 {
		return "", nil
	}

	out := make([]rune, length)
	for i := range out {
		out[i] = alphabet[g.rng.IntN(len(alphabet))]
	}
	return string(out), nil
}

// Generate returns a password from a freshly seeded Generator.
func Generate(length int, charset CharsetSelection) (string, error) {
	return NewGenerator().Generate(length, charset)
}

func newSource() *rand.Rand {
	var seed [32]byte
	cryptorand.Read(seed[:]) //nolint:errcheck // crypto/rand.Read never fails since Go 1.24
	return rand.New(rand.NewChaCha8(seed))
}
