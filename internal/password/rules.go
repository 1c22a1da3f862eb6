package password

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/nao1215/secheck/internal/model"
)

// Symbols is the set of characters counted as symbols.
const Symbols = "!@#$%^&*()_+-=[]{}|;:,.<>?"

// Length thresholds. Each one reached adds lengthBonus points.
var lengthThresholds = []int{8, 12, 16, 20}

const (
	lengthBonus    = 15
	minLength      = 8
	longLength     = 32
	entropyBonus   = 10
	entropyMinBits = 80
)

// Penalty points.
const (
	repeatPenalty     = -10
	simplePenalty     = -5
	sequentialPenalty = -10
	dictionaryPenalty = -20
)

var simplePattern = regexp.MustCompile(`^[a-z]+[0-9]+$|^[0-9]+[a-z]+$`)

var sequences = []string{"123", "234", "345", "456", "567", "678", "789", "890", "012", "abc", "bcd", "cde"}

type charClasses struct {
	lower, upper, digits, symbols bool
}

func detectClasses(pwd string) charClasses {
	var c charClasses
	for _, r := range pwd {
		switch {
		case r >= 'a' && r <= 'z':
			c.lower = true
		case r >= 'A' && r <= 'Z':
			c.upper = true
		case r >= '0' && r <= '9':
			c.digits = true
		case strings.ContainsRune(Symbols, r):
			c.symbols = true
		}
	}
	return c
}

func (c charClasses) poolSize() int {
	size := 0
	if c.lower {
		size += 26
	}
	if c.upper {
		size += 26
	}
	if c.digits {
		size += 10
	}
	if c.symbols {
		size += 32
	}
	return size
}

func (c charClasses) labels() []string {
	labels := make([]string, 0, 4)
	if c.lower {
		labels = append(labels, "lowercase")
	}
	if c.upper {
		labels = append(labels, "UPPERCASE")
	}
	if c.digits {
		labels = append(labels, "numbers")
	}
	if c.symbols {
		labels = append(labels, "symbols")
	}
	return labels
}

func lengthRule(pwd string) []model.Finding {
	n := utf8.RuneCountInString(pwd)

	var findings []model.Finding
	bonus := 0
	for _, threshold := range lengthThresholds {
		if n >= threshold {
			bonus += lengthBonus
		}
	}
	if bonus > 0 {
		findings = append(findings, model.NewPositive("password_length", bonus,
			fmt.Sprintf("Length of %d characters", n)))
	}

	if n < minLength {
		findings = append(findings, model.NewWarning("password_too_short", 0,
			"Too short - use at least 8 characters"))
	}
	if n > longLength {
		findings = append(findings, model.NewWarning("password_too_long", 0,
			"Consider shortening - very long passwords may be hard to remember"))
	}
	return findings
}

func classRule(pwd string) []model.Finding {
	c := detectClasses(pwd)
	checks := []struct {
		present    bool
		points     int
		key        string
		positive   string
		suggestion string
	}{
		{c.lower, 15, "lowercase", "Contains lowercase letters", "Add lowercase letters (a-z)"},
		{c.upper, 15, "uppercase", "Contains uppercase letters", "Add uppercase letters (A-Z)"},
		{c.digits, 15, "digits", "Contains numbers", "Add numbers (0-9)"},
		{c.symbols, 20, "symbols", "Contains special characters", "Add special characters (!@#$%^&*)"},
	}

	findings := make([]model.Finding, 0, len(checks))
	for _, chk := range checks {
		if chk.present {
			findings = append(findings, model.NewPositive("password_has_"+chk.key, chk.points, chk.positive))
			continue
		}
		findings = append(findings, model.NewWarning("password_no_"+chk.key, 0, chk.suggestion))
	}
	return findings
}

// hasRepeat reports whether any character appears three or more times in a row.
func hasRepeat(pwd string) bool {
	var prev rune
	run := 0
	for _, r := range pwd {
		if run > 0 && r == prev {
			run++
		} else {
			run = 1
		}
		if run >= 3 {
			return true
		}
		prev = r
	}
	return false
}

func repeatRule(pwd string) []model.Finding {
	if !hasRepeat(pwd) {
		return nil
	}
	return []model.Finding{model.NewWarning("password_repeated_chars", repeatPenalty,
		"Avoid repeating characters (aaa, 111, etc.)")}
}

func simplePatternRule(pwd string) []model.Finding {
	if !simplePattern.MatchString(strings.ToLower(pwd)) {
		return nil
	}
	return []model.Finding{model.NewWarning("password_simple_pattern", simplePenalty,
		"Avoid simple patterns (letters then numbers)")}
}

func sequentialRule(pwd string) []model.Finding {
	lower := strings.ToLower(pwd)
	for _, seq := range sequences {
		if strings.Contains(lower, seq) {
			return []model.Finding{model.NewWarning("password_sequential", sequentialPenalty,
				"Avoid sequential patterns (123, abc, etc.)")}
		}
	}
	return nil
}

// dictionaryRule returns a rule that penalises passwords containing any
// word of dictionary. Words must already be lowercase.
func dictionaryRule(dictionary []string) func(string) []model.Finding {
	return func(pwd string) []model.Finding {
		lower := strings.ToLower(pwd)
		for _, word := range dictionary {
			if strings.Contains(lower, word) {
				return []model.Finding{model.NewWarning("password_dictionary", dictionaryPenalty,
					"Avoid common dictionary words")}
			}
		}
		return nil
	}
}

func entropyRule(pwd string) []model.Finding {
	bits := entropy(pwd, detectClasses(pwd))
	if bits <= entropyMinBits {
		return nil
	}
	return []model.Finding{model.NewPositive("password_high_entropy", entropyBonus,
		fmt.Sprintf("High entropy (%.1f bits)", bits))}
}
