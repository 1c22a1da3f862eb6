package breach

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf16"
)

// ErrInvalidEmail is returned when the address is empty, has no '@', or has
// nothing after it.
var ErrInvalidEmail = errors.New("please enter a valid email address")

// Breach describes a single data breach.
type Breach struct {
	Name       string `json:"name"`
	Title      string `json:"title"`
	BreachDate string `json:"breach_date"`
	PwnCount   int64  `json:"pwn_count"`
}

// Result is the outcome of a lookup.
type Result struct {
	Email    string   `json:"email"`
	Breached bool     `json:"breached"`
	Message  string   `json:"message"`
	Breaches []Breach `json:"breaches"`
	Actions  []string `json:"actions"`

	// Simulated is true when the result was not obtained from a real breach
	// database. It is always serialised.
	Simulated bool `json:"simulated"`
}

// Checker looks up an email address.
type Checker interface {
	Lookup(ctx context.Context, email string) (Result, error)
}

// Recommended actions.
var (
	BreachedActions = []string{
		"Change your password immediately",
		"Use a strong, unique password (16+ characters with mixed case)",
		"Enable two-factor authentication (2FA)",
		"Check other accounts using the same password",
		"Monitor your account for suspicious activity",
		"Consider a credit freeze if financial data was exposed",
	}

	CleanActions = []string{
		"Your email appears to be safe",
		"Continue using strong passwords",
		"Enable two-factor authentication",
		"Regularly check for new breaches",
	}
)

// NotFoundMessage is the message of a clean result.
const NotFoundMessage = "Good news! This email was not found in any known data breaches."

// FoundMessage returns the message of a breached result.
func FoundMessage(n int) string {
	return fmt.Sprintf("This email was found in %d data breach(es).", n)
}

// Domain validates email and returns the part after the first '@'.
func Domain(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || !strings.Contains(email, "@") {
		return "", ErrInvalidEmail
	}
	domain := strings.Split(email, "@")[1]
	if domain == "" {
		return "", ErrInvalidEmail
	}
	return domain, nil
}

// seed is the first UTF-16 code unit of domain plus its length in UTF-16 units.
func seed(domain string) int {
	units := utf16.Encode([]rune(domain))
	if len(units) == 0 {
		return 0
	}
	return int(units[0]) + len(units)
}
