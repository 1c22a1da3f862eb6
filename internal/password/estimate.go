package password

import (
	"github.com/nbutton23/zxcvbn-go"
)

// maxEstimatedLen limits how much of a password is passed to zxcvbn, whose
// running time grows quickly with length.
const maxEstimatedLen = 50

// Estimate is the informational zxcvbn estimate of a password.
type Estimate struct {
	// Score is the zxcvbn score from 0 (too guessable) to 4 (very unguessable).
	Score int `json:"score"`

	// CrackTime is a human-readable offline crack time, e.g. "3 hours".
	CrackTime string `json:"crack_time"`
}

// NewEstimate runs zxcvbn over the first maxEstimatedLen characters of pwd.
func NewEstimate(pwd string) Estimate {
	runes := []rune(pwd)
	if len(runes) > maxEstimatedLen {
		runes = runes[:maxEstimatedLen]
	}
	m := zxcvbn.PasswordStrength(string(runes), nil)
	return Estimate{
		Score:     m.Score,
		CrackTime: m.CrackTimeDisplay,
	}
}
