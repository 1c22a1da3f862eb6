package model

// Level is the categorical label derived from a score.
type Level string

// Password strength levels.
const (
	LevelWeak       Level = "Weak"
	LevelFair       Level = "Fair"
	LevelGood       Level = "Good"
	LevelStrong     Level = "Strong"
	LevelVeryStrong Level = "Very Strong"
)

// URL threat levels.
const (
	LevelSafe       Level = "Safe"
	LevelSuspicious Level = "Suspicious"
	LevelDangerous  Level = "Dangerous"
)

// WiFi security levels. Good and Fair are shared with the password scale.
const (
	LevelExcellent Level = "Excellent"
	LevelPoor      Level = "Poor"
)

// LevelInvalid is reported when the input was rejected before scoring.
const LevelInvalid Level = "Invalid"

// MinScore and MaxScore bound every score.
const (
	MinScore = 0
	MaxScore = 100
)

// Band maps every score up to and including Max to Level.
type Band struct {
	Max   int
	Level Level
}

// Bands is an ordered list of score bands, lowest Max first.
// The last band should have Max >= MaxScore so every score has a level.
type Bands []Band

// Level returns the level of the first band whose Max is >= score.
// Scores above every band get the last band's level.
func (b Bands) Level(score int) Level {
	for _, band := range b {
		if score <= band.Max {
			return band.Level
		}
	}
	if len(b) == 0 {
		return LevelInvalid
	}
	return b[len(b)-1].Level
}

// PasswordBands: <30 Weak, <50 Fair, <75 Good, <90 Strong, else Very Strong.
var PasswordBands = Bands{
	{Max: 29, Level: LevelWeak},
	{Max: 49, Level: LevelFair},
	{Max: 74, Level: LevelGood},
	{Max: 89, Level: LevelStrong},
	{Max: MaxScore, Level: LevelVeryStrong},
}

// URLBands: <=25 Safe, <=60 Suspicious, else Dangerous.
var URLBands = Bands{
	{Max: 25, Level: LevelSafe},
	{Max: 60, Level: LevelSuspicious},
	{Max: MaxScore, Level: LevelDangerous},
}

// WiFiBands: <=10 Excellent, <=30 Good, <=50 Fair, else Poor.
var WiFiBands = Bands{
	{Max: 10, Level: LevelExcellent},
	{Max: 30, Level: LevelGood},
	{Max: 50, Level: LevelFair},
	{Max: MaxScore, Level: LevelPoor},
}

// Clamp limits score to [MinScore, MaxScore].
func Clamp(score int) int {
	return max(MinScore, min(score, MaxScore))
}

// Breach lookup levels.
const (
	LevelBreached    Level = "Breached"
	LevelNotBreached Level = "Not Found"
)
