package config

// File represents the structure of the secheck configuration file.
type File struct {
	// BatchSize overrides the default batch concurrency.
	BatchSize int `yaml:"batch_size,omitempty"`

	// Password holds password analysis and generation settings.
	Password PasswordSettings `yaml:"password,omitempty"`

	// Phishing holds URL analysis settings.
	Phishing PhishingSettings `yaml:"phishing,omitempty"`
}

// PasswordSettings configures the password commands.
type PasswordSettings struct {
	// WeakPasswords extend the built-in weak-password dictionary.
	WeakPasswords []string `yaml:"weak_passwords,omitempty"`

	// Length is the default length of generated passwords.
	Length int `yaml:"length,omitempty"`
}

// PhishingSettings configures the URL command.
type PhishingSettings struct {
	// Brands replace the built-in list of impersonated brand keywords.
	Brands []string `yaml:"brands,omitempty"`

	// SuspiciousKeywords replace the built-in list of path and query keywords.
	SuspiciousKeywords []string `yaml:"suspicious_keywords,omitempty"`
}
