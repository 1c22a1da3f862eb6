package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/nao1215/secheck/internal/config"
	"github.com/nao1215/secheck/internal/model"
	"github.com/nao1215/secheck/internal/password"
)

// emptyPasswordMessage is shown for an empty password, which has no score.
const emptyPasswordMessage = "No password entered"

// NewPasswordCmd creates the password command and its subcommands.
func NewPasswordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "password",
		Short: "Analyze or generate passwords",
		Long: `Password scores password strength or generates random passwords.

Passwords never leave this machine and are never printed or logged; reports
identify each password by a short SHA3 fingerprint.`,
	}

	cmd.AddCommand(newPasswordAnalyzeCmd())
	cmd.AddCommand(newPasswordGenerateCmd())

	return cmd
}

func newPasswordAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze [password...]",
		Short: "Score the strength of passwords",
		Long: `Analyze scores each password from 0 to 100 and lists what weakens or strengthens it.

Levels: Weak (<30), Fair (<50), Good (<75), Strong (<90), Very Strong.

Passing passwords as arguments leaves them in the shell history. Prefer
--stdin, which reads one password per line.

Examples:
  # Read a password from standard input
  echo 'correct horse battery staple' | secheck password analyze --stdin

  # Analyze several passwords and write a Markdown report
  secheck password analyze --stdin -m -o report.md < passwords.txt`,
		Args: cobra.ArbitraryArgs,
		RunE: runPasswordAnalyzeCmd,
	}

	cmd.Flags().Bool("stdin", false, "Read passwords from standard input, one per line")
	addReportFlags(cmd)

	return cmd
}

func runPasswordAnalyzeCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logger := setupLogger(cmd, cfg.Verbose)

	passwords := args
	useStdin, err := cmd.Flags().GetBool("stdin")
	if err != nil {
		return err
	}
	if useStdin {
		lines, err := readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read passwords: %w", err)
		}
		passwords = append(passwords, lines...)
	}
	if len(passwords) == 0 {
		return errors.New("no passwords provided (pass them as arguments or use --stdin)")
	}

	analyzer := newPasswordAnalyzer(cfg, logger)
	reports := make([]*model.Report, 0, len(passwords))
	for _, pwd := range passwords {
		reports = append(reports, passwordReport(analyzer, pwd))
	}

	return outputReports(cmd, cfg, reports)
}

func newPasswordGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate random passwords",
		Long: `Generate prints random passwords, one per line.

By default passwords are 16 characters long and draw from uppercase and
lowercase letters, digits and symbols. Exclude a character type with the
--no-* flags; at least one type must remain.

Examples:
  # Generate one password
  secheck password generate

  # Generate five 24 character passwords without symbols
  secheck password generate -l 24 -n 5 --no-symbols

  # Generate a password and score it
  secheck password generate --analyze`,
		Args: cobra.NoArgs,
		RunE: runPasswordGenerateCmd,
	}

	cmd.Flags().IntP("length", "l", config.DefaultPasswordLength,
		fmt.Sprintf("Password length (%d-%d)", config.MinPasswordLength, config.MaxPasswordLength))
	cmd.Flags().IntP("count", "n", config.DefaultPasswordCount,
		fmt.Sprintf("Number of passwords to generate (1-%d)", config.MaxPasswordCount))
	cmd.Flags().Bool("no-upper", false, "Exclude uppercase letters")
	cmd.Flags().Bool("no-lower", false, "Exclude lowercase letters")
	cmd.Flags().Bool("no-digits", false, "Exclude digits")
	cmd.Flags().Bool("no-symbols", false, "Exclude symbols")
	cmd.Flags().BoolP("analyze", "a", false, "Score each generated password")
	addReportFlags(cmd)

	return cmd
}

func runPasswordGenerateCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	if err := readReportFlags(cmd, cfg); err != nil {
		return err
	}
	if cmd.Flags().Changed("length") {
		if cfg.PasswordLength, err = cmd.Flags().GetInt("length"); err != nil {
			return err
		}
	}
	if cfg.PasswordCount, err = cmd.Flags().GetInt("count"); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	charset, err := charsetFromFlags(cmd)
	if err != nil {
		return err
	}
	analyze, err := cmd.Flags().GetBool("analyze")
	if err != nil {
		return err
	}

	logger := setupLogger(cmd, cfg.Verbose)
	logger.Debug("generating passwords",
		"length", cfg.PasswordLength,
		"count", cfg.PasswordCount,
		"alphabet_size", len(charset.Alphabet()),
	)

	generator := password.NewGenerator()
	generated := make([]string, 0, cfg.PasswordCount)
	for range cfg.PasswordCount {
		pwd, err := generator.Generate(cfg.PasswordLength, charset)
		if err != nil {
			return err
		}
		generated = append(generated, pwd)
	}

	out := cmd.OutOrStdout()
	for _, pwd := range generated {
		fmt.Fprintln(out, pwd)
	}

	if !analyze {
		return nil
	}

	analyzer := newPasswordAnalyzer(cfg, logger)
	reports := make([]*model.Report, 0, len(generated))
	for _, pwd := range generated {
		reports = append(reports, passwordReport(analyzer, pwd))
	}
	return outputReports(cmd, cfg, reports)
}

// charsetFromFlags builds the generator charset from the --no-* flags.
func charsetFromFlags(cmd *cobra.Command) (password.CharsetSelection, error) {
	charset := password.AllCharsets()
	for name, field := range map[string]*bool{
		"no-upper":   &charset.Uppercase,
		"no-lower":   &charset.Lowercase,
		"no-digits":  &charset.Digits,
		"no-symbols": &charset.Symbols,
	} {
		excluded, err := cmd.Flags().GetBool(name)
		if err != nil {
			return charset, err
		}
		*field = !excluded
	}
	return charset, nil
}

// newPasswordAnalyzer builds an Analyzer with the configured weak passwords.
func newPasswordAnalyzer(cfg *config.Config, logger *slog.Logger) *password.Analyzer {
	opts := []password.Option{password.WithLogger(logger)}
	if cfg.File != nil {
		opts = append(opts, password.WithExtraWeakPasswords(cfg.File.Password.WeakPasswords))
	}
	return password.NewAnalyzer(opts...)
}

// passwordReport scores pwd and wraps the result in a report.
// The report identifies the password by its fingerprint only.
func passwordReport(analyzer *password.Analyzer, pwd string) *model.Report {
	analysis, ok := analyzer.Analyze(pwd)
	if !ok {
		r := model.NewReport(model.ReportPassword, "(empty)")
		r.Reject(emptyPasswordMessage)
		return r
	}

	r := model.NewReport(model.ReportPassword, password.Fingerprint(pwd))

	r.Result = analysis.ScoreResult
	r.AddDetail("Length", strconv.Itoa(utf8.RuneCountInString(pwd)))
	r.AddDetail("Character classes", orNone(strings.Join(analysis.CharClasses, ", ")))
	r.AddDetail("Entropy", fmt.Sprintf("%.1f bits", analysis.Entropy))
	r.AddDetail("zxcvbn score", fmt.Sprintf("%d/4", analysis.Estimate.Score))
	r.AddDetail("Estimated crack time", analysis.Estimate.CrackTime)
	r.Actions = analysis.Suggestions
	return r
}

// readLines reads r line by line, dropping empty lines.
// Surrounding spaces are kept because they are part of a password.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}

func orNone(s string) string {
	if s == "" {
		return "none"
	}
	return s
}
