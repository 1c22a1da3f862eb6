package rule

import (
	"log/slog"

	"github.com/nao1215/secheck/internal/model"
)

// Rule is a single check executed by an Engine.
type Rule[T any] interface {
	// Evaluate inspects the input and returns zero or more findings.
	// It must not modify the input.
	Evaluate(input T) []model.Finding

	// Name returns the rule's name for logging purposes.
	Name() string
}

// Func adapts a plain function to the Rule interface.
type Func[T any] struct {
	name string
	fn   func(T) []model.Finding
}

// New returns a Rule named name that calls fn.
func New[T any](name string, fn func(T) []model.Finding) *Func[T] {
	return &Func[T]{name: name, fn: fn}
}

// Evaluate calls the wrapped function.
func (f *Func[T]) Evaluate(input T) []model.Finding {
	return f.fn(input)
}

// Name returns the rule name.
func (f *Func[T]) Name() string {
	return f.name
}

// Leveler maps a clamped score to a level. model.Bands implements it.
type Leveler interface {
	Level(score int) model.Level
}

// Finalizer adjusts the folded total and findings after every rule has run
// and before the total is clamped.
type Finalizer func(total int, findings []model.Finding) (int, []model.Finding)

// Engine executes rules in insertion order and folds their findings into a
// ScoreResult.
type Engine[T any] struct {
	// rules contains the ordered list of rules to execute.
	rules []Rule[T]

	// finalizers run after the fold, in insertion order.
	finalizers []Finalizer

	// leveler maps the final score to a level.
	leveler Leveler

	// logger is used for debug logging of each rule.
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets a custom logger for the engine.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// NewEngine creates an empty Engine that levels scores with leveler.
// Rules should be added using AddRule after creation.
func NewEngine[T any](leveler Leveler, opts ...Option) *Engine[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return &Engine[T]{
		rules:   make([]Rule[T], 0),
		leveler: leveler,
		logger:  o.logger,
	}
}

// AddRule appends a rule to the engine.
// Rules are executed in the order they are added.
func (e *Engine[T]) AddRule(r Rule[T]) {
	e.rules = append(e.rules, r)
}

// AddRules appends multiple rules to the engine.
func (e *Engine[T]) AddRules(rules ...Rule[T]) {
	e.rules = append(e.rules, rules...)
}

// AddFinalizer appends a finalizer to the engine.
func (e *Engine[T]) AddFinalizer(f Finalizer) {
	e.finalizers = append(e.finalizers, f)
}

// Evaluate runs every rule against input and returns the clamped result.
// The input is never logged; only rule names and point totals are.
func (e *Engine[T]) Evaluate(input T) model.ScoreResult {
	total := 0
	findings := make([]model.Finding, 0)

	for _, r := range e.rules {
		found := r.Evaluate(input)
		points := 0
		for _, f := range found {
			points += f.Points
		}
		total += points
		findings = append(findings, found...)

		e.logger.Debug("rule evaluated",
			"rule", r.Name(),
			"findings", len(found),
			"points", points,
		)
	}

	for _, fin := range e.finalizers {
		total, findings = fin(total, findings)
	}

	score := model.Clamp(total)
	return model.ScoreResult{
		Score:    score,
		Level:    e.leveler.Level(score),
		Findings: findings,
	}
}

// RuleCount returns the number of rules in the engine.
func (e *Engine[T]) RuleCount() int {
	return len(e.rules)
}

// RuleNames returns the names of all rules in execution order.
func (e *Engine[T]) RuleNames() []string {
	names := make([]string, len(e.rules))
	for i, r := range e.rules {
		names[i] = r.Name()
	}
	return names
}
