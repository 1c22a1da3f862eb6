package breach

import (
	"context"
	"log/slog"
	"slices"
	"strings"
)

// KnownBreaches are the breaches a simulated result is drawn from, in order.
var KnownBreaches = []Breach{
	{Name: "LinkedIn", BreachDate: "2021-04-09", PwnCount: 700605709, Title: "LinkedIn suffered a data breach"},
	{Name: "Facebook", BreachDate: "2021-04-03", PwnCount: 533000000, Title: "Facebook suffered a data breach"},
	{Name: "Twitter", BreachDate: "2020-12-17", PwnCount: 200000000, Title: "Twitter suffered a data breach"},
	{Name: "Yahoo", BreachDate: "2013-04-24", PwnCount: 3000000000, Title: "Yahoo suffered a massive data breach"},
	{Name: "Adobe", BreachDate: "2013-10-04", PwnCount: 153000000, Title: "Adobe suffered a data breach"},
	{Name: "Equifax", BreachDate: "2017-09-07", PwnCount: 147000000, Title: "Equifax suffered a data breach"},
	{Name: "Uber", BreachDate: "2016-11-14", PwnCount: 57000000, Title: "Uber suffered a data breach"},
	{Name: "Dropbox", BreachDate: "2012-07-01", PwnCount: 68000000, Title: "Dropbox suffered a data breach"},
	{Name: "Myspace", BreachDate: "2008-06-11", PwnCount: 360000000, Title: "Myspace suffered a data breach"},
	{Name: "Ashleymadison", BreachDate: "2015-08-18", PwnCount: 37000000, Title: "Ashley Madison suffered a data breach"},
}

// Simulator is a Checker that never contacts a breach database.
//
// Two thirds of domains are reported as breached, in one to five of the
// KnownBreaches. The same domain always gives the same result.
type Simulator struct {
	logger *slog.Logger
}

// NewSimulator creates a Simulator. A nil logger uses slog.Default().
func NewSimulator(logger *slog.Logger) *Simulator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Simulator{logger: logger}
}

// Lookup returns the simulated result for email.
func (s *Simulator) Lookup(ctx context.Context, email string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	domain, err := Domain(email)
	if err != nil {
		return Result{}, err
	}

	n := seed(domain)
	result := Result{
		Email:     strings.TrimSpace(email),
		Simulated: true,
		Breaches:  []Breach{},
	}

	if n%3 != 0 {
		count := n%5 + 1
		result.Breached = true
		result.Breaches = append(result.Breaches, KnownBreaches[:count]...)
		result.Message = FoundMessage(count)
		result.Actions = slices.Clone(BreachedActions)
	} else {
		result.Message = NotFoundMessage
		result.Actions = slices.Clone(CleanActions)
	}

	s.logger.Debug("simulated breach lookup",
		"email", result.Email,
		"breached", result.Breached,
		"breaches", len(result.Breaches),
	)
	return result, nil
}
