package health

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/Dallionking/aistudio-primer/internal/config"
	"github.com/Dallionking/aistudio-primer/internal/playground"
)

// ErrUnknownCategory is returned by RunCategory for a name no check is
// registered under.
var ErrUnknownCategory = errors.New("unknown health check category")

// Status represents the result of a single health check.
type Status int

const (
	StatusPass Status = iota
	StatusWarn
	StatusFail
)

// String returns the lowercase text representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusWarn:
		return "warn"
	case StatusFail:
		return "fail"
	default:
		return "unknown"
	}
}

// Symbol returns the display symbol for the status.
func (s Status) Symbol() string {
	switch s {
	case StatusPass:
		return "+"
	case StatusWarn:
		return "!"
	case StatusFail:
		return "x"
	default:
		return "?"
	}
}

// CheckResult holds the result of a single check.
type CheckResult struct {
	Name     string
	Category string // "config", "credentials", "runtime"
	Status   Status
	Message  string
	Duration time.Duration
}

// Report holds results of all checks.
type Report struct {
	Results  []CheckResult
	Passed   int
	Warned   int
	Failed   int
	Total    int
	Duration time.Duration
	Healthy  bool
}

// Check is a named, categorized health check function.
type Check struct {
	Name     string
	Category string
	Fn       func(ctx context.Context) CheckResult
}

// Options feeds the checker. Completer is only needed for the live ping.
type Options struct {
	Config     *config.Config
	ConfigFile string
	DotEnvPath string
	Completer  playground.Completer
	Ping       bool
}

// Checker runs the registered checks.
type Checker struct {
	checks []Check
	opts   Options
}

// NewChecker creates a checker for the given options.
func NewChecker(opts Options) *Checker {
	c := &Checker{opts: opts}
	c.registerChecks()
	return c
}

// Names returns the registered check names in run order.
func (c *Checker) Names() []string {
	names := make([]string, len(c.checks))
	for i, ch := range c.checks {
		names[i] = ch.Name
	}
	return names
}

// add registers a single check.
func (c *Checker) add(name, category string, fn func(ctx context.Context) CheckResult) {
	c.checks = append(c.checks, Check{
		Name:     name,
		Category: category,
		Fn:       fn,
	})
}

// RunAll runs every registered check and returns a report.
func (c *Checker) RunAll(ctx context.Context) *Report {
	return c.run(ctx, func(Check) bool { return true })
}

// Categories returns the categories with at least one registered check, in
// display order.
func (c *Checker) Categories() []string {
	var out []string
	for _, cat := range categoryOrder {
		for _, ch := range c.checks {
			if ch.Category == cat {
				out = append(out, cat)
				break
			}
		}
	}
	return out
}

// RunCategory runs only the checks matching the given category. A category
// with no registered checks is an error rather than an empty, healthy report.
func (c *Checker) RunCategory(ctx context.Context, category string) (*Report, error) {
	cats := c.Categories()
	if !slices.Contains(cats, category) {
		hint := strings.Join(cats, ", ")
		if category == "runtime" && !c.opts.Ping {
			hint += " (runtime needs --ping)"
		}
		return nil, fmt.Errorf("%w %q: want one of %s", ErrUnknownCategory, category, hint)
	}
	return c.run(ctx, func(ch Check) bool { return ch.Category == category }), nil
}

func (c *Checker) run(ctx context.Context, want func(Check) bool) *Report {
	start := time.Now()
	var results []CheckResult

	for _, ch := range c.checks {
		if !want(ch) {
			continue
		}
		if ctx.Err() != nil {
			results = append(results, CheckResult{
				Name:     ch.Name,
				Category: ch.Category,
				Status:   StatusFail,
				Message:  "context cancelled",
			})
			continue
		}
		t := time.Now()
		r := ch.Fn(ctx)
		r.Duration = time.Since(t)
		r.Name = ch.Name
		r.Category = ch.Category
		results = append(results, r)
	}

	return buildReport(results, time.Since(start))
}

// buildReport aggregates a slice of results into a Report.
func buildReport(results []CheckResult, dur time.Duration) *Report {
	r := &Report{
		Results:  results,
		Total:    len(results),
		Duration: dur,
	}
	for _, res := range results {
		switch res.Status {
		case StatusPass:
			r.Passed++
		case StatusWarn:
			r.Warned++
		case StatusFail:
			r.Failed++
		}
	}
	r.Healthy = r.Failed == 0
	return r
}
