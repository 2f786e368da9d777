package transform

import (
	"github.com/erraggy/specfold/dispatch"
	"github.com/erraggy/specfold/pass"
	"github.com/erraggy/specfold/resolver"
	"github.com/erraggy/specfold/specerrors"
)

// config carries the assembled pipeline settings.
type config struct {
	table         *dispatch.Table
	res           *resolver.Resolver
	classify      bool
	rootType      string
	maxIterations int
	runOnce       bool
	logger        resolver.Logger
	passes        []pass.Pass
}

// Option configures a transformation run.
type Option func(*config) error

// WithTable sets the dispatch table driving the typing pass. Without a
// table no typing pass runs.
func WithTable(t *dispatch.Table) Option {
	return func(c *config) error {
		if t == nil {
			return &specerrors.ConfigError{Option: "table", Message: "cannot be nil"}
		}
		c.table = t
		return nil
	}
}

// WithResolver sets the reference resolver backing the reference pass.
// Without a resolver $ref members are left in place untouched.
func WithResolver(r *resolver.Resolver) Option {
	return func(c *config) error {
		if r == nil {
			return &specerrors.ConfigError{Option: "resolver", Message: "cannot be nil"}
		}
		c.res = r
		return nil
	}
}

// WithPatternClassification enables or disables the pattern pass.
// Default: enabled.
func WithPatternClassification(enabled bool) Option {
	return func(c *config) error {
		c.classify = enabled
		return nil
	}
}

// WithRootType seeds the root node's type tag before the first pass, so
// dispatch typing has somewhere to start on untyped input. A root that
// already carries a specification type beyond its generic kind name is
// left alone.
func WithRootType(typeTag string) Option {
	return func(c *config) error {
		c.rootType = typeTag
		return nil
	}
}

// WithMaxIterations caps the scheduler. Zero keeps the default; returns an
// error for negative values.
func WithMaxIterations(n int) Option {
	return func(c *config) error {
		if n < 0 {
			return &specerrors.ConfigError{Option: "maxIterations", Message: "cannot be negative"}
		}
		c.maxIterations = n
		return nil
	}
}

// WithRunOnce runs a single pass cycle instead of iterating to a fixed
// point. The result reports Stable=false when that one cycle still
// changed the tree.
func WithRunOnce() Option {
	return func(c *config) error {
		c.runOnce = true
		return nil
	}
}

// WithLogger sets a structured logger for debug output. By default, no
// logging is performed.
func WithLogger(l resolver.Logger) Option {
	return func(c *config) error {
		if l != nil {
			c.logger = l
		}
		return nil
	}
}

// WithPasses replaces the standard pipeline with an explicit pass
// sequence. The table, resolver, and classification options are ignored
// when set.
func WithPasses(passes ...pass.Pass) Option {
	return func(c *config) error {
		if len(passes) == 0 {
			return &specerrors.ConfigError{Option: "passes", Message: "cannot be empty"}
		}
		c.passes = passes
		return nil
	}
}
