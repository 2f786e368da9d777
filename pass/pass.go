package pass

import (
	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

// DefaultMaxIterations bounds RunUntilStable when no explicit cap is
// configured. Convergence past this bound is best-effort: the last
// computed tree is returned unstabilized.
const DefaultMaxIterations = 8

// Pass is one named transformation stage. Apply receives the scheduler's
// working tree and returns the (possibly identical) replacement; returning
// the input unchanged means "no change", which is not an error.
type Pass interface {
	Name() string
	Apply(root *node.Node) (*node.Node, error)
}

// ChangeReporter is an optional Pass refinement: passes that know better
// than structural comparison whether their output should trigger another
// scheduler cycle implement it. The default policy is !node.Equal.
type ChangeReporter interface {
	Changed(before, after *node.Node) bool
}

// Func adapts a function to the Pass interface.
type Func struct {
	name string
	fn   func(root *node.Node) (*node.Node, error)
}

// NewFunc builds a Pass from a name and a function.
func NewFunc(name string, fn func(root *node.Node) (*node.Node, error)) Func {
	return Func{name: name, fn: fn}
}

// Name implements Pass.
func (f Func) Name() string { return f.name }

// Apply implements Pass.
func (f Func) Apply(root *node.Node) (*node.Node, error) { return f.fn(root) }

// Result is the outcome of a scheduler run.
type Result struct {
	// Node is the final tree: the stable tree when Stable is true,
	// otherwise the last computed tree.
	Node *node.Node
	// Iterations is the number of full cycles executed.
	Iterations int
	// Stable reports whether an iteration completed with no pass
	// reporting a change.
	Stable bool
}

// Runner sequences passes over a tree. A Runner holds no cross-iteration
// state beyond the working tree, so one Runner may be used on independent
// trees concurrently; a single call owns its working tree end to end.
type Runner struct {
	passes        []Pass
	maxIterations int
}

// Option configures a Runner.
type Option func(*Runner)

// WithMaxIterations caps RunUntilStable. Non-positive values keep the
// default.
func WithMaxIterations(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.maxIterations = n
		}
	}
}

// NewRunner builds a Runner over the given passes, executed in order.
func NewRunner(passes []Pass, opts ...Option) *Runner {
	r := &Runner{
		passes:        passes,
		maxIterations: DefaultMaxIterations,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RunOnce executes every pass exactly once, feeding each pass's output to
// the next. It returns the final tree and whether any pass reported a
// change. On a pass error the tree produced so far is returned alongside
// a *specerrors.PassError.
func (r *Runner) RunOnce(root *node.Node) (*node.Node, bool, error) {
	return r.runCycle(root, 1)
}

// RunUntilStable repeats the full pass sequence until an iteration
// completes with no reported change, or the iteration cap is exhausted.
// When the cap is hit the last computed tree is still returned with
// Stable=false; callers must not assume semantic completeness in that
// case.
func (r *Runner) RunUntilStable(root *node.Node) (*Result, error) {
	current := root
	for i := 1; i <= r.maxIterations; i++ {
		next, changed, err := r.runCycle(current, i)
		if err != nil {
			return &Result{Node: next, Iterations: i, Stable: false}, err
		}
		current = next
		if !changed {
			return &Result{Node: current, Iterations: i, Stable: true}, nil
		}
	}
	return &Result{Node: current, Iterations: r.maxIterations, Stable: false}, nil
}

// runCycle executes one full pass sequence. The returned tree is always
// the most recent successfully produced tree, even on error.
func (r *Runner) runCycle(root *node.Node, iteration int) (*node.Node, bool, error) {
	current := root
	changed := false
	for _, p := range r.passes {
		next, err := p.Apply(current)
		if err != nil {
			return current, changed, &specerrors.PassError{
				Pass:      p.Name(),
				Iteration: iteration,
				Cause:     err,
			}
		}
		if next == nil {
			next = current
		}
		if passChanged(p, current, next) {
			changed = true
		}
		current = next
	}
	return current, changed, nil
}

// passChanged applies the pass's change policy, defaulting to structural
// inequality.
func passChanged(p Pass, before, after *node.Node) bool {
	if cr, ok := p.(ChangeReporter); ok {
		return cr.Changed(before, after)
	}
	return !node.Equal(before, after)
}
