package transform

import (
	"context"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/pass"
	"github.com/erraggy/specfold/resolver"
	"github.com/erraggy/specfold/specerrors"
)

// Result is the outcome of a transformation run.
type Result struct {
	// Node is the enriched tree. On a pass error it is the last tree the
	// scheduler produced before the failure.
	Node *node.Node
	// Iterations is the number of scheduler cycles executed.
	Iterations int
	// Stable reports whether the run converged.
	Stable bool
	// Diagnostics aggregates every diagnostic recorded on the tree's
	// nodes, in document order.
	Diagnostics []node.Diagnostic
}

// Transform runs the standard pipeline with default settings over a copy
// of root. The input tree is never modified.
func Transform(ctx context.Context, root *node.Node) (*Result, error) {
	return TransformWithOptions(ctx, root)
}

// TransformWithOptions assembles a pass pipeline from the options and runs
// it over a copy of root until the tree stabilizes.
//
// The standard pipeline is: dispatch typing (when a table is configured),
// reference substitution (when a resolver is configured), then pattern
// classification. WithPasses replaces the whole pipeline. The input tree
// is cloned up front and never modified; on a pass error the partial
// result is returned alongside the error.
func TransformWithOptions(ctx context.Context, root *node.Node, opts ...Option) (*Result, error) {
	if root == nil {
		return nil, &specerrors.ConfigError{Option: "root", Message: "cannot be nil"}
	}

	cfg := &config{
		classify: true,
		logger:   resolver.NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	work := root.Clone()
	if cfg.rootType != "" && !work.Typed() {
		work.TypeTag = cfg.rootType
	}

	passes := cfg.passes
	if passes == nil {
		if cfg.table != nil {
			passes = append(passes, dispatchPass{table: cfg.table})
		}
		if cfg.res != nil {
			passes = append(passes, referencePass{ctx: ctx, res: cfg.res, logger: cfg.logger})
		}
		if cfg.classify {
			passes = append(passes, patternPass{})
		}
	}

	runner := pass.NewRunner(passes, pass.WithMaxIterations(cfg.maxIterations))

	var res *pass.Result
	var err error
	if cfg.runOnce {
		var tree *node.Node
		var changed bool
		tree, changed, err = runner.RunOnce(work)
		res = &pass.Result{Node: tree, Iterations: 1, Stable: !changed}
	} else {
		res, err = runner.RunUntilStable(work)
	}

	result := &Result{
		Node:        res.Node,
		Iterations:  res.Iterations,
		Stable:      res.Stable,
		Diagnostics: collectDiagnostics(res.Node),
	}
	if err != nil {
		return result, err
	}

	cfg.logger.Debug("transform complete",
		"iterations", result.Iterations,
		"stable", result.Stable,
		"diagnostics", len(result.Diagnostics))
	return result, nil
}

// collectDiagnostics walks the tree in document order and gathers every
// node-level diagnostic.
func collectDiagnostics(root *node.Node) []node.Diagnostic {
	if root == nil {
		return nil
	}
	var out []node.Diagnostic
	var walk func(n *node.Node)
	walk = func(n *node.Node) {
		out = append(out, n.Diagnostics()...)
		switch n.Kind {
		case node.KindArray:
			for _, item := range n.Items {
				walk(item)
			}
		case node.KindObject:
			for _, m := range n.Members {
				walk(m.Key)
				walk(m.Value)
			}
		}
	}
	walk(root)
	return out
}
