// Package pass provides the scheduler that sequences named transformation
// stages over a document tree and converges to a stable result.
//
// A [Pass] is one named stage. The [Runner] executes its passes in order,
// either exactly once ([Runner.RunOnce]) or repeatedly until no pass
// reports a change or the iteration cap is hit ([Runner.RunUntilStable]):
//
//	runner := pass.NewRunner([]pass.Pass{dispatchPass, refPass})
//	result, err := runner.RunUntilStable(root)
//	if !result.Stable {
//	    // the iteration cap was exhausted; the tree is still usable but
//	    // convergence is best-effort
//	}
//
// After each pass the scheduler asks the pass whether its change should
// trigger another cycle; passes implementing [ChangeReporter] supply their
// own policy, and the default is structural inequality between the pass's
// input and output ([node.Equal]).
//
// A pass returning its input unchanged is not an error. A pass returning
// an error is converted into a [specerrors.PassError] naming the pass and
// iteration; output already produced by prior passes is preserved in the
// returned result.
package pass
