package resolver

import (
	"context"

	"github.com/erraggy/specfold/node"
)

// AsyncResult carries the outcome of an asynchronous resolution.
// Exactly one of Ref and Err is set.
type AsyncResult struct {
	Ref *ResolvedReference
	Err error
}

// ResolveAsync starts a resolution in its own goroutine and returns a
// channel that delivers exactly one result. Multiple pending resolutions
// can be interleaved by selecting over their channels:
//
//	pet := res.ResolveAsync(ctx, doc, "#/components/schemas/Pet")
//	tag := res.ResolveAsync(ctx, doc, "./common.yaml#/Tag")
//	petResult, tagResult := <-pet, <-tag
//
// The channel is buffered, so the goroutine never leaks even if the
// caller abandons the result. There is no cancellation beyond ctx
// applying to the underlying fetch: once started, a resolution runs to
// completion or error. Resolve is the blocking equivalent.
func (r *Resolver) ResolveAsync(ctx context.Context, doc *node.Node, pointer string) <-chan AsyncResult {
	ch := make(chan AsyncResult, 1)
	go func() {
		ref, err := r.Resolve(ctx, doc, pointer)
		ch <- AsyncResult{Ref: ref, Err: err}
	}()
	return ch
}
