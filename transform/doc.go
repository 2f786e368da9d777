// Package transform assembles the engine's pieces into a ready-to-run
// pipeline: dispatch typing, reference substitution, and pattern
// classification sequenced by the pass scheduler until the tree
// stabilizes.
//
// A minimal run over a parsed document:
//
//	table := dispatch.NewTable()
//	table.RegisterFunc("document", typeDocument)
//
//	res, err := resolver.New(resolver.WithBaseDir(dir))
//	if err != nil { ... }
//
//	result, err := transform.TransformWithOptions(ctx, root,
//	    transform.WithTable(table),
//	    transform.WithResolver(res),
//	    transform.WithRootType("document"),
//	)
//
// The input tree is cloned up front, so callers keep their original
// untouched. The enriched result carries type tags, classification
// labels, reference provenance, and pattern-match metadata; node-level
// issues accumulate as diagnostics on the tree and are aggregated on the
// Result, never silently dropped.
package transform
