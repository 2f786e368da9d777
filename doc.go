// Package specfold provides a specification-aware document transformation engine.
//
// specfold ingests a generic document tree (as produced by parsing JSON or YAML)
// and progressively rewrites it into a semantically typed tree: nodes gain type
// tags, classification labels, and metadata describing how each field was
// recognized. Consumers such as validators, code generators, and editors work
// against the enriched tree rather than raw JSON.
//
// # Overview
//
// The engine is assembled from six packages:
//
//   - node: the generic tree model (object/array/string/number/boolean/null)
//     with type tags, classification labels, and metadata
//   - fold: the recursive rewrite contract applied node-by-node
//   - dispatch: the specification dispatch table mapping type tags to rewrite
//     behavior, including fixed-field routing
//   - pass: the scheduler that runs transformation passes to a fixed point
//   - resolver: the $ref resolver for inline, local-file, remote, and custom
//     scheme pointers, with caching and depth-bounded cycle protection
//   - pattern: the classifier for structurally significant field names
//     (path templates, runtime expressions, extensions, media types, headers)
//
// The transform package ties them together behind a single call:
//
//	result, err := transform.TransformWithOptions(ctx, root,
//	    transform.WithTable(table),
//	    transform.WithResolver(res),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	enriched := result.Node
//
// # Dispatch tables
//
// Callers assemble one dispatch table per target specification dialect
// (OpenAPI 3.0, OpenAPI 3.1, AsyncAPI 2.x, JSON Schema drafts, ...) by
// registering a rewrite function and, optionally, a fixed-fields map per node
// type name:
//
//	table := dispatch.NewTable()
//	table.RegisterFunc("document", rewriteDocument)
//	table.RegisterFields("document", dispatch.FixedFields{
//	    "info":  dispatch.Func(rewriteInfo),
//	    "paths": dispatch.Func(rewritePaths),
//	})
//
// This is the extension seam for adding new document dialects without
// touching the engine.
//
// # Reference resolution
//
// The resolver dereferences JSON-Pointer fragments ("#/a/b/0"), http(s) URLs,
// file paths, and custom schemes registered by the caller:
//
//	res, err := resolver.New(resolver.WithBaseDir("./specs"))
//	ref, err := res.Resolve(ctx, doc, "#/components/schemas/Pet")
//
// Results are cached per resolver instance; repeated lookups of the same
// pointer string are served from cache and tagged as such.
//
// # Error handling
//
// Structured error types live in the specerrors package and support
// errors.Is and errors.As:
//
//	if errors.Is(err, specerrors.ErrDepthExceeded) {
//	    // reference chain too deep (possible cycle)
//	}
package specfold
