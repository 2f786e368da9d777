// Package node provides the generic document tree model used by the
// specfold engine.
//
// A [Node] represents one unit of a parsed JSON or YAML document: null,
// boolean, number, string, array, or object. Object members are ordered
// (key order is preserved from the source and is meaningful for
// serialization and pattern-field iteration), and every node carries three
// pieces of enrichment state:
//
//   - a type tag, initially the generic kind name ("object", "array", ...)
//     and later set to a specification type such as "schema" by dispatch
//   - a classification list of semantic labels, appended without duplicates
//   - a metadata map recording provenance, diagnostics, spec-path
//     breadcrumbs, and reference-resolution results
//
// Nodes are tree-owned: a child is exclusively owned by its parent, so
// [Node.Clone] is a deep, well-defined copy and [Equal] is a deep
// structural comparison (metadata is deliberately excluded from equality
// so that annotation-only changes do not count as structural change).
//
// Trees are built from YAML or JSON bytes with [FromYAML] and [FromJSON]
// (both preserve member order), or from already-decoded Go values with
// [FromAny] (map key order is not recoverable and is sorted for
// determinism).
package node
