// Package dispatch provides the specification dispatch table: a registry
// mapping a node's declared type tag to rewrite behavior, so that no
// dispatch chain of conditionals is spread across the codebase.
//
// Callers assemble one [Table] per target specification dialect by
// registering, per type tag, an [Entry] and optionally a [FixedFields]
// map describing the statically known fields of that type:
//
//	table := dispatch.NewTable()
//	table.Register("document", dispatch.Func(rewriteDocument))
//	table.RegisterFields("document", dispatch.FixedFields{
//	    "info":  dispatch.Func(rewriteInfo),
//	    "paths": dispatch.Ref("pathMap"),
//	})
//
// Entries come in three forms: a direct rewrite function ([Func]), a named
// indirection to another table entry ([Ref]), or a nested sub-table
// ([Nested]). Indirections are resolved exactly one level at lookup time;
// an indirection that lands on another indirection is a lookup error, which
// keeps the table itself free of cycle detection.
//
// Looking up an unknown type tag is not an error: it falls back to a
// universal "value" entry that returns the node unchanged.
//
// When a type has fixed fields, each member of a dispatched object is
// routed individually: known fields go to their declared entry, fields
// with the reserved extension prefix go to a generic extension handler
// (preserved and tagged), and all remaining fields go to a fallback
// handler (preserved and tagged, but not type-rewritten). Every routed
// member records how it was matched in its metadata, so downstream tooling
// can distinguish known shape from passthrough.
package dispatch
