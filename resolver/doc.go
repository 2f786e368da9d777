// Package resolver dereferences $ref-style pointer strings against the
// current document, the local filesystem, remote endpoints, and
// caller-registered custom schemes.
//
// # Pointer syntax
//
// Four pointer forms are recognized, classified in this order:
//
//   - "#/a/b/0" — inline JSON-Pointer fragments, walked against the
//     current document per RFC 6901
//   - "https://example.com/api.yaml#/components/schemas/Pet" — remote
//     documents fetched over http/https (disabled by default; enable with
//     WithRemoteEnabled)
//   - "registry://pets/Pet" — arbitrary schemes delegated to resolvers
//     registered with WithCustomScheme
//   - "./common.yaml#/Tag", "file:///specs/api.yaml#/Pet" — local
//     filesystem documents, read relative to the configured base directory
//
// Anything else is a typed resolution error.
//
// # Caching
//
// Every successful resolution is memoized keyed by the exact input pointer
// string, and parsed external documents are cached by location. Repeat
// lookups are served from cache without network or disk access and are
// tagged SourceCache. The cache is owned by the Resolver instance, so its
// lifetime is scoped to the resolver rather than the process; create a
// fresh Resolver per root document for deterministic behavior.
//
// # Cycle protection
//
// Resolution carries a depth counter incremented on every nested hop;
// exceeding the configured maximum (default 10) is a hard error. The
// resolver does not track visited pointers, so true cycles and
// pathological deep-but-acyclic chains are rejected identically.
//
// # Concurrency
//
// Concurrent lookups are safe: the cache uses a read-many/write-one
// discipline, and a successful fetch takes a brief exclusive lock to
// insert its result. Two callers racing on an uncached pointer may both
// fetch; no single-flight de-duplication is guaranteed. ResolveAsync
// exposes resolution as a channel so multiple pending fetches can be
// interleaved; Resolve is the blocking form.
package resolver
