package resolver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/erraggy/specfold"
	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/specerrors"
)

const (
	// DefaultMaxDepth is the maximum depth allowed for nested reference
	// resolution. Depth bounding is the only cycle defense: a two-schema
	// cycle surfaces as a depth-exceeded error rather than an infinite loop.
	DefaultMaxDepth = 10

	// MaxCachedDocuments is the maximum number of external documents to cache.
	// This prevents memory exhaustion from documents with many external references.
	MaxCachedDocuments = 100

	// MaxDocumentSize is the maximum size (in bytes) allowed for external
	// reference documents. This prevents resource exhaustion from loading
	// arbitrarily large files. 10MB is sufficient for most specification documents.
	MaxDocumentSize = 10 * 1024 * 1024 // 10MB
)

// Source identifies where a resolution result came from.
type Source string

const (
	// SourceInline is a fragment pointer resolved against the current document.
	SourceInline Source = "inline"
	// SourceLocal is a document read from the local filesystem.
	SourceLocal Source = "local"
	// SourceRemote is a document fetched over http/https.
	SourceRemote Source = "remote"
	// SourceCustom is a pointer delegated to a caller-registered scheme resolver.
	SourceCustom Source = "custom"
	// SourceCache marks a result served from the resolver's cache without
	// any network or disk access.
	SourceCache Source = "cache"
)

// CustomResolver resolves pointers for a caller-registered URL scheme.
type CustomResolver func(ctx context.Context, pointer string) (*node.Node, error)

// ResolvedReference is the result of dereferencing a pointer.
type ResolvedReference struct {
	// Node is the resolved subtree. It is owned by the caller; the
	// resolver never hands out aliases into its cache.
	Node *node.Node
	// Pointer is the original pointer string.
	Pointer string
	// Source is the resolution source, SourceCache for repeat lookups.
	Source Source
	// Depth is the nesting depth at which the resolution completed.
	Depth int
	// ResolvedAt is when the resolution completed.
	ResolvedAt time.Time
}

// Resolver dereferences pointer strings against the current document, the
// local filesystem, remote endpoints, and caller-registered schemes.
//
// Every successful resolution is memoized keyed by the exact input pointer
// string, so a Resolver instance is scoped to one root document; create a
// fresh Resolver per document (and per test) rather than sharing one
// across unrelated trees.
//
// Concurrent lookups are safe. Two callers racing on an uncached pointer
// may both perform the fetch (there is no single-flight de-duplication);
// the last insert wins and both callers get equal content.
type Resolver struct {
	mu sync.RWMutex
	// refs memoizes completed resolutions by exact pointer string.
	refs map[string]*ResolvedReference
	// documents caches parsed external documents by location.
	documents map[string]*node.Node

	custom        map[string]CustomResolver
	baseDir       string
	httpClient    *http.Client
	userAgent     string
	localEnabled  bool
	remoteEnabled bool
	maxDepth      int
	logger        Logger
}

// New creates a Resolver. By default local filesystem resolution is
// enabled, remote resolution is disabled, and nested resolution depth is
// bounded at DefaultMaxDepth.
func New(opts ...Option) (*Resolver, error) {
	r := &Resolver{
		refs:         make(map[string]*ResolvedReference),
		documents:    make(map[string]*node.Node),
		custom:       make(map[string]CustomResolver),
		httpClient:   &http.Client{Timeout: 30 * time.Second},
		userAgent:    specfold.UserAgent(),
		localEnabled: true,
		maxDepth:     DefaultMaxDepth,
		logger:       NopLogger{},
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("resolver: invalid options: %w", err)
		}
	}
	return r, nil
}

// Resolve dereferences a pointer against the current document, blocking
// until the result is available. The document is only consulted for
// inline (fragment) pointers; external pointers load their own documents.
// There is no cancellation once a fetch has started beyond ctx applying
// to the underlying request; callers wanting a timeout impose it on ctx.
func (r *Resolver) Resolve(ctx context.Context, doc *node.Node, pointer string) (*ResolvedReference, error) {
	return r.resolve(ctx, doc, pointer, 0)
}

func (r *Resolver) resolve(ctx context.Context, doc *node.Node, pointer string, depth int) (*ResolvedReference, error) {
	if depth > r.maxDepth {
		return nil, &specerrors.ResolveError{
			Pointer:       pointer,
			DepthExceeded: true,
			Message:       fmt.Sprintf("exceeded maximum depth %d", r.maxDepth),
		}
	}

	if cached := r.cachedRef(pointer); cached != nil {
		r.logger.Debug("reference cache hit", "ref", pointer, "depth", depth)
		return &ResolvedReference{
			Node:       cached.Node.Clone(),
			Pointer:    pointer,
			Source:     SourceCache,
			Depth:      depth,
			ResolvedAt: time.Now(),
		}, nil
	}

	source, err := r.classify(pointer)
	if err != nil {
		return nil, err
	}

	var resolved *node.Node
	switch source {
	case SourceInline:
		resolved, err = r.resolveInline(ctx, doc, pointer, depth)
	case SourceRemote:
		resolved, err = r.resolveRemote(ctx, pointer, depth)
	case SourceCustom:
		resolved, err = r.resolveCustom(ctx, pointer)
	case SourceLocal:
		resolved, err = r.resolveLocal(ctx, pointer, depth)
	}
	if err != nil {
		return nil, err
	}

	ref := &ResolvedReference{
		Node:       resolved,
		Pointer:    pointer,
		Source:     source,
		Depth:      depth,
		ResolvedAt: time.Now(),
	}
	// Memoize a private copy; the caller owns ref.Node outright.
	r.storeRef(pointer, &ResolvedReference{
		Node:       resolved.Clone(),
		Pointer:    pointer,
		Source:     source,
		Depth:      depth,
		ResolvedAt: ref.ResolvedAt,
	})
	r.logger.Debug("resolved reference", "ref", pointer, "source", source, "depth", depth)
	return ref, nil
}

// classify determines the resolution source for a pointer string.
// Classification order: fragment pointers are inline; http/https URLs are
// remote; registered schemes are custom; file URLs and strings containing
// a path separator are local; anything else is a resolution error.
func (r *Resolver) classify(pointer string) (Source, error) {
	if pointer == "" {
		return "", &specerrors.ResolveError{Pointer: pointer, Message: "empty pointer"}
	}
	if strings.HasPrefix(pointer, "#") {
		return SourceInline, nil
	}

	if u, err := url.Parse(pointer); err == nil && u.Scheme != "" {
		switch u.Scheme {
		case "http", "https":
			return SourceRemote, nil
		case "file":
			return SourceLocal, nil
		default:
			if _, ok := r.custom[u.Scheme]; ok {
				return SourceCustom, nil
			}
			return "", &specerrors.ResolveError{
				Pointer:       pointer,
				UnknownScheme: true,
				Message:       fmt.Sprintf("no resolver registered for scheme %q", u.Scheme),
			}
		}
	}

	if strings.ContainsAny(pointer, "/\\") {
		return SourceLocal, nil
	}

	return "", &specerrors.ResolveError{Pointer: pointer, Message: "not a recognizable pointer"}
}

// resolveInline walks a fragment pointer against the current document and
// follows a nested $ref in the target, if any.
func (r *Resolver) resolveInline(ctx context.Context, doc *node.Node, pointer string, depth int) (*node.Node, error) {
	if doc == nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceInline),
			Message: "no current document for inline pointer",
		}
	}
	target, err := ResolvePointer(doc, pointer)
	if err != nil {
		return nil, err
	}
	return r.followNested(ctx, doc, target, depth)
}

// resolveLocal reads a document from the local filesystem and applies the
// fragment, if any. Paths are resolved relative to the configured base
// directory and must stay within it.
func (r *Resolver) resolveLocal(ctx context.Context, pointer string, depth int) (*node.Node, error) {
	if !r.localEnabled {
		return nil, &specerrors.ResolveError{
			Pointer:  pointer,
			Source:   string(SourceLocal),
			Disabled: true,
			Message:  "local filesystem resolution is disabled",
		}
	}

	raw := strings.TrimPrefix(pointer, "file://")
	filePath, fragment := splitFragment(raw)

	if !filepath.IsAbs(filePath) {
		filePath = filepath.Clean(filepath.Join(r.baseDir, filePath))
	}
	if err := r.guardPathTraversal(pointer, filePath); err != nil {
		return nil, err
	}

	doc, err := r.loadLocalDocument(pointer, filePath)
	if err != nil {
		return nil, err
	}

	target := doc
	if fragment != "" {
		target, err = ResolvePointer(doc, "#"+fragment)
		if err != nil {
			return nil, err
		}
	}
	return r.followNested(ctx, doc, target, depth)
}

// resolveRemote fetches a document over http/https and applies the
// fragment, if any.
func (r *Resolver) resolveRemote(ctx context.Context, pointer string, depth int) (*node.Node, error) {
	if !r.remoteEnabled {
		return nil, &specerrors.ResolveError{
			Pointer:  pointer,
			Source:   string(SourceRemote),
			Disabled: true,
			Message:  "remote resolution is disabled",
		}
	}

	location, fragment := splitFragment(pointer)

	doc, err := r.loadRemoteDocument(ctx, pointer, location)
	if err != nil {
		return nil, err
	}

	target := doc
	if fragment != "" {
		target, err = ResolvePointer(doc, "#"+fragment)
		if err != nil {
			return nil, err
		}
	}
	return r.followNested(ctx, doc, target, depth)
}

// resolveCustom delegates the whole pointer to the registered scheme resolver.
func (r *Resolver) resolveCustom(ctx context.Context, pointer string) (*node.Node, error) {
	scheme := pointer[:strings.Index(pointer, ":")]
	fn := r.custom[scheme]
	resolved, err := fn(ctx, pointer)
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceCustom),
			Message: "custom resolver failed",
			Cause:   err,
		}
	}
	return resolved, nil
}

// followNested continues resolution when the target is itself a reference
// object. Each hop increments the depth counter; this is where cycles are
// caught.
func (r *Resolver) followNested(ctx context.Context, doc, target *node.Node, depth int) (*node.Node, error) {
	if target.Kind == node.KindObject {
		if refVal, ok := target.Get("$ref"); ok && refVal.Kind == node.KindString {
			nested, err := r.resolve(ctx, doc, refVal.Str, depth+1)
			if err != nil {
				return nil, err
			}
			return nested.Node, nil
		}
	}
	// Clone so the caller owns the result outright.
	return target.Clone(), nil
}

// loadLocalDocument reads and parses a file, serving repeats from the
// document cache.
func (r *Resolver) loadLocalDocument(pointer, filePath string) (*node.Node, error) {
	if doc := r.cachedDocument(filePath); doc != nil {
		return doc, nil
	}

	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceLocal),
			Message: "failed to read file",
			Cause:   err,
		}
	}
	if int64(len(data)) > MaxDocumentSize {
		return nil, &specerrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        MaxDocumentSize,
			Actual:       int64(len(data)),
			Message:      filePath,
		}
	}

	doc, err := node.FromYAML(data)
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceLocal),
			Message: "failed to parse file " + filePath,
			Cause:   err,
		}
	}

	if err := r.storeDocument(filePath, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// loadRemoteDocument fetches and parses a URL, serving repeats from the
// document cache.
func (r *Resolver) loadRemoteDocument(ctx context.Context, pointer, location string) (*node.Node, error) {
	if doc := r.cachedDocument(location); doc != nil {
		return doc, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceRemote),
			Message: "invalid URL",
			Cause:   err,
		}
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceRemote),
			Message: "fetch failed",
			Cause:   err,
		}
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceRemote),
			Message: fmt.Sprintf("unexpected status %d from %s", resp.StatusCode, location),
		}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxDocumentSize+1))
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceRemote),
			Message: "failed to read response",
			Cause:   err,
		}
	}
	if int64(len(data)) > MaxDocumentSize {
		return nil, &specerrors.ResourceLimitError{
			ResourceType: "document_size",
			Limit:        MaxDocumentSize,
			Actual:       int64(len(data)),
			Message:      location,
		}
	}

	doc, err := node.FromYAML(data)
	if err != nil {
		return nil, &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceRemote),
			Message: "failed to parse document from " + location,
			Cause:   err,
		}
	}

	if err := r.storeDocument(location, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

// guardPathTraversal rejects local paths that escape the base directory.
// filepath.Rel properly handles all cases including different volumes
// (it returns an error when paths cannot be made relative).
func (r *Resolver) guardPathTraversal(pointer, filePath string) error {
	if r.baseDir == "" {
		return nil
	}
	absBase, err := filepath.Abs(r.baseDir)
	if err != nil {
		return fmt.Errorf("resolver: failed to resolve base directory: %w", err)
	}
	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("resolver: failed to resolve file path: %w", err)
	}
	rel, err := filepath.Rel(absBase, absPath)
	if err != nil || strings.HasPrefix(rel, "..") {
		return &specerrors.ResolveError{
			Pointer: pointer,
			Source:  string(SourceLocal),
			Message: "path escapes base directory",
		}
	}
	return nil
}

func (r *Resolver) cachedRef(pointer string) *ResolvedReference {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.refs[pointer]
}

func (r *Resolver) storeRef(pointer string, ref *ResolvedReference) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refs[pointer] = ref
}

func (r *Resolver) cachedDocument(location string) *node.Node {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.documents[location]
}

func (r *Resolver) storeDocument(location string, doc *node.Node) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.documents[location]; !ok && len(r.documents) >= MaxCachedDocuments {
		return &specerrors.ResourceLimitError{
			ResourceType: "cached_documents",
			Limit:        MaxCachedDocuments,
			Actual:       int64(len(r.documents)),
			Message:      "too many external references",
		}
	}
	r.documents[location] = doc
	return nil
}

// splitFragment splits "location#fragment" into its halves.
func splitFragment(pointer string) (location, fragment string) {
	parts := strings.SplitN(pointer, "#", 2)
	location = parts[0]
	if len(parts) > 1 {
		fragment = parts[1]
	}
	return location, fragment
}
