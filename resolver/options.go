package resolver

import (
	"net/http"

	"github.com/erraggy/specfold/specerrors"
)

// Option configures a Resolver.
type Option func(*Resolver) error

// WithBaseDir sets the base directory for resolving relative file paths.
// Local references outside the base directory are rejected as path
// traversal attempts.
func WithBaseDir(dir string) Option {
	return func(r *Resolver) error {
		r.baseDir = dir
		return nil
	}
}

// WithLocalEnabled enables or disables local filesystem resolution.
// Default: true. When disabled, file references return a typed error.
func WithLocalEnabled(enabled bool) Option {
	return func(r *Resolver) error {
		r.localEnabled = enabled
		return nil
	}
}

// WithRemoteEnabled enables resolution of http/https pointer URLs.
// This is disabled by default for security (SSRF protection) and must be
// explicitly enabled when resolving documents with remote references.
func WithRemoteEnabled(enabled bool) Option {
	return func(r *Resolver) error {
		r.remoteEnabled = enabled
		return nil
	}
}

// WithHTTPClient sets a custom HTTP client for fetching remote references.
// When set, the client is used as-is for all HTTP requests; configure
// timeouts and TLS settings on the client's transport. A nil client has no
// effect (the default client is used).
func WithHTTPClient(client *http.Client) Option {
	return func(r *Resolver) error {
		if client != nil {
			r.httpClient = client
		}
		return nil
	}
}

// WithMaxDepth sets the maximum depth for nested reference resolution.
// The depth counter increments on every nested resolution triggered while
// resolving another reference; exceeding the maximum is a hard resolution
// error. This is the resolver's only defense against reference cycles:
// it does not track visited pointers, so deep-but-acyclic chains and true
// cycles are rejected identically. A value of 0 means use the default (10).
// Returns an error if depth is negative.
func WithMaxDepth(depth int) Option {
	return func(r *Resolver) error {
		if depth < 0 {
			return &specerrors.ConfigError{Option: "maxDepth", Message: "cannot be negative"}
		}
		if depth > 0 {
			r.maxDepth = depth
		}
		return nil
	}
}

// WithCustomScheme registers a resolver for an additional URL scheme
// (e.g. "registry"). Pointers with that scheme are delegated wholesale to
// the given function.
func WithCustomScheme(scheme string, fn CustomResolver) Option {
	return func(r *Resolver) error {
		if scheme == "" {
			return &specerrors.ConfigError{Option: "customScheme", Message: "scheme cannot be empty"}
		}
		if fn == nil {
			return &specerrors.ConfigError{Option: "customScheme", Message: "resolver function cannot be nil"}
		}
		r.custom[scheme] = fn
		return nil
	}
}

// WithUserAgent sets the User-Agent string for HTTP requests.
// Default: "specfold/vX.Y.Z".
func WithUserAgent(ua string) Option {
	return func(r *Resolver) error {
		r.userAgent = ua
		return nil
	}
}

// WithLogger sets a structured logger for debug output during resolution.
// By default, no logging is performed.
func WithLogger(l Logger) Option {
	return func(r *Resolver) error {
		if l != nil {
			r.logger = l
		}
		return nil
	}
}
