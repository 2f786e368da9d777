// Package mcpserver implements an MCP (Model Context Protocol) server
// that exposes the specfold transformation engine as MCP tools over stdio.
package mcpserver

import (
	"context"
	"regexp"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specfold"
	"github.com/erraggy/specfold/resolver"
)

const serverInstructions = `specfold MCP server — transforms, dereferences, and classifies JSON/YAML specification documents.

Configuration: All defaults are configurable via SPECFOLD_* environment variables set in your MCP client config. The Go MCP SDK does not support initializationOptions; use env vars instead.

Key settings:
- SPECFOLD_MAX_ITERATIONS — scheduler iteration cap (default: 8)
- SPECFOLD_MAX_DEPTH — nested reference depth bound (default: 10)
- SPECFOLD_BASE_DIR — base directory for relative file references from inline content
- SPECFOLD_LOCAL_ENABLED (default: true) — allow local filesystem reference resolution
- SPECFOLD_REMOTE_ENABLED (default: false) — allow http/https reference resolution
- SPECFOLD_ROOT_TYPE — default root type tag seeded before transformation
- SPECFOLD_MAX_INLINE_SIZE (default: 2097152) — inline content size limit in bytes

File inputs resolve relative references against the file's own directory; inline content uses SPECFOLD_BASE_DIR.`

// Run starts the MCP server over stdio and blocks until the client
// disconnects or the context is cancelled.
func Run(ctx context.Context) error {
	server := mcp.NewServer(
		&mcp.Implementation{Name: "specfold", Version: specfold.Version()},
		&mcp.ServerOptions{
			Instructions: serverInstructions,
		},
	)
	registerAllTools(server)
	return server.Run(ctx, &mcp.StdioTransport{})
}

func registerAllTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "transform",
		Description: "Run the transformation engine over a JSON or YAML document: dereference $ref pointers, classify patterned field names, and iterate to a fixed point. Returns iteration count, stability, and diagnostics. Use full=true to get the enriched document back as JSON (small documents only).",
	}, handleTransform)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve",
		Description: "Resolve a $ref-style pointer against a document. Supports inline fragments (#/a/b), local files (./common.yaml#/Tag), and http/https URLs when SPECFOLD_REMOTE_ENABLED is set. Returns the resolved subtree as JSON with its resolution source and depth.",
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "classify",
		Description: "Classify a field name into its pattern family: path-template, runtime-expression, specification-extension, callback-expression, media-type, or header. Returns the family, validity, extracted parameters, complexity score, and canonical name.",
	}, handleClassify)
}

// newResolver builds a resolver from the server configuration and the
// input's base directory.
func newResolver(baseDir string) (*resolver.Resolver, error) {
	opts := []resolver.Option{
		resolver.WithBaseDir(baseDir),
		resolver.WithLocalEnabled(cfg.LocalEnabled),
		resolver.WithRemoteEnabled(cfg.RemoteEnabled),
	}
	if cfg.MaxDepth > 0 {
		opts = append(opts, resolver.WithMaxDepth(cfg.MaxDepth))
	}
	return resolver.New(opts...)
}

// sanitizeError strips absolute filesystem paths from error messages
// to prevent leaking internal directory structure to MCP clients.
var pathPattern = regexp.MustCompile(`(?:/(?:home|tmp|var|Users|etc|opt|usr|private|root|mnt|srv|run|snap|nix)[a-zA-Z0-9._/-]*)`)

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return pathPattern.ReplaceAllString(err.Error(), "<path>")
}

// errResult creates an MCP error result from an error.
func errResult(err error) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		IsError: true,
		Content: []mcp.Content{&mcp.TextContent{Text: sanitizeError(err)}},
	}
}
