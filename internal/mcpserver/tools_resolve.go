package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specfold/node"
)

type resolveInput struct {
	Doc     docInput `json:"doc,omitempty" jsonschema:"The document to resolve inline pointers against (optional for file pointers)"`
	Pointer string   `json:"pointer"       jsonschema:"The pointer to resolve, e.g. #/components/schemas/Pet or ./common.yaml#/Tag"`
}

type resolveOutput struct {
	Pointer  string `json:"pointer"`
	Source   string `json:"source"`
	Depth    int    `json:"depth"`
	Resolved string `json:"resolved"`
}

func handleResolve(ctx context.Context, _ *mcp.CallToolRequest, input resolveInput) (*mcp.CallToolResult, resolveOutput, error) {
	if input.Pointer == "" {
		return errResult(fmt.Errorf("pointer is required")), resolveOutput{}, nil
	}

	var doc *node.Node
	baseDir := cfg.BaseDir
	if input.Doc.File != "" || input.Doc.Content != "" {
		var err error
		doc, baseDir, err = input.Doc.load()
		if err != nil {
			return errResult(err), resolveOutput{}, nil
		}
	}

	res, err := newResolver(baseDir)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	ref, err := res.Resolve(ctx, doc, input.Pointer)
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}

	data, err := ref.Node.ToJSON()
	if err != nil {
		return errResult(err), resolveOutput{}, nil
	}
	return nil, resolveOutput{
		Pointer:  ref.Pointer,
		Source:   string(ref.Source),
		Depth:    ref.Depth,
		Resolved: string(data),
	}, nil
}
