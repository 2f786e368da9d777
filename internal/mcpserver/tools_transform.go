package mcpserver

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specfold/node"
	"github.com/erraggy/specfold/transform"
)

type transformInput struct {
	Doc           docInput `json:"doc"                       jsonschema:"The document to transform"`
	RootType      string   `json:"root_type,omitempty"       jsonschema:"Type tag to seed the root node with"`
	MaxIterations int      `json:"max_iterations,omitempty"  jsonschema:"Scheduler iteration cap (default from SPECFOLD_MAX_ITERATIONS)"`
	RunOnce       bool     `json:"run_once,omitempty"        jsonschema:"Run a single pass cycle instead of iterating to a fixed point"`
	NoResolve     bool     `json:"no_resolve,omitempty"      jsonschema:"Skip reference substitution"`
	Full          bool     `json:"full,omitempty"            jsonschema:"Return the enriched document as JSON"`
}

type transformOutput struct {
	Iterations       int      `json:"iterations"`
	Stable           bool     `json:"stable"`
	ResolvedRefs     int      `json:"resolved_refs"`
	ClassifiedFields int      `json:"classified_fields"`
	Diagnostics      []string `json:"diagnostics,omitempty"`
	FullDocument     string   `json:"full_document,omitempty"`
}

func handleTransform(ctx context.Context, _ *mcp.CallToolRequest, input transformInput) (*mcp.CallToolResult, transformOutput, error) {
	doc, baseDir, err := input.Doc.load()
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	opts := []transform.Option{}
	if !input.NoResolve {
		res, err := newResolver(baseDir)
		if err != nil {
			return errResult(err), transformOutput{}, nil
		}
		opts = append(opts, transform.WithResolver(res))
	}

	rootType := input.RootType
	if rootType == "" {
		rootType = cfg.RootType
	}
	if rootType != "" {
		opts = append(opts, transform.WithRootType(rootType))
	}

	maxIterations := input.MaxIterations
	if maxIterations <= 0 {
		maxIterations = cfg.MaxIterations
	}
	if maxIterations > 0 {
		opts = append(opts, transform.WithMaxIterations(maxIterations))
	}
	if input.RunOnce {
		opts = append(opts, transform.WithRunOnce())
	}

	result, err := transform.TransformWithOptions(ctx, doc, opts...)
	if err != nil {
		return errResult(err), transformOutput{}, nil
	}

	output := transformOutput{
		Iterations:       result.Iterations,
		Stable:           result.Stable,
		ResolvedRefs:     countMeta(result.Node, transform.MetaRefPointer),
		ClassifiedFields: countMeta(result.Node, transform.MetaPatternFamily),
	}
	for _, d := range result.Diagnostics {
		output.Diagnostics = append(output.Diagnostics, d.String())
	}

	if input.Full {
		data, err := result.Node.ToJSON()
		if err != nil {
			return errResult(err), transformOutput{}, nil
		}
		output.FullDocument = string(data)
	}
	return nil, output, nil
}

// countMeta reports how many nodes in the tree carry a metadata key.
func countMeta(root *node.Node, key string) int {
	count := 0
	var walk func(n *node.Node)
	walk = func(n *node.Node) {
		if _, ok := n.Meta(key); ok {
			count++
		}
		for _, item := range n.Items {
			walk(item)
		}
		for _, m := range n.Members {
			walk(m.Value)
		}
	}
	walk(root)
	return count
}
