package mcpserver

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/erraggy/specfold/pattern"
)

type classifyInput struct {
	Field string `json:"field" jsonschema:"The field name to classify, e.g. /pets/{petId} or application/json"`
}

type classifyParam struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	Position int    `json:"position"`
}

type classifyOutput struct {
	Field      string          `json:"field"`
	Family     string          `json:"family"`
	Valid      bool            `json:"valid"`
	Complexity int             `json:"complexity"`
	Canonical  string          `json:"canonical,omitempty"`
	Params     []classifyParam `json:"params,omitempty"`
}

func handleClassify(_ context.Context, _ *mcp.CallToolRequest, input classifyInput) (*mcp.CallToolResult, classifyOutput, error) {
	if input.Field == "" {
		return errResult(fmt.Errorf("field is required")), classifyOutput{}, nil
	}

	pf := pattern.Classify(input.Field, nil)
	output := classifyOutput{
		Field:      pf.OriginalName,
		Family:     pf.Family.String(),
		Valid:      pf.Valid,
		Complexity: pf.Complexity,
	}
	if pf.Name != pf.OriginalName {
		output.Canonical = pf.Name
	}
	for _, p := range pf.Params {
		output.Params = append(output.Params, classifyParam{
			Name:     p.Name,
			Type:     p.Type,
			Position: p.Position,
		})
	}
	return nil, output, nil
}
