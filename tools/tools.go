// Package tools exposes the Axiora API operations as schema-validated tools
// for LLM agents. The catalog of definitions is fixed at process start;
// invocable instances are created per credential by the toolkit package or
// directly via NewTool.
package tools

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/axiora-dev/axiora-go/llmutils"
)

var ErrFailedUnmarshalInput = errors.New("failed to unmarshal input: check the schema and try again")

// ITool is a tool for the llm agent to interact with the Axiora API.
type ITool interface {
	// Name returns the name of the Tool.
	Name() string
	// Description returns the description of the tool, to be used in the prompt.
	Description() string
	// Parameters returns the parameters definition of the function, to be used in the prompt.
	Parameters() any

	// Call executes the tool with the given JSON input and returns the result.
	// If the tool fails to parse the input, it returns ErrFailedUnmarshalInput.
	Call(context.Context, string) (string, error)
}

type toolDescription struct {
	Name        string `json:"Name"`
	Description string `json:"Description"`
}

type toolsDescription struct {
	Tools []toolDescription `json:"Tools"`
}

// GetDescriptions renders the names and descriptions of the given tools as a
// fenced JSON block for inclusion in a prompt.
func GetDescriptions(list ...ITool) string {
	var d toolsDescription
	for _, tool := range list {
		d.Tools = append(d.Tools, toolDescription{
			Name:        tool.Name(),
			Description: tool.Description(),
		})
	}
	return llmutils.BackticksJSON(llmutils.ToJSONIndent(d))
}
