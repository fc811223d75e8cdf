package tools

import (
	"context"
	"encoding/json"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/x/values"
	"github.com/go-playground/validator/v10"

	"github.com/axiora-dev/axiora-go/axiorapi"
	"github.com/axiora-dev/axiora-go/llmutils"
)

var validate = validator.New()

// Result is a successful tool invocation: the raw JSON payload returned by
// the API for the operation.
type Result struct {
	Raw json.RawMessage
}

func (r *Result) String() string {
	return string(r.Raw)
}

// Map decodes the payload into a map for programmatic use. Fails for
// operations whose payload is a JSON array.
func (r *Result) Map() (values.MapAny, error) {
	var m values.MapAny
	if err := json.Unmarshal(r.Raw, &m); err != nil {
		return nil, errors.Wrap(err, "failed to decode result")
	}
	return m, nil
}

// APITool is a credential-bound, invocable realization of one catalog
// definition. It is stateless beyond the definition and the shared client,
// and safe for concurrent use.
//
// Call is the agent-facing entry point: validation failures and API errors
// come back as the result text, so a calling agent can read them and
// self-correct instead of aborting the run. Run is the programmatic entry
// point and returns failures as errors. WithRaiseErrors makes Call behave
// like Run.
type APITool struct {
	def         *Definition
	client      *axiorapi.Client
	raiseErrors bool
}

var _ ITool = (*APITool)(nil)

// ToolOption configures an APITool.
type ToolOption func(*APITool)

// WithRaiseErrors makes Call return validation and transport failures as
// errors instead of error text.
func WithRaiseErrors() ToolOption {
	return func(t *APITool) { t.raiseErrors = true }
}

// NewTool creates a tool instance over the given definition and client.
func NewTool(def *Definition, client *axiorapi.Client, opts ...ToolOption) *APITool {
	t := &APITool{
		def:    def,
		client: client,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *APITool) Name() string {
	return t.def.Name()
}

func (t *APITool) Description() string {
	return t.def.Description()
}

func (t *APITool) Parameters() any {
	return t.def.Parameters()
}

// Call executes the tool with a JSON argument mapping. Absent fields keep
// their documented defaults. In the default agent-safe mode any failure is
// returned as the result string, never as an error.
func (t *APITool) Call(ctx context.Context, input string) (string, error) {
	in := t.def.newInput()
	if err := json.Unmarshal(llmutils.CleanJSON([]byte(input)), in); err != nil {
		return t.failure(errors.WithStack(ErrFailedUnmarshalInput))
	}
	res, err := t.Run(ctx, in)
	if err != nil {
		return t.failure(err)
	}
	return res.String(), nil
}

// Run executes the tool with a typed input pointer (e.g. *GetCompanyInput)
// and always reports failures as errors. Exactly one network call is issued;
// none when validation fails.
func (t *APITool) Run(ctx context.Context, in any) (*Result, error) {
	if err := validate.Struct(in); err != nil {
		return nil, errors.Wrapf(err, "invalid arguments for %s", t.def.name)
	}
	path, query, err := t.def.request(in)
	if err != nil {
		return nil, err
	}
	body, err := t.client.Do(ctx, t.def.method, path, query)
	if err != nil {
		return nil, err
	}
	return &Result{Raw: body}, nil
}

func (t *APITool) failure(err error) (string, error) {
	if t.raiseErrors {
		return "", err
	}
	return axiorapi.ErrorText(err), nil
}
