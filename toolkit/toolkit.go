// Package toolkit assembles a credential-bound selection of Axiora tools for
// a host agent framework.
package toolkit

import (
	"net/http"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xlog"

	"github.com/axiora-dev/axiora-go/axiorapi"
	"github.com/axiora-dev/axiora-go/tools"
)

var logger = xlog.NewPackageLogger("github.com/axiora-dev/axiora-go", "toolkit")

// Toolkit holds one shared API client and the selected tool instances, in
// catalog order. It is immutable after New: the selection is resolved at
// construction time and no network call happens until a tool is invoked.
type Toolkit struct {
	client *axiorapi.Client
	tools  []tools.ITool
}

type config struct {
	clientOpts  []axiorapi.Option
	selected    []string
	raiseErrors bool
}

// Option configures toolkit construction.
type Option func(*config)

// WithAPIKey supplies the credential explicitly. Without it the key is
// resolved from the AXIORA_API_KEY environment variable or a local .env file.
func WithAPIKey(key string) Option {
	return func(c *config) { c.clientOpts = append(c.clientOpts, axiorapi.WithAPIKey(key)) }
}

// WithBaseURL overrides the API endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *config) { c.clientOpts = append(c.clientOpts, axiorapi.WithBaseURL(baseURL)) }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *config) { c.clientOpts = append(c.clientOpts, axiorapi.WithHTTPClient(hc)) }
}

// WithSelectedTools restricts the toolkit to the named tools. Every name must
// match a catalog entry exactly; an unknown name fails construction.
func WithSelectedTools(names ...string) Option {
	return func(c *config) { c.selected = names }
}

// WithRaiseErrors makes every instantiated tool return failures as errors
// instead of error text. The default is the agent-safe mode.
func WithRaiseErrors() Option {
	return func(c *config) { c.raiseErrors = true }
}

// New constructs a toolkit. The credential is resolved once; the selection is
// validated against the catalog before anything is instantiated, so a
// partially constructed toolkit is never observable.
func New(opts ...Option) (*Toolkit, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	client, err := axiorapi.New(cfg.clientOpts...)
	if err != nil {
		return nil, err
	}

	include, err := resolveSelection(cfg.selected)
	if err != nil {
		return nil, err
	}

	var toolOpts []tools.ToolOption
	if cfg.raiseErrors {
		toolOpts = append(toolOpts, tools.WithRaiseErrors())
	}

	tk := &Toolkit{client: client}
	for _, def := range tools.Definitions() {
		if include != nil && !include[def.Name()] {
			continue
		}
		tk.tools = append(tk.tools, tools.NewTool(def, client, toolOpts...))
	}
	logger.KV(xlog.DEBUG, "reason", "toolkit created", "tools", len(tk.tools))
	return tk, nil
}

// resolveSelection returns the selected name set, or nil when the whole
// catalog is wanted. Duplicates collapse; unknown names fail with the full
// valid-name list so the caller can fix the selection.
func resolveSelection(selected []string) (map[string]bool, error) {
	if selected == nil {
		return nil, nil
	}
	include := make(map[string]bool, len(selected))
	for _, name := range selected {
		if _, ok := tools.ByName(name); !ok {
			return nil, errors.Errorf("unknown tool %q: valid tools are: %s",
				name, strings.Join(tools.Names(), ", "))
		}
		include[name] = true
	}
	return include, nil
}

// GetTools returns the selected tool instances in catalog order. All
// instances share the toolkit's client and credential.
func (t *Toolkit) GetTools() []tools.ITool {
	out := make([]tools.ITool, len(t.tools))
	copy(out, t.tools)
	return out
}

// Client returns the shared API client, for direct use alongside the tools.
func (t *Toolkit) Client() *axiorapi.Client {
	return t.client
}
