package toolkit_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"sync/atomic"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/axiora-dev/axiora-go/axiorapi"
	"github.com/axiora-dev/axiora-go/toolkit"
	"github.com/axiora-dev/axiora-go/tools"
)

func TestNew_AllTools(t *testing.T) {
	tk, err := toolkit.New(toolkit.WithAPIKey("ax_test_key"))
	require.NoError(t, err)

	list := tk.GetTools()
	require.Len(t, list, 18)

	names := make([]string, len(list))
	for i, tool := range list {
		names[i] = tool.Name()
	}
	assert.Equal(t, tools.Names(), names)
}

func TestNew_EveryNameSelectable(t *testing.T) {
	for _, name := range tools.Names() {
		tk, err := toolkit.New(
			toolkit.WithAPIKey("ax_test_key"),
			toolkit.WithSelectedTools(name),
		)
		require.NoError(t, err, name)
		list := tk.GetTools()
		require.Len(t, list, 1, name)
		assert.Equal(t, name, list[0].Name())
	}
}

func TestNew_SelectionKeepsCatalogOrder(t *testing.T) {
	tk, err := toolkit.New(
		toolkit.WithAPIKey("ax_test_key"),
		toolkit.WithSelectedTools("axiora_get_financials", "axiora_search_companies"),
	)
	require.NoError(t, err)

	list := tk.GetTools()
	require.Len(t, list, 2)
	assert.Equal(t, "axiora_search_companies", list[0].Name())
	assert.Equal(t, "axiora_get_financials", list[1].Name())
}

func TestNew_DuplicateSelectionCollapses(t *testing.T) {
	tk, err := toolkit.New(
		toolkit.WithAPIKey("ax_test_key"),
		toolkit.WithSelectedTools("axiora_get_company", "axiora_get_company"),
	)
	require.NoError(t, err)
	assert.Len(t, tk.GetTools(), 1)
}

func TestNew_InvalidSelection(t *testing.T) {
	_, err := toolkit.New(
		toolkit.WithAPIKey("ax_test_key"),
		toolkit.WithSelectedTools("axiora_search_companies", "axiora_get_stonks"),
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown tool "axiora_get_stonks"`)
	// the error enumerates the full valid-name set
	for _, name := range tools.Names() {
		assert.Contains(t, err.Error(), name)
	}
}

// chdir changes the working directory for the duration of the test,
// restoring the original directory on cleanup (t.Chdir needs Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	oldwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(oldwd) })
}

func TestNew_MissingCredential(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(axiorapi.EnvAPIKey, "")

	_, err := toolkit.New()
	require.Error(t, err)
	assert.True(t, errors.Is(err, axiorapi.ErrAPIKeyNotFound))
}

func TestNew_NoNetworkAtConstruction(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	tk, err := toolkit.New(
		toolkit.WithAPIKey("ax_test_key"),
		toolkit.WithBaseURL(server.URL),
		toolkit.WithHTTPClient(server.Client()),
	)
	require.NoError(t, err)
	assert.EqualValues(t, 0, calls.Load())

	_, err = tk.GetTools()[0].Call(context.Background(), `{"query":"toyota"}`)
	require.NoError(t, err)
	assert.EqualValues(t, 1, calls.Load())
}

func TestNew_RaiseErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	tk, err := toolkit.New(
		toolkit.WithAPIKey("ax_test_key"),
		toolkit.WithBaseURL(server.URL),
		toolkit.WithHTTPClient(server.Client()),
		toolkit.WithRaiseErrors(),
		toolkit.WithSelectedTools("axiora_get_coverage"),
	)
	require.NoError(t, err)

	_, err = tk.GetTools()[0].Call(context.Background(), `{}`)
	require.Error(t, err)
	var se *axiorapi.StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusServiceUnavailable, se.Status)
}
