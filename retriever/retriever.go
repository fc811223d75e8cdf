// Package retriever searches English translations of Japanese EDINET filings
// and returns matching passages with their filing metadata.
package retriever

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/effective-security/x/values"
	"github.com/effective-security/xlog"
	"github.com/tidwall/gjson"

	"github.com/axiora-dev/axiora-go/axiorapi"
)

var logger = xlog.NewPackageLogger("github.com/axiora-dev/axiora-go", "retriever")

// DefaultK is the default maximum number of passages per query.
const DefaultK = 10

// Passage is one retrieved text unit: the passage body and the identifying
// fields of the row it came from (company code and name, filing section,
// source document).
type Passage struct {
	Content  string
	Metadata values.MapAny
}

// Retriever issues translation searches over a shared API client. Results
// are recomputed per query; nothing is cached or persisted.
//
// Unlike the tool layer, Search has no textual error channel: retrievers run
// inside document pipelines that can only consume passages, so a failed
// search degrades to no passages and the failure is logged.
type Retriever struct {
	client  *axiorapi.Client
	section string
	k       int
}

// Option configures a Retriever.
type Option func(*Retriever)

// WithSection restricts results to one filing section server-side, e.g.
// risk_factors or mda.
func WithSection(section string) Option {
	return func(r *Retriever) { r.section = section }
}

// WithK bounds the number of passages per query.
func WithK(k int) Option {
	return func(r *Retriever) { r.k = k }
}

// New creates a Retriever over the given client.
func New(client *axiorapi.Client, opts ...Option) *Retriever {
	r := &Retriever{
		client: client,
		k:      DefaultK,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Search runs one translations search and maps each result row to a Passage.
// Returns at most k passages; an API or network failure yields an empty
// slice.
func (r *Retriever) Search(ctx context.Context, query string) []Passage {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(r.k))
	if r.section != "" {
		params.Set("section", r.section)
	}

	body, err := r.client.Do(ctx, http.MethodGet, "/translations/search", params)
	if err != nil {
		logger.ContextKV(ctx, xlog.WARNING, "reason", "translations search failed", "err", err.Error())
		return nil
	}
	return toPassages(body, r.k)
}

// toPassages maps result rows to passages: the text field becomes the
// content, every other non-null field becomes metadata. At most k rows are
// taken, even if the server ignores the limit parameter.
func toPassages(body []byte, k int) []Passage {
	var out []Passage
	gjson.GetBytes(body, "data").ForEach(func(_, row gjson.Result) bool {
		if len(out) >= k {
			return false
		}
		content := row.Get("content")
		if !content.Exists() {
			content = row.Get("snippet")
		}
		md := values.MapAny{}
		row.ForEach(func(key, value gjson.Result) bool {
			k := key.String()
			if k == "content" || k == "snippet" || value.Type == gjson.Null {
				return true
			}
			md[k] = value.Value()
			return true
		})
		out = append(out, Passage{
			Content:  content.String(),
			Metadata: md,
		})
		return true
	})
	return out
}
