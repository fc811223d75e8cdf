package axiorapi

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/cockroachdb/errors"
	"github.com/tidwall/gjson"
)

// StatusError is a non-2xx response from the Axiora API. The rendered message
// follows the stable format agents are instructed to read:
//
//	Axiora API error <status>. <detail>. <hint>
type StatusError struct {
	Status int
	Body   []byte
}

func (e *StatusError) Error() string {
	return Translate(e.Status, e.Body)
}

// statusHints carries remediation text per status code. This is data, not
// structure: add an entry to give a status its own hint. Statuses without an
// entry fall back to a 5xx branch or to no hint at all.
var statusHints = map[int]string{
	401: "Invalid or missing API key. Check your AXIORA_API_KEY.",
	403: "Access denied. Your plan may not include this endpoint.",
	404: "Not found. Use axiora_search_companies to find the correct code.",
	429: "Rate limit exceeded. Wait a moment before retrying.",
}

func hintFor(status int) string {
	if hint, ok := statusHints[status]; ok {
		return hint
	}
	if status >= 500 {
		return "The Axiora service had an internal error. Retry later."
	}
	return ""
}

// Translate renders a status code and response body into the stable error
// text. It never fails; an unrecognized body degrades to a raw excerpt.
func Translate(status int, body []byte) string {
	parts := []string{fmt.Sprintf("Axiora API error %d", status)}
	if d := detail(body); d != "" {
		parts = append(parts, d)
	}
	if hint := hintFor(status); hint != "" {
		parts = append(parts, hint)
	}
	return strings.Join(parts, ". ")
}

// detail extracts the API's error message from the body: the `detail` field,
// then `error`, then a bounded excerpt of the body itself.
func detail(body []byte) string {
	if v := gjson.GetBytes(body, "detail"); v.Exists() {
		return v.String()
	}
	if v := gjson.GetBytes(body, "error"); v.Exists() {
		return v.String()
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		// cut at a rune boundary; bodies are often Japanese
		cut := 200
		for cut > 0 && !utf8.RuneStart(s[cut]) {
			cut--
		}
		s = s[:cut]
	}
	return s
}

// ErrorText is the agent-safe rendering of any failure: upstream status
// errors keep the documented format, everything else (network failures,
// validation) passes through as its message. Always returns a string.
func ErrorText(err error) string {
	if err == nil {
		return ""
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.Error()
	}
	return err.Error()
}
