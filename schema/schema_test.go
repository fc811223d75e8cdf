package schema_test

import (
	"encoding/json"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/axiora-dev/axiora-go/schema"
)

type sampleInput struct {
	Query  string   `json:"query" jsonschema:"description=The search query"`
	Limit  int      `json:"limit,omitempty" jsonschema:"default=10,description=Max results"`
	Topics []string `json:"topics,omitempty" jsonschema:"description=Topics to cover"`
}

func TestNew(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(sampleInput{}))
	require.NoError(t, err)
	require.NotNil(t, sc.Parameters)

	js, err := json.Marshal(sc.Parameters)
	require.NoError(t, err)

	assert.Equal(t, "object", gjson.GetBytes(js, "type").String())
	assert.Equal(t, "string", gjson.GetBytes(js, "properties.query.type").String())
	assert.Equal(t, "The search query", gjson.GetBytes(js, "properties.query.description").String())
	assert.Equal(t, "integer", gjson.GetBytes(js, "properties.limit.type").String())
	assert.Equal(t, "array", gjson.GetBytes(js, "properties.topics.type").String())

	var required []string
	err = json.Unmarshal([]byte(gjson.GetBytes(js, "required").Raw), &required)
	require.NoError(t, err)
	assert.Equal(t, []string{"query"}, required)

	// no unresolved refs in a function schema
	assert.NotContains(t, string(js), "$ref")
	assert.NotContains(t, string(js), "$defs")
}

func TestNew_Cached(t *testing.T) {
	a, err := schema.New(reflect.TypeOf(sampleInput{}))
	require.NoError(t, err)
	b, err := schema.New(reflect.TypeOf(sampleInput{}))
	require.NoError(t, err)
	assert.Same(t, a, b)
}

type nestedFilter struct {
	Section string `json:"section"`
}

type nestedInput struct {
	Query  string       `json:"query"`
	Filter nestedFilter `json:"filter,omitempty"`
}

func TestNew_ResolvesNestedRefs(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(nestedInput{}))
	require.NoError(t, err)

	js, err := json.Marshal(sc.Parameters)
	require.NoError(t, err)

	assert.Equal(t, "string", gjson.GetBytes(js, "properties.filter.properties.section.type").String())
	assert.NotContains(t, string(js), "$ref")
}

func TestSchema_String(t *testing.T) {
	sc, err := schema.New(reflect.TypeOf(sampleInput{}))
	require.NoError(t, err)
	assert.Contains(t, sc.String(), `"query"`)
}
