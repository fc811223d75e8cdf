// Package schema converts Go input structs into the function-parameters JSON
// schema advertised to LLM agents for each tool.
package schema

import (
	"encoding/json"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/cockroachdb/errors"
	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

var (
	cache   = make(map[reflect.Type]*Schema)
	cacheMu sync.Mutex
)

// Schema holds the reflected JSON schema of an input struct and its
// function-parameters form: top-level properties and required list with all
// $defs references resolved inline.
type Schema struct {
	Raw *jsonschema.Schema
	// Parameters represents the function parameters definition.
	Parameters *jsonschema.Schema
}

// New creates a schema for the given type. Schemas are cached per type, as
// tool definitions request them repeatedly.
func New(t reflect.Type) (*Schema, error) {
	cacheMu.Lock()
	defer cacheMu.Unlock()

	if s, ok := cache[t]; ok {
		return s, nil
	}

	raw := reflectType(t)
	params, err := toFunctionSchema(raw)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build schema for %s", t.Name())
	}
	s := &Schema{
		Raw:        raw,
		Parameters: params,
	}
	cache[t] = s
	return s, nil
}

func (s *Schema) String() string {
	js, _ := json.MarshalIndent(s.Parameters, "", "\t")
	return string(js)
}

// toFunctionSchema lifts the root definition out of $defs and resolves every
// reference inline, since function-call schemas do not support $ref.
func toFunctionSchema(ts *jsonschema.Schema) (*jsonschema.Schema, error) {
	rootID := strings.TrimPrefix(ts.Ref, "#/$defs/")

	defs := make(map[string]*jsonschema.Schema)
	var root *jsonschema.Schema
	for name, def := range ts.Definitions {
		if name == rootID {
			root = def
		} else {
			defs[name] = def
		}
	}
	if root == nil {
		return nil, errors.Errorf("root definition %q not found", rootID)
	}

	res := &jsonschema.Schema{
		Type:       root.Type,
		Properties: root.Properties,
		Required:   root.Required,
	}
	if err := resolveRefs(res.Properties, defs); err != nil {
		return nil, err
	}
	return res, nil
}

func resolveRefs(props *orderedmap.OrderedMap[string, *jsonschema.Schema], defs map[string]*jsonschema.Schema) error {
	if props == nil {
		return nil
	}
	for pair := props.Oldest(); pair != nil; pair = pair.Next() {
		child := pair.Value
		if child.Ref != "" {
			name := strings.TrimPrefix(child.Ref, "#/$defs/")
			def, ok := defs[name]
			if !ok {
				return errors.Errorf("unresolved schema reference %q", child.Ref)
			}
			pair.Value = def
			child = def
		}
		if child.Items != nil && child.Items.Ref != "" {
			name := strings.TrimPrefix(child.Items.Ref, "#/$defs/")
			def, ok := defs[name]
			if !ok {
				return errors.Errorf("unresolved schema reference %q", child.Items.Ref)
			}
			child.Items = def
		}
		if err := resolveRefs(child.Properties, defs); err != nil {
			return err
		}
	}
	return nil
}

// reflectType reflects the JSON schema of a type. Struct names are suffixed
// with a hash of the package path so same-named structs from different
// packages cannot collide in $defs.
func reflectType(t reflect.Type) *jsonschema.Schema {
	r := new(jsonschema.Reflector)
	r.Namer = func(t reflect.Type) string {
		name := t.Name()
		if t.Kind() == reflect.Struct {
			fullname := t.PkgPath() + "/" + t.Name()
			name = t.Name() + "@" + strconv.FormatUint(xxhash.Sum64String(fullname), 10)
		}
		return name
	}
	return r.ReflectFromType(t)
}
