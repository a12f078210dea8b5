package client

import (
	"context"
	"fmt"
	"strings"
)

// TextGenerationParameters reports the generation parameters the runtime
// accepts, as a map of parameter name to OpenAPI type name ("integer",
// "number", "string", "boolean", "array"). Object-valued parameters appear
// as nested maps. The data comes from the runtime's own OpenAPI document,
// so the result tracks whatever the connected runtime version supports.
func (c *Client) TextGenerationParameters(ctx context.Context) (map[string]any, error) {
	var doc map[string]any
	if err := c.getJSON(ctx, openAPIEndpoint, &doc); err != nil {
		return nil, err
	}

	schema, err := lookupMap(doc,
		"paths", textGenerationEndpoint, "post", "requestBody", "content", "application/json", "schema")
	if err != nil {
		return nil, fmt.Errorf("text generation request schema: %w", err)
	}
	schema, err = resolveSchema(doc, schema)
	if err != nil {
		return nil, err
	}

	props, _ := schema["properties"].(map[string]any)
	raw, ok := props["parameters"]
	if !ok {
		return nil, fmt.Errorf("text generation request schema has no parameters property")
	}
	params, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("unexpected parameters schema shape %T", raw)
	}
	params, err = resolveSchema(doc, params)
	if err != nil {
		return nil, err
	}
	return schemaTypes(doc, params)
}

// schemaTypes flattens an object schema into name → type-name entries,
// recursing into object-valued properties.
func schemaTypes(doc, schema map[string]any) (map[string]any, error) {
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("schema has no properties")
	}

	out := make(map[string]any, len(props))
	for name, raw := range props {
		ps, ok := raw.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("unexpected schema shape for property %q", name)
		}
		ps, err := resolveSchema(doc, ps)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", name, err)
		}
		if _, isObject := ps["properties"]; isObject {
			nested, err := schemaTypes(doc, ps)
			if err != nil {
				return nil, fmt.Errorf("property %q: %w", name, err)
			}
			out[name] = nested
			continue
		}
		t, _ := ps["type"].(string)
		if t == "" {
			t = "object"
		}
		out[name] = t
	}
	return out, nil
}

// resolveSchema follows local $ref pointers and unwraps single-element
// allOf/anyOf wrappers, which is how the runtime marks optional fields.
func resolveSchema(doc, schema map[string]any) (map[string]any, error) {
	for i := 0; i < 32; i++ {
		if ref, ok := schema["$ref"].(string); ok {
			resolved, err := resolveRef(doc, ref)
			if err != nil {
				return nil, err
			}
			schema = resolved
			continue
		}
		if wrapped, ok := unwrapCompound(schema); ok {
			schema = wrapped
			continue
		}
		return schema, nil
	}
	return nil, fmt.Errorf("schema reference chain too deep")
}

func unwrapCompound(schema map[string]any) (map[string]any, bool) {
	for _, key := range []string{"allOf", "anyOf"} {
		variants, ok := schema[key].([]any)
		if !ok {
			continue
		}
		for _, v := range variants {
			m, ok := v.(map[string]any)
			if !ok {
				continue
			}
			// Skip the "null" branch of optional fields.
			if t, _ := m["type"].(string); t == "null" {
				continue
			}
			return m, true
		}
	}
	return nil, false
}

// resolveRef resolves a document-local reference like
// "#/components/schemas/TextGenerationParameters".
func resolveRef(doc map[string]any, ref string) (map[string]any, error) {
	path, ok := strings.CutPrefix(ref, "#/")
	if !ok {
		return nil, fmt.Errorf("unsupported external reference %q", ref)
	}
	return lookupMap(doc, strings.Split(path, "/")...)
}

func lookupMap(doc map[string]any, keys ...string) (map[string]any, error) {
	current := doc
	for _, key := range keys {
		next, ok := current[key].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("missing %q in OpenAPI document", key)
		}
		current = next
	}
	return current, nil
}
