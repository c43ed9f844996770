package filter

import (
	"encoding/json"
	"fmt"

	"github.com/jmespath/go-jmespath"
)

// Filter is a compiled JMESPath expression applied to a repositories payload,
// e.g. [?stars > `1000`] or [?language=='Go'] | [:5]
type Filter struct {
	expression string
	jp         *jmespath.JMESPath
}

// Compile parses a JMESPath expression
func Compile(expression string) (*Filter, error) {
	jp, err := jmespath.Compile(expression)
	if err != nil {
		return nil, fmt.Errorf("invalid JMESPath expression '%s': %w", expression, err)
	}
	return &Filter{expression: expression, jp: jp}, nil
}

// Expression returns the source expression
func (f *Filter) Expression() string {
	return f.expression
}

// Apply runs the expression on a JSON document and returns the result as JSON.
// The result must still be an array so that it decodes as a project list.
func (f *Filter) Apply(body []byte) ([]byte, error) {
	var data interface{}
	if err := json.Unmarshal(body, &data); err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	result, err := f.jp.Search(data)
	if err != nil {
		return nil, fmt.Errorf("JMESPath search failed: %w", err)
	}

	// A filter that matches nothing yields an empty list, not null
	if result == nil {
		return []byte("[]"), nil
	}

	if _, ok := result.([]interface{}); !ok {
		return nil, fmt.Errorf("expression '%s' must produce a list, got %T", f.expression, result)
	}

	output, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}
	return output, nil
}
