package aiqsdk

import (
	"encoding/json"
	"fmt"
)

// stringAt parses body as a JSON document and walks it field by field along
// path, returning the terminal string value.
//
// A missing intermediate field, a missing terminal field and a terminal
// value that is not a string are all reported uniformly as a
// MalformedResponse failure; the extractor never substitutes a default.
func stringAt(body []byte, path ...string) (string, error) {
	var node any
	if err := json.Unmarshal(body, &node); err != nil {
		return "", malformedResponse("response body is not valid JSON", err)
	}

	for _, field := range path {
		obj, ok := node.(map[string]any)
		if !ok {
			return "", malformedResponse(fmt.Sprintf("field %q not found in response", field), nil)
		}
		if node, ok = obj[field]; !ok {
			return "", malformedResponse(fmt.Sprintf("field %q not found in response", field), nil)
		}
	}

	value, ok := node.(string)
	if !ok {
		return "", malformedResponse(fmt.Sprintf("field %q is not a string", path[len(path)-1]), nil)
	}

	return value, nil
}
