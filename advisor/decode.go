package advisor

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/etnz/growth"
)

// decodeResponse reads the model's JSON answer. All three fields are
// required, so a partial answer is an error.
func decodeResponse(text string) (*growth.AdvisorResponse, error) {
	var jobj any
	if err := json.Unmarshal([]byte(trimFence(text)), &jobj); err != nil {
		return nil, fmt.Errorf("response is not valid json: %w", err)
	}
	if _, ok := jobj.(map[string]any); !ok {
		return nil, fmt.Errorf("response is not a json object but %T", jobj)
	}

	advice, err := stringAt(jobj, "$.advice")
	if err != nil {
		return nil, err
	}
	focus, err := stringAt(jobj, "$.focusArea")
	if err != nil {
		return nil, err
	}

	jval, err := jsonpath.Get("$.actionItems", jobj)
	if err != nil {
		return nil, fmt.Errorf("response has no %q: %w", "actionItems", err)
	}
	jlist, ok := jval.([]any)
	if !ok {
		return nil, fmt.Errorf("response %q must be a list of strings, got %T", "actionItems", jval)
	}
	items := make([]string, 0, len(jlist))
	for i, jitem := range jlist {
		item, ok := jitem.(string)
		if !ok {
			return nil, fmt.Errorf("response %q item %d must be a string, got %T", "actionItems", i, jitem)
		}
		items = append(items, item)
	}

	return &growth.AdvisorResponse{
		Advice:      advice,
		FocusArea:   focus,
		ActionItems: items,
	}, nil
}

func stringAt(jobj any, path string) (string, error) {
	jval, err := jsonpath.Get(path, jobj)
	if err != nil {
		return "", fmt.Errorf("response has no %q: %w", path, err)
	}
	s, ok := jval.(string)
	if !ok {
		return "", fmt.Errorf("response %q must be a string, got %T", path, jval)
	}
	return s, nil
}

// trimFence removes a markdown code fence around the json.
func trimFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
