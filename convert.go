package jsonedit

import (
	"encoding/json"
	"fmt"

	gyaml "github.com/goccy/go-yaml"
	"gopkg.in/yaml.v3"
)

// DocumentToJSON returns text unchanged when it is already valid JSON, and
// otherwise converts a YAML document to its JSON form so stores that hold
// YAML can feed the editor directly.
func DocumentToJSON(text string) (string, error) {
	if json.Valid([]byte(text)) {
		return text, nil
	}
	var probe any
	if err := yaml.Unmarshal([]byte(text), &probe); err != nil {
		return "", fmt.Errorf("jsonedit: document is neither JSON nor YAML: %w", err)
	}
	out, err := gyaml.YAMLToJSON([]byte(text))
	if err != nil {
		return "", fmt.Errorf("jsonedit: failed to convert YAML: %w", err)
	}
	return string(out), nil
}

// JSONToYAML converts an edited JSON document back to YAML for callers that
// persist YAML.
func JSONToYAML(text string) (string, error) {
	out, err := gyaml.JSONToYAML([]byte(text))
	if err != nil {
		return "", fmt.Errorf("jsonedit: failed to convert to YAML: %w", err)
	}
	return string(out), nil
}
