// Package textextract normalizes loosely-structured agent reply payloads
// into a single text string. Agent endpoints answer in several shapes
// depending on the hosting layer; callers get best-effort text back and
// never an error.
package textextract

import (
	"encoding/json"
	"fmt"
)

// matcher attempts to pull reply text out of one known payload shape.
// It reports false when the shape does not apply.
type matcher func(m map[string]interface{}) (string, bool)

// Resolution order matters: the first matching shape wins.
var matchers = []matcher{
	contentText,
	contentParts,
	contentString,
	messageField,
	responseField,
	topLevelParts,
}

// Response extracts reply text from an arbitrarily-shaped payload.
// Unrecognized object shapes degrade to an indented JSON dump so the
// caller can inspect what came back; non-object, non-string payloads
// degrade to their generic string form.
func Response(payload interface{}) string {
	switch v := payload.(type) {
	case map[string]interface{}:
		for _, match := range matchers {
			if text, ok := match(v); ok {
				return text
			}
		}
		dump, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(dump)
	case string:
		return v
	default:
		return fmt.Sprintf("%v", payload)
	}
}

// {"content": {"text": "..."}}
func contentText(m map[string]interface{}) (string, bool) {
	content, ok := m["content"].(map[string]interface{})
	if !ok {
		return "", false
	}
	text, ok := content["text"].(string)
	return text, ok
}

// {"content": {"parts": [...]}} — A2A format
func contentParts(m map[string]interface{}) (string, bool) {
	content, ok := m["content"].(map[string]interface{})
	if !ok {
		return "", false
	}
	return firstPart(content["parts"])
}

// {"content": "..."}
func contentString(m map[string]interface{}) (string, bool) {
	text, ok := m["content"].(string)
	return text, ok
}

// {"message": ...}
func messageField(m map[string]interface{}) (string, bool) {
	v, ok := m["message"]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// {"response": ...}
func responseField(m map[string]interface{}) (string, bool) {
	v, ok := m["response"]
	if !ok {
		return "", false
	}
	return stringify(v), true
}

// {"parts": [...]}
func topLevelParts(m map[string]interface{}) (string, bool) {
	return firstPart(m["parts"])
}

// firstPart resolves element 0 of a parts sequence, which may be either
// an object carrying a text field or a bare string.
func firstPart(v interface{}) (string, bool) {
	parts, ok := v.([]interface{})
	if !ok || len(parts) == 0 {
		return "", false
	}
	switch p := parts[0].(type) {
	case map[string]interface{}:
		text, ok := p["text"].(string)
		return text, ok
	case string:
		return p, true
	}
	return "", false
}

func stringify(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", v)
}
