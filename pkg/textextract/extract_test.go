package textextract

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) interface{} {
	t.Helper()
	var v interface{}
	require.NoError(t, json.Unmarshal([]byte(raw), &v))
	return v
}

func TestResponseShapes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"content.text", `{"content":{"text":"hello"}}`, "hello"},
		{"content.parts object", `{"content":{"parts":[{"text":"from parts"}]}}`, "from parts"},
		{"content.parts string", `{"content":{"parts":["bare part"]}}`, "bare part"},
		{"content string", `{"content":"plain content"}`, "plain content"},
		{"message", `{"message":"hi"}`, "hi"},
		{"response", `{"response":"resp"}`, "resp"},
		{"top-level parts object", `{"parts":[{"text":"x"}]}`, "x"},
		{"top-level parts string", `{"parts":["y"]}`, "y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Response(decode(t, tt.raw)))
		})
	}
}

func TestResponseResolutionOrder(t *testing.T) {
	// content.text wins over message.
	payload := decode(t, `{"content":{"text":"winner"},"message":"loser"}`)
	assert.Equal(t, "winner", Response(payload))

	// message wins over top-level parts.
	payload = decode(t, `{"message":"winner","parts":["loser"]}`)
	assert.Equal(t, "winner", Response(payload))
}

func TestResponseUnrecognizedShapeDumpsJSON(t *testing.T) {
	got := Response(decode(t, `{"foo":1}`))
	assert.NotEmpty(t, got)
	assert.Contains(t, got, "foo")
}

func TestResponseNonObjectPayloads(t *testing.T) {
	assert.Equal(t, "already text", Response("already text"))
	assert.Equal(t, "42", Response(42))
	assert.Equal(t, "<nil>", Response(nil))
}

func TestResponseEmptyPartsFallsThrough(t *testing.T) {
	// An empty parts sequence does not match; the message field is next.
	payload := decode(t, `{"content":{"parts":[]},"message":"fallback"}`)
	assert.Equal(t, "fallback", Response(payload))
}

func TestResponseNeverFails(t *testing.T) {
	weird := []interface{}{
		map[string]interface{}{"content": 7},
		map[string]interface{}{"parts": "not a list"},
		map[string]interface{}{"content": map[string]interface{}{"parts": []interface{}{7}}},
		[]interface{}{"a", "b"},
	}
	for _, v := range weird {
		assert.NotPanics(t, func() { Response(v) })
	}
}
