package display

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/concave-dev/gns3util/cmd/gns3util/client"
)

func TestRenderResult(t *testing.T) {
	tests := []struct {
		name     string
		result   client.Result
		expected string
	}{
		{
			name:     "object keeps field order",
			result:   client.Success(json.RawMessage(`{"zeta": 1, "alpha": {"b": true, "a": null}}`)),
			expected: "{\n  \"zeta\": 1,\n  \"alpha\": {\n    \"b\": true,\n    \"a\": null\n  }\n}\n",
		},
		{
			name:     "array",
			result:   client.Success(json.RawMessage(`[1,2]`)),
			expected: "[\n  1,\n  2\n]\n",
		},
		{
			name:     "string marker",
			result:   client.Success(json.RawMessage(`"Dummy response for version"`)),
			expected: "\"Dummy response for version\"\n",
		},
		{
			name:     "failure prints nothing",
			result:   client.Failure("GET /version failed with status 500"),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := RenderResult(&buf, tt.result); err != nil {
				t.Fatalf("RenderResult: %v", err)
			}
			if buf.String() != tt.expected {
				t.Errorf("output = %q, want %q", buf.String(), tt.expected)
			}
		})
	}
}

func TestRenderJSONValue(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, map[string]int{"a": 1}); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "{\n  \"a\": 1\n}\n" {
		t.Errorf("output = %q", buf.String())
	}
}

func TestRenderJSONInvalid(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderJSON(&buf, json.RawMessage(`{broken`)); err == nil {
		t.Error("expected error for invalid JSON")
	}
	if buf.Len() != 0 {
		t.Errorf("partial output written: %q", buf.String())
	}
}

func TestColorDisabledForBuffers(t *testing.T) {
	if ColorEnabled(&bytes.Buffer{}) {
		t.Error("a buffer is never a terminal")
	}
}

func TestBlockPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := NewBlockPrinter(&buf)

	err := p.Print([]Field{{"username", "alice"}, {"user_id", "1"}})
	if err != nil {
		t.Fatal(err)
	}
	if err := p.Print(nil); err != nil {
		t.Fatal(err)
	}

	expected := "---\nusername: alice\nuser_id: 1\n---\n---\n---\n"
	if buf.String() != expected {
		t.Errorf("output = %q, want %q", buf.String(), expected)
	}
}
