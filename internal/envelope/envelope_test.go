package envelope

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestBuilderDefaults(t *testing.T) {
	resp := New().Build()

	if resp.SchemaVersion != CurrentSchemaVersion {
		t.Errorf("SchemaVersion = %q, want %q", resp.SchemaVersion, CurrentSchemaVersion)
	}
	if resp.Error != nil {
		t.Errorf("Error = %v, want nil", *resp.Error)
	}
	if resp.Meta != nil {
		t.Errorf("Meta = %+v, want nil", resp.Meta)
	}
}

func TestBuilderFullResponse(t *testing.T) {
	resp := New().
		Data(map[string]int{"count": 3}).
		RequestID("req-123").
		Duration(42).
		Warning("tools-missing", "2 tools missing").
		Build()

	if resp.Meta == nil || resp.Meta.RequestID != "req-123" || resp.Meta.DurationMs != 42 {
		t.Errorf("Meta = %+v", resp.Meta)
	}
	if len(resp.Warnings) != 1 || resp.Warnings[0].Code != "tools-missing" {
		t.Errorf("Warnings = %+v", resp.Warnings)
	}
}

func TestBuilderError(t *testing.T) {
	resp := New().Error(errors.New("boom")).Build()
	if resp.Error == nil || *resp.Error != "boom" {
		t.Errorf("Error = %v, want boom", resp.Error)
	}

	resp = New().Error(nil).Build()
	if resp.Error != nil {
		t.Errorf("Error = %v, want nil for nil error", *resp.Error)
	}
}

func TestResponseJSONShape(t *testing.T) {
	data, err := json.Marshal(New().Data("payload").Build())
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded["schemaVersion"] != CurrentSchemaVersion {
		t.Errorf("schemaVersion = %v", decoded["schemaVersion"])
	}
	if decoded["data"] != "payload" {
		t.Errorf("data = %v", decoded["data"])
	}
	for _, key := range []string{"meta", "warnings", "error"} {
		if _, present := decoded[key]; present {
			t.Errorf("empty field %q should be omitted", key)
		}
	}
}
