package diag

import (
	"encoding/json"
	"testing"
)

func TestSeverityOrdering(t *testing.T) {
	if !(SeverityHint < SeverityInfo && SeverityInfo < SeverityWarning && SeverityWarning < SeverityError) {
		t.Error("severity constants are not in ascending order")
	}
}

func TestSeverityString(t *testing.T) {
	tests := []struct {
		severity Severity
		want     string
	}{
		{SeverityHint, "hint"},
		{SeverityInfo, "info"},
		{SeverityWarning, "warning"},
		{SeverityError, "error"},
		{Severity(99), "unknown"},
	}

	for _, tt := range tests {
		if got := tt.severity.String(); got != tt.want {
			t.Errorf("Severity(%d).String() = %q, want %q", tt.severity, got, tt.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		name   string
		want   Severity
		wantOk bool
	}{
		{"hint", SeverityHint, true},
		{"info", SeverityInfo, true},
		{"warning", SeverityWarning, true},
		{"warn", SeverityWarning, true},
		{"error", SeverityError, true},
		{"ERROR", SeverityError, true},
		{"critical", SeverityWarning, false},
		{"", SeverityWarning, false},
	}

	for _, tt := range tests {
		got, ok := ParseSeverity(tt.name)
		if got != tt.want || ok != tt.wantOk {
			t.Errorf("ParseSeverity(%q) = (%v, %v), want (%v, %v)",
				tt.name, got, ok, tt.want, tt.wantOk)
		}
	}
}

func TestSeverityJSONRoundTrip(t *testing.T) {
	for _, severity := range Severities {
		data, err := json.Marshal(severity)
		if err != nil {
			t.Fatalf("Marshal(%v): %v", severity, err)
		}

		var decoded Severity
		if err := json.Unmarshal(data, &decoded); err != nil {
			t.Fatalf("Unmarshal(%s): %v", data, err)
		}
		if decoded != severity {
			t.Errorf("round trip of %v produced %v", severity, decoded)
		}
	}
}

func TestSeverityUnmarshalRejectsUnknown(t *testing.T) {
	var severity Severity
	if err := json.Unmarshal([]byte(`"fatal"`), &severity); err == nil {
		t.Error("expected error for unknown severity name")
	}
}

func TestLocationString(t *testing.T) {
	loc := Location{File: "src/app.py", Line: 10, Column: 4}
	if got, want := loc.String(), "src/app.py:10:4"; got != want {
		t.Errorf("Location.String() = %q, want %q", got, want)
	}
}

func TestDiagnosticJSONOmitsEmptyFields(t *testing.T) {
	data, err := json.Marshal(Diagnostic{
		Message:  "unused variable",
		Severity: SeverityWarning,
		Location: Location{File: "a.py", Line: 1, Column: 1},
	})
	if err != nil {
		t.Fatal(err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{"code", "source", "suggestion", "related"} {
		if _, present := decoded[key]; present {
			t.Errorf("empty field %q should be omitted from JSON", key)
		}
	}
}
