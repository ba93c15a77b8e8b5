package diag

import "testing"

func TestSynthesizeSummaryHasAllKeys(t *testing.T) {
	result := Synthesize("python", nil, nil, nil)

	for _, severity := range Severities {
		count, present := result.Summary[severity.String()]
		if !present {
			t.Errorf("summary is missing key %q", severity.String())
		}
		if count != 0 {
			t.Errorf("summary[%q] = %d, want 0", severity.String(), count)
		}
	}
}

func TestSynthesizeCounts(t *testing.T) {
	diagnostics := []Diagnostic{
		{Severity: SeverityError, Location: Location{File: "a.py"}},
		{Severity: SeverityError, Location: Location{File: "b.py"}},
		{Severity: SeverityWarning, Location: Location{File: "a.py"}},
		{Severity: SeverityHint, Location: Location{File: "c.py"}},
	}

	result := Synthesize("python", diagnostics, nil, nil)

	if got, want := result.Summary["error"], 2; got != want {
		t.Errorf("summary[error] = %d, want %d", got, want)
	}
	if got, want := result.Summary["warning"], 1; got != want {
		t.Errorf("summary[warning] = %d, want %d", got, want)
	}
	if got, want := result.Summary["info"], 0; got != want {
		t.Errorf("summary[info] = %d, want %d", got, want)
	}
	if got, want := result.Summary["hint"], 1; got != want {
		t.Errorf("summary[hint] = %d, want %d", got, want)
	}
}

func TestSynthesizeCountsDistinctFiles(t *testing.T) {
	diagnostics := []Diagnostic{
		{Severity: SeverityError, Location: Location{File: "a.py", Line: 1}},
		{Severity: SeverityError, Location: Location{File: "a.py", Line: 2}},
		{Severity: SeverityWarning, Location: Location{File: "b.py", Line: 3}},
	}

	result := Synthesize("python", diagnostics, nil, nil)
	if got, want := result.FilesAnalyzed, 2; got != want {
		t.Errorf("FilesAnalyzed = %d, want %d", got, want)
	}
}

func TestSynthesizeNeverReturnsNilCollections(t *testing.T) {
	result := Synthesize("go", nil, nil, nil)

	if result.Diagnostics == nil {
		t.Error("Diagnostics is nil, want empty slice")
	}
	if result.Metrics == nil {
		t.Error("Metrics is nil, want empty map")
	}
}

func TestEmptyResult(t *testing.T) {
	result := EmptyResult("unknown")

	if got, want := result.Language, "unknown"; got != want {
		t.Errorf("Language = %q, want %q", got, want)
	}
	if result.FilesAnalyzed != 0 {
		t.Errorf("FilesAnalyzed = %d, want 0", result.FilesAnalyzed)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("Diagnostics has %d entries, want 0", len(result.Diagnostics))
	}
	if len(result.Summary) != len(Severities) {
		t.Errorf("Summary has %d keys, want %d", len(result.Summary), len(Severities))
	}
}
