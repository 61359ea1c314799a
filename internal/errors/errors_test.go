package errors

import (
	"strings"
	"testing"
)

func TestDiagnosticFormat(t *testing.T) {
	checks := []struct {
		name string
		diag Diagnostic
		want string
	}{
		{
			name: "full",
			diag: Diagnostic{Message: "unterminated string literal", File: "main.wst", Line: 3, Column: 7, Code: "L001"},
			want: "main.wst:3:7 — unterminated string literal [L001]",
		},
		{
			name: "no file",
			diag: Diagnostic{Message: "unterminated {} group", Line: 1, Column: 12, Code: "L002"},
			want: "1:12 — unterminated {} group [L002]",
		},
		{
			name: "message only",
			diag: Diagnostic{Message: "something went wrong"},
			want: "something went wrong",
		},
		{
			name: "file without position",
			diag: Diagnostic{Message: "cannot read file", File: "main.wst"},
			want: "main.wst — cannot read file",
		},
	}
	for _, c := range checks {
		if got := c.diag.Format(); got != c.want {
			t.Errorf("%s: expected %q, got %q", c.name, c.want, got)
		}
	}
}

func TestDiagnosticIsError(t *testing.T) {
	var err error = &Diagnostic{Message: "boom", Code: "L001"}
	if !strings.Contains(err.Error(), "boom") {
		t.Errorf("unexpected Error(): %q", err.Error())
	}
}

func TestDiagnosticsCollection(t *testing.T) {
	ds := New("main.wst")
	if ds.HasErrors() {
		t.Error("empty collection must not report errors")
	}

	ds.AddWarning("W001", "unused include")
	if ds.HasErrors() {
		t.Error("warnings alone must not report errors")
	}

	ds.AddError("L001", "unterminated string literal")
	if !ds.HasErrors() {
		t.Error("expected HasErrors after AddError")
	}

	all := ds.All()
	if len(all) != 2 {
		t.Fatalf("expected 2 diagnostics, got %d", len(all))
	}
	// The collection's file context is stamped onto file-less entries.
	if all[0].File != "main.wst" || all[1].File != "main.wst" {
		t.Errorf("expected file context applied, got %q and %q", all[0].File, all[1].File)
	}
}

func TestDiagnosticsFormat(t *testing.T) {
	ds := New("main.wst")
	ds.AddError("L001", "bad")
	ds.AddWarning("W001", "meh")
	ds.Add(&Diagnostic{Severity: SeverityHint, Message: "fyi"})

	out := ds.Format()
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "✗ ") {
		t.Errorf("expected error marker, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "⚠ ") {
		t.Errorf("expected warning marker, got %q", lines[1])
	}
	if !strings.HasPrefix(lines[2], "· ") {
		t.Errorf("expected hint marker, got %q", lines[2])
	}
}
