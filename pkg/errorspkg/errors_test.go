package errorspkg

import "testing"

func TestDiagnosticFormat(t *testing.T) {
	d := New("unexpected character", Position{Line: 2, Column: 3}, ErrorTypeLexer)
	got := d.Error()
	want := "YAML(2,4): unexpected character"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReporterAccumulatesWhenNotThrowing(t *testing.T) {
	r := NewReporter(false)
	if err := r.Report(Position{}, ErrorTypeParser, "first"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := r.Report(Position{}, ErrorTypeParser, "second"); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !r.ErrorOccurred() {
		t.Fatal("expected ErrorOccurred to be true")
	}
	if len(r.Errors()) != 2 {
		t.Fatalf("got %d diagnostics, want 2", len(r.Errors()))
	}
}

func TestReporterThrowsOnFirstError(t *testing.T) {
	r := NewReporter(true)
	err := r.Report(Position{Line: 0, Column: 0}, ErrorTypeLexer, "boom")
	if err == nil {
		t.Fatal("expected a non-nil error under ThrowOnError")
	}
	if len(r.Errors()) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(r.Errors()))
	}
}
