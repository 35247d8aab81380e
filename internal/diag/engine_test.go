package diag

import (
	"bytes"
	"strings"
	"testing"

	"choir/internal/source"
)

func newTestEngine(t *testing.T, content string) (*Engine, *source.Context, source.FileID, *bytes.Buffer) {
	t.Helper()
	ctx := source.New()
	f, err := ctx.AddVirtual("test.laye", []byte(content))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	var buf bytes.Buffer
	e := NewEngine(&buf, ctx, 0)
	return e, ctx, f.ID, &buf
}

func TestReportInvalidLocationOmitsSource(t *testing.T) {
	e, _, _, buf := newTestEngine(t, "foo")
	e.Report(Error, source.Invalid, "boom")
	if !strings.Contains(buf.String(), "Error: boom") {
		t.Fatalf("expected fallback rendering, got %q", buf.String())
	}
}

func TestErrorFlagMonotone(t *testing.T) {
	e, _, id, _ := newTestEngine(t, "foo bar")
	if e.HasErrors() {
		t.Fatal("fresh engine must not have errors")
	}
	e.Report(Warning, source.NewLocation(id, 0, 3), "just a warning")
	if e.HasErrors() {
		t.Fatal("warnings must not set the error flag")
	}
	e.Report(Error, source.NewLocation(id, 0, 3), "an error")
	if !e.HasErrors() {
		t.Fatal("error flag must be set after an Error")
	}
	e.Report(Warning, source.NewLocation(id, 0, 3), "another warning")
	if !e.HasErrors() {
		t.Fatal("error flag must stay set (I5 monotonicity)")
	}
}

func TestOrphanNotePanics(t *testing.T) {
	e, _, id, _ := newTestEngine(t, "foo")
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on orphan Note")
		}
	}()
	e.Report(Note, source.NewLocation(id, 0, 3), "stray note")
}

func TestNoteFollowsParent(t *testing.T) {
	e, _, id, buf := newTestEngine(t, "foo")
	e.Report(Error, source.NewLocation(id, 0, 3), "primary")
	e.Report(Note, source.NewLocation(id, 0, 3), "secondary")
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	// header + source + underline per diagnostic = 3 lines each
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines (2 diagnostics x 3 lines), got %d: %q", len(lines), buf.String())
	}
}

func TestErrorLimitThrottles(t *testing.T) {
	ctx := source.New()
	f, _ := ctx.AddVirtual("t.laye", []byte("a b c d"))
	var buf bytes.Buffer
	e := NewEngine(&buf, ctx, 2)
	for i := 0; i < 5; i++ {
		e.Report(Error, source.NewLocation(f.ID, 0, 1), "err")
	}
	if !e.Throttled() {
		t.Fatal("expected engine to be throttled")
	}
	if got := strings.Count(buf.String(), "suppressing further output"); got != 1 {
		t.Fatalf("expected exactly one throttle notice, got %d", got)
	}
}

func TestTabExpandedUnderline(t *testing.T) {
	// S6: "\tfoo bar" with "bar" underlined.
	e, ctx, id, buf := newTestEngine(t, "\tfoo bar")
	barPos := uint32(len("\tfoo "))
	e.Report(Error, source.NewLocation(id, barPos, 3), "bad name")
	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d: %q", len(lines), out)
	}
	underline := lines[2]
	if !strings.HasSuffix(strings.TrimRight(underline, "\n"), "~~~") {
		t.Fatalf("expected underline to end in three tildes, got %q", underline)
	}
	if !strings.HasPrefix(underline, "    ") {
		t.Fatalf("expected tab-expanded leading spaces, got %q", underline)
	}
	_ = ctx
}
