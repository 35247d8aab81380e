package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestGetFileAssignsDenseIDsAndDedupes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.laye")
	if err := os.WriteFile(path, []byte("var x;"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	ctx := New()
	f1, err := ctx.GetFile(path)
	if err != nil {
		t.Fatalf("GetFile: %v", err)
	}
	if f1.ID == 0 {
		t.Fatal("file IDs are 1-based; 0 is reserved")
	}
	f2, err := ctx.GetFile(path)
	if err != nil {
		t.Fatalf("GetFile (second): %v", err)
	}
	if f1 != f2 {
		t.Fatal("GetFile must return the same *File for an already-registered path (I4)")
	}
}

func TestGetFileIOError(t *testing.T) {
	ctx := New()
	if _, err := ctx.GetFile(filepath.Join(t.TempDir(), "does-not-exist.laye")); err == nil {
		t.Fatal("expected an IoError for a missing file")
	} else if _, ok := err.(*IoError); !ok {
		t.Fatalf("expected *IoError, got %T: %v", err, err)
	}
}

func TestDiagsPanicsBeforeSetDiags(t *testing.T) {
	ctx := New()
	defer func() {
		if recover() == nil {
			t.Fatal("expected Diags to panic before SetDiags")
		}
	}()
	ctx.Diags()
}

func TestFileLookupByID(t *testing.T) {
	ctx := New()
	f, err := ctx.AddVirtual("v.laye", []byte("x"))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	if got := ctx.File(f.ID); got != f {
		t.Fatalf("File(%d) = %v, want %v", f.ID, got, f)
	}
	if got := ctx.File(0); got != nil {
		t.Fatalf("File(0) should be nil (0 is reserved), got %v", got)
	}
	if got := ctx.File(9999); got != nil {
		t.Fatalf("File of an unregistered id should be nil, got %v", got)
	}
}

func TestSeekAndText(t *testing.T) {
	ctx := New()
	f, _ := ctx.AddVirtual("v.laye", []byte("line one\nline two\n"))
	loc := NewLocation(f.ID, 9, 4) // "line" at the start of line 2
	seek, ok := ctx.Seek(loc)
	if !ok {
		t.Fatal("Seek failed")
	}
	if seek.Line != 2 || seek.Col != 1 {
		t.Fatalf("got line %d col %d, want line 2 col 1", seek.Line, seek.Col)
	}
	if text := ctx.Text(loc); text != "line" {
		t.Fatalf("Text() = %q, want %q", text, "line")
	}
}

func TestColorFlagAtomic(t *testing.T) {
	ctx := New()
	if ctx.UseColors() {
		t.Fatal("colors must default to off")
	}
	ctx.EnableColors(true)
	if !ctx.UseColors() {
		t.Fatal("EnableColors(true) should flip UseColors")
	}
}

// Property 3: location merge.
func TestLocationMergeSameFile(t *testing.T) {
	a := NewLocation(1, 0, 3)
	b := NewLocation(1, 5, 2)
	m := a.Merge(b)
	if !m.Valid() {
		t.Fatal("merge of two valid same-file locations must be valid")
	}
	if m.Pos() > a.Pos() || m.Pos() > b.Pos() {
		t.Fatalf("merge start %d must not exceed either operand's start", m.Pos())
	}
	if m.End() < a.End() || m.End() < b.End() {
		t.Fatalf("merge end %d must contain both operands", m.End())
	}
}

func TestLocationMergeAcrossFilesInvalid(t *testing.T) {
	a := NewLocation(1, 0, 3)
	b := NewLocation(2, 0, 3)
	if m := a.Merge(b); m.Valid() {
		t.Fatalf("merge across files must be Invalid, got %v", m)
	}
}

func TestLocationMergeWithInvalidReturnsOther(t *testing.T) {
	a := NewLocation(1, 5, 3)
	if got := Invalid.Merge(a); got != a {
		t.Fatalf("merging Invalid with a should yield a, got %v", got)
	}
	if got := a.Merge(Invalid); got != a {
		t.Fatalf("merging a with Invalid should yield a, got %v", got)
	}
}

func TestLocationShiftClampsAtZero(t *testing.T) {
	l := NewLocation(1, 2, 3)
	if got := l.Shift(-10); got.Pos() != 0 {
		t.Fatalf("Shift must clamp at zero, got pos %d", got.Pos())
	}
}

func TestLocationExtendAndContract(t *testing.T) {
	l := NewLocation(1, 0, 3)
	if got := l.Extend(2); got.Len() != 5 {
		t.Fatalf("Extend(2) = %d, want 5", got.Len())
	}
	if got := l.Contract(10); got.Len() != 0 {
		t.Fatalf("Contract(10) should saturate at 0, got %d", got.Len())
	}
	if got := l.Contract(1); got.Len() != 2 {
		t.Fatalf("Contract(1) = %d, want 2", got.Len())
	}
}

func TestLocationValidity(t *testing.T) {
	if Invalid.Valid() {
		t.Fatal("the zero Location must be invalid")
	}
	if !NewLocation(1, 0, 1).Valid() {
		t.Fatal("a location with nonzero length must be valid")
	}
}

func TestSizeBitsAndBytes(t *testing.T) {
	s := Bytes(4)
	if s.Bits() != 32 {
		t.Fatalf("Bytes(4).Bits() = %d, want 32", s.Bits())
	}
	if s.Bytes() != 4 {
		t.Fatalf("Bytes(4).Bytes() = %d, want 4", s.Bytes())
	}
	if Bits(33).Bytes() != 5 {
		t.Fatalf("Bits(33).Bytes() should round up to 5, got %d", Bits(33).Bytes())
	}
}

func TestSizeAlignTo(t *testing.T) {
	s := Bits(10).AlignTo(Bits(8))
	if s.Bits() != 16 {
		t.Fatalf("AlignTo(8) of 10 bits = %d, want 16", s.Bits())
	}
	if got := Bits(16).AlignTo(Bits(8)); got.Bits() != 16 {
		t.Fatalf("already-aligned size should not change, got %d", got.Bits())
	}
	if got := Bits(5).AlignTo(Bits(0)); got.Bits() != 5 {
		t.Fatalf("AlignTo(0) should be a no-op, got %d", got.Bits())
	}
}

func TestSizeSaturatingSub(t *testing.T) {
	if got := Bits(3).SaturatingSub(Bits(10)); !got.IsZero() {
		t.Fatalf("SaturatingSub must clamp at zero, got %d", got.Bits())
	}
	if got := Bits(10).SaturatingSub(Bits(3)); got.Bits() != 7 {
		t.Fatalf("10 - 3 = %d, want 7", got.Bits())
	}
}

func TestSizeCompare(t *testing.T) {
	if Bits(1).Compare(Bits(2)) != -1 {
		t.Fatal("1 bit should compare less than 2 bits")
	}
	if Bits(2).Compare(Bits(1)) != 1 {
		t.Fatal("2 bits should compare greater than 1 bit")
	}
	if Bits(2).Compare(Bits(2)) != 0 {
		t.Fatal("equal sizes should compare equal")
	}
}

func TestInternerDedupesAndRoundTrips(t *testing.T) {
	in := NewInterner()
	id1 := in.Intern("foo")
	id2 := in.Intern("foo")
	if id1 != id2 {
		t.Fatalf("interning the same string twice should yield the same ID: %d != %d", id1, id2)
	}
	id3 := in.Intern("bar")
	if id3 == id1 {
		t.Fatal("distinct strings must get distinct IDs")
	}
	if s, ok := in.Lookup(id1); !ok || s != "foo" {
		t.Fatalf("Lookup(%d) = %q, %v, want \"foo\", true", id1, s, ok)
	}
	if s, ok := in.Lookup(NoStringID); !ok || s != "" {
		t.Fatalf("NoStringID must resolve to \"\", got %q, %v", s, ok)
	}
}

func TestInternerOutOfRangeLookup(t *testing.T) {
	in := NewInterner()
	if _, ok := in.Lookup(StringID(999)); ok {
		t.Fatal("Lookup of an unassigned ID must report false")
	}
}
