package buffer

import (
	"math/rand"
	"testing"
)

func TestDocument_InsertTabOnEmptyRow(t *testing.T) {
	d := newDoc(2, nil, "")
	d.InsertChar(0, 0, '\t')

	r := d.Row(0)
	if got, want := r.RenderedLen(), 2; got != want {
		t.Fatalf("rendered len: got %d, want %d", got, want)
	}
	if got := r.CharIndex(1, d.TabWidth()); got != 0 {
		t.Fatalf("CharIndex(1): got %d, want 0", got)
	}
	checkInvariants(t, d)
}

func TestDocument_InsertCharClampsColumn(t *testing.T) {
	d := newDoc(4, nil, "ab")
	d.InsertChar(0, 99, 'c')
	d.InsertChar(0, -4, '_')
	if got, want := d.Row(0).Raw(), "_abc"; got != want {
		t.Fatalf("raw: got %q, want %q", got, want)
	}
	if got := d.Dirty(); got != 2 {
		t.Fatalf("dirty: got %d, want 2", got)
	}
}

func TestDocument_DeleteCharBoundaryIsNoop(t *testing.T) {
	d := newDoc(4, nil, "ab", "cd")
	before := d.Dump()

	d.DeleteChar(0, -1)
	d.DeleteChar(0, 2)
	d.DeleteChar(5, 0)

	if got := d.Dump(); got != before {
		t.Fatalf("dump changed: got %q, want %q", got, before)
	}
	if d.Dirty() != 0 {
		t.Fatalf("expected no modification, got dirty=%d", d.Dirty())
	}

	d.DeleteChar(1, 0)
	if got, want := d.Dump(), "ab\nd\n"; got != want {
		t.Fatalf("dump: got %q, want %q", got, want)
	}
}

func TestDocument_InsertAndDeleteRowReindex(t *testing.T) {
	d := newDoc(4, nil, "a", "b", "c")
	d.InsertRow(1, "x")
	d.InsertRow(99, "z")
	d.InsertRow(-1, "first")
	if got, want := d.Dump(), "first\na\nx\nb\nc\nz\n"; got != want {
		t.Fatalf("dump: got %q, want %q", got, want)
	}
	checkInvariants(t, d)

	d.DeleteRow(0)
	d.DeleteRow(42)
	if got, want := d.Dump(), "a\nx\nb\nc\nz\n"; got != want {
		t.Fatalf("dump: got %q, want %q", got, want)
	}
	checkInvariants(t, d)
}

func TestDocument_SplitRow(t *testing.T) {
	d := newDoc(4, nil, "hello world", "tail")
	d.SplitRow(0, 5)
	if got, want := d.Dump(), "hello\n world\ntail\n"; got != want {
		t.Fatalf("dump: got %q, want %q", got, want)
	}
	d.SplitRow(2, 0)
	if got, want := d.Dump(), "hello\n world\n\ntail\n"; got != want {
		t.Fatalf("dump: got %q, want %q", got, want)
	}
	checkInvariants(t, d)
}

func TestDocument_JoinRowShiftsIndices(t *testing.T) {
	d := newDoc(4, nil, "a", "b", "c", "d")
	d.JoinRow(2)

	if got, want := d.RowCount(), 3; got != want {
		t.Fatalf("rows: got %d, want %d", got, want)
	}
	if got, want := d.Dump(), "a\nbc\nd\n"; got != want {
		t.Fatalf("dump: got %q, want %q", got, want)
	}
	if got := d.Row(2).Index(); got != 2 {
		t.Fatalf("former row 3 index: got %d, want 2", got)
	}
	checkInvariants(t, d)

	d.JoinRow(0)
	d.JoinRow(3)
	if got, want := d.RowCount(), 3; got != want {
		t.Fatalf("rows after no-op joins: got %d, want %d", got, want)
	}
}

func TestDocument_AppendString(t *testing.T) {
	d := newDoc(4, nil, "a")
	d.AppendString(0, "\tb")
	if got, want := d.Row(0).Rendered(), "a   b"; got != want {
		t.Fatalf("rendered: got %q, want %q", got, want)
	}
	checkInvariants(t, d)
}

func TestDocument_RandomEditsKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	d := newDoc(3, nil, "int x;", "/* a", "\tb */", "c")
	runes := []rune{'a', '\t', ' ', '/', '*', '"', '1'}

	for step := 0; step < 500; step++ {
		n := d.RowCount()
		row := 0
		if n > 0 {
			row = rng.Intn(n)
		}
		col := rng.Intn(8)
		switch rng.Intn(6) {
		case 0:
			d.InsertChar(row, col, runes[rng.Intn(len(runes))])
		case 1:
			d.DeleteChar(row, col)
		case 2:
			d.SplitRow(row, col)
		case 3:
			d.JoinRow(row)
		case 4:
			d.InsertRow(row, "x\ty")
		case 5:
			if n > 1 {
				d.DeleteRow(row)
			}
		}
		checkInvariants(t, d)
	}
}
