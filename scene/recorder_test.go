package scene

import (
	"image/color"
	"testing"
)

func TestRecorder_Basic(t *testing.T) {
	r := NewRecorder()

	pts := line(0, 0, 1, 0)
	h := r.AddPolyline(pts, Style{Color: color.RGBA{A: 255}, Width: 2})
	if h == 0 {
		t.Fatal("expected non-zero handle")
	}
	if r.Actors() != 1 {
		t.Fatalf("Actors() = %d, want 1", r.Actors())
	}

	// The recorder stores a copy, not the caller's slice.
	pts[0][0] = 42
	obj, ok := r.Table().Get(h)
	if !ok {
		t.Fatal("actor missing from table")
	}
	if obj.Points[0][0] != 0 {
		t.Error("AddPolyline aliased the caller's slice")
	}

	if !r.SetPoints(h, line(3, 3, 4, 4)) {
		t.Fatal("SetPoints failed")
	}
	if r.Updates() != 1 {
		t.Fatalf("Updates() = %d, want 1", r.Updates())
	}

	r.Render()
	r.Render()
	if r.Renders() != 2 {
		t.Fatalf("Renders() = %d, want 2", r.Renders())
	}

	if !r.Remove(h) {
		t.Fatal("Remove failed")
	}
	if r.Remove(h) {
		t.Fatal("second Remove should fail")
	}
}

func TestRecorder_Clear(t *testing.T) {
	r := NewRecorder()

	r.AddPolyline(line(0, 0, 1, 1), Style{})
	r.AddPolyline(line(2, 2, 3, 3), Style{})
	r.Clear()

	if r.Actors() != 0 {
		t.Fatalf("Actors() = %d after Clear, want 0", r.Actors())
	}
}
