package lineartransform

import (
	"errors"
	"math"
	"testing"

	xerrors "github.com/vizkit/explorer/errors"
	"github.com/vizkit/explorer/geom"
	"github.com/vizkit/explorer/param"
	"github.com/vizkit/explorer/scene"
)

func setupModule(t *testing.T) (*Module, *scene.Recorder) {
	t.Helper()
	m := New()
	rec := scene.NewRecorder()
	if err := m.Setup(rec); err != nil {
		t.Fatalf("Setup = %v", err)
	}
	return m, rec
}

// update applies schema defaults overlaid with the given values.
func update(t *testing.T, m *Module, overrides param.Values) {
	t.Helper()
	vals := m.ParamSchema().Defaults()
	for k, v := range overrides {
		vals[k] = v
	}
	if err := m.Update(vals); err != nil {
		t.Fatalf("Update = %v", err)
	}
}

func circlePoints(t *testing.T, m *Module, rec *scene.Recorder) geom.Polyline {
	t.Helper()
	obj, ok := rec.Table().Get(m.circle)
	if !ok {
		t.Fatal("circle actor missing")
	}
	return obj.Points
}

func TestModule_Schema(t *testing.T) {
	m := New()
	schema := m.ParamSchema()

	if err := schema.Validate(); err != nil {
		t.Fatalf("schema invalid: %v", err)
	}

	d := schema.Defaults()
	if got := d.Matrix("A", geom.Mat2{}); got != geom.Identity() {
		t.Errorf("default A = %v, want identity", got)
	}
	if got := d.Int("grid_n", 0); got != 10 {
		t.Errorf("default grid_n = %d, want 10", got)
	}
	if got := d.Float("animate_t", 0); got != 1 {
		t.Errorf("default animate_t = %g, want 1", got)
	}
	if !d.Bool("show_eigen", false) {
		t.Error("default show_eigen = false, want true")
	}
}

func TestModule_Setup(t *testing.T) {
	m, rec := setupModule(t)

	// One circle plus 2n grid lines; the eigen overlay appears on the
	// first update.
	if got := rec.Actors(); got != 1+2*defaultGridN {
		t.Errorf("actors = %d, want %d", got, 1+2*defaultGridN)
	}

	obj, ok := rec.Table().Get(m.circle)
	if !ok {
		t.Fatal("circle actor missing")
	}
	if obj.Style != circleStyle {
		t.Errorf("circle style = %v, want %v", obj.Style, circleStyle)
	}
	if len(obj.Points) != circleSamples {
		t.Errorf("circle samples = %d, want %d", len(obj.Points), circleSamples)
	}

	gobj, ok := rec.Table().Get(m.grid[0])
	if !ok {
		t.Fatal("grid actor missing")
	}
	if gobj.Style != gridStyle {
		t.Errorf("grid style = %v, want %v", gobj.Style, gridStyle)
	}
}

func TestModule_SetupNilViewer(t *testing.T) {
	err := New().Setup(nil)
	var xe *xerrors.Error
	if !errors.As(err, &xe) || xe.Kind != xerrors.KindNoViewer {
		t.Errorf("Setup(nil) = %v, want no_viewer", err)
	}
}

func TestModule_IdentityKeepsCircle(t *testing.T) {
	m, rec := setupModule(t)

	// Defaults: A = identity, t = 1, so At is the identity.
	update(t, m, nil)

	for i, p := range circlePoints(t, m, rec) {
		r := math.Hypot(p[0], p[1])
		if math.Abs(r-1) > 1e-9 {
			t.Fatalf("point %d radius = %g, want 1", i, r)
		}
	}

	// The identity has real eigenvectors, so the overlay is present.
	if got := rec.Actors(); got != 1+2*defaultGridN+2 {
		t.Errorf("actors = %d, want %d", got, 1+2*defaultGridN+2)
	}
}

func TestModule_ScaleSetsExtents(t *testing.T) {
	m, rec := setupModule(t)

	update(t, m, param.Values{"A": geom.Mat2{{2, 0}, {0, 1}}})

	var maxX, maxY float64
	for _, p := range circlePoints(t, m, rec) {
		maxX = math.Max(maxX, math.Abs(p[0]))
		maxY = math.Max(maxY, math.Abs(p[1]))
	}
	if math.Abs(maxX-2) > 1e-9 {
		t.Errorf("x extent = %g, want 2", maxX)
	}
	if math.Abs(maxY-1) > 1e-9 {
		t.Errorf("y extent = %g, want 1", maxY)
	}
}

func TestModule_AnimateInterpolates(t *testing.T) {
	m, rec := setupModule(t)
	uniform := geom.Mat2{{3, 0}, {0, 3}}

	// t = 0.5 against 3*I yields 2*I, so the circle has radius 2.
	update(t, m, param.Values{"A": uniform, "animate_t": 0.5})
	for i, p := range circlePoints(t, m, rec) {
		if r := math.Hypot(p[0], p[1]); math.Abs(r-2) > 1e-9 {
			t.Fatalf("t=0.5: point %d radius = %g, want 2", i, r)
		}
	}

	// t = 0 collapses every matrix to the identity.
	update(t, m, param.Values{"A": uniform, "animate_t": 0.0})
	for i, p := range circlePoints(t, m, rec) {
		if r := math.Hypot(p[0], p[1]); math.Abs(r-1) > 1e-9 {
			t.Fatalf("t=0: point %d radius = %g, want 1", i, r)
		}
	}
}

func TestModule_GridRebuildOnDensityChange(t *testing.T) {
	m, rec := setupModule(t)
	update(t, m, nil)

	if len(m.grid) != 2*defaultGridN {
		t.Fatalf("grid actors = %d, want %d", len(m.grid), 2*defaultGridN)
	}

	update(t, m, param.Values{"grid_n": 12})

	if len(m.grid) != 24 {
		t.Fatalf("grid actors after rebuild = %d, want 24", len(m.grid))
	}
	if got := rec.Actors(); got != 1+24+2 {
		t.Errorf("actors = %d, want %d", got, 1+24+2)
	}
	for _, line := range m.gridBase {
		if len(line) != 12 {
			t.Fatalf("grid line has %d points, want 12", len(line))
		}
	}
}

func TestModule_StableDensityMutatesInPlace(t *testing.T) {
	m, rec := setupModule(t)
	update(t, m, nil)

	circleHandle := m.circle
	gridHandles := append([]scene.Handle(nil), m.grid...)
	updatesBefore := rec.Updates()

	// Same density, different matrix: no actors are created or removed.
	update(t, m, param.Values{"A": geom.Mat2{{0, -1}, {1, 0}}})

	if m.circle != circleHandle {
		t.Error("circle actor replaced on plain parameter change")
	}
	for i, h := range m.grid {
		if h != gridHandles[i] {
			t.Fatalf("grid actor %d replaced on plain parameter change", i)
		}
	}
	if rec.Updates() <= updatesBefore {
		t.Error("no in-place geometry updates recorded")
	}
}

func TestModule_EigenOverlay(t *testing.T) {
	m, rec := setupModule(t)

	t.Run("real pairs drawn scaled", func(t *testing.T) {
		update(t, m, param.Values{"A": geom.Mat2{{2, 0}, {0, 1}}})

		if len(m.eigen) != 2 {
			t.Fatalf("eigen actors = %d, want 2", len(m.eigen))
		}
		for i, h := range m.eigen {
			obj, ok := rec.Table().Get(h)
			if !ok {
				t.Fatalf("eigen actor %d missing", i)
			}
			if obj.Style != eigenStyles[i] {
				t.Errorf("eigen actor %d style = %v, want %v", i, obj.Style, eigenStyles[i])
			}
			if len(obj.Points) != 2 || obj.Points[0].Len() != 0 {
				t.Fatalf("eigen actor %d not anchored at origin: %v", i, obj.Points)
			}
			tip := obj.Points[1]
			if l := math.Hypot(tip[0], tip[1]); math.Abs(l-eigenScale) > 1e-6 {
				t.Errorf("eigen actor %d length = %g, want %g", i, l, eigenScale)
			}
		}
	})

	t.Run("complex pairs skipped", func(t *testing.T) {
		update(t, m, param.Values{"A": geom.Mat2{{0, -1}, {1, 0}}})
		if len(m.eigen) != 0 {
			t.Fatalf("eigen actors = %d for rotation, want 0", len(m.eigen))
		}
	})

	t.Run("toggle off removes overlay", func(t *testing.T) {
		update(t, m, param.Values{"A": geom.Mat2{{2, 0}, {0, 1}}})
		if len(m.eigen) != 2 {
			t.Fatalf("precondition failed: eigen actors = %d", len(m.eigen))
		}

		update(t, m, param.Values{"A": geom.Mat2{{2, 0}, {0, 1}}, "show_eigen": false})
		if len(m.eigen) != 0 {
			t.Fatalf("eigen actors = %d with overlay off, want 0", len(m.eigen))
		}
		if got := rec.Actors(); got != 1+2*defaultGridN {
			t.Errorf("actors = %d, want %d", got, 1+2*defaultGridN)
		}
	})
}

func TestModule_UpdateBeforeSetup(t *testing.T) {
	m := New()
	err := m.Update(m.ParamSchema().Defaults())
	var xe *xerrors.Error
	if !errors.As(err, &xe) || xe.Kind != xerrors.KindNoViewer {
		t.Errorf("Update before Setup = %v, want no_viewer", err)
	}
}

func TestModule_GridNOutOfRange(t *testing.T) {
	m, rec := setupModule(t)
	update(t, m, nil)
	before := rec.Actors()

	vals := m.ParamSchema().Defaults()
	vals["grid_n"] = 99
	err := m.Update(vals)

	var xe *xerrors.Error
	if !errors.As(err, &xe) || xe.Kind != xerrors.KindOutOfRange {
		t.Fatalf("Update(grid_n=99) = %v, want out_of_range", err)
	}
	if rec.Actors() != before {
		t.Error("scene changed despite rejected update")
	}
}

func TestModule_Teardown(t *testing.T) {
	m, _ := setupModule(t)
	update(t, m, nil)

	if err := m.Teardown(); err != nil {
		t.Fatalf("Teardown = %v", err)
	}

	// The instance holds nothing after teardown and refuses updates.
	if m.viewer != nil || m.gridBase != nil || m.circle != 0 {
		t.Error("Teardown left references behind")
	}
	err := m.Update(param.Values{})
	var xe *xerrors.Error
	if !errors.As(err, &xe) || xe.Kind != xerrors.KindNoViewer {
		t.Errorf("Update after Teardown = %v, want no_viewer", err)
	}
}

func TestModule_UpdateIdempotent(t *testing.T) {
	m, rec := setupModule(t)

	vals := m.ParamSchema().Defaults()
	vals["A"] = geom.Mat2{{1, 1}, {0, 1}}

	if err := m.Update(vals); err != nil {
		t.Fatal(err)
	}
	first := circlePoints(t, m, rec).Clone()
	actors := rec.Actors()

	if err := m.Update(vals); err != nil {
		t.Fatal(err)
	}
	second := circlePoints(t, m, rec)

	if rec.Actors() != actors {
		t.Error("actor count changed on repeated equal update")
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("point %d drifted on repeated update: %v vs %v", i, first[i], second[i])
		}
	}
}
