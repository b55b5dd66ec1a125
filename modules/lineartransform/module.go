package lineartransform

import (
	"image/color"

	"github.com/vizkit/explorer/errors"
	"github.com/vizkit/explorer/geom"
	"github.com/vizkit/explorer/host"
	"github.com/vizkit/explorer/param"
	"github.com/vizkit/explorer/scene"
)

// ID is the registry id of this module.
const ID = "linear_transform_2d"

const (
	circleSamples = 128
	gridExtent    = 1.0
	eigenScale    = 1.2

	defaultGridN = 10
	minGridN     = 4
	maxGridN     = 40
)

var (
	circleStyle = scene.Style{Color: color.RGBA{A: 255}, Width: 2}
	gridStyle   = scene.Style{Color: color.RGBA{R: 0x99, G: 0x99, B: 0x99, A: 255}, Width: 1}

	// Eigenvector segments take these styles in draw order.
	eigenStyles = [2]scene.Style{
		{Color: color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 255}, Width: 3},
		{Color: color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 255}, Width: 3},
	}
)

// Module warps the unit circle and a reference grid through a 2x2 matrix.
type Module struct {
	viewer scene.Viewer

	circleBase geom.Polyline
	gridBase   []geom.Polyline
	circleBuf  geom.Polyline
	gridBuf    []geom.Polyline

	circle scene.Handle
	grid   []scene.Handle
	eigen  []scene.Handle
}

// New creates an inactive module instance.
func New() *Module {
	return &Module{}
}

func (m *Module) Meta() host.Meta {
	return host.Meta{
		ID:          ID,
		Name:        "Linear Transform 2D",
		Category:    "Linear Algebra",
		Description: "A 2x2 matrix warping the unit circle and a square grid, with eigenvector overlay and animation from the identity.",
	}
}

func (m *Module) ParamSchema() param.Schema {
	return param.Schema{
		param.Matrix("A", "Matrix A", geom.Identity(), -5, 5, 0.1),
		param.Int("grid_n", "Grid lines", defaultGridN, minGridN, maxGridN),
		param.Float("animate_t", "Interpolate t", 1, 0, 1, 0.01),
		param.Bool("show_eigen", "Show eigenvectors", true),
	}
}

// Setup creates the circle and grid actors in their untransformed state.
// The host primes parameters immediately afterward.
func (m *Module) Setup(v scene.Viewer) error {
	if v == nil {
		return errors.NoViewer(ID)
	}
	m.viewer = v

	m.circleBase = geom.UnitCircle(circleSamples)
	m.circleBuf = make(geom.Polyline, len(m.circleBase))
	m.circle = v.AddPolyline(m.circleBase, circleStyle)

	m.buildGrid(defaultGridN)
	return nil
}

// Update applies a parameter snapshot: it interpolates the matrix, writes
// the warped geometry into the existing actors, and refreshes the
// eigenvector overlay. Repeated application of equal values is a no-op
// apart from redundant buffer writes.
func (m *Module) Update(p param.Values) error {
	if m.viewer == nil {
		return errors.NoViewer(ID)
	}

	a := p.Matrix("A", geom.Identity())
	gridN := p.Int("grid_n", defaultGridN)
	t := p.Float("animate_t", 1)
	showEigen := p.Bool("show_eigen", true)

	if gridN < minGridN || gridN > maxGridN {
		return errors.OutOfRange("grid_n", gridN, minGridN, maxGridN)
	}

	// Density changes alter the line count and force an actor rebuild.
	// Every other parameter mutates existing actors in place.
	if len(m.gridBase) != 2*gridN {
		m.buildGrid(gridN)
	}

	at := a.Lerp(t)

	m.circleBuf = geom.Transform(m.circleBuf, m.circleBase, at)
	m.viewer.SetPoints(m.circle, m.circleBuf)

	for i, base := range m.gridBase {
		m.gridBuf[i] = geom.Transform(m.gridBuf[i], base, at)
		m.viewer.SetPoints(m.grid[i], m.gridBuf[i])
	}

	m.updateEigen(at, showEigen)
	return nil
}

// Teardown drops module-held references. The host clears the viewer.
func (m *Module) Teardown() error {
	m.viewer = nil
	m.circleBase = nil
	m.gridBase = nil
	m.circleBuf = nil
	m.gridBuf = nil
	m.circle = 0
	m.grid = nil
	m.eigen = nil
	return nil
}

func (m *Module) buildGrid(n int) {
	for _, h := range m.grid {
		m.viewer.Remove(h)
	}

	m.gridBase = geom.GridLines(n, gridExtent)
	m.gridBuf = make([]geom.Polyline, len(m.gridBase))
	m.grid = m.grid[:0]
	for i, line := range m.gridBase {
		m.gridBuf[i] = make(geom.Polyline, len(line))
		m.grid = append(m.grid, m.viewer.AddPolyline(line, gridStyle))
	}
}

func (m *Module) updateEigen(at geom.Mat2, show bool) {
	for _, h := range m.eigen {
		m.viewer.Remove(h)
	}
	m.eigen = m.eigen[:0]
	if !show {
		return
	}

	for i, pair := range geom.Eigen(at) {
		if i >= len(eigenStyles) {
			break
		}
		seg := geom.Polyline{
			{0, 0, 0},
			{eigenScale * pair.Vector[0], eigenScale * pair.Vector[1], 0},
		}
		m.eigen = append(m.eigen, m.viewer.AddPolyline(seg, eigenStyles[i]))
	}
}

var _ host.Module = (*Module)(nil)
