package panel

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/zap"

	"github.com/vizkit/explorer/geom"
	"github.com/vizkit/explorer/host"
	"github.com/vizkit/explorer/param"
)

// animateParam is the float parameter the Play button drives.
const animateParam = "animate_t"

// Fallback bounds for specs that omit them. Matrix entries accept free
// numeric input, so their fallback range is effectively unbounded.
const (
	defaultFloatMin  = 0
	defaultFloatMax  = 1
	defaultIntMax    = 100
	defaultMatrixMin = -1e6
	defaultMatrixMax = 1e6
)

// Options configures panel creation
type Options struct {
	// Logger for form diagnostics. Defaults to a no-op logger.
	Logger *zap.Logger
}

// DefaultOptions returns sensible defaults for panel creation
func DefaultOptions() Options {
	return Options{}
}

// Panel is the parameter form. SetSchema rebuilds the controls from
// scratch; every edit updates a shared value map and re-emits the whole
// mapping through the registered callback.
type Panel struct {
	widget.BaseWidget

	log       *zap.Logger
	onChanged func(param.Values)

	schema param.Schema

	// mu guards values: the animate goroutine writes through the
	// slider's callback while the UI thread reads Current.
	mu     sync.Mutex
	values param.Values

	// controls maps parameter names to their input widgets:
	// *widget.Slider, *widget.Check, *widget.Select, or [4]*widget.Entry
	// for matrices (row-major).
	controls map[string]any

	box  *fyne.Container
	anim *animator
}

// New creates an empty panel with the given options
func New(opts Options) *Panel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	p := &Panel{
		log:      log.Named("panel"),
		values:   param.Values{},
		controls: map[string]any{},
		box:      container.NewVBox(),
	}
	p.ExtendBaseWidget(p)
	return p
}

// NewWithDefaults creates an empty panel with default options
func NewWithDefaults() *Panel {
	return New(DefaultOptions())
}

// OnChanged registers the callback fired with the full parameter mapping
// after every edit and once at the end of each SetSchema build.
func (p *Panel) OnChanged(fn func(param.Values)) {
	p.onChanged = fn
}

// CreateRenderer implements fyne.Widget
func (p *Panel) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(p.box)
}

// SetSchema replaces the form contents. Existing controls are discarded,
// values reset to the schema defaults, and one initial notification is
// emitted so the listener starts from the same mapping the form shows.
func (p *Panel) SetSchema(s param.Schema) {
	p.stopAnimation()

	p.schema = s
	p.mu.Lock()
	p.values = s.Defaults()
	p.mu.Unlock()
	p.controls = make(map[string]any, len(s))

	rows := make([]fyne.CanvasObject, 0, len(s)+1)
	for _, spec := range s {
		if row := p.buildRow(spec); row != nil {
			rows = append(rows, row)
		}
	}
	if sl, ok := p.controls[animateParam].(*widget.Slider); ok {
		rows = append(rows, p.buildPlayRow(sl))
	}

	p.box.Objects = rows
	p.box.Refresh()

	p.log.Debug("form rebuilt", zap.Int("controls", len(p.controls)))
	p.emit()
}

// Current returns a copy of the panel's current parameter mapping
func (p *Panel) Current() param.Values {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.values.Clone()
}

func (p *Panel) buildRow(spec param.Spec) fyne.CanvasObject {
	switch spec.Kind {
	case param.KindFloat:
		return p.buildFloatRow(spec)
	case param.KindInt:
		return p.buildIntRow(spec)
	case param.KindBool:
		return p.buildBoolRow(spec)
	case param.KindEnum:
		return p.buildEnumRow(spec)
	case param.KindMatrix2x2:
		return p.buildMatrixRow(spec)
	default:
		p.log.Warn("skipping control of unknown kind",
			zap.String("param", spec.Name),
			zap.String("kind", string(spec.Kind)))
		return nil
	}
}

func (p *Panel) buildFloatRow(spec param.Spec) fyne.CanvasObject {
	min, max := spec.MinOr(defaultFloatMin), spec.MaxOr(defaultFloatMax)
	def := p.values.Float(spec.Name, min)

	val := widget.NewLabel(formatValue(def))
	sl := widget.NewSlider(min, max)
	sl.Step = spec.StepOr(0.01)
	sl.Value = def
	sl.OnChanged = func(v float64) {
		val.SetText(formatValue(v))
		p.set(spec.Name, v)
	}

	p.controls[spec.Name] = sl
	return container.NewBorder(nil, nil, widget.NewLabel(spec.DisplayLabel()), val, sl)
}

func (p *Panel) buildIntRow(spec param.Spec) fyne.CanvasObject {
	min, max := spec.MinOr(0), spec.MaxOr(defaultIntMax)
	def := p.values.Int(spec.Name, int(min))

	val := widget.NewLabel(strconv.Itoa(def))
	sl := widget.NewSlider(min, max)
	sl.Step = 1
	sl.Value = float64(def)
	sl.OnChanged = func(v float64) {
		n := int(math.Round(v))
		val.SetText(strconv.Itoa(n))
		p.set(spec.Name, n)
	}

	p.controls[spec.Name] = sl
	return container.NewBorder(nil, nil, widget.NewLabel(spec.DisplayLabel()), val, sl)
}

func (p *Panel) buildBoolRow(spec param.Spec) fyne.CanvasObject {
	chk := widget.NewCheck(spec.DisplayLabel(), nil)
	chk.Checked = p.values.Bool(spec.Name, false)
	chk.OnChanged = func(b bool) {
		p.set(spec.Name, b)
	}

	p.controls[spec.Name] = chk
	return chk
}

func (p *Panel) buildEnumRow(spec param.Spec) fyne.CanvasObject {
	sel := widget.NewSelect(spec.Options, nil)
	sel.Selected = p.values.String(spec.Name, "")
	sel.OnChanged = func(v string) {
		p.set(spec.Name, v)
	}

	p.controls[spec.Name] = sel
	return container.NewBorder(nil, nil, widget.NewLabel(spec.DisplayLabel()), nil, sel)
}

// buildMatrixRow lays the four cells out row-major in a 2-column grid.
// Unparsable text keeps the last good value; parsed values are clamped
// to the spec bounds.
func (p *Panel) buildMatrixRow(spec param.Spec) fyne.CanvasObject {
	min, max := spec.MinOr(defaultMatrixMin), spec.MaxOr(defaultMatrixMax)
	def := p.values.Matrix(spec.Name, geom.Identity())

	var entries [4]*widget.Entry
	cells := make([]fyne.CanvasObject, 0, 4)
	for r := 0; r < 2; r++ {
		for c := 0; c < 2; c++ {
			e := widget.NewEntry()
			e.SetText(formatValue(def[r][c]))
			e.OnChanged = func(text string) {
				v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
				if err != nil {
					return
				}
				p.setMatrixCell(spec.Name, r, c, clamp(v, min, max), def)
			}
			entries[r*2+c] = e
			cells = append(cells, e)
		}
	}

	p.controls[spec.Name] = entries
	return container.NewVBox(
		widget.NewLabel(spec.DisplayLabel()),
		container.NewGridWithColumns(2, cells...),
	)
}

func (p *Panel) buildPlayRow(sl *widget.Slider) fyne.CanvasObject {
	btn := widget.NewButton("Play", nil)
	btn.OnTapped = func() {
		if p.animating() {
			p.stopAnimation()
			return
		}
		p.playAnimation(sl)
	}
	return btn
}

func (p *Panel) set(name string, v any) {
	p.mu.Lock()
	p.values[name] = v
	snap := p.values.Clone()
	p.mu.Unlock()

	p.notify(snap)
}

func (p *Panel) setMatrixCell(name string, r, c int, v float64, def geom.Mat2) {
	p.mu.Lock()
	m := p.values.Matrix(name, def)
	m[r][c] = v
	p.values[name] = m
	snap := p.values.Clone()
	p.mu.Unlock()

	p.notify(snap)
}

func (p *Panel) emit() {
	p.mu.Lock()
	snap := p.values.Clone()
	p.mu.Unlock()

	p.notify(snap)
}

// notify runs outside the value lock so the listener may call Current.
func (p *Panel) notify(v param.Values) {
	if p.onChanged == nil {
		return
	}
	p.onChanged(v)
}

func formatValue(v float64) string {
	return fmt.Sprintf("%.4g", v)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

var _ host.Panel = (*Panel)(nil)
