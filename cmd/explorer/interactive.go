package main

import (
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/vizkit/explorer/config"
	"github.com/vizkit/explorer/geom"
	"github.com/vizkit/explorer/host"
	"github.com/vizkit/explorer/param"
	"github.com/vizkit/explorer/scene"
)

const (
	animateParam = "animate_t"

	springFPS       = 30
	springFrequency = 6.0
	springDamping   = 0.8
	springRestEps   = 1e-3
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	moduleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	reportStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

// interactiveModel drives the terminal inspector: pick a module, edit its
// parameters, and read a scene report off a headless recorder. The model
// doubles as the host's panel so schemas arrive through the same contract
// the GUI form uses.
type interactiveModel struct {
	err      error
	reg      *host.Registry
	rec      *scene.Recorder
	hst      *host.Host
	modules  []host.Meta
	schema   param.Schema
	values   param.Values
	inputs   []textinput.Model
	selected int
	focusIdx int
	state    modelState

	spring    harmonica.Spring
	springPos float64
	springVel float64
	animating bool
}

type modelState int

const (
	stateSelectModule modelState = iota
	stateEditParams
	stateShowReport
)

type tickMsg time.Time

func animTick() tea.Cmd {
	return tea.Tick(time.Second/springFPS, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func newInteractiveModel(reg *host.Registry, startID string, log *zap.Logger) *interactiveModel {
	m := &interactiveModel{
		reg:     reg,
		rec:     scene.NewRecorder(),
		modules: reg.Metas(),
		state:   stateSelectModule,
	}
	m.hst = host.New(reg, m.rec, host.Options{
		Panel:  m,
		Logger: log,
		OnError: func(err error) {
			m.err = err
		},
	})
	for i, meta := range m.modules {
		if meta.ID == startID {
			m.selected = i
		}
	}
	return m
}

// SetSchema and Current implement host.Panel. Activation resets the edited
// values to the schema defaults, exactly like rebuilding the GUI form.
func (m *interactiveModel) SetSchema(s param.Schema) {
	m.schema = s
	m.values = s.Defaults()
}

func (m *interactiveModel) Current() param.Values {
	return m.values.Clone()
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.hst.Deactivate()
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectModule && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectModule && m.selected < len(m.modules)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectModule:
				if len(m.modules) == 0 {
					return m, nil
				}
				m.err = nil
				if err := m.hst.Activate(m.modules[m.selected].ID); err != nil {
					m.err = err
					return m, nil
				}
				m.prepareInputs()
				if len(m.inputs) == 0 {
					m.state = stateShowReport
					return m, nil
				}
				m.state = stateEditParams

			case stateEditParams:
				if err := m.parseInputs(); err != nil {
					m.err = err
					return m, nil
				}
				m.err = nil
				m.hst.OnParams(m.values.Clone())
				m.state = stateShowReport

			case stateShowReport:
				m.animating = false
				m.err = nil
				m.prepareInputs()
				m.state = stateEditParams
			}

		case "tab":
			if m.state == stateEditParams && len(m.inputs) > 1 {
				m.inputs[m.focusIdx].Blur()
				m.focusIdx = (m.focusIdx + 1) % len(m.inputs)
				m.inputs[m.focusIdx].Focus()
			}

		case "esc":
			switch m.state {
			case stateEditParams:
				m.err = nil
				m.inputs = nil
				m.state = stateSelectModule
			case stateShowReport:
				m.animating = false
				m.err = nil
				m.state = stateSelectModule
			}

		case " ":
			if m.state == stateShowReport && m.hasAnimate() && !m.animating {
				m.spring = harmonica.NewSpring(harmonica.FPS(springFPS), springFrequency, springDamping)
				m.springPos, m.springVel = 0, 0
				m.animating = true
				m.values[animateParam] = 0.0
				m.hst.OnParams(m.values.Clone())
				return m, animTick()
			}
		}

	case tickMsg:
		if !m.animating {
			return m, nil
		}
		m.springPos, m.springVel = m.spring.Update(m.springPos, m.springVel, 1)
		if math.Abs(1-m.springPos) < springRestEps && math.Abs(m.springVel) < springRestEps {
			m.springPos = 1
			m.animating = false
		}
		m.values[animateParam] = math.Min(math.Max(m.springPos, 0), 1)
		m.hst.OnParams(m.values.Clone())
		if m.animating {
			return m, animTick()
		}
		return m, nil
	}

	if m.state == stateEditParams {
		var cmds []tea.Cmd
		for i := range m.inputs {
			var cmd tea.Cmd
			m.inputs[i], cmd = m.inputs[i].Update(msg)
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m, nil
}

func (m *interactiveModel) prepareInputs() {
	m.inputs = make([]textinput.Model, len(m.schema))
	for i, spec := range m.schema {
		ti := textinput.New()
		ti.Placeholder = placeholderFor(spec)
		ti.Prompt = spec.Name + ": "
		ti.Width = 40
		if i == 0 {
			ti.Focus()
		}
		m.inputs[i] = ti
	}
	m.focusIdx = 0
}

// parseInputs folds the edited fields into the value snapshot. Blank fields
// keep their current value.
func (m *interactiveModel) parseInputs() error {
	for i, spec := range m.schema {
		raw := strings.TrimSpace(m.inputs[i].Value())
		if raw == "" {
			continue
		}
		v, err := parseParam(spec, raw)
		if err != nil {
			return err
		}
		m.values[spec.Name] = v
	}
	return nil
}

func (m *interactiveModel) hasAnimate() bool {
	spec, ok := m.schema.Find(animateParam)
	return ok && spec.Kind == param.KindFloat
}

func parseParam(s param.Spec, raw string) (any, error) {
	switch s.Kind {
	case param.KindFloat:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		return v, nil
	case param.KindInt:
		v, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		return v, nil
	case param.KindBool:
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name, err)
		}
		return v, nil
	case param.KindEnum:
		for _, opt := range s.Options {
			if opt == raw {
				return raw, nil
			}
		}
		return nil, fmt.Errorf("%s must be one of %s", s.Name, strings.Join(s.Options, "|"))
	case param.KindMatrix2x2:
		return parseMat2(raw)
	}
	return nil, fmt.Errorf("%s: unsupported kind %s", s.Name, s.Kind)
}

// parseMat2 reads a row-major 2x2 matrix written as "a,b;c,d".
func parseMat2(raw string) (geom.Mat2, error) {
	rows := strings.Split(raw, ";")
	if len(rows) != 2 {
		return geom.Mat2{}, fmt.Errorf("matrix needs two rows separated by ';'")
	}
	var out geom.Mat2
	for r, row := range rows {
		cols := strings.Split(row, ",")
		if len(cols) != 2 {
			return geom.Mat2{}, fmt.Errorf("matrix row %d needs two entries", r+1)
		}
		for c, cell := range cols {
			v, err := strconv.ParseFloat(strings.TrimSpace(cell), 64)
			if err != nil {
				return geom.Mat2{}, fmt.Errorf("matrix entry %q: %w", strings.TrimSpace(cell), err)
			}
			out[r][c] = v
		}
	}
	return out, nil
}

func placeholderFor(s param.Spec) string {
	switch s.Kind {
	case param.KindFloat:
		if s.Min != nil && s.Max != nil {
			return fmt.Sprintf("float %g..%g", *s.Min, *s.Max)
		}
		return "float"
	case param.KindInt:
		if s.Min != nil && s.Max != nil {
			return fmt.Sprintf("int %g..%g", *s.Min, *s.Max)
		}
		return "int"
	case param.KindBool:
		return "true|false"
	case param.KindEnum:
		return strings.Join(s.Options, "|")
	case param.KindMatrix2x2:
		return "a,b;c,d"
	}
	return string(s.Kind)
}

func formatParamValue(v any) string {
	if mat, ok := v.(geom.Mat2); ok {
		return fmt.Sprintf("%g,%g;%g,%g", mat[0][0], mat[0][1], mat[1][0], mat[1][1])
	}
	return fmt.Sprintf("%v", v)
}

func (m *interactiveModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Physics & Math Explorer"))
	if meta, ok := m.hst.ActiveMeta(); ok {
		b.WriteString(" ")
		b.WriteString(meta.Name)
	}
	b.WriteString("\n\n")

	switch m.state {
	case stateSelectModule:
		if len(m.modules) == 0 {
			b.WriteString("No modules registered.\n")
			break
		}
		b.WriteString("Select a module to activate:\n\n")
		for i, meta := range m.modules {
			cursor := "  "
			if i == m.selected {
				cursor = "> "
				b.WriteString(selectedStyle.Render(cursor + m.formatModule(meta)))
			} else {
				b.WriteString(cursor + m.formatModule(meta))
			}
			b.WriteString("\n")
		}
		if desc := m.modules[m.selected].Description; desc != "" {
			b.WriteString("\n")
			b.WriteString(helpStyle.Render(desc))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter activate • q quit"))

	case stateEditParams:
		b.WriteString("Parameters (blank keeps the current value):\n\n")
		for i, input := range m.inputs {
			b.WriteString(input.View())
			b.WriteString(" ")
			b.WriteString(kindStyle.Render(formatParamValue(m.values[m.schema[i].Name])))
			b.WriteString("\n")
		}
		if m.err != nil {
			b.WriteString("\n")
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("tab next field • enter apply • esc back"))

	case stateShowReport:
		if m.err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		} else {
			b.WriteString(reportStyle.Render(m.buildReport()))
		}
		b.WriteString("\n\n")
		help := "enter edit • esc modules • q quit"
		if m.hasAnimate() {
			help = "enter edit • space animate • esc modules • q quit"
		}
		b.WriteString(helpStyle.Render(help))
	}

	return b.String()
}

func (m *interactiveModel) formatModule(meta host.Meta) string {
	return moduleStyle.Render(meta.Name) + " " + kindStyle.Render("("+meta.ID+")")
}

// buildReport summarizes the applied parameters, recorder counters, and for
// matrix modules the interpolated transform with its real eigenpairs.
func (m *interactiveModel) buildReport() string {
	var b strings.Builder

	for _, spec := range m.schema {
		fmt.Fprintf(&b, "  %s = %s\n", spec.Name, formatParamValue(m.values[spec.Name]))
	}
	fmt.Fprintf(&b, "\nScene: %d actors, %d updates, %d renders\n",
		m.rec.Actors(), m.rec.Updates(), m.rec.Renders())

	if a, ok := m.values["A"].(geom.Mat2); ok {
		t := m.values.Float(animateParam, 1)
		at := a.Lerp(t)
		fmt.Fprintf(&b, "\nAt t=%.3f: det %.4g, trace %.4g\n", t, at.Det(), at.Trace())
		for i, p := range geom.Eigen(at) {
			fmt.Fprintf(&b, "  λ%d = %.4g  v%d = (%.3f, %.3f)\n",
				i+1, p.Value, i+1, p.Vector[0], p.Vector[1])
		}
	}

	return b.String()
}

func runInteractive(reg *host.Registry, cfg config.Config, log *zap.Logger) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive mode requires a terminal")
	}
	p := tea.NewProgram(newInteractiveModel(reg, cfg.Module, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

var _ host.Panel = (*interactiveModel)(nil)
