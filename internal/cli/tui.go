package cli

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/matzehuels/starfield/pkg/animation"
	"github.com/matzehuels/starfield/pkg/config"
	"github.com/matzehuels/starfield/pkg/control"
	"github.com/matzehuels/starfield/pkg/footprint"
	"github.com/matzehuels/starfield/pkg/interaction"
)

// demoTarget is the element handle of the demo button on the footprint bus.
const demoTarget footprint.Target = "demo-button"

// Horizontal button padding bounds, in cells.
const (
	minPadding     = 1
	maxPadding     = 12
	defaultPadding = 3
)

// statusLines is the number of rows below the canvas.
const statusLines = 2

// Star glyphs by scale.
const (
	glyphSmall     = "·"
	glyphNormal    = "✦"
	glyphOvershoot = "✶"
)

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorCyan).
			Foreground(colorWhite).
			Bold(true)
	buttonHoverStyle = buttonStyle.BorderForeground(colorYellow)
	buttonBusyStyle  = buttonStyle.BorderForeground(colorDim).Foreground(colorGray)
)

// =============================================================================
// Key bindings
// =============================================================================

type demoKeys struct {
	Activate key.Binding
	Loading  key.Binding
	Grow     key.Binding
	Shrink   key.Binding
	Quit     key.Binding
}

func newDemoKeys() demoKeys {
	return demoKeys{
		Activate: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("⏎", "activate")),
		Loading:  key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "toggle loading")),
		Grow:     key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "wider")),
		Shrink:   key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "narrower")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k demoKeys) help() string {
	parts := make([]string, 0, 5)
	for _, b := range []key.Binding{k.Activate, k.Loading, k.Grow, k.Shrink, k.Quit} {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

// =============================================================================
// Messages
// =============================================================================

// frameMsg advances the animation.
type frameMsg time.Time

// busyDoneMsg ends the loading period started by activation seq.
type busyDoneMsg struct{ seq int }

// =============================================================================
// demoModel - Interactive control
// =============================================================================

// cellRect is a rectangle in terminal cells.
type cellRect struct{ x, y, w, h int }

func (r cellRect) contains(x, y int) bool {
	return x >= r.x && x < r.x+r.w && y >= r.y && y < r.y+r.h
}

// demoModel drives one control from terminal input. The button's rendered
// size, converted to pixels through the configured cell size, is published
// on a footprint bus that the control observes.
type demoModel struct {
	ctl     *control.Control
	bus     *footprint.Bus
	term    config.Terminal
	keys    demoKeys
	spinner spinner.Model
	logger  *log.Logger
	now     func() time.Time

	width, height int
	padding       int
	button        cellRect

	ticking     bool
	busySeq     int
	activations int
}

// newDemoModel creates and mounts the demo control.
func newDemoModel(cfg config.Config, logger *log.Logger) *demoModel {
	m := &demoModel{
		bus:     footprint.NewBus(),
		term:    cfg.Terminal,
		keys:    newDemoKeys(),
		logger:  logger,
		now:     time.Now,
		padding: defaultPadding,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(colorYellow)),
		),
	}

	opts := append(cfg.ControlOptions(),
		control.WithLogger(logger),
		control.WithOnActivate(func() { m.activations++ }),
	)
	m.ctl = control.New(m.bus, demoTarget, opts...)
	m.ctl.Mount(m.now())
	return m
}

func (m *demoModel) Init() tea.Cmd {
	return tea.SetWindowTitle(appName)
}

func (m *demoModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.measure()
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.ctl.Unmount(m.now())
			return m, tea.Quit
		case key.Matches(msg, m.keys.Activate):
			return m, m.activate()
		case key.Matches(msg, m.keys.Loading):
			return m, m.setLoading(m.ctl.State() != interaction.Loading)
		case key.Matches(msg, m.keys.Grow):
			m.padding = min(maxPadding, m.padding+1)
			m.measure()
			return m, nil
		case key.Matches(msg, m.keys.Shrink):
			m.padding = max(minPadding, m.padding-1)
			m.measure()
			return m, nil
		}

	case tea.MouseMsg:
		return m, m.handleMouse(msg)

	case frameMsg:
		m.ticking = false
		return m, m.scheduleFrame()

	case busyDoneMsg:
		if msg.seq != m.busySeq {
			return m, nil
		}
		return m, m.setLoading(false)

	case spinner.TickMsg:
		if m.ctl.Icon() != interaction.IconBusy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleMouse maps pointer motion onto enter/leave and left clicks onto
// activation.
func (m *demoModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	over := m.button.contains(msg.X, msg.Y)

	switch {
	case msg.Action == tea.MouseActionMotion:
		if over {
			m.ctl.PointerEnter(m.now())
		} else {
			m.ctl.PointerLeave(m.now())
		}
		return m.scheduleFrame()
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && over:
		return m.activate()
	}
	return nil
}

// activate forwards an activation to the control. An accepted activation
// keeps the control loading for the configured busy period.
func (m *demoModel) activate() tea.Cmd {
	if !m.ctl.Activate() {
		m.logger.Debug("activation refused", "state", m.ctl.State())
		return nil
	}
	cmd := m.setLoading(true)
	seq := m.busySeq
	busy := tea.Tick(m.term.BusyFor.Std(), func(time.Time) tea.Msg { return busyDoneMsg{seq: seq} })
	return tea.Batch(cmd, busy)
}

// setLoading sets the loading signal. Any pending automatic clear is
// abandoned.
func (m *demoModel) setLoading(loading bool) tea.Cmd {
	m.busySeq++
	m.ctl.SetLoading(loading, m.now())
	m.measure()

	cmds := []tea.Cmd{m.scheduleFrame()}
	if loading {
		cmds = append(cmds, m.spinner.Tick)
	}
	return tea.Batch(cmds...)
}

// scheduleFrame requests the next animation frame while transitions run.
func (m *demoModel) scheduleFrame() tea.Cmd {
	if m.ticking || !m.ctl.Animating(m.now()) {
		return nil
	}
	m.ticking = true
	fps := max(1, m.term.FPS)
	return tea.Tick(time.Second/time.Duration(fps), func(t time.Time) tea.Msg { return frameMsg(t) })
}

// measure recenters the button and publishes its footprint.
func (m *demoModel) measure() {
	rendered := m.renderButton()
	w, h := lipgloss.Width(rendered), lipgloss.Height(rendered)
	canvasH := max(0, m.height-statusLines)
	m.button = cellRect{x: max(0, (m.width-w)/2), y: max(0, (canvasH-h)/2), w: w, h: h}

	m.bus.Publish(demoTarget, footprint.Footprint{
		Width:  float64(w) * m.term.CellWidth,
		Height: float64(h) * m.term.CellHeight,
	})
}

func (m *demoModel) renderButton() string {
	icon := glyphNormal
	style := buttonStyle
	switch {
	case m.ctl.Icon() == interaction.IconBusy:
		icon = m.spinner.View()
		style = buttonBusyStyle
	case m.ctl.State() == interaction.Hovering:
		style = buttonHoverStyle
	}
	return style.Padding(0, m.padding).Render(icon + " " + m.ctl.Label())
}

func (m *demoModel) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	canvasH := max(0, m.height-statusLines)

	grid := make([][]string, canvasH)
	for y := range grid {
		grid[y] = make([]string, m.width)
	}
	m.plotStars(grid)

	buttonLines := strings.Split(m.renderButton(), "\n")

	var b strings.Builder
	for y, row := range grid {
		if y >= m.button.y && y < m.button.y+len(buttonLines) {
			writeCells(&b, row[:min(m.button.x, len(row))])
			b.WriteString(buttonLines[y-m.button.y])
			if end := m.button.x + m.button.w; end < len(row) {
				writeCells(&b, row[end:])
			}
		} else {
			writeCells(&b, row)
		}
		b.WriteString("\n")
	}

	fp := m.ctl.Footprint()
	b.WriteString(StyleDim.Render(fmt.Sprintf(" %s · %g×%g px · %d markers · %d activations",
		m.ctl.State(), fp.Width, fp.Height, m.ctl.MarkerCount(), m.activations)))
	b.WriteString("\n")
	b.WriteString(StyleDim.Render(" " + m.keys.help()))
	return b.String()
}

// plotStars places every drawn marker into grid, skipping cells covered by
// the button.
func (m *demoModel) plotStars(grid [][]string) {
	cx := float64(m.button.x) + float64(m.button.w)/2
	cy := float64(m.button.y) + float64(m.button.h)/2

	for _, f := range m.ctl.Frames(m.now()) {
		if f.Scale <= 0 || f.Opacity <= 0 {
			continue
		}
		x := int(math.Floor(cx + f.X/m.term.CellWidth))
		y := int(math.Floor(cy + f.Y/m.term.CellHeight))
		if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) || m.button.contains(x, y) {
			continue
		}
		grid[y][x] = starCell(f)
	}
}

// starCell picks the glyph and style for a frame.
func starCell(f animation.Frame) string {
	glyph := glyphNormal
	switch {
	case f.Scale < 0.6:
		glyph = glyphSmall
	case f.Scale > 1.15:
		glyph = glyphOvershoot
	}
	if f.Opacity < 0.5 {
		return styleStarDim.Render(glyph)
	}
	return styleStar.Render(glyph)
}

func writeCells(b *strings.Builder, cells []string) {
	for _, c := range cells {
		if c == "" {
			b.WriteByte(' ')
			continue
		}
		b.WriteString(c)
	}
}
