// Package tui is an interactive simulator for the layout and composition
// core: stub windows stand in for client surfaces, a synthetic output stands
// in for a display, and each keypress drives one full compositor tick whose
// composed element list is drawn as ASCII boxes.
package tui

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/IshantPundir/aurora/internal/config"
	"github.com/IshantPundir/aurora/internal/geometry"
	"github.com/IshantPundir/aurora/internal/layout"
	"github.com/IshantPundir/aurora/internal/output"
	"github.com/IshantPundir/aurora/internal/render"
	"github.com/IshantPundir/aurora/internal/shell"
)

// Run starts the simulator. It refuses to start without a TTY.
func Run(cfg *config.Config, logger *slog.Logger) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("simulator requires an interactive terminal (stdin/stdout must be TTYs)")
	}

	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("simulator failed: %w", err)
	}
	return nil
}

// simOutputSize is the synthetic output's logical size.
var simOutputSize = geometry.Size{Width: 1920, Height: 1080}

// captureRenderer records the last successfully painted element list so the
// view can draw it. When the damage tracker decides nothing changed, Render
// is never called and the previous list stays on screen, exactly like a
// retained buffer.
type captureRenderer struct {
	elements []shell.Element
	clear    shell.Color
	calls    int
}

func (r *captureRenderer) Render(elements []shell.Element, damage []geometry.Rect, clear shell.Color) error {
	r.elements = append(r.elements[:0], elements...)
	r.clear = clear
	r.calls++
	return nil
}

type model struct {
	cfg    *config.Config
	logger *slog.Logger

	set      *shell.WindowSet
	space    *shell.Space
	registry *output.Registry
	out      *output.Output
	engine   *layout.Engine
	composer *render.FrameComposer
	tracker  *render.OutputDamageTracker
	renderer *captureRenderer

	nextID         uint64
	previewEnabled bool
	frameCount     uint64
	lastDamage     int
	lastErr        string

	width  int
	height int
}

func newModel(cfg *config.Config, logger *slog.Logger) model {
	out := output.New("SIM-1",
		geometry.Rect{Width: simOutputSize.Width, Height: simOutputSize.Height},
		output.Mode{Size: simOutputSize, Refresh: cfg.Render.RefreshFallback})

	registry := output.NewRegistry()
	registry.Add(out)

	m := model{
		cfg:            cfg,
		logger:         logger,
		set:            shell.NewWindowSet(),
		space:          shell.NewSpace(),
		registry:       registry,
		out:            out,
		engine:         layout.NewEngine(cfg.Layout.OverviewPadding, logger),
		composer:       render.NewFrameComposer(cfg.Preview.Padding, cfg.Preview.MaxColumns, logger),
		tracker:        render.NewOutputDamageTracker(out),
		renderer:       &captureRenderer{},
		nextID:         1,
		previewEnabled: cfg.Preview.Enabled,
	}

	// Start with a couple of windows so the first frame shows something.
	m.addWindow()
	m.addWindow()
	m.tick()

	return m
}

// Window sizes cycle so thumbnails visibly differ before layout resizes them.
var spawnSizes = []geometry.Size{
	{Width: 800, Height: 600},
	{Width: 1280, Height: 720},
	{Width: 640, Height: 900},
}

func (m *model) addWindow() {
	size := spawnSizes[int(m.nextID)%len(spawnSizes)]
	w := newSimWindow(m.nextID, size.Width, size.Height)
	m.nextID++
	m.set.Insert(w)
}

func (m *model) closeActive() {
	active := m.set.Active()
	if active == nil {
		return
	}
	if w, ok := active.(*simWindow); ok {
		w.close()
	}
	if m.out.Fullscreen() != nil && m.out.Fullscreen().ID() == active.ID() {
		m.out.ClearFullscreen()
	}
}

func (m *model) cycleActive() {
	windows := m.set.Windows()
	if len(windows) < 2 {
		return
	}
	// Oldest becomes active; repeated presses walk the whole set.
	m.set.Raise(windows[0])
}

func (m *model) toggleOverride() {
	if m.out.Fullscreen() != nil {
		m.out.ClearFullscreen()
		return
	}
	if active := m.set.Active(); active != nil {
		m.out.SetFullscreen(active)
	}
}

// tick runs one compositor cycle: layout, compose, damage-tracked render,
// presentation feedback.
func (m *model) tick() {
	if err := m.engine.Refresh(m.set, m.space, m.registry, output.FirstPolicy{}); err != nil {
		m.lastErr = err.Error()
		return
	}

	result, err := m.composer.RenderOutput(m.out, m.space, nil, m.renderer, m.tracker, 1, m.previewEnabled)
	if err != nil {
		m.lastErr = err.Error()
		return
	}
	m.lastErr = ""
	m.frameCount++
	m.lastDamage = len(result.Damage)

	if result.Damage != nil {
		refresh := m.out.Mode().RefreshInterval()
		m.composer.FrameSubmitted(m.out, render.PresentationFeedback{
			Target:  time.Now().Add(refresh),
			Refresh: refresh,
			Vsync:   true,
		}, result.States)
	}
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "n":
			m.addWindow()
		case "x":
			m.closeActive()
		case "tab":
			m.cycleActive()

		case "f":
			m.engine.SetMode(layout.ModeFullscreen)
		case "o":
			m.engine.SetMode(layout.ModeOverview)
		case "F":
			m.toggleOverride()
		case "p":
			m.previewEnabled = !m.previewEnabled
		case "r":
			m.tracker.Reset()

		default:
			return m, nil
		}

		m.tick()
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	return m, nil
}

var (
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("230")).
			Background(lipgloss.Color("62")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Padding(0, 1)

	errStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Padding(0, 1)
)

// View implements tea.Model.
func (m model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	override := "-"
	if fs := m.out.Fullscreen(); fs != nil {
		override = fmt.Sprintf("win %d", fs.ID())
	}
	status := statusStyle.Width(m.width).Render(fmt.Sprintf(
		"mode:%s  windows:%d  preview:%v  override:%s  frame:%d  damage:%d  phase:%s",
		m.engine.Mode(), m.set.Len(), m.previewEnabled, override,
		m.frameCount, m.lastDamage, m.composer.FramePhase(m.out)))

	help := helpStyle.Width(m.width).Render(
		"n new  x close  tab cycle  f fullscreen  o overview  F override  p preview  r reset buffers  q quit")

	bottom := help
	if m.lastErr != "" {
		bottom = errStyle.Width(m.width).Render(m.lastErr)
	}

	canvasH := m.height - lipgloss.Height(status) - lipgloss.Height(bottom)
	if canvasH < 3 {
		canvasH = 3
	}
	lines := renderCanvas(m.renderer.elements, m.out.Geometry(), m.width, canvasH)

	return lipgloss.JoinVertical(lipgloss.Left,
		status,
		lipgloss.JoinVertical(lipgloss.Left, lines...),
		bottom,
	)
}
