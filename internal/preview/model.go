package preview

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/korden-tech/korden/pkg/fx"
)

// FPS is the preview frame rate
const FPS = 30

// KeyMap defines the preview's keyboard shortcuts
type KeyMap struct {
	Next  key.Binding
	Pause key.Binding
	Help  key.Binding
	Quit  key.Binding
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Pause, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Pause}, {k.Help, k.Quit}}
}

var DefaultKeyMap = KeyMap{
	Next: key.NewBinding(
		key.WithKeys("tab", "n"),
		key.WithHelp("tab", "next effect"),
	),
	Pause: key.NewBinding(
		key.WithKeys(" ", "space", "p"),
		key.WithHelp("space", "pause"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c", "q", "esc"),
		key.WithHelp("q", "quit"),
	),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#F59E0B"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
)

// chrome is the number of rows below the grid: status plus one or two of help
func (m *Model) chrome() int {
	if m.help.ShowAll {
		return 3
	}
	return 2
}

type frameMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/FPS, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Model is the bubbletea model for one running effect
type Model struct {
	cfg    fx.Config
	rng    *rand.Rand
	kinds  []fx.Kind
	index  int
	effect fx.Effect
	grid   *Grid
	width  int
	height int
	paused bool
	frames int

	keys KeyMap
	help help.Model
}

// New returns a model showing kind
func New(cfg fx.Config, kind fx.Kind, seed uint64) (*Model, error) {
	index := slices.Index(fx.Kinds, kind)
	if index < 0 {
		return nil, fmt.Errorf("unknown effect %q", kind)
	}
	m := &Model{
		cfg:    cfg,
		rng:    fx.NewRand(seed),
		kinds:  fx.Kinds,
		grid:   NewGrid(80, 22),
		width:  80,
		height: 24,
		keys:   DefaultKeyMap,
		help:   help.New(),
	}
	m.show(index)
	return m, nil
}

// Kind returns the effect being shown
func (m *Model) Kind() fx.Kind {
	return m.kinds[m.index]
}

// Grid returns the surface the effect draws on
func (m *Model) Grid() *Grid {
	return m.grid
}

// Paused reports whether stepping is suspended
func (m *Model) Paused() bool {
	return m.paused
}

// Frames returns how many frames have been stepped
func (m *Model) Frames() int {
	return m.frames
}

func (m *Model) show(index int) {
	m.index = index % len(m.kinds)
	m.effect, _ = m.cfg.New(m.kinds[m.index], m.rng)
	m.effect.Resize(m.grid.Size())
	m.frames = 0
}

// layout fits the grid to the window and restarts the effect at that size
func (m *Model) layout() {
	m.grid.Resize(m.width, max(m.height-m.chrome(), 1))
	m.effect.Resize(m.grid.Size())
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	return tick()
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.layout()

	case tea.MouseMsg:
		if msg.Y >= m.grid.Rows() {
			m.effect.Pointer(fx.Leave())
			break
		}
		m.effect.Pointer(fx.Move((float64(msg.X)+0.5)*CellW, (float64(msg.Y)+0.5)*CellH))

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			m.show(m.index + 1)
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.layout()
		}

	case frameMsg:
		m.Step()
		return m, tick()
	}
	return m, nil
}

// Step advances and draws one frame unless paused
func (m *Model) Step() {
	if m.paused {
		return
	}
	m.effect.Step()
	m.effect.Draw(m.grid)
	m.frames++
}

// View implements tea.Model
func (m *Model) View() string {
	state := fmt.Sprintf("frame %d", m.frames)
	if m.paused {
		state = "paused"
	}
	status := titleStyle.Render(string(m.Kind())) + statusStyle.Render(fmt.Sprintf("  %dx%d  %s", m.grid.Cols(), m.grid.Rows(), state))
	return m.grid.Render() + "\n" + status + "\n" + m.help.View(m.keys)
}
