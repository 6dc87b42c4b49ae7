// Command arcdemo drives a circular scrollbar interactively from the
// terminal. Arrow keys simulate bezel rotation over a paged model, the
// scrollbar state is mirrored as a text gauge, and the rendered frame can
// be exported to PNG at any time.
package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/roundui/arcscroll"
	"github.com/roundui/arcscroll/painter"
)

const frameInterval = 50 * time.Millisecond

type keyMap struct {
	Forward key.Binding
	Back    key.Binding
	Export  key.Binding
	Quit    key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Forward, k.Back, k.Export, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Forward, k.Back}, {k.Export, k.Quit}}
}

func defaultKeyMap() keyMap {
	return keyMap{
		Forward: key.NewBinding(
			key.WithKeys("right", "l", "j"),
			key.WithHelp("→/l", "rotate clockwise"),
		),
		Back: key.NewBinding(
			key.WithKeys("left", "h", "k"),
			key.WithHelp("←/h", "rotate counter-clockwise"),
		),
		Export: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "save frame as PNG"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

type frameMsg time.Time

func frameTick() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

type model struct {
	cfg       Config
	keys      keyMap
	help      help.Model
	pager     *arcscroll.Pager
	scrollbar *arcscroll.Scrollbar
	canvas    *painter.Painter
	status    string
	width     int
}

func newModel(cfg Config, haptics arcscroll.Haptics) (*model, error) {
	pager := arcscroll.NewPager(arcscroll.SystemClock(), cfg.Pages)

	opts := cfg.Options()
	if haptics != nil {
		opts = append(opts, arcscroll.WithHaptics(haptics))
	}
	scrollbar, err := arcscroll.NewPaged(pager, opts...)
	if err != nil {
		return nil, err
	}

	canvas, err := painter.New(cfg.Size)
	if err != nil {
		scrollbar.Close()
		return nil, err
	}

	return &model{
		cfg:       cfg,
		keys:      defaultKeyMap(),
		help:      help.New(),
		pager:     pager,
		scrollbar: scrollbar,
		canvas:    canvas,
	}, nil
}

func (m *model) Init() tea.Cmd {
	return frameTick()
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width

	case frameMsg:
		m.paint()
		return m, frameTick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Forward):
			m.scrollbar.HandleRotary(arcscroll.RotaryEvent{Direction: arcscroll.Clockwise})
			m.status = ""
		case key.Matches(msg, m.keys.Back):
			m.scrollbar.HandleRotary(arcscroll.RotaryEvent{Direction: arcscroll.CounterClockwise})
			m.status = ""
		case key.Matches(msg, m.keys.Export):
			m.paint()
			if err := m.canvas.SavePNG(m.cfg.ExportPath); err != nil {
				m.status = "export failed: " + err.Error()
			} else {
				m.status = "saved " + m.cfg.ExportPath
			}
		case key.Matches(msg, m.keys.Quit):
			m.scrollbar.Close()
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m *model) paint() {
	m.canvas.SetLabel(fmt.Sprintf("%d / %d", m.pager.CurrentPage()+1, m.pager.PageCount()))
	if err := m.canvas.Paint(m.scrollbar.Frame()); err != nil {
		m.status = "paint failed: " + err.Error()
	}
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	gaugeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

func (m *model) View() string {
	frame := m.scrollbar.Frame()

	var b strings.Builder
	b.WriteString(titleStyle.Render("arcscroll demo"))
	b.WriteString("\n\n")
	b.WriteString(gauge(frame))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("page %d of %d   opacity %.2f   %s\n",
		m.pager.CurrentPage()+1, m.pager.PageCount(),
		frame.Opacity, m.scrollbar.Visibility().State()))
	if m.status != "" {
		b.WriteString(dimStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// gauge renders the thumb's position along the track as a one-line bar.
func gauge(frame arcscroll.Frame) string {
	const width = 40
	if frame.Thumb.Empty() {
		return dimStyle.Render(strings.Repeat("-", width))
	}
	start := int(float64(width) * (frame.Thumb.StartAngle - arcscroll.TrackStartAngle) / arcscroll.TrackSweep)
	length := int(float64(width) * frame.Thumb.Length / arcscroll.TrackSweep)
	if length < 1 {
		length = 1
	}
	if start+length > width {
		start = width - length
	}
	var b strings.Builder
	b.WriteString(dimStyle.Render(strings.Repeat("-", start)))
	b.WriteString(gaugeStyle.Render(strings.Repeat("=", length)))
	b.WriteString(dimStyle.Render(strings.Repeat("-", width-start-length)))
	return b.String()
}

func main() {
	cfg, err := LoadConfig("arcdemo.toml")
	if err != nil {
		fmt.Fprintln(os.Stderr, "arcdemo:", err)
		os.Exit(1)
	}

	var haptics arcscroll.Haptics
	if cfg.Audio {
		clicker := NewClicker()
		if err := clicker.Init(); err != nil {
			fmt.Fprintln(os.Stderr, "arcdemo: audio disabled:", err)
		} else {
			haptics = clicker
		}
	}

	m, err := newModel(cfg, haptics)
	if err != nil {
		fmt.Fprintln(os.Stderr, "arcdemo:", err)
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "arcdemo:", err)
		os.Exit(1)
	}
}
