package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"drumrack/kit"
	"drumrack/midi"
	"drumrack/preset"
	"drumrack/theme"
	"drumrack/widgets"
)

const (
	listWidth   = 32
	sampleWidth = 14
	hitDuration = 150 * time.Millisecond
)

type Model struct {
	Catalog  *preset.Catalog
	Inputs   *midi.InputManager // may be nil
	Theme    *theme.Theme
	Exists   func(path string) bool
	changes  <-chan struct{}
	cursor   int
	hits     map[uint8]bool
	port     string
	status   string
	height   int
	showHelp bool
	quitting bool
}

type MIDIEventMsg midi.Event

type PresetsChangedMsg struct{}

type hitExpiredMsg uint8

func NewModel(catalog *preset.Catalog, inputs *midi.InputManager, th *theme.Theme, changes <-chan struct{}) Model {
	cursor := catalog.Current()
	if cursor < 0 {
		cursor = 0
	}
	return Model{
		Catalog: catalog,
		Inputs:  inputs,
		Theme:   th,
		changes: changes,
		cursor:  cursor,
		hits:    make(map[uint8]bool),
		height:  24,
	}
}

func ListenForMIDI(inputs *midi.InputManager) tea.Cmd {
	if inputs == nil {
		return nil
	}
	return func() tea.Msg {
		event, ok := <-inputs.Events()
		if !ok {
			return nil
		}
		return MIDIEventMsg(event)
	}
}

func ListenForChanges(changes <-chan struct{}) tea.Cmd {
	if changes == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-changes; !ok {
			return nil
		}
		return PresetsChangedMsg{}
	}
}

func expireHit(note uint8) tea.Cmd {
	return tea.Tick(hitDuration, func(time.Time) tea.Msg {
		return hitExpiredMsg(note)
	})
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		ListenForMIDI(m.Inputs),
		ListenForChanges(m.changes),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height

	case tea.KeyMsg:
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "j", "down":
			if m.cursor < m.Catalog.Len()-1 {
				m.cursor++
			}

		case "k", "up":
			if m.cursor > 0 {
				m.cursor--
			}

		case "g", "home":
			m.cursor = 0

		case "end":
			m.cursor = max(0, m.Catalog.Len()-1)

		case "enter", " ":
			m.load(m.cursor)

		case "n", "right":
			m.step(m.Catalog.Next)

		case "p", "left":
			m.step(m.Catalog.Previous)

		case "r":
			m.rescan()

		case "?":
			m.showHelp = !m.showHelp

		default:
			// Shift+letter jumps to the first preset starting with it
			if len(key) == 1 && key[0] >= 'A' && key[0] <= 'Z' {
				if i := m.Catalog.IndexOf(key); i >= 0 {
					m.cursor = i
				}
			}
		}

	case MIDIEventMsg:
		event := midi.Event(msg)
		var cmd tea.Cmd
		switch event.Type {
		case midi.InputConnected:
			m.port = event.Port
		case midi.InputDisconnected:
			m.port = ""
		case midi.InputNav:
			if event.Action == midi.NavNext {
				m.step(m.Catalog.Next)
			} else {
				m.step(m.Catalog.Previous)
			}
		case midi.InputTrigger:
			m.hits[event.Note] = true
			cmd = expireHit(event.Note)
		}
		return m, tea.Batch(cmd, ListenForMIDI(m.Inputs))

	case hitExpiredMsg:
		delete(m.hits, uint8(msg))

	case PresetsChangedMsg:
		m.rescan()
		return m, ListenForChanges(m.changes)
	}

	return m, nil
}

func (m *Model) load(i int) {
	if m.Catalog.Load(i) {
		m.status = fmt.Sprintf("loaded %s (%d pads)", m.Catalog.Name(i), len(m.Catalog.Kit().Mappings))
	} else {
		m.status = lipgloss.NewStyle().Foreground(m.Theme.Warning()).Render("could not load " + m.Catalog.Name(i))
	}
}

func (m *Model) step(move func() bool) {
	if move() {
		m.cursor = m.Catalog.Current()
		m.status = fmt.Sprintf("loaded %s (%d pads)", m.Catalog.Name(m.cursor), len(m.Catalog.Kit().Mappings))
	}
}

func (m *Model) rescan() {
	m.Catalog.Scan()
	if m.cursor >= m.Catalog.Len() {
		m.cursor = max(0, m.Catalog.Len()-1)
	}
	m.status = fmt.Sprintf("%d presets", m.Catalog.Len())
}

func (m Model) padStyle() widgets.PadStyle {
	c := func(role float64) [3]uint8 { return [3]uint8(m.Theme.RGB(role)) }
	return widgets.PadStyle{
		Colors: map[widgets.PadState][3]uint8{
			widgets.PadEmpty:   c(theme.RoleMuted),
			widgets.PadLoaded:  c(theme.RoleSuccess),
			widgets.PadMissing: c(theme.RoleWarning),
			widgets.PadHit:     c(theme.RoleActive),
		},
		Symbols: map[widgets.PadState]rune{
			widgets.PadEmpty:   m.Theme.Symbols.PadEmpty,
			widgets.PadLoaded:  m.Theme.Symbols.PadLoaded,
			widgets.PadMissing: m.Theme.Symbols.PadMissing,
			widgets.PadHit:     m.Theme.Symbols.PadHit,
		},
		Label: lipgloss.NewStyle().Foreground(m.Theme.FG()),
		Dim:   lipgloss.NewStyle().Foreground(m.Theme.Muted()),
	}
}

func (m Model) listView(rows int) string {
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	cursorStyle := lipgloss.NewStyle().Foreground(m.Theme.FG()).Background(m.Theme.Cursor())
	currentStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())

	entries := m.Catalog.Entries()
	if len(entries) == 0 {
		return dimStyle.Render("no presets found")
	}

	start := max(0, m.cursor-rows/2)
	end := min(len(entries), start+rows)
	start = max(0, end-rows)

	var lines []string
	for i := start; i < end; i++ {
		e := entries[i]
		mark := ' '
		if i == m.Catalog.Current() {
			mark = m.Theme.Symbols.Current
		}
		if e.Custom {
			mark = m.Theme.Symbols.Custom
		}
		pointer := ' '
		if i == m.cursor {
			pointer = m.Theme.Symbols.Cursor
		}
		row := fmt.Sprintf("%c%c %-*s", pointer, mark, listWidth-3, truncate(e.Name, listWidth-3))

		style := dimStyle
		if i == m.Catalog.Current() {
			style = currentStyle
		}
		if i == m.cursor {
			style = cursorStyle
		}
		lines = append(lines, style.Render(row))
	}
	return strings.Join(lines, "\n")
}

func (m Model) kitView() string {
	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent()).Bold(true)
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	if m.Catalog.Current() < 0 {
		return dimStyle.Render("no preset loaded")
	}

	k := m.Catalog.Kit()
	cells := widgets.BuildCells(k, m.Exists, m.hits)
	header := headerStyle.Render(k.Name) + dimStyle.Render(fmt.Sprintf("  %d/%d pads", len(k.Mappings), len(kit.Pads)))
	if k.Empty() {
		header += dimStyle.Render("  (nothing imported)")
	}

	return header + "\n\n" + widgets.RenderPadGrid(cells, m.padStyle(), sampleWidth)
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())

	midiStatus := "midi: -"
	if m.port != "" {
		midiStatus = "midi: " + m.port
	}
	header := headerStyle.Render(fmt.Sprintf("drumrack  %d/%d  %s", m.cursor+1, m.Catalog.Len(), midiStatus))

	rows := max(5, m.height-8)
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(listWidth+2).Render(m.listView(rows)),
		m.kitView(),
	)

	help := dimStyle.Render("j/k:move  enter:load  n/p:next/prev  A-Z:jump  r:rescan  ?:help  q:quit")
	if m.showHelp {
		body = m.helpView()
	}

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(body)
	out.WriteString("\n\n")
	if m.status != "" {
		out.WriteString(dimStyle.Render(m.status))
		out.WriteString("\n")
	}
	out.WriteString(help)

	return out.String()
}

var keySections = []widgets.KeySection{
	{Title: "Browse", Keys: []widgets.KeyBinding{
		{Key: "j/k", Desc: "move cursor"},
		{Key: "g/end", Desc: "first / last preset"},
		{Key: "A-Z", Desc: "jump to first preset with that letter"},
	}},
	{Title: "Load", Keys: []widgets.KeyBinding{
		{Key: "enter", Desc: "load preset under cursor"},
		{Key: "n/p", Desc: "load next / previous preset"},
		{Key: "r", Desc: "rescan preset directories"},
	}},
}

func (m Model) helpView() string {
	st := m.padStyle()
	legend := []string{
		widgets.RenderLegendItem(st.Colors[widgets.PadLoaded], st.Symbols[widgets.PadLoaded], "loaded", "sample found on disk"),
		widgets.RenderLegendItem(st.Colors[widgets.PadMissing], st.Symbols[widgets.PadMissing], "missing", "sample path not found"),
		widgets.RenderLegendItem(st.Colors[widgets.PadEmpty], st.Symbols[widgets.PadEmpty], "empty", "no sample on this pad"),
		widgets.RenderLegendItem(st.Colors[widgets.PadHit], st.Symbols[widgets.PadHit], "hit", "pad played from MIDI"),
	}
	return widgets.RenderKeyHelp(keySections) + "\n\nPads\n" + strings.Join(legend, "\n")
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
