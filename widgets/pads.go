package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	gomidi "gitlab.com/gomidi/midi/v2"

	"drumrack/kit"
)

// PadState is how a pad is drawn
type PadState int

const (
	PadEmpty PadState = iota
	PadLoaded
	PadMissing
	PadHit
)

// PadCell is one pad as shown in the grid
type PadCell struct {
	Pad    kit.Pad
	Sample string // sample name, "" if none
	State  PadState
}

// PadStyle holds the colors and symbols used to draw pads
type PadStyle struct {
	Colors  map[PadState][3]uint8
	Symbols map[PadState]rune
	Label   lipgloss.Style
	Dim     lipgloss.Style
}

// RenderPad renders a single colored pad symbol
func RenderPad(color [3]uint8, symbol rune) string {
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(rgbToHex(color)))
	return style.Render(string(symbol))
}

// NoteName returns the note number and its name, e.g. "36 C2"
func NoteName(note uint8) string {
	return fmt.Sprintf("%3d %-3s", note, gomidi.Note(note).String())
}

// BuildCells lays the kit over the pad table in table order.
// exists reports whether a sample path is present on disk.
func BuildCells(k kit.Kit, exists func(string) bool, hit map[uint8]bool) []PadCell {
	byNote := k.ByNote()
	cells := make([]PadCell, len(kit.Pads))
	for i, p := range kit.Pads {
		cells[i] = PadCell{Pad: p}
		m, ok := byNote[p.Note]
		if !ok {
			continue
		}
		cells[i].Sample = m.SampleName
		cells[i].State = PadLoaded
		if exists != nil && !exists(m.SamplePath) {
			cells[i].State = PadMissing
		}
		if hit[p.Note] {
			cells[i].State = PadHit
		}
	}
	return cells
}

// RenderPadGrid renders pads grouped by drum, one drum per line:
//
//	Snare     ■  38 D2  Head     SnareTop   □  37 C#2 X-Stick  -
func RenderPadGrid(cells []PadCell, style PadStyle, width int) string {
	var lines []string
	var line strings.Builder
	group := ""

	flush := func() {
		if line.Len() > 0 {
			lines = append(lines, line.String())
			line.Reset()
		}
	}

	for _, c := range cells {
		if c.Pad.Name != group {
			flush()
			group = c.Pad.Name
			line.WriteString(style.Label.Render(fmt.Sprintf("%-9s", group)))
		}
		line.WriteString(" ")
		line.WriteString(RenderPad(style.Colors[c.State], style.Symbols[c.State]))
		line.WriteString(" ")
		line.WriteString(style.Dim.Render(fmt.Sprintf("%s %-9s", NoteName(c.Pad.Note), c.Pad.Trigger)))
		line.WriteString(" ")

		sample := c.Sample
		if sample == "" {
			sample = "-"
		}
		line.WriteString(fmt.Sprintf("%-*s", width, truncate(sample, width)))
	}
	flush()

	return strings.Join(lines, "\n")
}

// RenderLegendItem renders a single legend item: "■ Name - description"
func RenderLegendItem(color [3]uint8, symbol rune, name, desc string) string {
	return fmt.Sprintf("  %s %s - %s", RenderPad(color, symbol), name, desc)
}

// RenderKeyHelp formats key bindings in a friendly way
func RenderKeyHelp(sections []KeySection) string {
	var lines []string
	for _, sec := range sections {
		if sec.Title != "" {
			lines = append(lines, sec.Title)
		}
		for _, k := range sec.Keys {
			lines = append(lines, fmt.Sprintf("  %-12s %s", k.Key, k.Desc))
		}
	}
	return strings.Join(lines, "\n")
}

// KeySection groups related key bindings
type KeySection struct {
	Title string
	Keys  []KeyBinding
}

// KeyBinding is a single key and its description
type KeyBinding struct {
	Key  string
	Desc string
}

func truncate(s string, width int) string {
	r := []rune(s)
	if width <= 0 || len(r) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(r[:width-1]) + "…"
}

func rgbToHex(c [3]uint8) string {
	return fmt.Sprintf("#%02x%02x%02x", c[0], c[1], c[2])
}
