package calendar

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

var weekDays = [7]string{"S", "M", "T", "W", "T", "F", "S"}

// Palette holds the colours of the calendar views.
type Palette struct {
	Primary     lipgloss.Color
	Muted       lipgloss.Color
	Available   lipgloss.Color
	Unavailable lipgloss.Color
}

// DefaultPalette returns the default colours.
func DefaultPalette() Palette {
	return Palette{
		Primary:     lipgloss.Color("#2563EB"), // blue
		Muted:       lipgloss.Color("#64748B"), // slate
		Available:   lipgloss.Color("#22C55E"), // green
		Unavailable: lipgloss.Color("#EF4444"), // red
	}
}

// View is everything needed to draw one month.
type View struct {
	Month     Month
	Marks     Marks
	Selection *Selection
	Mode      Mode
	Today     time.Time
}

// Renderer draws month grids. Every cell carries a one-character marker
// so the grid reads without colour.
type Renderer struct {
	title   lipgloss.Style
	muted   lipgloss.Style
	states  map[DisplayState]lipgloss.Style
	markers map[DisplayState]string
}

// NewRenderer returns a renderer whose colour profile is detected from w.
func NewRenderer(w io.Writer, p Palette) *Renderer {
	r := lipgloss.NewRenderer(w)
	return &Renderer{
		title: r.NewStyle().Bold(true).Foreground(p.Primary),
		muted: r.NewStyle().Foreground(p.Muted),
		states: map[DisplayState]lipgloss.Style{
			Plain:                  r.NewStyle(),
			Today:                  r.NewStyle().Bold(true).Foreground(p.Primary),
			SelectedForAvailable:   r.NewStyle().Underline(true).Foreground(p.Available),
			SelectedForUnavailable: r.NewStyle().Underline(true).Foreground(p.Unavailable),
			Available:              r.NewStyle().Reverse(true).Foreground(p.Available),
			Unavailable:            r.NewStyle().Reverse(true).Foreground(p.Unavailable),
		},
		markers: map[DisplayState]string{
			Plain:                  " ",
			Today:                  "<",
			SelectedForAvailable:   "*",
			SelectedForUnavailable: "*",
			Available:              "+",
			Unavailable:            "-",
		},
	}
}

// Render draws the header, the weekday row and the day grid of v.
func (r *Renderer) Render(v View) string {
	var b strings.Builder

	b.WriteString(r.title.Render(v.Month.String()))
	b.WriteString("\n")

	cells := make([]string, 0, 7)
	for _, d := range weekDays {
		cells = append(cells, r.muted.Render(fmt.Sprintf("%2s", d))+" ")
	}
	writeRow(&b, cells)

	cells = cells[:0]
	for _, slot := range DaysInMonth(v.Month) {
		if slot.Blank {
			cells = append(cells, "   ")
		} else {
			state := Classify(slot.Date, v.Marks.Lookup, v.Selection, v.Mode, v.Today)
			cells = append(cells, r.states[state].Render(fmt.Sprintf("%2d", slot.Date.Day()))+r.markers[state])
		}
		if len(cells) == 7 {
			writeRow(&b, cells)
			cells = cells[:0]
		}
	}
	if len(cells) > 0 {
		writeRow(&b, cells)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
	b.WriteString("\n")
}

// Legend explains the markers. Selected days take the colour of mode.
func (r *Renderer) Legend(mode Mode) string {
	sel := SelectedForAvailable
	if mode == ModeUnavailable {
		sel = SelectedForUnavailable
	}
	items := []struct {
		state DisplayState
		label string
	}{
		{Available, "available"},
		{Unavailable, "not available"},
		{sel, "selected"},
		{Today, "today"},
	}

	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, r.states[it.state].Render(r.markers[it.state])+" "+it.label)
	}
	return r.muted.Render("Legend: ") + strings.Join(parts, "  ")
}
