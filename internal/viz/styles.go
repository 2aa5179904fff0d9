package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/dsaviz/internal/step"
)

// Styles are the lipgloss styles of one theme.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Selected lipgloss.Style
	Item     lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Cell     lipgloss.Style
	Panel    lipgloss.Style
	Narrate  lipgloss.Style
	Error    lipgloss.Style
	Playing  lipgloss.Style
	Paused   lipgloss.Style
	Key      lipgloss.Style
	Hint     lipgloss.Style
	Graph    lipgloss.Style
}

func NewStyles(t Theme) Styles {
	return Styles{
		Theme:    t,
		Title:    lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Subtitle: lipgloss.NewStyle().Foreground(t.Muted),
		Selected: lipgloss.NewStyle().Foreground(t.Text).Bold(true),
		Item:     lipgloss.NewStyle().Foreground(t.Muted),
		Label:    lipgloss.NewStyle().Foreground(t.Muted).Width(12),
		Value:    lipgloss.NewStyle().Foreground(t.Text),
		Cell:     lipgloss.NewStyle().Foreground(t.Text).Padding(0, 1),
		Panel: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Padding(1, 2),
		Narrate: lipgloss.NewStyle().Foreground(t.Text).Italic(true),
		Error:   lipgloss.NewStyle().Foreground(t.Error).Bold(true),
		Playing: lipgloss.NewStyle().Foreground(t.Success).Bold(true),
		Paused:  lipgloss.NewStyle().Foreground(t.Warning).Bold(true),
		Key:     lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Hint:    lipgloss.NewStyle().Foreground(t.Muted),
		Graph:   lipgloss.NewStyle().Foreground(t.Secondary).Padding(1, 0),
	}
}

// Marked renders text in the highlight colour of role.
func (s Styles) Marked(text string, r step.Role) string {
	return s.Cell.Foreground(s.Theme.Mark(r)).Bold(true).Render(text)
}

// ProgressBar renders the playback position.
func (s Styles) ProgressBar(index, total, width int) string {
	if total <= 1 || width <= 0 {
		return s.Hint.Render(strings.Repeat("░", max(width, 0)))
	}
	filled := min(width, index*width/(total-1))
	return s.Key.Render(strings.Repeat("█", filled)) + s.Hint.Render(strings.Repeat("░", width-filled))
}

// Sparkline renders values as a one-line bar chart sampled to width.
func (s Styles) Sparkline(values []float64, width int) string {
	if len(values) == 0 || width <= 0 {
		return ""
	}
	chars := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	lo, hi := values[0], values[0]
	for _, v := range values {
		lo, hi = min(lo, v), max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	stride := max(len(values)/width, 1)

	var b strings.Builder
	for i := 0; i < width && i*stride < len(values); i++ {
		norm := (values[i*stride] - lo) / span
		b.WriteRune(chars[int(norm*float64(len(chars)-1))])
	}
	return s.Key.Render(b.String())
}

// KeyHints renders "key action" pairs on one line.
func (s Styles) KeyHints(pairs ...string) string {
	var b strings.Builder
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(s.Key.Render(pairs[i]) + s.Hint.Render(" "+pairs[i+1]))
	}
	return b.String()
}

func Separator(s Styles, width int) string {
	mid := width / 2
	return s.Hint.Render(strings.Repeat("─", max(mid-3, 0)) + " ◆ " + strings.Repeat("─", max(width-mid-3, 0)))
}
