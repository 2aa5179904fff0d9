package export

import (
	"fmt"
	"html"
	"strings"

	"github.com/san-kum/dsaviz/internal/step"
)

const (
	background = "#0a0a0a"
	foreground = "#e0e0e0"
	barColor   = "#4a90d9"
)

// Highlight colours, in the order they take precedence.
var palette = []struct {
	role  step.Role
	color string
}{
	{step.Found, "#00ff00"},
	{step.Swapped, "#ff5555"},
	{step.Swapping, "#ff5555"},
	{step.Placed, "#50fa7b"},
	{step.PivotIndex, "#ffb86c"},
	{step.Comparing, "#f1fa8c"},
	{step.Shifting, "#f1fa8c"},
	{step.Writing, "#8be9fd"},
	{step.Current, "#bd93f9"},
	{step.KeyIndex, "#bd93f9"},
	{step.Mid, "#ff79c6"},
	{step.Left, "#8be9fd"},
	{step.Right, "#8be9fd"},
	{step.Visiting, "#ffb86c"},
	{step.Mismatch, "#ff5555"},
	{step.CellAt, "#f1fa8c"},
}

func colors(a step.Annotations) map[int]string {
	roles := make([]step.Role, len(palette))
	byRole := make(map[step.Role]string, len(palette))
	for i, p := range palette {
		roles[i] = p.role
		byRole[p.role] = p.color
	}
	out := make(map[int]string)
	for i, r := range a.Marks(roles...) {
		out[i] = byRole[r]
	}
	return out
}

// StepToSVG draws a single step. Arrays become bar charts, character views a
// row of boxes and tables a grid; other shapes are drawn as their narration.
func StepToSVG(s step.Step, width, height int) string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background))

	body := float64(height) - 30
	switch s.View.Kind {
	case step.KindArray:
		bars(&sb, s.View.Array, colors(s.Annotations), float64(width), body)
	case step.KindChars:
		boxes(&sb, s.View.Chars, colors(s.Annotations), float64(width), body)
	case step.KindTable:
		grid(&sb, s.View.Table, float64(width), body)
	}

	sb.WriteString(fmt.Sprintf(`<text x="8" y="%d" fill="%s" font-family="monospace" font-size="14">%s</text>
`, height-10, foreground, html.EscapeString(s.Narration)))
	sb.WriteString("</svg>")
	return sb.String()
}

func bars(sb *strings.Builder, a []int, hl map[int]string, width, height float64) {
	if len(a) == 0 {
		return
	}
	maxAbs := 1
	for _, v := range a {
		maxAbs = max(maxAbs, v, -v)
	}
	slot := width / float64(len(a))
	mid := height / 2
	for i, v := range a {
		fill := barColor
		if c, ok := hl[i]; ok {
			fill = c
		}
		h := float64(abs(v)) / float64(maxAbs) * (mid - 10)
		y := mid - h
		if v < 0 {
			y = mid
		}
		x := float64(i)*slot + slot*0.1
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"/>
`, x, y, slot*0.8, h, fill))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12" text-anchor="middle">%d</text>
`, x+slot*0.4, height-4, foreground, v))
	}
}

func boxes(sb *strings.Builder, chars []string, hl map[int]string, width, height float64) {
	if len(chars) == 0 {
		return
	}
	size := min(width/float64(len(chars)), 40)
	y := height/2 - size/2
	for i, c := range chars {
		fill := "none"
		if col, ok := hl[i]; ok {
			fill = col
		}
		x := float64(i) * size
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="%s"/>
`, x+1, y, size-2, size, fill, foreground))
		sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="14" text-anchor="middle">%s</text>
`, x+size/2, y+size*0.65, foreground, html.EscapeString(c)))
	}
}

func grid(sb *strings.Builder, t [][]step.Cell, width, height float64) {
	if len(t) == 0 || len(t[0]) == 0 {
		return
	}
	cw := width / float64(len(t[0]))
	ch := min(height/float64(len(t)), 30)
	for r, row := range t {
		for c, cell := range row {
			x, y := float64(c)*cw, float64(r)*ch
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="none" stroke="#444"/>
`, x, y, cw, ch))
			if !cell.Set {
				continue
			}
			sb.WriteString(fmt.Sprintf(`<text x="%.1f" y="%.1f" fill="%s" font-family="monospace" font-size="12" text-anchor="middle">%d</text>
`, x+cw/2, y+ch*0.7, foreground, cell.Value))
		}
	}
}

// SeriesToSVG draws a polyline over the values, one point per step.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	lo, hi := values[0], values[0]
	for _, v := range values {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	lo -= span * 0.1
	span *= 1.2

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="%s" stroke-width="1.5" d="M`,
		width, height, width, height, background, strokeColor))

	for i, v := range values {
		x := float64(i) / float64(len(values)-1) * float64(width)
		y := float64(height) - (v-lo)/span*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
