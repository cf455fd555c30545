package render

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/formsmith/internal/domain/form"
)

// Lengths are converted to terminal cells: 8px per column, 16px per row,
// 1em per two columns. Percentages have no cell equivalent and map to zero.
const (
	pxPerColumn = 8
	pxPerRow    = 16
	emColumns   = 2
)

// largeFontPx is the font size from which text is underlined to stand out.
const largeFontPx = 20

// TextStyle turns an effective question or option style into a lipgloss
// style. Terminals have no font sizes, so large text is underlined and light
// weights are rendered faint.
func TextStyle(eff form.EffectiveTextStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if eff.FontColor != "" {
		style = style.Foreground(lipgloss.Color(eff.FontColor))
	}
	switch weightClass(eff.FontWeight) {
	case weightBold:
		style = style.Bold(true)
	case weightLight:
		style = style.Faint(true)
	}
	if eff.Bold {
		style = style.Bold(true)
	}
	if px, ok := pixels(eff.FontSize); ok && px >= largeFontPx {
		style = style.Underline(true)
	}
	switch eff.TextAlign {
	case form.TextAlignCenter:
		style = style.Align(lipgloss.Center)
	case form.TextAlignRight:
		style = style.Align(lipgloss.Right)
	default:
		style = style.Align(lipgloss.Left)
	}
	return style
}

// SectionStyle turns an effective section style into the lipgloss style of
// the section's box.
func SectionStyle(eff form.EffectiveSectionStyle) lipgloss.Style {
	style := lipgloss.NewStyle()
	if eff.BackgroundColor != "" {
		style = style.Background(lipgloss.Color(eff.BackgroundColor))
	}
	if Columns(eff.BorderWidth) > 0 {
		border := lipgloss.NormalBorder()
		if Columns(eff.BorderRadius) > 0 {
			border = lipgloss.RoundedBorder()
		}
		style = style.Border(border)
		if eff.BorderColor != "" {
			style = style.BorderForeground(lipgloss.Color(eff.BorderColor))
		}
	}
	top, right, bottom, left := Box(eff.Padding)
	return style.Padding(top, right, bottom, left)
}

// Columns converts a length to terminal columns, rounding up so that any
// positive length is at least one cell.
func Columns(length string) int {
	return cells(length, pxPerColumn)
}

// Rows converts a length to terminal rows.
func Rows(length string) int {
	return cells(length, pxPerRow)
}

// Box expands the one to four value padding shorthand into rows and columns,
// in top, right, bottom, left order.
func Box(shorthand string) (top, right, bottom, left int) {
	parts := strings.Fields(shorthand)
	switch len(parts) {
	case 1:
		return Rows(parts[0]), Columns(parts[0]), Rows(parts[0]), Columns(parts[0])
	case 2:
		return Rows(parts[0]), Columns(parts[1]), Rows(parts[0]), Columns(parts[1])
	case 3:
		return Rows(parts[0]), Columns(parts[1]), Rows(parts[2]), Columns(parts[1])
	case 4:
		return Rows(parts[0]), Columns(parts[1]), Rows(parts[2]), Columns(parts[3])
	default:
		return 0, 0, 0, 0
	}
}

func cells(length string, pxPerCell float64) int {
	px, ok := pixels(length)
	if !ok || px <= 0 {
		return 0
	}
	n := int(px / pxPerCell)
	if float64(n)*pxPerCell < px {
		n++
	}
	return n
}

// pixels converts px, em and rem lengths to pixels, taking 1em as
// emColumns*pxPerColumn.
func pixels(length string) (float64, bool) {
	length = strings.TrimSpace(length)
	unit := 1.0
	switch {
	case strings.HasSuffix(length, "px"):
		length = strings.TrimSuffix(length, "px")
	case strings.HasSuffix(length, "rem"):
		length = strings.TrimSuffix(length, "rem")
		unit = emColumns * pxPerColumn
	case strings.HasSuffix(length, "em"):
		length = strings.TrimSuffix(length, "em")
		unit = emColumns * pxPerColumn
	case length == "0":
	default:
		return 0, false
	}
	v, err := strconv.ParseFloat(length, 64)
	if err != nil {
		return 0, false
	}
	return v * unit, true
}

type weight int

const (
	weightNormal weight = iota
	weightLight
	weightBold
)

func weightClass(fontWeight string) weight {
	switch fontWeight {
	case "bold", "bolder":
		return weightBold
	case "lighter":
		return weightLight
	}
	n, err := strconv.Atoi(fontWeight)
	if err != nil {
		return weightNormal
	}
	switch {
	case n >= 600:
		return weightBold
	case n <= 300:
		return weightLight
	default:
		return weightNormal
	}
}
