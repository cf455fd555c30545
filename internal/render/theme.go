package render

import "github.com/charmbracelet/lipgloss"

// ColourSet groups the adaptive colours for one semantic slot.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
	Muted  lipgloss.AdaptiveColor
}

// Palette describes the semantic colours the editor chrome uses. Form content
// is coloured by its effective styles, never by the palette.
type Palette struct {
	Primary ColourSet
	Success ColourSet
	Info    ColourSet
	Danger  ColourSet
	Neutral ColourSet
}

// Theme styles everything around the rendered form: pane titles, the
// selection marker, toasts and help text.
type Theme struct {
	Palette  Palette
	Title    lipgloss.Style
	Pane     lipgloss.Style
	Focused  lipgloss.Style
	Marker   lipgloss.Style
	Muted    lipgloss.Style
	Heading  lipgloss.Style
	Selected lipgloss.Style
}

// DefaultTheme returns the default editor theme.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:   ac("#3b82f6", "#60a5fa"),
			OnBase: ac("#f8fafc", "#0b1120"),
			Muted:  ac("#2563eb", "#1d4ed8"),
		},
		Success: ColourSet{
			Base:   ac("#22c55e", "#4ade80"),
			OnBase: ac("#052e16", "#022c22"),
			Muted:  ac("#16a34a", "#15803d"),
		},
		Info: ColourSet{
			Base:   ac("#06b6d4", "#22d3ee"),
			OnBase: ac("#083344", "#04121a"),
			Muted:  ac("#0891b2", "#0e7490"),
		},
		Danger: ColourSet{
			Base:   ac("#ef4444", "#f87171"),
			OnBase: ac("#7f1d1d", "#450a0a"),
			Muted:  ac("#dc2626", "#b91c1c"),
		},
		Neutral: ColourSet{
			Base:   ac("#64748b", "#94a3b8"),
			OnBase: ac("#f1f5f9", "#0f172a"),
			Muted:  ac("#475569", "#334155"),
		},
	}

	return Theme{
		Palette: palette,
		Title:   lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base),
		Pane: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(palette.Neutral.Muted).
			Padding(0, 1),
		Focused: lipgloss.NewStyle().
			BorderStyle(lipgloss.ThickBorder()).
			BorderForeground(palette.Primary.Base).
			Padding(0, 1),
		Marker:   lipgloss.NewStyle().Bold(true).Foreground(palette.Primary.Base),
		Muted:    lipgloss.NewStyle().Foreground(palette.Neutral.Base),
		Heading:  lipgloss.NewStyle().Bold(true).Underline(true),
		Selected: lipgloss.NewStyle().Reverse(true),
	}
}

// Severity tags a toast.
type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityError   Severity = "error"
)

// Toast renders a one-line notification in the colours of its severity.
func (t Theme) Toast(severity Severity, message string) string {
	set := t.Palette.Info
	icon := "i"
	switch severity {
	case SeveritySuccess:
		set = t.Palette.Success
		icon = "✓"
	case SeverityError:
		set = t.Palette.Danger
		icon = "✗"
	}
	return lipgloss.NewStyle().
		Foreground(set.OnBase).
		Background(set.Base).
		Padding(0, 1).
		Render(icon + " " + message)
}
