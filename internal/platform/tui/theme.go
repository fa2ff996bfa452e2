package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles used to draw a board.
type Theme struct {
	// Item colors, indexed by item type and cycled past the end
	Items []lipgloss.Style

	Destroyed lipgloss.Style
	Bonus     lipgloss.Style // Layered on top of the item color
	Hint      lipgloss.Style // Layered on top of the item color
	Axis      lipgloss.Style

	// HUD styles
	HUDTitle lipgloss.Style
	HUDLabel lipgloss.Style
	HUDValue lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		Items: []lipgloss.Style{
			lipgloss.NewStyle().Foreground(lipgloss.Color("196")), // Red
			lipgloss.NewStyle().Foreground(lipgloss.Color("46")),  // Lime green
			lipgloss.NewStyle().Foreground(lipgloss.Color("33")),  // Blue
			lipgloss.NewStyle().Foreground(lipgloss.Color("226")), // Bright yellow
			lipgloss.NewStyle().Foreground(lipgloss.Color("135")), // Medium purple
			lipgloss.NewStyle().Foreground(lipgloss.Color("51")),  // Bright cyan
			lipgloss.NewStyle().Foreground(lipgloss.Color("208")), // Orange
			lipgloss.NewStyle().Foreground(lipgloss.Color("205")), // Hot pink
		},
		Destroyed: lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
		Bonus:     lipgloss.NewStyle().Bold(true).Underline(true),
		Hint:      lipgloss.NewStyle().Reverse(true),
		Axis:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),

		HUDTitle: lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Bold(true),
		HUDLabel: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		HUDValue: lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
	}
}

// NeonTheme returns a neon-style theme.
func NeonTheme() Theme {
	theme := DefaultTheme()
	theme.Items = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("199")), // Neon pink
		lipgloss.NewStyle().Foreground(lipgloss.Color("118")), // Neon green
		lipgloss.NewStyle().Foreground(lipgloss.Color("87")),  // Neon cyan
		lipgloss.NewStyle().Foreground(lipgloss.Color("227")), // Neon yellow
		lipgloss.NewStyle().Foreground(lipgloss.Color("171")), // Neon purple
		lipgloss.NewStyle().Foreground(lipgloss.Color("214")), // Neon orange
	}
	return theme
}

// MonochromeTheme returns a grayscale theme.
func MonochromeTheme() Theme {
	theme := DefaultTheme()
	theme.Items = []lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
	return theme
}

// ThemeByName returns a theme by its CLI name.
func ThemeByName(name string) (Theme, error) {
	switch name {
	case "", "default":
		return DefaultTheme(), nil
	case "neon":
		return NeonTheme(), nil
	case "mono", "monochrome":
		return MonochromeTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want default, neon or mono)", name)
	}
}

// itemStyle returns the style for an item type.
func (t Theme) itemStyle(itemType int) lipgloss.Style {
	if len(t.Items) == 0 {
		return lipgloss.NewStyle()
	}
	return t.Items[itemType%len(t.Items)]
}
