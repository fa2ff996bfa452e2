// Package tui renders match-3 boards for the terminal with lipgloss.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

// RenderBoard draws a board snapshot with the highest row on top, so items
// fall down the screen. Each cell shows its item type in base 36, '.' when
// destroyed. Bonus items are emphasized and hinted cells highlighted.
func RenderBoard(s core.Snapshot, hints []core.Coord, theme Theme) string {
	hinted := make(map[core.Coord]bool, len(hints))
	for _, c := range hints {
		hinted[c] = true
	}

	labelW := len(strconv.Itoa(s.Height - 1))

	var sb strings.Builder
	sb.Grow(s.Width*s.Height*4 + s.Height*(labelW+2))

	for y := s.Height - 1; y >= 0; y-- {
		sb.WriteString(theme.Axis.Render(fmt.Sprintf("%*d ", labelW, y)))
		for x := range s.Width {
			if x > 0 {
				sb.WriteByte(' ')
			}
			c := core.C(x, y)
			sb.WriteString(renderCell(s.At(c), hinted[c], theme))
		}
		sb.WriteByte('\n')
	}

	// Column axis
	sb.WriteString(strings.Repeat(" ", labelW+1))
	for x := range s.Width {
		if x > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(theme.Axis.Render(strconv.FormatInt(int64(x%36), 36)))
	}

	return sb.String()
}

func renderCell(it core.Item, hinted bool, theme Theme) string {
	if it.Destroyed {
		return theme.Destroyed.Render(".")
	}

	style := theme.itemStyle(it.Type)
	if it.HasBonus() {
		style = style.Inherit(theme.Bonus)
	}
	if hinted {
		style = style.Inherit(theme.Hint)
	}
	return style.Render(strconv.FormatInt(int64(it.Type), 36))
}

// HUDField is a labelled value shown under a board.
type HUDField struct {
	Label string
	Value any
}

// RenderHUD renders a title line followed by "label: value" pairs.
func RenderHUD(title string, fields []HUDField, theme Theme) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = theme.HUDLabel.Render(f.Label+":") + " " + theme.HUDValue.Render(fmt.Sprint(f.Value))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		theme.HUDTitle.Render(title),
		strings.Join(parts, "  "),
	)
}
