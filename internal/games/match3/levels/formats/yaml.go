// Package formats provides pluggable board layout file parsers.
package formats

import (
	"fmt"
	"strconv"

	"github.com/vovakirdan/match3/internal/games/match3/core"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a layout file.
type YAMLLevel struct {
	ID        string            `yaml:"id"`
	Name      string            `yaml:"name"`
	ItemTypes int               `yaml:"item_types,omitempty"`
	Rows      []string          `yaml:"rows"` // rows[0] is y=0, the bottom row
	Bonuses   []YAMLBonus       `yaml:"bonuses,omitempty"`
	Metadata  map[string]string `yaml:"metadata,omitempty"`
}

// YAMLBonus places a bonus on a single cell.
type YAMLBonus struct {
	X     int    `yaml:"x"`
	Y     int    `yaml:"y"`
	Shape string `yaml:"shape"`
	RX    int    `yaml:"rx"`
	RY    int    `yaml:"ry"`
}

// Level represents a parsed layout ready for use.
type Level struct {
	ID        string
	Name      string
	Width     int
	Height    int
	ItemTypes int
	Rows      []string
	Bonuses   map[core.Coord]core.Bonus
	Metadata  map[string]string
}

// ParseYAML parses a YAML layout file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("missing id")
	}
	if len(yl.Rows) == 0 {
		return Level{}, fmt.Errorf("level %s: no rows", yl.ID)
	}

	width := len(yl.Rows[0])
	highest := 0
	for y, row := range yl.Rows {
		if len(row) != width {
			return Level{}, fmt.Errorf("level %s: row %d has width %d, want %d", yl.ID, y, len(row), width)
		}
		for x := 0; x < len(row); x++ {
			t, err := strconv.ParseInt(row[x:x+1], 36, 0)
			if err != nil {
				return Level{}, fmt.Errorf("level %s: cell (%d,%d): invalid type %q", yl.ID, x, y, row[x])
			}
			highest = max(highest, int(t))
		}
	}

	itemTypes := yl.ItemTypes
	if itemTypes <= 0 {
		itemTypes = max(highest+1, 2) // Infer from the layout
	}

	level := Level{
		ID:        yl.ID,
		Name:      yl.Name,
		Width:     width,
		Height:    len(yl.Rows),
		ItemTypes: itemTypes,
		Rows:      yl.Rows,
		Bonuses:   make(map[core.Coord]core.Bonus),
		Metadata:  yl.Metadata,
	}

	for _, b := range yl.Bonuses {
		shape, ok := core.ParseShape(b.Shape)
		if !ok {
			return Level{}, fmt.Errorf("level %s: bonus at (%d,%d): unknown shape %q", yl.ID, b.X, b.Y, b.Shape)
		}
		if b.RX < 0 || b.RY < 0 {
			return Level{}, fmt.Errorf("level %s: bonus at (%d,%d): negative radius", yl.ID, b.X, b.Y)
		}
		level.Bonuses[core.C(b.X, b.Y)] = core.Bonus{Shape: shape, RadiusX: b.RX, RadiusY: b.RY}
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}
