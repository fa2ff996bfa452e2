package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/vovakirdan/match3/internal/games/match3/core"
)

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func plain(s string) string {
	return ansi.ReplaceAllString(s, "")
}

func TestRenderBoardTopRowFirst(t *testing.T) {
	p := core.DefaultParams()
	p.ItemTypes = 4
	b, err := core.NewBoardFromLayout(p, []string{"0010", "1231"}, nil, nil)
	if err != nil {
		t.Fatalf("NewBoardFromLayout() failed: %v", err)
	}
	it := b.At(core.C(0, 0))
	it.Destroyed = true
	b.SetItem(core.C(0, 0), it)

	got := plain(RenderBoard(b.Snapshot(), nil, DefaultTheme()))

	want := "1 1 2 3 1\n" +
		"0 . 0 1 0\n" +
		"  0 1 2 3"
	if got != want {
		t.Errorf("RenderBoard() =\n%s\nwant\n%s", got, want)
	}
}

func TestRenderBoardWithHintsAndBonusKeepsText(t *testing.T) {
	p := core.DefaultParams()
	p.ItemTypes = 12
	bonuses := map[core.Coord]core.Bonus{core.C(1, 0): core.Cross(1, 1)}
	b, err := core.NewBoardFromLayout(p, []string{"ab0"}, bonuses, nil)
	if err != nil {
		t.Fatalf("NewBoardFromLayout() failed: %v", err)
	}

	got := plain(RenderBoard(b.Snapshot(), []core.Coord{core.C(2, 0)}, NeonTheme()))

	if !strings.HasPrefix(got, "0 a b 0\n") {
		t.Errorf("RenderBoard() = %q, want first line %q", got, "0 a b 0")
	}
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"", "default", "neon", "mono"} {
		if _, err := ThemeByName(name); err != nil {
			t.Errorf("ThemeByName(%q) failed: %v", name, err)
		}
	}
	if _, err := ThemeByName("sepia"); err == nil {
		t.Error("ThemeByName(sepia) should fail")
	}
}

func TestRenderHUD(t *testing.T) {
	got := plain(RenderHUD("Match-3", []HUDField{{"Score", 120}, {"Moves", 4}}, DefaultTheme()))

	lines := strings.Split(got, "\n")
	if len(lines) != 2 {
		t.Fatalf("RenderHUD() = %q, want 2 lines", got)
	}
	if strings.TrimSpace(lines[0]) != "Match-3" {
		t.Errorf("title line = %q", lines[0])
	}
	if strings.TrimSpace(lines[1]) != "Score: 120  Moves: 4" {
		t.Errorf("fields line = %q", lines[1])
	}
}
