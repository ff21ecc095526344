package viz

import (
	"strings"
	"testing"
)

func TestCanvasSetColor(t *testing.T) {
	c := NewCanvas(2, 1)

	c.SetColor(0, 0, "#ff0000")
	c.SetColor(3, 3, "#00ff00")
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("expected dot 1, got %U", c.Grid[0][0])
	}
	if c.Grid[0][1] != 0x2880 {
		t.Errorf("expected dot 8, got %U", c.Grid[0][1])
	}
	if !c.Lit(3, 3) || c.Lit(2, 3) {
		t.Error("Lit disagrees with SetColor")
	}
	if c.Colors[0][0] != "#ff0000" || c.Colors[0][1] != "#00ff00" {
		t.Errorf("unexpected cell colors %v", c.Colors[0])
	}
}

func TestCanvasOutOfBounds(t *testing.T) {
	c := NewCanvas(1, 1)
	c.SetColor(-1, 0, "")
	c.SetColor(2, 0, "#ffffff")
	c.SetColor(0, 4, "")
	if c.Grid[0][0] != blank {
		t.Error("out of bounds dot leaked into the grid")
	}
}

func TestDrawCircleSymmetric(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawCircle(10, 10, 6, "#ff0000")

	for _, p := range [][2]int{{16, 10}, {4, 10}, {10, 16}, {10, 4}} {
		if !c.Lit(p[0], p[1]) {
			t.Errorf("expected (%d,%d) on the outline", p[0], p[1])
		}
	}
	if c.Lit(10, 10) {
		t.Error("outline should leave the centre empty")
	}
}

func TestFillCircle(t *testing.T) {
	c := NewCanvas(10, 5)
	c.FillCircle(10, 10, 3, "#00ff00")

	if !c.Lit(10, 10) || !c.Lit(12, 11) {
		t.Error("expected interior dots lit")
	}
	if c.Lit(14, 10) {
		t.Error("dot outside the radius was lit")
	}
	if c.Colors[10/4][10/2] != "#00ff00" {
		t.Errorf("expected cell color, got %q", c.Colors[2][5])
	}
}

func TestTextOverlay(t *testing.T) {
	c := NewCanvas(4, 1)
	c.FillCircle(0, 0, 8, "#123456")
	c.Text(1, 0, "abcdef", "#ffffff")

	got := strings.TrimRight(c.String(), "\n")
	if []rune(got)[1] != 'a' || []rune(got)[3] != 'c' {
		t.Errorf("expected text over dots, got %q", got)
	}
	if len([]rune(got)) != 4 {
		t.Errorf("text ran past the edge: %q", got)
	}

	c.Clear()
	if strings.ContainsAny(c.String(), "abc") {
		t.Error("clear left text behind")
	}
}

func TestRenderKeepsGlyphs(t *testing.T) {
	c := NewCanvas(3, 2)
	c.SetColor(0, 0, "#ff0000")
	c.Text(2, 1, "x", "#00ff00")

	out := c.Render()
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 rows, got %q", out)
	}
	if !strings.Contains(out, "⠁") || !strings.Contains(out, "x") {
		t.Errorf("render lost glyphs: %q", out)
	}
}
