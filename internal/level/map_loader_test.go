package level

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeMap(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.map")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write map: %v", err)
	}
	return path
}

func TestLoadMap(t *testing.T) {
	content := "# test level\n" +
		"11211\n" +
		"1...1\n" +
		"1.@b1\n" +
		"11111\n"
	data, err := LoadMap(writeMap(t, content), map[string]string{"b": "barrel"})
	if err != nil {
		t.Fatalf("load map: %v", err)
	}

	if data.Tiles.Width != 5 || data.Tiles.Height != 4 {
		t.Errorf("grid = %dx%d, want 5x4", data.Tiles.Width, data.Tiles.Height)
	}
	if got := data.Tiles.At(2, 0); got != 2 {
		t.Errorf("At(2,0) = %d, want 2", got)
	}
	if got := data.Tiles.At(2, 2); got != 0 {
		t.Errorf("start cell should be walkable, got %d", got)
	}
	if data.StartX != 2.5 || data.StartY != 2.5 {
		t.Errorf("start = (%v, %v), want (2.5, 2.5)", data.StartX, data.StartY)
	}
	if len(data.Sprites) != 1 || data.Sprites[0].Name != "barrel" {
		t.Fatalf("sprites = %+v, want one barrel", data.Sprites)
	}
	if data.Sprites[0].X != 3.5 || data.Sprites[0].Y != 2.5 {
		t.Errorf("barrel at (%v, %v), want (3.5, 2.5)", data.Sprites[0].X, data.Sprites[0].Y)
	}
}

func TestLoadMapErrors(t *testing.T) {
	cases := []struct {
		name    string
		content string
		want    string
	}{
		{"no start", "111\n1.1\n111\n", "no start marker"},
		{"duplicate start", "111\n1@1\n1@1\n111\n", "duplicate start"},
		{"ragged rows", "111\n1@..1\n111\n", "cells, want"},
		{"unknown cell", "111\n1@x\n111\n", "unknown cell"},
		{"empty file", "# nothing\n", "no grid rows"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := LoadMap(writeMap(t, tc.content), nil)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tc.want) {
				t.Errorf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestTileMapOutOfBounds(t *testing.T) {
	m := NewTileMap([][]int{{1, 1}, {1, 0}})
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		if got := m.At(xy[0], xy[1]); got != OutOfBounds {
			t.Errorf("At(%d,%d) = %d, want OutOfBounds", xy[0], xy[1], got)
		}
		if !m.Solid(xy[0], xy[1]) {
			t.Errorf("Solid(%d,%d) = false, out-of-bounds must block", xy[0], xy[1])
		}
	}
}

func TestWallIDs(t *testing.T) {
	m := NewTileMap([][]int{{1, 2, 1}, {0, 3, 2}})
	ids := m.WallIDs()
	if len(ids) != 3 {
		t.Fatalf("WallIDs() = %v, want 3 distinct ids", ids)
	}
}
