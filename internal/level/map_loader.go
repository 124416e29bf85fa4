package level

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// MapData contains everything parsed from a map file.
type MapData struct {
	Tiles   *TileMap
	Sprites []Sprite
	// StartX, StartY is the camera spawn in continuous tile coordinates
	// (center of the '@' cell).
	StartX, StartY float64
}

// LoadMap parses a character-grid map file. Digits 1-9 are wall cells
// carrying their texture id, '.' is walkable, '@' marks the camera start,
// and any letter present in markers places the named sprite at the cell
// center. Lines starting with '#' are comments.
func LoadMap(filename string, markers map[string]string) (*MapData, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open map file: %w", err)
	}
	defer f.Close()

	data := &MapData{StartX: -1, StartY: -1}
	var rows [][]int

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		y := len(rows)
		row := make([]int, 0, len(line))
		for x, ch := range line {
			switch {
			case ch == '.' || ch == ' ':
				row = append(row, 0)
			case ch >= '1' && ch <= '9':
				row = append(row, int(ch-'0'))
			case ch == '@':
				if data.StartX >= 0 {
					return nil, fmt.Errorf("map line %d: duplicate start marker", lineNo)
				}
				data.StartX = float64(x) + 0.5
				data.StartY = float64(y) + 0.5
				row = append(row, 0)
			default:
				name, ok := markers[string(ch)]
				if !ok {
					return nil, fmt.Errorf("map line %d: unknown cell %q", lineNo, string(ch))
				}
				data.Sprites = append(data.Sprites, Sprite{
					X:    float64(x) + 0.5,
					Y:    float64(y) + 0.5,
					Name: name,
				})
				row = append(row, 0)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read map file: %w", err)
	}

	if len(rows) == 0 {
		return nil, fmt.Errorf("map file %s contains no grid rows", filename)
	}
	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("map row %d has %d cells, want %d", i+1, len(row), width)
		}
	}
	if data.StartX < 0 {
		return nil, fmt.Errorf("map file %s has no start marker '@'", filename)
	}

	data.Tiles = NewTileMap(rows)
	return data, nil
}

// SpriteNames returns the distinct sprite names placed in the map, for
// validation against the loaded texture set.
func (d *MapData) SpriteNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, s := range d.Sprites {
		if !seen[s.Name] {
			seen[s.Name] = true
			names = append(names, s.Name)
		}
	}
	return names
}
