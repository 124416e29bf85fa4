// Package level holds the static world data: the tile grid the rays walk
// and the initial sprite placements. Both are loaded once at startup and
// are read-only afterwards.
package level

// OutOfBounds is the cell value reported for lookups outside the grid.
// It is non-zero so rays always terminate, even on maps with no enclosing
// walls, and negative so it can never collide with a wall texture id.
const OutOfBounds = -1

// TileMap is a row-major grid of wall-texture identifiers. Zero cells are
// walkable; positive cells are solid walls carrying their texture id.
type TileMap struct {
	Width  int
	Height int
	cells  []int
}

// NewTileMap builds a tile map from rows of cell values. All rows must have
// the same length.
func NewTileMap(rows [][]int) *TileMap {
	if len(rows) == 0 {
		return &TileMap{}
	}
	m := &TileMap{
		Width:  len(rows[0]),
		Height: len(rows),
		cells:  make([]int, 0, len(rows)*len(rows[0])),
	}
	for _, row := range rows {
		m.cells = append(m.cells, row...)
	}
	return m
}

// At returns the cell value at tile (x, y), or OutOfBounds outside the grid.
func (m *TileMap) At(x, y int) int {
	if x < 0 || y < 0 || x >= m.Width || y >= m.Height {
		return OutOfBounds
	}
	return m.cells[y*m.Width+x]
}

// Solid reports whether tile (x, y) blocks movement and rays.
func (m *TileMap) Solid(x, y int) bool {
	return m.At(x, y) != 0
}

// WallIDs returns the distinct non-empty cell values in the map, for
// validation against the loaded texture set.
func (m *TileMap) WallIDs() []int {
	seen := make(map[int]bool)
	var ids []int
	for _, c := range m.cells {
		if c > 0 && !seen[c] {
			seen[c] = true
			ids = append(ids, c)
		}
	}
	return ids
}

// Sprite is a billboard object placed in the world. Position is in
// continuous tile coordinates; Frame selects the animation/orientation
// frame for multi-frame sprites.
type Sprite struct {
	X, Y  float64
	Name  string
	Frame int
}
