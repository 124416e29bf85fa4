// Package texture holds the decoded pixel buffers the renderer samples from.
// Textures are converted once from 16-bit farbfeld data to 8-bit RGBA and are
// immutable afterwards.
package texture

import (
	"fmt"

	"gridcast/internal/farbfeld"
)

// Texture is a square RGBA pixel buffer. Size is both width and height in
// pixels. Pix is row-major, 4 bytes per pixel.
type Texture struct {
	Size int
	Pix  []byte
}

// FromFarbfeld converts a decoded farbfeld image into a renderer texture,
// keeping the high byte of each 16-bit channel. Non-square images are
// rejected: wall and sprite strips index the texture by a single size.
func FromFarbfeld(img *farbfeld.Image) (*Texture, error) {
	if img.Width != img.Height {
		return nil, fmt.Errorf("texture: image is %dx%d, textures must be square", img.Width, img.Height)
	}
	pix := make([]byte, len(img.Pix))
	for i, v := range img.Pix {
		pix[i] = byte(v >> 8)
	}
	return &Texture{Size: img.Width, Pix: pix}, nil
}

// At returns the RGBA bytes of the texel at (x, y). Coordinates outside the
// texture wrap, so callers accumulated past an edge by a rounding step still
// sample valid texels.
func (t *Texture) At(x, y int) (r, g, b, a byte) {
	if x < 0 || x >= t.Size {
		x = ((x % t.Size) + t.Size) % t.Size
	}
	if y < 0 || y >= t.Size {
		y = ((y % t.Size) + t.Size) % t.Size
	}
	i := (y*t.Size + x) * 4
	return t.Pix[i], t.Pix[i+1], t.Pix[i+2], t.Pix[i+3]
}

// Store maps wall texture ids and sprite names to their decoded textures.
// Populated once at startup, read-only during rendering.
type Store struct {
	Walls   map[int]*Texture
	Sprites map[string][]*Texture // per animation frame
}

// NewStore returns an empty texture store.
func NewStore() *Store {
	return &Store{
		Walls:   make(map[int]*Texture),
		Sprites: make(map[string][]*Texture),
	}
}

// Wall returns the texture for a wall id, or nil if unknown.
func (s *Store) Wall(id int) *Texture {
	return s.Walls[id]
}

// SpriteFrame returns frame i of a named sprite, clamping i into the frame
// range so an out-of-date animation index never dereferences past the end.
func (s *Store) SpriteFrame(name string, i int) *Texture {
	frames := s.Sprites[name]
	if len(frames) == 0 {
		return nil
	}
	if i < 0 {
		i = 0
	}
	if i >= len(frames) {
		i = i % len(frames)
	}
	return frames[i]
}

// Validate checks that every wall id and sprite name in use resolves to a
// loaded texture. Rendering has no recovery path for a missing texture, so
// this runs once after load and any failure is fatal at startup.
func (s *Store) Validate(wallIDs []int, spriteNames []string) error {
	for _, id := range wallIDs {
		if _, ok := s.Walls[id]; !ok {
			return fmt.Errorf("texture: map references wall id %d with no loaded texture", id)
		}
	}
	for _, name := range spriteNames {
		if len(s.Sprites[name]) == 0 {
			return fmt.Errorf("texture: sprite %q has no loaded frames", name)
		}
	}
	return nil
}
