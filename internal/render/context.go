// Package render implements the raycasting pipeline: per-column DDA wall
// traversal, textured wall strips with directional shading, floor/ceiling
// fill, and depth-tested billboard sprites composited into a software
// framebuffer.
//
// All pipeline state flows through an explicit Context value, so every
// stage can be exercised in isolation with a synthetic scene.
package render

import (
	"gridcast/internal/level"
	"gridcast/internal/texture"
)

// Context carries one frame's inputs and outputs through the pipeline.
// Frame and Depth are reused across frames; everything else is either
// immutable (map, textures) or owned by the game loop (camera, sprites).
type Context struct {
	Width  int
	Height int

	Cam     *Camera
	Map     *level.TileMap
	Tex     *texture.Store
	Sprites []level.Sprite

	// HideCeiling switches the upper fill from ceiling color to sky color.
	// It affects nothing but the ceiling rows.
	HideCeiling bool
	// SideShade is the brightness multiplier for walls hit on a vertical
	// grid line. Horizontal hits render at full brightness.
	SideShade float64
	// DepthShadeDist is the floor-fill shading horizon in tiles; zero
	// disables distance shading.
	DepthShadeDist float64

	FloorColor   [3]byte
	CeilingColor [3]byte
	SkyColor     [3]byte

	// Frame is the RGBA framebuffer, fully overwritten every frame.
	Frame []byte
	// Depth records the perpendicular wall distance per screen column.
	// Written by the ray caster, read by the sprite renderer.
	Depth []float64
}

// NewContext allocates a render context for a fixed output size.
func NewContext(width, height int, cam *Camera, m *level.TileMap, tex *texture.Store) *Context {
	return &Context{
		Width:     width,
		Height:    height,
		Cam:       cam,
		Map:       m,
		Tex:       tex,
		SideShade: 0.5,
		Frame:     make([]byte, width*height*4),
		Depth:     make([]float64, width),
	}
}

func (c *Context) setPixel(x, y int, r, g, b byte) {
	i := (y*c.Width + x) * 4
	c.Frame[i] = r
	c.Frame[i+1] = g
	c.Frame[i+2] = b
	c.Frame[i+3] = 0xff
}

func (c *Context) pixel(x, y int) (r, g, b byte) {
	i := (y*c.Width + x) * 4
	return c.Frame[i], c.Frame[i+1], c.Frame[i+2]
}

func shade(v byte, f float64) byte {
	return byte(float64(v) * f)
}
