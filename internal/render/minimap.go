package render

import "gridcast/internal/mathutil"

// MinimapOptions controls the overhead map overlay.
type MinimapOptions struct {
	CellSize int // pixels per map cell
	Margin   int // offset from the top-left corner
}

// DrawMinimap blits an overhead view of the tile grid into the corner of
// the framebuffer: solid cells dark, walkable cells light, plus a marker
// at the camera cell. Drawn last, it is a pure overlay over the 3D view.
func DrawMinimap(ctx *Context, opts MinimapOptions) {
	cell := opts.CellSize
	if cell < 1 {
		cell = 2
	}

	for ty := 0; ty < ctx.Map.Height; ty++ {
		for tx := 0; tx < ctx.Map.Width; tx++ {
			var r, g, b byte = 0xc8, 0xc8, 0xc8
			if ctx.Map.Solid(tx, ty) {
				r, g, b = 0x28, 0x28, 0x28
			}
			fillRect(ctx, opts.Margin+tx*cell, opts.Margin+ty*cell, cell, cell, r, g, b)
		}
	}

	camPX := opts.Margin + int(ctx.Cam.X*float64(cell))
	camPY := opts.Margin + int(ctx.Cam.Y*float64(cell))
	fillRect(ctx, camPX-1, camPY-1, 3, 3, 0xff, 0x20, 0x20)
}

func fillRect(ctx *Context, x, y, w, h int, r, g, b byte) {
	x0 := mathutil.IntMax(x, 0)
	y0 := mathutil.IntMax(y, 0)
	x1 := mathutil.IntMin(x+w, ctx.Width)
	y1 := mathutil.IntMin(y+h, ctx.Height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			ctx.setPixel(px, py, r, g, b)
		}
	}
}
