package render

import "gridcast/internal/mathutil"

// drawWallColumn paints the vertical wall strip for one screen column.
// Rows outside the strip are left to the floor/ceiling fill that ran
// before the wall pass.
func drawWallColumn(ctx *Context, x int, hit RayHit) {
	h := ctx.Height
	lineHeight := int(float64(h) / hit.PerpDist)
	if lineHeight < 1 {
		return
	}

	drawStart := mathutil.IntMax(-lineHeight/2+h/2, 0)
	drawEnd := mathutil.IntMin(lineHeight/2+h/2, h-1)

	bright := 1.0
	if hit.Side == 1 {
		bright = ctx.SideShade
	}

	tex := ctx.Tex.Wall(hit.WallID)
	if tex == nil {
		// Untextured cells (including the out-of-bounds sentinel on
		// unenclosed maps) fall back to a flat fill rather than a
		// dropped column.
		r := shade(0x9a, bright)
		g := shade(0x9a, bright)
		b := shade(0x9a, bright)
		for y := drawStart; y <= drawEnd; y++ {
			ctx.setPixel(x, y, r, g, b)
		}
		return
	}

	texX := int(hit.TexX * float64(tex.Size))
	texX = mathutil.IntClamp(texX, 0, tex.Size-1)

	// Texture-y walks the full texture over the (unclipped) strip height,
	// so clipped strips start partway into the texture.
	step := float64(tex.Size) / float64(lineHeight)
	texPos := (float64(drawStart) - float64(h)/2 + float64(lineHeight)/2) * step
	for y := drawStart; y <= drawEnd; y++ {
		texY := mathutil.IntClamp(int(texPos), 0, tex.Size-1)
		texPos += step
		r, g, b, _ := tex.At(texX, texY)
		ctx.setPixel(x, y, shade(r, bright), shade(g, bright), shade(b, bright))
	}
}

// fillFloorCeiling overwrites the whole frame with the ceiling (or sky)
// fill above the horizon and the floor fill below it. The floor fill is
// distance-shaded per row when a shading horizon is configured; the
// ceiling mirrors the same curve. The wall and sprite passes overdraw the
// middle afterwards.
func fillFloorCeiling(ctx *Context) {
	w, h := ctx.Width, ctx.Height
	horizon := h / 2

	for y := 0; y < h; y++ {
		var c [3]byte
		ceilingRow := y < horizon
		if ceilingRow && ctx.HideCeiling {
			c = ctx.SkyColor
		} else if ceilingRow {
			c = ctx.CeilingColor
		} else {
			c = ctx.FloorColor
		}

		bright := 1.0
		if ctx.DepthShadeDist > 0 && (!ceilingRow || !ctx.HideCeiling) {
			// Row distance for a flat plane half a screen below the
			// camera; rows near the horizon are the farthest.
			p := y - horizon
			if p < 0 {
				p = -p
			}
			if p == 0 {
				p = 1
			}
			rowDist := 0.5 * float64(h) / float64(p)
			bright = mathutil.Clamp(1-rowDist/ctx.DepthShadeDist, 0.15, 1)
		}

		r := shade(c[0], bright)
		g := shade(c[1], bright)
		b := shade(c[2], bright)
		for x := 0; x < w; x++ {
			ctx.setPixel(x, y, r, g, b)
		}
	}
}
