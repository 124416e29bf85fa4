package render

import (
	"sort"

	"gridcast/internal/mathutil"
	"gridcast/internal/texture"
)

// minSpriteDepth floors the camera-space depth used for scaling so a
// sprite brushing the camera plane cannot blow up to an unbounded size.
const minSpriteDepth = 0.05

type visibleSprite struct {
	depth   float64 // camera-space depth, clamped
	screenX int     // horizontal center on screen
	tex     *texture.Texture
}

// drawSprites projects the sprite collection into screen space and paints
// the visible ones, farthest first, occluding each column against the wall
// depth buffer.
func drawSprites(ctx *Context) {
	cam := ctx.Cam

	// Inverse of the [plane dir] column matrix, for world -> camera space.
	det := cam.PlaneX*cam.DirY - cam.DirX*cam.PlaneY
	if det == 0 {
		return
	}
	invDet := 1 / det

	visible := make([]visibleSprite, 0, len(ctx.Sprites))
	for _, s := range ctx.Sprites {
		dx := s.X - cam.X
		dy := s.Y - cam.Y

		transformX := invDet * (cam.DirY*dx - cam.DirX*dy)
		transformY := invDet * (-cam.PlaneY*dx + cam.PlaneX*dy)
		if transformY <= 0 {
			continue // behind the camera
		}
		depth := transformY
		if depth < minSpriteDepth {
			depth = minSpriteDepth
		}

		screenX := int(float64(ctx.Width) / 2 * (1 + transformX/depth))
		size := int(float64(ctx.Height) / depth)
		if screenX+size/2 < 0 || screenX-size/2 >= ctx.Width {
			continue // entirely off screen
		}

		tex := ctx.Tex.SpriteFrame(s.Name, s.Frame)
		if tex == nil {
			continue
		}
		visible = append(visible, visibleSprite{depth: depth, screenX: screenX, tex: tex})
	}

	// Painter's algorithm: farthest sprites first so nearer ones overdraw
	// them where they overlap.
	sort.Slice(visible, func(i, j int) bool {
		return visible[i].depth > visible[j].depth
	})

	for _, vs := range visible {
		drawSpriteColumns(ctx, vs)
	}
}

func drawSpriteColumns(ctx *Context, vs visibleSprite) {
	h := ctx.Height
	size := int(float64(h) / vs.depth)
	if size < 1 {
		return
	}

	drawStartY := mathutil.IntMax(-size/2+h/2, 0)
	drawEndY := mathutil.IntMin(size/2+h/2, h-1)
	startX := vs.screenX - size/2
	drawStartX := mathutil.IntMax(startX, 0)
	drawEndX := mathutil.IntMin(vs.screenX+size/2, ctx.Width-1)

	texSize := vs.tex.Size
	for x := drawStartX; x <= drawEndX; x++ {
		// A sprite column is drawn only when strictly nearer than the
		// wall recorded for that column.
		if !(vs.depth < ctx.Depth[x]) {
			continue
		}
		texX := (x - startX) * texSize / size
		texX = mathutil.IntClamp(texX, 0, texSize-1)
		for y := drawStartY; y <= drawEndY; y++ {
			texY := (y - (-size/2 + h/2)) * texSize / size
			texY = mathutil.IntClamp(texY, 0, texSize-1)
			r, g, b, a := vs.tex.At(texX, texY)
			if a == 0 {
				continue // transparency sentinel, never written
			}
			ctx.setPixel(x, y, r, g, b)
		}
	}
}
