package render

import "math"

// RayHit is the result of casting one screen column's ray: the wall it
// stopped at, how far away it is, and where on the wall face it struck.
type RayHit struct {
	// PerpDist is the distance to the wall measured along the camera
	// plane normal, not the ray itself. Using the perpendicular distance
	// keeps projected wall heights free of fisheye distortion.
	PerpDist float64
	// WallID is the tile value of the struck cell.
	WallID int
	// TexX is the fractional strike position along the wall face, in
	// [0, 1), already mirrored so textures read left-to-right regardless
	// of approach direction.
	TexX float64
	// Side is 0 when the ray crossed a vertical grid line (east/west
	// face) and 1 for a horizontal grid line (north/south face).
	Side int
}

// farDelta substitutes for 1/0 when a ray direction component is exactly
// zero: the ray then never crosses grid lines on that axis.
const farDelta = 1e30

// minPerpDist floors the perpendicular distance so the projected wall
// height stays finite when a wall face passes through the camera cell.
const minPerpDist = 1e-4

// CastColumn walks the grid with DDA for screen column x and returns the
// nearest wall hit. The traversal is bounded by the map diagonal plus a
// margin, and out-of-bounds cells read as solid, so it terminates on any
// input.
func CastColumn(ctx *Context, x int) RayHit {
	cam := ctx.Cam

	// Ray direction for this column: the plane offset sweeps from -1 at
	// the left edge to +1 at the right.
	cameraX := 2*float64(x)/float64(ctx.Width) - 1
	rayDirX := cam.DirX + cam.PlaneX*cameraX
	rayDirY := cam.DirY + cam.PlaneY*cameraX

	mapX := int(math.Floor(cam.X))
	mapY := int(math.Floor(cam.Y))

	deltaDistX := farDelta
	if rayDirX != 0 {
		deltaDistX = math.Abs(1 / rayDirX)
	}
	deltaDistY := farDelta
	if rayDirY != 0 {
		deltaDistY = math.Abs(1 / rayDirY)
	}

	var stepX, stepY int
	var sideDistX, sideDistY float64
	if rayDirX < 0 {
		stepX = -1
		sideDistX = (cam.X - float64(mapX)) * deltaDistX
	} else {
		stepX = 1
		sideDistX = (float64(mapX) + 1 - cam.X) * deltaDistX
	}
	if rayDirY < 0 {
		stepY = -1
		sideDistY = (cam.Y - float64(mapY)) * deltaDistY
	} else {
		stepY = 1
		sideDistY = (float64(mapY) + 1 - cam.Y) * deltaDistY
	}

	side := 0
	wallID := 0
	maxSteps := ctx.Map.Width + ctx.Map.Height + 4
	for i := 0; i < maxSteps; i++ {
		if sideDistX < sideDistY {
			sideDistX += deltaDistX
			mapX += stepX
			side = 0
		} else {
			sideDistY += deltaDistY
			mapY += stepY
			side = 1
		}
		wallID = ctx.Map.At(mapX, mapY)
		if wallID != 0 {
			break
		}
	}

	// Perpendicular distance: the accumulated side distance minus the
	// last step's delta, measured on the axis that produced the hit.
	var perpDist float64
	if side == 0 {
		perpDist = sideDistX - deltaDistX
	} else {
		perpDist = sideDistY - deltaDistY
	}
	if perpDist < minPerpDist {
		perpDist = minPerpDist
	}

	// Fractional strike position along the wall face, mirrored on faces
	// approached from the far side so texture orientation is consistent.
	var wallX float64
	if side == 0 {
		wallX = cam.Y + perpDist*rayDirY
	} else {
		wallX = cam.X + perpDist*rayDirX
	}
	wallX -= math.Floor(wallX)
	if side == 0 && rayDirX > 0 {
		wallX = 1 - wallX
	}
	if side == 1 && rayDirY < 0 {
		wallX = 1 - wallX
	}

	return RayHit{PerpDist: perpDist, WallID: wallID, TexX: wallX, Side: side}
}

// CastAll casts one ray per screen column into hits and records each
// perpendicular distance in the context depth buffer. hits must have
// ctx.Width entries.
func CastAll(ctx *Context, hits []RayHit) {
	for x := 0; x < ctx.Width; x++ {
		hit := CastColumn(ctx, x)
		hits[x] = hit
		ctx.Depth[x] = hit.PerpDist
	}
}
