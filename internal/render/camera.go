package render

import "math"

// Camera is the viewer: a position in continuous tile coordinates, a unit
// facing direction, and a camera plane perpendicular to it. The plane length
// is tan(fov/2), which fixes the field of view; rotations apply the same
// rotation matrix to both vectors so the ratio never drifts.
type Camera struct {
	X, Y           float64
	DirX, DirY     float64
	PlaneX, PlaneY float64
}

// NewCamera places a camera at (x, y) facing along angle (radians, measured
// from +x toward +y) with the given field of view in radians.
func NewCamera(x, y, angle, fov float64) *Camera {
	c := &Camera{
		X:    x,
		Y:    y,
		DirX: math.Cos(angle),
		DirY: math.Sin(angle),
	}
	half := math.Tan(fov / 2)
	c.PlaneX = -c.DirY * half
	c.PlaneY = c.DirX * half
	return c
}

// Rotate turns the camera by angle radians, rotating direction and plane
// together.
func (c *Camera) Rotate(angle float64) {
	cos, sin := math.Cos(angle), math.Sin(angle)
	dirX := c.DirX*cos - c.DirY*sin
	c.DirY = c.DirX*sin + c.DirY*cos
	c.DirX = dirX
	planeX := c.PlaneX*cos - c.PlaneY*sin
	c.PlaneY = c.PlaneX*sin + c.PlaneY*cos
	c.PlaneX = planeX
}

// Forward returns the unit facing vector.
func (c *Camera) Forward() (float64, float64) {
	return c.DirX, c.DirY
}

// Right returns the unit vector perpendicular to the facing direction,
// pointing to the camera's right.
func (c *Camera) Right() (float64, float64) {
	return -c.DirY, c.DirX
}
