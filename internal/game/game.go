// Package game runs the per-frame simulation: input handling, camera
// movement with wall collision, and frame production. It is platform
// agnostic; the front ends in cmd and tools only poll input and present
// the finished pixel buffer.
package game

import (
	"gridcast/internal/config"
	"gridcast/internal/level"
	"gridcast/internal/perf"
	"gridcast/internal/render"
	"gridcast/internal/texture"
)

// Input is one frame's worth of key state, sampled by the front end.
type Input struct {
	Forward       bool
	Backward      bool
	StrafeLeft    bool
	StrafeRight   bool
	TurnLeft      bool
	TurnRight     bool
	ToggleCeiling bool
}

// Game owns the camera, the render context and the frame statistics.
type Game struct {
	cfg     *config.Config
	cam     *render.Camera
	ctx     *render.Context
	rend    *render.Renderer
	monitor *perf.Monitor

	collisionRadius float64
	hideCeiling     bool
	togglePressed   bool
	animTime        float64
}

// spriteFrameRate is how many animation frames elapse per second for
// multi-frame sprites. Single-frame sprites are unaffected.
const spriteFrameRate = 2.0

// New builds a game from a loaded config, map and texture store.
func New(cfg *config.Config, data *level.MapData, store *texture.Store) *Game {
	cam := render.NewCamera(data.StartX, data.StartY, cfg.FacingAngle(), cfg.FieldOfView())
	ctx := render.NewContext(cfg.GetScreenWidth(), cfg.GetScreenHeight(), cam, data.Tiles, store)
	ctx.Sprites = data.Sprites
	ctx.SideShade = cfg.Graphics.SideShade
	ctx.DepthShadeDist = cfg.Graphics.DepthShadeDist
	ctx.FloorColor = rgb(cfg.Graphics.FloorColor)
	ctx.CeilingColor = rgb(cfg.Graphics.CeilingColor)
	ctx.SkyColor = rgb(cfg.Graphics.SkyColor)

	return &Game{
		cfg:             cfg,
		cam:             cam,
		ctx:             ctx,
		rend:            render.NewRenderer(cfg.GetScreenWidth()),
		monitor:         perf.NewMonitor(),
		collisionRadius: cfg.Movement.CollisionRadius,
		hideCeiling:     cfg.Graphics.HideCeiling,
	}
}

func rgb(c [3]int) [3]byte {
	return [3]byte{byte(c[0]), byte(c[1]), byte(c[2])}
}

// Step advances the simulation by dt seconds and renders the frame into
// the game's pixel buffer.
func (g *Game) Step(in Input, dt float64) {
	g.monitor.BeginFrame()

	g.applyRotation(in, dt)
	g.applyMovement(in, dt)
	g.applyToggles(in)

	g.animTime += dt
	frame := int(g.animTime * spriteFrameRate)
	for i := range g.ctx.Sprites {
		g.ctx.Sprites[i].Frame = frame
	}

	g.ctx.HideCeiling = g.hideCeiling
	g.rend.RenderFrame(g.ctx)
	if g.cfg.Graphics.Minimap.Enabled {
		render.DrawMinimap(g.ctx, render.MinimapOptions{
			CellSize: g.cfg.Graphics.Minimap.CellSize,
			Margin:   g.cfg.Graphics.Minimap.MarginPx,
		})
	}

	g.monitor.EndFrame()
}

func (g *Game) applyRotation(in Input, dt float64) {
	speed := g.cfg.Movement.RotationSpeed * dt
	if in.TurnLeft {
		g.cam.Rotate(speed)
	}
	if in.TurnRight {
		g.cam.Rotate(-speed)
	}
}

func (g *Game) applyMovement(in Input, dt float64) {
	speed := g.cfg.Movement.MoveSpeed * dt
	fx, fy := g.cam.Forward()
	rx, ry := g.cam.Right()

	var dx, dy float64
	if in.Forward {
		dx += fx * speed
		dy += fy * speed
	}
	if in.Backward {
		dx -= fx * speed
		dy -= fy * speed
	}
	if in.StrafeRight {
		dx += rx * speed
		dy += ry * speed
	}
	if in.StrafeLeft {
		dx -= rx * speed
		dy -= ry * speed
	}
	if dx == 0 && dy == 0 {
		return
	}

	// Each axis is resolved on its own so the camera slides along walls
	// instead of sticking to them.
	if g.canStandAt(g.cam.X+dx, g.cam.Y) {
		g.cam.X += dx
	}
	if g.canStandAt(g.cam.X, g.cam.Y+dy) {
		g.cam.Y += dy
	}
}

// canStandAt reports whether a camera centered at (x, y) with the
// configured collision radius overlaps no solid tile.
func (g *Game) canStandAt(x, y float64) bool {
	r := g.collisionRadius
	for tx := int(x - r); tx <= int(x+r); tx++ {
		for ty := int(y - r); ty <= int(y+r); ty++ {
			if g.ctx.Map.Solid(tx, ty) {
				return false
			}
		}
	}
	return x-r >= 0 && y-r >= 0
}

func (g *Game) applyToggles(in Input) {
	if in.ToggleCeiling && !g.togglePressed {
		g.hideCeiling = !g.hideCeiling
	}
	g.togglePressed = in.ToggleCeiling
}

// Frame returns the RGBA pixel buffer of the last rendered frame.
func (g *Game) Frame() []byte { return g.ctx.Frame }

// Size returns the frame dimensions in pixels.
func (g *Game) Size() (int, int) { return g.ctx.Width, g.ctx.Height }

// Camera exposes the camera for HUD readouts.
func (g *Game) Camera() *render.Camera { return g.cam }

// FPS returns the frame rate over the last completed sampling window.
func (g *Game) FPS() float64 { return g.monitor.FPS() }

// CeilingHidden reports whether the sky fill replaces the ceiling.
func (g *Game) CeilingHidden() bool { return g.hideCeiling }
