// Package platform adapts the simulation to Ebitengine for the native
// and browser builds. It polls the keyboard, forwards one Input per tick
// and blits the finished frame with WritePixels.
package platform

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	ebitext "github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"gridcast/internal/assets"
	"gridcast/internal/config"
	"gridcast/internal/game"
	"gridcast/internal/level"
)

// App implements ebiten.Game. Until the asset load resolves it draws a
// loading screen; the simulation is constructed on the first tick after
// the textures arrive, so Update never blocks. That matters for the
// browser build, where blocking the main loop stalls the page.
type App struct {
	cfg     *config.Config
	mapData *level.MapData
	load    *assets.Load

	game  *game.Game
	frame *ebiten.Image
	err   error
}

// NewApp wires a config, a loaded map and an in-flight asset load into
// an Ebitengine game.
func NewApp(cfg *config.Config, mapData *level.MapData, load *assets.Load) *App {
	return &App{cfg: cfg, mapData: mapData, load: load}
}

func (a *App) Update() error {
	if a.err != nil {
		return a.err
	}
	if a.game == nil {
		if !a.load.Ready() {
			return nil
		}
		store, err := a.load.Wait()
		if err != nil {
			a.err = fmt.Errorf("loading assets: %w", err)
			return a.err
		}
		if err := store.Validate(a.mapData.Tiles.WallIDs(), a.mapData.SpriteNames()); err != nil {
			a.err = fmt.Errorf("validating assets: %w", err)
			return a.err
		}
		a.game = game.New(a.cfg, a.mapData, store)
		a.frame = ebiten.NewImage(a.game.Size())
	}

	a.game.Step(pollInput(), 1.0/float64(ebiten.TPS()))
	return nil
}

func pollInput() game.Input {
	return game.Input{
		Forward:       ebiten.IsKeyPressed(ebiten.KeyUp) || ebiten.IsKeyPressed(ebiten.KeyW),
		Backward:      ebiten.IsKeyPressed(ebiten.KeyDown) || ebiten.IsKeyPressed(ebiten.KeyS),
		StrafeLeft:    ebiten.IsKeyPressed(ebiten.KeyA),
		StrafeRight:   ebiten.IsKeyPressed(ebiten.KeyD),
		TurnLeft:      ebiten.IsKeyPressed(ebiten.KeyLeft),
		TurnRight:     ebiten.IsKeyPressed(ebiten.KeyRight),
		ToggleCeiling: ebiten.IsKeyPressed(ebiten.KeyC),
	}
}

func (a *App) Draw(screen *ebiten.Image) {
	if a.game == nil || a.err != nil {
		a.drawLoading(screen)
		return
	}

	a.frame.WritePixels(a.game.Frame())
	screen.DrawImage(a.frame, nil)
	a.drawHUD(screen)
}

func (a *App) drawLoading(screen *ebiten.Image) {
	screen.Fill(color.RGBA{20, 20, 30, 255})
	msg := "Loading textures..."
	if a.err != nil {
		msg = a.err.Error()
	}
	ebitext.Draw(screen, msg, basicfont.Face7x13, 16, a.cfg.GetScreenHeight()/2, color.White)
}

func (a *App) drawHUD(screen *ebiten.Image) {
	cam := a.game.Camera()
	hud := fmt.Sprintf("FPS %.0f  pos (%.1f, %.1f)", a.game.FPS(), cam.X, cam.Y)
	ebitext.Draw(screen, hud, basicfont.Face7x13, 8, 16, color.White)
}

func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.GetScreenWidth(), a.cfg.GetScreenHeight()
}

// Run configures the window from the display settings and starts the
// Ebitengine loop. It blocks until the window closes.
func Run(app *App) error {
	cfg := app.cfg
	scale := cfg.Display.WindowScale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowSize(cfg.GetScreenWidth()*scale, cfg.GetScreenHeight()*scale)
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	return ebiten.RunGame(app)
}
