// Command termview walks the same levels in a terminal. It reuses the
// full simulation and renderer; each frame pixel becomes one cell,
// shaded by luminance and colored with the terminal's RGB support.
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"gridcast/internal/assets"
	"gridcast/internal/config"
	"gridcast/internal/game"
	"gridcast/internal/level"
)

const frameTick = time.Second / 30

var shadeRamp = []rune(" .:-=+*#%@")

func main() {
	cfg := config.MustLoadConfig("config.yaml")

	load := assets.Begin(assets.DirSource{Root: cfg.Assets.Dir}, cfg.Assets)
	mapData, err := level.LoadMap(cfg.Level.MapFile, cfg.Level.SpriteMarkers)
	if err != nil {
		log.Fatalf("loading map: %v", err)
	}
	store, err := load.Wait()
	if err != nil {
		log.Fatalf("loading assets: %v", err)
	}
	if err := store.Validate(mapData.Tiles.WallIDs(), mapData.SpriteNames()); err != nil {
		log.Fatalf("validating assets: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("opening terminal: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("initializing terminal: %v", err)
	}
	defer screen.Fini()
	screen.HideCursor()

	// Render straight at terminal resolution, one pixel per cell.
	w, h := screen.Size()
	cfg.Display.ScreenWidth = w
	cfg.Display.ScreenHeight = h
	g := game.New(cfg, mapData, store)

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			events <- screen.PollEvent()
		}
	}()

	ticker := time.NewTicker(frameTick)
	defer ticker.Stop()
	for range ticker.C {
		in, quit := drainEvents(screen, events)
		if quit {
			screen.Fini()
			os.Exit(0)
		}
		g.Step(in, frameTick.Seconds())
		blit(screen, g)
		screen.Show()
	}
}

// drainEvents folds all pending key events into one Input. Terminals
// report presses rather than held keys, so each press moves the camera
// for exactly one tick.
func drainEvents(screen tcell.Screen, events <-chan tcell.Event) (game.Input, bool) {
	var in game.Input
	for {
		select {
		case ev := <-events:
			switch event := ev.(type) {
			case *tcell.EventKey:
				switch {
				case event.Key() == tcell.KeyEscape || event.Rune() == 'q':
					return in, true
				case event.Key() == tcell.KeyUp || event.Rune() == 'w':
					in.Forward = true
				case event.Key() == tcell.KeyDown || event.Rune() == 's':
					in.Backward = true
				case event.Key() == tcell.KeyLeft:
					in.TurnLeft = true
				case event.Key() == tcell.KeyRight:
					in.TurnRight = true
				case event.Rune() == 'a':
					in.StrafeLeft = true
				case event.Rune() == 'd':
					in.StrafeRight = true
				case event.Rune() == 'c':
					in.ToggleCeiling = true
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		default:
			return in, false
		}
	}
}

func blit(screen tcell.Screen, g *game.Game) {
	frame := g.Frame()
	w, h := g.Size()
	tw, th := screen.Size()
	for y := 0; y < h && y < th; y++ {
		for x := 0; x < w && x < tw; x++ {
			i := (y*w + x) * 4
			r, gr, b := frame[i], frame[i+1], frame[i+2]
			lum := (299*int(r) + 587*int(gr) + 114*int(b)) / 1000
			shade := shadeRamp[lum*len(shadeRamp)/256]
			style := tcell.StyleDefault.
				Foreground(tcell.NewRGBColor(int32(r), int32(gr), int32(b))).
				Background(tcell.ColorBlack)
			screen.SetContent(x, y, shade, nil, style)
		}
	}
	cam := g.Camera()
	hud := fmt.Sprintf(" FPS %.0f  pos (%.1f, %.1f) ", g.FPS(), cam.X, cam.Y)
	hudStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack)
	for i, r := range hud {
		if i >= tw {
			break
		}
		screen.SetContent(i, 0, r, nil, hudStyle)
	}
}
