package render

import (
	"math"
	"testing"

	"gridcast/internal/level"
	"gridcast/internal/texture"
)

func renderScene(t *testing.T, ctx *Context) []byte {
	t.Helper()
	r := NewRenderer(ctx.Width)
	r.RenderFrame(ctx)
	frame := make([]byte, len(ctx.Frame))
	copy(frame, ctx.Frame)
	return frame
}

func TestSpriteOccludedByNearerWall(t *testing.T) {
	// Interior wall (id 2) at x=3 stands between the camera and the
	// sprite: wall depth 1.5 versus sprite depth 3. Not a single pixel
	// may differ from the sprite-free frame.
	rows := [][]int{
		{1, 1, 1, 1, 1, 1, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 0, 0, 2, 0, 0, 1},
		{1, 0, 0, 0, 0, 0, 1},
		{1, 1, 1, 1, 1, 1, 1},
	}
	m := level.NewTileMap(rows)

	cam := NewCamera(1.5, 2.5, 0, math.Pi/3)
	ctx := testContext(64, 48, m, cam)
	ctx.Tex.Sprites["crate"] = []*texture.Texture{solidTexture(8, 0xff, 0x00, 0xff, 0xff)}
	without := renderScene(t, ctx)

	ctx.Sprites = []level.Sprite{{X: 4.5, Y: 2.5, Name: "crate"}}
	with := renderScene(t, ctx)

	for i := range with {
		if with[i] != without[i] {
			t.Fatalf("occluded sprite altered frame at byte %d", i)
		}
	}
}

func TestSpriteVisibleInFrontOfWall(t *testing.T) {
	m := enclosedMap(7, 5)
	cam := NewCamera(1.5, 2.5, 0, math.Pi/3)
	ctx := testContext(64, 48, m, cam)
	ctx.Tex.Sprites["crate"] = []*texture.Texture{solidTexture(8, 0xff, 0x00, 0xff, 0xff)}
	ctx.Sprites = []level.Sprite{{X: 3.5, Y: 2.5, Name: "crate"}}

	frame := renderScene(t, ctx)
	cx, cy := ctx.Width/2, ctx.Height/2
	i := (cy*ctx.Width + cx) * 4
	if frame[i] != 0xff || frame[i+1] != 0x00 || frame[i+2] != 0xff {
		t.Errorf("center pixel = %02x %02x %02x, want sprite color ff 00 ff",
			frame[i], frame[i+1], frame[i+2])
	}
}

func TestTransparentTexelsNeverWritten(t *testing.T) {
	m := enclosedMap(7, 5)
	cam := NewCamera(1.5, 2.5, 0, math.Pi/3)
	ctx := testContext(64, 48, m, cam)
	// Alpha 0 everywhere: the sprite must leave the frame untouched.
	ctx.Tex.Sprites["ghost"] = []*texture.Texture{solidTexture(8, 0xff, 0xff, 0xff, 0x00)}
	without := renderScene(t, ctx)

	ctx.Sprites = []level.Sprite{{X: 3.5, Y: 2.5, Name: "ghost"}}
	with := renderScene(t, ctx)
	for i := range with {
		if with[i] != without[i] {
			t.Fatalf("fully transparent sprite altered frame at byte %d", i)
		}
	}
}

func TestNearerSpriteWinsOverlap(t *testing.T) {
	// Two screen-overlapping sprites directly ahead at depths 3 and 5.
	// The far sprite's color must not survive anywhere: its span is a
	// subset of the near sprite's span, which is drawn after it.
	m := enclosedMap(9, 5)
	cam := NewCamera(1.5, 2.5, 0, math.Pi/3)
	ctx := testContext(64, 48, m, cam)
	ctx.Tex.Sprites["near"] = []*texture.Texture{solidTexture(8, 0x00, 0xff, 0x00, 0xff)}
	ctx.Tex.Sprites["far"] = []*texture.Texture{solidTexture(8, 0xff, 0xa5, 0x00, 0xff)}
	ctx.Sprites = []level.Sprite{
		{X: 6.5, Y: 2.5, Name: "far"},  // depth 5
		{X: 4.5, Y: 2.5, Name: "near"}, // depth 3
	}

	frame := renderScene(t, ctx)
	cx, cy := ctx.Width/2, ctx.Height/2
	i := (cy*ctx.Width + cx) * 4
	if frame[i] != 0x00 || frame[i+1] != 0xff || frame[i+2] != 0x00 {
		t.Errorf("center pixel = %02x %02x %02x, want near sprite 00 ff 00",
			frame[i], frame[i+1], frame[i+2])
	}
	for p := 0; p < len(frame); p += 4 {
		if frame[p] == 0xff && frame[p+1] == 0xa5 && frame[p+2] == 0x00 {
			t.Fatalf("far sprite color visible at pixel %d", p/4)
		}
	}
}

func TestCeilingToggleChangesOnlyCeilingRows(t *testing.T) {
	m := enclosedMap(7, 5)
	cam := NewCamera(1.5, 2.5, 0.4, math.Pi/3)
	ctx := testContext(64, 48, m, cam)
	ctx.Tex.Sprites["crate"] = []*texture.Texture{solidTexture(8, 0xff, 0x00, 0xff, 0xff)}
	ctx.Sprites = []level.Sprite{{X: 3.5, Y: 2.5, Name: "crate"}}

	ctx.HideCeiling = false
	shown := renderScene(t, ctx)
	ctx.HideCeiling = true
	hidden := renderScene(t, ctx)

	horizon := ctx.Height / 2
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			i := (y*ctx.Width + x) * 4
			same := shown[i] == hidden[i] && shown[i+1] == hidden[i+1] && shown[i+2] == hidden[i+2]
			if y >= horizon && !same {
				t.Fatalf("toggle changed non-ceiling pixel (%d,%d)", x, y)
			}
			if !same {
				// A differing upper-half pixel must be fill in both
				// frames, never a wall or sprite texel.
				if [3]byte{shown[i], shown[i+1], shown[i+2]} != ctx.CeilingColor {
					t.Fatalf("toggle changed a non-fill pixel at (%d,%d)", x, y)
				}
				if [3]byte{hidden[i], hidden[i+1], hidden[i+2]} != ctx.SkyColor {
					t.Fatalf("hidden-ceiling pixel at (%d,%d) is not sky fill", x, y)
				}
			}
		}
	}
}

func TestMinimapOverlayStaysInCorner(t *testing.T) {
	m := enclosedMap(5, 5)
	cam := NewCamera(2.5, 2.5, 0, math.Pi/3)
	ctx := testContext(64, 48, m, cam)

	base := renderScene(t, ctx)
	r := NewRenderer(ctx.Width)
	r.RenderFrame(ctx)
	DrawMinimap(ctx, MinimapOptions{CellSize: 2, Margin: 1})

	limit := 1 + 5*2 // margin + map extent in minimap pixels
	for y := 0; y < ctx.Height; y++ {
		for x := 0; x < ctx.Width; x++ {
			i := (y*ctx.Width + x) * 4
			if x > limit+1 && y > limit+1 && ctx.Frame[i] != base[i] {
				t.Fatalf("minimap wrote outside its corner at (%d,%d)", x, y)
			}
		}
	}
}
