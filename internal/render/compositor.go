package render

// Renderer owns the per-frame scratch state for the pipeline and drives the
// passes in order. One Renderer serves one Context for the process lifetime.
type Renderer struct {
	hits []RayHit
}

// NewRenderer allocates a renderer for contexts of the given width.
func NewRenderer(width int) *Renderer {
	return &Renderer{hits: make([]RayHit, width)}
}

// RenderFrame composes one complete frame into ctx.Frame:
// ceiling/floor fill, then wall strips (populating the depth buffer), then
// sprites. The depth buffer is fully written by the wall pass before any
// sprite column consults it.
func (r *Renderer) RenderFrame(ctx *Context) {
	fillFloorCeiling(ctx)

	CastAll(ctx, r.hits)
	for x := 0; x < ctx.Width; x++ {
		drawWallColumn(ctx, x, r.hits[x])
	}

	drawSprites(ctx)
}
