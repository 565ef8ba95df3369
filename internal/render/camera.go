package render

// Camera translates map coordinates to screen coordinates. When the screen
// is at least as large as the map the offset stays at zero; on smaller
// screens it follows a target but never scrolls past the map edges.
type Camera struct {
	OffsetX, OffsetY      int
	ViewWidth, ViewHeight int
	MapWidth, MapHeight   int
}

// NewCamera creates a camera for a mapW x mapH map shown in a viewW x viewH view.
func NewCamera(mapW, mapH, viewW, viewH int) *Camera {
	return &Camera{
		ViewWidth:  viewW,
		ViewHeight: viewH,
		MapWidth:   mapW,
		MapHeight:  mapH,
	}
}

// Center scrolls so that map position (cx, cy) is as close to the middle of
// the view as the map edges allow.
func (c *Camera) Center(cx, cy int) {
	c.OffsetX = clampOffset(cx-c.ViewWidth/2, c.MapWidth-c.ViewWidth)
	c.OffsetY = clampOffset(cy-c.ViewHeight/2, c.MapHeight-c.ViewHeight)
}

// Resize changes the view dimensions, keeping the offset within range.
func (c *Camera) Resize(viewW, viewH int) {
	c.ViewWidth, c.ViewHeight = viewW, viewH
	c.OffsetX = clampOffset(c.OffsetX, c.MapWidth-c.ViewWidth)
	c.OffsetY = clampOffset(c.OffsetY, c.MapHeight-c.ViewHeight)
}

// WorldToScreen converts map (wx, wy) to screen (sx, sy).
// visible is false when the result falls outside the view.
func (c *Camera) WorldToScreen(wx, wy int) (sx, sy int, visible bool) {
	sx = wx - c.OffsetX
	sy = wy - c.OffsetY
	visible = sx >= 0 && sx < c.ViewWidth && sy >= 0 && sy < c.ViewHeight
	return
}

func clampOffset(v, limit int) int {
	if limit <= 0 || v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
