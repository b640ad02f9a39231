package skeleton

// Scroll is the page scroll offset at the time of a pointer event.
type Scroll struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Viewport is the visible rendering area of the page.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// OverlayRect is a clamped highlight rectangle in document coordinates.
// Ephemeral: recomputed on every pointer move, no identity between frames.
type OverlayRect struct {
	Left   float64 `json:"left"`
	Top    float64 `json:"top"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Clamp converts a viewport-relative element rect into a document-relative
// overlay rect that never extends past the top/left edge or beyond the
// viewport from its clamped origin. For an element lying entirely outside
// the viewport the width or height can come out non-positive; callers render
// that as a degenerate (invisible) overlay rather than an error.
func Clamp(r Rect, sc Scroll, vp Viewport) OverlayRect {
	left := max(0, r.Left+sc.X)
	top := max(0, r.Top+sc.Y)
	return OverlayRect{
		Left:   left,
		Top:    top,
		Width:  min(vp.Width-left, r.Width),
		Height: min(vp.Height-top, r.Height),
	}
}
