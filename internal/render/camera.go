package render

// View maps world coordinates (Y up) to screen pixels (Y down).
type View struct {
	Scale   float64
	OffsetX float64
	OffsetY float64
	ScreenW float64
	ScreenH float64
}

// Identity returns a view drawing world units 1:1 with the world origin at
// the bottom-left corner of a w*h screen.
func Identity(w, h int) View {
	return View{Scale: 1, ScreenW: float64(w), ScreenH: float64(h)}
}

// Follow returns a view that keeps the world point (cx, cy) at the screen
// center. The zoom grows with the window: (w + h) / 200 pixels per unit.
func Follow(w, h int, cx, cy float64) View {
	return FollowAt(w, h, cx, cy, float64(w+h)/200)
}

// FollowAt is Follow with an explicit zoom in pixels per world unit.
func FollowAt(w, h int, cx, cy, scale float64) View {
	sw, sh := float64(w), float64(h)
	if scale <= 0 {
		scale = 1
	}
	return View{
		Scale:   scale,
		OffsetX: sw/2 - cx*scale,
		OffsetY: sh/2 - cy*scale,
		ScreenW: sw,
		ScreenH: sh,
	}
}

// Project maps a world point to screen coordinates.
func (v View) Project(x, y float64) (float64, float64) {
	return x*v.Scale + v.OffsetX, v.ScreenH - (y*v.Scale + v.OffsetY)
}

// Rect maps a world rectangle anchored at its lower-left corner to a screen
// rectangle anchored at its top-left corner.
func (v View) Rect(x, y, w, h float64) (sx, sy, sw, sh float64) {
	sx, sy = v.Project(x, y+h)
	return sx, sy, w * v.Scale, h * v.Scale
}

// Visible reports whether a screen rectangle intersects the screen.
func (v View) Visible(sx, sy, sw, sh float64) bool {
	return sx < v.ScreenW && sx+sw > 0 && sy < v.ScreenH && sy+sh > 0
}
