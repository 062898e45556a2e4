package render

import "image/color"

// Mark highlights a single cell on the minimap.
type Mark struct {
	X, Y  int
	Color color.RGBA
}

// fillBinaryRGBA converts binary cell data (0/1, row-major with y=0 at the
// bottom) into RGBA pixels in buf with the top image row holding y=h-1.
func fillBinaryRGBA(buf []byte, cells []uint8, w, h int, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	for i, c := range cells {
		x, y := i%w, i/w
		base := ((h-1-y)*w + x) * 4
		if c != 0 {
			buf[base+0] = uint8(rOn >> 8)
			buf[base+1] = uint8(gOn >> 8)
			buf[base+2] = uint8(bOn >> 8)
			buf[base+3] = uint8(aOn >> 8)
			continue
		}
		buf[base+0] = uint8(rOff >> 8)
		buf[base+1] = uint8(gOff >> 8)
		buf[base+2] = uint8(bOff >> 8)
		buf[base+3] = uint8(aOff >> 8)
	}
}

// paintMarks overwrites the pixels of the marked cells. Marks outside the
// grid are skipped.
func paintMarks(buf []byte, w, h int, marks []Mark) {
	for _, m := range marks {
		if m.X < 0 || m.Y < 0 || m.X >= w || m.Y >= h {
			continue
		}
		base := ((h-1-m.Y)*w + m.X) * 4
		buf[base+0] = m.Color.R
		buf[base+1] = m.Color.G
		buf[base+2] = m.Color.B
		buf[base+3] = m.Color.A
	}
}
