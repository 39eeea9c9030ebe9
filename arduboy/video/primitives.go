package video

// FillScreen sets every pixel of the surface to on.
func FillScreen(s Surface, on bool) {
	FillRect(s, 0, 0, s.Width(), s.Height(), on)
}

// DrawPixel sets a single pixel. Out of bounds coordinates are ignored.
func DrawPixel(s Surface, x, y int, on bool) {
	s.SetPixel(x, y, on)
}

// DrawFastHLine draws a horizontal line of length w starting at (x, y).
func DrawFastHLine(s Surface, x, y, w int, on bool) {
	if y < 0 || y >= s.Height() {
		return
	}
	x0, x1 := clampSpan(x, w, s.Width())
	for i := x0; i < x1; i++ {
		s.SetPixel(i, y, on)
	}
}

// DrawFastVLine draws a vertical line of length h starting at (x, y).
func DrawFastVLine(s Surface, x, y, h int, on bool) {
	if x < 0 || x >= s.Width() {
		return
	}
	y0, y1 := clampSpan(y, h, s.Height())
	for j := y0; j < y1; j++ {
		s.SetPixel(x, j, on)
	}
}

// DrawRect draws the outline of a w*h rectangle with its corner at (x, y).
func DrawRect(s Surface, x, y, w, h int, on bool) {
	if w <= 0 || h <= 0 {
		return
	}
	DrawFastHLine(s, x, y, w, on)
	DrawFastHLine(s, x, y+h-1, w, on)
	DrawFastVLine(s, x, y, h, on)
	DrawFastVLine(s, x+w-1, y, h, on)
}

// FillRect fills a w*h rectangle with its corner at (x, y).
func FillRect(s Surface, x, y, w, h int, on bool) {
	y0, y1 := clampSpan(y, h, s.Height())
	for j := y0; j < y1; j++ {
		DrawFastHLine(s, x, j, w, on)
	}
}

// clampSpan clips [start, start+length) to [0, limit).
func clampSpan(start, length, limit int) (int, int) {
	end := start + length
	if start < 0 {
		start = 0
	}
	if end > limit {
		end = limit
	}
	if end < start {
		end = start
	}
	return start, end
}
