package raster

// Line draws a line from (x1, y1) to (x2, y2) using integer Bresenham
// stepping. Every stepped pixel is stamped with a thickness x thickness
// square brush centered on it.
func (c *Canvas) Line(x1, y1, x2, y2 int, col RGB, thickness int) {
	dx := abs(x2 - x1)
	dy := abs(y2 - y1)
	sx := -1
	if x1 < x2 {
		sx = 1
	}
	sy := -1
	if y1 < y2 {
		sy = 1
	}
	err := dx - dy
	half := thickness / 2

	for {
		for tx := -half; tx <= half; tx++ {
			for ty := -half; ty <= half; ty++ {
				c.Set(x1+tx, y1+ty, col)
			}
		}

		if x1 == x2 && y1 == y2 {
			break
		}

		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Rectangle draws a w x h rectangle with its top-left corner at (x, y).
// When filled is false only the four border runs are painted; each run is
// clipped independently.
func (c *Canvas) Rectangle(x, y, w, h int, col RGB, filled bool) {
	if filled {
		for py := y; py < y+h; py++ {
			for px := x; px < x+w; px++ {
				c.Set(px, py, col)
			}
		}
		return
	}

	bottom := y + h - 1
	right := x + w - 1
	for px := x; px < x+w; px++ {
		c.Set(px, y, col)
		c.Set(px, bottom, col)
	}
	for py := y; py < y+h; py++ {
		c.Set(x, py, col)
		c.Set(right, py, col)
	}
}

// Square draws a size x size square centered on (cx, cy).
// The top-left corner is (cx - size/2, cy - size/2) with integer division.
func (c *Canvas) Square(cx, cy, size int, col RGB, filled bool) {
	c.Rectangle(cx-size/2, cy-size/2, size, size, col, filled)
}

// Triangle fills a right-pointing triangle centered on (cx, cy) whose apex
// lies size/2 pixels to the right of the center.
func (c *Canvas) Triangle(cx, cy, size int, col RGB) {
	half := size / 2
	for py := cy - half; py <= cy+half; py++ {
		for px := cx - half; px <= cx+half; px++ {
			if inTriangle(px-cx, py-cy, half) {
				c.Set(px, py, col)
			}
		}
	}
}

// inTriangle is the membership test for a pixel at offset (dx, dy) from the
// triangle center.
func inTriangle(dx, dy, half int) bool {
	return dx >= -half && dx <= half && dx >= 0 && abs(dy) <= half-abs(dx)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
