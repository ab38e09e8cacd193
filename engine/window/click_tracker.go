package window

import "time"

// clickTracker detects double clicks: two presses of the same button within interval
// and no more than distance pixels apart on either axis.
type clickTracker struct {
	interval time.Duration
	distance float32

	armed  bool
	button uint32
	x, y   float32
	at     time.Time
}

// press records a button press.
//
// Parameters:
//   - button: the pressed button
//   - x, y: the cursor position
//   - at: the time of the press
//
// Returns:
//   - bool: true if this press completes a double click
func (c *clickTracker) press(button uint32, x, y float32, at time.Time) bool {
	double := c.armed &&
		c.button == button &&
		at.Sub(c.at) <= c.interval &&
		abs(x-c.x) <= c.distance &&
		abs(y-c.y) <= c.distance

	if double {
		// A third press starts a new pair.
		c.armed = false
		return true
	}
	c.armed = true
	c.button = button
	c.x, c.y = x, y
	c.at = at
	return false
}

func abs(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
