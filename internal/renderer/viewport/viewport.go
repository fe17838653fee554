// Package viewport keeps the cursor row of a projected frame on screen.
//
// The viewport works in display rows, not buffer lines: a wrapped buffer
// line occupies several rows and the editor reports the row holding the
// cursor after each projection.
package viewport

import "sync"

// Viewport represents the visible window onto a list of display rows.
type Viewport struct {
	mu sync.RWMutex

	// First visible row
	top int

	// Size in screen rows
	height int

	// Scroll margins (keep cursor this far from edges)
	marginTop    int
	marginBottom int

	// Number of rows in the last frame
	total int
}

// NewViewport creates a viewport with the given height.
// Height is clamped to a minimum of 1.
func NewViewport(height int) *Viewport {
	if height < 1 {
		height = 1
	}
	m := DefaultMargins()
	return &Viewport{
		height:       height,
		marginTop:    m.Top,
		marginBottom: m.Bottom,
	}
}

// Height returns the viewport height.
func (v *Viewport) Height() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.height
}

// Top returns the first visible row.
func (v *Viewport) Top() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.top
}

// BottomRow returns the last visible row.
func (v *Viewport) BottomRow() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.bottomRow()
}

func (v *Viewport) bottomRow() int {
	bottom := v.top + v.height - 1
	if v.total > 0 && bottom > v.total-1 {
		bottom = v.total - 1
	}
	return bottom
}

// Resize updates the viewport height. Height is clamped to a minimum of 1.
func (v *Viewport) Resize(height int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if height < 1 {
		height = 1
	}
	v.height = height
	v.clampTop()
}

// SetMargins sets the scroll margins.
func (v *Viewport) SetMargins(top, bottom int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.marginTop = top
	v.marginBottom = bottom
}

// Margins returns the current scroll margins.
func (v *Viewport) Margins() (top, bottom int) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.marginTop, v.marginBottom
}

// IsRowVisible returns true if the row is within the viewport.
func (v *Viewport) IsRowVisible(row int) bool {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return row >= v.top && row < v.top+v.height
}

// ScrollToReveal scrolls the minimum amount that puts cursorRow inside the
// margins of a frame with total rows. Returns true if scrolling was needed.
func (v *Viewport) ScrollToReveal(cursorRow, total int) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.total = total
	m := v.margins()
	old := v.top

	if cursorRow-m.Top < v.top {
		v.top = cursorRow - m.Top
	}
	if cursorRow+m.Bottom > v.top+v.height-1 {
		v.top = cursorRow + m.Bottom - v.height + 1
	}
	v.clampTop()
	return v.top != old
}

// clampTop keeps the viewport inside the frame (internal, no lock).
func (v *Viewport) clampTop() {
	if maxTop := v.total - v.height; v.top > maxTop {
		v.top = maxTop
	}
	if v.top < 0 {
		v.top = 0
	}
}

// Visible returns the rows of frame inside the viewport, and the screen row
// of cursorRow.
func (v *Viewport) Visible(frame []string, cursorRow int) ([]string, int) {
	v.ScrollToReveal(cursorRow, len(frame))

	v.mu.RLock()
	defer v.mu.RUnlock()
	end := v.top + v.height
	if end > len(frame) {
		end = len(frame)
	}
	if v.top >= end {
		return nil, cursorRow - v.top
	}
	return frame[v.top:end], cursorRow - v.top
}

// ScrollToTop resets the viewport to the first row.
func (v *Viewport) ScrollToTop() {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.top = 0
}
