// Package cursor tracks the selected row and scroll offset of a list pane.
package cursor

import "github.com/llehouerou/frequency/internal/keymap"

// Cursor manages cursor position and scroll offset for a scrollable list.
// List length and viewport height are passed in, since both change.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the cursor
}

// New creates a Cursor with the given scroll margin.
func New(margin int) Cursor {
	return Cursor{margin: margin}
}

// Pos returns the current cursor position.
func (c Cursor) Pos() int {
	return c.pos
}

// Move moves the cursor by delta, clamped to the list.
func (c *Cursor) Move(delta, listLen, height int) {
	c.Jump(c.pos+delta, listLen, height)
}

// Jump places the cursor at pos, clamped to the list.
func (c *Cursor) Jump(pos, listLen, height int) {
	if listLen == 0 {
		c.pos, c.offset = 0, 0
		return
	}
	c.pos = clamp(pos, listLen-1)
	c.ensureVisible(listLen, height)
}

// Apply performs a navigation action and reports whether it was one.
func (c *Cursor) Apply(action keymap.Action, listLen, height int) bool {
	switch action {
	case keymap.ActionMoveDown:
		c.Move(1, listLen, height)
	case keymap.ActionMoveUp:
		c.Move(-1, listLen, height)
	case keymap.ActionJumpStart:
		c.Jump(0, listLen, height)
	case keymap.ActionJumpEnd:
		c.Jump(listLen-1, listLen, height)
	default:
		return false
	}
	return true
}

// Clamp keeps the cursor inside a list that may have shrunk.
func (c *Cursor) Clamp(listLen, height int) {
	c.Jump(c.pos, listLen, height)
}

// VisibleRange returns the visible indices [start, end).
func (c Cursor) VisibleRange(listLen, height int) (start, end int) {
	if listLen == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, listLen)
}

func (c *Cursor) ensureVisible(listLen, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)

	if c.pos < c.offset+margin {
		c.offset = max(c.pos-margin, 0)
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = clamp(c.offset, max(listLen-height, 0))
}

func clamp(v, maxVal int) int {
	if v < 0 {
		return 0
	}
	if v > maxVal {
		return maxVal
	}
	return v
}
