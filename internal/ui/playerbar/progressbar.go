package playerbar

import (
	"strings"
	"time"
)

const (
	filledBlock = "━"
	emptyBlock  = "─"
)

// progressBar renders a bar of the given width filled to position/duration.
// Unknown durations render an empty bar.
func progressBar(position, duration time.Duration, width int) string {
	if width <= 0 {
		return ""
	}
	var ratio float64
	if duration > 0 {
		ratio = min(float64(position)/float64(duration), 1)
	}
	filled := int(float64(width) * ratio)
	return progressFilledStyle().Render(strings.Repeat(filledBlock, filled)) +
		progressEmptyStyle().Render(strings.Repeat(emptyBlock, width-filled))
}
