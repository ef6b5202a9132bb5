package playerbar

import (
	"github.com/llehouerou/frequency/internal/icons"
	"github.com/llehouerou/frequency/internal/ui/render"
)

// renderVolume renders the volume indicator, e.g. "vol  35%".
func renderVolume(volume float64) string {
	return metaStyle().Render(icons.Volume() + " " + render.Percent(volume))
}
