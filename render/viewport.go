// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Rect is a pane clip in logical pixels: how much is cut away from each side.
type Rect struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

type Area struct {
	Min mgl32.Vec2
	Max mgl32.Vec2
}

// AdjustedViewportRect maps paneClip onto the window. Minimums are floored
// and maximums ceiled so scaled panes leave no seams.
func (r *Renderer) AdjustedViewportRect(paneClip Rect, logicalWidth, logicalHeight int) Area {
	sx := float32(r.windowWidth) / float32(logicalWidth)
	sy := float32(r.windowHeight) / float32(logicalHeight)

	left := math32.Floor(sx * float32(paneClip.Left))
	top := math32.Floor(sy * float32(paneClip.Top))
	right := math32.Ceil(sx * float32(logicalWidth-paneClip.Right))
	bottom := math32.Ceil(sy * float32(logicalHeight-paneClip.Bottom))

	return Area{
		Min: mgl32.Vec2{left, top},
		Max: mgl32.Vec2{right, bottom},
	}
}
