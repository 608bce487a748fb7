// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"meshrender/math"

	"github.com/go-gl/mathgl/mgl32"
)

// EnableFog sets up linear fog. fogHither and fogYon are fractions of the
// camera's yon distance. Meshes pick it up unless flagged StatusNoFog.
func (r *Renderer) EnableFog(camHither, camYon, fogHither, fogYon float32, color mgl32.Vec4) {
	for i := range color {
		color[i] = math.Clamp(0, color[i], 1)
	}
	r.drv.Fog(FogParams{
		Start: fogHither * camYon,
		End:   fogYon * camYon,
		Color: color,
	})
	r.wantFog = true
}

func (r *Renderer) DisableFog() {
	r.wantFog = false
}

func (r *Renderer) WantFog() bool {
	return r.wantFog
}
