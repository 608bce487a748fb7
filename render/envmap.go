// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"log"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// envMapUVs computes sphere map coordinates from the view space normals of m.
// The result lives in a scratch buffer valid until the next call.
func (r *Renderer) envMapUVs(m *Mesh, transform *mgl32.Mat4) []mgl32.Vec2 {
	if !m.HasNormals() {
		log.Panicf("render: reflection mapped mesh without normals")
	}
	if len(m.Normals) > len(r.scratchUVs) {
		log.Panicf("render: %d normals exceed scratch size %d", len(m.Normals), len(r.scratchUVs))
	}
	rot := r.worldToView.Mat3()
	if transform != nil {
		rot = rot.Mul3(transform.Mat3())
	}
	out := r.scratchUVs[:len(m.Normals)]
	for i, n := range m.Normals {
		v := rot.Mul3x1(n)
		if l := math32.Sqrt(v.Dot(v)); l > 0 {
			v = v.Mul(1 / l)
		}
		out[i] = mgl32.Vec2{.5 + .5*v[0], .5 - .5*v[1]}
	}
	return out
}
