// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"log"

	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

type renderPass int

const (
	passDepth renderPass = iota
	passOpaque
	passTransparent
)

func (p renderPass) String() string {
	switch p {
	case passDepth:
		return "depth"
	case passOpaque:
		return "opaque"
	case passTransparent:
		return "transparent"
	}
	return "unknown"
}

type setupPolicy int

const (
	depthPassSetup setupPolicy = iota
	colorPassSetup
)

func (p renderPass) policy() setupPolicy {
	if p == passDepth {
		return depthPassSetup
	}
	return colorPassSetup
}

// maxScratchVertices bounds the per mesh scratch buffers.
const maxScratchVertices = 65536

const opaqueAlpha = .999

// isTransparent reports whether the mesh belongs to the transparent pass.
func isTransparent(m *Mesh, mods *Modifiers) bool {
	return m.TexturingMode == texture.ModeAlphaBlend ||
		m.DiffuseColor[3] < opaqueAlpha ||
		mods.DiffuseColor[3] < opaqueAlpha ||
		mods.Status.Has(StatusGlow) ||
		mods.AutoFadeFactor < opaqueAlpha
}

func (r *Renderer) runPasses() {
	entries := r.queue.entries()

	r.drv.Color(mgl32.Vec4{1, 1, 1, 1})
	r.state.SetDepthWrite(true)
	r.drv.DepthFunc(DepthLess)
	r.drv.ColorMask(false)
	r.state.Disable(ColorArray)
	r.state.Disable(NormalArray)
	r.state.Enable(DepthTest)
	for _, e := range entries {
		r.drawEntry(passDepth, e)
	}

	r.state.SetDepthWrite(false)
	r.drv.DepthFunc(DepthLessEqual)
	r.drv.ColorMask(true)
	for _, e := range entries {
		r.drawEntry(passOpaque, e)
	}

	for i := len(entries) - 1; i >= 0; i-- {
		r.drawEntry(passTransparent, entries[i])
	}
}

func (r *Renderer) preDraw(pass renderPass, e *queueEntry, m *Mesh) bool {
	switch pass.policy() {
	case depthPassSetup:
		return r.setupDepthPass(e, m)
	case colorPassSetup:
		return r.setupColorPass(pass, e, m)
	}
	return false
}

// drawEntry draws the meshes of e that take part in pass. The transform is
// pushed once before the first drawn mesh.
func (r *Renderer) drawEntry(pass renderPass, e *queueEntry) {
	status := e.mods.Status
	pushed := false
	for _, m := range e.meshes {
		if status.Has(StatusHidden) {
			continue
		}
		if !r.preDraw(pass, e, m) {
			continue
		}

		r.state.Set(CullFace, !status.Has(StatusKeepBackfaces))
		twoPass := status.Has(StatusKeepBackfaces2Pass)
		if twoPass {
			r.drv.CullFace(FaceFront)
		}

		r.drv.VertexPointer(m.Points)

		if !pushed && e.transform != nil {
			r.drv.PushMatrix()
			r.drv.MultMatrix(e.transform)
			pushed = true
		}

		r.drv.DrawElements(len(m.Points), m.Triangles)
		r.stats.DrawCalls++

		if twoPass {
			r.drv.CullFace(FaceBack)
			r.drv.DrawElements(len(m.Points), m.Triangles)
			r.stats.DrawCalls++
		}

		r.stats.TrianglesDrawn += m.NumTriangles()
	}
	if pushed {
		r.drv.PopMatrix()
	}
}

func (r *Renderer) applyClamp(status StatusBits) {
	u, v := status.Has(StatusClampU), status.Has(StatusClampV)
	if u || v {
		r.drv.ClampTexture(u, v)
	}
}

func (r *Renderer) setupDepthPass(e *queueEntry, m *Mesh) bool {
	status := e.mods.Status
	if status.Has(StatusNoZWrite) {
		return false
	}
	// only cutouts need the texture for correct depth
	if m.TexturingMode == texture.ModeAlphaTest {
		if m.UVs == nil {
			log.Panicf("render: alpha tested mesh without uvs")
		}
		r.state.Enable(AlphaTest)
		r.state.Enable(Texture2D)
		r.state.Enable(TexCoordArray)
		r.state.BindTexture(m.Texture)
		r.applyClamp(status)
		r.drv.TexCoordPointer(m.UVs)
	} else {
		r.state.Disable(AlphaTest)
		r.state.Disable(Texture2D)
		r.state.Disable(TexCoordArray)
	}
	return true
}

func (r *Renderer) setupColorPass(pass renderPass, e *queueEntry, m *Mesh) bool {
	mods := e.mods
	status := mods.Status
	transparent := isTransparent(m, mods)
	if (pass == passOpaque && transparent) || (pass == passTransparent && !transparent) {
		return false
	}

	r.state.Set(Blend, transparent)
	if transparent {
		r.state.SetBlendAdditive(status.Has(StatusGlow))
	}
	r.state.Set(AlphaTest, !transparent && m.TexturingMode == texture.ModeAlphaTest)

	uvs := m.UVs
	if status.Has(StatusReflectionMap) {
		uvs = r.envMapUVs(m, e.transform)
	}

	r.state.Set(Lighting, !status.Has(StatusNullShader))
	r.state.Set(Fog, r.wantFog && !status.Has(StatusNoFog))

	if m.TexturingMode != texture.ModeOff {
		r.state.Enable(Texture2D)
		r.state.Enable(TexCoordArray)
		r.state.BindTexture(m.Texture)
		r.applyClamp(status)
		r.drv.TexCoordPointer(uvs)
	} else {
		r.state.Disable(Texture2D)
		r.state.Disable(TexCoordArray)
	}

	fade := mods.AutoFadeFactor
	if m.HasColors() {
		// a constant color is ignored while the color array is on,
		// so the fade goes into a copy of the vertex colors
		r.state.Enable(ColorArray)
		if fade < opaqueAlpha {
			r.drv.ColorPointer(r.fadedColors(m.Colors, fade))
		} else {
			r.drv.ColorPointer(m.Colors)
		}
	} else {
		r.state.Disable(ColorArray)
		c := mgl32.Vec4{
			m.DiffuseColor[0] * mods.DiffuseColor[0],
			m.DiffuseColor[1] * mods.DiffuseColor[1],
			m.DiffuseColor[2] * mods.DiffuseColor[2],
			m.DiffuseColor[3] * mods.DiffuseColor[3] * fade,
		}
		r.drv.Color(c)
	}

	if m.HasNormals() && !status.Has(StatusNullShader) {
		r.state.Enable(NormalArray)
		r.drv.NormalPointer(m.Normals)
	} else {
		r.state.Disable(NormalArray)
	}
	return true
}

func (r *Renderer) fadedColors(colors []mgl32.Vec4, fade float32) []mgl32.Vec4 {
	if len(colors) > len(r.scratchColors) {
		log.Panicf("render: %d vertex colors exceed scratch size %d", len(colors), len(r.scratchColors))
	}
	out := r.scratchColors[:len(colors)]
	for i, c := range colors {
		out[i] = mgl32.Vec4{c[0], c[1], c[2], c[3] * fade}
	}
	return out
}
