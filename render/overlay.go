// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"log"

	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// Logical resolution of the full screen 2D mode.
const (
	LogicalWidth  = 640
	LogicalHeight = 480
)

//	2----3
//	| \  |
//	|  \ |
//	0----1
var (
	quadPoints = []mgl32.Vec2{
		{0, LogicalHeight},
		{LogicalWidth, LogicalHeight},
		{0, 0},
		{LogicalWidth, 0},
	}
	quadTriangles = []uint16{
		0, 1, 2,
		1, 3, 2,
	}
	quadUVs = []mgl32.Vec2{
		{0, 1},
		{1, 1},
		{0, 0},
		{1, 0},
	}
	// for images read back from the color buffer, which start at the bottom
	quadUVsFlipped = []mgl32.Vec2{
		{0, 0},
		{1, 0},
		{0, 1},
		{1, 1},
	}
)

// Enter2DFull switches to a 640x480 top-left origin projection with blending
// on and lighting, fog and depth off. Exit2DFull restores the previous state.
func (r *Renderer) Enter2DFull() {
	if r.in2D {
		log.Panicf("render: Enter2DFull called twice")
	}
	r.in2D = true
	r.backup2D = r.state.Snapshot()

	r.drv.Viewport(0, 0, r.windowWidth, r.windowHeight)
	r.state.Disable(ScissorTest)
	r.state.Disable(Lighting)
	r.state.Disable(Fog)
	r.state.Disable(DepthTest)
	r.state.Disable(AlphaTest)
	r.state.Enable(Blend)
	r.state.Disable(ColorArray)
	r.state.Disable(NormalArray)

	ortho := mgl32.Ortho(0, LogicalWidth, LogicalHeight, 0, 0, 1000)
	r.pushProjection(&ortho)

	r.state.ForceBlendAdditive(false)
}

func (r *Renderer) Exit2DFull() {
	if !r.in2D {
		log.Panicf("render: Exit2DFull without Enter2DFull")
	}
	r.popProjection()
	r.state.Restore(r.backup2D)
	if r.backup2D.additiveBlend {
		r.state.ForceBlendAdditive(true)
	}
	r.in2D = false
}

// Enter2DNormalized pushes a projection spanning [-aspect,aspect]x[-1,1]. No
// state is saved.
func (r *Renderer) Enter2DNormalized(aspect float32) {
	ortho := mgl32.Ortho(-aspect, aspect, -1, 1, 0, 1000)
	r.pushProjection(&ortho)
}

func (r *Renderer) Exit2DNormalized() {
	r.popProjection()
}

func (r *Renderer) pushProjection(p *mgl32.Mat4) {
	r.drv.MatrixMode(Projection)
	r.drv.PushMatrix()
	r.drv.LoadIdentity()
	r.drv.MultMatrix(p)
	r.drv.MatrixMode(ModelView)
	r.drv.PushMatrix()
	r.drv.LoadIdentity()
}

func (r *Renderer) popProjection() {
	r.drv.MatrixMode(Projection)
	r.drv.PopMatrix()
	r.drv.MatrixMode(ModelView)
	r.drv.PopMatrix()
}

// Draw2DQuad draws tex over the whole logical screen.
func (r *Renderer) Draw2DQuad(tex texture.ID) {
	r.drawTexturedQuad(tex, quadUVs, mgl32.Vec4{1, 1, 1, 1})
}

func (r *Renderer) drawTexturedQuad(tex texture.ID, uvs []mgl32.Vec2, c mgl32.Vec4) {
	r.drv.Color(c)
	r.state.Enable(Texture2D)
	r.state.Enable(TexCoordArray)
	r.state.BindTexture(tex)
	r.state.Enable(VertexArray)
	r.drv.Vertex2DPointer(quadPoints)
	r.drv.TexCoordPointer(uvs)
	r.drv.DrawElements(len(quadPoints), quadTriangles)
	r.stats.DrawCalls++
}
