// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"log"

	"github.com/go-gl/mathgl/mgl32"
)

// Stats are collected per frame and reset by StartFrame.
type Stats struct {
	BatchedStateChanges int
	TrianglesDrawn      int
	// sum of the queue lengths flushed this frame
	MeshQueueSize int
	DrawCalls     int
}

// Renderer owns the state cache, the mesh queue and the fade state of one
// graphics context. It must only be used from the thread owning the context.
type Renderer struct {
	drv   Driver
	state *StateCache
	stats Stats
	queue *meshQueue

	frameStarted bool
	wantFog      bool
	fadeOpacity  float32

	windowWidth  int32
	windowHeight int32

	worldToView    mgl32.Mat4
	worldToFrustum mgl32.Mat4

	scratchColors []mgl32.Vec4
	scratchUVs    []mgl32.Vec2

	in2D     bool
	backup2D RendererState

	textures *texMgr
}

// NewRenderer wraps d. InitState must be called once the context exists.
func NewRenderer(d Driver, width, height int32) *Renderer {
	r := &Renderer{
		drv:            d,
		queue:          newMeshQueue(),
		windowWidth:    width,
		windowHeight:   height,
		worldToView:    mgl32.Ident4(),
		worldToFrustum: mgl32.Ident4(),
		scratchColors:  make([]mgl32.Vec4, maxScratchVertices),
		scratchUVs:     make([]mgl32.Vec2, maxScratchVertices),
	}
	r.state = newStateCache(d, &r.stats)
	r.textures = newTexMgr(r)
	return r
}

// InitState puts the driver into the renderer's initial state. Call again
// after the context was recreated.
func (r *Renderer) InitState() {
	r.state.SetInitial(VertexArray, true)
	r.state.SetInitial(NormalArray, true)
	r.state.SetInitial(ColorArray, false)
	r.state.SetInitial(TexCoordArray, true)
	r.state.SetInitial(CullFace, true)
	r.state.SetInitial(AlphaTest, true)
	r.state.SetInitial(DepthTest, true)
	r.state.SetInitial(ScissorTest, false)
	r.state.SetInitial(ColorMaterial, true)
	r.state.SetInitial(Texture2D, false)
	r.state.SetInitial(Blend, false)
	r.state.SetInitial(Lighting, true)
	r.state.SetInitial(Fog, false)

	r.state.ForceBlendAdditive(false)
	// a fresh context writes depth
	r.state.cur.depthWrite = true
	r.state.cur.boundTexture = 0
	r.wantFog = false

	// entry transforms are pushed onto whatever stack is selected
	r.drv.MatrixMode(ModelView)

	r.queue.reset()
}

func (r *Renderer) State() *StateCache {
	return r.state
}

func (r *Renderer) Stats() Stats {
	return r.stats
}

func (r *Renderer) FrameStarted() bool {
	return r.frameStarted
}

// SetCamera loads the camera into the driver's projection and model view
// matrices. It is also used for sort keys and reflection maps.
func (r *Renderer) SetCamera(worldToView, projection mgl32.Mat4) {
	r.worldToView = worldToView
	r.worldToFrustum = projection.Mul4(worldToView)

	r.drv.MatrixMode(Projection)
	r.drv.LoadIdentity()
	r.drv.MultMatrix(&projection)
	r.drv.MatrixMode(ModelView)
	r.drv.LoadIdentity()
	r.drv.MultMatrix(&worldToView)
}

func (r *Renderer) SetWindowSize(width, height int32) {
	r.windowWidth = width
	r.windowHeight = height
}

func (r *Renderer) WindowSize() (int32, int32) {
	return r.windowWidth, r.windowHeight
}

func (r *Renderer) StartFrame() {
	if r.frameStarted {
		log.Panicf("render: StartFrame called while a frame is open")
	}
	r.stats = Stats{}
	r.queue.size = 0

	// depth writes must be on to clear the depth buffer
	r.state.ForceDepthWrite(true)
	r.drv.Clear(true, true)

	r.frameStarted = true
}

// SetViewport sets the viewport. With scissor the area is also scissored and
// its color cleared.
func (r *Renderer) SetViewport(scissor bool, x, y, w, h int32) {
	if scissor {
		r.state.Enable(ScissorTest)
		r.drv.Scissor(x, y, w, h)
		r.drv.Viewport(x, y, w, h)
		r.drv.Clear(true, false)
	} else {
		r.drv.Viewport(x, y, w, h)
	}
}

// FlushQueue draws everything queued so far and empties the queue.
func (r *Renderer) FlushQueue() {
	if !r.frameStarted {
		log.Panicf("render: FlushQueue called outside of a frame")
	}
	r.stats.MeshQueueSize += r.queue.size
	if r.queue.size == 0 {
		return
	}
	r.queue.sort()
	r.runPasses()
	r.queue.size = 0
}

func (r *Renderer) EndFrame() {
	if !r.frameStarted {
		log.Panicf("render: EndFrame called outside of a frame")
	}
	r.FlushQueue()
	r.state.Disable(ScissorTest)
	if r.fadeOpacity > fadeThreshold {
		r.drawFadeOverlay(r.fadeOpacity)
	}
	r.frameStarted = false
}
