// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"fmt"
	"testing"
	"time"

	"meshrender/conlog"
	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// drawCall is what the recording driver saw at a DrawElements call.
type drawCall struct {
	vertices  *mgl32.Vec3
	quad      bool
	colorMask bool
	depthMask bool
	additive  bool
	cull      Face
	color     mgl32.Vec4
	colors    []mgl32.Vec4
	uvs       []mgl32.Vec2
	modelView mgl32.Mat4
	toggles   [numToggles]bool
	texture   texture.ID
}

// recordingDriver simulates the driver state the renderer relies on,
// including the matrix stacks, and counts every call.
type recordingDriver struct {
	toggles     [numToggles]bool
	toggleCalls int
	bound       texture.ID
	bindCalls   int
	depthMask   bool
	colorMask   bool
	additive    bool
	blendCalls  int
	cull        Face
	depthFunc   DepthFunc
	clamps      int

	mode   MatrixMode
	stacks [2][]mgl32.Mat4
	pushes int

	color    mgl32.Vec4
	vertices []mgl32.Vec3
	quad     bool
	colors   []mgl32.Vec4
	uvs      []mgl32.Vec2
	normals  []mgl32.Vec3
	fog      FogParams

	draws       []drawCall
	clears      int
	depthClears int
	viewport    [4]int32
	scissor     [4]int32

	nextTexture texture.ID
	deleted     []texture.ID
	uploads     int
	subUploads  int
	filters     []bool
	readWidth   int32
	readHeight  int32
}

func newRecordingDriver() *recordingDriver {
	// a fresh context has the model view matrix selected
	d := &recordingDriver{colorMask: true, depthMask: true, mode: ModelView}
	d.stacks[Projection] = []mgl32.Mat4{mgl32.Ident4()}
	d.stacks[ModelView] = []mgl32.Mat4{mgl32.Ident4()}
	return d
}

func (d *recordingDriver) top() *mgl32.Mat4 {
	s := d.stacks[d.mode]
	return &s[len(s)-1]
}

func (d *recordingDriver) SetToggle(t Toggle, on bool) {
	d.toggles[t] = on
	d.toggleCalls++
}

func (d *recordingDriver) BindTexture(id texture.ID) {
	d.bound = id
	d.bindCalls++
}

func (d *recordingDriver) DepthMask(write bool) { d.depthMask = write }
func (d *recordingDriver) ColorMask(write bool) { d.colorMask = write }
func (d *recordingDriver) DepthFunc(f DepthFunc) { d.depthFunc = f }

func (d *recordingDriver) BlendFunc(additive bool) {
	d.additive = additive
	d.blendCalls++
}

func (d *recordingDriver) CullFace(f Face)        { d.cull = f }
func (d *recordingDriver) ClampTexture(u, v bool) { d.clamps++ }
func (d *recordingDriver) SetFilter(linear bool)  { d.filters = append(d.filters, linear) }

func (d *recordingDriver) Clear(color, depth bool) {
	if color {
		d.clears++
	}
	if depth {
		d.depthClears++
	}
}

func (d *recordingDriver) ClearColor(c mgl32.Vec4)   {}
func (d *recordingDriver) Viewport(x, y, w, h int32) { d.viewport = [4]int32{x, y, w, h} }
func (d *recordingDriver) Scissor(x, y, w, h int32)  { d.scissor = [4]int32{x, y, w, h} }

func (d *recordingDriver) MatrixMode(m MatrixMode) { d.mode = m }

func (d *recordingDriver) PushMatrix() {
	d.stacks[d.mode] = append(d.stacks[d.mode], *d.top())
	d.pushes++
}

func (d *recordingDriver) PopMatrix() {
	s := d.stacks[d.mode]
	if len(s) == 1 {
		panic("matrix stack underflow")
	}
	d.stacks[d.mode] = s[:len(s)-1]
}

func (d *recordingDriver) LoadIdentity() { *d.top() = mgl32.Ident4() }

func (d *recordingDriver) MultMatrix(m *mgl32.Mat4) {
	t := d.top()
	*t = t.Mul4(*m)
}

func (d *recordingDriver) Color(c mgl32.Vec4) { d.color = c }

func (d *recordingDriver) VertexPointer(p []mgl32.Vec3) {
	d.vertices = p
	d.quad = false
}

func (d *recordingDriver) Vertex2DPointer(p []mgl32.Vec2) {
	d.vertices = nil
	d.quad = true
}

func (d *recordingDriver) NormalPointer(n []mgl32.Vec3)    { d.normals = n }
func (d *recordingDriver) ColorPointer(c []mgl32.Vec4)     { d.colors = c }
func (d *recordingDriver) TexCoordPointer(uv []mgl32.Vec2) { d.uvs = uv }
func (d *recordingDriver) Fog(p FogParams)                 { d.fog = p }

func (d *recordingDriver) DrawElements(numVertices int, indices []uint16) {
	dc := drawCall{
		quad:      d.quad,
		colorMask: d.colorMask,
		depthMask: d.depthMask,
		additive:  d.additive,
		cull:      d.cull,
		color:     d.color,
		modelView: d.stacks[ModelView][len(d.stacks[ModelView])-1],
		toggles:   d.toggles,
		texture:   d.bound,
	}
	if len(d.vertices) > 0 {
		dc.vertices = &d.vertices[0]
	}
	if d.toggles[ColorArray] {
		dc.colors = append([]mgl32.Vec4(nil), d.colors...)
	}
	if d.toggles[TexCoordArray] {
		dc.uvs = append([]mgl32.Vec2(nil), d.uvs...)
	}
	d.draws = append(d.draws, dc)
}

func (d *recordingDriver) GenTexture() texture.ID {
	d.nextTexture++
	return d.nextTexture
}

func (d *recordingDriver) DeleteTexture(id texture.ID) {
	d.deleted = append(d.deleted, id)
}

func (d *recordingDriver) TexImage2D(w, h int32, pt texture.PixelType, pixels []byte) {
	d.uploads++
}

func (d *recordingDriver) TexSubImage2D(x, y, w, h int32, pt texture.PixelType, pixels []byte, rowPixels int32) {
	d.subUploads++
}

func (d *recordingDriver) ReadPixels(x, y, w, h int32, pt texture.PixelType, dst []byte) {
	d.readWidth = w
	d.readHeight = h
}

// colorDraws returns the draws issued with color writes on.
func (d *recordingDriver) colorDraws() []drawCall {
	var ds []drawCall
	for _, dc := range d.draws {
		if dc.colorMask {
			ds = append(ds, dc)
		}
	}
	return ds
}

func (d *recordingDriver) depthDraws() []drawCall {
	var ds []drawCall
	for _, dc := range d.draws {
		if !dc.colorMask {
			ds = append(ds, dc)
		}
	}
	return ds
}

func newTestRenderer(t *testing.T) (*Renderer, *recordingDriver) {
	t.Helper()
	d := newRecordingDriver()
	r := NewRenderer(d, 640, 480)
	r.InitState()
	return r, d
}

// testMesh returns an untextured opaque triangle centered at z.
func testMesh(z float32) *Mesh {
	return &Mesh{
		Points:            []mgl32.Vec3{{0, 0, z}, {1, 0, z}, {0, 1, z}},
		Triangles:         []uint16{0, 1, 2},
		BBox:              BBox{Min: mgl32.Vec3{0, 0, z}, Max: mgl32.Vec3{1, 1, z}},
		DiffuseColor:      mgl32.Vec4{1, 1, 1, 1},
		InternalTextureID: -1,
	}
}

// meshName maps the vertices of a draw back to the names given in meshes.
func meshName(dc drawCall, meshes map[string]*Mesh) string {
	for n, m := range meshes {
		if dc.vertices == &m.Points[0] {
			return n
		}
	}
	if dc.quad {
		return "quad"
	}
	return "?"
}

func drawNames(ds []drawCall, meshes map[string]*Mesh) []string {
	names := make([]string, 0, len(ds))
	for _, dc := range ds {
		names = append(names, meshName(dc, meshes))
	}
	return names
}

func expectPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s did not panic", name)
		}
	}()
	f()
}

func captureLog(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	conlog.SetPrintf(func(f string, v ...interface{}) {
		lines = append(lines, fmt.Sprintf(f, v...))
	})
	t.Cleanup(func() { conlog.SetPrintf(nil) })
	return &lines
}

type fakeClock struct {
	now    time.Duration
	sleeps int
}

func (c *fakeClock) Now() time.Duration { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.now += d
	c.sleeps++
}

type countingPresenter struct {
	swaps int
}

func (p *countingPresenter) Swap() { p.swaps++ }
