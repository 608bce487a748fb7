// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"time"

	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// Toggle is a capability or client array the driver can switch on and off.
type Toggle int

const (
	CullFace Toggle = iota
	AlphaTest
	DepthTest
	ScissorTest
	ColorMaterial
	Texture2D
	Blend
	Lighting
	Fog
	// client arrays
	VertexArray
	NormalArray
	ColorArray
	TexCoordArray
	numToggles
)

var toggleNames = [numToggles]string{
	"CullFace",
	"AlphaTest",
	"DepthTest",
	"ScissorTest",
	"ColorMaterial",
	"Texture2D",
	"Blend",
	"Lighting",
	"Fog",
	"VertexArray",
	"NormalArray",
	"ColorArray",
	"TexCoordArray",
}

func (t Toggle) String() string {
	if t < 0 || t >= numToggles {
		return "unknown"
	}
	return toggleNames[t]
}

// ClientState reports whether the toggle is a client side vertex array.
func (t Toggle) ClientState() bool {
	return t >= VertexArray && t < numToggles
}

type DepthFunc int

const (
	DepthLess DepthFunc = iota
	DepthLessEqual
)

type Face int

const (
	FaceBack Face = iota
	FaceFront
)

type MatrixMode int

const (
	Projection MatrixMode = iota
	ModelView
)

// FogParams describes linear fog in eye space units.
type FogParams struct {
	Start float32
	End   float32
	Color mgl32.Vec4
}

// Driver is the immediate mode graphics API the renderer talks to. It has no
// state deduplication of its own.
type Driver interface {
	SetToggle(t Toggle, on bool)
	BindTexture(id texture.ID)
	DepthMask(write bool)
	ColorMask(write bool)
	DepthFunc(f DepthFunc)
	BlendFunc(additive bool)
	CullFace(f Face)
	// ClampTexture clamps the bound texture along the given axes.
	ClampTexture(u, v bool)
	// SetFilter selects linear or nearest filtering of the bound texture.
	SetFilter(linear bool)

	Clear(color, depth bool)
	ClearColor(c mgl32.Vec4)
	Viewport(x, y, w, h int32)
	Scissor(x, y, w, h int32)

	MatrixMode(m MatrixMode)
	PushMatrix()
	PopMatrix()
	LoadIdentity()
	MultMatrix(m *mgl32.Mat4)

	Color(c mgl32.Vec4)
	VertexPointer(p []mgl32.Vec3)
	Vertex2DPointer(p []mgl32.Vec2)
	NormalPointer(n []mgl32.Vec3)
	ColorPointer(c []mgl32.Vec4)
	TexCoordPointer(uv []mgl32.Vec2)
	// DrawElements draws indexed triangles over the first numVertices
	// vertices of the current arrays.
	DrawElements(numVertices int, indices []uint16)
	Fog(p FogParams)

	GenTexture() texture.ID
	DeleteTexture(id texture.ID)
	// TexImage2D uploads the full image of the bound texture.
	TexImage2D(w, h int32, pt texture.PixelType, pixels []byte)
	// TexSubImage2D uploads a region of the bound texture. rowPixels > 0
	// sets the source row length.
	TexSubImage2D(x, y, w, h int32, pt texture.PixelType, pixels []byte, rowPixels int32)
	ReadPixels(x, y, w, h int32, pt texture.PixelType, dst []byte)
}

// Clock is the wall clock driving blocking transitions.
type Clock interface {
	Now() time.Duration
	Sleep(d time.Duration)
}

// Presenter shows the back buffer.
type Presenter interface {
	Swap()
}
