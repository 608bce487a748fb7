// SPDX-License-Identifier: GPL-2.0-or-later

package glh

import (
	"log"
	"unsafe"

	"meshrender/render"
	"meshrender/texture"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
)

var capabilities = [...]uint32{
	render.CullFace:      gl.CULL_FACE,
	render.AlphaTest:     gl.ALPHA_TEST,
	render.DepthTest:     gl.DEPTH_TEST,
	render.ScissorTest:   gl.SCISSOR_TEST,
	render.ColorMaterial: gl.COLOR_MATERIAL,
	render.Texture2D:     gl.TEXTURE_2D,
	render.Blend:         gl.BLEND,
	render.Lighting:      gl.LIGHTING,
	render.Fog:           gl.FOG,
	render.VertexArray:   gl.VERTEX_ARRAY,
	render.NormalArray:   gl.NORMAL_ARRAY,
	render.ColorArray:    gl.COLOR_ARRAY,
	render.TexCoordArray: gl.TEXTURE_COORD_ARRAY,
}

// Driver issues fixed function OpenGL calls. It must be used on the thread
// owning the context.
type Driver struct {
	// GL reads the client arrays at draw time, after the pointer calls
	// returned. This holds only because the Go heap does not move objects;
	// the slices are kept here so they stay alive until replaced.
	arrays [4]interface{}
}

// cutout threshold for alpha tested textures
const alphaRef = .4999

// NewDriver loads the GL entry points of the current context.
func NewDriver() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, errors.Wrap(err, "missing OpenGL entry point")
	}
	gl.AlphaFunc(gl.GREATER, alphaRef)
	return &Driver{}, nil
}

func GLInfo() (vendor, renderer, version string) {
	return gl.GoStr(gl.GetString(gl.VENDOR)),
		gl.GoStr(gl.GetString(gl.RENDERER)),
		gl.GoStr(gl.GetString(gl.VERSION))
}

func (d *Driver) SetToggle(t render.Toggle, on bool) {
	c := capabilities[t]
	switch {
	case t.ClientState() && on:
		gl.EnableClientState(c)
	case t.ClientState():
		gl.DisableClientState(c)
	case on:
		gl.Enable(c)
	default:
		gl.Disable(c)
	}
}

func (d *Driver) BindTexture(id texture.ID) {
	gl.BindTexture(gl.TEXTURE_2D, uint32(id))
}

func (d *Driver) DepthMask(write bool) {
	gl.DepthMask(write)
}

func (d *Driver) ColorMask(write bool) {
	gl.ColorMask(write, write, write, write)
}

func (d *Driver) DepthFunc(f render.DepthFunc) {
	switch f {
	case render.DepthLessEqual:
		gl.DepthFunc(gl.LEQUAL)
	default:
		gl.DepthFunc(gl.LESS)
	}
}

func (d *Driver) BlendFunc(additive bool) {
	if additive {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	} else {
		gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	}
}

func (d *Driver) CullFace(f render.Face) {
	if f == render.FaceFront {
		gl.CullFace(gl.FRONT)
	} else {
		gl.CullFace(gl.BACK)
	}
}

func (d *Driver) ClampTexture(u, v bool) {
	if u {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	}
	if v {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	}
}

func (d *Driver) SetFilter(linear bool) {
	f := int32(gl.NEAREST)
	if linear {
		f = gl.LINEAR
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, f)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, f)
}

func (d *Driver) Clear(color, depth bool) {
	var mask uint32
	if color {
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(mask)
}

func (d *Driver) ClearColor(c mgl32.Vec4) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
}

func (d *Driver) Viewport(x, y, w, h int32) {
	gl.Viewport(x, y, w, h)
}

func (d *Driver) Scissor(x, y, w, h int32) {
	gl.Scissor(x, y, w, h)
}

func (d *Driver) MatrixMode(m render.MatrixMode) {
	if m == render.Projection {
		gl.MatrixMode(gl.PROJECTION)
	} else {
		gl.MatrixMode(gl.MODELVIEW)
	}
}

func (d *Driver) PushMatrix()   { gl.PushMatrix() }
func (d *Driver) PopMatrix()    { gl.PopMatrix() }
func (d *Driver) LoadIdentity() { gl.LoadIdentity() }

func (d *Driver) MultMatrix(m *mgl32.Mat4) {
	// mgl32 is column major like GL
	gl.MultMatrixf(&m[0])
}

func (d *Driver) Color(c mgl32.Vec4) {
	gl.Color4f(c[0], c[1], c[2], c[3])
}

func (d *Driver) VertexPointer(p []mgl32.Vec3) {
	d.arrays[0] = p
	gl.VertexPointer(3, gl.FLOAT, 0, ptr(len(p), p))
}

func (d *Driver) Vertex2DPointer(p []mgl32.Vec2) {
	d.arrays[0] = p
	gl.VertexPointer(2, gl.FLOAT, 0, ptr(len(p), p))
}

func (d *Driver) NormalPointer(n []mgl32.Vec3) {
	d.arrays[1] = n
	gl.NormalPointer(gl.FLOAT, 0, ptr(len(n), n))
}

func (d *Driver) ColorPointer(c []mgl32.Vec4) {
	d.arrays[2] = c
	gl.ColorPointer(4, gl.FLOAT, 0, ptr(len(c), c))
}

func (d *Driver) TexCoordPointer(uv []mgl32.Vec2) {
	d.arrays[3] = uv
	gl.TexCoordPointer(2, gl.FLOAT, 0, ptr(len(uv), uv))
}

func (d *Driver) DrawElements(numVertices int, indices []uint16) {
	if numVertices == 0 || len(indices) == 0 {
		return
	}
	gl.DrawRangeElements(gl.TRIANGLES, 0, uint32(numVertices-1), int32(len(indices)), gl.UNSIGNED_SHORT, gl.Ptr(indices))
}

func (d *Driver) Fog(p render.FogParams) {
	gl.Hint(gl.FOG_HINT, gl.NICEST)
	gl.Fogi(gl.FOG_MODE, gl.LINEAR)
	gl.Fogf(gl.FOG_START, p.Start)
	gl.Fogf(gl.FOG_END, p.End)
	gl.Fogfv(gl.FOG_COLOR, &p.Color[0])
}

func ptr(n int, data interface{}) unsafe.Pointer {
	if n == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// CheckError panics on a pending GL error. Only meant for debugging.
func CheckError(where string) {
	if e := gl.GetError(); e != gl.NO_ERROR {
		log.Panicf("OpenGL error 0x%x in %s", e, where)
	}
}

// Light sets up a single directional light and the ambient term. dir points
// towards the light, in the current model view space.
func (d *Driver) Light(dir mgl32.Vec3, ambient, diffuse mgl32.Vec4) {
	pos := dir.Normalize().Vec4(0)
	gl.Enable(gl.LIGHT0)
	gl.Lightfv(gl.LIGHT0, gl.POSITION, &pos[0])
	gl.Lightfv(gl.LIGHT0, gl.DIFFUSE, &diffuse[0])
	gl.LightModelfv(gl.LIGHT_MODEL_AMBIENT, &ambient[0])
	gl.ColorMaterial(gl.FRONT_AND_BACK, gl.AMBIENT_AND_DIFFUSE)
}
