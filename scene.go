// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"meshrender/glh"
	"meshrender/render"
	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

// scene is a small set of spinning meshes exercising the three passes.
type scene struct {
	model     *render.MetaFile
	cube      *render.Mesh
	fence     *render.Mesh
	glowBall  []*render.Mesh
	glowMods  render.Modifiers
	glassMods render.Modifiers
	fenceMods render.Modifiers
	cubeXf    mgl32.Mat4
	glassXf   mgl32.Mat4
	glowXf    mgl32.Mat4
	fenceXf   mgl32.Mat4
}

var cubeFaces = [6][4]mgl32.Vec3{
	{{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1}},
	{{1, -1, -1}, {-1, -1, -1}, {-1, 1, -1}, {1, 1, -1}},
	{{1, -1, 1}, {1, -1, -1}, {1, 1, -1}, {1, 1, 1}},
	{{-1, -1, -1}, {-1, -1, 1}, {-1, 1, 1}, {-1, 1, -1}},
	{{-1, 1, 1}, {1, 1, 1}, {1, 1, -1}, {-1, 1, -1}},
	{{-1, -1, -1}, {1, -1, -1}, {1, -1, 1}, {-1, -1, 1}},
}

var quadCornerUVs = [4]mgl32.Vec2{{0, 0}, {1, 0}, {1, 1}, {0, 1}}

func cubeMesh(color mgl32.Vec4) *render.Mesh {
	m := &render.Mesh{
		BBox:              render.BBox{Min: mgl32.Vec3{-1, -1, -1}, Max: mgl32.Vec3{1, 1, 1}},
		DiffuseColor:      color,
		InternalTextureID: -1,
	}
	for _, f := range cubeFaces {
		n := f[1].Sub(f[0]).Cross(f[2].Sub(f[0])).Normalize()
		base := uint16(len(m.Points))
		for i, p := range f {
			m.Points = append(m.Points, p)
			m.Normals = append(m.Normals, n)
			m.UVs = append(m.UVs, quadCornerUVs[i])
		}
		m.Triangles = append(m.Triangles, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// checkerARGB16 builds a 1-5-5-5 image with transparent holes.
func checkerARGB16(size int32) []byte {
	img := make([]byte, size*size*2)
	for y := int32(0); y < size; y++ {
		for x := int32(0); x < size; x++ {
			var px uint16
			if (x/4+y/4)%2 == 0 {
				px = 1<<15 | 0x1f<<5 | 0x08
			}
			o := (y*size + x) * 2
			img[o] = byte(px)
			img[o+1] = byte(px >> 8)
		}
	}
	return img
}

func newScene(r *render.Renderer) *scene {
	s := &scene{
		cube:      cubeMesh(mgl32.Vec4{.8, .3, .2, 1}),
		fence:     cubeMesh(mgl32.Vec4{1, 1, 1, 1}),
		glowMods:  render.DefaultModifiers(),
		glassMods: render.DefaultModifiers(),
		fenceMods: render.DefaultModifiers(),
	}
	s.fence.InternalTextureID = 0
	s.model = &render.MetaFile{
		Textures: []render.TextureShader{{
			Name: "fence",
			Pixmap: &render.Pixmap{
				Width:     32,
				Height:    32,
				PixelType: texture.PixelTypeARGB16,
				Image:     checkerARGB16(32),
			},
		}},
		Meshes: []*render.Mesh{s.fence},
	}
	r.LoadMetaFileTextures(s.model, false)

	s.glowBall = []*render.Mesh{cubeMesh(mgl32.Vec4{.2, .5, 1, .6}), cubeMesh(mgl32.Vec4{1, .9, .3, .6})}
	s.glowMods.Status = render.StatusGlow | render.StatusNullShader
	s.glassMods.Status = render.StatusKeepBackfaces2Pass
	s.glassMods.DiffuseColor = mgl32.Vec4{.6, .9, 1, .4}
	s.fenceMods.Status = render.StatusKeepBackfaces
	return s
}

func (s *scene) draw(r *render.Renderer, drv *glh.Driver, t, aspect float32) {
	view := mgl32.LookAtV(mgl32.Vec3{0, 3, 9}, mgl32.Vec3{0, 0, 0}, mgl32.Vec3{0, 1, 0})
	proj := mgl32.Perspective(mgl32.DegToRad(60), aspect, .5, 100)
	r.SetCamera(view, proj)
	drv.Light(mgl32.Vec3{.3, 1, .6}, mgl32.Vec4{.3, .3, .3, 1}, mgl32.Vec4{.9, .9, .9, 1})
	r.EnableFog(.5, 100, .05, .3, mgl32.Vec4{.1, .1, .15, 1})

	spin := mgl32.HomogRotate3DY(t)
	s.cubeXf = mgl32.Translate3D(-2.5, 0, 0).Mul4(spin)
	s.glassXf = mgl32.Translate3D(0, 0, 1.5).Mul4(spin)
	s.fenceXf = mgl32.Translate3D(2.5, 0, 0).Mul4(mgl32.HomogRotate3DY(-t))
	s.glowXf = mgl32.Translate3D(0, 2, -2).Mul4(mgl32.Scale3D(.5, .5, .5))

	r.SubmitMesh(s.cube, &s.cubeXf, nil, nil)
	r.SubmitMesh(s.cube, &s.glassXf, &s.glassMods, nil)
	r.SubmitMesh(s.fence, &s.fenceXf, &s.fenceMods, nil)
	r.SubmitMeshList(s.glowBall, &s.glowXf, &s.glowMods, &mgl32.Vec3{0, 2, -2})
}

func (s *scene) release(r *render.Renderer) {
	for _, t := range r.ActiveTextures() {
		r.DeleteTexture(t)
	}
}
