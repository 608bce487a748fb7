// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

type BBox struct {
	Min mgl32.Vec3
	Max mgl32.Vec3
}

// Mesh is a triangle list owned by the caller. The renderer only reads it.
type Mesh struct {
	Points []mgl32.Vec3
	// optional, same length as Points
	Normals []mgl32.Vec3
	Colors  []mgl32.Vec4
	UVs     []mgl32.Vec2
	// 3 indices per triangle
	Triangles     []uint16
	BBox          BBox
	TexturingMode texture.Mode
	Texture       texture.ID
	DiffuseColor  mgl32.Vec4
	// index into the owning metafile's textures, -1 for none
	InternalTextureID int
}

func (m *Mesh) NumTriangles() int {
	return len(m.Triangles) / 3
}

func (m *Mesh) HasNormals() bool {
	return len(m.Normals) != 0
}

func (m *Mesh) HasColors() bool {
	return len(m.Colors) != 0
}

type UVBoundary int

const (
	UVBoundaryWrap UVBoundary = iota
	UVBoundaryClamp
)

type Pixmap struct {
	Width     int32
	Height    int32
	PixelType texture.PixelType
	Image     []byte
}

type TextureShader struct {
	Name      string
	Pixmap    *Pixmap
	BoundaryU UVBoundary
	BoundaryV UVBoundary
}

// MetaFile is a parsed model file: textures and the meshes referencing them
// by index.
type MetaFile struct {
	Textures []TextureShader
	Meshes   []*Mesh
}
