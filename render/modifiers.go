// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type StatusBits uint32

const (
	StatusHidden StatusBits = 1 << iota
	StatusKeepBackfaces
	// draw back faces first, then front faces
	StatusKeepBackfaces2Pass
	StatusNoZWrite
	// additive blending
	StatusGlow
	// no lighting, no normals
	StatusNullShader
	StatusNoFog
	StatusClampU
	StatusClampV
	StatusReflectionMap
	StatusAutoFade
	StatusNoTriCache
	StatusNone StatusBits = 0
)

func (s StatusBits) Has(b StatusBits) bool {
	return s&b != 0
}

// Modifiers are the per submission overrides. The queue keeps a pointer to
// them until the next flush.
type Modifiers struct {
	Status StatusBits
	// unmultiplied alpha
	DiffuseColor   mgl32.Vec4
	AutoFadeFactor float32
	// lower values are drawn first
	SortPriority int
}

var defaultModifiers = DefaultModifiers()

func DefaultModifiers() Modifiers {
	return Modifiers{
		Status:         StatusNone,
		DiffuseColor:   mgl32.Vec4{1, 1, 1, 1},
		AutoFadeFactor: 1,
		SortPriority:   0,
	}
}
