// SPDX-License-Identifier: GPL-2.0-or-later
package texture

// ID is a driver texture name. 0 means no texture.
type ID uint32

type PixelType int

const (
	// 32 bit BGRA in memory, alpha ignored
	PixelTypeRGB32 PixelType = iota
	// 32 bit BGRA in memory
	PixelTypeARGB32
	// 1-5-5-5 packed, alpha bit ignored
	PixelTypeRGB16
	// 1-5-5-5 packed
	PixelTypeARGB16
	// 24 bit BGR
	PixelTypeRGB24
	// 32 bit RGBA byte order
	PixelTypeRGBA8
)

func (p PixelType) BytesPerPixel() int {
	switch p {
	case PixelTypeRGB32, PixelTypeARGB32, PixelTypeRGBA8:
		return 4
	case PixelTypeRGB16, PixelTypeARGB16:
		return 2
	case PixelTypeRGB24:
		return 3
	}
	return 0
}

func (p PixelType) String() string {
	switch p {
	case PixelTypeRGB32:
		return "RGB32"
	case PixelTypeARGB32:
		return "ARGB32"
	case PixelTypeRGB16:
		return "RGB16"
	case PixelTypeARGB16:
		return "ARGB16"
	case PixelTypeRGB24:
		return "RGB24"
	case PixelTypeRGBA8:
		return "RGBA8"
	}
	return "unknown"
}

// Mode selects how a mesh samples its texture.
type Mode int

const (
	ModeOff Mode = iota
	ModeOpaque
	ModeAlphaTest
	ModeAlphaBlend
)

// ModeForPixelType maps the pixel type of a metafile texture to the texturing
// mode of the meshes using it. ok is false for types a metafile cannot carry.
func ModeForPixelType(p PixelType) (m Mode, ok bool) {
	switch p {
	case PixelTypeRGB32, PixelTypeRGB16, PixelTypeRGB24:
		return ModeOpaque, true
	case PixelTypeARGB32:
		return ModeAlphaBlend, true
	case PixelTypeARGB16:
		return ModeAlphaTest, true
	}
	return ModeOff, false
}

type Flags uint32

const (
	ClampU Flags = 1 << iota
	ClampV
	FlagsNone Flags = 0
)

type Texture struct {
	id     ID
	Width  int32
	Height int32
	typ    PixelType
	flags  Flags
	name   string
}

func New(id ID, w, h int32, typ PixelType, flags Flags, name string) *Texture {
	return &Texture{
		id:     id,
		Width:  w,
		Height: h,
		typ:    typ,
		flags:  flags,
		name:   name,
	}
}

func (t *Texture) ID() ID {
	return t.id
}

func (t *Texture) Name() string {
	return t.name
}

func (t *Texture) PixelType() PixelType {
	return t.typ
}

func (t *Texture) Texels() int {
	return int(t.Width * t.Height)
}

func (t *Texture) Bytes() int {
	return t.Texels() * t.typ.BytesPerPixel()
}

func (t *Texture) Flags(f Flags) bool {
	return t.flags&f != 0
}
