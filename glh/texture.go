// SPDX-License-Identifier: GPL-2.0-or-later
package glh

import (
	"log"

	"meshrender/texture"

	"github.com/go-gl/gl/v2.1/gl"
)

type pixelFormat struct {
	internal int32
	format   uint32
	typ      uint32
}

var pixelFormats = map[texture.PixelType]pixelFormat{
	texture.PixelTypeRGB32:  {gl.RGB, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV},
	texture.PixelTypeARGB32: {gl.RGBA, gl.BGRA, gl.UNSIGNED_INT_8_8_8_8_REV},
	texture.PixelTypeRGB16:  {gl.RGB, gl.BGRA, gl.UNSIGNED_SHORT_1_5_5_5_REV},
	texture.PixelTypeARGB16: {gl.RGBA, gl.BGRA, gl.UNSIGNED_SHORT_1_5_5_5_REV},
	texture.PixelTypeRGB24:  {gl.RGB, gl.BGR, gl.UNSIGNED_BYTE},
	texture.PixelTypeRGBA8:  {gl.RGBA, gl.RGBA, gl.UNSIGNED_BYTE},
}

func formatOf(pt texture.PixelType) pixelFormat {
	f, ok := pixelFormats[pt]
	if !ok {
		log.Panicf("glh: no GL format for pixel type %v", pt)
	}
	return f
}

func (d *Driver) GenTexture() texture.ID {
	var id uint32
	gl.GenTextures(1, &id)
	return texture.ID(id)
}

func (d *Driver) DeleteTexture(id texture.ID) {
	t := uint32(id)
	gl.DeleteTextures(1, &t)
}

func (d *Driver) TexImage2D(w, h int32, pt texture.PixelType, pixels []byte) {
	f := formatOf(pt)
	gl.TexImage2D(gl.TEXTURE_2D, 0, f.internal, w, h, 0, f.format, f.typ, ptr(len(pixels), pixels))
}

func (d *Driver) TexSubImage2D(x, y, w, h int32, pt texture.PixelType, pixels []byte, rowPixels int32) {
	f := formatOf(pt)
	var rowLength int32
	if rowPixels > 0 {
		gl.GetIntegerv(gl.UNPACK_ROW_LENGTH, &rowLength)
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, rowPixels)
	}
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, x, y, w, h, f.format, f.typ, ptr(len(pixels), pixels))
	if rowPixels > 0 {
		gl.PixelStorei(gl.UNPACK_ROW_LENGTH, rowLength)
	}
}

func (d *Driver) ReadPixels(x, y, w, h int32, pt texture.PixelType, dst []byte) {
	f := formatOf(pt)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, w, h, f.format, f.typ, ptr(len(dst), dst))
}
