// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"log"
	"sort"

	"meshrender/conlog"
	"meshrender/cvar"
	"meshrender/cvars"
	"meshrender/texture"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

type texMgr struct {
	r              *Renderer
	activeTextures map[*texture.Texture]bool
}

func newTexMgr(r *Renderer) *texMgr {
	tm := &texMgr{
		r:              r,
		activeTextures: make(map[*texture.Texture]bool),
	}
	cvars.GlTextureFilter.SetCallback(func(cv *cvar.Cvar) {
		tm.textureFilterCallback(cv)
	})
	return tm
}

func (tm *texMgr) linear() bool {
	return cvars.GlTextureFilter.Bool()
}

func (tm *texMgr) textureFilterCallback(_ *cvar.Cvar) {
	linear := tm.linear()
	for k, v := range tm.activeTextures {
		if v {
			tm.r.state.BindTexture(k.ID())
			tm.r.drv.SetFilter(linear)
		}
	}
}

func checkPixels(w, h int32, pt texture.PixelType, pixels []byte) error {
	if w <= 0 || h <= 0 {
		return errors.Errorf("invalid texture size %dx%d", w, h)
	}
	bpp := pt.BytesPerPixel()
	if bpp == 0 {
		return errors.Errorf("unsupported pixel type %v", pt)
	}
	if need := int(w) * int(h) * bpp; len(pixels) < need {
		return errors.Errorf("pixel buffer too short: %d < %d", len(pixels), need)
	}
	return nil
}

// CreateTexture uploads pixels into a new texture, which stays bound.
// An empty name gets a generated one.
func (r *Renderer) CreateTexture(name string, w, h int32, pt texture.PixelType, pixels []byte, flags texture.Flags) (*texture.Texture, error) {
	if err := checkPixels(w, h, pt, pixels); err != nil {
		return nil, errors.Wrapf(err, "texture %q", name)
	}
	if name == "" {
		name = uuid.NewString()
	}
	id := r.drv.GenTexture()
	t := texture.New(id, w, h, pt, flags, name)
	r.state.BindTexture(id)
	r.drv.SetFilter(r.textures.linear())
	u, v := t.Flags(texture.ClampU), t.Flags(texture.ClampV)
	if u || v {
		r.drv.ClampTexture(u, v)
	}
	r.drv.TexImage2D(w, h, pt, pixels)
	r.textures.activeTextures[t] = true
	return t, nil
}

// UpdateTexture replaces a w*h region at x,y. rowPixels > 0 is the row
// length of pixels in pixels.
func (r *Renderer) UpdateTexture(t *texture.Texture, x, y, w, h int32, pt texture.PixelType, pixels []byte, rowPixels int32) error {
	if w <= 0 || h <= 0 {
		return errors.Errorf("texture %q: invalid region size %dx%d", t.Name(), w, h)
	}
	if x < 0 || y < 0 || x+w > t.Width || y+h > t.Height {
		return errors.Errorf("texture %q: region %d,%d %dx%d outside %dx%d", t.Name(), x, y, w, h, t.Width, t.Height)
	}
	stride := w
	if rowPixels > 0 {
		stride = rowPixels
	}
	need := (int(stride)*int(h-1) + int(w)) * pt.BytesPerPixel()
	if pt.BytesPerPixel() == 0 || len(pixels) < need {
		return errors.Errorf("texture %q: pixel buffer too short for region", t.Name())
	}
	r.state.BindTexture(t.ID())
	r.drv.TexSubImage2D(x, y, w, h, pt, pixels, rowPixels)
	return nil
}

func (r *Renderer) DeleteTexture(t *texture.Texture) {
	if t == nil {
		return
	}
	delete(r.textures.activeTextures, t)
	r.drv.DeleteTexture(t.ID())
	r.state.forgetTexture(t.ID())
}

// LoadMetaFileTextures uploads the textures of mf and points every mesh at the
// texture it references. Textures that can't be loaded are skipped with a
// warning and get id 0.
func (r *Renderer) LoadMetaFileTextures(mf *MetaFile, forceClamp bool) []texture.ID {
	ids := make([]texture.ID, len(mf.Textures))
	for i, ts := range mf.Textures {
		if ts.Pixmap == nil {
			log.Panicf("render: metafile texture %d has no pixmap", i)
		}
		pm := ts.Pixmap
		mode, ok := texture.ModeForPixelType(pm.PixelType)
		if !ok {
			conlog.Warnf("metafile texture %d (%s): unsupported pixel type %v\n", i, ts.Name, pm.PixelType)
			continue
		}

		flags := texture.FlagsNone
		if forceClamp {
			flags |= texture.ClampU | texture.ClampV
		}
		if ts.BoundaryU == UVBoundaryClamp {
			flags |= texture.ClampU
		}
		if ts.BoundaryV == UVBoundaryClamp {
			flags |= texture.ClampV
		}

		t, err := r.CreateTexture(ts.Name, pm.Width, pm.Height, pm.PixelType, pm.Image, flags)
		if err != nil {
			conlog.Warnf("metafile texture %d: %v\n", i, err)
			continue
		}
		ids[i] = t.ID()

		for _, m := range mf.Meshes {
			if m.InternalTextureID == i {
				m.Texture = t.ID()
				m.TexturingMode = mode
			}
		}
	}
	return ids
}

// ActiveTextures returns the live textures sorted by name.
func (r *Renderer) ActiveTextures() []*texture.Texture {
	ts := make([]*texture.Texture, 0, len(r.textures.activeTextures))
	for k, v := range r.textures.activeTextures {
		if v {
			ts = append(ts, k)
		}
	}
	sort.Slice(ts, func(i, j int) bool { return ts[i].Name() < ts[j].Name() })
	return ts
}

// TextureUsage returns the number of texels and megabytes in use.
func (r *Renderer) TextureUsage() (int, float32) {
	texels := 0
	bytes := 0
	for k, v := range r.textures.activeTextures {
		if v {
			texels += k.Texels()
			bytes += k.Bytes()
		}
	}
	return texels, float32(bytes) / (1000 * 1000)
}

func (r *Renderer) LogTextures() {
	for _, t := range r.ActiveTextures() {
		conlog.DPrintf("   %4dx%4d %-7v %s\n", t.Width, t.Height, t.PixelType(), t.Name())
	}
	texels, mb := r.TextureUsage()
	conlog.Printf("%d textures %d pixels %.1f megabytes\n",
		len(r.textures.activeTextures), texels, mb)
}
