// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"strings"
	"testing"

	"meshrender/cvars"
	"meshrender/texture"

	"github.com/google/uuid"
)

func pixmap(w, h int32, pt texture.PixelType) *Pixmap {
	return &Pixmap{
		Width:     w,
		Height:    h,
		PixelType: pt,
		Image:     make([]byte, int(w*h)*pt.BytesPerPixel()),
	}
}

func TestLoadMetaFileTextures(t *testing.T) {
	r, d := newTestRenderer(t)
	lines := captureLog(t)
	mf := &MetaFile{
		Textures: []TextureShader{
			{Name: "rock", Pixmap: pixmap(4, 4, texture.PixelTypeRGB32)},
			{Name: "bad", Pixmap: pixmap(4, 4, texture.PixelTypeRGBA8)},
			{Name: "leaves", Pixmap: pixmap(8, 2, texture.PixelTypeARGB16), BoundaryU: UVBoundaryClamp},
			{Name: "glass", Pixmap: pixmap(2, 2, texture.PixelTypeARGB32)},
			{Name: "sky", Pixmap: pixmap(2, 2, texture.PixelTypeRGB24)},
		},
		Meshes: []*Mesh{testMesh(0), testMesh(0), testMesh(0), testMesh(0), testMesh(0), testMesh(0)},
	}
	for i := 0; i < 5; i++ {
		mf.Meshes[i].InternalTextureID = i
	}

	ids := r.LoadMetaFileTextures(mf, false)

	if len(*lines) != 1 || !strings.HasPrefix((*lines)[0], "WARNING: ") || !strings.Contains((*lines)[0], "RGBA8") {
		t.Errorf("log = %q", *lines)
	}
	if len(ids) != 5 || ids[1] != 0 {
		t.Fatalf("ids = %v", ids)
	}
	want := []texture.Mode{
		texture.ModeOpaque,
		texture.ModeOff,
		texture.ModeAlphaTest,
		texture.ModeAlphaBlend,
		texture.ModeOpaque,
	}
	for i, m := range mf.Meshes[:5] {
		if m.TexturingMode != want[i] {
			t.Errorf("mesh %d mode %v, want %v", i, m.TexturingMode, want[i])
		}
		if m.Texture != ids[i] {
			t.Errorf("mesh %d texture %d, want %d", i, m.Texture, ids[i])
		}
	}
	if mf.Meshes[5].Texture != 0 {
		t.Errorf("untextured mesh got texture %d", mf.Meshes[5].Texture)
	}
	if d.uploads != 4 || len(r.ActiveTextures()) != 4 {
		t.Errorf("%d uploads, %d active", d.uploads, len(r.ActiveTextures()))
	}
	// only "leaves" clamps
	if d.clamps != 1 {
		t.Errorf("%d clamp calls, want 1", d.clamps)
	}
}

func TestLoadMetaFileForceClamp(t *testing.T) {
	r, d := newTestRenderer(t)
	mf := &MetaFile{
		Textures: []TextureShader{
			{Pixmap: pixmap(1, 1, texture.PixelTypeRGB16)},
			{Pixmap: pixmap(1, 1, texture.PixelTypeRGB16)},
		},
	}
	r.LoadMetaFileTextures(mf, true)
	if d.clamps != 2 {
		t.Errorf("%d clamp calls, want 2", d.clamps)
	}
}

func TestLoadMetaFileShortImage(t *testing.T) {
	r, _ := newTestRenderer(t)
	lines := captureLog(t)
	short := pixmap(4, 4, texture.PixelTypeRGB24)
	short.Image = short.Image[:10]
	mf := &MetaFile{
		Textures: []TextureShader{
			{Name: "ok", Pixmap: pixmap(1, 1, texture.PixelTypeRGB24)},
			{Name: "short", Pixmap: short},
		},
	}
	ids := r.LoadMetaFileTextures(mf, false)
	if ids[0] == 0 || ids[1] != 0 || len(*lines) != 1 {
		t.Errorf("ids %v log %q", ids, *lines)
	}
}

func TestLoadMetaFileMissingPixmap(t *testing.T) {
	r, _ := newTestRenderer(t)
	mf := &MetaFile{Textures: []TextureShader{{Name: "none"}}}
	expectPanic(t, "LoadMetaFileTextures", func() {
		r.LoadMetaFileTextures(mf, false)
	})
}

func TestCreateTexture(t *testing.T) {
	r, d := newTestRenderer(t)
	tex, err := r.CreateTexture("", 2, 2, texture.PixelTypeRGBA8, make([]byte, 16), texture.ClampV)
	if err != nil {
		t.Fatalf("CreateTexture: %v", err)
	}
	if _, err := uuid.Parse(tex.Name()); err != nil {
		t.Errorf("anonymous texture name %q: %v", tex.Name(), err)
	}
	if d.bound != tex.ID() || r.State().Snapshot().BoundTexture() != tex.ID() {
		t.Errorf("texture not bound through the cache")
	}
	if d.clamps != 1 || len(d.filters) != 1 {
		t.Errorf("clamps %d filters %v", d.clamps, d.filters)
	}
	if _, err := r.CreateTexture("short", 2, 2, texture.PixelTypeRGBA8, make([]byte, 15), texture.FlagsNone); err == nil {
		t.Errorf("short buffer accepted")
	}
	if _, err := r.CreateTexture("empty", 0, 2, texture.PixelTypeRGBA8, nil, texture.FlagsNone); err == nil {
		t.Errorf("zero width accepted")
	}
	texels, _ := r.TextureUsage()
	if texels != 4 {
		t.Errorf("TextureUsage texels = %d", texels)
	}
}

func TestUpdateTexture(t *testing.T) {
	r, d := newTestRenderer(t)
	tex, err := r.CreateTexture("atlas", 8, 8, texture.PixelTypeRGB32, make([]byte, 8*8*4), texture.FlagsNone)
	if err != nil {
		t.Fatal(err)
	}
	r.State().BindTexture(0)
	if err := r.UpdateTexture(tex, 2, 2, 4, 4, texture.PixelTypeRGB32, make([]byte, 8*3*4+4*4), 8); err != nil {
		t.Errorf("UpdateTexture: %v", err)
	}
	if d.subUploads != 1 || d.bound != tex.ID() {
		t.Errorf("sub uploads %d bound %d", d.subUploads, d.bound)
	}
	if err := r.UpdateTexture(tex, 6, 6, 4, 4, texture.PixelTypeRGB32, make([]byte, 64), 0); err == nil {
		t.Errorf("region outside texture accepted")
	}
	if err := r.UpdateTexture(tex, 0, 0, 4, 4, texture.PixelTypeRGB32, make([]byte, 63), 0); err == nil {
		t.Errorf("short buffer accepted")
	}
}

func TestUpdateTextureRejectsEmptyRegion(t *testing.T) {
	r, d := newTestRenderer(t)
	tex, err := r.CreateTexture("atlas", 8, 8, texture.PixelTypeRGB24, make([]byte, 8*8*3), texture.FlagsNone)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		w, h int32
	}{
		{-3, -3},
		{0, 4},
		{4, 0},
		{-1, 2},
	}
	for _, tc := range tests {
		if err := r.UpdateTexture(tex, 2, 2, tc.w, tc.h, texture.PixelTypeRGB24, nil, 0); err == nil {
			t.Errorf("UpdateTexture %dx%d accepted", tc.w, tc.h)
		}
	}
	if d.subUploads != 0 {
		t.Errorf("%d sub uploads for rejected regions", d.subUploads)
	}
}

func TestDeleteTextureForgetsBinding(t *testing.T) {
	r, d := newTestRenderer(t)
	tex, _ := r.CreateTexture("a", 1, 1, texture.PixelTypeRGB24, make([]byte, 3), texture.FlagsNone)
	r.DeleteTexture(tex)
	if r.State().Snapshot().BoundTexture() != 0 {
		t.Errorf("deleted texture still cached as bound")
	}
	calls := d.bindCalls
	tex2, _ := r.CreateTexture("b", 1, 1, texture.PixelTypeRGB24, make([]byte, 3), texture.FlagsNone)
	if d.bindCalls != calls+1 || d.bound != tex2.ID() {
		t.Errorf("new texture not bound")
	}
}

func TestTextureFilterCvar(t *testing.T) {
	r, d := newTestRenderer(t)
	t.Cleanup(cvars.GlTextureFilter.Reset)
	for _, n := range []string{"a", "b"} {
		if _, err := r.CreateTexture(n, 1, 1, texture.PixelTypeRGB24, make([]byte, 3), texture.FlagsNone); err != nil {
			t.Fatal(err)
		}
	}
	d.filters = nil
	cvars.GlTextureFilter.SetByString("0")
	if len(d.filters) != 2 || d.filters[0] || d.filters[1] {
		t.Errorf("filters %v", d.filters)
	}
}
