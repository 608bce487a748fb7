// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"time"

	"meshrender/conlog"
	"meshrender/math"
	"meshrender/texture"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	fadeThreshold = 0.01

	freezeFrameFadeDuration = 330 * time.Millisecond
	freezeFrameHold         = 100 * time.Millisecond
	freezeFrameStep         = 15 * time.Millisecond
)

// SetWindowGamma maps a brightness percentage to the fade opacity drawn by
// EndFrame. 100 means no fade.
func (r *Renderer) SetWindowGamma(percent float32) {
	r.fadeOpacity = (100 - percent) / 100
}

func (r *Renderer) FadeOpacity() float32 {
	return r.fadeOpacity
}

func (r *Renderer) drawFadeOverlay(opacity float32) {
	r.Enter2DFull()
	r.state.Enable(Blend)
	r.state.Disable(Texture2D)
	r.state.Disable(TexCoordArray)
	r.drv.Color(mgl32.Vec4{0, 0, 0, opacity})
	r.drv.Vertex2DPointer(quadPoints)
	r.drv.DrawElements(len(quadPoints), quadTriangles)
	r.stats.DrawCalls++
	r.Exit2DFull()
}

// FreezeFrameFadeOut fades the current color buffer to black and holds it
// briefly. It blocks, presenting frames itself, and leaves the fade opacity
// at 1.
func (r *Renderer) FreezeFrameFadeOut(clock Clock, p Presenter) {
	w := r.windowWidth
	if rem := w % 4; rem != 0 {
		w += 4 - rem
	}
	h := r.windowHeight
	pixels := make([]byte, int(w)*int(h)*texture.PixelTypeRGB24.BytesPerPixel())
	r.drv.ReadPixels(0, 0, w, h, texture.PixelTypeRGB24, pixels)

	tex, err := r.CreateTexture("freezeframe", w, h, texture.PixelTypeRGB24, pixels, texture.ClampU|texture.ClampV)
	if err != nil {
		conlog.Warnf("render: freeze frame capture failed: %v\n", err)
		r.fadeOpacity = 1
		return
	}

	r.Enter2DFull()
	r.state.Disable(Blend)

	start := clock.Now()
	end := start + freezeFrameFadeDuration
	for now := start; now <= end; now = clock.Now() {
		b := math.Lerp(1, 0, float32(now-start)/float32(freezeFrameFadeDuration))
		b = math.Clamp(0, b, 1)
		r.drawTexturedQuad(tex.ID(), quadUVsFlipped, mgl32.Vec4{b, b, b, 1})
		p.Swap()
		clock.Sleep(freezeFrameStep)
	}

	start = clock.Now()
	end = start + freezeFrameHold
	r.drv.ClearColor(mgl32.Vec4{0, 0, 0, 1})
	for now := start; now <= end; now = clock.Now() {
		r.drv.Clear(true, false)
		p.Swap()
		clock.Sleep(freezeFrameStep)
	}

	r.Exit2DFull()
	r.DeleteTexture(tex)
	r.fadeOpacity = 1
}
