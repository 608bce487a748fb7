// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"log"

	"meshrender/cvars"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	window  *sdl.Window
	context sdl.GLContext
)

const title = "meshrender"

func Size() (int32, int32) {
	return window.GLGetDrawableSize()
}

func Shutdown() {
	if context != nil {
		sdl.GLDeleteContext(context)
		context = nil
	}
	if window != nil {
		window.Destroy()
		window = nil
	}
}

func Fullscreen() bool {
	return window.GetFlags()&sdl.WINDOW_FULLSCREEN != 0
}

func VSync() bool {
	i, _ := sdl.GLGetSwapInterval()
	return i == 1
}

func Minimized() bool {
	return window.GetFlags()&sdl.WINDOW_SHOWN == 0
}

func createWindow(width, height int32, flags uint32) *sdl.Window {
	w, err := sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err == nil {
		return w
	}
	log.Printf("Couldn't create window: %v", err)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 0)
	w, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err == nil {
		return w
	}
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 16)
	w, err = sdl.CreateWindow(title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED, width, height, flags)
	if err == nil {
		return w
	}
	log.Fatalf("Couldn't create window: %v", err)
	return nil
}

// SetMode opens the window with a fixed function capable GL context, or
// resizes it. Returns true if a new context was created, which needs the
// renderer state to be initialized again.
func SetMode(width, height int32, fullscreen bool) bool {
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MAJOR_VERSION, 2)
	sdl.GLSetAttribute(sdl.GL_CONTEXT_MINOR_VERSION, 1)
	sdl.GLSetAttribute(sdl.GL_DOUBLEBUFFER, 1)
	sdl.GLSetAttribute(sdl.GL_DEPTH_SIZE, 24)
	sdl.GLSetAttribute(sdl.GL_STENCIL_SIZE, 8)

	if window == nil {
		window = createWindow(width, height, uint32(sdl.WINDOW_OPENGL|sdl.WINDOW_HIDDEN|sdl.WINDOW_ALLOW_HIGHDPI))
	}
	if Fullscreen() {
		if err := window.SetFullscreen(0); err != nil {
			log.Fatalf("Couldn't leave fullscreen mode: %v", err)
		}
	}
	window.SetSize(width, height)
	window.SetPosition(sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED)
	if fullscreen {
		if err := window.SetFullscreen(sdl.WINDOW_FULLSCREEN_DESKTOP); err != nil {
			log.Fatalf("Couldn't set fullscreen mode: %v", err)
		}
	}
	window.Show()

	created := false
	if context == nil {
		var err error
		context, err = window.GLCreateContext()
		if err != nil {
			log.Fatalf("Couldn't create GL context: %v", err)
		}
		created = true
	}
	if vsync := cvars.VideoVerticalSync.Bool(); created || vsync != VSync() {
		interval := 0
		if vsync {
			interval = 1
		}
		if err := sdl.GLSetSwapInterval(interval); err != nil {
			log.Printf("Couldn't set swap interval: %v", err)
		}
	}
	return created
}

func EndRendering() {
	window.GLSwap()
}

// Screen presents frames on the window.
type Screen struct{}

func (Screen) Swap() {
	EndRendering()
}
