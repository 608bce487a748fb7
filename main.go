// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"flag"
	"log"
	"os"

	"meshrender/config"
	"meshrender/conlog"
	"meshrender/cvar"
	"meshrender/cvars"
	"meshrender/glh"
	"meshrender/math"
	"meshrender/qtime"
	"meshrender/render"
	"meshrender/window"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"
)

var (
	configPath = flag.String("config", "meshrender.yml", "cvar config file")
	maxFrames  = flag.Int("frames", 0, "quit after this many frames, 0 runs until the window is closed")
	saveConfig = flag.Bool("save", false, "write archived cvars back to the config file on exit")
)

func loadConfig() {
	f, err := config.Load(*configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			conlog.DPrintf("no config at %s\n", *configPath)
			return
		}
		log.Fatalf("%v", err)
	}
	if err := f.Apply(); err != nil {
		log.Fatalf("config %s: %v", *configPath, err)
	}
}

type app struct {
	drv    *glh.Driver
	r      *render.Renderer
	scene  *scene
	frames int
}

func (a *app) init() {
	v := sdl.Version{}
	sdl.GetVersion(&v)
	log.Printf("Found SDL version %d.%d.%d\n", v.Major, v.Minor, v.Patch)
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		log.Fatalf("%v", errors.Wrap(err, "SDL init"))
	}

	if !window.SetMode(videoMode()) {
		log.Fatalf("no GL context after opening the window")
	}

	drv, err := glh.NewDriver()
	if err != nil {
		log.Fatalf("%v", err)
	}
	vendor, renderer, version := glh.GLInfo()
	log.Printf("GL_VENDOR: %s\nGL_RENDERER: %s\nGL_VERSION: %s\n", vendor, renderer, version)

	a.drv = drv
	a.r = render.NewRenderer(drv, 0, 0)
	a.r.SetWindowSize(window.Size())
	a.r.InitState()

	cvars.Gamma.SetCallback(func(cv *cvar.Cvar) {
		a.r.SetWindowGamma(cv.Value())
	})
	a.r.SetWindowGamma(cvars.Gamma.Value())
	for _, cv := range []*cvar.Cvar{cvars.VideoWidth, cvars.VideoHeight, cvars.VideoFullscreen, cvars.VideoVerticalSync} {
		cv.SetCallback(a.videoModeCallback)
	}

	a.scene = newScene(a.r)
	a.r.LogTextures()
}

func videoMode() (int32, int32, bool) {
	return int32(cvars.VideoWidth.Value()), int32(cvars.VideoHeight.Value()), cvars.VideoFullscreen.Bool()
}

func (a *app) videoModeCallback(_ *cvar.Cvar) {
	if window.SetMode(videoMode()) {
		a.r.InitState()
	}
	a.r.SetWindowSize(window.Size())
}

const gammaStep = 10

func (a *app) keyDown(key sdl.Keycode) {
	switch key {
	case sdl.K_F11:
		cvars.VideoFullscreen.Toggle()
	case sdl.K_MINUS:
		cvars.Gamma.SetValue(math.Clamp(50, cvars.Gamma.Value()-gammaStep, 100))
	case sdl.K_EQUALS:
		cvars.Gamma.SetValue(math.Clamp(50, cvars.Gamma.Value()+gammaStep, 100))
	case sdl.K_BACKSPACE:
		cvar.ResetArchived()
	}
}

// frame draws one frame and reports whether to keep running.
func (a *app) frame() bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch e := ev.(type) {
		case *sdl.QuitEvent:
			return false
		case *sdl.WindowEvent:
			if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
				a.r.SetWindowSize(window.Size())
			}
		case *sdl.KeyboardEvent:
			if e.Type == sdl.KEYDOWN && e.Repeat == 0 {
				a.keyDown(e.Keysym.Sym)
			}
		}
	}
	if window.Minimized() {
		sdl.Delay(16)
		return true
	}

	w, h := a.r.WindowSize()
	a.r.StartFrame()
	a.r.SetViewport(false, 0, 0, w, h)
	a.scene.draw(a.r, a.drv, float32(qtime.QTime().Seconds()), float32(w)/float32(h))
	a.r.EndFrame()
	if cvars.Developer.Bool() {
		glh.CheckError("frame")
	}
	window.EndRendering()

	if cvars.RSpeeds.Bool() {
		s := a.r.Stats()
		conlog.Printf("%4d tris %3d draws %3d queued %4d batched\n",
			s.TrianglesDrawn, s.DrawCalls, s.MeshQueueSize, s.BatchedStateChanges)
	}

	a.frames++
	return *maxFrames == 0 || a.frames < *maxFrames
}

func (a *app) shutdown() {
	a.r.FreezeFrameFadeOut(qtime.SDLClock{}, window.Screen{})
	a.scene.release(a.r)
	window.Shutdown()
	sdl.Quit()
}

func run() {
	a := &app{}
	mainthread.Call(a.init)
	running := true
	for running {
		mainthread.Call(func() {
			running = a.frame()
		})
	}
	mainthread.Call(a.shutdown)
}

func main() {
	flag.Parse()
	conlog.SetDeveloper(cvars.Developer.Bool)
	loadConfig()
	cvar.LogAll()

	mainthread.Run(run)

	if *saveConfig {
		if err := config.Archived().Save(*configPath); err != nil {
			log.Fatalf("%v", err)
		}
	}
}
