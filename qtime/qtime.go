// SPDX-License-Identifier: GPL-2.0-or-later

package qtime

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"
)

var (
	startTime = time.Now()
)

func QTime() time.Duration {
	return time.Now().Sub(startTime)
}

// SDLClock counts SDL ticks and sleeps with SDL_Delay. SDL must be
// initialized.
type SDLClock struct{}

func (SDLClock) Now() time.Duration {
	return time.Duration(sdl.GetTicks()) * time.Millisecond
}

func (SDLClock) Sleep(d time.Duration) {
	sdl.Delay(uint32(d / time.Millisecond))
}
