// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"meshrender/cvar"
)

var (
	Developer         *cvar.Cvar
	Gamma             *cvar.Cvar
	GlTextureFilter   *cvar.Cvar
	RSpeeds           *cvar.Cvar
	VideoFullscreen   *cvar.Cvar
	VideoHeight       *cvar.Cvar
	VideoVerticalSync *cvar.Cvar
	VideoWidth        *cvar.Cvar
)

func init() {
	Developer = cvar.MustRegister("developer", "0", cvar.NONE)
	// percentage of full brightness, 100 means no fade
	Gamma = cvar.MustRegister("gamma", "100", cvar.ARCHIVE)
	// 1 selects linear filtering, 0 nearest
	GlTextureFilter = cvar.MustRegister("gl_texturefilter", "1", cvar.ARCHIVE)
	RSpeeds = cvar.MustRegister("r_speeds", "0", cvar.NONE)
	VideoFullscreen = cvar.MustRegister("vid_fullscreen", "0", cvar.ARCHIVE)
	VideoHeight = cvar.MustRegister("vid_height", "480", cvar.ARCHIVE)
	VideoVerticalSync = cvar.MustRegister("vid_vsync", "1", cvar.ARCHIVE)
	VideoWidth = cvar.MustRegister("vid_width", "640", cvar.ARCHIVE)
}
