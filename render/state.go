// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"meshrender/texture"
)

// RendererState mirrors what the driver currently has enabled.
type RendererState struct {
	toggles       [numToggles]bool
	boundTexture  texture.ID
	additiveBlend bool
	depthWrite    bool
}

func (s RendererState) Enabled(t Toggle) bool {
	return s.toggles[t]
}

func (s RendererState) BoundTexture() texture.ID {
	return s.boundTexture
}

func (s RendererState) AdditiveBlend() bool {
	return s.additiveBlend
}

func (s RendererState) DepthWrite() bool {
	return s.depthWrite
}

// StateCache forwards state changes to the driver only when they differ from
// the cached value. Skipped changes are counted in stats.BatchedStateChanges.
type StateCache struct {
	drv   Driver
	cur   RendererState
	stats *Stats
}

func newStateCache(d Driver, stats *Stats) *StateCache {
	return &StateCache{drv: d, stats: stats}
}

// SetInitial always issues the driver call.
func (c *StateCache) SetInitial(t Toggle, v bool) {
	c.cur.toggles[t] = v
	c.drv.SetToggle(t, v)
}

func (c *StateCache) Set(t Toggle, v bool) {
	if c.cur.toggles[t] == v {
		c.stats.BatchedStateChanges++
		return
	}
	c.drv.SetToggle(t, v)
	c.cur.toggles[t] = v
}

func (c *StateCache) Enable(t Toggle) {
	c.Set(t, true)
}

func (c *StateCache) Disable(t Toggle) {
	c.Set(t, false)
}

func (c *StateCache) Enabled(t Toggle) bool {
	return c.cur.toggles[t]
}

func (c *StateCache) BindTexture(id texture.ID) {
	if c.cur.boundTexture == id {
		c.stats.BatchedStateChanges++
		return
	}
	c.drv.BindTexture(id)
	c.cur.boundTexture = id
}

// forgetTexture drops id from the cache after the driver deleted it.
func (c *StateCache) forgetTexture(id texture.ID) {
	if c.cur.boundTexture == id {
		c.cur.boundTexture = 0
	}
}

func (c *StateCache) SetDepthWrite(v bool) {
	if c.cur.depthWrite == v {
		return
	}
	c.ForceDepthWrite(v)
}

func (c *StateCache) ForceDepthWrite(v bool) {
	c.drv.DepthMask(v)
	c.cur.depthWrite = v
}

// SetBlendAdditive switches the blend function only on change.
func (c *StateCache) SetBlendAdditive(v bool) {
	if c.cur.additiveBlend == v {
		return
	}
	c.ForceBlendAdditive(v)
}

func (c *StateCache) ForceBlendAdditive(v bool) {
	c.drv.BlendFunc(v)
	c.cur.additiveBlend = v
}

func (c *StateCache) Snapshot() RendererState {
	return c.cur
}

// Restore brings every toggle back to its value in s.
func (c *StateCache) Restore(s RendererState) {
	for t := Toggle(0); t < numToggles; t++ {
		c.Set(t, s.toggles[t])
	}
}
