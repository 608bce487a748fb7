// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"slices"
)

// compareEntries orders by sort priority, then front to back.
func compareEntries(a, b *queueEntry) int {
	switch {
	case a.mods.SortPriority < b.mods.SortPriority:
		return -1
	case a.mods.SortPriority > b.mods.SortPriority:
		return 1
	case a.depthKey < b.depthKey:
		return -1
	case a.depthKey > b.depthKey:
		return 1
	}
	return 0
}

func (q *meshQueue) sort() {
	slices.SortFunc(q.entries(), compareEntries)
}
