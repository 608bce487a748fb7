// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"slices"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestSortScenario(t *testing.T) {
	r, d := newTestRenderer(t)
	meshes := map[string]*Mesh{
		"p0d5": testMesh(0),
		"p0d2": testMesh(0),
		"p1d1": testMesh(0),
	}
	// translucent so every entry shows up in the transparent pass
	mods := []Modifiers{DefaultModifiers(), DefaultModifiers(), DefaultModifiers()}
	for i := range mods {
		mods[i].DiffuseColor[3] = .5
	}
	mods[2].SortPriority = 1

	r.StartFrame()
	r.SubmitMesh(meshes["p0d5"], nil, &mods[0], &mgl32.Vec3{0, 0, 5})
	r.SubmitMesh(meshes["p0d2"], nil, &mods[1], &mgl32.Vec3{0, 0, 2})
	r.SubmitMesh(meshes["p1d1"], nil, &mods[2], &mgl32.Vec3{0, 0, 1})
	r.EndFrame()

	front := []string{"p0d2", "p0d5", "p1d1"}
	if got := drawNames(d.depthDraws(), meshes); !slices.Equal(got, front) {
		t.Errorf("depth pass order %v, want %v", got, front)
	}
	back := slices.Clone(front)
	slices.Reverse(back)
	if got := drawNames(d.colorDraws(), meshes); !slices.Equal(got, back) {
		t.Errorf("transparent pass order %v, want %v", got, back)
	}
}

func TestCompareEntries(t *testing.T) {
	mk := func(prio int, depth float32) *queueEntry {
		return &queueEntry{mods: &Modifiers{SortPriority: prio}, depthKey: depth}
	}
	tests := []struct {
		a, b *queueEntry
		want int
	}{
		{mk(0, 5), mk(1, 1), -1},
		{mk(2, -100), mk(1, 100), 1},
		{mk(0, 1), mk(0, 2), -1},
		{mk(0, 3), mk(0, 2), 1},
		{mk(0, 2), mk(0, 2), 0},
	}
	for i, test := range tests {
		if got := compareEntries(test.a, test.b); got != test.want {
			t.Errorf("%d: compareEntries = %d, want %d", i, got, test.want)
		}
	}
}

func TestPriorityDominatesDepth(t *testing.T) {
	q := newMeshQueue()
	prios := []int{3, 1, 2, 1, 0, 3, 2}
	depths := []float32{-5, 9, 0, 1, 100, -7, 3}
	mods := make([]Modifiers, len(prios))
	for i := range prios {
		mods[i].SortPriority = prios[i]
		e := q.ptrs[q.size]
		e.mods = &mods[i]
		e.depthKey = depths[i]
		q.size++
	}
	q.sort()
	es := q.entries()
	for i := 1; i < len(es); i++ {
		a, b := es[i-1], es[i]
		if a.mods.SortPriority > b.mods.SortPriority {
			t.Errorf("priority %d before %d", a.mods.SortPriority, b.mods.SortPriority)
		}
		if a.mods.SortPriority == b.mods.SortPriority && a.depthKey > b.depthKey {
			t.Errorf("depth %v before %v", a.depthKey, b.depthKey)
		}
	}
}
