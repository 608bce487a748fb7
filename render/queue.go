// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"log"

	"meshrender/conlog"

	"github.com/go-gl/mathgl/mgl32"
)

const MeshQueueMaxSize = 4096

// queueEntry is one queued submission. All references are borrowed and
// only valid until the next flush.
type queueEntry struct {
	meshes []*Mesh
	// backing store for single mesh submissions
	mesh0     [1]*Mesh
	transform *mgl32.Mat4
	mods      *Modifiers
	depthKey  float32
}

type meshQueue struct {
	buf  [MeshQueueMaxSize]queueEntry
	ptrs [MeshQueueMaxSize]*queueEntry
	size int
}

func newMeshQueue() *meshQueue {
	q := &meshQueue{}
	q.reset()
	return q
}

func (q *meshQueue) reset() {
	q.size = 0
	for i := range q.buf {
		q.ptrs[i] = &q.buf[i]
	}
}

// entries returns the queued entries in their current order.
func (q *meshQueue) entries() []*queueEntry {
	return q.ptrs[:q.size]
}

func (r *Renderer) nextEntry() *queueEntry {
	if !r.frameStarted {
		log.Panicf("render: mesh submitted outside of a frame")
	}
	if r.queue.size >= MeshQueueMaxSize {
		log.Panicf("render: mesh queue full (%d entries)", MeshQueueMaxSize)
	}
	e := r.queue.ptrs[r.queue.size]
	r.queue.size++
	return e
}

// SubmitMesh queues a single mesh. transform, mods and center may be nil.
func (r *Renderer) SubmitMesh(mesh *Mesh, transform *mgl32.Mat4, mods *Modifiers, center *mgl32.Vec3) {
	e := r.nextEntry()
	e.mesh0[0] = mesh
	e.meshes = e.mesh0[:]
	r.fillEntry(e, transform, mods, center)
}

// SubmitMeshList queues meshes that share one transform, one set of modifiers
// and one sort key.
func (r *Renderer) SubmitMeshList(meshes []*Mesh, transform *mgl32.Mat4, mods *Modifiers, center *mgl32.Vec3) {
	if len(meshes) == 0 {
		conlog.Warnf("render: empty mesh list submitted, not drawing this\n")
	}
	e := r.nextEntry()
	e.mesh0[0] = nil
	e.meshes = meshes
	r.fillEntry(e, transform, mods, center)
}

func (r *Renderer) fillEntry(e *queueEntry, transform *mgl32.Mat4, mods *Modifiers, center *mgl32.Vec3) {
	if mods == nil {
		mods = &defaultModifiers
	}
	e.transform = transform
	e.mods = mods
	e.depthKey = r.depthKey(e.meshes, center)
}

// depthKey returns the frustum space depth of center, or of the bounding box
// centers of meshes when center is nil. The box centers are scaled by n/2,
// which averages only for two meshes.
func (r *Renderer) depthKey(meshes []*Mesh, center *mgl32.Vec3) float32 {
	var c mgl32.Vec3
	if center != nil {
		c = *center
	} else {
		mult := float32(len(meshes)) / 2
		for _, m := range meshes {
			c[0] += (m.BBox.Min[0] + m.BBox.Max[0]) * mult
			c[1] += (m.BBox.Min[1] + m.BBox.Max[1]) * mult
			c[2] += (m.BBox.Min[2] + m.BBox.Max[2]) * mult
		}
	}
	p := r.worldToFrustum.Mul4x1(c.Vec4(1))
	if p[3] != 0 {
		return p[2] / p[3]
	}
	return p[2]
}
