package memory

import (
	"log"

	"github.com/sarchlab/pagewalk/vm"
)

// An Allocator hands out physical page frames from a Storage, one
// after another, starting at frame 0. Frames are zero-filled when
// handed out because untouched storage units read as zero. Frames are
// never returned; a table walker never frees the nodes it allocates.
type Allocator struct {
	numFrames uint64
	nextFrame vm.PPN
}

// NewAllocator creates an Allocator that covers every frame of the
// given storage.
func NewAllocator(storage *Storage) *Allocator {
	return &Allocator{
		numFrames: storage.Capacity() / vm.PageSize,
	}
}

// AllocateFrame returns the next free frame. It panics when the
// storage is exhausted; callers size the storage for their workload.
func (a *Allocator) AllocateFrame() vm.PPN {
	if uint64(a.nextFrame) >= a.numFrames {
		log.Panicf("out of physical frames, all %d allocated", a.numFrames)
	}

	frame := a.nextFrame
	a.nextFrame++

	return frame
}

// NumAllocated returns how many frames have been handed out so far.
func (a *Allocator) NumAllocated() uint64 {
	return uint64(a.nextFrame)
}
