// Package vm provides a software-managed, multi-level radix page table.
//
// The table is a 5-level, 512-way trie stored in physical page frames.
// The package owns the walk algorithm and the entry layout; where the
// frames live and how fresh frames are obtained are supplied by the
// caller through the TableStorage and FrameAllocator interfaces.
package vm

// Geometry of the paging scheme. One node fills exactly one frame, so
// each level consumes log2(PageSize/8) = 9 bits of the virtual page
// number.
const (
	Log2PageSize   = 12
	PageSize       = 1 << Log2PageSize
	EntriesPerNode = PageSize / 8
	BitsPerLevel   = 9
	NumLevels      = 5

	levelMask = EntriesPerNode - 1
)

// A VPN is a virtual page number. Only the low 45 bits select a trie
// path; bits 45 and up are never inspected, so two VPNs that agree in
// their low 45 bits resolve to the same mapping. Callers that use the
// high bits for sign extension or tagging must normalize them under
// their own convention.
type VPN uint64

// index returns the 9-bit trie index at the given level, level 0 being
// the root.
func (v VPN) index(level int) int {
	shift := BitsPerLevel * (NumLevels - 1 - level)
	return int(v>>shift) & levelMask
}

// A PPN is a physical page number.
type PPN uint64

// NoMapping marks the absence of a translation. Query returns it for
// unmapped VPNs, and passing it to Update as the target destroys the
// mapping instead of creating one. No FrameAllocator may ever return
// it.
const NoMapping = ^PPN(0)

// A Node is a read/write view of one page-table node: 512 eight-byte
// entries filling one frame.
type Node interface {
	Entry(index int) PTE
	SetEntry(index int, entry PTE)
}

// TableStorage resolves a physical page number into the node stored in
// that frame. The returned view must stay valid for the duration of
// the call that requested it.
type TableStorage interface {
	Node(ppn PPN) Node
}

// FrameAllocator hands out fresh, zero-filled physical page frames for
// intermediate table nodes. It must not fail; exhaustion is the
// allocator's own contract to define.
type FrameAllocator interface {
	AllocateFrame() PPN
}
