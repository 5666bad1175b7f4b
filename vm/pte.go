package vm

// A PTE is one page-table entry. Bit 0 is the valid flag and bits
// 12-63 hold a physical page number: the next-level node for the first
// four levels, the mapped frame at the leaf level. The zero value is
// an invalid entry, so a freshly zeroed node contains no entries.
type PTE uint64

// NewPTE packs a physical page number into a valid entry.
func NewPTE(frame PPN) PTE {
	return PTE(frame)<<Log2PageSize | 1
}

// Valid reports whether the entry is in use.
func (e PTE) Valid() bool {
	return e&1 != 0
}

// Frame returns the physical page number the entry carries. Only
// meaningful when the entry is valid.
func (e PTE) Frame() PPN {
	return PPN(e >> Log2PageSize)
}
