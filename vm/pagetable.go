package vm

// A PageTable creates, destroys, and resolves virtual-to-physical
// mappings over nodes kept in a TableStorage. It holds no reference to
// any particular table: the root frame is supplied on every call, so
// one PageTable can serve any number of address spaces.
//
// The PageTable performs no locking. Calls against the same root must
// be serialized by the caller.
type PageTable struct {
	HookableBase

	storage   TableStorage
	allocator FrameAllocator
}

// NewPageTable creates a PageTable over the given storage and
// allocator.
func NewPageTable(storage TableStorage, allocator FrameAllocator) *PageTable {
	return &PageTable{
		storage:   storage,
		allocator: allocator,
	}
}

// Update creates or destroys the mapping for vpn in the table rooted
// at root. If ppn is NoMapping the existing mapping, if any, is
// destroyed; otherwise vpn is mapped to ppn, silently replacing any
// previous mapping. The old frame, on a replace, is not reclaimed
// here.
func (pt *PageTable) Update(root PPN, vpn VPN, ppn PPN) {
	if ppn == NoMapping {
		pt.destroyMapping(root, vpn)
		return
	}

	pt.createMapping(root, vpn, ppn)
}

// Query returns the physical page number vpn resolves to in the table
// rooted at root, or NoMapping if no translation exists. It never
// modifies the table.
func (pt *PageTable) Query(root PPN, vpn VPN) PPN {
	result := NoMapping

	leaf, ok := pt.walkReadOnly(root, vpn)
	if ok {
		entry := leaf.Entry(vpn.index(NumLevels - 1))
		if entry.Valid() {
			result = entry.Frame()
		}
	}

	pt.InvokeHook(HookCtx{
		Domain: pt,
		Pos:    HookPosQuery,
		Detail: WalkInfo{Root: root, VPN: vpn, PPN: result},
	})

	return result
}

// walkReadOnly follows pointer entries through the first four levels
// and returns the leaf node. It returns false as soon as a pointer
// entry on the path is invalid, meaning vpn has no translation.
func (pt *PageTable) walkReadOnly(root PPN, vpn VPN) (Node, bool) {
	node := pt.storage.Node(root)
	for level := 0; level < NumLevels-1; level++ {
		entry := node.Entry(vpn.index(level))
		if !entry.Valid() {
			return nil, false
		}

		node = pt.storage.Node(entry.Frame())
	}

	return node, true
}

// createMapping walks in allocating mode, linking a fresh zero-filled
// node wherever a pointer entry is missing, then overwrites the leaf
// entry.
func (pt *PageTable) createMapping(root PPN, vpn VPN, ppn PPN) {
	node := pt.storage.Node(root)
	for level := 0; level < NumLevels-1; level++ {
		index := vpn.index(level)
		entry := node.Entry(index)

		if !entry.Valid() {
			frame := pt.allocator.AllocateFrame()
			entry = NewPTE(frame)
			node.SetEntry(index, entry)

			pt.InvokeHook(HookCtx{
				Domain: pt,
				Pos:    HookPosNodeAlloc,
				Detail: WalkInfo{Root: root, VPN: vpn, PPN: frame, Level: level + 1},
			})
		}

		node = pt.storage.Node(entry.Frame())
	}

	node.SetEntry(vpn.index(NumLevels-1), NewPTE(ppn))

	pt.InvokeHook(HookCtx{
		Domain: pt,
		Pos:    HookPosMap,
		Detail: WalkInfo{Root: root, VPN: vpn, PPN: ppn},
	})
}

// destroyMapping clears the leaf entry for vpn. If the path to the
// leaf is incomplete the call is a no-op: destroying a mapping that
// does not exist is not an error. Intermediate nodes on the path stay
// allocated either way.
func (pt *PageTable) destroyMapping(root PPN, vpn VPN) {
	leaf, ok := pt.walkReadOnly(root, vpn)
	if ok {
		leaf.SetEntry(vpn.index(NumLevels-1), 0)
	}

	pt.InvokeHook(HookCtx{
		Domain: pt,
		Pos:    HookPosUnmap,
		Detail: WalkInfo{Root: root, VPN: vpn, PPN: NoMapping},
	})
}
