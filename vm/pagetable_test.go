package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/mock/gomock"
)

type fakeNode [EntriesPerNode]PTE

func (n *fakeNode) Entry(index int) PTE {
	return n[index]
}

func (n *fakeNode) SetEntry(index int, entry PTE) {
	n[index] = entry
}

// fakeBacking is an in-memory stand-in for the physical memory that
// holds table nodes. It doubles as the frame allocator.
type fakeBacking struct {
	nodes     map[PPN]*fakeNode
	nextFrame PPN
}

func newFakeBacking() *fakeBacking {
	return &fakeBacking{nodes: make(map[PPN]*fakeNode)}
}

func (b *fakeBacking) Node(ppn PPN) Node {
	return b.nodes[ppn]
}

func (b *fakeBacking) AllocateFrame() PPN {
	frame := b.nextFrame
	b.nextFrame++
	b.nodes[frame] = &fakeNode{}
	return frame
}

type collectingHook struct {
	ctxs []HookCtx
}

func (h *collectingHook) Func(ctx HookCtx) {
	h.ctxs = append(h.ctxs, ctx)
}

func (h *collectingHook) at(pos *HookPos) []WalkInfo {
	infos := []WalkInfo{}
	for _, ctx := range h.ctxs {
		if ctx.Pos == pos {
			infos = append(infos, ctx.Detail.(WalkInfo))
		}
	}
	return infos
}

var _ = Describe("PageTable", func() {
	var (
		backing *fakeBacking
		root    PPN
		pt      *PageTable
	)

	BeforeEach(func() {
		backing = newFakeBacking()
		root = backing.AllocateFrame()
		pt = NewPageTable(backing, backing)
	})

	It("should report no mapping on a fresh table", func() {
		Expect(pt.Query(root, 0x1000)).To(Equal(NoMapping))
	})

	It("should map and resolve", func() {
		pt.Update(root, 0x12345, 0x678)

		Expect(pt.Query(root, 0x12345)).To(Equal(PPN(0x678)))
	})

	It("should consume the VPN most-significant group first", func() {
		pt.Update(root, VPN(1)<<36, 0x678)

		Expect(backing.Node(root).Entry(1).Valid()).To(BeTrue())
		Expect(backing.Node(root).Entry(0).Valid()).To(BeFalse())
	})

	It("should allocate one node per level on the first map", func() {
		before := backing.nextFrame

		pt.Update(root, 0x1000, 7)

		Expect(backing.nextFrame - before).To(Equal(PPN(NumLevels - 1)))
	})

	It("should reuse the path of an earlier map", func() {
		pt.Update(root, 0x1000, 7)
		before := backing.nextFrame

		pt.Update(root, 0x1001, 8)

		Expect(backing.nextFrame).To(Equal(before))
		Expect(pt.Query(root, 0x1000)).To(Equal(PPN(7)))
		Expect(pt.Query(root, 0x1001)).To(Equal(PPN(8)))
	})

	It("should replace on remap without touching the structure", func() {
		pt.Update(root, 0x1000, 7)
		before := backing.nextFrame

		pt.Update(root, 0x1000, 9)

		Expect(pt.Query(root, 0x1000)).To(Equal(PPN(9)))
		Expect(backing.nextFrame).To(Equal(before))
	})

	It("should not disturb siblings on map or unmap", func() {
		pt.Update(root, 0x1000, 7)
		pt.Update(root, 0x1001, 8)
		pt.Update(root, VPN(5)<<36|0x1000, 9)

		pt.Update(root, 0x1001, NoMapping)

		Expect(pt.Query(root, 0x1000)).To(Equal(PPN(7)))
		Expect(pt.Query(root, 0x1001)).To(Equal(NoMapping))
		Expect(pt.Query(root, VPN(5)<<36|0x1000)).To(Equal(PPN(9)))
	})

	It("should treat unmapping an unmapped VPN as a no-op", func() {
		pt.Update(root, 0x1000, NoMapping)
		pt.Update(root, 0x1000, NoMapping)

		Expect(pt.Query(root, 0x1000)).To(Equal(NoMapping))
	})

	It("should keep intermediate nodes after an unmap", func() {
		pt.Update(root, 0x1000, 7)
		allocated := backing.nextFrame

		pt.Update(root, 0x1000, NoMapping)
		pt.Update(root, 0x1000, 7)

		Expect(backing.nextFrame).To(Equal(allocated))
		Expect(pt.Query(root, 0x1000)).To(Equal(PPN(7)))
	})

	It("should ignore VPN bits above bit 44", func() {
		pt.Update(root, 0x1000, 7)

		Expect(pt.Query(root, VPN(1)<<45|0x1000)).To(Equal(PPN(7)))
		Expect(pt.Query(root, VPN(1)<<63|0x1000)).To(Equal(PPN(7)))

		pt.Update(root, VPN(1)<<50|0x1000, NoMapping)

		Expect(pt.Query(root, 0x1000)).To(Equal(NoMapping))
	})

	It("should map, unmap, and stay unmapped", func() {
		Expect(pt.Query(root, 0x1000)).To(Equal(NoMapping))

		pt.Update(root, 0x1000, 7)
		Expect(pt.Query(root, 0x1000)).To(Equal(PPN(7)))

		pt.Update(root, 0x1000, NoMapping)
		Expect(pt.Query(root, 0x1000)).To(Equal(NoMapping))
	})

	It("should keep separate roots independent", func() {
		otherRoot := backing.AllocateFrame()

		pt.Update(root, 0x2000, 3)
		pt.Update(otherRoot, 0x2000, 4)

		Expect(pt.Query(root, 0x2000)).To(Equal(PPN(3)))
		Expect(pt.Query(otherRoot, 0x2000)).To(Equal(PPN(4)))
	})

	Context("when hooks are attached", func() {
		var hook *collectingHook

		BeforeEach(func() {
			hook = &collectingHook{}
			pt.AcceptHook(hook)
		})

		It("should report maps and intermediate allocations", func() {
			pt.Update(root, 0x1000, 7)

			maps := hook.at(HookPosMap)
			Expect(maps).To(HaveLen(1))
			Expect(maps[0]).To(Equal(
				WalkInfo{Root: root, VPN: 0x1000, PPN: 7}))

			allocs := hook.at(HookPosNodeAlloc)
			Expect(allocs).To(HaveLen(NumLevels - 1))
			for i, info := range allocs {
				Expect(info.Level).To(Equal(i + 1))
			}
		})

		It("should report queries with their outcome", func() {
			pt.Update(root, 0x1000, 7)

			pt.Query(root, 0x1000)
			pt.Query(root, 0x2000)

			queries := hook.at(HookPosQuery)
			Expect(queries).To(HaveLen(2))
			Expect(queries[0].PPN).To(Equal(PPN(7)))
			Expect(queries[1].PPN).To(Equal(NoMapping))
		})

		It("should report unmaps", func() {
			pt.Update(root, 0x1000, NoMapping)

			Expect(hook.at(HookPosUnmap)).To(HaveLen(1))
		})
	})

	Context("with mocked collaborators", func() {
		var (
			mockCtrl  *gomock.Controller
			storage   *MockTableStorage
			allocator *MockFrameAllocator
			rootNode  *MockNode
		)

		BeforeEach(func() {
			mockCtrl = gomock.NewController(GinkgoT())
			storage = NewMockTableStorage(mockCtrl)
			allocator = NewMockFrameAllocator(mockCtrl)
			rootNode = NewMockNode(mockCtrl)
			pt = NewPageTable(storage, allocator)
		})

		It("should neither allocate nor write when querying a missing path", func() {
			storage.EXPECT().Node(PPN(9)).Return(rootNode)
			rootNode.EXPECT().Entry(0).Return(PTE(0))

			Expect(pt.Query(9, 0)).To(Equal(NoMapping))
		})

		It("should neither allocate nor write when unmapping a missing path", func() {
			storage.EXPECT().Node(PPN(9)).Return(rootNode)
			rootNode.EXPECT().Entry(0).Return(PTE(0))

			pt.Update(9, 0, NoMapping)
		})

		It("should stop the walk at the first invalid pointer entry", func() {
			level2 := NewMockNode(mockCtrl)
			storage.EXPECT().Node(PPN(9)).Return(rootNode)
			rootNode.EXPECT().Entry(0).Return(NewPTE(33))
			storage.EXPECT().Node(PPN(33)).Return(level2)
			level2.EXPECT().Entry(0).Return(PTE(0))

			Expect(pt.Query(9, 0)).To(Equal(NoMapping))
		})
	})
})
