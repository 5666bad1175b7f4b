package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagewalk/memory"
	"github.com/sarchlab/pagewalk/vm"
)

var _ = Describe("TableStorage", func() {
	var (
		storage      *memory.Storage
		tableStorage *memory.TableStorage
	)

	BeforeEach(func() {
		storage = memory.NewStorage(16 * vm.PageSize)
		tableStorage = memory.NewTableStorage(storage)
	})

	It("should read untouched nodes as all invalid", func() {
		node := tableStorage.Node(3)

		for i := 0; i < vm.EntriesPerNode; i++ {
			Expect(node.Entry(i).Valid()).To(BeFalse())
		}
	})

	It("should write entries through to the storage", func() {
		node := tableStorage.Node(2)
		node.SetEntry(5, vm.NewPTE(0x42))

		Expect(tableStorage.Node(2).Entry(5)).To(Equal(vm.NewPTE(0x42)))
	})

	It("should lay entries out as little-endian eight-byte words", func() {
		node := tableStorage.Node(1)
		node.SetEntry(1, vm.NewPTE(0x42))

		raw, err := storage.Read(1*vm.PageSize+8, 8)

		Expect(err).ToNot(HaveOccurred())
		// 0x42<<12|1 = 0x42001, little-endian
		Expect(raw).To(Equal([]byte{0x01, 0x20, 0x04, 0, 0, 0, 0, 0}))
	})

	It("should keep nodes in distinct frames apart", func() {
		tableStorage.Node(0).SetEntry(0, vm.NewPTE(1))
		tableStorage.Node(1).SetEntry(0, vm.NewPTE(2))

		Expect(tableStorage.Node(0).Entry(0).Frame()).To(Equal(vm.PPN(1)))
		Expect(tableStorage.Node(1).Entry(0).Frame()).To(Equal(vm.PPN(2)))
	})
})
