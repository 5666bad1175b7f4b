package vm

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("PTE", func() {
	It("should be invalid when zero", func() {
		Expect(PTE(0).Valid()).To(BeFalse())
	})

	It("should pack the frame above the page-offset bits", func() {
		entry := NewPTE(0x42)

		Expect(uint64(entry)).To(Equal(uint64(0x42)<<12 | 1))
		Expect(entry.Valid()).To(BeTrue())
		Expect(entry.Frame()).To(Equal(PPN(0x42)))
	})

	It("should keep the full 52-bit frame field", func() {
		frame := PPN(1)<<51 | 0x123

		entry := NewPTE(frame)

		Expect(entry.Frame()).To(Equal(frame))
	})
})
