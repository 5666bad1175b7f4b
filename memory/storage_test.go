package memory_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/sarchlab/pagewalk/memory"
)

var _ = Describe("Storage", func() {
	It("should read and write in a single unit", func() {
		storage := memory.NewStorage(4096)
		storage.Write(0, []byte{1, 2, 3, 4})

		res, _ := storage.Read(0, 2)
		Expect(res).To(Equal([]byte{1, 2}))

		res, _ = storage.Read(1, 2)
		Expect(res).To(Equal([]byte{2, 3}))
	})

	It("should read and write across units", func() {
		storage := memory.NewStorage(8192)
		storage.Write(4094, []byte{1, 2, 3, 4})

		res, _ := storage.Read(4094, 4)
		Expect(res).To(Equal([]byte{1, 2, 3, 4}))
	})

	It("should read zeros from units never written", func() {
		storage := memory.NewStorage(8192)

		res, err := storage.Read(4096, 8)

		Expect(err).ToNot(HaveOccurred())
		Expect(res).To(Equal(make([]byte, 8)))
	})

	It("should return an error when reading over the capacity", func() {
		storage := memory.NewStorage(4096)

		_, err := storage.Read(4092, 8)

		Expect(err).To(HaveOccurred())
	})

	It("should return an error when writing over the capacity", func() {
		storage := memory.NewStorage(4096)

		err := storage.Write(4096, []byte{1})

		Expect(err).To(HaveOccurred())
	})
})
