package memory

import (
	"encoding/binary"
	"log"

	"github.com/sarchlab/pagewalk/vm"
)

// TableStorage adapts a Storage into the node views that the page
// table walker dereferences. Nodes are stored the way a hardware
// walker would find them: 512 little-endian eight-byte entries filling
// one 4 KB frame.
type TableStorage struct {
	storage *Storage
}

// NewTableStorage creates a TableStorage over the given storage.
func NewTableStorage(storage *Storage) *TableStorage {
	return &TableStorage{storage: storage}
}

// Node returns a write-through view of the node kept in the given
// frame.
func (t *TableStorage) Node(ppn vm.PPN) vm.Node {
	return node{
		storage: t.storage,
		base:    uint64(ppn) << vm.Log2PageSize,
	}
}

type node struct {
	storage *Storage
	base    uint64
}

func (n node) Entry(index int) vm.PTE {
	data, err := n.storage.Read(n.base+uint64(index)*8, 8)
	if err != nil {
		log.Panic(err)
	}

	return vm.PTE(binary.LittleEndian.Uint64(data))
}

func (n node) SetEntry(index int, entry vm.PTE) {
	data := make([]byte, 8)
	binary.LittleEndian.PutUint64(data, uint64(entry))

	err := n.storage.Write(n.base+uint64(index)*8, data)
	if err != nil {
		log.Panic(err)
	}
}
