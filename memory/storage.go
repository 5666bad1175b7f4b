// Package memory models the physical memory that backs page tables.
package memory

import "fmt"

// A Storage keeps the data of the simulated physical memory.
//
// The storage allocates its backing in page-sized units. A unit never
// touched by Write costs no host memory and reads back as zero, which
// is also how freshly allocated frames get their zero-filled content.
type Storage struct {
	unitSize uint64
	capacity uint64
	units    map[uint64][]byte
}

// NewStorage creates a Storage with the given capacity in bytes.
func NewStorage(capacity uint64) *Storage {
	return &Storage{
		unitSize: 4096,
		capacity: capacity,
		units:    make(map[uint64][]byte),
	}
}

// Capacity returns the number of bytes the storage can hold.
func (s *Storage) Capacity() uint64 {
	return s.capacity
}

func (s *Storage) parseAddress(addr uint64) (baseAddr, inUnitAddr uint64) {
	inUnitAddr = addr % s.unitSize
	baseAddr = addr - inUnitAddr
	return
}

func (s *Storage) unitForWrite(addr uint64) []byte {
	baseAddr, _ := s.parseAddress(addr)

	unit, ok := s.units[baseAddr]
	if !ok {
		unit = make([]byte, s.unitSize)
		s.units[baseAddr] = unit
	}

	return unit
}

func (s *Storage) checkRange(addr, length uint64) error {
	if addr+length > s.capacity {
		return fmt.Errorf(
			"accessing [0x%x, 0x%x) beyond the storage capacity 0x%x",
			addr, addr+length, s.capacity)
	}
	return nil
}

// Read returns length bytes starting at address. Bytes in units that
// were never written read as zero.
func (s *Storage) Read(address, length uint64) ([]byte, error) {
	if err := s.checkRange(address, length); err != nil {
		return nil, err
	}

	res := make([]byte, length)

	offset := uint64(0)
	for offset < length {
		currAddr := address + offset
		baseAddr, inUnitAddr := s.parseAddress(currAddr)

		lenInUnit := baseAddr + s.unitSize - currAddr
		if left := length - offset; left < lenInUnit {
			lenInUnit = left
		}

		if unit, ok := s.units[baseAddr]; ok {
			copy(res[offset:offset+lenInUnit],
				unit[inUnitAddr:inUnitAddr+lenInUnit])
		}

		offset += lenInUnit
	}

	return res, nil
}

// Write stores data starting at address.
func (s *Storage) Write(address uint64, data []byte) error {
	length := uint64(len(data))
	if err := s.checkRange(address, length); err != nil {
		return err
	}

	offset := uint64(0)
	for offset < length {
		currAddr := address + offset
		unit := s.unitForWrite(currAddr)
		_, inUnitAddr := s.parseAddress(currAddr)

		lenInUnit := s.unitSize - inUnitAddr
		if left := length - offset; left < lenInUnit {
			lenInUnit = left
		}

		copy(unit[inUnitAddr:inUnitAddr+lenInUnit],
			data[offset:offset+lenInUnit])

		offset += lenInUnit
	}

	return nil
}
