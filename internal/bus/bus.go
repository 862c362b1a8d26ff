// Package bus defines the memory capability consumed by the CPU core. The
// core holds exactly one Bus for its lifetime and is the only component that
// touches it during a step; everything mapped behind it (cartridge, RAM, I/O
// registers) is the implementer's concern.
package bus

// Bus is a byte-addressed 16-bit address space. Both methods are total:
// unmapped-address handling belongs to the implementation, never to the CPU.
type Bus interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8)
}
