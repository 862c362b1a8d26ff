package cpu

import (
	"github.com/sm83dev/go-sm83/internal/bus"
)

// PrefixExtended is the reserved opcode byte that selects the extended
// instruction table.
const PrefixExtended = 0xCB

// ByteSource supplies instruction bytes to the decoder. A bounded source
// (such as a raw ROM slice) fails on reads past its end; a bus-backed source
// is total because the address space wraps.
type ByteSource interface {
	ReadByte(address uint16) (uint8, error)
}

type busSource struct {
	bus bus.Bus
}

func (s busSource) ReadByte(address uint16) (uint8, error) {
	return s.bus.Read(address), nil
}

// BusSource adapts a Bus so it can feed Decode.
func BusSource(b bus.Bus) ByteSource {
	return busSource{bus: b}
}

// Decode reads the instruction starting at addr and returns it together
// with its immediate bytes. It is a pure function of the byte source and
// the address: no CPU state is read or mutated, and decoding the same
// address against unchanged memory yields an identical Instruction.
//
// Reserved opcodes decode successfully to the invalid-opcode instruction,
// whose executor faults when run; the only decode failure is a short read
// from a bounded source.
func Decode(src ByteSource, addr uint16) (Instruction, error) {
	opcode, err := src.ReadByte(addr)
	if err != nil {
		return Instruction{}, decodeErrf("opcode at 0x%04X: %v", addr, err)
	}

	instr := Instruction{opcode: opcode, addr: addr}
	if opcode == PrefixExtended {
		sub, err := src.ReadByte(addr + 1)
		if err != nil {
			return Instruction{}, decodeErrf("extended opcode at 0x%04X: %v", addr+1, err)
		}
		instr.opcode = sub
		instr.def = &extendedTable[sub]
		return instr, nil
	}

	instr.def = &primaryTable[opcode]
	// Immediate bytes sit at fixed offsets from the instruction start. The
	// decoder carries them so executors never touch the byte source.
	for i := uint8(1); i < instr.def.length; i++ {
		b, err := src.ReadByte(addr + uint16(i))
		if err != nil {
			return Instruction{}, decodeErrf("operand %d of %s at 0x%04X: %v", i, instr.def.name, addr+uint16(i), err)
		}
		instr.imm[i-1] = b
	}
	return instr, nil
}
