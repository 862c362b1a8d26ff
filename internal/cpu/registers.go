package cpu

import "fmt"

// Register identifies one of the CPU's registers, either an 8-bit register
// or a 16-bit pair.
type Register uint8

const (
	A Register = iota
	F
	B
	C
	D
	E
	H
	L
	AF
	BC
	DE
	HL
	SP
)

// pair reports whether reg names a 16-bit register.
func (reg Register) pair() bool {
	return reg >= AF
}

func (reg Register) String() string {
	switch reg {
	case A:
		return "A"
	case F:
		return "F"
	case B:
		return "B"
	case C:
		return "C"
	case D:
		return "D"
	case E:
		return "E"
	case H:
		return "H"
	case L:
		return "L"
	case AF:
		return "AF"
	case BC:
		return "BC"
	case DE:
		return "DE"
	case HL:
		return "HL"
	case SP:
		return "SP"
	}
	return fmt.Sprintf("Register(%d)", uint8(reg))
}

// Registers is the SM83 register file. The pairs AF, BC, DE and HL are views
// over the 8-bit fields with the high register as the most significant byte.
// The low nibble of F is always zero.
type Registers struct {
	A uint8
	F uint8
	B uint8
	C uint8
	D uint8
	E uint8
	H uint8
	L uint8

	SP uint16
	PC uint16
}

// Read8 returns the value of an 8-bit register.
func (r *Registers) Read8(reg Register) uint8 {
	switch reg {
	case A:
		return r.A
	case F:
		return r.F
	case B:
		return r.B
	case C:
		return r.C
	case D:
		return r.D
	case E:
		return r.E
	case H:
		return r.H
	case L:
		return r.L
	}
	panic(fmt.Sprintf("read8 of %s", reg))
}

// Write8 sets an 8-bit register. Writing F forces the unused low nibble to
// zero. No other register or flag is touched.
func (r *Registers) Write8(reg Register, value uint8) {
	switch reg {
	case A:
		r.A = value
	case F:
		r.F = value & 0xF0
	case B:
		r.B = value
	case C:
		r.C = value
	case D:
		r.D = value
	case E:
		r.E = value
	case H:
		r.H = value
	case L:
		r.L = value
	default:
		panic(fmt.Sprintf("write8 of %s", reg))
	}
}

// Read16 returns the value of a register pair or SP.
func (r *Registers) Read16(reg Register) uint16 {
	switch reg {
	case AF:
		return uint16(r.A)<<8 | uint16(r.F)
	case BC:
		return uint16(r.B)<<8 | uint16(r.C)
	case DE:
		return uint16(r.D)<<8 | uint16(r.E)
	case HL:
		return uint16(r.H)<<8 | uint16(r.L)
	case SP:
		return r.SP
	}
	panic(fmt.Sprintf("read16 of %s", reg))
}

// Write16 sets a register pair or SP. Writing AF forces the unused low
// nibble of F to zero.
func (r *Registers) Write16(reg Register, value uint16) {
	switch reg {
	case AF:
		r.A = uint8(value >> 8)
		r.F = uint8(value) & 0xF0
	case BC:
		r.B = uint8(value >> 8)
		r.C = uint8(value)
	case DE:
		r.D = uint8(value >> 8)
		r.E = uint8(value)
	case HL:
		r.H = uint8(value >> 8)
		r.L = uint8(value)
	case SP:
		r.SP = value
	default:
		panic(fmt.Sprintf("write16 of %s", reg))
	}
}

// ReadDec returns the value of a register pair and then decrements the pair.
// The address handed back is always the pre-decrement value, matching the
// hardware ordering of the (HL-) addressing mode.
func (r *Registers) ReadDec(reg Register) uint16 {
	value := r.Read16(reg)
	r.Write16(reg, value-1)
	return value
}

// ReadInc returns the value of a register pair and then increments the pair,
// matching the hardware ordering of the (HL+) addressing mode.
func (r *Registers) ReadInc(reg Register) uint16 {
	value := r.Read16(reg)
	r.Write16(reg, value+1)
	return value
}
