package cpu

import "github.com/sm83dev/go-sm83/pkg/bits"

// rotateLeftCarry rotates value left by one bit. Bit 7 is copied to both the
// carry flag and bit 0.
//
//	RLC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeftCarry(value uint8) uint8 {
	carry := value >> 7
	result := value<<1 | carry
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(carry == 1),
	)
	return result
}

// rotateRightCarry rotates value right by one bit. Bit 0 is copied to both
// the carry flag and bit 7.
//
//	RRC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRightCarry(value uint8) uint8 {
	carry := value & 1
	result := value>>1 | carry<<7
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(carry == 1),
	)
	return result
}

// rotateLeft rotates value left by one bit through the carry flag: carry
// moves to bit 0 and bit 7 becomes the new carry.
//
//	RL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) rotateLeft(value uint8) uint8 {
	result := value<<1 | c.Registers.carryBit()
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(value>>7 == 1),
	)
	return result
}

// rotateRight rotates value right by one bit through the carry flag: carry
// moves to bit 7 and bit 0 becomes the new carry.
//
//	RR n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) rotateRight(value uint8) uint8 {
	result := value>>1 | c.Registers.carryBit()<<7
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(value&1 == 1),
	)
	return result
}

// shiftLeft shifts value left by one bit, filling bit 0 with zero.
//
//	SLA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 7 data.
func (c *CPU) shiftLeft(value uint8) uint8 {
	result := value << 1
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(value>>7 == 1),
	)
	return result
}

// shiftRightArithmetic shifts value right by one bit, preserving bit 7.
//
//	SRA n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightArithmetic(value uint8) uint8 {
	result := value>>1 | value&0x80
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(value&1 == 1),
	)
	return result
}

// shiftRightLogical shifts value right by one bit, filling bit 7 with zero.
//
//	SRL n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Contains old bit 0 data.
func (c *CPU) shiftRightLogical(value uint8) uint8 {
	result := value >> 1
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(value&1 == 1),
	)
	return result
}

// swap exchanges the high and low nibbles of value.
//
//	SWAP n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func (c *CPU) swap(value uint8) uint8 {
	result := bits.Swap(value)
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(false),
		flagC(false),
	)
	return result
}

// rotateShift wraps a rotate/shift helper as an executor over the extended
// table's register or (HL) operand.
func rotateShift(f func(*CPU, uint8) uint8) opFn {
	return func(c *CPU, instr *Instruction) (OpResult, error) {
		err := c.readModifyWrite(instr, instr.def.operands[0], func(v uint8) uint8 {
			return f(c, v)
		})
		if err != nil {
			return OpResult{}, err
		}
		return instr.next(), nil
	}
}

var (
	opRLC  = rotateShift((*CPU).rotateLeftCarry)
	opRRC  = rotateShift((*CPU).rotateRightCarry)
	opRL   = rotateShift((*CPU).rotateLeft)
	opRR   = rotateShift((*CPU).rotateRight)
	opSLA  = rotateShift((*CPU).shiftLeft)
	opSRA  = rotateShift((*CPU).shiftRightArithmetic)
	opSRL  = rotateShift((*CPU).shiftRightLogical)
	opSWAP = rotateShift((*CPU).swap)
)

// accumulatorRotate wraps a rotate helper as an executor for the one-byte
// accumulator short forms. Unlike the extended-table forms these always
// clear Z, N and H regardless of the result, a historical asymmetry the
// hardware documents.
func accumulatorRotate(f func(*CPU, uint8) uint8) opFn {
	return func(c *CPU, instr *Instruction) (OpResult, error) {
		c.Registers.A = f(c, c.Registers.A)
		c.Registers.setFlags(flagZ(false), flagN(false), flagH(false))
		return instr.next(), nil
	}
}

var (
	opRLCA = accumulatorRotate((*CPU).rotateLeftCarry)
	opRLA  = accumulatorRotate((*CPU).rotateLeft)
	opRRCA = accumulatorRotate((*CPU).rotateRightCarry)
	opRRA  = accumulatorRotate((*CPU).rotateRight)
)
