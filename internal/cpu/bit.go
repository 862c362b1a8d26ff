package cpu

import "github.com/sm83dev/go-sm83/pkg/bits"

// bitIndex extracts the bit index 0-7 encoded in an extended opcode.
func (i *Instruction) bitIndex() uint8 {
	return i.opcode >> 3 & 7
}

// opBIT tests a single bit of the operand.
//
//	BIT b, n
//	b = 0-7, n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if the tested bit is zero.
//	N - Reset.
//	H - Set.
//	C - Not affected.
func opBIT(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.Registers.setFlags(
		flagZ(!bits.Test(value, instr.bitIndex())),
		flagN(false),
		flagH(true),
	)
	return instr.next(), nil
}

// opSET unconditionally sets a single bit of the operand. No flags are
// affected.
//
//	SET b, n
//	b = 0-7, n = B, C, D, E, H, L, (HL), A
func opSET(c *CPU, instr *Instruction) (OpResult, error) {
	err := c.readModifyWrite(instr, instr.def.operands[0], func(v uint8) uint8 {
		return bits.Set(v, instr.bitIndex())
	})
	if err != nil {
		return OpResult{}, err
	}
	return instr.next(), nil
}

// opRES unconditionally resets a single bit of the operand. No flags are
// affected.
//
//	RES b, n
//	b = 0-7, n = B, C, D, E, H, L, (HL), A
func opRES(c *CPU, instr *Instruction) (OpResult, error) {
	err := c.readModifyWrite(instr, instr.def.operands[0], func(v uint8) uint8 {
		return bits.Reset(v, instr.bitIndex())
	})
	if err != nil {
		return OpResult{}, err
	}
	return instr.next(), nil
}
