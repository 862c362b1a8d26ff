package cpu

// opAND ands the operand into the accumulator.
//
//	AND n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set.
//	C - Reset.
func opAND(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.Registers.A &= value
	c.Registers.setFlags(
		flagZ(c.Registers.A == 0),
		flagN(false),
		flagH(true),
		flagC(false),
	)
	return instr.next(), nil
}

// opXOR xors the operand into the accumulator.
//
//	XOR n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func opXOR(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.Registers.A ^= value
	c.Registers.setFlags(
		flagZ(c.Registers.A == 0),
		flagN(false),
		flagH(false),
		flagC(false),
	)
	return instr.next(), nil
}

// opOR ors the operand into the accumulator.
//
//	OR n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Reset.
//	C - Reset.
func opOR(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.Registers.A |= value
	c.Registers.setFlags(
		flagZ(c.Registers.A == 0),
		flagN(false),
		flagH(false),
		flagC(false),
	)
	return instr.next(), nil
}

// opCPL complements the accumulator.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Set.
//	H - Set.
//	C - Not affected.
func opCPL(c *CPU, instr *Instruction) (OpResult, error) {
	c.Registers.A = ^c.Registers.A
	c.Registers.setFlags(flagN(true), flagH(true))
	return instr.next(), nil
}
