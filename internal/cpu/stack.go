package cpu

// opPUSH pushes a register pair onto the stack: SP is decremented, the high
// byte written, SP decremented again, the low byte written, leaving SP at
// the low byte.
//
//	PUSH rr
//	rr = BC, DE, HL, AF
func opPUSH(c *CPU, instr *Instruction) (OpResult, error) {
	c.push16(c.Registers.Read16(instr.def.operands[0].Reg))
	return instr.next(), nil
}

// opPOP pops a register pair off the stack in the inverse order of PUSH,
// incrementing SP twice. POP AF forces the unused low nibble of F back to
// zero even if the stored byte had garbage bits there.
//
//	POP rr
//	rr = BC, DE, HL, AF
func opPOP(c *CPU, instr *Instruction) (OpResult, error) {
	c.Registers.Write16(instr.def.operands[0].Reg, c.pop16())
	return instr.next(), nil
}
