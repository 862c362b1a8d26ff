package cpu

// conditionMet reports whether the definition's branch condition holds
// against the current flags. condNone always holds.
func (c *CPU) conditionMet(cond condition) bool {
	switch cond {
	case condNone:
		return true
	case condNZ:
		return !c.Registers.isFlagSet(FlagZero)
	case condZ:
		return c.Registers.isFlagSet(FlagZero)
	case condNC:
		return !c.Registers.isFlagSet(FlagCarry)
	case condC:
		return c.Registers.isFlagSet(FlagCarry)
	}
	return false
}

// opJP jumps to a 16-bit immediate address.
//
//	JP nn / JP cc, nn
//	cc = NZ, Z, NC, C
func opJP(c *CPU, instr *Instruction) (OpResult, error) {
	if !c.conditionMet(instr.def.cond) {
		return instr.notTaken(), nil
	}
	return instr.taken(instr.Imm16()), nil
}

// opJPHL jumps to the address held in HL.
func opJPHL(c *CPU, instr *Instruction) (OpResult, error) {
	return instr.taken(c.Registers.Read16(HL)), nil
}

// opJR jumps to an address relative to the following instruction.
//
//	JR e / JR cc, e
//	cc = NZ, Z, NC, C
//	e = 8-bit signed displacement
func opJR(c *CPU, instr *Instruction) (OpResult, error) {
	if !c.conditionMet(instr.def.cond) {
		return instr.notTaken(), nil
	}
	target := uint16(int32(instr.addr) + int32(instr.def.length) + int32(instr.Rel()))
	return instr.taken(target), nil
}

// opCALL pushes the address of the following instruction, high byte first,
// then jumps to a 16-bit immediate address.
//
//	CALL nn / CALL cc, nn
//	cc = NZ, Z, NC, C
func opCALL(c *CPU, instr *Instruction) (OpResult, error) {
	if !c.conditionMet(instr.def.cond) {
		return instr.notTaken(), nil
	}
	c.push16(instr.addr + uint16(instr.def.length))
	return instr.taken(instr.Imm16()), nil
}

// opRET pops the return address off the stack and jumps to it.
//
//	RET / RET cc
//	cc = NZ, Z, NC, C
func opRET(c *CPU, instr *Instruction) (OpResult, error) {
	if !c.conditionMet(instr.def.cond) {
		return instr.notTaken(), nil
	}
	return instr.taken(c.pop16()), nil
}

// opRETI returns and re-enables the interrupt master flag in the same step,
// with no EI-style delay.
func opRETI(c *CPU, instr *Instruction) (OpResult, error) {
	c.ime = true
	return instr.taken(c.pop16()), nil
}

// opRST calls one of the eight fixed low-memory targets encoded in bits 3-5
// of the opcode itself.
//
//	RST t
//	t = 00H, 08H, 10H, 18H, 20H, 28H, 30H, 38H
func opRST(c *CPU, instr *Instruction) (OpResult, error) {
	c.push16(instr.addr + uint16(instr.def.length))
	return instr.taken(uint16(instr.opcode & 0x38)), nil
}
