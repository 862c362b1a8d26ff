package cpu

// opLD8 moves a byte between any two supported 8-bit operand shapes.
//
//	LD r, r' / LD r, d8 / LD r, (rr) / LD (rr), r / LD (HL±), A /
//	LDH (a8), A / LDH A, (a8) / LD (C), A / LD A, (C) /
//	LD (a16), A / LD A, (a16)
//
// No flags are affected.
func opLD8(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[1])
	if err != nil {
		return OpResult{}, err
	}
	if err := c.store8(instr, instr.def.operands[0], value); err != nil {
		return OpResult{}, err
	}
	return instr.next(), nil
}

// opLD16 moves a 16-bit value.
//
//	LD rr, d16 / LD SP, HL / LD (a16), SP / LD HL, SP+r8
//
// No flags are affected, except LD HL, SP+r8 which takes Z(0), N(0), H and C
// from the signed addition.
func opLD16(c *CPU, instr *Instruction) (OpResult, error) {
	var value uint16
	switch src := instr.def.operands[1]; src.Mode {
	case AddrImmediate16:
		value = instr.Imm16()
	case AddrRegister:
		value = c.Registers.Read16(src.Reg)
	case AddrSPRelative:
		value = c.addSPOffset(instr.Rel())
	default:
		return OpResult{}, execErrf("%s: unsupported source operand", instr.def.name)
	}

	switch dst := instr.def.operands[0]; dst.Mode {
	case AddrRegister:
		c.Registers.Write16(dst.Reg, value)
	case AddrAbsolute:
		addr := instr.Imm16()
		c.writeByte(addr, uint8(value))
		c.writeByte(addr+1, uint8(value>>8))
	default:
		return OpResult{}, execErrf("%s: unsupported destination operand", instr.def.name)
	}
	return instr.next(), nil
}
