package cpu

// add adds value plus carry to the accumulator.
//
//	ADD A, n / ADC A, n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) add(value, carry uint8) {
	a := c.Registers.A
	result := uint16(a) + uint16(value) + uint16(carry)
	c.Registers.setFlags(
		flagZ(uint8(result) == 0),
		flagN(false),
		flagH(a&0xF+value&0xF+carry > 0xF),
		flagC(result > 0xFF),
	)
	c.Registers.A = uint8(result)
}

// sub computes accumulator minus value minus carry and sets the flags from
// the result. The caller decides whether the numeric result is kept (SUB,
// SBC) or discarded (CP).
//
//	SUB n / SBC A, n / CP n
//	n = B, C, D, E, H, L, (HL), A, d8
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
//	C - Set if borrow.
func (c *CPU) sub(value, carry uint8) uint8 {
	a := c.Registers.A
	result := int16(a) - int16(value) - int16(carry)
	c.Registers.setFlags(
		flagZ(uint8(result) == 0),
		flagN(true),
		flagH(int16(a&0xF)-int16(value&0xF)-int16(carry) < 0),
		flagC(result < 0),
	)
	return uint8(result)
}

// addSPOffset adds a signed displacement to SP. H and C come from the low
// byte of the addition, the way the hardware computes it.
//
//	ADD SP, r8 / LD HL, SP+r8
//
// Flags affected:
//
//	Z - Reset.
//	N - Reset.
//	H - Set if carry from bit 3.
//	C - Set if carry from bit 7.
func (c *CPU) addSPOffset(offset int8) uint16 {
	sp := c.Registers.SP
	result := uint16(int32(sp) + int32(offset))
	c.Registers.setFlags(
		flagZ(false),
		flagN(false),
		flagH((sp^uint16(int16(offset))^result)&0x10 != 0),
		flagC((sp^uint16(int16(offset))^result)&0x100 != 0),
	)
	return result
}

// increment adds one to value. Carry is never touched, so a chain of INCs
// cannot clear a carry left by earlier arithmetic.
//
//	INC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Reset.
//	H - Set if carry from bit 3.
func (c *CPU) increment(value uint8) uint8 {
	result := value + 1
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(false),
		flagH(value&0xF == 0xF),
	)
	return result
}

// decrement subtracts one from value. Carry is never touched.
//
//	DEC n
//	n = B, C, D, E, H, L, (HL), A
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Set.
//	H - Set if borrow from bit 4.
func (c *CPU) decrement(value uint8) uint8 {
	result := value - 1
	c.Registers.setFlags(
		flagZ(result == 0),
		flagN(true),
		flagH(value&0xF == 0),
	)
	return result
}

func opADD(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.add(value, 0)
	return instr.next(), nil
}

func opADC(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.add(value, c.Registers.carryBit())
	return instr.next(), nil
}

func opSUB(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.Registers.A = c.sub(value, 0)
	return instr.next(), nil
}

func opSBC(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.Registers.A = c.sub(value, c.Registers.carryBit())
	return instr.next(), nil
}

// opCP performs the subtraction for flag purposes only; A is unchanged.
func opCP(c *CPU, instr *Instruction) (OpResult, error) {
	value, err := c.resolve8(instr, instr.def.operands[0])
	if err != nil {
		return OpResult{}, err
	}
	c.sub(value, 0)
	return instr.next(), nil
}

func opINC(c *CPU, instr *Instruction) (OpResult, error) {
	if err := c.readModifyWrite(instr, instr.def.operands[0], c.increment); err != nil {
		return OpResult{}, err
	}
	return instr.next(), nil
}

func opDEC(c *CPU, instr *Instruction) (OpResult, error) {
	if err := c.readModifyWrite(instr, instr.def.operands[0], c.decrement); err != nil {
		return OpResult{}, err
	}
	return instr.next(), nil
}

// opINC16 increments a register pair. No flags are affected.
func opINC16(c *CPU, instr *Instruction) (OpResult, error) {
	pair := instr.def.operands[0].Reg
	c.Registers.Write16(pair, c.Registers.Read16(pair)+1)
	return instr.next(), nil
}

// opDEC16 decrements a register pair. No flags are affected.
func opDEC16(c *CPU, instr *Instruction) (OpResult, error) {
	pair := instr.def.operands[0].Reg
	c.Registers.Write16(pair, c.Registers.Read16(pair)-1)
	return instr.next(), nil
}

// opADDHL adds a 16-bit register to HL.
//
//	ADD HL, rr
//	rr = BC, DE, HL, SP
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Set if carry from bit 11.
//	C - Set if carry from bit 15.
func opADDHL(c *CPU, instr *Instruction) (OpResult, error) {
	hl := c.Registers.Read16(HL)
	value := c.Registers.Read16(instr.def.operands[1].Reg)
	result := uint32(hl) + uint32(value)
	c.Registers.setFlags(
		flagN(false),
		flagH(hl&0xFFF+value&0xFFF > 0xFFF),
		flagC(result > 0xFFFF),
	)
	c.Registers.Write16(HL, uint16(result))
	return instr.next(), nil
}

// opADDSP adds a signed displacement to SP.
func opADDSP(c *CPU, instr *Instruction) (OpResult, error) {
	c.Registers.SP = c.addSPOffset(instr.Rel())
	return instr.next(), nil
}

// opDAA corrects the accumulator to packed BCD after an ADD/ADC/SUB/SBC
// sequence, using N to pick the correction direction and H/C to decide
// which nibbles need correcting.
//
// Flags affected:
//
//	Z - Set if result is zero.
//	N - Not affected.
//	H - Reset.
//	C - Set if the high nibble needed correcting (additions only).
func opDAA(c *CPU, instr *Instruction) (OpResult, error) {
	a := c.Registers.A
	if !c.Registers.isFlagSet(FlagSubtract) {
		if c.Registers.isFlagSet(FlagCarry) || a > 0x99 {
			a += 0x60
			c.Registers.setFlag(FlagCarry)
		}
		if c.Registers.isFlagSet(FlagHalfCarry) || a&0xF > 0x9 {
			a += 0x06
		}
	} else {
		if c.Registers.isFlagSet(FlagCarry) {
			a -= 0x60
		}
		if c.Registers.isFlagSet(FlagHalfCarry) {
			a -= 0x06
		}
	}
	c.Registers.A = a
	c.Registers.setFlags(flagZ(a == 0), flagH(false))
	return instr.next(), nil
}
