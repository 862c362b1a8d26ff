package cpu

import "fmt"

// opNOP advances PC and the cycle counter, nothing else.
func opNOP(c *CPU, instr *Instruction) (OpResult, error) {
	return instr.next(), nil
}

// opHALT suspends instruction fetch until an interrupt is delivered. The
// state is a flag checked by the driving loop; Step never blocks.
func opHALT(c *CPU, instr *Instruction) (OpResult, error) {
	c.SetState(Halted)
	return instr.next(), nil
}

// opSTOP suspends instruction fetch until an external wake. Halting the
// wider device clock is the collaborator's concern.
func opSTOP(c *CPU, instr *Instruction) (OpResult, error) {
	c.SetState(Stopped)
	return instr.next(), nil
}

// opDI disables the interrupt master flag immediately, cancelling any
// enable still pending from an earlier EI.
func opDI(c *CPU, instr *Instruction) (OpResult, error) {
	c.ime = false
	c.imePending = false
	return instr.next(), nil
}

// opEI schedules the interrupt master flag to be enabled after the next
// instruction completes; the one-instruction delay is a documented hardware
// quirk.
func opEI(c *CPU, instr *Instruction) (OpResult, error) {
	c.imePending = true
	return instr.next(), nil
}

// opSCF sets the carry flag.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Set.
func opSCF(c *CPU, instr *Instruction) (OpResult, error) {
	c.Registers.setFlags(flagN(false), flagH(false), flagC(true))
	return instr.next(), nil
}

// opCCF complements the carry flag.
//
// Flags affected:
//
//	Z - Not affected.
//	N - Reset.
//	H - Reset.
//	C - Complemented.
func opCCF(c *CPU, instr *Instruction) (OpResult, error) {
	c.Registers.setFlags(
		flagN(false),
		flagH(false),
		flagC(!c.Registers.isFlagSet(FlagCarry)),
	)
	return instr.next(), nil
}

// opInvalid always faults: the reserved opcodes signal ROM corruption or an
// engine bug, never something to skip or default.
func opInvalid(c *CPU, instr *Instruction) (OpResult, error) {
	return OpResult{}, fmt.Errorf("%w 0x%02X at 0x%04X", ErrInvalidOpcode, instr.opcode, instr.addr)
}

// opPrefix guards the 0xCB slot of the primary table. The decoder resolves
// the prefix itself, so executing this entry means decode was bypassed.
func opPrefix(c *CPU, instr *Instruction) (OpResult, error) {
	return OpResult{}, execErrf("0xCB prefix executed without decode")
}
