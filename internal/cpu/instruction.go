package cpu

import (
	"fmt"
	"strings"
)

// AddressingMode describes how an operand locates its value. The decoder
// records the shape only; operands are resolved inside executors at
// execution time, against the current register and bus state, so that
// addressing side effects happen exactly once.
type AddressingMode uint8

const (
	// AddrRegister reads or writes a register or register pair directly.
	AddrRegister AddressingMode = iota
	// AddrImmediate8 is the byte following the opcode.
	AddrImmediate8
	// AddrImmediate16 is the two bytes following the opcode, little-endian.
	AddrImmediate16
	// AddrIndirect is memory at the address held in a register pair.
	AddrIndirect
	// AddrIndirectDec is AddrIndirect with a post-decrement of the pair.
	AddrIndirectDec
	// AddrIndirectInc is AddrIndirect with a post-increment of the pair.
	AddrIndirectInc
	// AddrAbsolute is memory at a 16-bit immediate address.
	AddrAbsolute
	// AddrRelative is a signed 8-bit displacement from the following
	// instruction.
	AddrRelative
	// AddrHigh is memory at 0xFF00 plus an 8-bit immediate.
	AddrHigh
	// AddrHighC is memory at 0xFF00 plus register C.
	AddrHighC
	// AddrSPRelative is SP plus a signed 8-bit displacement.
	AddrSPRelative
)

// Operand is an addressing shape, not a resolved value.
type Operand struct {
	Mode AddressingMode
	Reg  Register // valid for AddrRegister and the register-indirect modes
}

func reg(r Register) Operand         { return Operand{Mode: AddrRegister, Reg: r} }
func indirect(r Register) Operand    { return Operand{Mode: AddrIndirect, Reg: r} }
func indirectDec(r Register) Operand { return Operand{Mode: AddrIndirectDec, Reg: r} }
func indirectInc(r Register) Operand { return Operand{Mode: AddrIndirectInc, Reg: r} }

var (
	immediate8  = Operand{Mode: AddrImmediate8}
	immediate16 = Operand{Mode: AddrImmediate16}
	absolute    = Operand{Mode: AddrAbsolute}
	relative    = Operand{Mode: AddrRelative}
	highPage    = Operand{Mode: AddrHigh}
	highPageC   = Operand{Mode: AddrHighC}
	spOffset    = Operand{Mode: AddrSPRelative}
)

// ops builds an operand list for a table entry.
func ops(o ...Operand) []Operand { return o }

// condition tested by the conditional control-flow instructions. They are
// the engine's only source of variable cycle cost.
type condition uint8

const (
	condNone condition = iota
	condNZ
	condZ
	condNC
	condC
)

// opFn executes one decoded instruction against the CPU.
type opFn func(*CPU, *Instruction) (OpResult, error)

// definition is the static per-opcode descriptor. Length and the base cycle
// cost are a pure function of the opcode; they never depend on operand
// values.
type definition struct {
	name     string
	operands []Operand
	length   uint8
	// cycles[0] is the base cost (and the branch-taken cost); cycles[1] is
	// the branch-not-taken cost for conditional instructions.
	cycles  [2]uint8
	cond    condition
	fn      opFn
	invalid bool
}

// cost declares a fixed cycle cost.
func cost(c uint8) [2]uint8 { return [2]uint8{c, c} }

// branch declares the taken and not-taken cycle costs of a conditional
// instruction.
func branch(taken, notTaken uint8) [2]uint8 { return [2]uint8{taken, notTaken} }

// Instruction is one decoded instruction. It is immutable, created fresh on
// every decode and owned by the caller.
type Instruction struct {
	def    *definition
	opcode uint8  // table index: the opcode byte, or the byte after 0xCB
	addr   uint16 // address the instruction was fetched from
	imm    [2]uint8
}

// Name returns the instruction's mnemonic with operand placeholders.
func (i Instruction) Name() string { return i.def.name }

// Length returns the encoded length in bytes, including the 0xCB prefix for
// extended instructions.
func (i Instruction) Length() uint8 { return i.def.length }

// Cycles returns the base cycle cost (the branch-taken cost for conditional
// instructions).
func (i Instruction) Cycles() uint8 { return i.def.cycles[0] }

// CyclesNotTaken returns the cycle cost of a conditional instruction whose
// condition failed. For unconditional instructions it equals Cycles.
func (i Instruction) CyclesNotTaken() uint8 { return i.def.cycles[1] }

// Operands returns the instruction's operand shapes.
func (i Instruction) Operands() []Operand { return i.def.operands }

// Valid reports whether the opcode is a defined instruction. Reserved
// opcodes decode successfully but fault when executed.
func (i Instruction) Valid() bool { return !i.def.invalid }

// Addr returns the address the instruction was decoded from.
func (i Instruction) Addr() uint16 { return i.addr }

// Imm8 returns the 8-bit immediate, the byte after the opcode.
func (i Instruction) Imm8() uint8 { return i.imm[0] }

// Imm16 returns the 16-bit immediate, bytes 2-3 little-endian.
func (i Instruction) Imm16() uint16 { return uint16(i.imm[1])<<8 | uint16(i.imm[0]) }

// Rel returns the 8-bit immediate as a signed displacement.
func (i Instruction) Rel() int8 { return int8(i.imm[0]) }

// String renders the mnemonic with immediates substituted, e.g.
// "LD SP, 0x1234".
func (i Instruction) String() string {
	s := i.def.name
	s = strings.Replace(s, "SP+r8", fmt.Sprintf("SP%+d", i.Rel()), 1)
	for _, ph := range []string{"d16", "a16"} {
		s = strings.Replace(s, ph, fmt.Sprintf("0x%04X", i.Imm16()), 1)
	}
	for _, ph := range []string{"d8", "a8"} {
		s = strings.Replace(s, ph, fmt.Sprintf("0x%02X", i.Imm8()), 1)
	}
	s = strings.Replace(s, "r8", fmt.Sprintf("%d", i.Rel()), 1)
	return s
}

// OpResult is the only thing an executor returns: the next program counter
// and the cycles actually consumed.
type OpResult struct {
	PC     uint16
	Cycles uint8
}

// next falls through to the following instruction at the base cycle cost.
func (i *Instruction) next() OpResult {
	return OpResult{PC: i.addr + uint16(i.def.length), Cycles: i.def.cycles[0]}
}

// notTaken falls through to the following instruction at the
// branch-not-taken cost.
func (i *Instruction) notTaken() OpResult {
	return OpResult{PC: i.addr + uint16(i.def.length), Cycles: i.def.cycles[1]}
}

// taken transfers control to pc at the branch-taken cost.
func (i *Instruction) taken(pc uint16) OpResult {
	return OpResult{PC: pc, Cycles: i.def.cycles[0]}
}
