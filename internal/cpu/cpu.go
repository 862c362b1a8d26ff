// Package cpu implements the SM83 fetch-decode-execute engine. Instructions
// are decoded against static descriptor tables and executed by one function
// per instruction family; everything mapped behind the bus is somebody
// else's problem.
package cpu

import (
	"github.com/sm83dev/go-sm83/internal/bus"
	"github.com/sm83dev/go-sm83/pkg/log"
)

const (
	// ClockSpeed is the clock the cycle costs are counted in, in Hz.
	ClockSpeed = 4194304

	// interruptCycles is the cost of dispatching an interrupt.
	interruptCycles = 20
)

// RunState describes whether the CPU is fetching instructions.
type RunState uint8

const (
	// Running is the normal fetch-decode-execute state.
	Running RunState = iota
	// Halted means no fetch until an interrupt is delivered.
	Halted
	// Stopped means no fetch until an external wake; the wider device clock
	// is halted outside this core.
	Stopped
)

func (s RunState) String() string {
	switch s {
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Stopped:
		return "stopped"
	}
	return "unknown"
}

// CPU is the instruction-execution engine. It exclusively owns its register
// file and holds the sole handle to the bus for its lifetime; a driving loop
// calls Step repeatedly and delivers interrupts between calls, never during
// one.
type CPU struct {
	// Registers is exported for drivers and tests; nothing else reads or
	// writes it during a step.
	Registers Registers

	bus    bus.Bus
	cycles uint64
	state  RunState

	// ime is the interrupt master enable. EI sets imePending instead: the
	// enable takes effect only after the instruction following EI, a
	// documented hardware quirk.
	ime        bool
	imePending bool

	log log.Logger
}

// Option configures a CPU at construction time.
type Option func(*CPU)

// WithLogger sets the logger used on fault paths and run-state transitions.
// The default logger discards everything.
func WithLogger(l log.Logger) Option {
	return func(c *CPU) {
		c.log = l
	}
}

// WithRegisters sets the initial register file.
func WithRegisters(regs Registers) Option {
	return func(c *CPU) {
		c.Registers = regs
	}
}

// New creates a CPU that executes against b.
func New(b bus.Bus, opts ...Option) *CPU {
	c := &CPU{
		bus: b,
		log: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Reset restores the DMG post-boot register state so drivers can start at
// 0x0100 without running a boot ROM.
func (c *CPU) Reset() {
	c.Registers = Registers{
		A: 0x01, F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}
	c.cycles = 0
	c.state = Running
	c.ime = false
	c.imePending = false
}

// Step fetches, decodes and executes the instruction at PC, then commits the
// next PC and the consumed cycles. Any error is fatal to the step and
// reported upward; the driver decides whether to halt or reset the machine.
//
// While Halted or Stopped the CPU does not fetch; the clock still runs, so a
// step consumes one machine cycle and returns.
func (c *CPU) Step() error {
	if c.state != Running {
		c.cycles += 4
		return nil
	}

	instr, err := Decode(BusSource(c.bus), c.Registers.PC)
	if err != nil {
		return err
	}

	// EI enables interrupts one instruction late: latch the pending enable
	// before executing so the instruction EI itself schedules is excluded.
	pending := c.imePending

	result, err := instr.def.fn(c, &instr)
	if err != nil {
		c.log.Errorf("step at 0x%04X: %v", instr.addr, err)
		return err
	}

	// Commit the delayed enable unless the instruction in the delay slot
	// withdrew it (DI cancels a pending EI).
	if pending && c.imePending {
		c.ime = true
		c.imePending = false
	}

	c.Registers.PC = result.PC
	c.cycles += uint64(result.Cycles)
	return nil
}

// Peek decodes the instruction at PC without executing it or mutating any
// state. Collaborators use it for inspection and tracing.
func (c *CPU) Peek() (Instruction, error) {
	return Decode(BusSource(c.bus), c.Registers.PC)
}

// Cycles returns the total cycles consumed since construction or Reset.
func (c *CPU) Cycles() uint64 {
	return c.cycles
}

// State returns the current run state.
func (c *CPU) State() RunState {
	return c.state
}

// SetState forces the run state. The external interrupt collaborator uses it
// to wake a Stopped CPU.
func (c *CPU) SetState(state RunState) {
	if state != c.state {
		c.log.Debugf("run state %s -> %s", c.state, state)
	}
	c.state = state
}

// InterruptsEnabled returns the interrupt master enable flag.
func (c *CPU) InterruptsEnabled() bool {
	return c.ime
}

// Interrupt delivers an interrupt line between steps. A halted CPU resumes
// fetching either way; if the master enable is set the CPU additionally
// pushes PC, disables the master enable and jumps to vector, consuming the
// dispatch cycles. Returns whether the interrupt was dispatched.
func (c *CPU) Interrupt(vector uint16) bool {
	if c.state == Halted {
		c.SetState(Running)
	}
	if !c.ime {
		return false
	}
	c.ime = false
	c.imePending = false
	c.push16(c.Registers.PC)
	c.Registers.PC = vector
	c.cycles += interruptCycles
	return true
}

// readByte reads a byte from the bus.
func (c *CPU) readByte(addr uint16) uint8 {
	return c.bus.Read(addr)
}

// writeByte writes a byte to the bus.
func (c *CPU) writeByte(addr uint16, value uint8) {
	c.bus.Write(addr, value)
}

// operandAddress resolves the memory address of an indirect operand,
// performing any auto increment/decrement side effect exactly once. The
// address returned for the post-mutation modes is always the value before
// mutation.
func (c *CPU) operandAddress(instr *Instruction, op Operand) (uint16, bool) {
	switch op.Mode {
	case AddrIndirect:
		return c.Registers.Read16(op.Reg), true
	case AddrIndirectDec:
		return c.Registers.ReadDec(op.Reg), true
	case AddrIndirectInc:
		return c.Registers.ReadInc(op.Reg), true
	case AddrAbsolute:
		return instr.Imm16(), true
	case AddrHigh:
		return 0xFF00 + uint16(instr.Imm8()), true
	case AddrHighC:
		return 0xFF00 + uint16(c.Registers.C), true
	}
	return 0, false
}

// resolve8 reads the byte an operand refers to.
func (c *CPU) resolve8(instr *Instruction, op Operand) (uint8, error) {
	switch op.Mode {
	case AddrRegister:
		if op.Reg.pair() {
			return 0, execErrf("%s: %s is not an 8-bit register", instr.def.name, op.Reg)
		}
		return c.Registers.Read8(op.Reg), nil
	case AddrImmediate8:
		return instr.Imm8(), nil
	default:
		if addr, ok := c.operandAddress(instr, op); ok {
			return c.readByte(addr), nil
		}
	}
	return 0, execErrf("%s: unsupported source operand", instr.def.name)
}

// store8 writes a byte to the location an operand refers to.
func (c *CPU) store8(instr *Instruction, op Operand, value uint8) error {
	switch op.Mode {
	case AddrRegister:
		if op.Reg.pair() {
			return execErrf("%s: %s is not an 8-bit register", instr.def.name, op.Reg)
		}
		c.Registers.Write8(op.Reg, value)
		return nil
	default:
		if addr, ok := c.operandAddress(instr, op); ok {
			c.writeByte(addr, value)
			return nil
		}
	}
	return execErrf("%s: unsupported destination operand", instr.def.name)
}

// readModifyWrite applies f to the byte an operand refers to and stores the
// result back to the same location. Only plain register and indirect shapes
// reach it, so the address is computed without side effects.
func (c *CPU) readModifyWrite(instr *Instruction, op Operand, f func(uint8) uint8) error {
	value, err := c.resolve8(instr, op)
	if err != nil {
		return err
	}
	return c.store8(instr, op, f(value))
}

// push16 pushes a 16-bit value onto the stack, high byte first, leaving SP
// pointing at the low byte.
func (c *CPU) push16(value uint16) {
	c.Registers.SP--
	c.writeByte(c.Registers.SP, uint8(value>>8))
	c.Registers.SP--
	c.writeByte(c.Registers.SP, uint8(value))
}

// pop16 pops a 16-bit value off the stack, low byte first.
func (c *CPU) pop16() uint16 {
	low := uint16(c.readByte(c.Registers.SP))
	c.Registers.SP++
	high := uint16(c.readByte(c.Registers.SP))
	c.Registers.SP++
	return high<<8 | low
}
