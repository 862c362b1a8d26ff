package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestXOR_Register(t *testing.T) {
	c, _ := newTestCPU(0xA8) // XOR B
	c.Registers.A = 0x55
	c.Registers.B = 0xAA

	step(t, c)

	assert.Equal(t, uint8(0xFF), c.Registers.A)
	assert.False(t, c.Registers.isFlagSet(FlagZero))
}

func TestXOR_RegisterZeroResult(t *testing.T) {
	c, _ := newTestCPU(0xA8) // XOR B
	c.Registers.A = 0xAA
	c.Registers.B = 0xAA

	step(t, c)

	assert.Equal(t, uint8(0x00), c.Registers.A)
	assert.True(t, c.Registers.isFlagSet(FlagZero))
}

func TestAND(t *testing.T) {
	c, _ := newTestCPU(0xA1) // AND C
	c.Registers.A = 0x5A
	c.Registers.C = 0x3F
	c.Registers.setFlag(FlagCarry)

	step(t, c)

	assert.Equal(t, uint8(0x1A), c.Registers.A)
	assertFlags(t, c, flagState{h: true})
}

func TestAND_ZeroResult(t *testing.T) {
	c, _ := newTestCPU(0xE6, 0x00) // AND 0x00
	c.Registers.A = 0xFF

	step(t, c)

	assert.Equal(t, uint8(0x00), c.Registers.A)
	assertFlags(t, c, flagState{z: true, h: true})
}

func TestOR(t *testing.T) {
	c, _ := newTestCPU(0xB2) // OR D
	c.Registers.A = 0x50
	c.Registers.D = 0x0A
	c.Registers.setFlag(FlagHalfCarry)

	step(t, c)

	assert.Equal(t, uint8(0x5A), c.Registers.A)
	assertFlags(t, c, flagState{})
}

func TestOR_ZeroResult(t *testing.T) {
	c, _ := newTestCPU(0xB7) // OR A
	c.Registers.A = 0x00

	step(t, c)

	assertFlags(t, c, flagState{z: true})
}

func TestCPL(t *testing.T) {
	c, _ := newTestCPU(0x2F) // CPL
	c.Registers.A = 0x35
	c.Registers.setFlag(FlagCarry)

	step(t, c)

	assert.Equal(t, uint8(0xCA), c.Registers.A)
	assertFlags(t, c, flagState{n: true, h: true, cy: true})
}
