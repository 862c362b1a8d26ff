package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPUSH_ByteOrder(t *testing.T) {
	c, mem := newTestCPU(0xC5) // PUSH BC
	c.Registers.SP = 0xFFFE
	c.Registers.B = 0x12
	c.Registers.C = 0x34

	step(t, c)

	assert.Equal(t, uint16(0xFFFC), c.Registers.SP)
	assert.Equal(t, uint8(0x12), mem.Read(0xFFFD), "high byte at the higher address")
	assert.Equal(t, uint8(0x34), mem.Read(0xFFFC))
	assert.Equal(t, uint64(16), c.Cycles())
}

func TestPUSHPOP_RoundTrip(t *testing.T) {
	pairs := []struct {
		push, pop uint8
		pair      Register
	}{
		{0xC5, 0xC1, BC},
		{0xD5, 0xD1, DE},
		{0xE5, 0xE1, HL},
	}
	for _, tc := range pairs {
		t.Run(tc.pair.String(), func(t *testing.T) {
			for _, value := range []uint16{0x0000, 0x00FF, 0xFF00, 0xA5C3, 0xFFFF} {
				c, _ := newTestCPU(tc.push, tc.pop)
				c.Registers.SP = 0xFFFE
				c.Registers.Write16(tc.pair, value)

				step(t, c)
				c.Registers.Write16(tc.pair, 0)
				step(t, c)

				assert.Equal(t, value, c.Registers.Read16(tc.pair))
				assert.Equal(t, uint16(0xFFFE), c.Registers.SP)
			}
		})
	}
}

func TestPOPAF_MasksFlagNibble(t *testing.T) {
	c, mem := newTestCPU(0xF1) // POP AF
	c.Registers.SP = 0xFFFC
	mem.Write(0xFFFC, 0xFF) // garbage in the low nibble
	mem.Write(0xFFFD, 0x12)

	step(t, c)

	assert.Equal(t, uint8(0x12), c.Registers.A)
	assert.Equal(t, uint8(0xF0), c.Registers.F, "unused flag bits always read zero")
}

func TestPUSHAF(t *testing.T) {
	c, mem := newTestCPU(0xF5) // PUSH AF
	c.Registers.SP = 0xFFFE
	c.Registers.A = 0x42
	c.Registers.setFlags(flagZ(true), flagC(true))

	step(t, c)

	assert.Equal(t, uint8(0x42), mem.Read(0xFFFD))
	assert.Equal(t, uint8(0x90), mem.Read(0xFFFC))
}
