package cpu

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBIT_TestsEachBit(t *testing.T) {
	for index := uint8(0); index < 8; index++ {
		t.Run(fmt.Sprintf("bit %d", index), func(t *testing.T) {
			opcode := 0x47 + index*8 // BIT index, A

			c, _ := newTestCPU(0xCB, opcode)
			c.Registers.A = 1 << index
			c.Registers.setFlag(FlagCarry)
			step(t, c)
			// Z is the inverse of the tested bit; C is untouched
			assertFlags(t, c, flagState{h: true, cy: true})

			c, _ = newTestCPU(0xCB, opcode)
			c.Registers.A = ^(uint8(1) << index)
			step(t, c)
			assertFlags(t, c, flagState{z: true, h: true})
		})
	}
}

func TestBIT_IndirectHL(t *testing.T) {
	c, mem := newTestCPU(0xCB, 0x7E) // BIT 7, (HL)
	mem.Write(0xC000, 0x80)
	c.Registers.Write16(HL, 0xC000)

	step(t, c)

	assert.False(t, c.Registers.isFlagSet(FlagZero))
	assert.Equal(t, uint8(0x80), mem.Read(0xC000), "BIT only reads")
}

func TestSET_ForcesBit(t *testing.T) {
	c, _ := newTestCPU(0xCB, 0xD8) // SET 3, B
	c.Registers.F = 0xF0

	step(t, c)

	assert.Equal(t, uint8(0x08), c.Registers.B)
	assert.Equal(t, uint8(0xF0), c.Registers.F, "SET affects no flags")
}

func TestRES_ForcesBit(t *testing.T) {
	c, _ := newTestCPU(0xCB, 0x98) // RES 3, B
	c.Registers.B = 0xFF
	c.Registers.F = 0xF0

	step(t, c)

	assert.Equal(t, uint8(0xF7), c.Registers.B)
	assert.Equal(t, uint8(0xF0), c.Registers.F, "RES affects no flags")
}

func TestSETRES_IndirectHL(t *testing.T) {
	c, mem := newTestCPU(0xCB, 0xFE, 0xCB, 0xBE) // SET 7, (HL); RES 7, (HL)
	c.Registers.Write16(HL, 0xC000)

	step(t, c)
	assert.Equal(t, uint8(0x80), mem.Read(0xC000))

	step(t, c)
	assert.Equal(t, uint8(0x00), mem.Read(0xC000))
}
