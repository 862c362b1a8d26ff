package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisters_PairByteOrder(t *testing.T) {
	var r Registers

	r.Write16(BC, 0x1234)
	assert.Equal(t, uint8(0x12), r.B)
	assert.Equal(t, uint8(0x34), r.C)
	assert.Equal(t, uint16(0x1234), r.Read16(BC))

	r.D = 0xAB
	r.E = 0xCD
	assert.Equal(t, uint16(0xABCD), r.Read16(DE))
}

func TestRegisters_FlagNibbleAlwaysZero(t *testing.T) {
	var r Registers

	r.Write8(F, 0xFF)
	assert.Equal(t, uint8(0xF0), r.F)

	r.Write16(AF, 0x12BF)
	assert.Equal(t, uint8(0x12), r.A)
	assert.Equal(t, uint8(0xB0), r.F)
}

func TestRegisters_Write8DoesNotTouchNeighbours(t *testing.T) {
	var r Registers
	r.Write16(HL, 0x1122)
	r.F = 0xF0

	r.Write8(H, 0x99)

	assert.Equal(t, uint8(0x22), r.L)
	assert.Equal(t, uint8(0xF0), r.F)
}

func TestRegisters_ReadDecReadInc(t *testing.T) {
	var r Registers
	r.Write16(HL, 0x1122)

	// the value handed back is always the pre-mutation address
	assert.Equal(t, uint16(0x1122), r.ReadDec(HL))
	assert.Equal(t, uint16(0x1121), r.Read16(HL))

	assert.Equal(t, uint16(0x1121), r.ReadInc(HL))
	assert.Equal(t, uint16(0x1122), r.Read16(HL))

	// wrap at the edges of the space
	r.Write16(HL, 0x0000)
	assert.Equal(t, uint16(0x0000), r.ReadDec(HL))
	assert.Equal(t, uint16(0xFFFF), r.Read16(HL))
}

func TestRegisters_SetFlagsLeavesUnnamedUntouched(t *testing.T) {
	var r Registers
	r.setFlag(FlagCarry)

	r.setFlags(flagZ(true), flagN(false), flagH(true))

	assert.True(t, r.isFlagSet(FlagZero))
	assert.False(t, r.isFlagSet(FlagSubtract))
	assert.True(t, r.isFlagSet(FlagHalfCarry))
	assert.True(t, r.isFlagSet(FlagCarry), "unnamed carry must keep its value")
}

func TestRegisters_CarryBit(t *testing.T) {
	var r Registers
	assert.Equal(t, uint8(0), r.carryBit())
	r.setFlag(FlagCarry)
	assert.Equal(t, uint8(1), r.carryBit())
}
