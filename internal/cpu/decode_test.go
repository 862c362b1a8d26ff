package cpu

import (
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sm83dev/go-sm83/internal/bus"
)

// boundedSource is a byte source that ends, unlike a bus, so short reads are
// observable.
type boundedSource []uint8

func (s boundedSource) ReadByte(address uint16) (uint8, error) {
	if int(address) >= len(s) {
		return 0, io.ErrUnexpectedEOF
	}
	return s[address], nil
}

func TestDecode_Idempotent(t *testing.T) {
	mem := bus.NewMemoryFrom([]uint8{0x31, 0x34, 0x12})

	first, err := Decode(BusSource(mem), 0)
	require.NoError(t, err)
	second, err := Decode(BusSource(mem), 0)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestDecode_Descriptors(t *testing.T) {
	tests := []struct {
		code           []uint8
		name           string
		length         uint8
		cycles         uint8
		cyclesNotTaken uint8
	}{
		{[]uint8{0x00}, "NOP", 1, 4, 4},
		{[]uint8{0x31, 0x34, 0x12}, "LD SP, d16", 3, 12, 12},
		{[]uint8{0x36, 0x42}, "LD (HL), d8", 2, 12, 12},
		{[]uint8{0x20, 0xFE}, "JR NZ, r8", 2, 12, 8},
		{[]uint8{0xC4, 0x00, 0x80}, "CALL NZ, a16", 3, 24, 12},
		{[]uint8{0xC0}, "RET NZ", 1, 20, 8},
		{[]uint8{0x76}, "HALT", 1, 4, 4},
		{[]uint8{0xCB, 0x11}, "RL C", 2, 8, 8},
		{[]uint8{0xCB, 0x16}, "RL (HL)", 2, 16, 16},
		{[]uint8{0xCB, 0x37}, "SWAP A", 2, 8, 8},
		{[]uint8{0xCB, 0x46}, "BIT 0, (HL)", 2, 12, 12},
		{[]uint8{0xCB, 0xC6}, "SET 0, (HL)", 2, 16, 16},
		{[]uint8{0xCB, 0xFF}, "SET 7, A", 2, 8, 8},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			instr, err := Decode(boundedSource(tc.code), 0)
			require.NoError(t, err)
			assert.Equal(t, tc.name, instr.Name())
			assert.Equal(t, tc.length, instr.Length())
			assert.Equal(t, tc.cycles, instr.Cycles())
			assert.Equal(t, tc.cyclesNotTaken, instr.CyclesNotTaken())
			assert.True(t, instr.Valid())
		})
	}
}

func TestDecode_Immediates(t *testing.T) {
	instr, err := Decode(boundedSource{0x31, 0x34, 0x12}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), instr.Imm16())

	instr, err = Decode(boundedSource{0x3E, 0x7F}, 0)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x7F), instr.Imm8())

	instr, err = Decode(boundedSource{0x18, 0xFE}, 0)
	require.NoError(t, err)
	assert.Equal(t, int8(-2), instr.Rel())
}

func TestDecode_String(t *testing.T) {
	instr, err := Decode(boundedSource{0x31, 0x34, 0x12}, 0)
	require.NoError(t, err)
	assert.Equal(t, "LD SP, 0x1234", instr.String())

	instr, err = Decode(boundedSource{0x18, 0xFE}, 0)
	require.NoError(t, err)
	assert.Equal(t, "JR -2", instr.String())

	instr, err = Decode(boundedSource{0xF8, 0xFD}, 0)
	require.NoError(t, err)
	assert.Equal(t, "LD HL, SP-3", instr.String())
}

func TestDecode_ReservedOpcodes(t *testing.T) {
	for _, opcode := range reservedOpcodes {
		instr, err := Decode(boundedSource{opcode}, 0)
		require.NoError(t, err, "opcode 0x%02X", opcode)
		assert.False(t, instr.Valid(), "opcode 0x%02X", opcode)
		assert.Equal(t, uint8(1), instr.Length())
	}
}

func TestDecode_TruncatedSource(t *testing.T) {
	tests := []struct {
		name string
		code []uint8
	}{
		{"empty source", nil},
		{"missing extended opcode", []uint8{0xCB}},
		{"missing 8-bit immediate", []uint8{0x3E}},
		{"missing high immediate byte", []uint8{0x31, 0x34}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(boundedSource(tc.code), 0)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrDecode))
		})
	}
}

func TestDecode_DoesNotResolveOperands(t *testing.T) {
	// decoding (HL-) must not touch HL; the side effect belongs to execution
	c, _ := newTestCPU(0x32) // LD (HL-), A
	c.Registers.Write16(HL, 0x1122)

	_, err := c.Peek()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1122), c.Registers.Read16(HL))
}
