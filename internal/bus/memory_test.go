package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMemory_ReadWrite(t *testing.T) {
	m := NewMemory()

	assert.Equal(t, uint8(0x00), m.Read(0xC000))

	m.Write(0xC000, 0x42)
	assert.Equal(t, uint8(0x42), m.Read(0xC000))

	m.Write(0xFFFF, 0xAA)
	assert.Equal(t, uint8(0xAA), m.Read(0xFFFF))
}

func TestMemory_Load(t *testing.T) {
	m := NewMemory()
	m.Load(0x0100, []uint8{0x01, 0x02, 0x03})

	assert.Equal(t, uint8(0x01), m.Read(0x0100))
	assert.Equal(t, uint8(0x03), m.Read(0x0102))
	assert.Equal(t, uint8(0x00), m.Read(0x0103))
}

func TestNewMemoryFrom(t *testing.T) {
	m := NewMemoryFrom([]uint8{0xC3, 0x00, 0x80})

	assert.Equal(t, uint8(0xC3), m.Read(0x0000))
	assert.Equal(t, uint8(0x80), m.Read(0x0002))
}
