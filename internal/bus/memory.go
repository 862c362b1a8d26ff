package bus

// Memory is a flat 64 KiB Bus with no mapping logic. It backs the core's
// unit tests and is a usable stand-in until a front-end provides a real
// memory map.
type Memory struct {
	data [0x10000]uint8
}

// NewMemory returns a zero-filled Memory.
func NewMemory() *Memory {
	return &Memory{}
}

// NewMemoryFrom returns a Memory with code copied to address 0.
func NewMemoryFrom(code []uint8) *Memory {
	m := &Memory{}
	m.Load(0, code)
	return m
}

// Load copies data into the address space starting at addr, wrapping at the
// top of the space like the hardware bus does.
func (m *Memory) Load(addr uint16, data []uint8) {
	for i, b := range data {
		m.data[addr+uint16(i)] = b
	}
}

func (m *Memory) Read(address uint16) uint8 {
	return m.data[address]
}

func (m *Memory) Write(address uint16, value uint8) {
	m.data[address] = value
}
