package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNOP(t *testing.T) {
	c, _ := newTestCPU(0x00)
	before := c.Registers

	step(t, c)

	before.PC++
	assert.Equal(t, before, c.Registers, "NOP changes nothing but PC")
	assert.Equal(t, uint64(4), c.Cycles())
}

func TestSCF(t *testing.T) {
	c, _ := newTestCPU(0x37)
	c.Registers.setFlags(flagZ(true), flagN(true), flagH(true))

	step(t, c)

	assertFlags(t, c, flagState{z: true, cy: true})
}

func TestCCF_TogglesCarry(t *testing.T) {
	c, _ := newTestCPU(0x3F, 0x3F)
	c.Registers.setFlags(flagZ(true), flagC(true))

	step(t, c)
	assertFlags(t, c, flagState{z: true})

	step(t, c)
	assertFlags(t, c, flagState{z: true, cy: true})
}
