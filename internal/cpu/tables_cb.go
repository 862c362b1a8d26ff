package cpu

import "fmt"

// extendedTable is the 256-entry descriptor table behind the 0xCB prefix,
// covering the rotate/shift-by-one and bit test/set/reset families
// exclusively. The whole table is regular, so it is generated rather than
// spelled out. Lengths include the prefix byte.
var extendedTable [256]definition

func init() {
	rotates := []struct {
		name string
		fn   opFn
	}{
		{"RLC", opRLC},
		{"RRC", opRRC},
		{"RL", opRL},
		{"RR", opRR},
		{"SLA", opSLA},
		{"SRA", opSRA},
		{"SWAP", opSWAP},
		{"SRL", opSRL},
	}
	// 0x00-0x3F: one row of eight per rotate/shift operation.
	for row, rot := range rotates {
		for col := 0; col < 8; col++ {
			cycles := uint8(8)
			if col == 6 {
				cycles = 16
			}
			extendedTable[row*8+col] = definition{
				name:     rot.name + " " + matrixNames[col],
				operands: ops(matrixOperands[col]),
				length:   2,
				cycles:   cost(cycles),
				fn:       rot.fn,
			}
		}
	}

	// 0x40-0xFF: BIT, RES and SET over each bit index and register column.
	// BIT only reads (HL), so its indirect form is cheaper than RES/SET's
	// read-modify-write.
	bitOps := []struct {
		name      string
		fn        opFn
		hlCycles  uint8
		regCycles uint8
	}{
		{"BIT", opBIT, 12, 8},
		{"RES", opRES, 16, 8},
		{"SET", opSET, 16, 8},
	}
	for block, bit := range bitOps {
		for index := 0; index < 8; index++ {
			for col := 0; col < 8; col++ {
				cycles := bit.regCycles
				if col == 6 {
					cycles = bit.hlCycles
				}
				extendedTable[0x40+block*0x40+index*8+col] = definition{
					name:     fmt.Sprintf("%s %d, %s", bit.name, index, matrixNames[col]),
					operands: ops(matrixOperands[col]),
					length:   2,
					cycles:   cost(cycles),
					fn:       bit.fn,
				}
			}
		}
	}
}
