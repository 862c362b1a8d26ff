package cpu

import "fmt"

// primaryTable is the 256-entry descriptor table for the one-byte opcode
// space. Immutable after init; the irregular rows are spelled out below and
// the regular LD/ALU blocks 0x40-0xBF are generated in init.
var primaryTable = [256]definition{
	0x00: {name: "NOP", length: 1, cycles: cost(4), fn: opNOP},
	0x01: {name: "LD BC, d16", operands: ops(reg(BC), immediate16), length: 3, cycles: cost(12), fn: opLD16},
	0x02: {name: "LD (BC), A", operands: ops(indirect(BC), reg(A)), length: 1, cycles: cost(8), fn: opLD8},
	0x03: {name: "INC BC", operands: ops(reg(BC)), length: 1, cycles: cost(8), fn: opINC16},
	0x04: {name: "INC B", operands: ops(reg(B)), length: 1, cycles: cost(4), fn: opINC},
	0x05: {name: "DEC B", operands: ops(reg(B)), length: 1, cycles: cost(4), fn: opDEC},
	0x06: {name: "LD B, d8", operands: ops(reg(B), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x07: {name: "RLCA", length: 1, cycles: cost(4), fn: opRLCA},
	0x08: {name: "LD (a16), SP", operands: ops(absolute, reg(SP)), length: 3, cycles: cost(20), fn: opLD16},
	0x09: {name: "ADD HL, BC", operands: ops(reg(HL), reg(BC)), length: 1, cycles: cost(8), fn: opADDHL},
	0x0A: {name: "LD A, (BC)", operands: ops(reg(A), indirect(BC)), length: 1, cycles: cost(8), fn: opLD8},
	0x0B: {name: "DEC BC", operands: ops(reg(BC)), length: 1, cycles: cost(8), fn: opDEC16},
	0x0C: {name: "INC C", operands: ops(reg(C)), length: 1, cycles: cost(4), fn: opINC},
	0x0D: {name: "DEC C", operands: ops(reg(C)), length: 1, cycles: cost(4), fn: opDEC},
	0x0E: {name: "LD C, d8", operands: ops(reg(C), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x0F: {name: "RRCA", length: 1, cycles: cost(4), fn: opRRCA},

	// STOP is encoded with a skipped second byte.
	0x10: {name: "STOP", length: 2, cycles: cost(4), fn: opSTOP},
	0x11: {name: "LD DE, d16", operands: ops(reg(DE), immediate16), length: 3, cycles: cost(12), fn: opLD16},
	0x12: {name: "LD (DE), A", operands: ops(indirect(DE), reg(A)), length: 1, cycles: cost(8), fn: opLD8},
	0x13: {name: "INC DE", operands: ops(reg(DE)), length: 1, cycles: cost(8), fn: opINC16},
	0x14: {name: "INC D", operands: ops(reg(D)), length: 1, cycles: cost(4), fn: opINC},
	0x15: {name: "DEC D", operands: ops(reg(D)), length: 1, cycles: cost(4), fn: opDEC},
	0x16: {name: "LD D, d8", operands: ops(reg(D), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x17: {name: "RLA", length: 1, cycles: cost(4), fn: opRLA},
	0x18: {name: "JR r8", operands: ops(relative), length: 2, cycles: cost(12), fn: opJR},
	0x19: {name: "ADD HL, DE", operands: ops(reg(HL), reg(DE)), length: 1, cycles: cost(8), fn: opADDHL},
	0x1A: {name: "LD A, (DE)", operands: ops(reg(A), indirect(DE)), length: 1, cycles: cost(8), fn: opLD8},
	0x1B: {name: "DEC DE", operands: ops(reg(DE)), length: 1, cycles: cost(8), fn: opDEC16},
	0x1C: {name: "INC E", operands: ops(reg(E)), length: 1, cycles: cost(4), fn: opINC},
	0x1D: {name: "DEC E", operands: ops(reg(E)), length: 1, cycles: cost(4), fn: opDEC},
	0x1E: {name: "LD E, d8", operands: ops(reg(E), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x1F: {name: "RRA", length: 1, cycles: cost(4), fn: opRRA},

	0x20: {name: "JR NZ, r8", operands: ops(relative), length: 2, cycles: branch(12, 8), cond: condNZ, fn: opJR},
	0x21: {name: "LD HL, d16", operands: ops(reg(HL), immediate16), length: 3, cycles: cost(12), fn: opLD16},
	0x22: {name: "LD (HL+), A", operands: ops(indirectInc(HL), reg(A)), length: 1, cycles: cost(8), fn: opLD8},
	0x23: {name: "INC HL", operands: ops(reg(HL)), length: 1, cycles: cost(8), fn: opINC16},
	0x24: {name: "INC H", operands: ops(reg(H)), length: 1, cycles: cost(4), fn: opINC},
	0x25: {name: "DEC H", operands: ops(reg(H)), length: 1, cycles: cost(4), fn: opDEC},
	0x26: {name: "LD H, d8", operands: ops(reg(H), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x27: {name: "DAA", length: 1, cycles: cost(4), fn: opDAA},
	0x28: {name: "JR Z, r8", operands: ops(relative), length: 2, cycles: branch(12, 8), cond: condZ, fn: opJR},
	0x29: {name: "ADD HL, HL", operands: ops(reg(HL), reg(HL)), length: 1, cycles: cost(8), fn: opADDHL},
	0x2A: {name: "LD A, (HL+)", operands: ops(reg(A), indirectInc(HL)), length: 1, cycles: cost(8), fn: opLD8},
	0x2B: {name: "DEC HL", operands: ops(reg(HL)), length: 1, cycles: cost(8), fn: opDEC16},
	0x2C: {name: "INC L", operands: ops(reg(L)), length: 1, cycles: cost(4), fn: opINC},
	0x2D: {name: "DEC L", operands: ops(reg(L)), length: 1, cycles: cost(4), fn: opDEC},
	0x2E: {name: "LD L, d8", operands: ops(reg(L), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x2F: {name: "CPL", length: 1, cycles: cost(4), fn: opCPL},

	0x30: {name: "JR NC, r8", operands: ops(relative), length: 2, cycles: branch(12, 8), cond: condNC, fn: opJR},
	0x31: {name: "LD SP, d16", operands: ops(reg(SP), immediate16), length: 3, cycles: cost(12), fn: opLD16},
	0x32: {name: "LD (HL-), A", operands: ops(indirectDec(HL), reg(A)), length: 1, cycles: cost(8), fn: opLD8},
	0x33: {name: "INC SP", operands: ops(reg(SP)), length: 1, cycles: cost(8), fn: opINC16},
	0x34: {name: "INC (HL)", operands: ops(indirect(HL)), length: 1, cycles: cost(12), fn: opINC},
	0x35: {name: "DEC (HL)", operands: ops(indirect(HL)), length: 1, cycles: cost(12), fn: opDEC},
	0x36: {name: "LD (HL), d8", operands: ops(indirect(HL), immediate8), length: 2, cycles: cost(12), fn: opLD8},
	0x37: {name: "SCF", length: 1, cycles: cost(4), fn: opSCF},
	0x38: {name: "JR C, r8", operands: ops(relative), length: 2, cycles: branch(12, 8), cond: condC, fn: opJR},
	0x39: {name: "ADD HL, SP", operands: ops(reg(HL), reg(SP)), length: 1, cycles: cost(8), fn: opADDHL},
	0x3A: {name: "LD A, (HL-)", operands: ops(reg(A), indirectDec(HL)), length: 1, cycles: cost(8), fn: opLD8},
	0x3B: {name: "DEC SP", operands: ops(reg(SP)), length: 1, cycles: cost(8), fn: opDEC16},
	0x3C: {name: "INC A", operands: ops(reg(A)), length: 1, cycles: cost(4), fn: opINC},
	0x3D: {name: "DEC A", operands: ops(reg(A)), length: 1, cycles: cost(4), fn: opDEC},
	0x3E: {name: "LD A, d8", operands: ops(reg(A), immediate8), length: 2, cycles: cost(8), fn: opLD8},
	0x3F: {name: "CCF", length: 1, cycles: cost(4), fn: opCCF},

	// 0x40-0xBF are generated in init.

	0xC0: {name: "RET NZ", length: 1, cycles: branch(20, 8), cond: condNZ, fn: opRET},
	0xC1: {name: "POP BC", operands: ops(reg(BC)), length: 1, cycles: cost(12), fn: opPOP},
	0xC2: {name: "JP NZ, a16", operands: ops(immediate16), length: 3, cycles: branch(16, 12), cond: condNZ, fn: opJP},
	0xC3: {name: "JP a16", operands: ops(immediate16), length: 3, cycles: cost(16), fn: opJP},
	0xC4: {name: "CALL NZ, a16", operands: ops(immediate16), length: 3, cycles: branch(24, 12), cond: condNZ, fn: opCALL},
	0xC5: {name: "PUSH BC", operands: ops(reg(BC)), length: 1, cycles: cost(16), fn: opPUSH},
	0xC6: {name: "ADD A, d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opADD},
	0xC7: {name: "RST 00H", length: 1, cycles: cost(16), fn: opRST},
	0xC8: {name: "RET Z", length: 1, cycles: branch(20, 8), cond: condZ, fn: opRET},
	0xC9: {name: "RET", length: 1, cycles: cost(16), fn: opRET},
	0xCA: {name: "JP Z, a16", operands: ops(immediate16), length: 3, cycles: branch(16, 12), cond: condZ, fn: opJP},
	// The decoder consumes the 0xCB prefix itself; this entry is a guard.
	0xCB: {name: "PREFIX CB", length: 1, cycles: cost(4), fn: opPrefix},
	0xCC: {name: "CALL Z, a16", operands: ops(immediate16), length: 3, cycles: branch(24, 12), cond: condZ, fn: opCALL},
	0xCD: {name: "CALL a16", operands: ops(immediate16), length: 3, cycles: cost(24), fn: opCALL},
	0xCE: {name: "ADC A, d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opADC},
	0xCF: {name: "RST 08H", length: 1, cycles: cost(16), fn: opRST},

	0xD0: {name: "RET NC", length: 1, cycles: branch(20, 8), cond: condNC, fn: opRET},
	0xD1: {name: "POP DE", operands: ops(reg(DE)), length: 1, cycles: cost(12), fn: opPOP},
	0xD2: {name: "JP NC, a16", operands: ops(immediate16), length: 3, cycles: branch(16, 12), cond: condNC, fn: opJP},
	0xD4: {name: "CALL NC, a16", operands: ops(immediate16), length: 3, cycles: branch(24, 12), cond: condNC, fn: opCALL},
	0xD5: {name: "PUSH DE", operands: ops(reg(DE)), length: 1, cycles: cost(16), fn: opPUSH},
	0xD6: {name: "SUB d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opSUB},
	0xD7: {name: "RST 10H", length: 1, cycles: cost(16), fn: opRST},
	0xD8: {name: "RET C", length: 1, cycles: branch(20, 8), cond: condC, fn: opRET},
	0xD9: {name: "RETI", length: 1, cycles: cost(16), fn: opRETI},
	0xDA: {name: "JP C, a16", operands: ops(immediate16), length: 3, cycles: branch(16, 12), cond: condC, fn: opJP},
	0xDC: {name: "CALL C, a16", operands: ops(immediate16), length: 3, cycles: branch(24, 12), cond: condC, fn: opCALL},
	0xDE: {name: "SBC A, d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opSBC},
	0xDF: {name: "RST 18H", length: 1, cycles: cost(16), fn: opRST},

	0xE0: {name: "LDH (a8), A", operands: ops(highPage, reg(A)), length: 2, cycles: cost(12), fn: opLD8},
	0xE1: {name: "POP HL", operands: ops(reg(HL)), length: 1, cycles: cost(12), fn: opPOP},
	0xE2: {name: "LD (C), A", operands: ops(highPageC, reg(A)), length: 1, cycles: cost(8), fn: opLD8},
	0xE5: {name: "PUSH HL", operands: ops(reg(HL)), length: 1, cycles: cost(16), fn: opPUSH},
	0xE6: {name: "AND d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opAND},
	0xE7: {name: "RST 20H", length: 1, cycles: cost(16), fn: opRST},
	0xE8: {name: "ADD SP, r8", operands: ops(reg(SP), relative), length: 2, cycles: cost(16), fn: opADDSP},
	0xE9: {name: "JP HL", length: 1, cycles: cost(4), fn: opJPHL},
	0xEA: {name: "LD (a16), A", operands: ops(absolute, reg(A)), length: 3, cycles: cost(16), fn: opLD8},
	0xEE: {name: "XOR d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opXOR},
	0xEF: {name: "RST 28H", length: 1, cycles: cost(16), fn: opRST},

	0xF0: {name: "LDH A, (a8)", operands: ops(reg(A), highPage), length: 2, cycles: cost(12), fn: opLD8},
	0xF1: {name: "POP AF", operands: ops(reg(AF)), length: 1, cycles: cost(12), fn: opPOP},
	0xF2: {name: "LD A, (C)", operands: ops(reg(A), highPageC), length: 1, cycles: cost(8), fn: opLD8},
	0xF3: {name: "DI", length: 1, cycles: cost(4), fn: opDI},
	0xF5: {name: "PUSH AF", operands: ops(reg(AF)), length: 1, cycles: cost(16), fn: opPUSH},
	0xF6: {name: "OR d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opOR},
	0xF7: {name: "RST 30H", length: 1, cycles: cost(16), fn: opRST},
	0xF8: {name: "LD HL, SP+r8", operands: ops(reg(HL), spOffset), length: 2, cycles: cost(12), fn: opLD16},
	0xF9: {name: "LD SP, HL", operands: ops(reg(SP), reg(HL)), length: 1, cycles: cost(8), fn: opLD16},
	0xFA: {name: "LD A, (a16)", operands: ops(reg(A), absolute), length: 3, cycles: cost(16), fn: opLD8},
	0xFB: {name: "EI", length: 1, cycles: cost(4), fn: opEI},
	0xFE: {name: "CP d8", operands: ops(immediate8), length: 2, cycles: cost(8), fn: opCP},
	0xFF: {name: "RST 38H", length: 1, cycles: cost(16), fn: opRST},
}

// matrixOperands is the register column order shared by the LD/ALU blocks
// and the whole extended table.
var matrixOperands = [8]Operand{
	reg(B), reg(C), reg(D), reg(E), reg(H), reg(L), indirect(HL), reg(A),
}

var matrixNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// reservedOpcodes is the fixed set of undefined primary opcodes. They decode
// to the invalid-opcode instruction; executing one faults.
var reservedOpcodes = []uint8{
	0xD3, 0xDB, 0xDD, 0xE3, 0xE4, 0xEB, 0xEC, 0xED, 0xF4, 0xFC, 0xFD,
}

func init() {
	// 0x40-0x7F: LD r, r'. 0x76 would be LD (HL), (HL) and is HALT instead.
	for i := 0; i < 64; i++ {
		opcode := 0x40 + i
		if opcode == 0x76 {
			primaryTable[opcode] = definition{name: "HALT", length: 1, cycles: cost(4), fn: opHALT}
			continue
		}
		dst := i >> 3 & 7
		src := i & 7
		cycles := uint8(4)
		if dst == 6 || src == 6 {
			cycles = 8
		}
		primaryTable[opcode] = definition{
			name:     "LD " + matrixNames[dst] + ", " + matrixNames[src],
			operands: ops(matrixOperands[dst], matrixOperands[src]),
			length:   1,
			cycles:   cost(cycles),
			fn:       opLD8,
		}
	}

	// 0x80-0xBF: the ALU block, eight opcodes per operation.
	aluOps := []struct {
		name string
		fn   opFn
	}{
		{"ADD A, ", opADD},
		{"ADC A, ", opADC},
		{"SUB ", opSUB},
		{"SBC A, ", opSBC},
		{"AND ", opAND},
		{"XOR ", opXOR},
		{"OR ", opOR},
		{"CP ", opCP},
	}
	for row, alu := range aluOps {
		for col := 0; col < 8; col++ {
			cycles := uint8(4)
			if col == 6 {
				cycles = 8
			}
			primaryTable[0x80+row*8+col] = definition{
				name:     alu.name + matrixNames[col],
				operands: ops(matrixOperands[col]),
				length:   1,
				cycles:   cost(cycles),
				fn:       alu.fn,
			}
		}
	}

	for _, opcode := range reservedOpcodes {
		primaryTable[opcode] = definition{
			name:    fmt.Sprintf("ILLEGAL 0x%02X", opcode),
			length:  1,
			cycles:  cost(4),
			fn:      opInvalid,
			invalid: true,
		}
	}

	for opcode, def := range primaryTable {
		if def.fn == nil {
			panic(fmt.Sprintf("primary table entry 0x%02X is undefined", opcode))
		}
	}
}
