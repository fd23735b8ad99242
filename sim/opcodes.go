package sim

// buildInstLookup populates the 256-entry Opcode Table (spec.md §4.5) with
// the documented NMOS 6502 instruction set. Every slot not explicitly
// listed here defaults to the zero value, which combined with instLookup's
// declaration-time zero AddrMode (ModeInvalid) and a nil Exec would panic
// on dispatch -- so the loop below first fills every slot with the
// invalid-opcode trap, then overwrites the documented ones. This mirrors
// the source's approach of listing all 256 slots explicitly, adapted to
// Go's sparser table-then-override idiom rather than writing out 105
// identical invalid rows by hand.
func (c *CPU) buildInstLookup() {
	for i := range c.instLookup {
		c.instLookup[i] = instruction{Name: "", Mode: ModeInvalid, Exec: opInvalid}
	}

	type row struct {
		op   byte
		name string
		mode AddrMode
		exec func(*CPU, AddrMode) error
	}

	rows := []row{
		// ADC
		{0x69, "ADC", ModeImmediate, opADC}, {0x65, "ADC", ModeZeroPage, opADC},
		{0x75, "ADC", ModeZeroPageX, opADC}, {0x6D, "ADC", ModeAbsolute, opADC},
		{0x7D, "ADC", ModeAbsoluteX, opADC}, {0x79, "ADC", ModeAbsoluteY, opADC},
		{0x61, "ADC", ModeIndirectX, opADC}, {0x71, "ADC", ModeIndirectY, opADC},

		// AND
		{0x29, "AND", ModeImmediate, opAND}, {0x25, "AND", ModeZeroPage, opAND},
		{0x35, "AND", ModeZeroPageX, opAND}, {0x2D, "AND", ModeAbsolute, opAND},
		{0x3D, "AND", ModeAbsoluteX, opAND}, {0x39, "AND", ModeAbsoluteY, opAND},
		{0x21, "AND", ModeIndirectX, opAND}, {0x31, "AND", ModeIndirectY, opAND},

		// ASL
		{0x0A, "ASL", ModeAccumulator, opASLAcc}, {0x06, "ASL", ModeZeroPage, opASL},
		{0x16, "ASL", ModeZeroPageX, opASL}, {0x0E, "ASL", ModeAbsolute, opASL},
		{0x1E, "ASL", ModeAbsoluteX, opASL},

		// branches
		{0x90, "BCC", ModeRelative, opBCC}, {0xB0, "BCS", ModeRelative, opBCS},
		{0xF0, "BEQ", ModeRelative, opBEQ}, {0x30, "BMI", ModeRelative, opBMI},
		{0xD0, "BNE", ModeRelative, opBNE}, {0x10, "BPL", ModeRelative, opBPL},
		{0x50, "BVC", ModeRelative, opBVC}, {0x70, "BVS", ModeRelative, opBVS},

		// BIT
		{0x24, "BIT", ModeZeroPage, opBIT}, {0x2C, "BIT", ModeAbsolute, opBIT},

		// BRK
		{0x00, "BRK", ModeImplied, opBRK},

		// flag clear/set
		{0x18, "CLC", ModeImplied, opCLC}, {0xD8, "CLD", ModeImplied, opCLD},
		{0x58, "CLI", ModeImplied, opCLI}, {0xB8, "CLV", ModeImplied, opCLV},
		{0x38, "SEC", ModeImplied, opSEC}, {0xF8, "SED", ModeImplied, opSED},
		{0x78, "SEI", ModeImplied, opSEI},

		// CMP/CPX/CPY
		{0xC9, "CMP", ModeImmediate, opCMP}, {0xC5, "CMP", ModeZeroPage, opCMP},
		{0xD5, "CMP", ModeZeroPageX, opCMP}, {0xCD, "CMP", ModeAbsolute, opCMP},
		{0xDD, "CMP", ModeAbsoluteX, opCMP}, {0xD9, "CMP", ModeAbsoluteY, opCMP},
		{0xC1, "CMP", ModeIndirectX, opCMP}, {0xD1, "CMP", ModeIndirectY, opCMP},
		{0xE0, "CPX", ModeImmediate, opCPX}, {0xE4, "CPX", ModeZeroPage, opCPX},
		{0xEC, "CPX", ModeAbsolute, opCPX},
		{0xC0, "CPY", ModeImmediate, opCPY}, {0xC4, "CPY", ModeZeroPage, opCPY},
		{0xCC, "CPY", ModeAbsolute, opCPY},

		// DEC/DEX/DEY
		{0xC6, "DEC", ModeZeroPage, opDEC}, {0xD6, "DEC", ModeZeroPageX, opDEC},
		{0xCE, "DEC", ModeAbsolute, opDEC}, {0xDE, "DEC", ModeAbsoluteX, opDEC},
		{0xCA, "DEX", ModeImplied, opDEX}, {0x88, "DEY", ModeImplied, opDEY},

		// EOR
		{0x49, "EOR", ModeImmediate, opEOR}, {0x45, "EOR", ModeZeroPage, opEOR},
		{0x55, "EOR", ModeZeroPageX, opEOR}, {0x4D, "EOR", ModeAbsolute, opEOR},
		{0x5D, "EOR", ModeAbsoluteX, opEOR}, {0x59, "EOR", ModeAbsoluteY, opEOR},
		{0x41, "EOR", ModeIndirectX, opEOR}, {0x51, "EOR", ModeIndirectY, opEOR},

		// INC/INX/INY
		{0xE6, "INC", ModeZeroPage, opINC}, {0xF6, "INC", ModeZeroPageX, opINC},
		{0xEE, "INC", ModeAbsolute, opINC}, {0xFE, "INC", ModeAbsoluteX, opINC},
		{0xE8, "INX", ModeImplied, opINX}, {0xC8, "INY", ModeImplied, opINY},

		// JMP/JSR
		{0x4C, "JMP", ModeAbsolute, opJMPAbs}, {0x6C, "JMP", ModeIndirect, opJMPInd},
		{0x20, "JSR", ModeAbsolute, opJSR},

		// LDA/LDX/LDY
		{0xA9, "LDA", ModeImmediate, opLDA}, {0xA5, "LDA", ModeZeroPage, opLDA},
		{0xB5, "LDA", ModeZeroPageX, opLDA}, {0xAD, "LDA", ModeAbsolute, opLDA},
		{0xBD, "LDA", ModeAbsoluteX, opLDA}, {0xB9, "LDA", ModeAbsoluteY, opLDA},
		{0xA1, "LDA", ModeIndirectX, opLDA}, {0xB1, "LDA", ModeIndirectY, opLDA},
		{0xA2, "LDX", ModeImmediate, opLDX}, {0xA6, "LDX", ModeZeroPage, opLDX},
		{0xB6, "LDX", ModeZeroPageY, opLDX}, {0xAE, "LDX", ModeAbsolute, opLDX},
		{0xBE, "LDX", ModeAbsoluteY, opLDX},
		{0xA0, "LDY", ModeImmediate, opLDY}, {0xA4, "LDY", ModeZeroPage, opLDY},
		{0xB4, "LDY", ModeZeroPageX, opLDY}, {0xAC, "LDY", ModeAbsolute, opLDY},
		{0xBC, "LDY", ModeAbsoluteX, opLDY},

		// LSR
		{0x4A, "LSR", ModeAccumulator, opLSRAcc}, {0x46, "LSR", ModeZeroPage, opLSR},
		{0x56, "LSR", ModeZeroPageX, opLSR}, {0x4E, "LSR", ModeAbsolute, opLSR},
		{0x5E, "LSR", ModeAbsoluteX, opLSR},

		// NOP
		{0xEA, "NOP", ModeImplied, opNOP},

		// ORA
		{0x09, "ORA", ModeImmediate, opORA}, {0x05, "ORA", ModeZeroPage, opORA},
		{0x15, "ORA", ModeZeroPageX, opORA}, {0x0D, "ORA", ModeAbsolute, opORA},
		{0x1D, "ORA", ModeAbsoluteX, opORA}, {0x19, "ORA", ModeAbsoluteY, opORA},
		{0x01, "ORA", ModeIndirectX, opORA}, {0x11, "ORA", ModeIndirectY, opORA},

		// stack
		{0x48, "PHA", ModeImplied, opPHA}, {0x08, "PHP", ModeImplied, opPHP},
		{0x68, "PLA", ModeImplied, opPLA}, {0x28, "PLP", ModeImplied, opPLP},

		// ROL/ROR
		{0x2A, "ROL", ModeAccumulator, opROLAcc}, {0x26, "ROL", ModeZeroPage, opROL},
		{0x36, "ROL", ModeZeroPageX, opROL}, {0x2E, "ROL", ModeAbsolute, opROL},
		{0x3E, "ROL", ModeAbsoluteX, opROL},
		{0x6A, "ROR", ModeAccumulator, opRORAcc}, {0x66, "ROR", ModeZeroPage, opROR},
		{0x76, "ROR", ModeZeroPageX, opROR}, {0x6E, "ROR", ModeAbsolute, opROR},
		{0x7E, "ROR", ModeAbsoluteX, opROR},

		// RTI/RTS
		{0x40, "RTI", ModeImplied, opRTI}, {0x60, "RTS", ModeImplied, opRTS},

		// SBC
		{0xE9, "SBC", ModeImmediate, opSBC}, {0xE5, "SBC", ModeZeroPage, opSBC},
		{0xF5, "SBC", ModeZeroPageX, opSBC}, {0xED, "SBC", ModeAbsolute, opSBC},
		{0xFD, "SBC", ModeAbsoluteX, opSBC}, {0xF9, "SBC", ModeAbsoluteY, opSBC},
		{0xE1, "SBC", ModeIndirectX, opSBC}, {0xF1, "SBC", ModeIndirectY, opSBC},

		// STA/STX/STY
		{0x85, "STA", ModeZeroPage, opSTA}, {0x95, "STA", ModeZeroPageX, opSTA},
		{0x8D, "STA", ModeAbsolute, opSTA}, {0x9D, "STA", ModeAbsoluteX, opSTA},
		{0x99, "STA", ModeAbsoluteY, opSTA}, {0x81, "STA", ModeIndirectX, opSTA},
		{0x91, "STA", ModeIndirectY, opSTA},
		{0x86, "STX", ModeZeroPage, opSTX}, {0x96, "STX", ModeZeroPageY, opSTX},
		{0x8E, "STX", ModeAbsolute, opSTX},
		{0x84, "STY", ModeZeroPage, opSTY}, {0x94, "STY", ModeZeroPageX, opSTY},
		{0x8C, "STY", ModeAbsolute, opSTY},

		// transfers
		{0xAA, "TAX", ModeImplied, opTAX}, {0xA8, "TAY", ModeImplied, opTAY},
		{0xBA, "TSX", ModeImplied, opTSX}, {0x8A, "TXA", ModeImplied, opTXA},
		{0x9A, "TXS", ModeImplied, opTXS}, {0x98, "TYA", ModeImplied, opTYA},
	}

	for _, r := range rows {
		c.instLookup[r.op] = instruction{Name: r.name, Mode: r.mode, Exec: r.exec}
	}
}
