package sim

// This file implements the 56 documented 6502 mnemonics (spec.md §4.4).
// Every handler follows the same shape as the opcode table's Exec field:
// it resolves its own operand (via resolveAddress for the nine generic
// modes, or by hand for Implied/Accumulator/Indirect/Relative/JSR/RTS/
// RTI/BRK), performs the operation, and adds its own share of the cycle
// count on top of whatever resolveAddress already charged.

// --- load/store -------------------------------------------------------

func opLDA(c *CPU, mode AddrMode) error {
	c.A = c.Bus.Read8(c.resolveAddress(mode))
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

func opLDX(c *CPU, mode AddrMode) error {
	c.X = c.Bus.Read8(c.resolveAddress(mode))
	c.setNZ(c.X)
	c.Cycles += 2
	return nil
}

func opLDY(c *CPU, mode AddrMode) error {
	c.Y = c.Bus.Read8(c.resolveAddress(mode))
	c.setNZ(c.Y)
	c.Cycles += 2
	return nil
}

func opSTA(c *CPU, mode AddrMode) error {
	c.Bus.Write8(c.resolveAddress(mode), c.A)
	c.Cycles += 2
	return nil
}

func opSTX(c *CPU, mode AddrMode) error {
	c.Bus.Write8(c.resolveAddress(mode), c.X)
	c.Cycles += 2
	return nil
}

func opSTY(c *CPU, mode AddrMode) error {
	c.Bus.Write8(c.resolveAddress(mode), c.Y)
	c.Cycles += 2
	return nil
}

// --- transfers ----------------------------------------------------------

func opTAX(c *CPU, mode AddrMode) error { c.X = c.A; c.setNZ(c.X); c.Cycles += 2; return nil }
func opTAY(c *CPU, mode AddrMode) error { c.Y = c.A; c.setNZ(c.Y); c.Cycles += 2; return nil }
func opTXA(c *CPU, mode AddrMode) error { c.A = c.X; c.setNZ(c.A); c.Cycles += 2; return nil }
func opTYA(c *CPU, mode AddrMode) error { c.A = c.Y; c.setNZ(c.A); c.Cycles += 2; return nil }
func opTSX(c *CPU, mode AddrMode) error { c.X = c.S; c.setNZ(c.X); c.Cycles += 2; return nil }

// TXS does not affect flags.
func opTXS(c *CPU, mode AddrMode) error { c.S = c.X; c.Cycles += 2; return nil }

// --- stack ----------------------------------------------------------------

func opPHA(c *CPU, mode AddrMode) error { c.push(c.A); c.Cycles += 3; return nil }

// PHP pushes P with the unused bit forced to 1.
func opPHP(c *CPU, mode AddrMode) error { c.push(c.P | FlagU); c.Cycles += 3; return nil }

func opPLA(c *CPU, mode AddrMode) error {
	c.A = c.pop()
	c.setNZ(c.A)
	c.Cycles += 4
	return nil
}

// PLP restores P with the unused bit forced to 1.
func opPLP(c *CPU, mode AddrMode) error {
	c.P = c.pop() | FlagU
	c.Cycles += 4
	return nil
}

// --- logic ------------------------------------------------------------

func opORA(c *CPU, mode AddrMode) error {
	c.A |= c.Bus.Read8(c.resolveAddress(mode))
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

func opAND(c *CPU, mode AddrMode) error {
	c.A &= c.Bus.Read8(c.resolveAddress(mode))
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

func opEOR(c *CPU, mode AddrMode) error {
	c.A ^= c.Bus.Read8(c.resolveAddress(mode))
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

// BIT tests A & M without changing A: Z from the AND, N/V copied straight
// from M's bit 7/6.
func opBIT(c *CPU, mode AddrMode) error {
	m := c.Bus.Read8(c.resolveAddress(mode))
	c.setFlag(FlagZ, c.A&m == 0)
	c.setFlag(FlagN, m&0x80 != 0)
	c.setFlag(FlagV, m&0x40 != 0)
	c.Cycles += 2
	return nil
}

// --- arithmetic ---------------------------------------------------------

// doAdd is the shared binary/decimal add routine ADC and SBC (in decimal
// mode) both funnel through. It preserves the source's decimal-mode
// low-nibble access of byte&0xF0 rather than byte&0x0F verbatim -- see
// DESIGN.md's Open Question ledger.
func (c *CPU) doAdd(m byte) {
	if c.getFlag(FlagD) {
		carry := byte(0)
		if c.getFlag(FlagC) {
			carry = 1
		}
		r1 := int(c.A&0x0F) + int(m&0xF0) + int(carry)
		if r1 > 0x09 {
			r1 += 0x06
		}
		r2 := int(c.A&0xF0) + int(m&0xF0)
		if r2 > 0x90 {
			r2 += 0x60
		}
		result := r1 + r2
		c.setFlag(FlagC, result > 0xFF)
		c.A = byte(result)
		c.setNZ(c.A)
		return
	}

	carry := 0
	if c.getFlag(FlagC) {
		carry = 1
	}
	sum := int(c.A) + int(m) + carry
	overflow := ((int(c.A&0x7F)+int(m&0x7F)+carry)<<1 ^ sum) & 0x100
	c.setFlag(FlagV, overflow != 0)
	c.setFlag(FlagC, sum > 0xFF)
	c.A = byte(sum)
	c.setNZ(c.A)
}

func opADC(c *CPU, mode AddrMode) error {
	m := c.Bus.Read8(c.resolveAddress(mode))
	c.doAdd(m)
	c.Cycles += 2
	return nil
}

// SBC in binary mode is ADC of the ones' complement of M; in decimal mode
// it instead runs 0x99-M through the same routine, matching the source.
func opSBC(c *CPU, mode AddrMode) error {
	m := c.Bus.Read8(c.resolveAddress(mode))
	if c.getFlag(FlagD) {
		c.doAdd(0x99 - m)
	} else {
		c.doAdd(m ^ 0xFF)
	}
	c.Cycles += 2
	return nil
}

func (c *CPU) compare(reg, m byte) {
	result := int(reg) + int(m^0xFF) + 1
	c.setFlag(FlagC, result > 0xFF)
	c.setNZ(byte(result))
}

func opCMP(c *CPU, mode AddrMode) error {
	m := c.Bus.Read8(c.resolveAddress(mode))
	c.compare(c.A, m)
	c.Cycles += 2
	return nil
}

func opCPX(c *CPU, mode AddrMode) error {
	m := c.Bus.Read8(c.resolveAddress(mode))
	c.compare(c.X, m)
	c.Cycles += 2
	return nil
}

func opCPY(c *CPU, mode AddrMode) error {
	m := c.Bus.Read8(c.resolveAddress(mode))
	c.compare(c.Y, m)
	c.Cycles += 2
	return nil
}

// --- increment / decrement ------------------------------------------------

func opINC(c *CPU, mode AddrMode) error {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read8(addr) + 1
	c.Bus.Write8(addr, v)
	c.setNZ(v)
	c.Cycles += 4
	return nil
}

func opDEC(c *CPU, mode AddrMode) error {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read8(addr) - 1
	c.Bus.Write8(addr, v)
	c.setNZ(v)
	c.Cycles += 4
	return nil
}

func opINX(c *CPU, mode AddrMode) error { c.X++; c.setNZ(c.X); c.Cycles += 2; return nil }
func opINY(c *CPU, mode AddrMode) error { c.Y++; c.setNZ(c.Y); c.Cycles += 2; return nil }
func opDEX(c *CPU, mode AddrMode) error { c.X--; c.setNZ(c.X); c.Cycles += 2; return nil }
func opDEY(c *CPU, mode AddrMode) error { c.Y--; c.setNZ(c.Y); c.Cycles += 2; return nil }

// --- shifts / rotates -----------------------------------------------------

func opASL(c *CPU, mode AddrMode) error {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read8(addr)
	c.setFlag(FlagC, v&0x80 != 0)
	v <<= 1
	c.Bus.Write8(addr, v)
	c.setNZ(v)
	c.Cycles += 4
	return nil
}

func opASLAcc(c *CPU, mode AddrMode) error {
	c.setFlag(FlagC, c.A&0x80 != 0)
	c.A <<= 1
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

func opLSR(c *CPU, mode AddrMode) error {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read8(addr)
	c.setFlag(FlagC, v&0x01 != 0)
	v >>= 1
	c.Bus.Write8(addr, v)
	c.setNZ(v)
	c.Cycles += 4
	return nil
}

func opLSRAcc(c *CPU, mode AddrMode) error {
	c.setFlag(FlagC, c.A&0x01 != 0)
	c.A >>= 1
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

func opROL(c *CPU, mode AddrMode) error {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read8(addr)
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 1
	}
	c.setFlag(FlagC, v&0x80 != 0)
	v = v<<1 | carryIn
	c.Bus.Write8(addr, v)
	c.setNZ(v)
	c.Cycles += 4
	return nil
}

func opROLAcc(c *CPU, mode AddrMode) error {
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 1
	}
	c.setFlag(FlagC, c.A&0x80 != 0)
	c.A = c.A<<1 | carryIn
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

func opROR(c *CPU, mode AddrMode) error {
	addr := c.resolveAddress(mode)
	v := c.Bus.Read8(addr)
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 0x80
	}
	c.setFlag(FlagC, v&0x01 != 0)
	v = v>>1 | carryIn
	c.Bus.Write8(addr, v)
	c.setNZ(v)
	c.Cycles += 4
	return nil
}

func opRORAcc(c *CPU, mode AddrMode) error {
	carryIn := byte(0)
	if c.getFlag(FlagC) {
		carryIn = 0x80
	}
	c.setFlag(FlagC, c.A&0x01 != 0)
	c.A = c.A>>1 | carryIn
	c.setNZ(c.A)
	c.Cycles += 2
	return nil
}

// --- flags ------------------------------------------------------------

func opCLC(c *CPU, mode AddrMode) error { c.setFlag(FlagC, false); c.Cycles += 2; return nil }
func opCLD(c *CPU, mode AddrMode) error { c.setFlag(FlagD, false); c.Cycles += 2; return nil }
func opCLI(c *CPU, mode AddrMode) error { c.setFlag(FlagI, false); c.Cycles += 2; return nil }
func opCLV(c *CPU, mode AddrMode) error { c.setFlag(FlagV, false); c.Cycles += 2; return nil }
func opSEC(c *CPU, mode AddrMode) error { c.setFlag(FlagC, true); c.Cycles += 2; return nil }
func opSED(c *CPU, mode AddrMode) error { c.setFlag(FlagD, true); c.Cycles += 2; return nil }
func opSEI(c *CPU, mode AddrMode) error { c.setFlag(FlagI, true); c.Cycles += 2; return nil }

func opNOP(c *CPU, mode AddrMode) error { c.Cycles += 2; return nil }

// --- branches -------------------------------------------------------------

// branch is shared by all eight conditional branches. On the real opcode
// byte, bits 6-7 select which flag (N,V,C,Z) and bit 5 selects whether the
// branch takes when the flag is set or clear; here each mnemonic simply
// names its own flag and polarity directly rather than re-deriving them
// from the opcode, since the table already dispatches by mnemonic.
func (c *CPU) branch(flag byte, takeWhenSet bool) error {
	offset := int8(c.fetchOperand8())
	c.Cycles += 2

	if c.getFlag(flag) != takeWhenSet {
		return nil
	}

	c.Cycles++
	target := uint16(int32(c.PC) + int32(offset))
	if pageCrossed(c.PC, target) {
		c.Cycles++
	}
	c.PC = target
	return nil
}

func opBPL(c *CPU, mode AddrMode) error { return c.branch(FlagN, false) }
func opBMI(c *CPU, mode AddrMode) error { return c.branch(FlagN, true) }
func opBVC(c *CPU, mode AddrMode) error { return c.branch(FlagV, false) }
func opBVS(c *CPU, mode AddrMode) error { return c.branch(FlagV, true) }
func opBCC(c *CPU, mode AddrMode) error { return c.branch(FlagC, false) }
func opBCS(c *CPU, mode AddrMode) error { return c.branch(FlagC, true) }
func opBNE(c *CPU, mode AddrMode) error { return c.branch(FlagZ, false) }
func opBEQ(c *CPU, mode AddrMode) error { return c.branch(FlagZ, true) }

// --- jumps / subroutines --------------------------------------------------

func opJMPAbs(c *CPU, mode AddrMode) error {
	c.PC = c.resolveAddress(mode)
	c.Cycles++
	return nil
}

// opJMPInd reproduces the 6502's indirect-JMP page-wrap bug: the pointer's
// high byte is fetched from (lowOperandByte+1)&0xFF combined with the
// unchanged high operand byte, rather than carrying into the high byte.
func opJMPInd(c *CPU, mode AddrMode) error {
	lo := c.fetchOperand8()
	hi := c.fetchOperand8()
	ptr := uint16(hi)<<8 | uint16(lo)

	targetLo := c.Bus.Read8(ptr)
	wrapped := uint16(hi)<<8 | uint16(lo+1)
	targetHi := c.Bus.Read8(wrapped)

	c.PC = uint16(targetHi)<<8 | uint16(targetLo)
	c.Cycles += 5
	return nil
}

// opJSR reads the operand low byte, advances PC to point at the
// instruction's third byte, reads the high byte without advancing past it,
// then pushes that PC (the address of its own last byte) before jumping.
func opJSR(c *CPU, mode AddrMode) error {
	lo := c.fetchOperand8()
	hi := c.Bus.Read8(c.PC)
	c.pushWord(c.PC)
	c.PC = uint16(hi)<<8 | uint16(lo)
	c.Cycles += 6
	return nil
}

func opRTS(c *CPU, mode AddrMode) error {
	c.PC = c.popWord() + 1
	c.Cycles += 6
	return nil
}

// opRTI pops P (forcing the unused bit), then PC low, then PC high --
// a different pop order than RTS, so it doesn't use popWord.
func opRTI(c *CPU, mode AddrMode) error {
	c.P = c.pop() | FlagU
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	c.PC = hi<<8 | lo
	c.Cycles += 6
	return nil
}

// opBRK reads the IRQ vector, skips the pad byte, pushes PC/P, then sets I
// and B on the live P register only after the push -- the pushed copy of P
// therefore does not have B set.
func opBRK(c *CPU, mode AddrMode) error {
	vector := c.Bus.Read16(0xFFFE)
	c.PC++
	c.pushWord(c.PC)
	c.push(c.P)
	c.P |= FlagI | FlagB
	c.PC = vector
	c.Cycles += 7
	return nil
}

// opInvalid traps on an undocumented opcode. PC is rewound so it still
// points at the offending byte, making the failure reproducible.
func opInvalid(c *CPU, mode AddrMode) error {
	c.PC--
	return &UndocumentedOpcodeError{Opcode: c.Bus.Peek8(c.PC)}
}
