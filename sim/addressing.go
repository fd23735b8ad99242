package sim

// AddrMode identifies one of the 6502's addressing modes. It is the mode
// half of an opcode table entry and drives both the resolver and the
// disassembler/assembler's rendering tables.
type AddrMode int

const (
	ModeInvalid AddrMode = iota
	ModeImplied
	ModeAccumulator
	ModeImmediate
	ModeAbsoluteX
	ModeAbsoluteY
	ModeAbsolute
	ModeZeroPageX
	ModeZeroPageY
	ModeZeroPage
	ModeIndirectX
	ModeIndirectY
	ModeIndirect
	ModeRelative
)

// String names an addressing mode, chiefly for logging.
func (m AddrMode) String() string {
	switch m {
	case ModeImplied:
		return "implied"
	case ModeAccumulator:
		return "accumulator"
	case ModeImmediate:
		return "immediate"
	case ModeAbsoluteX:
		return "absolute,x"
	case ModeAbsoluteY:
		return "absolute,y"
	case ModeAbsolute:
		return "absolute"
	case ModeZeroPageX:
		return "zeropage,x"
	case ModeZeroPageY:
		return "zeropage,y"
	case ModeZeroPage:
		return "zeropage"
	case ModeIndirectX:
		return "(indirect,x)"
	case ModeIndirectY:
		return "(indirect),y"
	case ModeIndirect:
		return "indirect"
	case ModeRelative:
		return "relative"
	default:
		return "invalid"
	}
}

// operandLen returns the number of operand bytes an instruction of this
// mode carries, used through instructionLen by the stepping engine's
// breakpoint-footprint check.
func operandLen(m AddrMode) int {
	switch m {
	case ModeImplied, ModeAccumulator, ModeInvalid:
		return 0
	case ModeImmediate, ModeZeroPage, ModeZeroPageX, ModeZeroPageY,
		ModeIndirectX, ModeIndirectY, ModeRelative:
		return 1
	case ModeAbsolute, ModeAbsoluteX, ModeAbsoluteY, ModeIndirect:
		return 2
	default:
		return 0
	}
}

// instructionLen is the full byte footprint (opcode + operand) of an
// instruction in this mode, per spec.md §4.6's bucketing.
func instructionLen(m AddrMode) int {
	return 1 + operandLen(m)
}

// pageCrossed reports whether addr and addr+offset lie in different 256
// byte pages.
func pageCrossed(base, resolved uint16) bool {
	return base&0xFF00 != resolved&0xFF00
}

// fetchOperand8 reads the byte at PC and advances PC past it.
func (c *CPU) fetchOperand8() byte {
	b := c.Bus.Read8(c.PC)
	c.PC++
	return b
}

// fetchOperand16 reads a little-endian 16-bit operand at PC and advances PC
// past both bytes.
func (c *CPU) fetchOperand16() uint16 {
	lo := uint16(c.fetchOperand8())
	hi := uint16(c.fetchOperand8())
	return hi<<8 | lo
}

// resolveAddress implements the Addressing-Mode Resolver (spec.md §4.3) for
// the nine modes it covers. It reads the operand from PC, advances PC past
// it, and adds the mode's cycle cost to c.Cycles (including the +1
// page-cross penalty for indexed absolute/indirect-Y reads). Implied,
// Accumulator, Indirect and Relative are not handled here; their
// instructions manage addressing and cycle accounting themselves.
func (c *CPU) resolveAddress(mode AddrMode) uint16 {
	switch mode {
	case ModeImmediate:
		addr := c.PC
		c.PC++
		return addr
	case ModeZeroPage:
		addr := uint16(c.fetchOperand8())
		c.Cycles += 2
		return addr
	case ModeZeroPageX:
		addr := uint16(c.fetchOperand8()+c.X) & 0xFF
		c.Cycles += 2
		return addr
	case ModeZeroPageY:
		addr := uint16(c.fetchOperand8()+c.Y) & 0xFF
		c.Cycles += 2
		return addr
	case ModeAbsolute:
		addr := c.fetchOperand16()
		c.Cycles += 2
		return addr
	case ModeAbsoluteX:
		base := c.fetchOperand16()
		addr := base + uint16(c.X)
		c.Cycles += 2
		if pageCrossed(base, addr) {
			c.Cycles++
		}
		return addr
	case ModeAbsoluteY:
		base := c.fetchOperand16()
		addr := base + uint16(c.Y)
		c.Cycles += 2
		if pageCrossed(base, addr) {
			c.Cycles++
		}
		return addr
	case ModeIndirectX:
		zp := c.fetchOperand8()
		lo := c.Bus.Read8(uint16(zp+c.X) & 0xFF)
		hi := c.Bus.Read8(uint16(zp+c.X+1) & 0xFF)
		c.Cycles += 4
		return uint16(hi)<<8 | uint16(lo)
	case ModeIndirectY:
		zp := c.fetchOperand8()
		lo := c.Bus.Read8(uint16(zp))
		hi := c.Bus.Read8(uint16(zp+1) & 0xFF)
		base := uint16(hi)<<8 | uint16(lo)
		addr := base + uint16(c.Y)
		c.Cycles += 3
		if pageCrossed(base, addr) {
			c.Cycles++
		}
		return addr
	default:
		// Implied/Accumulator/Indirect/Relative: caller's mistake.
		return 0
	}
}
