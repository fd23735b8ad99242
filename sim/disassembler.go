package sim

import "fmt"

// Disassemble renders the instruction at addr as text and reports its byte
// length. It is a pure function of (memory, address): it uses Peek8
// exclusively and never advances PC or otherwise mutates the CPU.
func (c *CPU) Disassemble(addr uint16) (string, int) {
	opcode := c.Bus.Peek8(addr)
	instr := c.instLookup[opcode]

	if instr.Mode == ModeInvalid {
		return fmt.Sprintf("??? $%02X", opcode), 1
	}

	b0 := c.Bus.Peek8(addr + 1)
	b1 := c.Bus.Peek8(addr + 2)

	switch instr.Mode {
	case ModeImplied:
		return instr.Name, 1
	case ModeAccumulator:
		return instr.Name + " A", 1
	case ModeImmediate:
		return fmt.Sprintf("%s #$%02X", instr.Name, b0), 2
	case ModeZeroPage:
		return fmt.Sprintf("%s $%02X", instr.Name, b0), 2
	case ModeZeroPageX:
		return fmt.Sprintf("%s $%02X,X", instr.Name, b0), 2
	case ModeZeroPageY:
		return fmt.Sprintf("%s $%02X,Y", instr.Name, b0), 2
	case ModeAbsolute:
		return fmt.Sprintf("%s $%02X%02X", instr.Name, b1, b0), 3
	case ModeAbsoluteX:
		return fmt.Sprintf("%s $%02X%02X,X", instr.Name, b1, b0), 3
	case ModeAbsoluteY:
		return fmt.Sprintf("%s $%02X%02X,Y", instr.Name, b1, b0), 3
	case ModeIndirect:
		return fmt.Sprintf("%s ($%02X%02X)", instr.Name, b1, b0), 3
	case ModeIndirectX:
		return fmt.Sprintf("%s ($%02X,X)", instr.Name, b0), 2
	case ModeIndirectY:
		return fmt.Sprintf("%s ($%02X),Y", instr.Name, b0), 2
	case ModeRelative:
		target := uint16(int32(addr) + 2 + int32(int8(b0)))
		return fmt.Sprintf("%s $%04X", instr.Name, target), 2
	default:
		return fmt.Sprintf("??? $%02X", opcode), 1
	}
}
