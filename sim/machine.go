package sim

import (
	"fmt"
	"strconv"
	"strings"
)

// FlagDescriptor names one FLAGS bit for a host UI's checkbox/menu label,
// mirroring the accelerator-key convention ("&Negative") the original
// desktop shell used for its flag panel.
type FlagDescriptor struct {
	Name   string
	Letter byte
}

// MemZone names a well-known region of the address space worth a dedicated
// view in a host UI.
type MemZone struct {
	Name  string
	Start uint16
	Size  int
}

var flagDescriptors = []FlagDescriptor{
	{"&Negative", 'N'},
	{"O&verflow", 'V'},
	{"&Break", 'B'},
	{"&Decimal", 'D'},
	{"&Interrupt", 'I'},
	{"&Zero", 'Z'},
	{"&Carry", 'C'},
}

var memZones = []MemZone{
	{"Zero page", 0x0000, 0x100},
	{"Stack", 0x0100, 0x100},
}

var registerNames = []string{"A", "X", "Y", "S", "FLAGS", "PC"}

// Machine is the External Interfaces facade of spec.md §6: the full set of
// operations a host (a debugger UI, a terminal monitor, a test harness)
// needs, expressed without exposing any Opcode Table or resolver internals.
// It is a thin wrapper over *CPU; callers that only need register/step
// access should hold a *Machine rather than a *CPU.
type Machine struct {
	CPU *CPU
}

// NewMachine creates a Machine around a freshly allocated bus of the given
// size and CPU.
func NewMachine(memSize int) *Machine {
	bus := NewBus(memSize)
	return &Machine{CPU: NewCPU(bus)}
}

// RegisterNames lists the register names GetRegister/SetRegister accept.
func (m *Machine) RegisterNames() []string {
	return append([]string(nil), registerNames...)
}

// FlagDescriptors lists the FLAGS bits in display order.
func (m *Machine) FlagDescriptors() []FlagDescriptor {
	return append([]FlagDescriptor(nil), flagDescriptors...)
}

// MemZones lists the address ranges worth a dedicated view.
func (m *Machine) MemZones() []MemZone {
	return append([]MemZone(nil), memZones...)
}

// GetRegister renders a register as hex text: two digits for A/X/Y/S, four
// for PC, or the eight-character NV-BDIZC form for FLAGS.
func (m *Machine) GetRegister(name string) string {
	c := m.CPU
	switch name {
	case "A":
		return fmt.Sprintf("%02X", c.A)
	case "X":
		return fmt.Sprintf("%02X", c.X)
	case "Y":
		return fmt.Sprintf("%02X", c.Y)
	case "S":
		return fmt.Sprintf("%02X", c.S)
	case "FLAGS":
		return flagsString(c.P)
	case "PC":
		return fmt.Sprintf("%04X", c.PC)
	default:
		return ""
	}
}

func flagsString(p byte) string {
	bit := func(f byte, ch byte) byte {
		if p&f != 0 {
			return ch
		}
		return '-'
	}
	return string([]byte{
		bit(FlagN, 'N'), bit(FlagV, 'V'), '-', bit(FlagB, 'B'),
		bit(FlagD, 'D'), bit(FlagI, 'I'), bit(FlagZ, 'Z'), bit(FlagC, 'C'),
	})
}

// SetRegister parses value and writes it into the named register, hex for
// A/X/Y/S/PC (whitespace-trimmed) or the NV-BDIZC letter form for FLAGS. It
// reports false rather than erroring so a textbox-driven UI stays
// responsive on every keystroke.
func (m *Machine) SetRegister(name, value string) bool {
	c := m.CPU

	if name == "FLAGS" {
		const letters = "NV-BDIZC"
		p := FlagU
		for _, ch := range strings.ToUpper(value) {
			if ch == '-' {
				continue
			}
			idx := strings.IndexRune(letters, ch)
			if idx < 0 {
				return false
			}
			p |= 0x80 >> uint(idx)
		}
		c.P = p
		return true
	}

	trimmed := strings.TrimSpace(value)
	n, err := strconv.ParseUint(trimmed, 16, 32)
	if err != nil {
		return false
	}

	switch name {
	case "A":
		c.A = byte(n)
	case "X":
		c.X = byte(n)
	case "Y":
		c.Y = byte(n)
	case "S":
		c.S = byte(n)
	case "PC":
		c.PC = uint16(n)
	default:
		return false
	}
	return true
}

// Disassemble renders the instruction at addr.
func (m *Machine) Disassemble(addr uint16) (string, int) {
	return m.CPU.Disassemble(addr)
}

// Assemble turns one source line into bytes at pc.
func (m *Machine) Assemble(pc uint16, line string) ([]byte, error) {
	return m.CPU.Assemble(pc, line)
}

// Step, StepOver and RunToReturn drive the stepping engine.
func (m *Machine) Step() error          { return m.CPU.Step() }
func (m *Machine) StepOver() error      { return m.CPU.StepOver() }
func (m *Machine) RunToReturn() error   { return m.CPU.RunToReturn() }
func (m *Machine) PC() uint16           { return m.CPU.PC }
func (m *Machine) Cycles() uint64       { return m.CPU.Cycles }
func (m *Machine) ClearCycles()         { m.CPU.Cycles = 0 }
func (m *Machine) SetBreakpoint(a uint16)   { m.CPU.Breakpoints.Set(a) }
func (m *Machine) ClearBreakpoint(a uint16) { m.CPU.Breakpoints.Clear(a) }
func (m *Machine) HasBreakpoint(a uint16, n int) bool {
	return m.CPU.Breakpoints.HasAny(a, n)
}

// LoadImage writes data into memory starting at origin. It performs no
// header interpretation; a 2-byte little-endian load-address prefix, if
// the caller wants that behavior, must be stripped and decoded by the
// caller first.
func (m *Machine) LoadImage(origin uint16, data []byte) {
	m.CPU.Bus.LoadImage(origin, data)
}

// Peek reads a byte with no side effects, for memory-dump style tooling.
func (m *Machine) Peek(addr uint16) byte {
	return m.CPU.Bus.Peek8(addr)
}
