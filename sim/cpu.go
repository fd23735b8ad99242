package sim

import (
	"io/ioutil"
	"log"
)

// Flag bit positions within the P/FLAGS register.
const (
	FlagC byte = 1 << 0 // carry
	FlagZ byte = 1 << 1 // zero
	FlagI byte = 1 << 2 // interrupt disable
	FlagD byte = 1 << 3 // decimal mode
	FlagB byte = 1 << 4 // break
	FlagU byte = 1 << 5 // unused, always reads 1
	FlagV byte = 1 << 6 // overflow
	FlagN byte = 1 << 7 // negative
)

// instruction is one entry of the 256-slot Opcode Table (spec.md §4.5). An
// empty Name with ModeInvalid marks an undocumented opcode.
type instruction struct {
	Name string
	Mode AddrMode
	Exec func(c *CPU, mode AddrMode) error
}

// CPU holds the full architectural state of a 6502: the registers, the
// cycle counter, a reference to the memory it executes against, and the
// breakpoints the stepping engine honors. It is not safe for concurrent
// use; spec.md §5 mandates a single-threaded, non-reentrant core.
type CPU struct {
	A, X, Y byte
	S       byte
	P       byte
	PC      uint16
	Cycles  uint64

	Bus         *Bus
	Breakpoints *Breakpoints

	// Logger receives one line per successfully executed instruction.
	// NewCPU installs a logger that discards its output; install another
	// with SetLogger. Step formats the trace line whichever logger is
	// installed, so Logger must not be nil.
	Logger *log.Logger

	instLookup [256]instruction
}

// NewCPU creates a CPU wired to bus, with registers at their power-on
// values (A=X=Y=S=0, FLAGS=0x20, PC=0, cycle counter 0) and an empty
// breakpoint set.
func NewCPU(bus *Bus) *CPU {
	c := &CPU{
		Bus:         bus,
		Breakpoints: NewBreakpoints(),
		Logger:      log.New(ioutil.Discard, "", 0),
	}
	c.buildInstLookup()
	c.Reset()
	return c
}

// Reset restores register state to power-on values without touching
// memory or breakpoints. It does not consult the reset vector; interrupt
// line emulation is out of scope (spec.md §1).
func (c *CPU) Reset() {
	c.A, c.X, c.Y, c.S = 0, 0, 0, 0
	c.P = FlagU
	c.PC = 0
	c.Cycles = 0
}

// SetLogger installs a logger that receives one line per executed
// instruction. Passing nil disables tracing.
func (c *CPU) SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(ioutil.Discard, "", 0)
	}
	c.Logger = l
}

func (c *CPU) getFlag(f byte) bool {
	return c.P&f != 0
}

func (c *CPU) setFlag(f byte, v bool) {
	if v {
		c.P |= f
	} else {
		c.P &^= f
	}
	c.P |= FlagU
}

// setNZ sets N from bit 7 of v and Z from whether v's low 8 bits are zero,
// per spec.md §3's invariant on every instruction's result.
func (c *CPU) setNZ(v byte) {
	c.setFlag(FlagN, v&0x80 != 0)
	c.setFlag(FlagZ, v == 0)
}

// push writes a byte to the stack page and decrements S, wrapping modulo
// 256.
func (c *CPU) push(v byte) {
	c.Bus.Write8(0x0100+uint16(c.S), v)
	c.S--
}

// pop increments S and reads the byte at the stack page, wrapping modulo
// 256.
func (c *CPU) pop() byte {
	c.S++
	return c.Bus.Read8(0x0100 + uint16(c.S))
}

func (c *CPU) pushWord(v uint16) {
	c.push(byte(v >> 8))
	c.push(byte(v))
}

func (c *CPU) popWord() uint16 {
	lo := uint16(c.pop())
	hi := uint16(c.pop())
	return hi<<8 | lo
}
