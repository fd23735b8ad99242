package sim

import "testing"

func TestResolveAddressIndexedZeroPageWraps(t *testing.T) {
	c := newTestCPU()
	c.Bus.LoadImage(0x0000, []byte{0x00}) // placeholder, PC set manually below
	c.X = 0x05

	c.PC = 0x1000
	c.Bus.Write8(0x1000, 0xFE)
	addr := c.resolveAddress(ModeZeroPageX)

	tests := []struct {
		got, want interface{}
	}{
		{addr, uint16(0x03)}, // (0xFE + 0x05) & 0xFF
		{c.Cycles, uint64(2)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}
}

func TestResolveAddressAbsoluteXPageCross(t *testing.T) {
	c := newTestCPU()
	c.X = 0x01
	c.PC = 0x2000
	c.Bus.Write8(0x2000, 0xFF)
	c.Bus.Write8(0x2001, 0x10) // base = 0x10FF

	addr := c.resolveAddress(ModeAbsoluteX)

	tests := []struct {
		got, want interface{}
	}{
		{addr, uint16(0x1100)},
		{c.Cycles, uint64(3)}, // 2 + 1 page-cross
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}
}

func TestResolveAddressIndirectXPointerWraps(t *testing.T) {
	c := newTestCPU()
	c.X = 0x02
	c.PC = 0x3000
	c.Bus.Write8(0x3000, 0xFF) // zp = 0xFF, +X wraps to 0x01

	c.Bus.Write8(0x01, 0x00)
	c.Bus.Write8(0x02, 0x80) // pointer at 0x01/0x02 -> 0x8000

	addr := c.resolveAddress(ModeIndirectX)

	tests := []struct {
		got, want interface{}
	}{
		{addr, uint16(0x8000)},
		{c.Cycles, uint64(4)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}
}

func TestResolveAddressIndirectYPageCross(t *testing.T) {
	c := newTestCPU()
	c.Y = 0x10
	c.PC = 0x4000
	c.Bus.Write8(0x4000, 0x40) // zp pointer base

	c.Bus.Write8(0x40, 0xF5)
	c.Bus.Write8(0x41, 0x10) // pointer -> 0x10F5

	addr := c.resolveAddress(ModeIndirectY)

	tests := []struct {
		got, want interface{}
	}{
		{addr, uint16(0x1105)}, // 0x10F5 + 0x10 crosses page
		{c.Cycles, uint64(4)},  // 3 + 1 page-cross
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}
}

func TestInstructionLenBuckets(t *testing.T) {
	tests := []struct {
		mode AddrMode
		want int
	}{
		{ModeImplied, 1},
		{ModeAccumulator, 1},
		{ModeInvalid, 1},
		{ModeImmediate, 2},
		{ModeZeroPage, 2},
		{ModeIndirectX, 2},
		{ModeIndirectY, 2},
		{ModeRelative, 2},
		{ModeAbsolute, 3},
		{ModeAbsoluteX, 3},
		{ModeIndirect, 3},
	}
	for _, tt := range tests {
		if got := instructionLen(tt.mode); got != tt.want {
			t.Errorf("instructionLen(%v) = %d, want %d", tt.mode, got, tt.want)
		}
	}
}
