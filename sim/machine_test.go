package sim

import "testing"

func newTestMachine() *Machine {
	return NewMachine(0x10000)
}

func TestMachineRegisterNamesFlagsAndZones(t *testing.T) {
	m := newTestMachine()

	tests := []struct {
		got, want interface{}
	}{
		{len(m.RegisterNames()), 6},
		{len(m.FlagDescriptors()), 7},
		{len(m.MemZones()), 2},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}

	// The returned slices must be defensive copies: mutating one must not
	// corrupt the package-level tables other Machines read from.
	names := m.RegisterNames()
	names[0] = "Z"
	if m.RegisterNames()[0] != "A" {
		t.Errorf("RegisterNames leaked its backing array")
	}
}

func TestMachineGetRegister(t *testing.T) {
	m := newTestMachine()
	m.CPU.A = 0x7F
	m.CPU.X = 0x01
	m.CPU.Y = 0x02
	m.CPU.S = 0xFD
	m.CPU.PC = 0x1234
	m.CPU.P = FlagU | FlagC | FlagZ

	tests := []struct {
		got, want interface{}
	}{
		{m.GetRegister("A"), "7F"},
		{m.GetRegister("X"), "01"},
		{m.GetRegister("Y"), "02"},
		{m.GetRegister("S"), "FD"},
		{m.GetRegister("PC"), "1234"},
		{m.GetRegister("FLAGS"), "------ZC"},
		{m.GetRegister("BOGUS"), ""},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}
}

func TestMachineSetRegister(t *testing.T) {
	m := newTestMachine()

	tests := []struct {
		name, value string
		wantOK      bool
	}{
		{"A", "7f", true},
		{"X", "zz", false},
		{"PC", "1234", true},
		{"FLAGS", "nv-bdizc", true},
		{"FLAGS", "NQ", false},
		{"BOGUS", "00", false},
	}
	for _, tt := range tests {
		if got := m.SetRegister(tt.name, tt.value); got != tt.wantOK {
			t.Errorf("SetRegister(%q, %q) = %v, want %v", tt.name, tt.value, got, tt.wantOK)
		}
	}

	if m.CPU.A != 0x7F {
		t.Errorf("SetRegister(A) got %#02x, want 0x7F", m.CPU.A)
	}
	if m.CPU.PC != 0x1234 {
		t.Errorf("SetRegister(PC) got %#04x, want 0x1234", m.CPU.PC)
	}
	if m.CPU.P != 0xFF {
		t.Errorf("SetRegister(FLAGS, all-set) got P=%#02x, want 0xFF", m.CPU.P)
	}
}

func TestMachineDisassembleAndAssemble(t *testing.T) {
	m := newTestMachine()
	m.LoadImage(0x1000, []byte{0xA9, 0x42})

	text, size := m.Disassemble(0x1000)
	if want := "LDA #$42"; text != want {
		t.Errorf("Disassemble got %q, want %q", text, want)
	}
	if size != 2 {
		t.Errorf("Disassemble reported size %d, want 2", size)
	}

	bytes, err := m.Assemble(0x2000, "LDA #$42")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	m.LoadImage(0x2000, bytes)
	if got := m.Peek(0x2000); got != 0xA9 {
		t.Errorf("Assemble+LoadImage got opcode %#02x, want 0xA9", got)
	}
}

func TestMachineSteppingAndCycles(t *testing.T) {
	m := newTestMachine()
	m.LoadImage(0x0000, []byte{0xA9, 0x42, 0xEA})

	if err := m.Step(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PC() != 0x0002 {
		t.Errorf("PC got %#04x, want 0x0002", m.PC())
	}
	if m.Cycles() != 2 {
		t.Errorf("Cycles got %d, want 2", m.Cycles())
	}

	m.ClearCycles()
	if m.Cycles() != 0 {
		t.Errorf("ClearCycles left Cycles=%d, want 0", m.Cycles())
	}

	if err := m.StepOver(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PC() != 0x0003 {
		t.Errorf("PC after StepOver got %#04x, want 0x0003", m.PC())
	}
}

func TestMachineRunToReturn(t *testing.T) {
	m := newTestMachine()
	m.LoadImage(0x0500, []byte{0x20, 0x10, 0x40}) // JSR $4010
	m.LoadImage(0x4010, []byte{0xA9, 0x01, 0x60}) // LDA #$01; RTS
	m.CPU.PC = 0x0500
	m.CPU.S = 0xFF

	if err := m.Step(); err != nil { // execute the JSR
		t.Fatalf("unexpected error: %v", err)
	}
	if err := m.RunToReturn(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.PC() != 0x0503 {
		t.Errorf("PC got %#04x, want 0x0503", m.PC())
	}
}

func TestMachineBreakpoints(t *testing.T) {
	m := newTestMachine()

	if m.HasBreakpoint(0x1000, 1) {
		t.Errorf("expected no breakpoint before Set")
	}
	m.SetBreakpoint(0x1000)
	if !m.HasBreakpoint(0x1000, 1) {
		t.Errorf("expected breakpoint after Set")
	}
	m.ClearBreakpoint(0x1000)
	if m.HasBreakpoint(0x1000, 1) {
		t.Errorf("expected no breakpoint after Clear")
	}
}

func TestMachineLoadImageAndPeek(t *testing.T) {
	m := newTestMachine()
	m.LoadImage(0x8000, []byte{0x01, 0x02, 0x03})

	tests := []struct {
		got, want interface{}
	}{
		{m.Peek(0x8000), byte(0x01)},
		{m.Peek(0x8002), byte(0x03)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("got %v, want %v\n", tt.got, tt.want)
		}
	}
}
