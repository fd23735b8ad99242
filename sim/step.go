package sim

// Step executes exactly one instruction at PC. On an undocumented opcode it
// returns *UndocumentedOpcodeError with PC already rewound to the
// offending byte.
func (c *CPU) Step() error {
	pcAtFetch := c.PC
	opcode := c.Bus.Read8(c.PC)
	c.PC++

	instr := c.instLookup[opcode]
	err := instr.Exec(c, instr.Mode)

	if err == nil {
		text, _ := c.Disassemble(pcAtFetch)
		c.Logger.Printf("%04X  %-20s A:%02X X:%02X Y:%02X S:%02X P:%02X CYC:%d",
			pcAtFetch, text, c.A, c.X, c.Y, c.S, c.P, c.Cycles)
	}

	return err
}

// StepOver executes one instruction; if it was JSR and the instruction now
// at PC is not itself a breakpoint, it runs to return from the subroutine
// just entered instead of stopping inside it.
func (c *CPU) StepOver() error {
	wasJSR := c.Bus.Read8(c.PC) == 0x20
	if err := c.Step(); err != nil {
		return err
	}
	if wasJSR && !c.hasBreakpointAtPC() {
		c.RunToReturn()
	}
	return nil
}

// RunToReturn repeatedly steps until either a breakpoint is hit at the
// current PC (checked before executing), or the stack pointer has risen by
// 1-3 relative to its value on entry -- the signature of an RTS/RTI
// unwinding past the frame RunToReturn was called within. A rise of 0 or
// more than 3 keeps stepping; the subtraction wraps correctly if S itself
// wraps during the loop.
func (c *CPU) RunToReturn() error {
	savedS := c.S
	for {
		if err := c.Step(); err != nil {
			return err
		}
		if c.hasBreakpointAtPC() {
			return nil
		}
		delta := c.S - savedS
		if delta >= 1 && delta <= 3 {
			return nil
		}
	}
}

// hasBreakpointAtPC determines the instruction footprint at PC from the
// opcode table and asks the breakpoint set whether any byte in that
// footprint is marked.
func (c *CPU) hasBreakpointAtPC() bool {
	opcode := c.Bus.Peek8(c.PC)
	mode := c.instLookup[opcode].Mode
	return c.Breakpoints.HasAny(c.PC, instructionLen(mode))
}
