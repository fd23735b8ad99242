// Command monitor is a terminal front end for the 6502 core: it loads a
// raw binary image and offers a line-oriented REPL over stepping,
// breakpoints, disassembly, assembly and memory inspection. It is the
// "external collaborator" spec.md §6 describes, scaled down from a full
// GUI to a terminal, in the same spirit as main.go driving nes.Bus in the
// teacher repository this module grew out of.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/n-ulricksen/sim6502/sim"
)

var errInterrupted = errors.New("interrupted")

var (
	flagImage    string
	flagLoadAddr string
	flagMemSize  int
	flagLog      bool
)

func parseFlags() {
	flag.StringVar(&flagImage, "image", "", "raw binary image to load at startup")
	flag.StringVar(&flagLoadAddr, "load-addr", "", "hex load address for -image; if empty, the first two bytes of the file are read as a little-endian start address")
	flag.IntVar(&flagMemSize, "mem", 0x10000, "memory size in bytes")
	flag.BoolVar(&flagLog, "log", false, "trace every executed instruction to stderr")
	flag.Parse()
}

func main() {
	parseFlags()

	m := sim.NewMachine(flagMemSize)
	if flagLog {
		m.CPU.SetLogger(log.New(os.Stderr, "", 0))
	}

	if flagImage != "" {
		if err := loadImageFile(m, flagImage, flagLoadAddr); err != nil {
			fmt.Fprintf(os.Stderr, "monitor: %v\n", err)
			os.Exit(1)
		}
	}

	term, err := newRawTerminal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "monitor: %v\n", err)
		runPlainREPL(m)
		return
	}
	defer term.Restore()
	runRawREPL(m, term)
}

// runRawREPL is the interactive loop used when stdin is a terminal we can
// put into raw mode.
func runRawREPL(m *sim.Machine, term *rawTerminal) {
	fmt.Fprint(os.Stdout, "6502 monitor. type 'q' to quit.\r\n")
	for {
		line, err := term.readLine("> ")
		if err != nil {
			if errors.Is(err, errInterrupted) {
				fmt.Fprint(os.Stdout, "\r\n")
				continue
			}
			return
		}
		if !dispatch(m, line) {
			return
		}
	}
}

// runPlainREPL is a fallback for when stdin isn't a real terminal (e.g.
// piped input in tests or CI), where raw mode isn't available.
func runPlainREPL(m *sim.Machine) {
	in := bufio.NewScanner(os.Stdin)
	for {
		fmt.Fprint(os.Stdout, "> ")
		if !in.Scan() {
			return
		}
		if !dispatch(m, in.Text()) {
			return
		}
	}
}

// dispatch runs one command line and reports whether the REPL should keep
// going.
func dispatch(m *sim.Machine, line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return true
	}
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "q", "quit":
		return false
	case "r":
		cmdRegisters(m)
	case "s":
		cmdStep(m)
	case "o":
		cmdStepOver(m)
	case "g":
		cmdRunToReturn(m)
	case "b":
		cmdBreakpoint(m, args, true)
	case "c":
		cmdBreakpoint(m, args, false)
	case "d":
		cmdDisassemble(m, args)
	case "a":
		cmdAssemble(m, args)
	case "l":
		cmdLoad(m, args)
	case "m":
		cmdMemDump(m, args)
	default:
		fmt.Fprintf(os.Stdout, "unknown command %q\r\n", cmd)
	}
	return true
}

func cmdRegisters(m *sim.Machine) {
	names := m.RegisterNames()
	parts := make([]string, len(names))
	for i, n := range names {
		parts[i] = n + "=" + m.GetRegister(n)
	}
	fmt.Fprintf(os.Stdout, "%s  CYC=%d\r\n", strings.Join(parts, " "), m.Cycles())
}

func cmdStep(m *sim.Machine) {
	if err := m.Step(); err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
	}
	cmdRegisters(m)
}

func cmdStepOver(m *sim.Machine) {
	if err := m.StepOver(); err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
	}
	cmdRegisters(m)
}

func cmdRunToReturn(m *sim.Machine) {
	if err := m.RunToReturn(); err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
	}
	cmdRegisters(m)
}

func cmdBreakpoint(m *sim.Machine, args []string, set bool) {
	if len(args) != 1 {
		fmt.Fprint(os.Stdout, "usage: b|c <addr>\r\n")
		return
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
		return
	}
	if set {
		m.SetBreakpoint(addr)
	} else {
		m.ClearBreakpoint(addr)
	}
}

func cmdDisassemble(m *sim.Machine, args []string) {
	if len(args) < 1 {
		fmt.Fprint(os.Stdout, "usage: d <addr> [n]\r\n")
		return
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
		return
	}
	n := 1
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			n = v
		}
	}
	for i := 0; i < n; i++ {
		text, size := m.Disassemble(addr)
		fmt.Fprintf(os.Stdout, "%04X  %s\r\n", addr, text)
		addr += uint16(size)
	}
}

func cmdAssemble(m *sim.Machine, args []string) {
	if len(args) < 2 {
		fmt.Fprint(os.Stdout, "usage: a <addr> <line>\r\n")
		return
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
		return
	}
	bytes, err := m.Assemble(addr, strings.Join(args[1:], " "))
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
		return
	}
	m.LoadImage(addr, bytes)
	fmt.Fprintf(os.Stdout, "wrote % X at %04X\r\n", bytes, addr)
}

func cmdLoad(m *sim.Machine, args []string) {
	if len(args) < 1 {
		fmt.Fprint(os.Stdout, "usage: l <path> [addr]\r\n")
		return
	}
	loadAddr := ""
	if len(args) > 1 {
		loadAddr = args[1]
	}
	if err := loadImageFile(m, args[0], loadAddr); err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
	}
}

// cmdMemDump renders n 16-byte rows starting at addr, in the "$addr: hex
// hex ... ascii" format the original desktop shell's hex-dump window used
// (see SPEC_FULL.md's Supplemented Features).
func cmdMemDump(m *sim.Machine, args []string) {
	if len(args) < 1 {
		fmt.Fprint(os.Stdout, "usage: m <addr> [n]\r\n")
		return
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintf(os.Stdout, "%v\r\n", err)
		return
	}
	rows := 1
	if len(args) > 1 {
		if v, err := strconv.Atoi(args[1]); err == nil {
			rows = v
		}
	}
	for r := 0; r < rows; r++ {
		fmt.Fprint(os.Stdout, memLine(m, addr))
		addr += 16
	}
}

func memLine(m *sim.Machine, addr uint16) string {
	var hex, ascii strings.Builder
	for i := 0; i < 16; i++ {
		b := m.Peek(addr + uint16(i))
		fmt.Fprintf(&hex, " %02X", b)
		if b >= 0x20 && b <= 0x7E {
			ascii.WriteByte(b)
		} else {
			ascii.WriteByte('.')
		}
	}
	return fmt.Sprintf("$%04X:%s  %s\r\n", addr, hex.String(), ascii.String())
}

func parseAddr(s string) (uint16, error) {
	s = strings.TrimPrefix(strings.ToUpper(s), "$")
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return 0, fmt.Errorf("bad address %q", s)
	}
	return uint16(v), nil
}

// loadImageFile implements both of load.cpp's modes: an explicit hex
// address loads "at address", while an empty one takes the "from file"
// branch and decodes the image's first two bytes as a little-endian start
// address before loading the rest.
func loadImageFile(m *sim.Machine, path, addr string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}

	var origin uint16
	if addr == "" {
		if len(data) < 2 {
			return fmt.Errorf("load %s: file too short for a load-address prefix", path)
		}
		origin = uint16(data[0]) | uint16(data[1])<<8
		data = data[2:]
	} else {
		a, err := parseAddr(addr)
		if err != nil {
			return err
		}
		origin = a
	}

	// Stop at the top of the address space exactly as load.cpp's loader
	// does.
	if remaining := 0x10000 - int(origin); remaining < len(data) {
		data = data[:remaining]
	}

	m.LoadImage(origin, data)
	fmt.Fprintf(os.Stdout, "loaded %d bytes at %04X\r\n", len(data), origin)
	return nil
}
