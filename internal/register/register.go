// Package register implements the Sharp LR35902 register file: eight
// 8-bit cells, their big-endian 16-bit pairings, the flag bits packed
// into F, and the program counter/stack pointer/IME that round out CPU
// state.
package register

// A Reg names one of the eight 8-bit register cells.
type Reg int

const (
	A Reg = iota
	B
	C
	D
	E
	F
	H
	L
)

// A Pair names one of the four big-endian 16-bit register views.
type Pair int

const (
	AF Pair = iota
	BC
	DE
	HL
)

// A Flag names one of the four flag bits packed into F.
//
//	bit 7: Zero
//	bit 6: Subtract
//	bit 5: HalfCarry
//	bit 4: Carry
//	bits 0-3: hard-wired zero
type Flag int

const (
	Zero Flag = iota
	Subtract
	HalfCarry
	Carry
)

var flagBit = [...]byte{
	Zero:      0x80,
	Subtract:  0x40,
	HalfCarry: 0x20,
	Carry:     0x10,
}

// pair identifies the two cells backing a Pair, high byte first.
var pair = [...][2]Reg{
	AF: {A, F},
	BC: {B, C},
	DE: {D, E},
	HL: {H, L},
}

// File is the CPU's register file: eight 8-bit cells plus PC, SP, and
// IME. The zero value has PC=0 and must be given SP=0xFFFE explicitly
// by New.
type File struct {
	cells [8]byte
	pc    uint16
	sp    uint16
	ime   bool
}

// New returns a register file with SP initialized to 0xFFFE, as on the
// DMG after the boot ROM hands off (or immediately, when the boot ROM is
// skipped and PC starts at the cartridge entry point).
func New() *File {
	return &File{sp: 0xFFFE}
}

// Read returns the contents of register r.
func (f *File) Read(r Reg) byte {
	return f.cells[r]
}

// Write sets register r to v. Writes to F are masked with 0xF0: the low
// nibble of F is always zero.
func (f *File) Write(r Reg, v byte) {
	if r == F {
		v &= 0xF0
	}
	f.cells[r] = v
}

// ReadPair returns the 16-bit big-endian view of p: the first-named
// register is the high byte.
func (f *File) ReadPair(p Pair) uint16 {
	regs := pair[p]
	hi, lo := f.Read(regs[0]), f.Read(regs[1])
	return uint16(hi)<<8 | uint16(lo)
}

// WritePair splits v into big-endian high/low bytes and writes them to
// the two cells backing p. Writing AF applies the F-mask via Write.
func (f *File) WritePair(p Pair, v uint16) {
	regs := pair[p]
	f.Write(regs[0], byte(v>>8))
	f.Write(regs[1], byte(v))
}

// ReadFlag reports whether flag fl is set in F.
func (f *File) ReadFlag(fl Flag) bool {
	return f.cells[F]&flagBit[fl] != 0
}

// WriteFlag sets or clears flag fl in F.
func (f *File) WriteFlag(fl Flag, set bool) {
	if set {
		f.cells[F] |= flagBit[fl]
	} else {
		f.cells[F] &^= flagBit[fl]
	}
}

// AdvancePC returns the current program counter, then increments it.
// This is the only PC mutator used during normal instruction fetch;
// branch/jump/call instructions use WritePC instead.
func (f *File) AdvancePC() uint16 {
	pc := f.pc
	f.pc++
	return pc
}

// ReadPC returns the program counter without advancing it.
func (f *File) ReadPC() uint16 { return f.pc }

// WritePC sets the program counter directly.
func (f *File) WritePC(v uint16) { f.pc = v }

// ReadSP returns the stack pointer.
func (f *File) ReadSP() uint16 { return f.sp }

// WriteSP sets the stack pointer.
func (f *File) WriteSP(v uint16) { f.sp = v }

// ReadIME reports whether the interrupt master enable is set.
func (f *File) ReadIME() bool { return f.ime }

// WriteIME sets the interrupt master enable.
func (f *File) WriteIME(b bool) { f.ime = b }
