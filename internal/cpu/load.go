package cpu

import (
	"gone/internal/bus"
	"gone/internal/register"
)

// LoadRegReg copies Src into Dst; flags are untouched. One phase: the
// opcode fetch that produced it already accounted for the instruction's
// only machine cycle (spec.md §4.F).
type LoadRegReg struct {
	Dst, Src operand8
}

func (i *LoadRegReg) Execute(reg *register.File, b *bus.Bus) Instruction {
	writeOperand8(reg, b, i.Dst, readOperand8(reg, b, i.Src))
	return fetchNext(reg, b)
}

func (i *LoadRegReg) Encode() []byte {
	return []byte{0x40 | byte(i.Dst)<<3 | byte(i.Src)}
}

// LoadRegImm8 loads an immediate byte into Dst (or into memory through
// HL when Dst is opHLInd).
type LoadRegImm8 struct {
	Dst operand8
}

func (i *LoadRegImm8) Execute(reg *register.File, b *bus.Bus) Instruction {
	v := b.Read(reg.AdvancePC())
	writeOperand8(reg, b, i.Dst, v)
	return fetchNext(reg, b)
}

func (i *LoadRegImm8) Encode() []byte {
	return []byte{0x06 | byte(i.Dst)<<3}
}

// LoadImm16 loads a 16-bit immediate into one of BC, DE, HL, or SP.
type LoadImm16 struct {
	Dst   operand16
	Phase Phase
	low   byte
}

func (i *LoadImm16) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		low := b.Read(reg.AdvancePC())
		return &LoadImm16{Dst: i.Dst, Phase: Second, low: low}
	case Second:
		high := b.Read(reg.AdvancePC())
		write16(reg, i.Dst, uint16(high)<<8|uint16(i.low))
		return &LoadImm16{Dst: i.Dst, Phase: Third}
	default:
		return fetchNext(reg, b)
	}
}

func (i *LoadImm16) Encode() []byte { return []byte{0x01 | byte(i.Dst)<<4} }

// indirectTarget names BC, DE, or the post/pre-incrementing HL forms
// used by the four "LD (rr),A"/"LD A,(rr)" opcodes outside the main
// operand16 table.
type indirectTarget int

const (
	indBC indirectTarget = iota
	indDE
	indHLInc
	indHLDec
)

// LoadIndirectFromA writes A to the memory cell named by Target.
type LoadIndirectFromA struct {
	Target indirectTarget
}

func (i *LoadIndirectFromA) Execute(reg *register.File, b *bus.Bus) Instruction {
	addr, next := i.resolve(reg)
	b.Write(addr, reg.Read(register.A))
	reg.WritePair(register.HL, next)
	return fetchNext(reg, b)
}

func (i *LoadIndirectFromA) resolve(reg *register.File) (addr, hlNext uint16) {
	switch i.Target {
	case indBC:
		return reg.ReadPair(register.BC), reg.ReadPair(register.HL)
	case indDE:
		return reg.ReadPair(register.DE), reg.ReadPair(register.HL)
	case indHLInc:
		hl := reg.ReadPair(register.HL)
		return hl, hl + 1
	default:
		hl := reg.ReadPair(register.HL)
		return hl, hl - 1
	}
}

func (i *LoadIndirectFromA) Encode() []byte {
	switch i.Target {
	case indBC:
		return []byte{0x02}
	case indDE:
		return []byte{0x12}
	case indHLInc:
		return []byte{0x22}
	default:
		return []byte{0x32}
	}
}

// LoadAFromIndirect reads A from the memory cell named by Target.
type LoadAFromIndirect struct {
	Target indirectTarget
}

func (i *LoadAFromIndirect) Execute(reg *register.File, b *bus.Bus) Instruction {
	var addr, next uint16
	switch i.Target {
	case indBC:
		addr, next = reg.ReadPair(register.BC), reg.ReadPair(register.HL)
	case indDE:
		addr, next = reg.ReadPair(register.DE), reg.ReadPair(register.HL)
	case indHLInc:
		hl := reg.ReadPair(register.HL)
		addr, next = hl, hl+1
	default:
		hl := reg.ReadPair(register.HL)
		addr, next = hl, hl-1
	}
	reg.Write(register.A, b.Read(addr))
	reg.WritePair(register.HL, next)
	return fetchNext(reg, b)
}

func (i *LoadAFromIndirect) Encode() []byte {
	switch i.Target {
	case indBC:
		return []byte{0x0A}
	case indDE:
		return []byte{0x1A}
	case indHLInc:
		return []byte{0x2A}
	default:
		return []byte{0x3A}
	}
}

// LoadHighFromA implements LDH (a8),A: the high page 0xFF00+a8.
type LoadHighFromA struct{}

func (i *LoadHighFromA) Execute(reg *register.File, b *bus.Bus) Instruction {
	offset := b.Read(reg.AdvancePC())
	b.Write(0xFF00+uint16(offset), reg.Read(register.A))
	return fetchNext(reg, b)
}
func (i *LoadHighFromA) Encode() []byte { return []byte{0xE0} }

// LoadAFromHigh implements LDH A,(a8).
type LoadAFromHigh struct{}

func (i *LoadAFromHigh) Execute(reg *register.File, b *bus.Bus) Instruction {
	offset := b.Read(reg.AdvancePC())
	reg.Write(register.A, b.Read(0xFF00+uint16(offset)))
	return fetchNext(reg, b)
}
func (i *LoadAFromHigh) Encode() []byte { return []byte{0xF0} }

// LoadCIndirectFromA implements LD (C),A.
type LoadCIndirectFromA struct{}

func (i *LoadCIndirectFromA) Execute(reg *register.File, b *bus.Bus) Instruction {
	b.Write(0xFF00+uint16(reg.Read(register.C)), reg.Read(register.A))
	return fetchNext(reg, b)
}
func (i *LoadCIndirectFromA) Encode() []byte { return []byte{0xE2} }

// LoadAFromCIndirect implements LD A,(C).
type LoadAFromCIndirect struct{}

func (i *LoadAFromCIndirect) Execute(reg *register.File, b *bus.Bus) Instruction {
	reg.Write(register.A, b.Read(0xFF00+uint16(reg.Read(register.C))))
	return fetchNext(reg, b)
}
func (i *LoadAFromCIndirect) Encode() []byte { return []byte{0xF2} }

// LoadAddrFromA implements LD (a16),A across a two-phase address fetch.
type LoadAddrFromA struct {
	Phase Phase
	low   byte
}

func (i *LoadAddrFromA) Execute(reg *register.File, b *bus.Bus) Instruction {
	if i.Phase == First {
		return &LoadAddrFromA{Phase: Second, low: b.Read(reg.AdvancePC())}
	}
	high := b.Read(reg.AdvancePC())
	b.Write(uint16(high)<<8|uint16(i.low), reg.Read(register.A))
	return fetchNext(reg, b)
}
func (i *LoadAddrFromA) Encode() []byte { return []byte{0xEA} }

// LoadAFromAddr implements LD A,(a16).
type LoadAFromAddr struct {
	Phase Phase
	low   byte
}

func (i *LoadAFromAddr) Execute(reg *register.File, b *bus.Bus) Instruction {
	if i.Phase == First {
		return &LoadAFromAddr{Phase: Second, low: b.Read(reg.AdvancePC())}
	}
	high := b.Read(reg.AdvancePC())
	reg.Write(register.A, b.Read(uint16(high)<<8|uint16(i.low)))
	return fetchNext(reg, b)
}
func (i *LoadAFromAddr) Encode() []byte { return []byte{0xFA} }

// LoadAddrFromSP implements LD (a16),SP, writing SP's low byte then high
// byte to consecutive addresses across three phases: the low-byte write
// shares the phase that fetches the address's high byte, and the
// high-byte write shares the final phase with the next fetch.
type LoadAddrFromSP struct {
	Phase      Phase
	low, high  byte
	targetAddr uint16
}

func (i *LoadAddrFromSP) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		return &LoadAddrFromSP{Phase: Second, low: b.Read(reg.AdvancePC())}
	case Second:
		high := b.Read(reg.AdvancePC())
		target := uint16(high)<<8 | uint16(i.low)
		b.Write(target, byte(reg.ReadSP()))
		return &LoadAddrFromSP{Phase: Third, targetAddr: target}
	default:
		b.Write(i.targetAddr+1, byte(reg.ReadSP()>>8))
		return fetchNext(reg, b)
	}
}
func (i *LoadAddrFromSP) Encode() []byte { return []byte{0x08} }

// LoadSPFromHL implements LD SP,HL.
type LoadSPFromHL struct{ Phase Phase }

func (i *LoadSPFromHL) Execute(reg *register.File, b *bus.Bus) Instruction {
	if i.Phase == First {
		return &LoadSPFromHL{Phase: Second}
	}
	reg.WriteSP(reg.ReadPair(register.HL))
	return fetchNext(reg, b)
}
func (i *LoadSPFromHL) Encode() []byte { return []byte{0xF9} }

// Push decrements SP twice and writes Src's high then low byte.
type Push struct {
	Src   register.Pair
	Phase Phase
}

func (i *Push) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		return &Push{Src: i.Src, Phase: Second}
	case Second:
		v := reg.ReadPair(i.Src)
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(v>>8))
		return &Push{Src: i.Src, Phase: Third}
	default:
		v := reg.ReadPair(i.Src)
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(v))
		return fetchNext(reg, b)
	}
}

func (i *Push) Encode() []byte {
	return []byte{0xC5 | byte(pairStackField(i.Src))<<4}
}

// Pop reads two bytes from the stack, incrementing SP each time, and
// assembles them into Dst (F-mask applies automatically when Dst is AF).
type Pop struct {
	Dst   register.Pair
	Phase Phase
	low   byte
}

func (i *Pop) Execute(reg *register.File, b *bus.Bus) Instruction {
	if i.Phase == First {
		low := b.Read(reg.ReadSP())
		reg.WriteSP(reg.ReadSP() + 1)
		return &Pop{Dst: i.Dst, Phase: Second, low: low}
	}
	high := b.Read(reg.ReadSP())
	reg.WriteSP(reg.ReadSP() + 1)
	reg.WritePair(i.Dst, uint16(high)<<8|uint16(i.low))
	return fetchNext(reg, b)
}

func (i *Pop) Encode() []byte {
	return []byte{0xC1 | byte(pairStackField(i.Dst))<<4}
}

func pairStackField(p register.Pair) operand16 {
	switch p {
	case register.BC:
		return opBC
	case register.DE:
		return opDE
	case register.HL:
		return opHL
	default:
		return opSP // field value 3 means AF in this block; reused only for shifting
	}
}
