package cpu

import (
	"gone/internal/bus"
	"gone/internal/register"
)

// Jump implements JP a16 / JP cc,a16 across the two address-fetch
// phases and the final idle phase described in spec.md §4.F: a failed
// condition skips straight to the next fetch instead of spending the
// idle cycle on a PC write that never happens.
type Jump struct {
	Cond  *condition
	Phase Phase
	low   byte
}

func (i *Jump) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		return &Jump{Cond: i.Cond, Phase: Second, low: b.Read(reg.AdvancePC())}
	case Second:
		high := b.Read(reg.AdvancePC())
		if i.Cond == nil || i.Cond.holds(reg) {
			reg.WritePC(uint16(high)<<8 | uint16(i.low))
			return &Jump{Cond: i.Cond, Phase: Third}
		}
		return fetchNext(reg, b)
	default:
		return fetchNext(reg, b)
	}
}

func (i *Jump) Encode() []byte {
	if i.Cond == nil {
		return []byte{0xC3}
	}
	return []byte{0xC2 | byte(*i.Cond)<<3}
}

// JumpHL implements JP HL: single-cycle, no condition, no idle phase.
type JumpHL struct{}

func (i *JumpHL) Execute(reg *register.File, b *bus.Bus) Instruction {
	reg.WritePC(reg.ReadPair(register.HL))
	return fetchNext(reg, b)
}
func (i *JumpHL) Encode() []byte { return []byte{0xE9} }

// JumpRelative implements JR r8 / JR cc,r8: fetch the signed offset,
// then either add it to PC (one idle phase) or fall straight through to
// the next fetch when the condition fails.
type JumpRelative struct {
	Cond  *condition
	Phase Phase
}

func (i *JumpRelative) Execute(reg *register.File, b *bus.Bus) Instruction {
	if i.Phase == First {
		offset := b.ReadSigned(reg.AdvancePC())
		if i.Cond == nil || i.Cond.holds(reg) {
			reg.WritePC(uint16(int32(reg.ReadPC()) + int32(offset)))
			return &JumpRelative{Cond: i.Cond, Phase: Second}
		}
		return fetchNext(reg, b)
	}
	return fetchNext(reg, b)
}

func (i *JumpRelative) Encode() []byte {
	if i.Cond == nil {
		return []byte{0x18}
	}
	return []byte{0x20 | byte(*i.Cond)<<3}
}

// Call implements CALL a16 / CALL cc,a16: fetch the 16-bit target across
// two phases, then (if the condition holds) an idle phase followed by
// pushing the return address high then low byte.
type Call struct {
	Cond   *condition
	Phase  Phase
	low    byte
	target uint16
}

func (i *Call) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		return &Call{Cond: i.Cond, Phase: Second, low: b.Read(reg.AdvancePC())}
	case Second:
		high := b.Read(reg.AdvancePC())
		target := uint16(high)<<8 | uint16(i.low)
		if i.Cond != nil && !i.Cond.holds(reg) {
			return fetchNext(reg, b)
		}
		return &Call{Cond: i.Cond, Phase: Third, target: target}
	case Third:
		return &Call{Cond: i.Cond, Phase: Fourth, target: i.target}
	case Fourth:
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(reg.ReadPC()>>8))
		return &Call{Cond: i.Cond, Phase: Fifth, target: i.target}
	default:
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(reg.ReadPC()))
		reg.WritePC(i.target)
		return fetchNext(reg, b)
	}
}

func (i *Call) Encode() []byte {
	if i.Cond == nil {
		return []byte{0xCD}
	}
	return []byte{0xC4 | byte(*i.Cond)<<3}
}

// Return implements RET / RETI across four phases: an opening phase that
// tests the condition (if any), two phases that read the low and high
// byte through SP (incrementing it each time) and assemble them into PC,
// then a final load-next phase. EnableIME marks RETI, which additionally
// sets IME on completion.
type Return struct {
	Cond      *condition
	EnableIME bool
	Phase     Phase
	low       byte
}

func (i *Return) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		// every form spends this phase before the two-byte pop begins;
		// a conditional RET whose condition fails goes straight to the
		// next fetch instead.
		if i.Cond != nil && !i.Cond.holds(reg) {
			return fetchNext(reg, b)
		}
		return &Return{Cond: i.Cond, EnableIME: i.EnableIME, Phase: Second}
	case Second:
		low := b.Read(reg.ReadSP())
		reg.WriteSP(reg.ReadSP() + 1)
		return &Return{Cond: i.Cond, EnableIME: i.EnableIME, Phase: Third, low: low}
	case Third:
		high := b.Read(reg.ReadSP())
		reg.WriteSP(reg.ReadSP() + 1)
		reg.WritePC(uint16(high)<<8 | uint16(i.low))
		return &Return{Cond: i.Cond, EnableIME: i.EnableIME, Phase: Fourth}
	default:
		if i.EnableIME {
			reg.WriteIME(true)
		}
		return fetchNext(reg, b)
	}
}

func (i *Return) Encode() []byte {
	switch {
	case i.EnableIME:
		return []byte{0xD9}
	case i.Cond == nil:
		return []byte{0xC9}
	default:
		return []byte{0xC0 | byte(*i.Cond)<<3}
	}
}

// Restart implements RST n: pushes PC and jumps to one of the eight
// fixed zero-page vectors (n = opcode & 0x38).
type Restart struct {
	Vector byte
	Phase  Phase
}

func (i *Restart) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		return &Restart{Vector: i.Vector, Phase: Second}
	case Second:
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(reg.ReadPC()>>8))
		return &Restart{Vector: i.Vector, Phase: Third}
	default:
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(reg.ReadPC()))
		reg.WritePC(uint16(i.Vector))
		return fetchNext(reg, b)
	}
}

func (i *Restart) Encode() []byte { return []byte{0xC7 | i.Vector} }
