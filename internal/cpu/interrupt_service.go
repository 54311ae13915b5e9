package cpu

import (
	"gone/internal/bus"
	"gone/internal/interrupt"
	"gone/internal/register"
)

// InterruptServiceRoutine is the micro-program injected by fetchNext when
// IME is set and an interrupt is pending (spec.md §4.C). It is not
// reachable through the opcode decoder; Encode panics if ever asked to
// reconstruct a byte sequence for it.
type InterruptServiceRoutine struct {
	Source interrupt.Source
	Phase  Phase
}

func (i *InterruptServiceRoutine) Execute(reg *register.File, b *bus.Bus) Instruction {
	switch i.Phase {
	case First:
		reg.WriteIME(false)
		interrupt.Clear(b, i.Source)
		return &InterruptServiceRoutine{Source: i.Source, Phase: Second}
	case Second:
		// internal delay, approximating the two cycles real hardware
		// spends deciding the vector before the stack push begins.
		return &InterruptServiceRoutine{Source: i.Source, Phase: Third}
	case Third:
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(reg.ReadPC()>>8))
		return &InterruptServiceRoutine{Source: i.Source, Phase: Fourth}
	case Fourth:
		sp := reg.ReadSP() - 1
		reg.WriteSP(sp)
		b.Write(sp, byte(reg.ReadPC()))
		reg.WritePC(interrupt.Vector(i.Source))
		return &InterruptServiceRoutine{Source: i.Source, Phase: Fifth}
	}
	return fetchNext(reg, b)
}

func (i *InterruptServiceRoutine) Encode() []byte {
	panic("cpu: InterruptServiceRoutine has no opcode encoding")
}
