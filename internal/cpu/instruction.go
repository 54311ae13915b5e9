// Package cpu implements the Sharp LR35902 fetch-decode-execute pipeline:
// the instruction decoder, the tagged instruction values and their
// cycle-phase state machines, and the driver loop that ties them to the
// register file, the bus, and the interrupt controller.
package cpu

import (
	"gone/internal/bus"
	"gone/internal/interrupt"
	"gone/internal/register"
)

// Instruction is a decoded opcode carrying whatever operands the decoder
// extracted from its bits and, for multi-cycle opcodes, its current
// phase. Execute performs one machine cycle of work and returns either
// itself with an advanced phase (still in flight) or the next decoded
// instruction (this one has retired). Encode reconstructs the opcode
// byte sequence, inverse to the decoder that produced the value.
type Instruction interface {
	Execute(reg *register.File, b *bus.Bus) Instruction
	Encode() []byte
}

// fetchNext is the "no instruction in flight" branch of the driver
// contract in spec.md §4.G: if IME is set and an interrupt is pending, it
// returns the service routine instead of fetching; otherwise it loads
// and decodes the opcode at the current PC. Every instruction that
// completes on a given cycle ends by calling this, so the in-flight slot
// the driver holds is never left empty.
func fetchNext(reg *register.File, b *bus.Bus) Instruction {
	if reg.ReadIME() {
		if source, ok := interrupt.Pending(b); ok {
			return &InterruptServiceRoutine{Source: source, Phase: First}
		}
	}
	opcode := b.Read(reg.AdvancePC())
	return Decode(opcode)
}
