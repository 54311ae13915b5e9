package cpu

import (
	"log"

	"gone/internal/bus"
	"gone/internal/interrupt"
	"gone/internal/register"
)

// NoOp implements NOP.
type NoOp struct{}

func (i *NoOp) Execute(reg *register.File, b *bus.Bus) Instruction { return fetchNext(reg, b) }
func (i *NoOp) Encode() []byte                                     { return []byte{0x00} }

// Halt implements HALT. Per spec.md §8's seed test 5 and the behavior
// this core's original_source actually implements (its HALT TODO admits
// the documented wake-without-servicing edge case was never modeled),
// Halt re-yields itself until IME is set and an interrupt is pending; it
// does not wake early when IME is false. See DESIGN.md for the §4.F vs
// §8 reading this resolves.
type Halt struct{}

func (i *Halt) Execute(reg *register.File, b *bus.Bus) Instruction {
	if reg.ReadIME() {
		if _, ok := interrupt.Pending(b); ok {
			return fetchNext(reg, b)
		}
	}
	return i
}
func (i *Halt) Encode() []byte { return []byte{0x76} }

// Stop implements STOP: boot-ROM/low-power timing is out of scope
// (spec.md §1 Non-goals), so this core treats it as a two-byte NOP,
// discarding the mandatory trailing 0x00.
type Stop struct{}

func (i *Stop) Execute(reg *register.File, b *bus.Bus) Instruction {
	b.Read(reg.AdvancePC())
	return fetchNext(reg, b)
}
func (i *Stop) Encode() []byte { return []byte{0x10, 0x00} }

// EnableInterrupts implements EI. Real hardware defers the effect until
// after the following instruction; this core sets IME immediately (see
// spec.md §9's documented deviation).
type EnableInterrupts struct{}

func (i *EnableInterrupts) Execute(reg *register.File, b *bus.Bus) Instruction {
	reg.WriteIME(true)
	return fetchNext(reg, b)
}
func (i *EnableInterrupts) Encode() []byte { return []byte{0xFB} }

// DisableInterrupts implements DI.
type DisableInterrupts struct{}

func (i *DisableInterrupts) Execute(reg *register.File, b *bus.Bus) Instruction {
	reg.WriteIME(false)
	return fetchNext(reg, b)
}
func (i *DisableInterrupts) Encode() []byte { return []byte{0xF3} }

// PrefixCb advances PC, reads the next byte, and decodes it against the
// CB table.
type PrefixCb struct{}

func (i *PrefixCb) Execute(reg *register.File, b *bus.Bus) Instruction {
	opcode := b.Read(reg.AdvancePC())
	return DecodeCB(opcode)
}
func (i *PrefixCb) Encode() []byte { return []byte{0xCB} }

// Unknown represents one of the handful of opcodes the primary table
// leaves officially undefined. Per spec.md §7 it halts the CPU and logs,
// rather than silently behaving as a NOP.
type Unknown struct {
	Opcode byte
	logged bool
}

func (i *Unknown) Execute(reg *register.File, b *bus.Bus) Instruction {
	if !i.logged {
		log.Printf("cpu: undefined opcode 0x%02X at 0x%04X, halting", i.Opcode, reg.ReadPC()-1)
		i.logged = true
	}
	return i
}
func (i *Unknown) Encode() []byte { return []byte{i.Opcode} }
