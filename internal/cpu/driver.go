package cpu

import (
	"gone/internal/bus"
	"gone/internal/register"
)

// CPU is the fetch-execute driver described in spec.md §4.G: it owns the
// register file and the single in-flight instruction value, and Step
// advances both by exactly one machine cycle.
type CPU struct {
	Reg     *register.File
	current Instruction
}

// New returns a CPU with a fresh register file and no instruction in
// flight; the first Step call bootstraps it by fetching at PC.
func New() *CPU {
	return &CPU{Reg: register.New()}
}

// Step performs one machine cycle: one Execute call on the current
// instruction, followed by one bus.Tick. The driver never inspects
// instruction variants; all dispatch lives inside Execute.
func (c *CPU) Step(b *bus.Bus) {
	if c.current == nil {
		c.current = fetchNext(c.Reg, b)
	}
	c.current = c.current.Execute(c.Reg, b)
	b.Tick()
}

// Current exposes the in-flight instruction, mainly for the debugger.
func (c *CPU) Current() Instruction { return c.current }
