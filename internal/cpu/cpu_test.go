package cpu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone/internal/bus"
	"gone/internal/interrupt"
	"gone/internal/register"
)

// newTestCPU returns a CPU and test-mode bus per the seed-test table in
// spec.md §8: test mode lets assertions read back written bytes without
// wiring full peripherals.
func newTestCPU() (*CPU, *bus.Bus) {
	c := New()
	b := bus.New()
	b.TestMode = true
	return c, b
}

// Seed test 1: fresh CPU, memory = [0x01, 0x34, 0x12] at PC=0; fetch and
// execute one instruction (LD BC,d16) should leave BC=0x1234, PC=3.
func TestSeedLoadBCImm16(t *testing.T) {
	c, b := newTestCPU()
	b.Write(0, 0x01)
	b.Write(1, 0x34)
	b.Write(2, 0x12)

	c.Step(b) // fetch + decode + phase First (fetch low)
	c.Step(b) // phase Second (fetch high, write BC)

	assert.Equal(t, uint16(0x1234), c.Reg.ReadPair(register.BC))
	assert.Equal(t, uint16(3), c.Reg.ReadPC())
}

// Seed test 2: SP=0x1232, memory[0x1232..0x1233]=0x34,0x12; executing
// RET across four phases leaves PC=0x1234, SP=0x1234.
func TestSeedReturnFourPhases(t *testing.T) {
	reg := register.New()
	reg.WriteSP(0x1232)
	b := bus.New()
	b.TestMode = true
	b.Write(0x1232, 0x34)
	b.Write(0x1233, 0x12)

	var instr Instruction = &Return{Phase: First}
	for i := 0; i < 3; i++ {
		instr = instr.Execute(reg, b)
	}

	assert.Equal(t, uint16(0x1234), reg.ReadPC())
	assert.Equal(t, uint16(0x1234), reg.ReadSP())
	ret, ok := instr.(*Return)
	assert.True(t, ok)
	assert.Equal(t, Fourth, ret.Phase)
}

// Seed test 3: F=0x00, execute CCF once: Carry=true, HalfCarry=false,
// Subtract=false, Zero unchanged.
func TestSeedInvertCarry(t *testing.T) {
	reg := register.New()
	b := bus.New()
	b.TestMode = true

	instr := &InvertCarry{}
	instr.Execute(reg, b)

	assert.True(t, reg.ReadFlag(register.Carry))
	assert.False(t, reg.ReadFlag(register.HalfCarry))
	assert.False(t, reg.ReadFlag(register.Subtract))
	assert.False(t, reg.ReadFlag(register.Zero))
}

// Seed test 4: B=1, C=3; read_double(BC) == 259.
func TestSeedReadDoubleBC(t *testing.T) {
	reg := register.New()
	reg.Write(register.B, 1)
	reg.Write(register.C, 3)
	assert.Equal(t, uint16(259), reg.ReadPair(register.BC))
}

// Seed test 5: IME=false, IE[VBlank]=1, IF[VBlank]=1, current=HALT;
// executing HALT once leaves HALT as the next instruction (no service),
// because IME is false. See control.go's Halt doc comment for why this
// core follows the literal table here over the looser "wake without
// servicing" prose elsewhere in spec.md §4.F.
func TestSeedHaltStaysHaltedWithoutIME(t *testing.T) {
	reg := register.New()
	reg.WriteIME(false)
	b := bus.New()
	b.TestMode = true
	b.RawWrite(bus.IEAddr, 0x01)
	interrupt.Request(b, interrupt.VBlank)

	var instr Instruction = &Halt{}
	instr = instr.Execute(reg, b)

	_, isHalt := instr.(*Halt)
	assert.True(t, isHalt)
}

// Seed test 6: IME=true, IE[VBlank]=1, IF[VBlank]=1 after an instruction
// boundary; the driver should inject InterruptServiceRoutine, and on its
// completion PC=0x0040, IME=false, IF[VBlank]=0.
func TestSeedInterruptServiceRoutine(t *testing.T) {
	c, b := newTestCPU()
	c.Reg.WriteIME(true)
	b.RawWrite(bus.IEAddr, 0x01)
	interrupt.Request(b, interrupt.VBlank)
	c.Reg.WritePC(0x8000)

	c.Step(b) // boots into InterruptServiceRoutine, phase First
	_, isService := c.current.(*InterruptServiceRoutine)
	assert.True(t, isService)

	for i := 0; i < 3; i++ {
		c.Step(b)
	}

	assert.Equal(t, uint16(0x0040), c.Reg.ReadPC())
	assert.False(t, c.Reg.ReadIME())
	ifReg := b.Read(bus.IFAddr)
	assert.Equal(t, byte(0), ifReg&0x01)
}

func TestHaltResolvesPendingInterruptWhenIMESet(t *testing.T) {
	reg := register.New()
	reg.WriteIME(true)
	b := bus.New()
	b.TestMode = true
	b.RawWrite(bus.IEAddr, 0x01)
	interrupt.Request(b, interrupt.VBlank)

	var instr Instruction = &Halt{}
	instr = instr.Execute(reg, b)

	_, isService := instr.(*InterruptServiceRoutine)
	assert.True(t, isService)
}
