package register

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPairRoundTrip(t *testing.T) {
	for _, p := range []Pair{BC, DE, HL} {
		f := New()
		for v := 0; v <= 0xFFFF; v += 4111 {
			f.WritePair(p, uint16(v))
			assert.Equal(t, uint16(v), f.ReadPair(p))
		}
	}
}

func TestAFRoundTripMasksLowNibble(t *testing.T) {
	f := New()
	f.WritePair(AF, 0x1234)
	assert.Equal(t, uint16(0x1230), f.ReadPair(AF))
}

func TestReadBC(t *testing.T) {
	f := New()
	f.Write(B, 1)
	f.Write(C, 3)
	assert.Equal(t, uint16(259), f.ReadPair(BC))
}

func TestWriteFMasksLowNibble(t *testing.T) {
	f := New()
	for b := 0; b <= 0xFF; b++ {
		f.Write(F, byte(b))
		assert.Equal(t, byte(b)&0xF0, f.Read(F))
	}
}

func TestFlagsPackIntoF(t *testing.T) {
	f := New()
	f.WriteFlag(Zero, true)
	f.WriteFlag(Carry, true)
	assert.Equal(t, byte(0x90), f.Read(F))
	assert.True(t, f.ReadFlag(Zero))
	assert.False(t, f.ReadFlag(Subtract))
	assert.False(t, f.ReadFlag(HalfCarry))
	assert.True(t, f.ReadFlag(Carry))

	f.WriteFlag(Zero, false)
	assert.False(t, f.ReadFlag(Zero))
	assert.Equal(t, byte(0x10), f.Read(F))
}

func TestAdvancePC(t *testing.T) {
	f := New()
	f.WritePC(0x100)
	assert.Equal(t, uint16(0x100), f.AdvancePC())
	assert.Equal(t, uint16(0x101), f.ReadPC())
}

func TestInitialSP(t *testing.T) {
	f := New()
	assert.Equal(t, uint16(0xFFFE), f.ReadSP())
}

func TestIME(t *testing.T) {
	f := New()
	assert.False(t, f.ReadIME())
	f.WriteIME(true)
	assert.True(t, f.ReadIME())
}
