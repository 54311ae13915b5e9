package video

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone/internal/bus"
	"gone/internal/interrupt"
)

func countVBlanks(b *bus.Bus, v *Video, cycles int) int {
	count := 0
	for i := 0; i < cycles; i++ {
		v.Cycle(b)
		if s, ok := interrupt.Pending(b); ok && s == interrupt.VBlank {
			count++
			interrupt.Clear(b, interrupt.VBlank)
		}
	}
	return count
}

func TestVBlankFiresOncePerFrame(t *testing.T) {
	v := New(nil)
	b := bus.New()
	b.Video = v
	b.RawWrite(bus.IEAddr, 0xFF)

	cyclesPerFrame := linesPerFrame * cyclesPerLine
	assert.Equal(t, 1, countVBlanks(b, v, cyclesPerFrame))
}

func TestVBlankFiresTwicePerTwoFrames(t *testing.T) {
	v := New(nil)
	b := bus.New()
	b.Video = v
	b.RawWrite(bus.IEAddr, 0xFF)

	cyclesPerFrame := linesPerFrame * cyclesPerLine
	assert.Equal(t, 2, countVBlanks(b, v, cyclesPerFrame*2))
}

func TestLYCMatchRaisesStatWhenEnabled(t *testing.T) {
	v := New(nil)
	b := bus.New()
	b.Video = v
	b.RawWrite(bus.IEAddr, 0xFF)

	b.Write(STATAddr, 0x40) // enable LYC=LY STAT source
	b.Write(LYCAddr, 5)

	for i := 0; i < 5*cyclesPerLine+1; i++ {
		v.Cycle(b)
	}

	s, ok := interrupt.Pending(b)
	assert.True(t, ok)
	assert.Equal(t, interrupt.LCDStat, s)
}

func TestDummyDisplayDiscardsFrames(t *testing.T) {
	assert.NotPanics(t, func() {
		DummyDisplay{}.Present(Frame{})
	})
}
