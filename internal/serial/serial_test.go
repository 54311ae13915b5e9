package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"gone/internal/bus"
	"gone/internal/interrupt"
)

func TestTransferCompletesAndRaisesInterrupt(t *testing.T) {
	s := New(NullConnection{})
	b := bus.New()
	b.Serial = s
	b.RawWrite(bus.IEAddr, 0xFF)

	b.Write(SBAddr, 0x42)
	b.Write(SCAddr, 0x81)

	for i := 0; i < transferCycles-1; i++ {
		s.Cycle(b)
		_, pending := interrupt.Pending(b)
		assert.False(t, pending)
	}
	s.Cycle(b)

	_, pending := interrupt.Pending(b)
	assert.True(t, pending)
	assert.Equal(t, byte(0xFF), b.Read(SBAddr))
	assert.Equal(t, byte(0), b.Read(SCAddr)&0x80)
}

func TestNoTransferWithoutStartBit(t *testing.T) {
	s := New(nil)
	b := bus.New()
	b.Serial = s
	b.Write(SCAddr, 0x00)
	for i := 0; i < transferCycles*2; i++ {
		s.Cycle(b)
	}
	_, pending := interrupt.Pending(b)
	assert.False(t, pending)
}

type echoConnection struct{ seen []byte }

func (e *echoConnection) Transfer(b byte) byte {
	e.seen = append(e.seen, b)
	return b + 1
}

func TestConnectionSeesTransferredByte(t *testing.T) {
	conn := &echoConnection{}
	s := New(conn)
	b := bus.New()
	b.Serial = s

	b.Write(SBAddr, 0x10)
	b.Write(SCAddr, 0x81)
	for i := 0; i < transferCycles; i++ {
		s.Cycle(b)
	}

	assert.Equal(t, []byte{0x10}, conn.seen)
	assert.Equal(t, byte(0x11), b.Read(SBAddr))
}
