// Package serial implements the DMG serial port peripheral (SB/SC) and
// its two pluggable link-partner connections.
package serial

import (
	"log"

	"gone/internal/bus"
	"gone/internal/interrupt"
)

// Register addresses, per spec.md §6.
const (
	SBAddr uint16 = 0xFF01
	SCAddr uint16 = 0xFF02
)

// transferCycles is how many machine cycles an internal-clock transfer
// takes to complete. The DMG shifts one bit per ~128 machine cycles
// (about 1024 for the whole byte); this core shortens that to one cycle
// per bit.
const transferCycles = 8

// A Connection is the host-supplied link partner. It sees only
// byte-sized transfers and has no direct CPU access.
type Connection interface {
	Transfer(b byte) (reply byte)
}

// NullConnection discards every transferred byte and replies with
// 0xFF, as if no link cable were attached.
type NullConnection struct{}

// Transfer implements Connection.
func (NullConnection) Transfer(byte) byte { return 0xFF }

// LoggerConnection logs every transferred byte via the standard logger
// and replies with 0xFF. Useful for headless runs where serial output
// is the only externally visible behavior.
type LoggerConnection struct{}

// Transfer implements Connection.
func (LoggerConnection) Transfer(b byte) byte {
	log.Printf("serial: transferred byte %#02x", b)
	return 0xFF
}

// Serial is the DMG serial port peripheral.
type Serial struct {
	sb byte
	sc byte

	conn      Connection
	remaining int // cycles left in an in-flight internal-clock transfer
}

// New returns a Serial peripheral wired to conn. A nil conn behaves as
// NullConnection.
func New(conn Connection) *Serial {
	if conn == nil {
		conn = NullConnection{}
	}
	return &Serial{conn: conn}
}

// Cycle advances an in-flight transfer. When it completes, the
// connection's reply replaces SB, SC's start bit clears, and a Serial
// interrupt is requested.
func (s *Serial) Cycle(b *bus.Bus) {
	if s.remaining == 0 {
		return
	}
	s.remaining--
	if s.remaining == 0 {
		s.sb = s.conn.Transfer(s.sb)
		s.sc &^= 0x80
		interrupt.Request(b, interrupt.Serial)
		s.mirror(b)
	}
}

func (s *Serial) mirror(b *bus.Bus) {
	b.RawWrite(SBAddr, s.sb)
	b.RawWrite(SCAddr, s.sc|0x7E)
}

// Write claims SB and SC. Writing SC with the start bit (bit 7) and the
// internal clock bit (bit 0) set begins a transfer.
func (s *Serial) Write(b *bus.Bus, addr uint16, value byte) bool {
	switch addr {
	case SBAddr:
		s.sb = value
	case SCAddr:
		s.sc = value & 0x81
		if s.sc&0x81 == 0x81 {
			s.remaining = transferCycles
		}
	default:
		return false
	}
	s.mirror(b)
	return true
}
