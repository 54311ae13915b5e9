package bus

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadWriteRoundTrip(t *testing.T) {
	b := New()
	for addr := 0; addr < 65536; addr += 4001 {
		a := uint16(addr)
		if a == AlwaysFFAddress {
			continue
		}
		b.Write(a, byte(addr))
		assert.Equal(t, byte(addr), b.Read(a))
	}
}

func TestAlwaysFFOverride(t *testing.T) {
	b := New()
	b.Write(AlwaysFFAddress, 0x42)
	assert.Equal(t, byte(0xFF), b.Read(AlwaysFFAddress))
}

func TestSignedRoundTrip(t *testing.T) {
	b := New()
	b.WriteSigned(0x10, -5)
	assert.Equal(t, int8(-5), b.ReadSigned(0x10))
}

type claimingPeripheral struct {
	claimAddr uint16
	claimed   []uint16
	ticks     int
}

func (p *claimingPeripheral) Cycle(*Bus) { p.ticks++ }

func (p *claimingPeripheral) Write(b *Bus, addr uint16, value byte) bool {
	if addr != p.claimAddr {
		return false
	}
	p.claimed = append(p.claimed, addr)
	b.RawWrite(addr, value^0xFF) // observably different from a plain RAM write
	return true
}

func TestFirstClaimerWinsAndSuppressesFallThrough(t *testing.T) {
	b := New()
	timer := &claimingPeripheral{claimAddr: 0xFF05}
	serial := &claimingPeripheral{claimAddr: 0xFF05}
	b.Timer = timer
	b.Serial = serial

	b.Write(0xFF05, 0x01)

	assert.Len(t, timer.claimed, 1)
	assert.Empty(t, serial.claimed)
	assert.Equal(t, byte(0x01^0xFF), b.Read(0xFF05))
}

func TestUnclaimedFallsThroughToRAM(t *testing.T) {
	b := New()
	b.Timer = &claimingPeripheral{claimAddr: 0x1111}
	b.Write(0x2222, 0x55)
	assert.Equal(t, byte(0x55), b.Read(0x2222))
}

func TestTestModeCommitsBeforeDispatch(t *testing.T) {
	b := New()
	b.TestMode = true
	timer := &claimingPeripheral{claimAddr: 0xFF05}
	b.Timer = timer

	b.Write(0xFF05, 0x7A)

	// the peripheral still claims and overwrites, but test mode guarantees
	// the raw byte was visible in RAM at least transiently; here we assert
	// the peripheral's own side effect is what remains, since it ran after
	// the test-mode commit.
	assert.Equal(t, byte(0x7A^0xFF), b.Read(0xFF05))
	assert.Len(t, timer.claimed, 1)
}

func TestTickRunsTimerSerialVideoInOrder(t *testing.T) {
	b := New()
	var order []string
	b.Timer = orderRecorder{name: "timer", log: &order}
	b.Serial = orderRecorder{name: "serial", log: &order}
	b.Video = orderRecorder{name: "video", log: &order}

	b.Tick()

	assert.Equal(t, []string{"timer", "serial", "video"}, order)
}

type orderRecorder struct {
	name string
	log  *[]string
}

func (r orderRecorder) Cycle(*Bus) { *r.log = append(*r.log, r.name) }

func (r orderRecorder) Write(*Bus, uint16, byte) bool { return false }
