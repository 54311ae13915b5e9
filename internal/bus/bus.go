// Package bus implements the DMG's flat 16-bit address space: a single
// read/write facade over backing RAM and the timer, serial, cartridge,
// and video peripherals.
package bus

// AlwaysFFAddress is the one hard-wired read override required by
// spec.md §6: an unmapped DMG I/O register that reads back 0xFF
// regardless of what was last written to it.
const AlwaysFFAddress uint16 = 0xFF03

// Reserved register addresses, kept here because the bus is the single
// place that must agree with every peripheral on where they live.
const (
	IFAddr = 0xFF0F
	IEAddr = 0xFFFF
)

// A Peripheral participates in the bus's write-dispatch chain and in
// the once-per-machine-cycle tick. Write reports whether it claimed the
// address; a claimed write's side effects are the peripheral's
// responsibility and the byte does not fall through to backing RAM.
type Peripheral interface {
	Cycle(b *Bus)
	Write(b *Bus, addr uint16, value byte) bool
}

// nullPeripheral claims nothing and does nothing; it is the default for
// any peripheral slot the caller does not wire up.
type nullPeripheral struct{}

func (nullPeripheral) Cycle(*Bus) {}

func (nullPeripheral) Write(*Bus, uint16, byte) bool { return false }

// Bus is the uniform 16-bit address space. Instructions and peripherals
// are the only things that ever touch it.
type Bus struct {
	ram [65536]byte

	// TestMode causes every write to be committed to backing RAM before
	// peripheral dispatch, so tests can assert on written bytes without
	// wiring full peripherals. See spec.md §6.
	TestMode bool

	Timer     Peripheral
	Serial    Peripheral
	Cartridge Peripheral
	Video     Peripheral
}

// New returns a Bus with all peripheral slots defaulted to a no-op
// peripheral. Callers wire in real peripherals by assigning the Timer,
// Serial, Cartridge, and Video fields.
func New() *Bus {
	return &Bus{
		Timer:     nullPeripheral{},
		Serial:    nullPeripheral{},
		Cartridge: nullPeripheral{},
		Video:     nullPeripheral{},
	}
}

// Read returns the byte at addr: the hard-wired override if addr
// matches it, otherwise the backing byte. Peripherals mirror their
// observable registers into backing RAM at write time, so the bus
// itself never consults a peripheral on read.
func (b *Bus) Read(addr uint16) byte {
	if addr == AlwaysFFAddress {
		return 0xFF
	}
	return b.ram[addr]
}

// ReadSigned reinterprets the byte at addr as signed; it does not
// sign-extend a wider read.
func (b *Bus) ReadSigned(addr uint16) int8 {
	return int8(b.Read(addr))
}

// RawWrite commits v directly to backing RAM, bypassing peripheral
// dispatch. Peripherals use this to mirror their registers for reads;
// instructions should use Write instead.
func (b *Bus) RawWrite(addr uint16, v byte) {
	b.ram[addr] = v
}

// Write dispatches to timer, serial, cartridge, then video in that
// fixed order (spec.md §4.B, §9): the first peripheral that claims the
// address performs its own side effects and the byte does not fall
// through to backing RAM. If TestMode is set, the byte is committed to
// backing RAM unconditionally first, regardless of what happens next.
func (b *Bus) Write(addr uint16, v byte) {
	if b.TestMode {
		b.ram[addr] = v
	}
	if b.Timer.Write(b, addr, v) {
		return
	}
	if b.Serial.Write(b, addr, v) {
		return
	}
	if b.Cartridge.Write(b, addr, v) {
		return
	}
	if b.Video.Write(b, addr, v) {
		return
	}
	b.ram[addr] = v
}

// WriteSigned reinterprets v as an unsigned byte and writes it through
// the normal dispatch chain.
func (b *Bus) WriteSigned(addr uint16, v int8) {
	b.Write(addr, byte(v))
}

// Tick advances timer, serial, then video by one machine cycle, in that
// order. Each may set interrupt-request bits through the bus.
func (b *Bus) Tick() {
	b.Timer.Cycle(b)
	b.Serial.Cycle(b)
	b.Video.Cycle(b)
}
