// Package debugger provides an interactive bubbletea TUI for stepping
// the CPU one machine cycle at a time and inspecting register, flag,
// and memory-page state. Retargeted from a 6502 register/flag display
// to the DMG's eight-register file and four-flag F byte.
package debugger

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/davecgh/go-spew/spew"

	"gone/internal/bus"
	"gone/internal/cpu"
	"gone/internal/register"
)

type model struct {
	cpu *cpu.CPU
	bus *bus.Bus

	offset uint16 // base address for the scrolling page table
	prevPC uint16
	err    error
}

// New returns a TUI model stepping c against b, with the page table
// initially starting at the 16-byte row that contains PC.
func New(c *cpu.CPU, b *bus.Bus) tea.Model {
	return model{cpu: c, bus: b, offset: c.Reg.ReadPC() &^ 0x0F}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "j":
			m.prevPC = m.cpu.Reg.ReadPC()
			m.cpu.Step(m.bus)
			m.offset = m.cpu.Reg.ReadPC() &^ 0x0F
		case "k":
			if m.offset >= 16 {
				m.offset -= 16
			}
		case "J":
			m.offset += 16
		}
	}
	return m, nil
}

// renderPage renders one 16-byte row of memory as hex, bracketing the
// byte at the current PC.
func (m model) renderPage(start uint16) string {
	pc := m.cpu.Reg.ReadPC()
	s := fmt.Sprintf("%04x | ", start)
	for i := 0; i < 16; i++ {
		addr := start + uint16(i)
		v := m.bus.Read(addr)
		if addr == pc {
			s += fmt.Sprintf("[%02x] ", v)
		} else {
			s += fmt.Sprintf(" %02x  ", v)
		}
	}
	return s
}

func (m model) pageTable() string {
	header := "addr | "
	for b := 0; b < 16; b++ {
		header += fmt.Sprintf("  %01x  ", b)
	}
	rows := []string{header}
	for i := 0; i < 8; i++ {
		rows = append(rows, m.renderPage(m.offset+uint16(i*16)))
	}
	return strings.Join(rows, "\n")
}

func (m model) status() string {
	r := m.cpu.Reg
	var flags string
	for _, set := range []bool{
		r.ReadFlag(register.Zero),
		r.ReadFlag(register.Subtract),
		r.ReadFlag(register.HalfCarry),
		r.ReadFlag(register.Carry),
	} {
		if set {
			flags += "1 "
		} else {
			flags += "0 "
		}
	}
	return fmt.Sprintf(`
PC: %04x (was %04x)
SP: %04x
IME: %v
 A: %02x  F: %02x
 B: %02x  C: %02x
 D: %02x  E: %02x
 H: %02x  L: %02x
Z N H C
%s
`,
		r.ReadPC(), m.prevPC,
		r.ReadSP(),
		r.ReadIME(),
		r.Read(register.A), r.Read(register.F),
		r.Read(register.B), r.Read(register.C),
		r.Read(register.D), r.Read(register.E),
		r.Read(register.H), r.Read(register.L),
		flags,
	)
}

func (m model) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			m.pageTable(),
			m.status(),
		),
		"",
		spew.Sdump(m.cpu.Current()),
		"space/j: step   k/J: scroll page   q: quit",
	)
}

// Run starts the interactive TUI, stepping c against b one machine
// cycle per keypress until the user quits.
func Run(c *cpu.CPU, b *bus.Bus) error {
	_, err := tea.NewProgram(New(c, b)).Run()
	return err
}
