// Command gone loads a Game Boy ROM and runs it against the core: the
// "run" subcommand drives the machine headlessly, "debug" drops into
// the interactive TUI. ROM loading is a thin os.ReadFile plus a switch
// on the cartridge-type byte that picks the ROM-only or MBC1
// constructor; no other part of the cartridge header is parsed here.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/urfave/cli/v2"

	"gone/internal/bus"
	"gone/internal/cartridge"
	"gone/internal/cpu"
	"gone/internal/debugger"
	"gone/internal/serial"
	"gone/internal/timer"
	"gone/internal/video"
)

const cartridgeTypeAddr = 0x0147

func main() {
	app := &cli.App{
		Name:  "gone",
		Usage: "a DMG (Game Boy) core",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "run a ROM headlessly",
				ArgsUsage: "<rom-file>",
				Flags: []cli.Flag{
					&cli.Uint64Flag{
						Name:  "cycles",
						Usage: "machine cycles to run before stopping (0 = run forever)",
						Value: 0,
					},
					&cli.BoolFlag{
						Name:  "log-serial",
						Usage: "log bytes written to the serial port instead of discarding them",
					},
				},
				Action: runCommand,
			},
			{
				Name:      "debug",
				Usage:     "run a ROM under the interactive step debugger",
				ArgsUsage: "<rom-file>",
				Action:    debugCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func loadMachine(romPath string, logSerial bool) (*cpu.CPU, *bus.Bus, error) {
	rom, err := os.ReadFile(romPath)
	if err != nil {
		return nil, nil, fmt.Errorf("gone: reading rom: %w", err)
	}

	b := bus.New()
	b.Timer = timer.New()
	var conn serial.Connection
	if logSerial {
		conn = serial.LoggerConnection{}
	}
	b.Serial = serial.New(conn)
	b.Video = video.New(nil)
	b.Cartridge = newCartridge(rom)

	for i, v := range rom {
		if i >= 0x8000 {
			break
		}
		b.RawWrite(uint16(i), v)
	}

	c := cpu.New()
	c.Reg.WritePC(0x0100)
	return c, b, nil
}

// newCartridge picks ROM-only or MBC1 based on the cartridge-type byte
// at 0x0147; every other documented MBC is out of scope (spec.md §1).
func newCartridge(rom []byte) *cartridge.Cartridge {
	if len(rom) <= cartridgeTypeAddr {
		return cartridge.NewROMOnly(rom)
	}
	switch rom[cartridgeTypeAddr] {
	case 0x01, 0x02, 0x03:
		return cartridge.NewMBC1(rom, 32*1024)
	default:
		return cartridge.NewROMOnly(rom)
	}
}

func runCommand(ctx *cli.Context) error {
	romPath := ctx.Args().First()
	if romPath == "" {
		return cli.Exit("gone run: missing <rom-file>", 1)
	}

	c, b, err := loadMachine(romPath, ctx.Bool("log-serial"))
	if err != nil {
		return err
	}

	limit := ctx.Uint64("cycles")
	for n := uint64(0); limit == 0 || n < limit; n++ {
		c.Step(b)
	}
	return nil
}

func debugCommand(ctx *cli.Context) error {
	romPath := ctx.Args().First()
	if romPath == "" {
		return cli.Exit("gone debug: missing <rom-file>", 1)
	}

	c, b, err := loadMachine(romPath, false)
	if err != nil {
		return err
	}
	return debugger.Run(c, b)
}
