package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gochip8/pkg/chip8"
	"gochip8/pkg/grid"
)

// Headless runner: executes a fixed number of cycles with the 60 Hz timer
// tick interleaved at the configured instruction rate, then dumps the
// framebuffer as ASCII and optionally as a PNG. Handy for ROM smoke tests
// where a window is overkill.
func main() {
	cycles := flag.Int("cycles", 2000, "number of instruction cycles to run")
	hz := flag.Int("hz", 600, "emulated instruction rate; timers tick once every hz/60 cycles")
	screenshot := flag.String("screenshot", "", "write the final framebuffer to this PNG file")
	scale := flag.Int("scale", 8, "screenshot upscaling factor")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: console [-cycles n] [-hz n] [-screenshot file.png] <rom>")
		os.Exit(2)
	}

	rom, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("Failed to read ROM file: %v", err)
	}

	vm := chip8.NewCPU()
	if err := vm.LoadProgram(rom); err != nil {
		log.Fatalf("Failed to load program: %v", err)
	}

	tickEvery := *hz / 60
	if tickEvery < 1 {
		tickEvery = 1
	}

	for i := 0; i < *cycles; i++ {
		if err := vm.Step(); err != nil {
			log.Printf("step %d: %v", i, err)
		}
		if (i+1)%tickEvery == 0 {
			vm.Tick()
		}
	}

	fmt.Print(renderASCII(vm))

	if *screenshot != "" {
		if err := vm.SaveScreenshot(*screenshot, *scale); err != nil {
			log.Fatalf("Failed to save screenshot: %v", err)
		}
	}
}

func renderASCII(vm *chip8.CPU) string {
	var b strings.Builder
	for y := 0; y < chip8.VideoHeight; y++ {
		for x := 0; x < chip8.VideoWidth; x++ {
			if vm.Video[grid.Index(x, y, chip8.VideoWidth)] != 0 {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
