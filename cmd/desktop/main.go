package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"gochip8/pkg/beeper"
	"gochip8/pkg/chip8"
)

const pixelScale = 10

// keymap lays the 4x4 CHIP-8 keypad onto the left side of a QWERTY keyboard:
//
//	1 2 3 C        1 2 3 4
//	4 5 6 D   <-   Q W E R
//	7 8 9 E        A S D F
//	A 0 B F        Z X C V
var keymap = map[ebiten.Key]int{
	ebiten.Key1: 0x1, ebiten.Key2: 0x2, ebiten.Key3: 0x3, ebiten.Key4: 0xC,
	ebiten.KeyQ: 0x4, ebiten.KeyW: 0x5, ebiten.KeyE: 0x6, ebiten.KeyR: 0xD,
	ebiten.KeyA: 0x7, ebiten.KeyS: 0x8, ebiten.KeyD: 0x9, ebiten.KeyF: 0xE,
	ebiten.KeyZ: 0xA, ebiten.KeyX: 0x0, ebiten.KeyC: 0xB, ebiten.KeyV: 0xF,
}

type Game struct {
	vm             *chip8.CPU
	beep           *beeper.Beeper
	screenImg      *ebiten.Image // reused 64x32 canvas
	cyclesPerFrame int
}

func (g *Game) Update() error {
	for key, idx := range keymap {
		_ = g.vm.SetKey(idx, ebiten.IsKeyPressed(key))
	}

	for i := 0; i < g.cyclesPerFrame; i++ {
		if err := g.vm.Step(); err != nil {
			log.Printf("step: %v", err)
		}
	}

	// Update runs at a fixed 60 Hz, which is exactly the timer cadence the
	// machine expects, independent of how many cycles ran above.
	g.vm.Tick()

	if g.beep != nil {
		if g.vm.ToneActive() {
			g.beep.Start()
		} else {
			g.beep.Stop()
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.screenImg == nil {
		g.screenImg = ebiten.NewImage(chip8.VideoWidth, chip8.VideoHeight)
	}
	g.screenImg.WritePixels(g.vm.GetFramebufferRGBA())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(pixelScale, pixelScale)
	screen.DrawImage(g.screenImg, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return chip8.VideoWidth * pixelScale, chip8.VideoHeight * pixelScale
}

func main() {
	cycles := flag.Int("cycles", 10, "instruction cycles per 60 Hz frame")
	mute := flag.Bool("mute", false, "disable the sound-timer beeper")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: desktop [-cycles n] [-mute] <rom>")
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

	var beep *beeper.Beeper
	if !*mute {
		beep, err = beeper.New()
		if err != nil {
			log.Printf("audio unavailable, continuing muted: %v", err)
		}
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(chip8.VideoWidth*pixelScale, chip8.VideoHeight*pixelScale)
	ebiten.SetWindowTitle("GoCHIP-8 Desktop")

	game := &Game{vm: vm, beep: beep, cyclesPerFrame: *cycles}
	if err := ebiten.RunGame(game); err != nil {
		log.Fatal(err)
	}

	if beep != nil {
		_ = beep.Close()
	}
}
