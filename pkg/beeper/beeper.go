package beeper

import (
	"sync"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 48000
	frequency  = 440
	volume     = 0.25
)

// squareWave is an endless 440 Hz square-wave sample source in signed 16-bit
// little-endian mono. It never returns an error; the player pulls from it
// for as long as the tone is playing.
type squareWave struct {
	pos int
}

func (s *squareWave) Read(p []byte) (int, error) {
	const period = sampleRate / frequency
	const amp = int16(volume * 32768)

	n := len(p) / 2
	for i := 0; i < n; i++ {
		sample := amp
		if s.pos >= period/2 {
			sample = -amp
		}
		p[i*2] = byte(sample)
		p[i*2+1] = byte(uint16(sample) >> 8)
		s.pos++
		if s.pos >= period {
			s.pos = 0
		}
	}
	return n * 2, nil
}

// Beeper plays the single fixed tone the sound timer asks for. Start and
// Stop are idempotent, so the host can call them every frame directly off
// the tone-active signal.
type Beeper struct {
	ctx    *oto.Context
	player *oto.Player

	mu      sync.Mutex
	playing bool
}

// New opens the audio device and prepares a paused tone player. It blocks
// until the audio context is ready.
func New() (*Beeper, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 1,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, err
	}
	<-ready

	b := &Beeper{ctx: ctx}
	b.player = ctx.NewPlayer(&squareWave{})
	return b, nil
}

func (b *Beeper) Start() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.playing {
		b.player.Play()
		b.playing = true
	}
}

func (b *Beeper) Stop() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.playing {
		b.player.Pause()
		b.playing = false
	}
}

func (b *Beeper) Close() error {
	b.Stop()
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.player != nil {
		err := b.player.Close()
		b.player = nil
		return err
	}
	return nil
}
