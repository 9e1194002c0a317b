package sound

import (
	"bytes"
	"fmt"
	"math"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	sampleRate = 44100

	// Notification cue: short high tick with exponential decay.
	cueFreq     = 880.0
	cueDuration = 0.25
	cueVolume   = 0.5
	cueDecay    = 12.0
)

// Player owns the audio context and the pre-rendered cue samples. The
// context is created once; each Play spawns a short-lived device player.
type Player struct {
	ctx *oto.Context
	pcm []byte
}

// NewPlayer initializes the audio device and renders the cue.
func NewPlayer() (*Player, error) {
	op := &oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatSignedInt16LE,
	}
	ctx, ready, err := oto.NewContext(op)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio context: %w", err)
	}
	<-ready

	return &Player{ctx: ctx, pcm: renderCue()}, nil
}

// Play starts the cue and returns immediately; playback finishes on the
// audio thread.
func (p *Player) Play() {
	player := p.ctx.NewPlayer(bytes.NewReader(p.pcm))
	player.Play()
	go func() {
		for player.IsPlaying() {
			time.Sleep(10 * time.Millisecond)
		}
		_ = player.Close()
	}()
}

func renderCue() []byte {
	n := int(sampleRate * cueDuration)
	buf := make([]byte, 0, n*4)
	for i := 0; i < n; i++ {
		t := float64(i) / sampleRate
		envelope := math.Exp(-t * cueDecay)
		s := int16(math.Sin(2*math.Pi*cueFreq*t) * 32767 * cueVolume * envelope)
		u := uint16(s)
		// interleaved stereo, little endian
		buf = append(buf, byte(u), byte(u>>8), byte(u), byte(u>>8))
	}
	return buf
}
