// Package sound plays short tones for game events.
package sound

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
	log "github.com/sirupsen/logrus"

	"snake-arcade/game"
)

const sampleRate = beep.SampleRate(44100)

const (
	eatFreq      = 880
	gameOverFreq = 220
	levelUpFreq  = 1320
)

// Player is a game.Renderer that beeps when the score goes up, the level
// rises or the game ends. It compares each snapshot with the previous one.
type Player struct {
	play func(freq float64, d time.Duration)
	prev *game.Snapshot
}

// Init opens the speaker. Without it the game still runs, silently.
func Init() error {
	return speaker.Init(sampleRate, sampleRate.N(time.Second/10))
}

func Close() {
	speaker.Close()
}

func NewPlayer() *Player {
	return &Player{play: tone}
}

func tone(freq float64, d time.Duration) {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		log.WithError(err).Warn("Could not build tone")
		return
	}
	speaker.Play(beep.Take(sampleRate.N(d), sine))
}

func (p *Player) Draw(s game.Snapshot) {
	prev := p.prev
	p.prev = &s
	if prev == nil || prev.SessionID != s.SessionID {
		return
	}

	switch {
	case s.State.GameOver && !prev.State.GameOver:
		p.play(gameOverFreq, 300*time.Millisecond)
	case s.State.Level > prev.State.Level:
		p.play(levelUpFreq, 120*time.Millisecond)
	case s.State.Score > prev.State.Score:
		p.play(eatFreq, 50*time.Millisecond)
	}
}
