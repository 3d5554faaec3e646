package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)
)

// Player plays the game's sound effects through the speaker.
// A Player whose speaker failed to start, or that was muted, stays silent.
type Player struct {
	enabled bool
}

// New initializes the speaker unless mute is set.
// The returned Player is always usable, even alongside an error.
func New(mute bool) (*Player, error) {
	if mute {
		return &Player{}, nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/30)); err != nil {
		return &Player{}, err
	}

	return &Player{enabled: true}, nil
}

// Close shuts down the audio system
func (p *Player) Close() {
	if p.enabled {
		speaker.Close()
		p.enabled = false
	}
}

func (p *Player) Enabled() bool {
	return p.enabled
}

// tone generates a sine wave tone at the given frequency for the given duration
func tone(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := 2 * math.Pi * freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := math.Sin(phase) * 0.3 // 0.3 volume
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// squareWave generates a square wave tone (more retro/8-bit feel)
func squareWave(freq float64, duration time.Duration) beep.Streamer {
	numSamples := sampleRate.N(duration)
	phase := 0.0
	phaseStep := freq / float64(sampleRate)

	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			if numSamples <= 0 {
				return i, false
			}
			val := 0.2 // volume
			if math.Mod(phase, 1.0) > 0.5 {
				val = -val
			}
			samples[i][0] = val
			samples[i][1] = val
			phase += phaseStep
			numSamples--
		}
		return len(samples), true
	})
}

// paddleHitSound is a short high beep
func paddleHitSound() beep.Streamer {
	return squareWave(880, 80*time.Millisecond)
}

// wallHitSound is a low plop
func wallHitSound() beep.Streamer {
	return tone(220, 40*time.Millisecond)
}

// scoreSound is a long whistle followed by a lower tail
func scoreSound() beep.Streamer {
	return beep.Seq(
		squareWave(660, 350*time.Millisecond),
		squareWave(440, 150*time.Millisecond),
	)
}

// PaddleHit plays the sound for ball hitting a paddle
func (p *Player) PaddleHit() {
	if !p.enabled {
		return
	}
	speaker.Play(paddleHitSound())
}

// WallHit plays the sound for ball hitting top/bottom wall
func (p *Player) WallHit() {
	if !p.enabled {
		return
	}
	speaker.Play(wallHitSound())
}

// Score plays the sound when a player scores
func (p *Player) Score() {
	if !p.enabled {
		return
	}
	speaker.Play(scoreSound())
}
