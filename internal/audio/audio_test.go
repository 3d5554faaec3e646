package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep/v2"

	"github.com/diegok/duopong/internal/game"
)

var _ game.Audio = (*Player)(nil)

// drain reads a streamer to the end and returns how many samples it produced
func drain(s beep.Streamer) ([][2]float64, int) {
	buf := make([][2]float64, 512)
	var all [][2]float64
	for {
		n, ok := s.Stream(buf)
		all = append(all, buf[:n]...)
		if !ok {
			break
		}
	}
	return all, len(all)
}

func TestSquareWave_Length(t *testing.T) {
	_, n := drain(squareWave(880, 50*time.Millisecond))

	want := sampleRate.N(50 * time.Millisecond)
	if n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
}

func TestSquareWave_Amplitude(t *testing.T) {
	samples, _ := drain(squareWave(440, 20*time.Millisecond))

	for i, s := range samples {
		if math.Abs(s[0]) != 0.2 || s[0] != s[1] {
			t.Fatalf("sample %d: expected +/-0.2 on both channels, got %v", i, s)
		}
	}
}

func TestTone_Length(t *testing.T) {
	_, n := drain(tone(220, 40*time.Millisecond))

	want := sampleRate.N(40 * time.Millisecond)
	if n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
}

func TestScoreSound_Length(t *testing.T) {
	_, n := drain(scoreSound())

	want := sampleRate.N(350*time.Millisecond) + sampleRate.N(150*time.Millisecond)
	if n != want {
		t.Errorf("expected %d samples, got %d", want, n)
	}
}

func TestMutedPlayer(t *testing.T) {
	p, err := New(true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Enabled() {
		t.Error("muted player should be disabled")
	}

	// Silent players ignore notifications
	p.PaddleHit()
	p.WallHit()
	p.Score()
	p.Close()
}
