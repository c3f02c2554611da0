// Package tone turns the currently plotted wave into an audible sine tone.
package tone

import (
	"math"
	"sync"

	"github.com/faiface/beep"

	"github.com/mkarpushin/trig-visualization/internal/wavemodel"
)

// BaseFreq is the pitch in Hz at ω = 1; the angular frequency parameter
// scales it.
const BaseFreq = 220.0

// headroom keeps the synthesized tone well below full scale.
const headroom = 0.4

// Generator implements beep.Streamer and synthesizes the wave described by
// the current parameters. The speaker goroutine pulls samples while the UI
// goroutine swaps parameters on slider changes, so the shared parameter set
// is mutex-guarded. Amplitude maps to gain (clamped to ±1), ω scales the
// pitch and φ shifts the phase; the vertical offset k has no audible meaning
// and is ignored.
type Generator struct {
	mu     sync.RWMutex
	params wavemodel.Params
	rate   beep.SampleRate
	pos    int
}

func NewGenerator(rate beep.SampleRate, p wavemodel.Params) *Generator {
	return &Generator{params: p, rate: rate}
}

// SetParams swaps the synthesized wave. Safe to call while streaming.
func (g *Generator) SetParams(p wavemodel.Params) {
	g.mu.Lock()
	g.params = p
	g.mu.Unlock()
}

func (g *Generator) Stream(samples [][2]float64) (int, bool) {
	g.mu.RLock()
	p := g.params
	g.mu.RUnlock()

	gain := clamp(p.A, -1, 1) * headroom
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		v := gain * math.Sin(2*math.Pi*BaseFreq*p.Omega*t+p.Phi*math.Pi)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *Generator) Err() error { return nil }

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
