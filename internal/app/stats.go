package app

import "time"

// rateDecay smooths the steps-per-second readout: high values favor the
// history, low values the newest sample.
const rateDecay = 0.9

// Stats derives the observed stepping rate from generation counter samples
// taken once per frame.
type Stats struct {
	StepsPerSec float64

	lastGen  int
	lastTime time.Time
	primed   bool
}

// Observe folds in a generation sample taken at now. The rate is an
// exponential moving average, so single slow frames do not make the readout
// jump. A generation counter that moved backwards (Clear or Reset) re-primes
// the baseline.
func (s *Stats) Observe(generation int, now time.Time) {
	if !s.primed || generation < s.lastGen {
		s.primed = true
		s.lastGen = generation
		s.lastTime = now
		s.StepsPerSec = 0
		return
	}
	dt := now.Sub(s.lastTime).Seconds()
	if dt <= 0 {
		return
	}
	instant := float64(generation-s.lastGen) / dt
	s.StepsPerSec = s.StepsPerSec*rateDecay + instant*(1-rateDecay)
	s.lastGen = generation
	s.lastTime = now
}
