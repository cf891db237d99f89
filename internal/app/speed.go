package app

import "time"

// speedTiers are the named simulation speeds the UI cycles through. Each
// tier maps onto a step period handed to the engine.
var speedTiers = []struct {
	Label  string
	Period time.Duration
}{
	{"1/4x", 400 * time.Millisecond},
	{"1/2x", 200 * time.Millisecond},
	{"1x", 100 * time.Millisecond},
	{"2x", 50 * time.Millisecond},
	{"4x", 25 * time.Millisecond},
	{"8x", 12 * time.Millisecond},
	{"16x", 6 * time.Millisecond},
}

func clampTier(i int) int {
	if i < 0 {
		return 0
	}
	if i >= len(speedTiers) {
		return len(speedTiers) - 1
	}
	return i
}

// tierForPeriod returns the tier whose period is closest to d, so a period
// configured on the command line lands on a sensible HUD setting.
func tierForPeriod(d time.Duration) int {
	best := 0
	bestDiff := time.Duration(-1)
	for i, tier := range speedTiers {
		diff := tier.Period - d
		if diff < 0 {
			diff = -diff
		}
		if bestDiff < 0 || diff < bestDiff {
			best = i
			bestDiff = diff
		}
	}
	return best
}
