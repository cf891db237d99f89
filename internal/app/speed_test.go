package app

import (
	"testing"
	"time"
)

func TestTierForPeriod(t *testing.T) {
	cases := []struct {
		period time.Duration
		want   int
	}{
		{400 * time.Millisecond, 0},
		{100 * time.Millisecond, 2},
		{6 * time.Millisecond, len(speedTiers) - 1},
		{80 * time.Millisecond, 2},
		{2 * time.Second, 0},
		{time.Millisecond, len(speedTiers) - 1},
	}
	for _, c := range cases {
		if got := tierForPeriod(c.period); got != c.want {
			t.Fatalf("tierForPeriod(%v) = %d, want %d", c.period, got, c.want)
		}
	}
}

func TestClampTier(t *testing.T) {
	if got := clampTier(-3); got != 0 {
		t.Fatalf("clampTier(-3) = %d, want 0", got)
	}
	if got := clampTier(len(speedTiers) + 5); got != len(speedTiers)-1 {
		t.Fatalf("clampTier beyond range = %d, want %d", got, len(speedTiers)-1)
	}
	if got := clampTier(3); got != 3 {
		t.Fatalf("clampTier(3) = %d, want 3", got)
	}
}
