package app

import (
	"testing"
	"time"
)

func TestStatsConvergesToSteadyRate(t *testing.T) {
	s := &Stats{}
	now := time.Unix(0, 0)
	s.Observe(0, now)
	for i := 1; i <= 200; i++ {
		now = now.Add(10 * time.Millisecond)
		s.Observe(i, now)
	}
	if s.StepsPerSec < 99 || s.StepsPerSec > 101 {
		t.Fatalf("expected rate near 100/s, got %f", s.StepsPerSec)
	}
}

func TestStatsDecaysWhilePaused(t *testing.T) {
	s := &Stats{}
	now := time.Unix(0, 0)
	s.Observe(0, now)
	for i := 1; i <= 50; i++ {
		now = now.Add(10 * time.Millisecond)
		s.Observe(i, now)
	}
	for i := 0; i < 60; i++ {
		now = now.Add(10 * time.Millisecond)
		s.Observe(50, now)
	}
	if s.StepsPerSec > 1 {
		t.Fatalf("rate should decay toward zero while paused, got %f", s.StepsPerSec)
	}
}

func TestStatsReprimesOnCounterDrop(t *testing.T) {
	s := &Stats{}
	now := time.Unix(0, 0)
	s.Observe(0, now)
	for i := 1; i <= 20; i++ {
		now = now.Add(10 * time.Millisecond)
		s.Observe(i, now)
	}
	now = now.Add(10 * time.Millisecond)
	s.Observe(0, now)
	if s.StepsPerSec != 0 {
		t.Fatalf("a generation drop should re-prime the rate, got %f", s.StepsPerSec)
	}
	now = now.Add(10 * time.Millisecond)
	s.Observe(1, now)
	if s.StepsPerSec <= 0 {
		t.Fatalf("rate should rebuild after a reset, got %f", s.StepsPerSec)
	}
}

func TestStatsIgnoresZeroDeltaTime(t *testing.T) {
	s := &Stats{}
	now := time.Unix(0, 0)
	s.Observe(0, now)
	now = now.Add(10 * time.Millisecond)
	s.Observe(1, now)
	before := s.StepsPerSec
	s.Observe(2, now)
	if s.StepsPerSec != before {
		t.Fatalf("a zero time delta must not change the rate, got %f", s.StepsPerSec)
	}
}
