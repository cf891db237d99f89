package render

import "testing"

func TestAgeIndexBuckets(t *testing.T) {
	cases := []struct {
		age  int
		want uint8
	}{
		{0, 1},
		{1, 2},
		{ageBuckets - 1, ageBuckets},
		{ageBuckets + 40, ageBuckets},
		{-3, 1},
	}
	for _, c := range cases {
		if got := AgeIndex(c.age); got != c.want {
			t.Fatalf("AgeIndex(%d) = %d, want %d", c.age, got, c.want)
		}
	}
}

func TestBuildAgePalette(t *testing.T) {
	p := BuildAgePalette()
	if len(p) != ageBuckets+1 {
		t.Fatalf("palette has %d entries, want %d", len(p), ageBuckets+1)
	}
	if p[0] != Background {
		t.Fatalf("entry 0 should be the background color, got %v", p[0])
	}
	for i := 1; i < len(p); i++ {
		if p[i].A != 255 {
			t.Fatalf("live entry %d is not opaque", i)
		}
		if p[i] == Background {
			t.Fatalf("live entry %d collides with the background", i)
		}
	}
	if p[1] == p[ageBuckets] {
		t.Fatalf("newborn and oldest colors should differ")
	}
	// Cells shift from green toward blue as they age.
	if p[1].G <= p[1].B {
		t.Fatalf("newborn color should lean green, got %v", p[1])
	}
	if p[ageBuckets].B <= p[ageBuckets].G {
		t.Fatalf("oldest color should lean blue, got %v", p[ageBuckets])
	}
}
