package main

import (
	"flag"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"lifegrid/pkg/life"
)

type soupResult struct {
	seed      int64
	finalPop  int
	peakPop   int
	peakAt    int
	extinctAt int
	area      int
}

func (r soupResult) String() string {
	fate := fmt.Sprintf("alive pop=%d area=%d", r.finalPop, r.area)
	if r.extinctAt > 0 {
		fate = fmt.Sprintf("extinct at gen %d", r.extinctAt)
	}
	return fmt.Sprintf("seed=%d peak=%d@%d %s", r.seed, r.peakPop, r.peakAt, fate)
}

func main() {
	runs := flag.Int("runs", 64, "number of random soups to evolve")
	steps := flag.Int("steps", 512, "generations to run each soup")
	size := flag.Int("size", 128, "side of the square soup region in cells")
	density := flag.Float64("density", 0.18, "live-cell fill density")
	workers := flag.Int("workers", runtime.NumCPU(), "soups evolved concurrently")
	seed := flag.Int64("seed", 1, "seed of the first soup, later soups increment it")
	flag.Parse()

	fmt.Printf("Sweeping %d soups (%dx%d, density %.2f, %d steps, %d workers)\n",
		*runs, *size, *size, *density, *steps, *workers)

	results := make([]soupResult, *runs)
	var g errgroup.Group
	g.SetLimit(*workers)

	start := time.Now()
	for i := 0; i < *runs; i++ {
		g.Go(func() error {
			results[i] = runSoup(*seed+int64(i), *size, *density, *steps)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Println("sweep failed:", err)
		return
	}
	elapsed := time.Since(start)

	sort.Slice(results, func(i, j int) bool { return results[i].peakPop > results[j].peakPop })

	fmt.Printf("\nTop 10 soups by peak population (elapsed %s):\n", elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < 10; i++ {
		fmt.Printf("%2d) %s\n", i+1, results[i])
	}

	extinct := 0
	totalFinal := 0
	longest := 0
	for _, r := range results {
		totalFinal += r.finalPop
		if r.extinctAt > 0 {
			extinct++
			if r.extinctAt > longest {
				longest = r.extinctAt
			}
		}
	}
	fmt.Printf("\n%d/%d soups died out", extinct, len(results))
	if extinct > 0 {
		fmt.Printf(" (slowest at gen %d)", longest)
	}
	if len(results) > 0 {
		fmt.Printf(", mean final population %.1f", float64(totalFinal)/float64(len(results)))
	}
	fmt.Println()
}

func runSoup(seed int64, size int, density float64, steps int) soupResult {
	engine := life.New()
	half := size / 2
	region := life.Rect{
		Min: life.Point{X: -half, Y: -half},
		Max: life.Point{X: -half + size - 1, Y: -half + size - 1},
	}
	engine.Randomize(region, density, seed)

	res := soupResult{seed: seed, peakPop: engine.Population()}
	for step := 1; step <= steps; step++ {
		engine.Step()
		pop := engine.Population()
		if pop > res.peakPop {
			res.peakPop = pop
			res.peakAt = step
		}
		if pop == 0 {
			res.extinctAt = step
			break
		}
	}

	res.finalPop = engine.Population()
	if bounds, ok := engine.Bounds(); ok {
		res.area = bounds.Area()
	}
	return res
}
