package main

import (
	"flag"
	"fmt"
	"log"
	"sync"
	"time"

	"lifegrid/pkg/life"
)

const (
	maxFrameCols = 60
	maxFrameRows = 40
)

func main() {
	name := flag.String("pattern", "glider", "catalog pattern to trace")
	steps := flag.Int("steps", 20, "generations to run")
	period := flag.Duration("period", 150*time.Millisecond, "interval between generations")
	every := flag.Int("every", 1, "print a frame every N generations")
	flag.Parse()

	pattern, ok := life.Lookup(*name)
	if !ok {
		log.Fatalf("unknown pattern %q (have %v)", *name, life.Names())
	}
	if *every < 1 {
		*every = 1
	}

	engine := life.NewWithConfig(life.Config{StepPeriod: *period})
	engine.Stamp(pattern, 0, 0)

	printFrame(engine.Snapshot())

	done := make(chan struct{})
	var once sync.Once
	engine.Start(func(st life.State) {
		if st.Generation%*every == 0 || st.Generation >= *steps {
			printFrame(st)
		}
		if st.Generation >= *steps || st.Grid.Population() == 0 {
			once.Do(func() { close(done) })
		}
	})

	<-done
	engine.Stop()
}

func printFrame(st life.State) {
	pop := st.Grid.Population()
	bounds, ok := st.Grid.Bounds()
	if !ok {
		fmt.Printf("gen %4d  extinct\n\n", st.Generation)
		return
	}

	cols := bounds.Width()
	rows := bounds.Height()
	clipped := ""
	if cols > maxFrameCols {
		cols = maxFrameCols
		clipped = " (clipped)"
	}
	if rows > maxFrameRows {
		rows = maxFrameRows
		clipped = " (clipped)"
	}

	fmt.Printf("gen %4d  pop %d  bounds %dx%d%s\n", st.Generation, pop, bounds.Width(), bounds.Height(), clipped)
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			if st.Grid.Has(life.Point{X: bounds.Min.X + x, Y: bounds.Min.Y + y}) {
				fmt.Print("██")
			} else {
				fmt.Print("  ")
			}
		}
		fmt.Println()
	}
	fmt.Println()
}
