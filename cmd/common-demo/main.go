// Package main provides a small tour of the common utility packages.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/bpotocnik/common/pkg/cprint"
	"github.com/bpotocnik/common/pkg/plot"
	"github.com/bpotocnik/common/pkg/timing"
)

func main() {
	palette := flag.Bool("palette", false, "print every palette color in its own color")
	timings := flag.Bool("timing", false, "run a few timed operations and print elapsed lines")
	chartPath := flag.String("chart", "", "render a sample figure to the given PNG path")
	flag.Parse()

	if !*palette && !*timings && *chartPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	if *palette {
		demoPalette()
	}
	if *timings {
		demoTiming()
	}
	if *chartPath != "" {
		if err := demoChart(*chartPath); err != nil {
			cprint.Fprintln(os.Stderr, cprint.Red, err)
			os.Exit(1)
		}
	}
}

func demoPalette() {
	cprint.Println(cprint.Default, "Palette:")
	for _, c := range cprint.Palette() {
		cprint.Printf(c, "  %-12s %s\n", c, c.Hex())
	}
	cprint.Reset()
}

func demoTiming() {
	cprint.Println(cprint.Default, "Timing:")
	sw := timing.NewStopwatch()
	for _, d := range []time.Duration{
		5 * time.Millisecond,
		50 * time.Millisecond,
		200 * time.Millisecond,
	} {
		time.Sleep(d)
		fmt.Println(" ", sw.Lap(fmt.Sprintf("sleeping %v", d)))
	}
	fmt.Println("  Total:", timing.FormatDuration(sw.Elapsed()))
}

func demoChart(path string) error {
	fig := plot.NewFigure(plot.WithTitle("common demo"))

	x := make([]float64, 128)
	sin := make([]float64, 128)
	cos := make([]float64, 128)
	for i := range x {
		x[i] = float64(i) / 16
		sin[i] = math.Sin(x[i])
		cos[i] = math.Cos(x[i])
	}

	top := fig.AddSubplot()
	top.Title = "sine"
	top.XLabel = "t"
	if err := top.AddSeries("sin(t)", x, sin, plot.WithColor(cprint.Blue)); err != nil {
		return err
	}

	bottom := fig.AddSubplot()
	bottom.Title = "cosine"
	bottom.XLabel = "t"
	if err := bottom.AddSeries("cos(t)", x, cos, plot.WithColor(cprint.Red)); err != nil {
		return err
	}

	saved, err := fig.SavePNG(path)
	if err != nil {
		return err
	}
	cprint.Printf(cprint.Green, "wrote %s\n", saved)
	return nil
}
