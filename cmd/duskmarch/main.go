// Command duskmarch is a thin CLI front end for the core renderer: it
// parses flags, loads a scene, drives a single-shot render, and writes the
// result as a PNG. Flag parsing and scene-file I/O are explicitly outside
// the core per spec §1; this file exists only to make the module runnable.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/nkall/duskmarch/pkg/framebuffer"
	"github.com/nkall/duskmarch/pkg/marcher"
	"github.com/nkall/duskmarch/pkg/renderer"
	"github.com/nkall/duskmarch/pkg/sceneio"
	"github.com/nkall/duskmarch/pkg/vecmath"
)

// Config holds every flag the CLI accepts, per spec §6's CLI surface.
type Config struct {
	ScenePath string
	Width     int
	Height    int
	Samples   int
	Threads   int
	Mode      string
	Output    string
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		fmt.Fprintln(os.Stderr, "duskmarch:", err)
		os.Exit(1)
	}

	mode, err := parseMode(cfg.Mode)
	if err != nil {
		fmt.Fprintln(os.Stderr, "duskmarch:", err)
		os.Exit(1)
	}

	sc, err := sceneio.Load(cfg.ScenePath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "duskmarch: failed to load scene:", err)
		os.Exit(1)
	}

	rm := marcher.NewDefaultRayMarcher()
	rm.Mode = mode

	r := renderer.CliRenderer{
		RayMarcher: rm,
		Samples:    cfg.Samples,
		Threads:    cfg.Threads,
		Frame:      renderer.Frame{Width: cfg.Width, Height: cfg.Height, Region: renderer.WholeRegion()},
		Filter:     vecmath.NewBlackmanHarrisFilter(1),
		Seed:       1,
	}

	fb := framebuffer.New(cfg.Width, cfg.Height)
	r.Render(sc, fb, nil)
	renderer.Tonemap(fb, mode)

	out, err := os.Create(cfg.Output)
	if err != nil {
		fmt.Fprintln(os.Stderr, "duskmarch: failed to create output file:", err)
		os.Exit(1)
	}
	defer out.Close()

	if err := renderer.WritePNG(out, fb); err != nil {
		fmt.Fprintln(os.Stderr, "duskmarch: failed to encode PNG:", err)
		os.Exit(1)
	}
}

func parseFlags() (Config, error) {
	cfg := Config{}
	flag.IntVar(&cfg.Width, "width", 1280, "output image width")
	flag.IntVar(&cfg.Height, "height", 720, "output image height")
	flag.IntVar(&cfg.Samples, "samples", 128, "samples per pixel")
	flag.IntVar(&cfg.Threads, "threads", 0, "worker thread count (0 = library default)")
	flag.StringVar(&cfg.Mode, "mode", "shaded", "render mode: samples, normal, or shaded")
	flag.StringVar(&cfg.Output, "output", "render.png", "output PNG path")
	flag.Parse()

	if flag.NArg() < 1 {
		return cfg, fmt.Errorf("usage: duskmarch [flags] <scene.json>")
	}
	cfg.ScenePath = flag.Arg(0)
	return cfg, nil
}

func parseMode(s string) (marcher.RenderMode, error) {
	switch s {
	case "samples":
		return marcher.Samples, nil
	case "normal":
		return marcher.Normal, nil
	case "shaded":
		return marcher.Shaded, nil
	default:
		return 0, fmt.Errorf("unknown --mode %q (want samples, normal, or shaded)", s)
	}
}
