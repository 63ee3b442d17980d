// Movesnap renders the demos without a window. It writes a sequence of flock
// (or orbit) frames for a pointer circling the canvas, a spectrum strip, and
// a grid of easing curve plots as PNG files.
package main

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"

	"github.com/pborman/getopt"

	"github.com/phanxgames/move"
	"github.com/phanxgames/move/internal/sketch"
)

func main() {
	configPath := getopt.StringLong("config", 'c', "", "params YAML file", "path")
	envPath := getopt.StringLong("env", 'e', ".env", "dotenv file with MOVE_* overrides", "path")
	outDir := getopt.StringLong("out", 'o', "snapshots", "output directory", "dir")
	mode := getopt.StringLong("mode", 'm', "flock", "demo to render (orbit|flock)", "mode")
	frames := getopt.IntLong("frames", 'n', 12, "number of demo frames")
	step := getopt.IntLong("step", 's', 10, "frame counter increment between frames")
	width := getopt.IntLong("width", 'W', 640, "image width")
	height := getopt.IntLong("height", 'H', 480, "image height")
	getopt.Parse()

	params, err := sketch.LoadParams(*configPath)
	if err != nil {
		log.Fatalf("failed to load params: %v", err)
	}
	env, err := sketch.Environ(*envPath)
	if err != nil {
		log.Fatalf("failed to read environment: %v", err)
	}
	if err := params.ApplyEnv(env); err != nil {
		log.Fatalf("invalid environment override: %v", err)
	}
	if params.Mode, err = sketch.ParseMode(*mode); err != nil {
		log.Fatal(err)
	}

	sk, err := sketch.New(params, rand.New(rand.NewPCG(7, 11)))
	if err != nil {
		log.Fatal(err)
	}

	if err := os.MkdirAll(*outDir, 0o755); err != nil {
		log.Fatalf("mkdir %s: %v", *outDir, err)
	}

	w, h := float64(*width), float64(*height)
	for i := 0; i < *frames; i++ {
		frame := i * *step
		pointer := pointerPath(w, h, float64(i)/float64(max(*frames, 1)))
		dc := renderFrame(sk, pointer, *width, *height, frame)
		path := filepath.Join(*outDir, fmt.Sprintf("%s_%03d.png", params.Mode, i))
		if err := dc.SavePNG(path); err != nil {
			log.Fatalf("write %s: %v", path, err)
		}
	}

	strip, err := renderSpectrum(params.Palette, *width, 96)
	if err != nil {
		log.Fatal(err)
	}
	if err := strip.SavePNG(filepath.Join(*outDir, "spectrum.png")); err != nil {
		log.Fatalf("write spectrum: %v", err)
	}

	if err := renderEasing(move.NewEasingTable(), 160).SavePNG(filepath.Join(*outDir, "easing.png")); err != nil {
		log.Fatalf("write easing: %v", err)
	}

	log.Printf("wrote %d frames, spectrum.png and easing.png to %s", *frames, *outDir)
}

// pointerPath moves the synthetic pointer around an ellipse inset from the
// canvas edges. t in [0, 1) covers one lap.
func pointerPath(w, h, t float64) move.Vec2 {
	center := move.Vec2{X: w / 2, Y: h / 2}
	edge := move.Vec2{X: w * 0.8, Y: h / 2}
	p := move.Orbit(edge.X, edge.Y, center.X, center.Y, 2*math.Pi*t)
	return move.Vec2{X: p.X, Y: center.Y + (p.Y-center.Y)*0.6}
}
