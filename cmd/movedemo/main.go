// Movedemo opens a window running the orbit and flock demos. Move the mouse
// to steer; press O for orbit, F for flock, and D to toggle debug output.
package main

import (
	"log"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pborman/getopt"

	"github.com/phanxgames/move/internal/sketch"
)

const windowTitle = "Move — Orbit & Flock"

func main() {
	configPath := getopt.StringLong("config", 'c', "", "params YAML file", "path")
	envPath := getopt.StringLong("env", 'e', ".env", "dotenv file with MOVE_* overrides", "path")
	mode := getopt.StringLong("mode", 'm', "", "demo to start with (orbit|flock)", "mode")
	debug := getopt.BoolLong("debug", 'd', "print frame stats to stderr")
	width := getopt.IntLong("width", 'W', 960, "window width")
	height := getopt.IntLong("height", 'H', 640, "window height")
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
	if *mode != "" {
		if params.Mode, err = sketch.ParseMode(*mode); err != nil {
			log.Fatal(err)
		}
	}

	sk, err := sketch.New(params, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
	if err != nil {
		log.Fatal(err)
	}

	g := &game{sketch: sk, debug: *debug}

	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetWindowSize(*width, *height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
