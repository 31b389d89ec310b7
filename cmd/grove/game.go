package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/grove"
)

var clearColor = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// game drives a Simulation from ebiten's update loop.
type game struct {
	sim      *grove.Simulation
	replayer *grove.Replayer
	w, h     int
}

func newGame(sim *grove.Simulation, replayer *grove.Replayer) *game {
	return &game{sim: sim, replayer: replayer}
}

func (g *game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	step(g.sim, g.replayer, 1/float64(ebiten.TPS()))
	g.sim.Sweep()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(clearColor)
	center := grove.Vec2{X: float64(g.w) / 2, Y: float64(g.h) / 2}
	for _, f := range g.sim.Files() {
		grove.DrawFile(screen, f, center)
	}
}

func (g *game) Layout(w, h int) (int, int) {
	g.w, g.h = w, h
	return w, h
}
