// Package game implements the snake engine: a fixed-capacity snake on a
// 23x78 play-field, advanced by an external periodic tick and steered by
// decoded key events.
//
// The engine holds no goroutines. Tick and HandleKey are the only entry
// points; each runs to completion as one critical section.
package game

import (
	"sync/atomic"

	"github.com/vovakirdan/vgasnake/internal/irq"
	"github.com/vovakirdan/vgasnake/internal/vga"
)

// Display is the part of the frame buffer the engine draws through.
type Display interface {
	WriteFullScreen(img *vga.Image)
	Print(s string)
}

// Random supplies uniformly distributed values for treat placement.
// It must not block.
type Random interface {
	Uint32() uint32
}

// Options configures a new Game.
type Options struct {
	Difficulty Difficulty // zero means Hard
}

// Game is the engine state. Create one per display with New.
type Game struct {
	lock    irq.Lock
	counter atomic.Uint32

	difficulty Difficulty
	snake      Snake
	gameOver   bool
	err        error
	nextMove   Direction
	hasNext    bool

	display Display
	rng     Random
}

// New creates a running game with the start snake and no treat.
func New(display Display, rng Random, opts Options) *Game {
	d := opts.Difficulty
	if d == 0 {
		d = Hard
	}
	return &Game{
		difficulty: d,
		snake:      NewSnake(),
		display:    display,
		rng:        rng,
	}
}

// Tick advances the simulation if the tick counter passes the difficulty
// gate. After game over it only counts.
func (g *Game) Tick() {
	n := g.fetchAddCounter()
	g.lock.Do(func() {
		if g.gameOver || n%g.difficulty.Divisor() != 0 {
			return
		}
		g.step()
	})
}

// fetchAddCounter increments the tick counter and returns its old value.
func (g *Game) fetchAddCounter() uint32 {
	var old uint32
	irq.Without(func() {
		old = g.counter.Add(1) - 1
	})
	return old
}

// step performs one simulation step. Caller holds the lock.
func (g *Game) step() {
	g.makeTreat()

	if g.hasNext {
		g.snake.Turn(g.nextMove)
	}
	g.hasNext = false

	if err := g.snake.Move(); err != nil {
		g.gameOver = true
		g.err = err
		g.printMessage(Message(err))
		return
	}
	g.render()
}

// makeTreat places a treat on a random free cell when none is placed.
// Sampling retries until it misses the body; MaxLength is far below the
// play-field size so this terminates.
func (g *Game) makeTreat() {
	if g.snake.AtMaxLength() || g.snake.hasTreat {
		return
	}
	for {
		p := Position{
			Row: int(g.rng.Uint32() % Rows),
			Col: int(g.rng.Uint32() % Cols),
		}
		if !g.snake.Occupies(p) {
			g.snake.PlaceTreat(p)
			return
		}
	}
}

// HandleKey stages a direction change for the next step. Only presses of
// the arrow keys count; the last one before a step wins.
func (g *Game) HandleKey(ev KeyEvent) {
	if ev.State != KeyPressed {
		return
	}
	d, ok := ev.Code.direction()
	if !ok {
		return
	}
	g.lock.Do(func() {
		g.nextMove = d
		g.hasNext = true
	})
}

// State is the externally visible summary of a game.
type State struct {
	Score    int   // treats eaten
	GameOver bool  // simulation has stopped
	Err      error // why it stopped
}

// State returns the current summary.
func (g *Game) State() State {
	var s State
	g.lock.Do(func() {
		s = State{
			Score:    g.snake.Len() - StartLength,
			GameOver: g.gameOver,
			Err:      g.err,
		}
	})
	return s
}

// Difficulty returns the configured tick divisor.
func (g *Game) Difficulty() Difficulty {
	return g.difficulty
}
