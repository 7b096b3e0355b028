package game

// StateType names the engine state.
type StateType string

const (
	StateRunning  StateType = "running"
	StateGameOver StateType = "game_over"
)

// Snapshot captures the game state for tests and diagnostics.
type Snapshot struct {
	Tick       uint32
	Difficulty Difficulty
	SnakeLen   int
	Body       []Position // tail first
	Head       Position
	Dir        Direction
	Treat      Position
	HasTreat   bool
	Pending    Direction
	HasPending bool
	State      StateType
	Err        error
}

// Snapshot returns a copy of the current state.
func (g *Game) Snapshot() Snapshot {
	var s Snapshot
	g.lock.Do(func() {
		state := StateRunning
		if g.gameOver {
			state = StateGameOver
		}
		treat, hasTreat := g.snake.Treat()
		s = Snapshot{
			Tick:       g.counter.Load(),
			Difficulty: g.difficulty,
			SnakeLen:   g.snake.Len(),
			Body:       append([]Position(nil), g.snake.Body()...),
			Head:       g.snake.Head(),
			Dir:        g.snake.Direction(),
			Treat:      treat,
			HasTreat:   hasTreat,
			Pending:    g.nextMove,
			HasPending: g.hasNext,
			State:      state,
			Err:        g.err,
		}
	})
	return s
}
