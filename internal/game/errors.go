package game

import "errors"

// Failure kinds of a simulation step. Bounds and self-collision end the
// game; growth at capacity is unreachable while growth is gated on length.
var (
	ErrBoundsExceeded   = errors.New("game: bounds exceeded")
	ErrSelfCollision    = errors.New("game: self collision")
	ErrGrowthAtCapacity = errors.New("game: growth at capacity")
)

// Message returns the text shown to the player for a step failure.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrBoundsExceeded):
		return "Bounds reached!"
	case errors.Is(err, ErrSelfCollision):
		return "Your snake bit itself!"
	case errors.Is(err, ErrGrowthAtCapacity):
		return "Snake is at maximum length"
	case err == nil:
		return ""
	default:
		return err.Error()
	}
}
