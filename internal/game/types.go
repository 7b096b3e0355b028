package game

import (
	"fmt"
	"strings"
)

// Play-field geometry: the display grid minus a one-cell border.
const (
	Rows = 23
	Cols = 78
)

// Position is a (row, column) coordinate inside the play-field.
type Position struct {
	Row, Col int
}

// InBounds reports whether p lies inside the play-field.
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < Rows && p.Col >= 0 && p.Col < Cols
}

// Direction represents the snake's movement direction.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Opposite returns the direction reversed by 180 degrees.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// Glyph is the head symbol drawn when moving in d.
func (d Direction) Glyph() byte {
	switch d {
	case DirUp:
		return '^'
	case DirDown:
		return 'v'
	case DirLeft:
		return '<'
	default:
		return '>'
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Difficulty is the tick divisor: the snake advances one cell every
// Divisor() ticks.
type Difficulty int

const (
	Easy   Difficulty = 10
	Medium Difficulty = 5
	Hard   Difficulty = 3
)

// Divisor returns the number of ticks per simulation step.
func (d Difficulty) Divisor() uint32 {
	return uint32(d)
}

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	default:
		return fmt.Sprintf("difficulty(%d)", int(d))
	}
}

// ParseDifficulty resolves "easy", "medium" or "hard".
func ParseDifficulty(name string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "easy":
		return Easy, nil
	case "medium":
		return Medium, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("game: unknown difficulty %q", name)
}

// KeyCode identifies a decoded key.
type KeyCode int

const (
	KeyOther KeyCode = iota
	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
)

// KeyState is the transition a key event reports.
type KeyState int

const (
	KeyPressed KeyState = iota
	KeyReleased
)

// KeyEvent is one decoded key transition.
type KeyEvent struct {
	Code  KeyCode
	State KeyState
}

// direction maps an arrow key to a direction.
func (k KeyCode) direction() (Direction, bool) {
	switch k {
	case KeyArrowUp:
		return DirUp, true
	case KeyArrowDown:
		return DirDown, true
	case KeyArrowLeft:
		return DirLeft, true
	case KeyArrowRight:
		return DirRight, true
	}
	return 0, false
}
