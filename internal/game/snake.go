package game

// Snake limits and starting layout.
const (
	MaxLength   = 100
	StartRow    = 11
	StartColumn = 0
	StartLength = 3
)

// Snake is a fixed-capacity body plus a logical length. Index 0 is the
// tail and index length-1 the head. The backing array never grows.
type Snake struct {
	positions [MaxLength]Position
	length    int
	direction Direction
	treat     Position
	hasTreat  bool
}

// NewSnake returns a StartLength snake at the start position moving right.
func NewSnake() Snake {
	s := Snake{length: 1, direction: DirRight}
	for i := range s.positions {
		s.positions[i] = Position{Row: StartRow, Col: StartColumn}
	}
	for range StartLength - 1 {
		if err := s.Grow(); err != nil {
			panic("game: start layout does not fit: " + err.Error())
		}
	}
	return s
}

// Head returns the head position.
func (s *Snake) Head() Position {
	return s.positions[s.length-1]
}

// Body returns the occupied positions, tail first. The slice aliases the
// snake's storage.
func (s *Snake) Body() []Position {
	return s.positions[:s.length]
}

// Len returns the logical length.
func (s *Snake) Len() int {
	return s.length
}

// Direction returns the current direction.
func (s *Snake) Direction() Direction {
	return s.direction
}

// Treat returns the treat position, if one is placed.
func (s *Snake) Treat() (Position, bool) {
	return s.treat, s.hasTreat
}

// PlaceTreat puts the treat at p.
func (s *Snake) PlaceTreat(p Position) {
	s.treat = p
	s.hasTreat = true
}

// Occupies reports whether p is part of the body.
func (s *Snake) Occupies(p Position) bool {
	for _, b := range s.Body() {
		if b == p {
			return true
		}
	}
	return false
}

// HasTreat reports whether the treat sits at p.
func (s *Snake) HasTreat(p Position) bool {
	return s.hasTreat && s.treat == p
}

// AtMaxLength reports whether the body is full.
func (s *Snake) AtMaxLength() bool {
	return s.length == MaxLength
}

// Turn changes direction unless d reverses the current one.
func (s *Snake) Turn(d Direction) {
	if d == s.direction.Opposite() {
		return
	}
	s.direction = d
}

// nextStep returns the cell one step ahead of the head.
func (s *Snake) nextStep() (Position, error) {
	p := s.Head()
	switch s.direction {
	case DirUp:
		p.Row--
	case DirDown:
		p.Row++
	case DirLeft:
		p.Col--
	case DirRight:
		p.Col++
	}
	if !p.InBounds() {
		return Position{}, ErrBoundsExceeded
	}
	return p, nil
}

// Grow appends the next cell as the new head. A treat on that cell is
// consumed.
func (s *Snake) Grow() error {
	if s.AtMaxLength() {
		return ErrGrowthAtCapacity
	}
	next, err := s.nextStep()
	if err != nil {
		return err
	}
	if s.Occupies(next) {
		return ErrSelfCollision
	}
	s.positions[s.length] = next
	s.length++
	if s.HasTreat(next) {
		s.hasTreat = false
	}
	return nil
}

// Move advances one cell: onto the treat it grows, otherwise the body
// shifts toward the tail and the length is unchanged.
func (s *Snake) Move() error {
	next, err := s.nextStep()
	if err != nil {
		return err
	}
	if s.HasTreat(next) {
		return s.Grow()
	}
	if s.Occupies(next) {
		return ErrSelfCollision
	}
	copy(s.positions[:s.length-1], s.positions[1:s.length])
	s.positions[s.length-1] = next
	return nil
}
