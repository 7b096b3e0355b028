package game

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/vovakirdan/vgasnake/internal/vga"
)

// recordingDisplay keeps every frame and message the engine emits.
type recordingDisplay struct {
	frames []*vga.Image
	prints []string
}

func (d *recordingDisplay) WriteFullScreen(img *vga.Image) {
	cp := *img
	d.frames = append(d.frames, &cp)
}

func (d *recordingDisplay) Print(s string) {
	d.prints = append(d.prints, s)
}

// seqRandom returns the queued values in order, then zeros.
type seqRandom struct {
	values []uint32
}

func (r *seqRandom) Uint32() uint32 {
	if len(r.values) == 0 {
		return 0
	}
	v := r.values[0]
	r.values = r.values[1:]
	return v
}

func newTestGame(d Difficulty, values ...uint32) (*Game, *recordingDisplay) {
	disp := &recordingDisplay{}
	return New(disp, &seqRandom{values: values}, Options{Difficulty: d}), disp
}

// setBody replaces the snake body, tail first.
func setBody(g *Game, dir Direction, body ...Position) {
	g.snake.length = len(body)
	copy(g.snake.positions[:], body)
	g.snake.direction = dir
}

func TestNewDefaultsToHard(t *testing.T) {
	g := New(&recordingDisplay{}, &seqRandom{}, Options{})
	if g.Difficulty() != Hard {
		t.Errorf("Difficulty() = %v, expected hard", g.Difficulty())
	}
	if g.Difficulty().Divisor() != 3 {
		t.Errorf("Divisor() = %d, expected 3", g.Difficulty().Divisor())
	}
}

func TestFirstTickSteps(t *testing.T) {
	g, disp := newTestGame(Hard)
	g.Tick()

	snap := g.Snapshot()
	if snap.Head != (Position{Row: StartRow, Col: 3}) {
		t.Errorf("Head = %+v, expected (11, 3)", snap.Head)
	}
	if snap.Tick != 1 {
		t.Errorf("Tick = %d, expected 1", snap.Tick)
	}
	if len(disp.frames) != 1 {
		t.Errorf("rendered %d frames, expected 1", len(disp.frames))
	}
}

func TestDirectionReversalIgnored(t *testing.T) {
	g, _ := newTestGame(Hard)

	g.HandleKey(KeyEvent{Code: KeyArrowLeft})
	g.Tick() // counter 0: step

	snap := g.Snapshot()
	if snap.Dir != DirRight {
		t.Errorf("Dir = %v, expected right after reversal request", snap.Dir)
	}
	if snap.Head != (Position{Row: StartRow, Col: 3}) {
		t.Errorf("Head = %+v, expected (11, 3)", snap.Head)
	}
	if snap.HasPending {
		t.Error("pending move should be cleared by the step")
	}

	g.HandleKey(KeyEvent{Code: KeyArrowUp})
	g.Tick() // 1
	g.Tick() // 2
	if g.Snapshot().Dir != DirRight {
		t.Error("direction should not change between steps")
	}
	g.Tick() // 3: step

	snap = g.Snapshot()
	if snap.Dir != DirUp {
		t.Errorf("Dir = %v, expected up", snap.Dir)
	}
	if snap.Head != (Position{Row: StartRow - 1, Col: 3}) {
		t.Errorf("Head = %+v, expected (10, 3)", snap.Head)
	}
}

func TestHandleKey(t *testing.T) {
	tests := []struct {
		name    string
		events  []KeyEvent
		want    Direction
		pending bool
	}{
		{"no events", nil, 0, false},
		{"press down", []KeyEvent{{Code: KeyArrowDown}}, DirDown, true},
		{"release ignored", []KeyEvent{{Code: KeyArrowDown, State: KeyReleased}}, 0, false},
		{"last writer wins", []KeyEvent{{Code: KeyArrowDown}, {Code: KeyArrowUp}}, DirUp, true},
		{"other key keeps pending", []KeyEvent{{Code: KeyArrowDown}, {Code: KeyOther}}, DirDown, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, _ := newTestGame(Hard)
			for _, ev := range tc.events {
				g.HandleKey(ev)
			}
			snap := g.Snapshot()
			if snap.HasPending != tc.pending {
				t.Fatalf("HasPending = %v, expected %v", snap.HasPending, tc.pending)
			}
			if tc.pending && snap.Pending != tc.want {
				t.Errorf("Pending = %v, expected %v", snap.Pending, tc.want)
			}
			if snap.Dir != DirRight {
				t.Error("HandleKey must not change the direction directly")
			}
		})
	}
}

func TestBoundaryEndsGame(t *testing.T) {
	g, disp := newTestGame(Hard)
	setBody(g, DirRight,
		Position{Row: 5, Col: Cols - 3},
		Position{Row: 5, Col: Cols - 2},
		Position{Row: 5, Col: Cols - 1},
	)

	g.Tick()

	snap := g.Snapshot()
	if snap.State != StateGameOver {
		t.Fatalf("State = %v, expected game over", snap.State)
	}
	if !errors.Is(snap.Err, ErrBoundsExceeded) {
		t.Errorf("Err = %v, expected ErrBoundsExceeded", snap.Err)
	}
	if len(disp.frames) != 0 {
		t.Errorf("rendered %d frames, expected none on failure", len(disp.frames))
	}
	if len(disp.prints) != 1 || !strings.Contains(disp.prints[0], "Bounds reached!") {
		t.Fatalf("prints = %q, expected the bounds message", disp.prints)
	}

	for range 30 {
		g.Tick()
	}
	if len(disp.frames) != 0 || len(disp.prints) != 1 {
		t.Errorf("display changed after game over: %d frames, %d prints", len(disp.frames), len(disp.prints))
	}
	if after := g.Snapshot(); after.Head != snap.Head || after.Tick != 31 {
		t.Errorf("simulation moved after game over: head %+v, tick %d", after.Head, after.Tick)
	}
}

func TestSelfCollisionEndsGame(t *testing.T) {
	g, disp := newTestGame(Hard)
	setBody(g, DirUp,
		Position{Row: 3, Col: 5},
		Position{Row: 4, Col: 5},
		Position{Row: 4, Col: 6},
		Position{Row: 5, Col: 6},
		Position{Row: 5, Col: 5},
	)

	g.Tick()

	snap := g.Snapshot()
	if snap.State != StateGameOver {
		t.Fatalf("State = %v, expected game over", snap.State)
	}
	if !errors.Is(snap.Err, ErrSelfCollision) {
		t.Errorf("Err = %v, expected ErrSelfCollision", snap.Err)
	}
	if len(disp.prints) != 1 || !strings.Contains(disp.prints[0], "Your snake bit itself!") {
		t.Errorf("prints = %q, expected the collision message", disp.prints)
	}
	if !g.State().GameOver {
		t.Error("State().GameOver should be true")
	}
}

func TestTreatPlacementSkipsBody(t *testing.T) {
	// First sample (11, 1) is on the body, second (0, 0) is free.
	g, _ := newTestGame(Hard, StartRow, 1, 0, 0)
	g.Tick()

	snap := g.Snapshot()
	if !snap.HasTreat {
		t.Fatal("expected a treat after the first step")
	}
	if snap.Treat != (Position{Row: 0, Col: 0}) {
		t.Errorf("Treat = %+v, expected (0, 0)", snap.Treat)
	}
	for _, p := range snap.Body {
		if p == snap.Treat {
			t.Errorf("treat placed on body cell %+v", p)
		}
	}
}

func TestTreatNeverOnBody(t *testing.T) {
	disp := &recordingDisplay{}
	g := New(disp, rand.New(rand.NewSource(7)), Options{Difficulty: Hard})

	for range 300 {
		g.Tick()
		snap := g.Snapshot()
		if snap.State == StateGameOver {
			break
		}
		if !snap.HasTreat {
			continue
		}
		for _, p := range snap.Body {
			if p == snap.Treat && p != snap.Head {
				t.Fatalf("treat %+v overlaps body", snap.Treat)
			}
		}
	}
}

func TestEatingTreatGrows(t *testing.T) {
	g, _ := newTestGame(Hard, StartRow, 3)
	g.Tick()

	snap := g.Snapshot()
	if snap.SnakeLen != StartLength+1 {
		t.Fatalf("SnakeLen = %d, expected %d", snap.SnakeLen, StartLength+1)
	}
	if snap.HasTreat {
		t.Error("treat should be consumed")
	}
	want := []Position{{StartRow, 0}, {StartRow, 1}, {StartRow, 2}, {StartRow, 3}}
	for i, p := range want {
		if snap.Body[i] != p {
			t.Errorf("Body[%d] = %+v, expected %+v", i, snap.Body[i], p)
		}
	}
	if g.State().Score != 1 {
		t.Errorf("Score = %d, expected 1", g.State().Score)
	}
}

func TestDifficultyGating(t *testing.T) {
	g, disp := newTestGame(Medium)

	for i := range 20 {
		before := len(disp.frames)
		g.Tick()
		rendered := len(disp.frames) > before
		if want := i%5 == 0; rendered != want {
			t.Errorf("tick %d: rendered = %v, expected %v", i, rendered, want)
		}
	}
	if len(disp.frames) != 4 {
		t.Errorf("rendered %d frames over 20 ticks, expected 4", len(disp.frames))
	}
}

func TestFrameLayout(t *testing.T) {
	g, disp := newTestGame(Hard, 0, 10)
	g.Tick()

	img := disp.frames[0]
	for col := range vga.Width {
		if img[0][col] != '#' || img[vga.Height-1][col] != '#' {
			t.Fatalf("border missing at column %d", col)
		}
	}
	for row := range vga.Height {
		if img[row][0] != '#' || img[row][vga.Width-1] != '#' {
			t.Fatalf("border missing at row %d", row)
		}
	}

	// Snake moved to (11,1)..(11,3); screen coords are shifted by one.
	if img[StartRow+1][4] != '>' {
		t.Errorf("head glyph = %q, expected '>'", img[StartRow+1][4])
	}
	if img[StartRow+1][2] != '+' || img[StartRow+1][3] != '+' {
		t.Error("body cells should be '+'")
	}
	if img[StartRow+1][1] != ' ' {
		t.Errorf("vacated tail cell = %q, expected blank", img[StartRow+1][1])
	}
	if img[1][11] != 'x' {
		t.Errorf("treat cell = %q, expected 'x'", img[1][11])
	}
}

func TestHeadGlyphs(t *testing.T) {
	tests := map[Direction]byte{DirUp: '^', DirDown: 'v', DirLeft: '<', DirRight: '>'}
	for d, want := range tests {
		if d.Glyph() != want {
			t.Errorf("%v.Glyph() = %q, expected %q", d, d.Glyph(), want)
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("%v.Opposite() is not an involution", d)
		}
	}
}

func TestGameOverMessageCentered(t *testing.T) {
	console := vga.NewConsole(vga.NewBuffer(), vga.NewColorCode(vga.Yellow, vga.Black))
	console.Init()
	g := New(console, &seqRandom{values: []uint32{5, 5}}, Options{Difficulty: Hard})
	setBody(g, DirUp,
		Position{Row: 2, Col: 0},
		Position{Row: 1, Col: 0},
		Position{Row: 0, Col: 0},
	)

	g.Tick()

	f := console.Snapshot()
	want := center("Bounds reached!", vga.Width)
	row := vga.Height - 1 - messageTrailLines
	if got := f.Row(row); got != want {
		t.Errorf("row %d = %q, expected %q", row, got, want)
	}
	for r := range vga.Height {
		if r != row && strings.TrimSpace(f.Row(r)) != "" {
			t.Errorf("row %d = %q, expected blank", r, f.Row(r))
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() Snapshot {
		g := New(&recordingDisplay{}, rand.New(rand.NewSource(12345)), Options{Difficulty: Medium})
		for i := range 200 {
			switch i {
			case 20:
				g.HandleKey(KeyEvent{Code: KeyArrowDown})
			case 60:
				g.HandleKey(KeyEvent{Code: KeyArrowRight})
			}
			g.Tick()
		}
		return g.Snapshot()
	}

	s1, s2 := run(), run()
	if s1.Head != s2.Head || s1.Treat != s2.Treat || s1.SnakeLen != s2.SnakeLen || s1.State != s2.State {
		t.Errorf("snapshots differ: %+v vs %+v", s1, s2)
	}
}
