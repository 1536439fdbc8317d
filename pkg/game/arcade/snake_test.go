package arcade

import (
	"math/rand"
	"testing"

	"github.com/Megaman222111/gift/pkg/engine/geom"
)

func newTestSnake() *Snake {
	return NewSnake(rand.New(rand.NewSource(1)))
}

// stepN advances the snake exactly n fixed steps.
func stepN(s *Snake, n int) {
	s.Update(float64(n) * snakeStepInterval)
}

func TestSnakeInitialState(t *testing.T) {
	s := newTestSnake()
	if !s.Alive {
		t.Fatal("new snake should be alive")
	}
	if len(s.Body) != snakeStartLen {
		t.Fatalf("body length = %d, want %d", len(s.Body), snakeStartLen)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
	seen := map[Cell]bool{}
	for _, c := range s.Body {
		if seen[c] {
			t.Errorf("duplicate body cell %v", c)
		}
		seen[c] = true
		if c == s.Food {
			t.Errorf("food %v coincides with body", c)
		}
	}
}

func TestSnakeMovesHeadByDirection(t *testing.T) {
	s := newTestSnake()
	// Move away from the food so no accidental growth: pick a course
	// along the current row unless the food sits on it.
	start := s.Body[0]
	n := 3
	stepN(s, n)
	if !s.Alive {
		t.Fatal("snake died unexpectedly")
	}
	grown := s.Score // each food eaten adds one cell
	if len(s.Body) != snakeStartLen+grown {
		t.Errorf("body length = %d, want %d", len(s.Body), snakeStartLen+grown)
	}
	dx, dy := geom.DirRight.Delta()
	want := Cell{X: start.X + n*dx, Y: start.Y + n*dy}
	if s.Body[0] != want {
		t.Errorf("head = %v, want %v", s.Body[0], want)
	}
}

func TestSnakeConstantLengthWithoutFood(t *testing.T) {
	s := newTestSnake()
	// Park the food where the straight run cannot reach it.
	s.Food = Cell{X: 0, Y: 0}
	if s.Body[0].Y == 0 {
		s.Food = Cell{X: 0, Y: s.Rows - 1}
	}
	steps := s.Cols - 1 - s.Body[0].X // stop right before the wall
	stepN(s, steps)
	if !s.Alive {
		t.Fatal("snake died before reaching the wall")
	}
	if len(s.Body) != snakeStartLen {
		t.Errorf("body length = %d, want constant %d", len(s.Body), snakeStartLen)
	}
	if s.Score != 0 {
		t.Errorf("score = %d, want 0", s.Score)
	}
}

func TestSnakeEatsFoodAndGrows(t *testing.T) {
	s := newTestSnake()
	head := s.Body[0]
	s.Food = Cell{X: head.X + 1, Y: head.Y}
	stepN(s, 1)
	if len(s.Body) != snakeStartLen+1 {
		t.Errorf("body length after eating = %d, want %d", len(s.Body), snakeStartLen+1)
	}
	if s.Score != 1 {
		t.Errorf("score after eating = %d, want 1", s.Score)
	}
	for _, c := range s.Body {
		if s.Food == c {
			t.Errorf("relocated food %v coincides with body", s.Food)
		}
	}
}

func TestSnakeDiesAtWall(t *testing.T) {
	s := newTestSnake()
	s.Food = Cell{X: 0, Y: 0} // out of the way
	stepN(s, s.Cols) // more steps than fit on the grid
	if s.Alive {
		t.Fatal("snake should be dead after running into the wall")
	}
	head := s.Body[0]
	stepN(s, 5)
	if s.Body[0] != head {
		t.Error("dead snake must not keep moving")
	}
}

func TestSnakeDiesOnSelfCollision(t *testing.T) {
	s := newTestSnake()
	// Grow once so a tight turn loops back into the body.
	head := s.Body[0]
	s.Food = Cell{X: head.X + 1, Y: head.Y}
	stepN(s, 1) // eat, length 4
	if len(s.Body) != 4 {
		t.Fatalf("setup failed, body length = %d", len(s.Body))
	}
	s.Food = Cell{X: 0, Y: 0}
	// Tight clockwise turn: down, left, up lands on the body.
	s.SetDir(geom.DirDown)
	stepN(s, 1)
	s.SetDir(geom.DirLeft)
	stepN(s, 1)
	s.SetDir(geom.DirUp)
	stepN(s, 1)
	if s.Alive {
		t.Fatal("snake should die moving into its own body")
	}
}

func TestSnakeRejectsReversal(t *testing.T) {
	s := newTestSnake()
	s.Food = Cell{X: 0, Y: 0}
	if s.Body[0].Y == 0 {
		s.Food = Cell{X: 0, Y: s.Rows - 1}
	}
	s.SetDir(geom.DirLeft) // exact reverse of DirRight
	stepN(s, 1)
	if s.Dir != geom.DirRight {
		t.Errorf("direction = %v, want unchanged right", s.Dir)
	}
	if !s.Alive {
		t.Fatal("reversal must not kill the snake")
	}
}

func TestSnakeRestartResetsEverything(t *testing.T) {
	s := newTestSnake()
	stepN(s, s.Cols) // die at the wall
	if s.Alive {
		t.Fatal("setup failed, snake still alive")
	}
	s.Restart()
	if !s.Alive {
		t.Error("restart should revive the snake")
	}
	if len(s.Body) != snakeStartLen {
		t.Errorf("body length after restart = %d, want %d", len(s.Body), snakeStartLen)
	}
	if s.Score != 0 {
		t.Errorf("score after restart = %d, want 0", s.Score)
	}
	if s.Dir != geom.DirRight {
		t.Errorf("direction after restart = %v, want right", s.Dir)
	}
}

func TestSnakeAccumulatorGating(t *testing.T) {
	s := newTestSnake()
	s.Food = Cell{X: 0, Y: 0}
	if s.Body[0].Y == 0 {
		s.Food = Cell{X: 0, Y: s.Rows - 1}
	}
	start := s.Body[0]
	s.Update(snakeStepInterval / 2)
	if s.Body[0] != start {
		t.Error("half an interval must not trigger a step")
	}
	s.Update(snakeStepInterval / 2)
	if s.Body[0] == start {
		t.Error("a full accumulated interval should trigger a step")
	}
}
