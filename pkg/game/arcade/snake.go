// Package arcade provides the mini-game arcade: its screen state
// machine and the three self-contained game simulations (Snake,
// HeartPop, ButterflyCatch).
package arcade

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"github.com/Megaman222111/gift/pkg/engine/geom"
)

// Snake tuning.
const (
	snakeCols         = 16
	snakeRows         = 12
	snakeStartLen     = 3
	snakeStepInterval = 0.14 // seconds per grid step
	snakeFoodRetries  = 64
)

// Cell is a position on the snake grid.
type Cell struct {
	X, Y int
}

// Snake is the grid-stepped snake simulation. Movement advances one
// cell per fixed interval; direction changes are buffered and committed
// only at step boundaries.
type Snake struct {
	Cols, Rows int

	Dir     geom.Dir
	nextDir geom.Dir

	// Body cells, head first, no duplicates. occupied mirrors Body for
	// O(1) self-collision checks and food rejection sampling.
	Body     []Cell
	occupied mapset.Set[Cell]

	Food  Cell
	Alive bool
	Score int

	acc float64
	rng *rand.Rand
}

// NewSnake creates a snake on the default grid.
func NewSnake(rng *rand.Rand) *Snake {
	s := &Snake{Cols: snakeCols, Rows: snakeRows, rng: rng}
	s.Restart()
	return s
}

// Restart resets every field to its initial value.
func (s *Snake) Restart() {
	s.Dir = geom.DirRight
	s.nextDir = geom.DirRight
	s.Alive = true
	s.Score = 0
	s.acc = 0

	startX := s.Cols / 2
	startY := s.Rows / 2
	s.Body = s.Body[:0]
	s.occupied = mapset.New[Cell]()
	for i := 0; i < snakeStartLen; i++ {
		c := Cell{X: startX - i, Y: startY}
		s.Body = append(s.Body, c)
		s.occupied.Put(c)
	}
	s.placeFood()
}

// SetDir buffers a direction change for the next step boundary.
func (s *Snake) SetDir(d geom.Dir) {
	s.nextDir = d
}

// Update advances the accumulator and performs as many fixed-size steps
// as it covers. A dead snake stops stepping until Restart.
func (s *Snake) Update(dt float64) {
	if !s.Alive {
		return
	}
	s.acc += dt
	for s.acc >= snakeStepInterval && s.Alive {
		s.acc -= snakeStepInterval
		s.step()
	}
}

// step advances the head by one cell.
func (s *Snake) step() {
	// Commit the buffered direction unless it would reverse straight
	// into the neck.
	if s.nextDir != s.Dir.Opposite() {
		s.Dir = s.nextDir
	}

	dx, dy := s.Dir.Delta()
	head := Cell{X: s.Body[0].X + dx, Y: s.Body[0].Y + dy}

	if head.X < 0 || head.X >= s.Cols || head.Y < 0 || head.Y >= s.Rows {
		s.Alive = false
		return
	}
	if s.occupied.Has(head) {
		s.Alive = false
		return
	}

	s.Body = append([]Cell{head}, s.Body...)
	s.occupied.Put(head)

	if head == s.Food {
		s.Score++
		s.placeFood()
		return
	}

	tail := s.Body[len(s.Body)-1]
	s.Body = s.Body[:len(s.Body)-1]
	s.occupied.Remove(tail)
}

// placeFood relocates the food to a cell not occupied by the body,
// using bounded rejection sampling. When every retry collides the food
// stays where it is, which degrades gracefully on a nearly full grid.
func (s *Snake) placeFood() {
	for i := 0; i < snakeFoodRetries; i++ {
		c := Cell{X: s.rng.Intn(s.Cols), Y: s.rng.Intn(s.Rows)}
		if !s.occupied.Has(c) {
			s.Food = c
			return
		}
	}
}
