package arcade

import "math/rand"

// ButterflyCatch tuning. Butterflies live in a normalized sub-rectangle
// inset from the panel edges so sprites never clip the border.
const (
	butterflyCount   = 6
	butterflyMin     = 2
	butterflyHitHalf = 0.08
	butterflySpeed   = 0.25 // normalized units per second

	butterflyMinX = 0.08
	butterflyMaxX = 0.92
	butterflyMinY = 0.12
	butterflyMaxY = 0.88
)

// Butterfly is a bouncing item with a normalized position and velocity.
type Butterfly struct {
	X, Y   float64
	VX, VY float64
}

// ButterflyCatch is the bouncing-sprite catch game: a fixed set of
// butterflies drift inside a bounded area, reflecting off its edges.
// Catching one scores a point; when too few remain the whole set is
// regenerated so the game never peters out.
type ButterflyCatch struct {
	Score       int
	Butterflies []Butterfly

	rng *rand.Rand
}

// NewButterflyCatch creates a fully populated game.
func NewButterflyCatch(rng *rand.Rand) *ButterflyCatch {
	b := &ButterflyCatch{rng: rng}
	b.populate()
	return b
}

// Restart resets the score and regenerates the full set.
func (b *ButterflyCatch) Restart() {
	b.Score = 0
	b.populate()
}

// populate regenerates the whole set with fresh random positions and
// velocities.
func (b *ButterflyCatch) populate() {
	b.Butterflies = b.Butterflies[:0]
	for i := 0; i < butterflyCount; i++ {
		vx := butterflySpeed * (0.5 + b.rng.Float64())
		if b.rng.Intn(2) == 0 {
			vx = -vx
		}
		vy := butterflySpeed * (0.5 + b.rng.Float64())
		if b.rng.Intn(2) == 0 {
			vy = -vy
		}
		b.Butterflies = append(b.Butterflies, Butterfly{
			X:  butterflyMinX + b.rng.Float64()*(butterflyMaxX-butterflyMinX),
			Y:  butterflyMinY + b.rng.Float64()*(butterflyMaxY-butterflyMinY),
			VX: vx,
			VY: vy,
		})
	}
}

// Update moves every butterfly by its constant velocity, reflecting the
// velocity sign elastically on boundary contact.
func (b *ButterflyCatch) Update(dt float64) {
	for i := range b.Butterflies {
		fly := &b.Butterflies[i]
		fly.X += fly.VX * dt
		fly.Y += fly.VY * dt

		if fly.X < butterflyMinX {
			fly.X = butterflyMinX
			fly.VX = -fly.VX
		} else if fly.X > butterflyMaxX {
			fly.X = butterflyMaxX
			fly.VX = -fly.VX
		}
		if fly.Y < butterflyMinY {
			fly.Y = butterflyMinY
			fly.VY = -fly.VY
		} else if fly.Y > butterflyMaxY {
			fly.Y = butterflyMaxY
			fly.VY = -fly.VY
		}
	}
}

// Catch removes the first butterfly whose hit box contains the
// normalized point and increments the score. When the population drops
// below the minimum the whole set is regenerated.
func (b *ButterflyCatch) Catch(x, y float64) bool {
	for i, fly := range b.Butterflies {
		if x >= fly.X-butterflyHitHalf && x <= fly.X+butterflyHitHalf &&
			y >= fly.Y-butterflyHitHalf && y <= fly.Y+butterflyHitHalf {
			b.Butterflies = append(b.Butterflies[:i], b.Butterflies[i+1:]...)
			b.Score++
			if len(b.Butterflies) < butterflyMin {
				b.populate()
			}
			return true
		}
	}
	return false
}
