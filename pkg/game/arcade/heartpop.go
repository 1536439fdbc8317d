package arcade

import "math/rand"

// HeartPop tuning.
const (
	heartSpawnInterval = 0.8  // seconds between spawns
	heartLifetime      = 2.4  // seconds a heart stays up
	heartHitHalf       = 0.07 // half-size of the pop hit box, normalized
)

// Heart is a popped-or-expires item at a normalized position.
type Heart struct {
	X, Y float64 // normalized [0,1] within the play area
	TTL  float64 // seconds remaining
}

// HeartPop is the timed spawn/despawn pop game: hearts appear at a
// fixed interval, fade out when their time runs out, and score a point
// when clicked first.
type HeartPop struct {
	Score  int
	Hearts []Heart

	spawnAcc float64
	rng      *rand.Rand
}

// NewHeartPop creates an empty game.
func NewHeartPop(rng *rand.Rand) *HeartPop {
	return &HeartPop{rng: rng}
}

// Restart resets score and clears all live hearts.
func (h *HeartPop) Restart() {
	h.Score = 0
	h.Hearts = h.Hearts[:0]
	h.spawnAcc = 0
}

// Update spawns on the fixed interval and expires hearts whose ttl has
// run out.
func (h *HeartPop) Update(dt float64) {
	h.spawnAcc += dt
	for h.spawnAcc >= heartSpawnInterval {
		h.spawnAcc -= heartSpawnInterval
		h.Hearts = append(h.Hearts, Heart{
			X:   h.rng.Float64(),
			Y:   h.rng.Float64(),
			TTL: heartLifetime,
		})
	}

	alive := h.Hearts[:0]
	for _, heart := range h.Hearts {
		heart.TTL -= dt
		if heart.TTL > 0 {
			alive = append(alive, heart)
		}
	}
	h.Hearts = alive
}

// Pop removes the first heart whose hit box contains the normalized
// point and increments the score. It reports whether a heart was hit.
func (h *HeartPop) Pop(x, y float64) bool {
	for i, heart := range h.Hearts {
		if x >= heart.X-heartHitHalf && x <= heart.X+heartHitHalf &&
			y >= heart.Y-heartHitHalf && y <= heart.Y+heartHitHalf {
			h.Hearts = append(h.Hearts[:i], h.Hearts[i+1:]...)
			h.Score++
			return true
		}
	}
	return false
}
