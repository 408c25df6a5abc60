package motionplan

import (
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// PlannerConfig is the construction-time configuration shared by every
// planner: a PRNG seed for reproducibility and a logger. The zero value is
// valid — Seed of 0 is replaced with a time-derived seed, and a nil Logger
// is replaced with a no-op one — so callers are never required to populate
// either field (spec.md §5's RNG-ordering requirement plus the teacher's
// convention of accepting, but not requiring, a logger).
type PlannerConfig struct {
	Seed   int64
	Logger *zap.SugaredLogger
}

func (c PlannerConfig) rng() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

func (c PlannerConfig) logger() *zap.SugaredLogger {
	if c.Logger == nil {
		return zap.NewNop().Sugar()
	}
	return c.Logger
}
