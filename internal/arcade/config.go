package arcade

import "time"

// Bias selects how beneficial entities are drawn.
type Bias int

const (
	// BiasOrFlips is two coin flips ORed together: 75% beneficial.
	BiasOrFlips Bias = iota
	// BiasTwoThirds draws beneficial entities with probability 2/3.
	BiasTwoThirds
)

func (b Bias) String() string {
	if b == BiasTwoThirds {
		return "two-thirds"
	}
	return "or-flips"
}

// Config holds the tuning of a run. Distances are in play-area points.
type Config struct {
	Width  float64
	Height float64
	// Margin keeps spawns away from the side edges and is the distance
	// past the bottom edge at which an entity is dropped.
	Margin float64

	BaseSpeed   float64
	Step        float64 // game seconds advanced per tick
	RampSeconds float64 // speed multiplier gains 1 every RampSeconds

	TickInterval  time.Duration
	SpawnInterval time.Duration

	Lives          int
	PointsPerCatch int
	ScorePerOrb    int

	Lanes int
	Bias  Bias
}

// DefaultConfig returns the standard tuning.
func DefaultConfig() Config {
	return Config{
		Width:          400,
		Height:         800,
		Margin:         50,
		BaseSpeed:      2.0,
		Step:           0.016,
		RampSeconds:    30,
		TickInterval:   time.Second / 60,
		SpawnInterval:  time.Second,
		Lives:          3,
		PointsPerCatch: 10,
		ScorePerOrb:    50,
		Lanes:          5,
		Bias:           BiasOrFlips,
	}
}

// OrbsEarned converts a final score to orbs: one per ScorePerOrb points,
// never less than one.
func (c Config) OrbsEarned(score int) int {
	per := c.ScorePerOrb
	if per <= 0 {
		per = 50
	}
	return max(1, score/per)
}

// LaneOf maps a horizontal position to a lane index.
func (c Config) LaneOf(x float64) int {
	lanes := max(1, c.Lanes)
	span := c.Width - 2*c.Margin
	if span <= 0 {
		return 0
	}
	lane := int((x - c.Margin) / (span / float64(lanes)))
	return min(max(lane, 0), lanes-1)
}
