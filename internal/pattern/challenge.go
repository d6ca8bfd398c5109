// Package pattern implements the daily memory challenge: a colour sequence
// is revealed one element at a time and the player repeats it.
package pattern

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/timer"
)

const (
	NumColors  = 4
	MaxSteps   = 3
	MaxLength  = 5
	RewardOrbs = 2

	HighlightDuration = 800 * time.Millisecond
	GapDuration       = 300 * time.Millisecond
)

// Timer tags.
const (
	tagHighlight = "highlight"
	tagGap       = "gap"
)

// Phase is the state of the current step.
type Phase int

const (
	PhaseShowing Phase = iota
	PhaseInput
	PhaseResult
)

func (p Phase) String() string {
	switch p {
	case PhaseShowing:
		return "showing"
	case PhaseInput:
		return "input"
	case PhaseResult:
		return "result"
	default:
		return "unknown"
	}
}

var (
	ErrNotAccepting    = errors.New("pattern: not accepting input")
	ErrColorOutOfRange = errors.New("pattern: color out of range")
	ErrNoNextStep      = errors.New("pattern: no next step")
	ErrTornDown        = errors.New("pattern: challenge torn down")
)

// Ledger credits a successful step. *progress.Store satisfies it.
type Ledger interface {
	CreditRun(ctx context.Context, rec store.RunRecord) (progress.State, error)
}

// Result is the outcome of a tap.
type Result struct {
	// Done is true when the tap ended the step.
	Done    bool
	Correct bool
	// Credited is set when the reward was granted by this tap.
	Credited bool
	State    progress.State
}

// Length returns the pattern length for step.
func Length(step int) int {
	return min(2+step, MaxLength)
}

// Challenge runs up to MaxSteps memory steps. It is driven by the host
// loop: Start and Next return timers to arm, Fire handles a delivered
// timer and returns any follow-up timers.
type Challenge struct {
	rng    *rand.Rand
	ledger Ledger
	timers timer.Set

	step      int
	target    []int
	collected []int
	phase     Phase
	correct   bool

	revealPos   int
	highlighted int
	tornDown    bool
}

// New creates a challenge. A nil rng draws from the global source.
func New(ledger Ledger, rng *rand.Rand) *Challenge {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Challenge{rng: rng, ledger: ledger, highlighted: -1}
}

// Start begins the current step: draws a fresh target and starts the
// reveal.
func (c *Challenge) Start() []timer.Timer {
	if c.tornDown {
		return nil
	}
	c.timers.StopAll()

	n := Length(c.step)
	c.target = make([]int, n)
	for i := range c.target {
		c.target[i] = c.rng.IntN(NumColors)
	}
	c.collected = c.collected[:0]
	c.phase = PhaseShowing
	c.correct = false
	c.revealPos = 0

	return c.highlight()
}

func (c *Challenge) highlight() []timer.Timer {
	if c.revealPos >= len(c.target) {
		c.highlighted = -1
		c.phase = PhaseInput
		return nil
	}
	c.highlighted = c.target[c.revealPos]
	return []timer.Timer{c.timers.After(tagHighlight, HighlightDuration)}
}

// Fire handles a delivered timer. Tokens the challenge no longer owns are
// ignored.
func (c *Challenge) Fire(tok timer.Token) []timer.Timer {
	if c.tornDown {
		return nil
	}
	t, ok := c.timers.Fire(tok)
	if !ok {
		return nil
	}
	switch t.Tag {
	case tagHighlight:
		c.highlighted = -1
		return []timer.Timer{c.timers.After(tagGap, GapDuration)}
	case tagGap:
		c.revealPos++
		return c.highlight()
	}
	return nil
}

// Tap records a colour during input. The tap is judged immediately: the
// first mismatch ends the step, a full match ends it with the reward.
func (c *Challenge) Tap(ctx context.Context, color int) (Result, error) {
	if c.tornDown {
		return Result{}, ErrTornDown
	}
	if c.phase != PhaseInput {
		return Result{}, ErrNotAccepting
	}
	if color < 0 || color >= NumColors {
		return Result{}, ErrColorOutOfRange
	}

	c.collected = append(c.collected, color)
	i := len(c.collected) - 1
	if c.target[i] != color {
		c.phase = PhaseResult
		c.correct = false
		return Result{Done: true}, nil
	}
	if len(c.collected) < len(c.target) {
		return Result{}, nil
	}

	c.phase = PhaseResult
	c.correct = true
	res := Result{Done: true, Correct: true, Credited: true}
	if c.ledger == nil {
		return res, nil
	}
	st, err := c.ledger.CreditRun(ctx, store.RunRecord{
		RunID: uuid.NewString(),
		Kind:  store.RunKindChallenge,
		Score: len(c.target),
		Orbs:  RewardOrbs,
	})
	res.State = st
	return res, err
}

// HasNext reports whether Next may be called.
func (c *Challenge) HasNext() bool {
	return !c.tornDown && c.phase == PhaseResult && c.correct && c.step < MaxSteps-1
}

// Finished reports whether the run is over: a failed step, or the final
// step completed.
func (c *Challenge) Finished() bool {
	return c.phase == PhaseResult && !c.HasNext()
}

// Next advances to the following step after a success.
func (c *Challenge) Next() ([]timer.Timer, error) {
	if !c.HasNext() {
		return nil, ErrNoNextStep
	}
	c.step++
	return c.Start(), nil
}

// Teardown cancels every pending timer. Later deliveries and taps are
// ignored.
func (c *Challenge) Teardown() {
	c.timers.StopAll()
	c.tornDown = true
	c.highlighted = -1
}

// Step is the zero-based step index.
func (c *Challenge) Step() int { return c.step }

// Phase returns the phase of the current step.
func (c *Challenge) Phase() Phase { return c.phase }

// Correct reports whether the step ended in success.
func (c *Challenge) Correct() bool { return c.phase == PhaseResult && c.correct }

// Target returns a copy of the current target sequence.
func (c *Challenge) Target() []int { return slices.Clone(c.target) }

// Collected returns a copy of the taps so far.
func (c *Challenge) Collected() []int { return slices.Clone(c.collected) }

// Highlighted returns the colour being revealed, if any.
func (c *Challenge) Highlighted() (int, bool) {
	return c.highlighted, c.highlighted >= 0
}

// Pending returns the number of live timers.
func (c *Challenge) Pending() int { return c.timers.Len() }
