// Package arcade implements the falling-object mini-game loop.
package arcade

import (
	"context"
	"errors"
	"math/rand/v2"
	"slices"

	"github.com/google/uuid"

	"github.com/abhisek/mindarena/internal/progress"
	"github.com/abhisek/mindarena/internal/store"
	"github.com/abhisek/mindarena/internal/timer"
)

// State is the engine's top-level state.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Signal is the feedback strength of a tap.
type Signal int

const (
	SignalNone Signal = iota
	SignalLight
	SignalHeavy
)

// Timer tags carried by the engine's timers.
const (
	TagTick  = "tick"
	TagSpawn = "spawn"
)

var (
	ErrNotPlaying    = errors.New("arcade: not playing")
	ErrRunInProgress = errors.New("arcade: run in progress")
	ErrNoEntity      = errors.New("arcade: no such entity")
	ErrTornDown      = errors.New("arcade: engine torn down")
)

// Ledger credits a finished run. *progress.Store satisfies it.
type Ledger interface {
	CreditRun(ctx context.Context, rec store.RunRecord) (progress.State, error)
}

// Entity is a falling object.
type Entity struct {
	ID         uuid.UUID
	X, Y       float64
	Beneficial bool
	SpawnedAt  float64 // game seconds
}

// Final is the result of a finished run.
type Final struct {
	RunID   string
	Score   int
	Orbs    int
	Elapsed float64
}

// Engine owns one game session: the menu, any number of runs and the game
// over screen in between. Entities belong exclusively to the current run.
type Engine struct {
	cfg    Config
	ledger Ledger
	rng    *rand.Rand
	timers timer.Set

	state    State
	runID    string
	score    int
	lives    int
	elapsed  float64
	speed    float64
	entities []Entity
	final    Final
	tornDown bool
}

// New creates an engine in the menu state. A nil rng draws from the global
// source.
func New(cfg Config, ledger Ledger, rng *rand.Rand) *Engine {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Engine{cfg: cfg, ledger: ledger, rng: rng, speed: 1}
}

// Start begins a run from the menu or the game over screen and returns the
// tick and spawn timers to arm.
func (e *Engine) Start() ([]timer.Timer, error) {
	if e.tornDown {
		return nil, ErrTornDown
	}
	if e.state == StatePlaying {
		return nil, nil
	}
	e.timers.StopAll()

	e.state = StatePlaying
	e.runID = uuid.NewString()
	e.score = 0
	e.lives = e.cfg.Lives
	e.elapsed = 0
	e.speed = 1
	e.entities = e.entities[:0]
	e.final = Final{}

	return []timer.Timer{
		e.timers.Every(TagTick, e.cfg.TickInterval),
		e.timers.Every(TagSpawn, e.cfg.SpawnInterval),
	}, nil
}

// Fire handles a delivered timer and returns the timers to re-arm. Tokens
// the engine no longer owns are ignored.
func (e *Engine) Fire(ctx context.Context, tok timer.Token) ([]timer.Timer, error) {
	t, ok := e.timers.Fire(tok)
	if !ok || e.state != StatePlaying {
		return nil, nil
	}

	var err error
	switch t.Tag {
	case TagTick:
		err = e.Tick(ctx)
	case TagSpawn:
		e.Spawn()
	}

	if !e.timers.Live(t.Tag) {
		return nil, err
	}
	return []timer.Timer{t}, err
}

// Tick advances game time by one fixed step.
func (e *Engine) Tick(ctx context.Context) error {
	if e.state != StatePlaying {
		return ErrNotPlaying
	}

	e.elapsed += e.cfg.Step
	e.speed = 1 + e.elapsed/e.cfg.RampSeconds
	dy := e.cfg.BaseSpeed * e.speed
	for i := range e.entities {
		e.entities[i].Y += dy
	}

	bottom := e.cfg.Height + e.cfg.Margin
	kept := e.entities[:0]
	missed := 0
	for _, ent := range e.entities {
		if ent.Y > bottom {
			if ent.Beneficial {
				missed++
			}
			continue
		}
		kept = append(kept, ent)
	}
	e.entities = kept

	if missed > 0 {
		return e.loseLives(ctx, missed)
	}
	return nil
}

// Spawn drops a new entity at a random horizontal position above the play
// area.
func (e *Engine) Spawn() (Entity, error) {
	if e.state != StatePlaying {
		return Entity{}, ErrNotPlaying
	}
	lo, hi := e.cfg.Margin, e.cfg.Width-e.cfg.Margin
	x := lo
	if hi > lo {
		x = lo + e.rng.Float64()*(hi-lo)
	}
	ent := Entity{
		ID:         uuid.New(),
		X:          x,
		Y:          -e.cfg.Margin,
		Beneficial: e.drawBeneficial(),
		SpawnedAt:  e.elapsed,
	}
	e.entities = append(e.entities, ent)
	return ent, nil
}

func (e *Engine) drawBeneficial() bool {
	if e.cfg.Bias == BiasTwoThirds {
		return e.rng.IntN(3) < 2
	}
	if e.rng.IntN(2) == 1 {
		return true
	}
	return e.rng.IntN(2) == 1
}

// Tap collects the live entity id.
func (e *Engine) Tap(ctx context.Context, id uuid.UUID) (Signal, error) {
	if e.state != StatePlaying {
		return SignalNone, ErrNotPlaying
	}
	i := slices.IndexFunc(e.entities, func(ent Entity) bool { return ent.ID == id })
	if i < 0 {
		return SignalNone, ErrNoEntity
	}
	ent := e.entities[i]
	e.entities = slices.Delete(e.entities, i, i+1)

	if ent.Beneficial {
		e.score += e.cfg.PointsPerCatch
		return SignalLight, nil
	}
	return SignalHeavy, e.loseLives(ctx, 1)
}

// TapLane collects the lowest live entity in lane.
func (e *Engine) TapLane(ctx context.Context, lane int) (Signal, error) {
	if e.state != StatePlaying {
		return SignalNone, ErrNotPlaying
	}
	best := -1
	for i, ent := range e.entities {
		if e.cfg.LaneOf(ent.X) != lane {
			continue
		}
		if best < 0 || ent.Y > e.entities[best].Y {
			best = i
		}
	}
	if best < 0 {
		return SignalNone, ErrNoEntity
	}
	return e.Tap(ctx, e.entities[best].ID)
}

func (e *Engine) loseLives(ctx context.Context, n int) error {
	e.lives = max(0, e.lives-n)
	if e.lives == 0 {
		return e.end(ctx)
	}
	return nil
}

// end finishes the run. It runs once per run: the state leaves Playing
// before anything else happens.
func (e *Engine) end(ctx context.Context) error {
	if e.state != StatePlaying {
		return nil
	}
	e.state = StateGameOver
	e.Stop()

	e.final = Final{
		RunID:   e.runID,
		Score:   e.score,
		Orbs:    e.cfg.OrbsEarned(e.score),
		Elapsed: e.elapsed,
	}
	if e.ledger == nil {
		return nil
	}
	_, err := e.ledger.CreditRun(ctx, store.RunRecord{
		RunID:        e.final.RunID,
		Kind:         store.RunKindArcade,
		Score:        e.final.Score,
		Orbs:         e.final.Orbs,
		DurationSecs: e.final.Elapsed,
	})
	return err
}

// Stop cancels the tick and spawn timers together. It reports how many
// timers were live; calling it again returns 0.
func (e *Engine) Stop() int {
	return e.timers.Stop(TagTick) + e.timers.Stop(TagSpawn)
}

// ToMenu returns to the menu from the game over screen.
func (e *Engine) ToMenu() error {
	if e.state == StatePlaying {
		return ErrRunInProgress
	}
	e.state = StateMenu
	e.entities = e.entities[:0]
	return nil
}

// Teardown abandons the session. A run in progress is stopped without
// credit and no timer is honoured afterwards.
func (e *Engine) Teardown() {
	e.timers.StopAll()
	e.tornDown = true
	if e.state == StatePlaying {
		e.state = StateMenu
	}
}

func (e *Engine) Config() Config     { return e.cfg }
func (e *Engine) State() State       { return e.state }
func (e *Engine) Score() int         { return e.score }
func (e *Engine) Lives() int         { return e.lives }
func (e *Engine) Elapsed() float64   { return e.elapsed }
func (e *Engine) Speed() float64     { return e.speed }
func (e *Engine) Final() Final       { return e.final }
func (e *Engine) Pending() int       { return e.timers.Len() }
func (e *Engine) Entities() []Entity { return slices.Clone(e.entities) }
