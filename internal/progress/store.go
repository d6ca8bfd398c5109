// Package progress holds the player's progression and persists it to the
// local key-value store after every change.
package progress

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/abhisek/mindarena/internal/store"
)

// Persisted keys.
const (
	KeyEnergyOrbs             = "energyOrbs"
	KeyCurrentLevel           = "currentLevel"
	KeyTotalLessonsCompleted  = "totalLessonsCompleted"
	KeyTotalPlaytime          = "totalPlaytime"
	KeyCompletedModules       = "completedModules"
	KeyHasCompletedOnboarding = "hasCompletedOnboarding"
)

// Load reads the persisted state. Missing keys keep their defaults and the
// level is never below 1. A key that cannot be decoded also keeps its
// default; the remaining keys still load and every failure is returned
// joined together.
func Load(ctx context.Context, kv store.KV) (State, error) {
	st := Default()
	def := Default()

	var modules []string
	fields := []struct {
		key   string
		dst   any
		reset func()
	}{
		{KeyEnergyOrbs, &st.EnergyOrbs, func() { st.EnergyOrbs = def.EnergyOrbs }},
		{KeyCurrentLevel, &st.CurrentLevel, func() { st.CurrentLevel = def.CurrentLevel }},
		{KeyTotalLessonsCompleted, &st.TotalLessonsCompleted, func() { st.TotalLessonsCompleted = def.TotalLessonsCompleted }},
		{KeyTotalPlaytime, &st.TotalPlaytime, func() { st.TotalPlaytime = def.TotalPlaytime }},
		{KeyCompletedModules, &modules, func() { modules = nil }},
		{KeyHasCompletedOnboarding, &st.HasCompletedOnboarding, func() { st.HasCompletedOnboarding = def.HasCompletedOnboarding }},
	}
	var errs []error
	for _, f := range fields {
		if _, err := kv.Get(ctx, f.key, f.dst); err != nil {
			f.reset()
			errs = append(errs, fmt.Errorf("load %s: %w", f.key, err))
		}
	}

	st.CurrentLevel = max(1, st.CurrentLevel)
	for _, id := range modules {
		st.CompletedModules[id] = true
	}
	return st, errors.Join(errs...)
}

// Save writes every field of st in one statement.
func Save(ctx context.Context, kv store.KV, st State) error {
	modules := st.ModuleIDs()
	if modules == nil {
		modules = []string{}
	}
	return kv.SetMany(ctx, map[string]any{
		KeyEnergyOrbs:             st.EnergyOrbs,
		KeyCurrentLevel:           st.CurrentLevel,
		KeyTotalLessonsCompleted:  st.TotalLessonsCompleted,
		KeyTotalPlaytime:          st.TotalPlaytime,
		KeyCompletedModules:       modules,
		KeyHasCompletedOnboarding: st.HasCompletedOnboarding,
	})
}

// Options configures a Store.
type Options struct {
	// Runs, when set, receives finished mini-game runs.
	Runs store.RunRepo
	// Logger defaults to slog.Default().
	Logger *slog.Logger
}

// Store is the shared progression owner. Every mutation is applied in
// memory, persisted, then published to subscribers. A failed write is
// returned and logged; the in-memory state still advances so play is never
// interrupted by storage trouble.
type Store struct {
	kv     store.KV
	runs   store.RunRepo
	logger *slog.Logger
	state  State

	subs    []subscriber
	nextSub int
}

type subscriber struct {
	id int
	fn func(State)
}

// Open loads the persisted state into a new Store. Keys that fail to load
// stay at their defaults; the error is returned alongside the usable store.
func Open(ctx context.Context, kv store.KV, opts Options) (*Store, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{kv: kv, runs: opts.Runs, logger: logger}

	st, err := Load(ctx, kv)
	s.state = st
	if err != nil {
		logger.Warn("progress load incomplete, bad keys use defaults", "error", err)
		return s, err
	}
	return s, nil
}

// State returns a copy of the current state.
func (s *Store) State() State {
	return s.state.Clone()
}

// Subscribe registers fn to receive every new state. The returned func
// removes the subscription.
func (s *Store) Subscribe(fn func(State)) func() {
	s.nextSub++
	id := s.nextSub
	s.subs = append(s.subs, subscriber{id: id, fn: fn})
	return func() {
		s.subs = slices.DeleteFunc(slices.Clone(s.subs), func(sub subscriber) bool {
			return sub.id == id
		})
	}
}

// CompleteLesson grants one lesson.
func (s *Store) CompleteLesson(ctx context.Context) (State, error) {
	return s.apply(ctx, "complete_lesson", s.state.WithLessonCompleted())
}

// CompleteModule records moduleID and grants one lesson.
func (s *Store) CompleteModule(ctx context.Context, moduleID string) (State, error) {
	replay := s.state.ModuleCompleted(moduleID)
	s.logger.Info("module completed", "module", moduleID, "replay", replay)
	return s.apply(ctx, "complete_module", s.state.WithModuleCompleted(moduleID))
}

// AddOrbs credits n energy orbs.
func (s *Store) AddOrbs(ctx context.Context, n int) (State, error) {
	return s.apply(ctx, "add_orbs", s.state.WithOrbs(n))
}

// AddPlaytime adds seconds of play time.
func (s *Store) AddPlaytime(ctx context.Context, seconds float64) (State, error) {
	return s.apply(ctx, "add_playtime", s.state.WithPlaytime(seconds))
}

// CompleteOnboarding marks onboarding as done.
func (s *Store) CompleteOnboarding(ctx context.Context) (State, error) {
	return s.apply(ctx, "complete_onboarding", s.state.WithOnboardingCompleted())
}

// CreditRun credits a finished run's orbs and play time in one write and
// appends it to the run history. History is written first so subscribers
// see the new run in RunStats.
func (s *Store) CreditRun(ctx context.Context, rec store.RunRecord) (State, error) {
	var herr error
	if s.runs != nil {
		if herr = s.runs.Append(ctx, rec); herr != nil {
			s.logger.Warn("append run failed", "run", rec.RunID, "error", herr)
		}
	}
	st, err := s.apply(ctx, "credit_run", s.state.WithOrbs(rec.Orbs).WithPlaytime(rec.DurationSecs))
	if err == nil {
		err = herr
	}
	return st, err
}

// RunStats aggregates the run history for kind. It returns zero stats when
// no history is configured.
func (s *Store) RunStats(ctx context.Context, kind string) (store.RunStats, error) {
	if s.runs == nil {
		return store.RunStats{}, nil
	}
	return s.runs.Stats(ctx, kind)
}

// RecentRuns returns up to n runs of kind, newest first.
func (s *Store) RecentRuns(ctx context.Context, kind string, n int) ([]store.RunRecord, error) {
	if s.runs == nil {
		return nil, nil
	}
	return s.runs.Recent(ctx, kind, n)
}

// Reset wipes run history and progression, keeping onboarding completed.
func (s *Store) Reset(ctx context.Context) (State, error) {
	var herr error
	if s.runs != nil {
		if herr = s.runs.Clear(ctx); herr != nil {
			s.logger.Warn("clear run history failed", "error", herr)
		}
	}
	st, err := s.apply(ctx, "reset", s.state.Reset())
	if err == nil {
		err = herr
	}
	return st, err
}

func (s *Store) apply(ctx context.Context, op string, next State) (State, error) {
	s.state = next
	err := Save(ctx, s.kv, next)
	if err != nil {
		s.logger.Error("progress save failed", "op", op, "error", err)
		err = fmt.Errorf("%s: %w", op, err)
	} else {
		s.logger.Debug("progress saved", "op", op,
			"orbs", next.EnergyOrbs,
			"level", next.CurrentLevel,
			"lessons", next.TotalLessonsCompleted)
	}

	for _, sub := range slices.Clone(s.subs) {
		sub.fn(next.Clone())
	}
	return next.Clone(), err
}
