package progress

import (
	"fmt"
	"maps"
	"slices"
)

// LessonsPerLevel is the number of completed lessons needed per level.
const LessonsPerLevel = 5

// State is the player's progression snapshot. Transition methods return a
// new State and never mutate the receiver.
type State struct {
	EnergyOrbs             int
	CurrentLevel           int
	TotalLessonsCompleted  int
	TotalPlaytime          float64 // seconds
	CompletedModules       map[string]bool
	HasCompletedOnboarding bool
}

// Default returns the state of a fresh install.
func Default() State {
	return State{
		CurrentLevel:     1,
		CompletedModules: map[string]bool{},
	}
}

// Clone returns a deep copy.
func (s State) Clone() State {
	c := s
	c.CompletedModules = maps.Clone(s.CompletedModules)
	if c.CompletedModules == nil {
		c.CompletedModules = map[string]bool{}
	}
	return c
}

// WithLessonCompleted grants one orb and one lesson, levelling up on every
// fifth lesson.
func (s State) WithLessonCompleted() State {
	n := s.Clone()
	n.EnergyOrbs++
	n.TotalLessonsCompleted++
	if n.TotalLessonsCompleted%LessonsPerLevel == 0 {
		n.CurrentLevel++
	}
	return n
}

// WithModuleCompleted marks moduleID done and completes one lesson. Replaying
// a module re-grants the lesson reward.
func (s State) WithModuleCompleted(moduleID string) State {
	n := s.WithLessonCompleted()
	n.CompletedModules[moduleID] = true
	return n
}

// WithOrbs adds n orbs. Negative amounts are ignored.
func (s State) WithOrbs(n int) State {
	c := s.Clone()
	if n > 0 {
		c.EnergyOrbs += n
	}
	return c
}

// WithPlaytime adds seconds of play. Negative amounts are ignored.
func (s State) WithPlaytime(seconds float64) State {
	c := s.Clone()
	if seconds > 0 {
		c.TotalPlaytime += seconds
	}
	return c
}

// WithOnboardingCompleted sets the onboarding flag.
func (s State) WithOnboardingCompleted() State {
	c := s.Clone()
	c.HasCompletedOnboarding = true
	return c
}

// Reset zeroes every counter and clears completed modules. The onboarding
// flag is forced on so a reset never replays onboarding.
func (s State) Reset() State {
	n := Default()
	n.HasCompletedOnboarding = true
	return n
}

// LevelProgress is the fraction of the current level completed, in [0, 1).
func (s State) LevelProgress() float64 {
	return float64(s.TotalLessonsCompleted%LessonsPerLevel) / LessonsPerLevel
}

// ModuleCompleted reports whether moduleID has been completed at least once.
func (s State) ModuleCompleted(moduleID string) bool {
	return s.CompletedModules[moduleID]
}

// ModuleIDs returns the completed module ids sorted.
func (s State) ModuleIDs() []string {
	return slices.Sorted(maps.Keys(s.CompletedModules))
}

// FormattedPlaytime renders the playtime as "2h 5m" or "42m".
func (s State) FormattedPlaytime() string {
	total := int(s.TotalPlaytime)
	hours := total / 3600
	minutes := (total % 3600) / 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, minutes)
	}
	return fmt.Sprintf("%dm", minutes)
}
