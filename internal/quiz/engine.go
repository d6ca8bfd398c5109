package quiz

import (
	"context"
	"errors"

	"github.com/abhisek/mindarena/internal/progress"
)

// Phase is the state of the current task.
type Phase int

const (
	PhaseUnanswered Phase = iota
	PhaseSelected
	PhaseRevealed
	PhaseFinished
)

func (p Phase) String() string {
	switch p {
	case PhaseUnanswered:
		return "unanswered"
	case PhaseSelected:
		return "selected"
	case PhaseRevealed:
		return "revealed"
	case PhaseFinished:
		return "finished"
	default:
		return "unknown"
	}
}

var (
	ErrNoSelection      = errors.New("quiz: no option selected")
	ErrOptionOutOfRange = errors.New("quiz: option out of range")
	ErrAlreadyRevealed  = errors.New("quiz: task already revealed")
	ErrNotRevealed      = errors.New("quiz: task not revealed yet")
	ErrFinished         = errors.New("quiz: module finished")
)

// Completer records a finished module. *progress.Store satisfies it.
type Completer interface {
	CompleteModule(ctx context.Context, moduleID string) (progress.State, error)
}

// Outcome reports what Advance did.
type Outcome struct {
	// Finished is true once the run is over.
	Finished bool
	// Credited is true when this call completed the module.
	Credited bool
	// State is the progression after crediting; zero unless Credited.
	State progress.State
}

// Engine runs one traversal of a module.
type Engine struct {
	module    Module
	completer Completer

	index    int
	selected int
	phase    Phase
	correct  bool
}

// NewEngine starts a traversal of m at the first task.
func NewEngine(m Module, c Completer) *Engine {
	return &Engine{module: m, completer: c, selected: -1}
}

// Resume moves to task index, clamping out-of-range values to 0. It
// discards any selection on the current task.
func (e *Engine) Resume(index int) {
	if index < 0 || index >= len(e.module.Tasks) {
		index = 0
	}
	e.index = index
	e.resetTask()
}

// Module returns the module being played.
func (e *Engine) Module() Module { return e.module }

// Placeholder reports whether the module has no tasks.
func (e *Engine) Placeholder() bool { return len(e.module.Tasks) == 0 }

// Task returns the current task, or a placeholder for an empty module.
func (e *Engine) Task() Task {
	if e.index < 0 || e.index >= len(e.module.Tasks) {
		return placeholderTask
	}
	return e.module.Tasks[e.index]
}

// Index is the zero-based position of the current task.
func (e *Engine) Index() int { return e.index }

// Total is the number of real tasks in the module.
func (e *Engine) Total() int { return len(e.module.Tasks) }

// Progress is the fraction of tasks already passed.
func (e *Engine) Progress() float64 {
	if len(e.module.Tasks) == 0 {
		return 0
	}
	if e.phase == PhaseFinished {
		return 1
	}
	return float64(e.index) / float64(len(e.module.Tasks))
}

// Phase returns the current task phase.
func (e *Engine) Phase() Phase { return e.phase }

// Selected returns the selected option, or -1.
func (e *Engine) Selected() int { return e.selected }

// Correct reports whether the revealed answer was right.
func (e *Engine) Correct() bool { return e.phase == PhaseRevealed && e.correct }

// LastTask reports whether the current task is the final one.
func (e *Engine) LastTask() bool { return e.index >= len(e.module.Tasks)-1 }

// Select chooses option i. Choosing again before Check replaces the
// previous choice.
func (e *Engine) Select(i int) error {
	switch e.phase {
	case PhaseFinished:
		return ErrFinished
	case PhaseRevealed:
		return ErrAlreadyRevealed
	}
	if i < 0 || i >= len(e.Task().Options) {
		return ErrOptionOutOfRange
	}
	e.selected = i
	e.phase = PhaseSelected
	return nil
}

// Check reveals the current task and reports whether the selection was
// correct. A task is checked at most once.
func (e *Engine) Check() (bool, error) {
	switch e.phase {
	case PhaseFinished:
		return false, ErrFinished
	case PhaseRevealed:
		return false, ErrAlreadyRevealed
	case PhaseUnanswered:
		return false, ErrNoSelection
	}
	e.correct = e.selected == e.Task().CorrectIndex
	e.phase = PhaseRevealed
	return e.correct, nil
}

// Advance moves past a revealed task. Past the last task the module is
// completed through the Completer, once per traversal. A module without
// tasks finishes on the first Advance without crediting.
func (e *Engine) Advance(ctx context.Context) (Outcome, error) {
	if e.phase == PhaseFinished {
		return Outcome{Finished: true}, ErrFinished
	}
	if e.Placeholder() {
		e.phase = PhaseFinished
		return Outcome{Finished: true}, nil
	}
	if e.phase != PhaseRevealed {
		return Outcome{}, ErrNotRevealed
	}

	if e.index < len(e.module.Tasks)-1 {
		e.index++
		e.resetTask()
		return Outcome{}, nil
	}

	e.phase = PhaseFinished
	out := Outcome{Finished: true, Credited: true}
	if e.completer == nil {
		return out, nil
	}
	st, err := e.completer.CompleteModule(ctx, e.module.ID)
	out.State = st
	return out, err
}

func (e *Engine) resetTask() {
	e.selected = -1
	e.correct = false
	e.phase = PhaseUnanswered
}
