// Package timer provides the cancellable scheduled-callback primitive shared
// by every engine that sequences work over time.
//
// A Set does not sleep or spawn goroutines. It hands out Timer descriptors
// that the host loop arms (see screen.TimerCmd) and later hands back by
// Token. The owner of the Set decides whether a fired token is still live,
// so stopping a timer is just forgetting its token: a late delivery is
// dropped instead of mutating state whose owner has gone away.
package timer

import (
	"sync/atomic"
	"time"
)

// Token identifies one scheduled timer. Tokens are unique process-wide so a
// stale delivery can never be mistaken for a timer of a newer Set.
type Token uint64

var lastToken atomic.Uint64

func nextToken() Token {
	return Token(lastToken.Add(1))
}

// Timer describes a delay armed on the host loop.
type Timer struct {
	Token    Token
	Tag      string
	Interval time.Duration
	Repeat   bool
}

// Set tracks the live timers owned by one component.
// The zero value is ready to use.
type Set struct {
	live map[Token]Timer
}

// After schedules a one-shot timer.
func (s *Set) After(tag string, d time.Duration) Timer {
	return s.add(Timer{Token: nextToken(), Tag: tag, Interval: d})
}

// Every schedules a repeating timer. It stays live across firings until
// stopped.
func (s *Set) Every(tag string, d time.Duration) Timer {
	return s.add(Timer{Token: nextToken(), Tag: tag, Interval: d, Repeat: true})
}

func (s *Set) add(t Timer) Timer {
	if s.live == nil {
		s.live = make(map[Token]Timer)
	}
	s.live[t.Token] = t
	return t
}

// Fire reports whether tok belongs to a live timer and returns it.
// One-shot timers are consumed; repeating timers remain live.
func (s *Set) Fire(tok Token) (Timer, bool) {
	t, ok := s.live[tok]
	if !ok {
		return Timer{}, false
	}
	if !t.Repeat {
		delete(s.live, tok)
	}
	return t, true
}

// Stop cancels every live timer carrying tag and returns how many were
// cancelled.
func (s *Set) Stop(tag string) int {
	n := 0
	for tok, t := range s.live {
		if t.Tag == tag {
			delete(s.live, tok)
			n++
		}
	}
	return n
}

// StopAll cancels every live timer and returns how many were cancelled.
func (s *Set) StopAll() int {
	n := len(s.live)
	clear(s.live)
	return n
}

// Live reports whether a timer with tag is still scheduled.
func (s *Set) Live(tag string) bool {
	for _, t := range s.live {
		if t.Tag == tag {
			return true
		}
	}
	return false
}

// Len returns the number of live timers.
func (s *Set) Len() int {
	return len(s.live)
}
