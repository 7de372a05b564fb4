package rotation

import "time"

// State tracks which flag is on screen and when it got there.
type State struct {
	Index        int
	Start        time.Time
	DelaySeconds int
	Count        int
}

// New returns a state showing the first of count flags, rotating once more
// than delaySeconds whole seconds have passed.
func New(count, delaySeconds int, now time.Time) *State {
	return &State{Count: count, DelaySeconds: delaySeconds, Start: now}
}

// Tick reports the action the timer asks for at now. Elapsed time is counted
// in whole seconds, so a delay of 5 advances at 6s and a delay of 0 at 1s.
// It never mutates the state; the caller applies the result once the frame
// is drawn.
func (s *State) Tick(now time.Time) Action {
	if s.Count == 0 {
		return Do(None)
	}
	if int(now.Sub(s.Start)/time.Second) > s.DelaySeconds {
		return Do(Advance)
	}
	return Do(None)
}

// Apply performs a rotation action and reports whether the state changed.
// Jumps past the configured flags are ignored. Non-rotation actions are
// left to the caller.
func (s *State) Apply(a Action, now time.Time) bool {
	switch a.Kind {
	case Advance:
		if s.Count == 0 {
			return false
		}
		s.Index = (s.Index + 1) % s.Count
		s.Start = now
		return true
	case JumpTo:
		if a.Index < 0 || a.Index >= s.Count {
			return false
		}
		s.Index = a.Index
		s.Start = now
		return true
	default:
		return false
	}
}
