package game

import "math"

// Outcome is the terminal result of a session.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeWin
	OutcomeLose
)

// String returns the end-of-game banner text.
func (o Outcome) String() string {
	switch o {
	case OutcomeWin:
		return "You Win!"
	case OutcomeLose:
		return "You Lose!"
	default:
		return ""
	}
}

// State holds the counters the outcome is derived from.
type State struct {
	Countdown float64
	Ammo      int
	Destroyed int
	Outcome   Outcome
}

// Over reports whether the session reached a terminal outcome.
func (s *State) Over() bool {
	return s.Outcome != OutcomeNone
}

// CountdownDisplay is the countdown as shown on screen.
func (s *State) CountdownDisplay() int {
	return int(math.Floor(s.Countdown))
}

// tickCountdown lowers the countdown by rate*seconds, never below zero.
func (s *State) tickCountdown(seconds, rate float64) {
	if s.Over() || s.Countdown <= 0 {
		return
	}
	s.Countdown = math.Max(0, s.Countdown-rate*seconds)
}

// evaluate derives the outcome once. Win is checked first; the outcome is
// absorbing. Returns the outcome only on the tick it was reached.
func (s *State) evaluate(target int) Outcome {
	if s.Over() {
		return OutcomeNone
	}

	switch {
	case s.Ammo >= 0 && s.Destroyed == target:
		s.Outcome = OutcomeWin
	case (s.Ammo == 0 && s.Destroyed != target) || s.Countdown < 1:
		s.Outcome = OutcomeLose
	default:
		return OutcomeNone
	}
	return s.Outcome
}
