package engine

import "github.com/vovakirdan/neon-arcade/internal/core"

// Phase is a state of the session state machine.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns the phase name used in logs.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Transition describes a phase change caused by an input.
type Transition struct {
	From, To Phase
	Reset    bool // the session was (re)started
}

// Handle applies one input action to the state machine:
//
//	START     --start--> PLAYING (reset)
//	PLAYING   --pause--> PAUSED
//	PAUSED    --pause--> PLAYING
//	GAME_OVER --start--> PLAYING (reset)
//
// Every other combination is a no-op and returns ok == false.
func (s *Session) Handle(a core.Action) (t Transition, ok bool) {
	from := s.Phase
	switch {
	case a == core.ActionStart && (from == PhaseStart || from == PhaseGameOver):
		s.Start()
		return Transition{From: from, To: s.Phase, Reset: true}, true
	case a == core.ActionPause && from == PhasePlaying:
		s.Phase = PhasePaused
	case a == core.ActionPause && from == PhasePaused:
		s.Phase = PhasePlaying
	default:
		return Transition{From: from, To: from}, false
	}
	return Transition{From: from, To: s.Phase}, true
}

// End moves a playing session to game over. It returns false if the session
// was not playing, so the transition happens at most once.
func (s *Session) End() bool {
	if s.Phase != PhasePlaying {
		return false
	}
	s.Phase = PhaseGameOver
	return true
}

// Running reports whether world simulation runs this tick.
func (s *Session) Running() bool {
	return s.Phase == PhasePlaying
}
