package engine

// Defaults are the values a session starts from on every start/restart.
type Defaults struct {
	BaseSpeed     float64
	SpawnInterval int // ticks between spawns
}

// Session is the state of one playthrough. BestScore survives restarts;
// everything else is reset by Start.
type Session struct {
	Score         int
	BestScore     int
	Level         int
	SpawnInterval int
	BaseSpeed     float64
	Tick          int
	Phase         Phase

	defaults Defaults
}

// NewSession creates a session waiting in the start phase.
func NewSession(d Defaults, best int) *Session {
	s := &Session{BestScore: max(0, best), defaults: d}
	s.reset()
	s.Phase = PhaseStart
	return s
}

// Start resets the per-playthrough fields and enters the playing phase.
func (s *Session) Start() {
	s.reset()
	s.Phase = PhasePlaying
}

func (s *Session) reset() {
	s.Score = 0
	s.Level = 1
	s.Tick = 0
	s.BaseSpeed = s.defaults.BaseSpeed
	s.SpawnInterval = max(1, s.defaults.SpawnInterval)
}
