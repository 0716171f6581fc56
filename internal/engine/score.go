package engine

// Step is one difficulty increase: more speed, shorter spawn interval,
// floored at MinInterval.
type Step struct {
	SpeedIncrement    float64 `yaml:"speed_increment"`
	IntervalDecrement int     `yaml:"interval_decrement"`
	MinInterval       int     `yaml:"min_interval"`
}

// Apply raises the session difficulty by one step.
func (st Step) Apply(s *Session) {
	s.BaseSpeed += st.SpeedIncrement
	floor := max(1, st.MinInterval)
	s.SpawnInterval = max(floor, s.SpawnInterval-max(0, st.IntervalDecrement))
}

// Escalation applies a Step every Every score points. Every == 0 disables it.
type Escalation struct {
	Every int  `yaml:"every"`
	Step  Step `yaml:",inline"`
}

// Scorer is the score and difficulty controller.
type Scorer struct {
	Escalation Escalation
	LevelUp    Step
}

// OnEntityPassed scores a hazard once its trailing edge is behind the
// player's leading edge. Each entity scores at most once.
func (sc *Scorer) OnEntityPassed(s *Session, e *Entity, playerLeading float64) bool {
	if e.Counted || !e.Kind.Hazard() {
		return false
	}
	if e.Box().Right >= playerLeading {
		return false
	}
	e.Counted = true
	sc.add(s)
	return true
}

// OnTargetDestroyed scores a kill. The target is marked counted so a second
// report for the same entity is ignored.
func (sc *Scorer) OnTargetDestroyed(s *Session, e *Entity) bool {
	if e != nil {
		if e.Counted {
			return false
		}
		e.Counted = true
	}
	sc.add(s)
	return true
}

// OnBossDefeated advances the level and applies the level-up step.
func (sc *Scorer) OnBossDefeated(s *Session) {
	s.Level++
	sc.LevelUp.Apply(s)
}

func (sc *Scorer) add(s *Session) {
	s.Score++
	if every := sc.Escalation.Every; every > 0 && s.Score%every == 0 {
		sc.Escalation.Step.Apply(s)
	}
}

// FinalizeBest folds the session score into the best score. It reports
// whether the best score improved.
func FinalizeBest(s *Session) bool {
	if s.Score <= s.BestScore {
		return false
	}
	s.BestScore = s.Score
	return true
}
