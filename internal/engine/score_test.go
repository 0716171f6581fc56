package engine

import "testing"

func runnerScorer() *Scorer {
	return &Scorer{
		Escalation: Escalation{Every: 5, Step: Step{SpeedIncrement: 18, IntervalDecrement: 8, MinInterval: 80}},
	}
}

func passedObstacle() *Entity {
	return &Entity{Kind: KindObstacle, Pos: Vec{X: 50, Y: 300}, Size: Vec{X: 30, Y: 40}}
}

func TestOnEntityPassedIsIdempotent(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 6, SpawnInterval: 140}, 0)
	s.Start()
	sc := runnerScorer()
	ob := passedObstacle()

	if !sc.OnEntityPassed(s, ob, 120) {
		t.Fatal("obstacle behind the player should score")
	}
	for i := 0; i < 10; i++ {
		if sc.OnEntityPassed(s, ob, 120) {
			t.Fatal("counted obstacle scored again")
		}
	}
	if s.Score != 1 || !ob.Counted {
		t.Errorf("score = %d counted = %v, expected 1 and true", s.Score, ob.Counted)
	}
}

func TestOnEntityPassedNeedsTrailingEdgeBehindPlayer(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 6, SpawnInterval: 140}, 0)
	s.Start()
	ob := passedObstacle() // right edge at 80

	if runnerScorer().OnEntityPassed(s, ob, 80) {
		t.Error("obstacle level with the player has not passed yet")
	}
	if ob.Counted || s.Score != 0 {
		t.Error("unpassed obstacle should not be counted")
	}
}

func TestEscalationScenario(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 6, SpawnInterval: 140}, 0)
	s.Start()
	sc := runnerScorer()

	if s.Score != 0 || s.BaseSpeed != 6 || s.SpawnInterval != 140 {
		t.Fatalf("fresh session = %+v", s)
	}
	for i := 0; i < 5; i++ {
		sc.OnEntityPassed(s, passedObstacle(), 120)
	}
	if s.BaseSpeed != 24 || s.SpawnInterval != 132 {
		t.Errorf("after 5 points speed=%v interval=%d, expected 24 and 132", s.BaseSpeed, s.SpawnInterval)
	}
}

func TestEscalationMonotonicAndFloored(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 6, SpawnInterval: 140}, 0)
	s.Start()
	sc := runnerScorer()

	prevSpeed, prevInterval := s.BaseSpeed, s.SpawnInterval
	for i := 0; i < 500; i++ {
		sc.OnTargetDestroyed(s, nil)
		if s.BaseSpeed < prevSpeed || s.SpawnInterval > prevInterval {
			t.Fatalf("difficulty went backwards at score %d", s.Score)
		}
		if s.SpawnInterval < 80 {
			t.Fatalf("interval %d below floor at score %d", s.SpawnInterval, s.Score)
		}
		prevSpeed, prevInterval = s.BaseSpeed, s.SpawnInterval
	}
	if s.SpawnInterval != 80 {
		t.Errorf("interval after 500 points = %d, expected floor 80", s.SpawnInterval)
	}
}

func TestStepFloorNeverZero(t *testing.T) {
	s := &Session{SpawnInterval: 3}
	Step{IntervalDecrement: 10, MinInterval: 0}.Apply(s)
	if s.SpawnInterval != 1 {
		t.Errorf("interval = %d, expected clamp to 1", s.SpawnInterval)
	}
}

func TestOnTargetDestroyedCountsOnce(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 3, SpawnInterval: 75}, 0)
	s.Start()
	sc := &Scorer{}
	enemy := &Entity{Kind: KindEnemy, Size: Vec{X: 1, Y: 1}}

	sc.OnTargetDestroyed(s, enemy)
	sc.OnTargetDestroyed(s, enemy)
	if s.Score != 1 {
		t.Errorf("score = %d, expected 1", s.Score)
	}
}

func TestOnBossDefeatedLevelsUp(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 3, SpawnInterval: 75}, 0)
	s.Start()
	sc := &Scorer{LevelUp: Step{SpeedIncrement: 1, IntervalDecrement: 9, MinInterval: 25}}

	sc.OnBossDefeated(s)
	if s.Level != 2 || s.BaseSpeed != 4 || s.SpawnInterval != 66 {
		t.Errorf("after level up = level %d speed %v interval %d", s.Level, s.BaseSpeed, s.SpawnInterval)
	}
	for i := 0; i < 20; i++ {
		sc.OnBossDefeated(s)
	}
	if s.SpawnInterval != 25 {
		t.Errorf("interval = %d, expected floor 25", s.SpawnInterval)
	}
}

func TestFinalizeBest(t *testing.T) {
	s := NewSession(Defaults{BaseSpeed: 6, SpawnInterval: 140}, 7)
	s.Start()

	s.Score = 5
	if FinalizeBest(s) || s.BestScore != 7 {
		t.Errorf("lower score must not replace best, best=%d", s.BestScore)
	}
	s.Score = 7
	if FinalizeBest(s) {
		t.Error("equal score is not an improvement")
	}
	s.Score = 9
	if !FinalizeBest(s) || s.BestScore != 9 {
		t.Errorf("higher score should become best, best=%d", s.BestScore)
	}
}
