package game

import "testing"

func TestStatsClamping(t *testing.T) {
	s := Stats{Attack: 48, Health: 3}

	s.Add(Stats{Attack: 10, Health: 1}, MaxStat)
	if s.Attack != 50 || s.Health != 4 {
		t.Errorf("after Add: got %s, want 50/4", s)
	}

	s.Sub(Stats{Attack: 1, Health: 10}, MaxStat)
	if s.Attack != 49 || s.Health != 0 {
		t.Errorf("after Sub: got %s, want 49/0", s)
	}

	s.Set(Stats{Attack: -5, Health: 99}, MaxStat)
	if s.Attack != 0 || s.Health != 50 {
		t.Errorf("after Set: got %s, want 0/50", s)
	}
}

func TestStatsSwap(t *testing.T) {
	a := Stats{Attack: 1, Health: 2}
	b := Stats{Attack: 3, Health: 4}
	a.Swap(&b)
	if a != (Stats{Attack: 3, Health: 4}) || b != (Stats{Attack: 1, Health: 2}) {
		t.Errorf("swap gave %s and %s", a, b)
	}
}

func TestStatsCustomCeiling(t *testing.T) {
	s := Stats{Attack: 5, Health: 5}
	s.Add(Stats{Attack: 100, Health: 100}, 10)
	if s.Attack != 10 || s.Health != 10 {
		t.Errorf("got %s, want 10/10", s)
	}
}
