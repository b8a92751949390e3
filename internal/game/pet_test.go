package game

import (
	"errors"
	"testing"
)

func TestLevelThresholds(t *testing.T) {
	cases := []struct {
		exp   int
		level int
	}{
		{0, 1}, {1, 1}, {2, 2}, {3, 2}, {4, 2}, {5, 3},
	}
	for _, c := range cases {
		if got := levelForExp(c.exp); got != c.level {
			t.Errorf("levelForExp(%d) = %d, want %d", c.exp, got, c.level)
		}
	}
}

func TestGainExpLevelsUpAndRebuildsEffects(t *testing.T) {
	reg := DefaultRegistry()
	ant, err := reg.Pet("Ant", 1)
	if err != nil {
		t.Fatalf("Pet(Ant): %v", err)
	}

	// Two points reach level 2; the faint effect now grants doubled stats.
	leveled := ant.GainExp(2, Stats{Attack: 1, Health: 1}, MaxStat)
	if !leveled {
		t.Fatal("expected level-up at 2 exp")
	}
	if ant.Level != 2 || ant.Exp != 2 {
		t.Fatalf("got level %d exp %d, want 2/2", ant.Level, ant.Exp)
	}
	if ant.Stats != (Stats{Attack: 4, Health: 3}) {
		t.Errorf("merge bonus not applied: got %s, want 4/3", ant.Stats)
	}
	if len(ant.Effects) != 1 || ant.Effects[0].Action.Stats.Attack != 4 {
		t.Errorf("faint effect not rebuilt for level 2: %+v", ant.Effects)
	}
}

func TestGainExpCapsAtMax(t *testing.T) {
	reg := DefaultRegistry()
	ant, _ := reg.Pet("Ant", 3)
	if ant.Exp != MaxExp {
		t.Fatalf("level 3 pet should start at max exp, got %d", ant.Exp)
	}
	before := ant.Stats
	if ant.GainExp(3, Stats{Attack: 1, Health: 1}, MaxStat) {
		t.Error("no level-up possible past max")
	}
	if ant.Stats != before {
		t.Errorf("stats changed past max exp: %s -> %s", before, ant.Stats)
	}
}

func TestCanMergeWith(t *testing.T) {
	reg := DefaultRegistry()
	a, _ := reg.Pet("Ant", 1)
	b, _ := reg.Pet("Ant", 1)
	pig, _ := reg.Pet("Pig", 1)
	maxed, _ := reg.Pet("Ant", 3)

	if !a.CanMergeWith(b) {
		t.Error("same-name pets below max exp should merge")
	}
	if a.CanMergeWith(pig) {
		t.Error("different pets must not merge")
	}
	if maxed.CanMergeWith(b) {
		t.Error("maxed pet must not absorb more")
	}
}

func TestRegistryUnknownEntity(t *testing.T) {
	reg := DefaultRegistry()
	if _, err := reg.Pet("Gryphon", 1); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("want ErrUnknownEntity, got %v", err)
	}
	if _, err := reg.Food("Ambrosia"); !errors.Is(err, ErrUnknownEntity) {
		t.Errorf("want ErrUnknownEntity, got %v", err)
	}
}

func TestTierPoolsExcludeTokens(t *testing.T) {
	reg := DefaultRegistry()
	for _, name := range reg.PetNamesForTier(MaxShopTier) {
		def, err := reg.PetDef(name)
		if err != nil {
			t.Fatalf("PetDef(%s): %v", name, err)
		}
		if def.Token {
			t.Errorf("token %s leaked into shop pool", name)
		}
	}
	tier1 := reg.PetNamesForTier(1)
	for _, name := range tier1 {
		def, _ := reg.PetDef(name)
		if def.Tier > 1 {
			t.Errorf("tier %d pet %s in tier 1 pool", def.Tier, name)
		}
	}
}
