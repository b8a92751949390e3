package game

import (
	"errors"
	"testing"

	"github.com/koisland/sapsim/internal/log"
)

// TestCascadeLimitAborts: two pets that counter every hit bounce damage
// back and forth until the per-phase ceiling trips.
func TestCascadeLimitAborts(t *testing.T) {
	spiker := &PetDef{
		Name: "Spiker", Tier: 1, Pack: "Test", BaseStats: Stats{Attack: 1, Health: 30},
		EffectsForLevel: func(l int) []Effect {
			return []Effect{{
				Trigger:  log.EventHurt,
				Scope:    ScopeSelf,
				Selector: Selector{Kind: SelectRandomEnemies, N: 1},
				Action:   Action{Kind: ActionDamage, Amount: 1},
			}}
		},
	}
	a := makeTeam(t, "a", 1, NewPet(spiker, 1))
	b := makeTeam(t, "b", 2, NewPet(spiker, 1))

	cfg := DefaultGameConfig()
	cfg.CascadeLimit = 10
	logger := log.NewMemoryLogger()
	battle, err := NewBattle(a, b, DefaultRegistry(), logger, cfg)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	_, err = battle.Run()
	if !errors.Is(err, ErrCascadeLimit) {
		t.Fatalf("want ErrCascadeLimit, got %v", err)
	}
	if len(logger.Events()) == 0 {
		t.Error("partial event log should survive the abort")
	}
	if !battle.Over() {
		t.Error("aborted battle must be terminal")
	}
}

// TestFaintFiresOnce: each pet faints exactly one time no matter how many
// sources push it to zero.
func TestFaintFiresOnce(t *testing.T) {
	reg := DefaultRegistry()
	ant1, _ := reg.Pet("Ant", 1)
	ant2, _ := reg.Pet("Ant", 1)
	a := makeTeam(t, "a", 1, ant1)
	b := makeTeam(t, "b", 2, ant2)

	battle, logger := runBattle(t, a, b, reg, DefaultGameConfig())

	faints := logger.EventsOfType(log.EventFaint)
	if len(faints) != 2 {
		t.Errorf("got %d faint events, want 2", len(faints))
	}
	if battle.Turn != 1 {
		t.Errorf("mutual kill should resolve in 1 turn, got %d", battle.Turn)
	}
	if battle.Outcome != OutcomeDraw {
		t.Errorf("outcome %s, want draw", battle.Outcome)
	}
}

// TestTemporaryItemExpiresAtPhaseEnd: an item granted mid-cascade whose
// effect is phase-scoped disappears when that phase ends.
func TestTemporaryItemExpiresAtPhaseEnd(t *testing.T) {
	reg := DefaultRegistry()
	reg.RegisterFood(&FoodDef{
		Name: "Adrenaline", Tier: 1, Holdable: true,
		Effect: func() Effect {
			return Effect{
				Trigger:   log.EventBeforeAttack,
				Scope:     ScopeSelf,
				Selector:  Selector{Kind: SelectSelf},
				Action:    Action{Kind: ActionAddStats, Stats: Stats{Attack: 5}},
				Temporary: true,
			}
		},
	})

	a := makeTeam(t, "a", 1, vanillaPet("Runner", 2, 5))
	b := makeTeam(t, "b", 2, vanillaPet("Wall", 0, 5))
	e := NewEngine(a, b, reg, log.NewMemoryLogger(), DefaultGameConfig())
	e.setPhase(1, PhaseAttack)

	holder := a.At(0)
	grant := Effect{
		Trigger:  log.EventHurt,
		Selector: Selector{Kind: SelectSelf},
		Action:   Action{Kind: ActionGainItem, ItemName: "Adrenaline"},
	}
	e.runEffect(0, holder, &grant, Event{Kind: log.EventHurt, Side: 0, Target: holder.Ref(0)})

	if holder.Item == nil || holder.Item.Def.Name != "Adrenaline" {
		t.Fatalf("item not attached: %v", holder.Item)
	}
	a.pruneEffects(PhaseTurnStart)
	if holder.Item == nil {
		t.Fatal("item expired at the wrong phase boundary")
	}
	a.pruneEffects(PhaseAttack)
	if holder.Item != nil {
		t.Error("phase-scoped item survived its phase")
	}
}

// TestSelectorDeterminism: random target picks replay identically under
// the same team seed.
func TestSelectorDeterminism(t *testing.T) {
	pick := func() string {
		a := makeTeam(t, "a", 7,
			vanillaPet("P0", 1, 1), vanillaPet("P1", 1, 1),
			vanillaPet("P2", 1, 1), vanillaPet("P3", 1, 1))
		b := makeTeam(t, "b", 8, vanillaPet("E", 1, 1))
		e := NewEngine(a, b, DefaultRegistry(), log.NewMemoryLogger(), DefaultGameConfig())
		owner := a.At(0)
		targets := e.resolveTargets(0, owner, Selector{Kind: SelectRandomFriends, N: 1}, Event{})
		if len(targets) != 1 {
			t.Fatalf("got %d targets, want 1", len(targets))
		}
		return targets[0].pet.Name()
	}
	first := pick()
	for i := 0; i < 3; i++ {
		if got := pick(); got != first {
			t.Fatalf("pick %d gave %s, want %s", i, got, first)
		}
	}
}

// TestExtremeSelectorsBreakTiesFrontmost.
func TestExtremeSelectorsBreakTiesFrontmost(t *testing.T) {
	a := makeTeam(t, "a", 1, vanillaPet("Owner", 1, 1))
	b := makeTeam(t, "b", 2,
		vanillaPet("Front", 2, 3), vanillaPet("Mid", 5, 3), vanillaPet("Back", 5, 9))
	e := NewEngine(a, b, DefaultRegistry(), log.NewMemoryLogger(), DefaultGameConfig())
	owner := a.At(0)

	low := e.resolveTargets(0, owner, Selector{Kind: SelectLowestHealthEnemy}, Event{})
	if len(low) != 1 || low[0].pet.Name() != "Front" {
		t.Errorf("lowest health: got %v", low)
	}
	high := e.resolveTargets(0, owner, Selector{Kind: SelectHighestAttackEnemy}, Event{})
	if len(high) != 1 || high[0].pet.Name() != "Mid" {
		t.Errorf("highest attack tie: got %v", high)
	}
}

// TestEmptySelectorIsNoOp: resolving against nobody executes nothing and
// fails nothing.
func TestEmptySelectorIsNoOp(t *testing.T) {
	a := makeTeam(t, "a", 1, vanillaPet("Alone", 1, 1))
	b := makeTeam(t, "b", 2, vanillaPet("E", 1, 1))
	e := NewEngine(a, b, DefaultRegistry(), log.NewMemoryLogger(), DefaultGameConfig())
	owner := a.At(0)

	targets := e.resolveTargets(0, owner, Selector{Kind: SelectRandomFriends, N: 2}, Event{})
	if len(targets) != 0 {
		t.Errorf("lone pet has no friends, got %v", targets)
	}
	targets = e.resolveTargets(0, owner, Selector{Kind: SelectAhead}, Event{})
	if len(targets) != 0 {
		t.Errorf("nobody ahead of the front, got %v", targets)
	}
}
