package game

import (
	"testing"

	"github.com/koisland/sapsim/internal/log"
)

// vanillaPet builds a one-off effectless definition for battle filler.
func vanillaPet(name string, attack, health int) *Pet {
	def := &PetDef{
		Name:      name,
		Tier:      1,
		Pack:      "Test",
		BaseStats: Stats{Attack: attack, Health: health},
	}
	return NewPet(def, 1)
}

// makeTeam builds a seeded roster or fails the test.
func makeTeam(t *testing.T, name string, seed int64, pets ...*Pet) *Team {
	t.Helper()
	team, err := NewTeam(name, pets, TeamCapacity)
	if err != nil {
		t.Fatalf("NewTeam(%s): %v", name, err)
	}
	return team.SetSeed(seed)
}

// runBattle plays a battle to completion and dumps the event log.
func runBattle(t *testing.T, a, b *Team, provider Provider, cfg GameConfig) (*Battle, *log.MemoryLogger) {
	t.Helper()
	logger := log.NewMemoryLogger()
	battle, err := NewBattle(a, b, provider, logger, cfg)
	if err != nil {
		t.Fatalf("NewBattle: %v", err)
	}
	if _, err := battle.Run(); err != nil {
		t.Fatalf("battle.Run: %v", err)
	}
	t.Logf("battle log:\n%s", log.FormatAll(logger.Events()))
	return battle, logger
}

// eventWithPet reports whether any event of the given type names the pet.
func eventWithPet(logger *log.MemoryLogger, typ log.EventType, pet string) bool {
	for _, e := range logger.EventsOfType(typ) {
		if e.Pet == pet {
			return true
		}
	}
	return false
}
