package game

import "fmt"

// Experience thresholds: 0-1 exp = level 1, 2-4 = level 2, 5 = level 3.
const (
	MaxLevel  = 3
	MaxExp    = 5
	lvl2AtExp = 2
	lvl3AtExp = 5
)

// PetDef is the immutable template for a pet, supplied by a Provider.
type PetDef struct {
	Name      string
	Tier      int
	Pack      string
	BaseStats Stats
	Cost      int

	// Token pets (summons like Bee or Ram) never appear in shop pools.
	Token bool

	// EffectsForLevel builds the effect set for a pet at the given level.
	// Nil means the pet has no effects at any level.
	EffectsForLevel func(level int) []Effect
}

// FoodDef is the immutable template for a consumable item.
type FoodDef struct {
	Name string
	Tier int
	Cost int

	// Holdable foods attach their effect to the eating pet; single-use
	// foods apply their action immediately and are consumed.
	Holdable  bool
	SingleUse bool

	// Effect builds the trigger effect granted when held, or carries the
	// immediate action for single-use foods.
	Effect func() Effect
}

// Food is a live item instance, owned by the pet holding it (or transient
// while being applied).
type Food struct {
	Def    *FoodDef
	effect Effect
}

// NewFood instantiates a food item from its definition.
func NewFood(def *FoodDef) *Food {
	f := &Food{Def: def}
	if def.Effect != nil {
		f.effect = def.Effect()
		f.effect.Name = def.Name
		f.effect.fromItem = true
	}
	return f
}

// Pet is a live entity occupying a team or shop slot. It is mutated only
// through action execution and retired (faint, sell) by explicit state
// transitions.
type Pet struct {
	Def     *PetDef
	ID      int
	Level   int
	Exp     int
	Stats   Stats
	Item    *Food
	Effects []Effect
	Pos     int

	fainted bool
}

// NewPet instantiates a pet at the given level with its definition's base
// stats and level-appropriate effect set. The ID is assigned when the pet
// joins a team or shop.
func NewPet(def *PetDef, level int) *Pet {
	if level < 1 {
		level = 1
	}
	if level > MaxLevel {
		level = MaxLevel
	}
	p := &Pet{
		Def:   def,
		Level: level,
		Exp:   expForLevel(level),
		Stats: def.BaseStats,
	}
	p.rebuildEffects()
	return p
}

func (p *Pet) String() string {
	if p == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (%s, lvl %d)", p.Def.Name, p.Stats, p.Level)
}

// Name returns the definition name.
func (p *Pet) Name() string {
	return p.Def.Name
}

// Alive reports whether the pet still fights: positive health and not yet
// moved to the fainted history.
func (p *Pet) Alive() bool {
	return p != nil && !p.fainted && p.Stats.Health > 0
}

// Ref builds a non-owning reference to this pet on the given side.
func (p *Pet) Ref(side int) PetRef {
	return PetRef{Side: side, Pos: p.Pos, ID: p.ID}
}

// GainExp adds experience, applying the per-point merge bonus and
// rebuilding the effect set on level-up. Reports whether a level was
// gained.
func (p *Pet) GainExp(points int, bonus Stats, ceil int) bool {
	leveled := false
	for i := 0; i < points && p.Exp < MaxExp; i++ {
		p.Exp++
		p.Stats.Add(bonus, ceil)
		if lvl := levelForExp(p.Exp); lvl > p.Level {
			p.Level = lvl
			p.rebuildEffects()
			leveled = true
		}
	}
	return leveled
}

// CanMergeWith reports whether buying other onto this slot combines the
// two instead of occupying a second slot.
func (p *Pet) CanMergeWith(other *Pet) bool {
	return p.Def.Name == other.Def.Name && p.Exp < MaxExp
}

// rebuildEffects re-resolves the effect set at the current level,
// preserving any held-item effect.
func (p *Pet) rebuildEffects() {
	p.Effects = nil
	if p.Def.EffectsForLevel == nil {
		return
	}
	for _, eff := range p.Def.EffectsForLevel(p.Level) {
		eff = eff.clone()
		if eff.Name == "" {
			eff.Name = p.Def.Name
		}
		p.Effects = append(p.Effects, eff)
	}
}

// pruneEffects drops exhausted effects, and temporary effects attached
// during the given phase. A held item whose effect expires the same way
// is discarded with it.
func (p *Pet) pruneEffects(endingPhase Phase) {
	kept := p.Effects[:0]
	for _, eff := range p.Effects {
		if effectExpired(&eff, endingPhase) {
			continue
		}
		kept = append(kept, eff)
	}
	p.Effects = kept
	if p.Item != nil && effectExpired(&p.Item.effect, endingPhase) {
		p.Item = nil
	}
}

func effectExpired(eff *Effect, endingPhase Phase) bool {
	if eff.Exhausted() {
		return true
	}
	return eff.Temporary && endingPhase != PhaseNone && eff.addedPhase == endingPhase
}

func levelForExp(exp int) int {
	switch {
	case exp >= lvl3AtExp:
		return 3
	case exp >= lvl2AtExp:
		return 2
	default:
		return 1
	}
}

func expForLevel(level int) int {
	switch level {
	case 3:
		return lvl3AtExp
	case 2:
		return lvl2AtExp
	default:
		return 0
	}
}
