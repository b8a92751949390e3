package game

import "github.com/koisland/sapsim/internal/log"

// Built-in food definitions. Single-use foods run their effect once when
// eaten; holdable foods attach it to the holder for the rest of the run.

func builtinFoods() []*FoodDef {
	return []*FoodDef{
		{
			Name: "Apple", Tier: 1, SingleUse: true,
			Effect: func() Effect {
				return Effect{
					Trigger:  log.EventAteFood,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 1, Health: 1}},
					Uses:     Uses(1),
				}
			},
		},
		{
			Name: "Honey", Tier: 1, Holdable: true,
			Effect: func() Effect {
				return Effect{
					Trigger:  log.EventFaint,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action: Action{
						Kind:        ActionSummon,
						SummonName:  "Bee",
						SummonStats: &Stats{Attack: 1, Health: 1},
					},
					Uses: Uses(1),
				}
			},
		},
		{
			Name: "Pear", Tier: 2, SingleUse: true,
			Effect: func() Effect {
				return Effect{
					Trigger:  log.EventAteFood,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 2, Health: 2}},
					Uses:     Uses(1),
				}
			},
		},
		{
			Name: "Cupcake", Tier: 2, SingleUse: true,
			Effect: func() Effect {
				return Effect{
					Trigger:  log.EventAteFood,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 3, Health: 3}},
					Uses:     Uses(1),
				}
			},
		},
		{
			Name: "Meat Bone", Tier: 3, Holdable: true,
			Effect: func() Effect {
				return Effect{
					Trigger:  log.EventBeforeAttack,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 2}},
				}
			},
		},
		{
			Name: "Sleeping Pill", Tier: 2, Cost: 1, SingleUse: true,
			Effect: func() Effect {
				return Effect{
					Trigger:  log.EventAteFood,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionDamage, Amount: 999},
					Uses:     Uses(1),
				}
			},
		},
	}
}

// DefaultRegistry builds the registry of all built-in pets and foods.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, def := range builtinPets() {
		r.RegisterPet(def)
	}
	for _, def := range builtinFoods() {
		r.RegisterFood(def)
	}
	return r
}
