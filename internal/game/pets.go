package game

import "github.com/koisland/sapsim/internal/log"

// Built-in pet definitions, tiers 1-3 of the standard pack plus the token
// pets their effects summon. Effect numbers scale with level through the
// EffectsForLevel closures.

func builtinPets() []*PetDef {
	return []*PetDef{
		// --- Tier 1 ---
		{
			Name: "Ant", Tier: 1, Pack: "Standard", BaseStats: Stats{2, 1},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventFaint,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectRandomFriends, N: 1},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 2 * l, Health: l}},
					Uses:     Uses(1),
				}}
			},
		},
		{
			Name: "Cricket", Tier: 1, Pack: "Standard", BaseStats: Stats{1, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventFaint,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action: Action{
						Kind:        ActionSummon,
						SummonName:  "Zombie Cricket",
						SummonStats: &Stats{Attack: l, Health: l},
					},
					Uses: Uses(1),
				}}
			},
		},
		{
			Name: "Mosquito", Tier: 1, Pack: "Standard", BaseStats: Stats{2, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventBattleStart,
					Selector: Selector{Kind: SelectRandomEnemies, N: l},
					Action:   Action{Kind: ActionDamage, Amount: 1},
					Uses:     Uses(1),
				}}
			},
		},
		{
			Name: "Horse", Tier: 1, Pack: "Standard", BaseStats: Stats{2, 1},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventSummon,
					Scope:    ScopeFriend,
					Selector: Selector{Kind: SelectTriggerTarget},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: l}},
				}}
			},
		},
		{
			Name: "Otter", Tier: 1, Pack: "Standard", BaseStats: Stats{1, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventBuyPet,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectRandomFriends, N: l},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 1, Health: 1}},
					Uses:     Uses(1),
				}}
			},
		},
		{
			Name: "Beaver", Tier: 1, Pack: "Standard", BaseStats: Stats{2, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventSell,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectRandomFriends, N: 2},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Health: l}},
					Uses:     Uses(1),
				}}
			},
		},
		{
			Name: "Pig", Tier: 1, Pack: "Standard", BaseStats: Stats{3, 1},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventSell,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionGainGold, Amount: l},
					Uses:     Uses(1),
				}}
			},
		},
		{
			Name: "Fish", Tier: 1, Pack: "Standard", BaseStats: Stats{2, 3},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventLevelUp,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectAllFriends},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: l, Health: l}},
				}}
			},
		},
		{
			Name: "Sloth", Tier: 1, Pack: "Standard", BaseStats: Stats{1, 1},
		},

		// --- Tier 2 ---
		{
			Name: "Hedgehog", Tier: 2, Pack: "Standard", BaseStats: Stats{3, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{
					{
						Trigger:  log.EventFaint,
						Scope:    ScopeSelf,
						Selector: Selector{Kind: SelectAllFriends},
						Action:   Action{Kind: ActionDamage, Amount: 2 * l},
						Uses:     Uses(1),
					},
					{
						Trigger:  log.EventFaint,
						Scope:    ScopeSelf,
						Selector: Selector{Kind: SelectAllEnemies},
						Action:   Action{Kind: ActionDamage, Amount: 2 * l},
						Uses:     Uses(1),
					},
				}
			},
		},
		{
			Name: "Peacock", Tier: 2, Pack: "Standard", BaseStats: Stats{2, 5},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventHurt,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 4 * l}},
					Uses:     Uses(l),
				}}
			},
		},
		{
			Name: "Elephant", Tier: 2, Pack: "Standard", BaseStats: Stats{3, 5},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventBeforeAttack,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectBehind},
					Action:   Action{Kind: ActionDamage, Amount: l},
				}}
			},
		},
		{
			Name: "Camel", Tier: 2, Pack: "Standard", BaseStats: Stats{2, 5},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventHurt,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectBehind},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: l, Health: 2 * l}},
				}}
			},
		},
		{
			Name: "Swan", Tier: 2, Pack: "Standard", BaseStats: Stats{1, 3},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventTurnStart,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionGainGold, Amount: l},
				}}
			},
		},
		{
			Name: "Shrimp", Tier: 2, Pack: "Standard", BaseStats: Stats{2, 3},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventSell,
					Scope:    ScopeFriend,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Health: l}},
				}}
			},
		},
		{
			Name: "Rabbit", Tier: 2, Pack: "Standard", BaseStats: Stats{3, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventAteFood,
					Scope:    ScopeFriend,
					Selector: Selector{Kind: SelectTriggerTarget},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Health: l}},
				}}
			},
		},

		// --- Tier 3 ---
		{
			Name: "Dolphin", Tier: 3, Pack: "Standard", BaseStats: Stats{4, 6},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventBattleStart,
					Selector: Selector{Kind: SelectLowestHealthEnemy},
					Action:   Action{Kind: ActionDamage, Amount: 5 * l},
					Uses:     Uses(1),
				}}
			},
		},
		{
			Name: "Sheep", Tier: 3, Pack: "Standard", BaseStats: Stats{2, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventFaint,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectSelf},
					Action: Action{
						Kind:        ActionSummon,
						SummonName:  "Ram",
						SummonStats: &Stats{Attack: 2 * l, Health: 2 * l},
						SummonCount: 2,
					},
					Uses: Uses(1),
				}}
			},
		},
		{
			Name: "Blowfish", Tier: 3, Pack: "Standard", BaseStats: Stats{3, 5},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventHurt,
					Scope:    ScopeSelf,
					Selector: Selector{Kind: SelectRandomEnemies, N: 1},
					Action:   Action{Kind: ActionDamage, Amount: 2 * l},
				}}
			},
		},
		{
			Name: "Giraffe", Tier: 3, Pack: "Standard", BaseStats: Stats{2, 5},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventTurnEnd,
					Selector: Selector{Kind: SelectAhead},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: l, Health: l}},
				}}
			},
		},
		{
			Name: "Dog", Tier: 3, Pack: "Standard", BaseStats: Stats{2, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventSummon,
					Scope:    ScopeFriend,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 2 * l, Health: l}},
				}}
			},
		},
		{
			Name: "Kangaroo", Tier: 3, Pack: "Standard", BaseStats: Stats{1, 2},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{{
					Trigger:  log.EventAttack,
					Scope:    ScopeAhead,
					Selector: Selector{Kind: SelectSelf},
					Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: 2 * l, Health: 2 * l}},
				}}
			},
		},
		{
			Name: "Ox", Tier: 3, Pack: "Standard", BaseStats: Stats{1, 4},
			EffectsForLevel: func(l int) []Effect {
				return []Effect{
					{
						Trigger:  log.EventFaint,
						Scope:    ScopeAhead,
						Selector: Selector{Kind: SelectSelf},
						Action:   Action{Kind: ActionAddStats, Stats: Stats{Attack: l}},
					},
					{
						Trigger:  log.EventFaint,
						Scope:    ScopeAhead,
						Selector: Selector{Kind: SelectSelf},
						Action:   Action{Kind: ActionGainItem, ItemName: "Honey"},
					},
				}
			},
		},

		// --- Tokens ---
		{Name: "Zombie Cricket", Tier: 1, Pack: "Standard", BaseStats: Stats{1, 1}, Token: true},
		{Name: "Ram", Tier: 3, Pack: "Standard", BaseStats: Stats{2, 2}, Token: true},
		{Name: "Bee", Tier: 1, Pack: "Standard", BaseStats: Stats{1, 1}, Token: true},
	}
}
