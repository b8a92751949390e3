// Package data loads pet, food, and team definitions from YAML files and
// layers them over the built-in registry.
package data

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/koisland/sapsim/internal/game"
	"github.com/koisland/sapsim/internal/log"
)

// ErrInvalidDefinition flags a definition pack entry that parses as YAML
// but fails semantic validation.
var ErrInvalidDefinition = errors.New("invalid definition")

// PackFile is the top-level YAML structure of a definition pack.
type PackFile struct {
	Pets  []PetEntry  `yaml:"pets"`
	Foods []FoodEntry `yaml:"foods"`
}

// PetEntry is one custom pet definition.
type PetEntry struct {
	Name    string        `yaml:"name"`
	Tier    int           `yaml:"tier"`
	Attack  int           `yaml:"attack"`
	Health  int           `yaml:"health"`
	Cost    int           `yaml:"cost"`
	Token   bool          `yaml:"token"`
	Effects []EffectEntry `yaml:"effects"`
}

// FoodEntry is one custom food definition.
type FoodEntry struct {
	Name      string       `yaml:"name"`
	Tier      int          `yaml:"tier"`
	Cost      int          `yaml:"cost"`
	Holdable  bool         `yaml:"holdable"`
	SingleUse bool         `yaml:"single_use"`
	Effect    *EffectEntry `yaml:"effect"`
}

// EffectEntry is the YAML form of a trigger effect. Numbers are fixed;
// YAML-defined effects do not scale with level.
type EffectEntry struct {
	Trigger   string       `yaml:"trigger"`
	Scope     string       `yaml:"scope"`
	Select    string       `yaml:"select"`
	N         int          `yaml:"n"`
	Pos       int          `yaml:"pos"`
	Action    string       `yaml:"action"`
	Amount    int          `yaml:"amount"`
	Attack    int          `yaml:"attack"`
	Health    int          `yaml:"health"`
	Summon    *SummonEntry `yaml:"summon"`
	Item      string       `yaml:"item"`
	Uses      int          `yaml:"uses"`
	Temporary bool         `yaml:"temporary"`
}

// SummonEntry is the summon payload of a summon action.
type SummonEntry struct {
	Name   string `yaml:"name"`
	Count  int    `yaml:"count"`
	Attack int    `yaml:"attack"`
	Health int    `yaml:"health"`
}

// Provider layers pack definitions over a base provider. Lookups check
// the pack first, then fall through.
type Provider struct {
	pack *game.Registry
	base game.Provider
}

// LoadPack parses a YAML definition pack and layers it over base.
func LoadPack(r io.Reader, base game.Provider) (*Provider, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var pf PackFile
	if err := yaml.Unmarshal(raw, &pf); err != nil {
		return nil, fmt.Errorf("parse pack YAML: %w", err)
	}

	reg := game.NewRegistry()
	for _, entry := range pf.Pets {
		def, err := buildPetDef(entry)
		if err != nil {
			return nil, err
		}
		reg.RegisterPet(def)
	}
	for _, entry := range pf.Foods {
		def, err := buildFoodDef(entry)
		if err != nil {
			return nil, err
		}
		reg.RegisterFood(def)
	}
	return &Provider{pack: reg, base: base}, nil
}

// LoadPackFile parses a YAML definition pack from disk.
func LoadPackFile(path string, base game.Provider) (*Provider, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return LoadPack(f, base)
}

func (p *Provider) Pet(name string, level int) (*game.Pet, error) {
	if pet, err := p.pack.Pet(name, level); err == nil {
		return pet, nil
	}
	if p.base == nil {
		return nil, fmt.Errorf("%w: pet %q", game.ErrUnknownEntity, name)
	}
	return p.base.Pet(name, level)
}

func (p *Provider) Food(name string) (*game.Food, error) {
	if food, err := p.pack.Food(name); err == nil {
		return food, nil
	}
	if p.base == nil {
		return nil, fmt.Errorf("%w: food %q", game.ErrUnknownEntity, name)
	}
	return p.base.Food(name)
}

func (p *Provider) PetNamesForTier(tier int) []string {
	names := p.pack.PetNamesForTier(tier)
	if p.base != nil {
		names = append(names, p.base.PetNamesForTier(tier)...)
	}
	return dedupeSorted(names)
}

func (p *Provider) FoodNamesForTier(tier int) []string {
	names := p.pack.FoodNamesForTier(tier)
	if p.base != nil {
		names = append(names, p.base.FoodNamesForTier(tier)...)
	}
	return dedupeSorted(names)
}

func dedupeSorted(names []string) []string {
	sort.Strings(names)
	out := names[:0]
	for i, n := range names {
		if i == 0 || names[i-1] != n {
			out = append(out, n)
		}
	}
	return out
}

func buildPetDef(entry PetEntry) (*game.PetDef, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("%w: pet with no name", ErrInvalidDefinition)
	}
	if entry.Tier < 1 || entry.Tier > game.MaxShopTier {
		return nil, fmt.Errorf("%w: pet %q tier %d", ErrInvalidDefinition, entry.Name, entry.Tier)
	}
	if entry.Attack < 0 || entry.Health <= 0 {
		return nil, fmt.Errorf("%w: pet %q stats %d/%d", ErrInvalidDefinition, entry.Name, entry.Attack, entry.Health)
	}
	var effects []game.Effect
	for _, ee := range entry.Effects {
		eff, err := buildEffect(ee, entry.Name)
		if err != nil {
			return nil, err
		}
		effects = append(effects, eff)
	}
	def := &game.PetDef{
		Name:      entry.Name,
		Tier:      entry.Tier,
		Pack:      "Custom",
		BaseStats: game.Stats{Attack: entry.Attack, Health: entry.Health},
		Cost:      entry.Cost,
		Token:     entry.Token,
	}
	if len(effects) > 0 {
		def.EffectsForLevel = func(level int) []game.Effect {
			return effects
		}
	}
	return def, nil
}

func buildFoodDef(entry FoodEntry) (*game.FoodDef, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("%w: food with no name", ErrInvalidDefinition)
	}
	if entry.Tier < 1 || entry.Tier > game.MaxShopTier {
		return nil, fmt.Errorf("%w: food %q tier %d", ErrInvalidDefinition, entry.Name, entry.Tier)
	}
	if entry.Holdable == entry.SingleUse {
		return nil, fmt.Errorf("%w: food %q must be exactly one of holdable or single_use", ErrInvalidDefinition, entry.Name)
	}
	if entry.Effect == nil {
		return nil, fmt.Errorf("%w: food %q has no effect", ErrInvalidDefinition, entry.Name)
	}
	eff, err := buildEffect(*entry.Effect, entry.Name)
	if err != nil {
		return nil, err
	}
	return &game.FoodDef{
		Name:      entry.Name,
		Tier:      entry.Tier,
		Cost:      entry.Cost,
		Holdable:  entry.Holdable,
		SingleUse: entry.SingleUse,
		Effect: func() game.Effect {
			return eff
		},
	}, nil
}

func buildEffect(entry EffectEntry, owner string) (game.Effect, error) {
	trigger := log.ParseEventType(entry.Trigger)
	if trigger == log.EventNone {
		return game.Effect{}, fmt.Errorf("%w: %q has unknown trigger %q", ErrInvalidDefinition, owner, entry.Trigger)
	}
	scope, err := parseScope(entry.Scope)
	if err != nil {
		return game.Effect{}, fmt.Errorf("%w: %q: %v", ErrInvalidDefinition, owner, err)
	}
	selector, err := parseSelector(entry)
	if err != nil {
		return game.Effect{}, fmt.Errorf("%w: %q: %v", ErrInvalidDefinition, owner, err)
	}
	action, err := parseAction(entry)
	if err != nil {
		return game.Effect{}, fmt.Errorf("%w: %q: %v", ErrInvalidDefinition, owner, err)
	}
	eff := game.Effect{
		Trigger:   trigger,
		Scope:     scope,
		Selector:  selector,
		Action:    action,
		Temporary: entry.Temporary,
	}
	if entry.Uses > 0 {
		eff.Uses = game.Uses(entry.Uses)
	}
	return eff, nil
}

func parseScope(name string) (game.Scope, error) {
	switch name {
	case "", "any":
		return game.ScopeNone, nil
	case "self":
		return game.ScopeSelf, nil
	case "friend":
		return game.ScopeFriend, nil
	case "ahead":
		return game.ScopeAhead, nil
	case "enemy":
		return game.ScopeEnemy, nil
	default:
		return game.ScopeNone, fmt.Errorf("unknown scope %q", name)
	}
}

func parseSelector(entry EffectEntry) (game.Selector, error) {
	sel := game.Selector{N: entry.N, Pos: entry.Pos}
	switch entry.Select {
	case "", "self":
		sel.Kind = game.SelectSelf
	case "ahead":
		sel.Kind = game.SelectAhead
	case "behind":
		sel.Kind = game.SelectBehind
	case "all-friends":
		sel.Kind = game.SelectAllFriends
	case "all-enemies":
		sel.Kind = game.SelectAllEnemies
	case "random-friends":
		sel.Kind = game.SelectRandomFriends
	case "random-enemies":
		sel.Kind = game.SelectRandomEnemies
	case "friend-at":
		sel.Kind = game.SelectFriendAt
	case "enemy-at":
		sel.Kind = game.SelectEnemyAt
	case "lowest-health-enemy":
		sel.Kind = game.SelectLowestHealthEnemy
	case "highest-health-friend":
		sel.Kind = game.SelectHighestHealthFriend
	case "highest-attack-enemy":
		sel.Kind = game.SelectHighestAttackEnemy
	case "trigger-target":
		sel.Kind = game.SelectTriggerTarget
	default:
		return sel, fmt.Errorf("unknown selector %q", entry.Select)
	}
	return sel, nil
}

func parseAction(entry EffectEntry) (game.Action, error) {
	act := game.Action{
		Amount: entry.Amount,
		Stats:  game.Stats{Attack: entry.Attack, Health: entry.Health},
	}
	switch entry.Action {
	case "damage":
		act.Kind = game.ActionDamage
	case "add-stats":
		act.Kind = game.ActionAddStats
	case "remove-stats":
		act.Kind = game.ActionRemoveStats
	case "set-stats":
		act.Kind = game.ActionSetStats
	case "swap-stats":
		act.Kind = game.ActionSwapStats
	case "summon":
		if entry.Summon == nil || entry.Summon.Name == "" {
			return act, fmt.Errorf("summon action needs a summon block")
		}
		act.Kind = game.ActionSummon
		act.SummonName = entry.Summon.Name
		act.SummonCount = entry.Summon.Count
		if entry.Summon.Attack > 0 || entry.Summon.Health > 0 {
			act.SummonStats = &game.Stats{Attack: entry.Summon.Attack, Health: entry.Summon.Health}
		}
	case "gain-item":
		if entry.Item == "" {
			return act, fmt.Errorf("gain-item action needs an item name")
		}
		act.Kind = game.ActionGainItem
		act.ItemName = entry.Item
	case "gain-exp":
		act.Kind = game.ActionGainExp
	case "gain-gold":
		act.Kind = game.ActionGainGold
	default:
		return act, fmt.Errorf("unknown action %q", entry.Action)
	}
	return act, nil
}
