package game

import (
	"fmt"
	"sort"
)

// Provider supplies immutable entity definitions. The core only reads
// definitions to construct live instances.
type Provider interface {
	// Pet instantiates a pet by name at the given level. Fails with
	// ErrUnknownEntity if absent.
	Pet(name string, level int) (*Pet, error)
	// Food instantiates a food item by name.
	Food(name string) (*Food, error)
	// PetNamesForTier lists non-token pet names purchasable at the given
	// shop tier, in a stable order.
	PetNamesForTier(tier int) []string
	// FoodNamesForTier lists food names purchasable at the given tier.
	FoodNamesForTier(tier int) []string
}

// Registry is the built-in Provider: a map of definitions keyed by name.
type Registry struct {
	pets  map[string]*PetDef
	foods map[string]*FoodDef
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		pets:  make(map[string]*PetDef),
		foods: make(map[string]*FoodDef),
	}
}

// RegisterPet adds or replaces a pet definition.
func (r *Registry) RegisterPet(def *PetDef) {
	r.pets[def.Name] = def
}

// RegisterFood adds or replaces a food definition.
func (r *Registry) RegisterFood(def *FoodDef) {
	r.foods[def.Name] = def
}

// PetDef returns the raw definition for a name.
func (r *Registry) PetDef(name string) (*PetDef, error) {
	def, ok := r.pets[name]
	if !ok {
		return nil, fmt.Errorf("%w: pet %q", ErrUnknownEntity, name)
	}
	return def, nil
}

func (r *Registry) Pet(name string, level int) (*Pet, error) {
	def, err := r.PetDef(name)
	if err != nil {
		return nil, err
	}
	return NewPet(def, level), nil
}

func (r *Registry) Food(name string) (*Food, error) {
	def, ok := r.foods[name]
	if !ok {
		return nil, fmt.Errorf("%w: food %q", ErrUnknownEntity, name)
	}
	return NewFood(def), nil
}

// PetNamesForTier returns purchasable pet names for a shop tier, sorted so
// shop rolls are reproducible under a fixed seed.
func (r *Registry) PetNamesForTier(tier int) []string {
	var names []string
	for name, def := range r.pets {
		if !def.Token && def.Tier <= tier {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

func (r *Registry) FoodNamesForTier(tier int) []string {
	var names []string
	for name, def := range r.foods {
		if def.Tier <= tier {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
