package game

import (
	"fmt"

	"github.com/koisland/sapsim/internal/log"
)

// ShopState is the store's lifecycle position.
type ShopState int

const (
	ShopClosed ShopState = iota
	ShopOpen
)

func (s ShopState) String() string {
	if s == ShopOpen {
		return "open"
	}
	return "closed"
}

// MaxShopTier is the highest unlockable store tier.
const MaxShopTier = 6

// Slot counts per tier, index = tier-1.
var (
	petSlotsByTier  = [MaxShopTier]int{3, 3, 4, 4, 5, 5}
	foodSlotsByTier = [MaxShopTier]int{1, 1, 2, 2, 2, 2}
)

// ShopPetSlot is one purchasable pet position. Frozen slots survive rolls
// and restocks.
type ShopPetSlot struct {
	Pet    *Pet
	Cost   int
	Frozen bool
}

// ShopFoodSlot is one purchasable food position.
type ShopFoodSlot struct {
	Food   *FoodDef
	Cost   int
	Frozen bool
}

// Shop is a team's store: tiered pet and food slots, the session's gold,
// and its own seeded RNG stream so store rolls never perturb battle
// randomness.
type Shop struct {
	Tier      int
	State     ShopState
	Gold      int
	RollCount int
	PetSlots  []*ShopPetSlot
	FoodSlots []*ShopFoodSlot

	rng      *RNG
	provider Provider
	cfg      ShopConfig
}

// NewShop builds a closed store at the given tier. Fails with
// ErrInvalidTier outside 1..MaxShopTier.
func NewShop(tier int, seed int64, provider Provider, cfg ShopConfig) (*Shop, error) {
	if tier < 1 || tier > MaxShopTier {
		return nil, fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidTier, tier, MaxShopTier)
	}
	return &Shop{
		Tier:     tier,
		rng:      NewRNG(seed),
		provider: provider,
		cfg:      cfg,
	}, nil
}

// SetTier raises (or lowers) the store tier; slot counts adjust at the
// next restock.
func (s *Shop) SetTier(tier int) error {
	if tier < 1 || tier > MaxShopTier {
		return fmt.Errorf("%w: %d (want 1..%d)", ErrInvalidTier, tier, MaxShopTier)
	}
	s.Tier = tier
	return nil
}

// restock grows the slot lists to the tier's schedule and redraws every
// non-frozen slot. Frozen slots keep their contents.
func (s *Shop) restock() {
	for len(s.PetSlots) < petSlotsByTier[s.Tier-1] {
		s.PetSlots = append(s.PetSlots, &ShopPetSlot{})
	}
	for len(s.FoodSlots) < foodSlotsByTier[s.Tier-1] {
		s.FoodSlots = append(s.FoodSlots, &ShopFoodSlot{})
	}
	for _, slot := range s.PetSlots {
		if slot.Frozen {
			continue
		}
		slot.Pet, slot.Cost = s.drawPet()
	}
	for _, slot := range s.FoodSlots {
		if slot.Frozen {
			continue
		}
		slot.Food, slot.Cost = s.drawFood()
	}
}

func (s *Shop) drawPet() (*Pet, int) {
	pool := s.provider.PetNamesForTier(s.Tier)
	if len(pool) == 0 {
		return nil, 0
	}
	name := pool[s.rng.Intn(len(pool))]
	p, err := s.provider.Pet(name, 1)
	if err != nil {
		return nil, 0
	}
	cost := s.cfg.PetCost
	if p.Def.Cost > 0 {
		cost = p.Def.Cost
	}
	return p, cost
}

func (s *Shop) drawFood() (*FoodDef, int) {
	pool := s.provider.FoodNamesForTier(s.Tier)
	if len(pool) == 0 {
		return nil, 0
	}
	name := pool[s.rng.Intn(len(pool))]
	f, err := s.provider.Food(name)
	if err != nil {
		return nil, 0
	}
	cost := s.cfg.FoodCost
	if f.Def.Cost > 0 {
		cost = f.Def.Cost
	}
	return f.Def, cost
}

// FreezePet marks a pet slot to survive rolls and restocks.
func (s *Shop) FreezePet(i int) error { return s.setPetFrozen(i, true) }

// UnfreezePet clears a pet slot's frozen mark.
func (s *Shop) UnfreezePet(i int) error { return s.setPetFrozen(i, false) }

// FreezeFood marks a food slot to survive rolls and restocks.
func (s *Shop) FreezeFood(i int) error { return s.setFoodFrozen(i, true) }

// UnfreezeFood clears a food slot's frozen mark.
func (s *Shop) UnfreezeFood(i int) error { return s.setFoodFrozen(i, false) }

func (s *Shop) setPetFrozen(i int, frozen bool) error {
	if i < 0 || i >= len(s.PetSlots) {
		return fmt.Errorf("%w: pet slot %d", ErrInvalidPosition, i)
	}
	s.PetSlots[i].Frozen = frozen
	return nil
}

func (s *Shop) setFoodFrozen(i int, frozen bool) error {
	if i < 0 || i >= len(s.FoodSlots) {
		return fmt.Errorf("%w: food slot %d", ErrInvalidPosition, i)
	}
	s.FoodSlots[i].Frozen = frozen
	return nil
}

// --- Team shopping session ---

// AttachShop wires a store and a trigger engine onto the team so shop
// operations can raise events through the same pipeline battles use.
func (t *Team) AttachShop(s *Shop, provider Provider, logger log.EventLogger, cfg GameConfig) {
	t.Shop = s
	t.shopEngine = NewEngine(t, nil, provider, logger, cfg)
	t.shopEngine.SetShopConfig(s.cfg)
}

// OpenShop starts a shopping turn: resets gold, restocks non-frozen
// slots, and fires the turn-start triggers.
func (t *Team) OpenShop() error {
	if t.Shop == nil || t.shopEngine == nil {
		return fmt.Errorf("%w: no shop attached", ErrInvalidShopState)
	}
	if t.Shop.State == ShopOpen {
		return fmt.Errorf("%w: shop already open", ErrInvalidShopState)
	}
	t.Shop.State = ShopOpen
	t.Shop.Gold = t.Shop.cfg.StartGold
	t.Shop.restock()

	t.shopTurn++
	t.shopEngine.setPhase(t.shopTurn, PhaseShop)
	t.shopEngine.Enqueue(Event{Kind: log.EventTurnStart, Side: 0})
	return t.settle()
}

// CloseShop ends the shopping turn, firing turn-end triggers and
// stripping effects whose lifetime ended with the session.
func (t *Team) CloseShop() error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	t.shopEngine.Enqueue(Event{Kind: log.EventTurnEnd, Side: 0})
	if err := t.settle(); err != nil {
		return err
	}
	t.pruneEffects(PhaseShop)
	t.Shop.State = ShopClosed
	return nil
}

// BuyPet purchases the pet in shop slot src into roster slot dest. Buying
// onto a same-name pet below max experience merges instead. All
// validation happens before any mutation; a failed buy changes nothing.
func (t *Team) BuyPet(src, dest int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	s := t.Shop
	if src < 0 || src >= len(s.PetSlots) {
		return fmt.Errorf("%w: shop pet slot %d", ErrInvalidPosition, src)
	}
	slot := s.PetSlots[src]
	if slot.Pet == nil {
		return fmt.Errorf("%w: shop pet slot %d", ErrEmptySlot, src)
	}
	if dest < 0 || dest >= t.capacity {
		return fmt.Errorf("%w: roster slot %d", ErrInvalidPosition, dest)
	}
	if s.Gold < slot.Cost {
		return fmt.Errorf("%w: need %d gold, have %d", ErrInsufficientFunds, slot.Cost, s.Gold)
	}
	occupant := t.At(dest)
	merging := occupant != nil && occupant.CanMergeWith(slot.Pet)
	if occupant != nil && !merging {
		return fmt.Errorf("%w: roster slot %d occupied", ErrInvalidPosition, dest)
	}

	bought := slot.Pet
	s.Gold -= slot.Cost
	slot.Pet = nil
	slot.Frozen = false

	var target *Pet
	if merging {
		target = occupant
		if target.GainExp(bought.Exp+1, s.cfg.MergeBonus, t.shopEngine.cfg.MaxStat) {
			t.shopEngine.Enqueue(Event{
				Kind:    log.EventLevelUp,
				Side:    0,
				Target:  target.Ref(0),
				Amount:  target.Level,
				PetName: target.Name(),
			})
		}
	} else {
		t.adopt(bought, dest)
		target = bought
	}
	t.shopEngine.Enqueue(Event{
		Kind:    log.EventBuyPet,
		Side:    0,
		Target:  target.Ref(0),
		Amount:  slot.Cost,
		PetName: target.Name(),
	})
	return t.settle()
}

// BuyFood purchases the food in shop slot src and feeds it to the pet in
// roster slot dest. Single-use foods apply immediately; holdable foods
// replace the pet's held item.
func (t *Team) BuyFood(src, dest int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	s := t.Shop
	if src < 0 || src >= len(s.FoodSlots) {
		return fmt.Errorf("%w: shop food slot %d", ErrInvalidPosition, src)
	}
	slot := s.FoodSlots[src]
	if slot.Food == nil {
		return fmt.Errorf("%w: shop food slot %d", ErrEmptySlot, src)
	}
	pet := t.At(dest)
	if pet == nil || !pet.Alive() {
		return fmt.Errorf("%w: roster slot %d", ErrEmptySlot, dest)
	}
	if s.Gold < slot.Cost {
		return fmt.Errorf("%w: need %d gold, have %d", ErrInsufficientFunds, slot.Cost, s.Gold)
	}

	def := slot.Food
	s.Gold -= slot.Cost
	slot.Food = nil
	slot.Frozen = false

	t.shopEngine.Enqueue(Event{
		Kind:    log.EventBuyFood,
		Side:    0,
		Target:  pet.Ref(0),
		Amount:  slot.Cost,
		PetName: pet.Name(),
		Item:    def.Name,
	})
	if err := t.settle(); err != nil {
		return err
	}

	ate := Event{Kind: log.EventAteFood, Side: 0, Target: pet.Ref(0), PetName: pet.Name(), Item: def.Name}
	if def.SingleUse {
		food := NewFood(def)
		t.shopEngine.runEffect(0, pet, &food.effect, ate)
	} else if def.Holdable {
		pet.Item = NewFood(def)
		t.shopEngine.logger.Log(log.NewItemGivenEvent(t.shopTurn, PhaseShop.String(), 0, pet.Name(), def.Name))
	}
	t.shopEngine.Enqueue(ate)
	return t.settle()
}

// Sell retires the pet in roster slot pos, refunding gold by level, and
// fires its sell triggers.
func (t *Team) Sell(pos int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	pet := t.At(pos)
	if pet == nil || !pet.Alive() {
		return fmt.Errorf("%w: roster slot %d", ErrEmptySlot, pos)
	}
	refund := pet.Level * t.Shop.cfg.SellRefundPerLevel
	t.Shop.Gold += refund

	t.shopEngine.Enqueue(Event{
		Kind:    log.EventSell,
		Side:    0,
		Target:  pet.Ref(0),
		Amount:  refund,
		PetName: pet.Name(),
	})
	return t.settle()
}

// RollShop redraws every non-frozen slot for the roll fee.
func (t *Team) RollShop() error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	s := t.Shop
	if s.Gold < s.cfg.RollCost {
		return fmt.Errorf("%w: need %d gold, have %d", ErrInsufficientFunds, s.cfg.RollCost, s.Gold)
	}
	s.Gold -= s.cfg.RollCost
	s.RollCount++
	s.restock()

	t.shopEngine.Enqueue(Event{Kind: log.EventRoll, Side: 0, Amount: s.RollCount})
	return t.settle()
}

// FreezePet delegates to the attached shop.
func (t *Team) FreezePet(i int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	return t.Shop.FreezePet(i)
}

// UnfreezePet delegates to the attached shop.
func (t *Team) UnfreezePet(i int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	return t.Shop.UnfreezePet(i)
}

// FreezeFood delegates to the attached shop.
func (t *Team) FreezeFood(i int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	return t.Shop.FreezeFood(i)
}

// UnfreezeFood delegates to the attached shop.
func (t *Team) UnfreezeFood(i int) error {
	if err := t.requireOpenShop(); err != nil {
		return err
	}
	return t.Shop.UnfreezeFood(i)
}

func (t *Team) requireOpenShop() error {
	if t.Shop == nil || t.shopEngine == nil {
		return fmt.Errorf("%w: no shop attached", ErrInvalidShopState)
	}
	if t.Shop.State != ShopOpen {
		return fmt.Errorf("%w: shop is closed", ErrInvalidShopState)
	}
	return nil
}

// settle drains the shop engine's queue and compacts the roster.
func (t *Team) settle() error {
	if err := t.shopEngine.Drain(); err != nil {
		return err
	}
	t.compact()
	return nil
}
