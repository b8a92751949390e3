package game

import (
	"errors"
	"testing"

	"github.com/koisland/sapsim/internal/log"
)

// shopTeam builds a team with an attached tier-1 shop and returns both.
func shopTeam(t *testing.T, logger log.EventLogger, pets ...*Pet) (*Team, *Shop) {
	t.Helper()
	reg := DefaultRegistry()
	team := makeTeam(t, "shopper", 1, pets...)
	shop, err := NewShop(1, 99, reg, DefaultShopConfig())
	if err != nil {
		t.Fatalf("NewShop: %v", err)
	}
	team.AttachShop(shop, reg, logger, DefaultGameConfig())
	return team, shop
}

func TestNewShopRejectsBadTier(t *testing.T) {
	reg := DefaultRegistry()
	for _, tier := range []int{0, -1, MaxShopTier + 1} {
		if _, err := NewShop(tier, 1, reg, DefaultShopConfig()); !errors.Is(err, ErrInvalidTier) {
			t.Errorf("tier %d: want ErrInvalidTier, got %v", tier, err)
		}
	}
}

func TestOpenShopStocksSlotsAndResetsGold(t *testing.T) {
	team, shop := shopTeam(t, log.NewMemoryLogger())
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	if shop.Gold != DefaultShopConfig().StartGold {
		t.Errorf("gold %d, want %d", shop.Gold, DefaultShopConfig().StartGold)
	}
	if len(shop.PetSlots) != 3 || len(shop.FoodSlots) != 1 {
		t.Fatalf("tier 1 slots: %d pets / %d foods, want 3/1", len(shop.PetSlots), len(shop.FoodSlots))
	}
	for i, slot := range shop.PetSlots {
		if slot.Pet == nil {
			t.Errorf("pet slot %d empty after restock", i)
		}
	}
	if shop.FoodSlots[0].Food == nil {
		t.Error("food slot empty after restock")
	}
}

func TestShopOperationsRequireOpenState(t *testing.T) {
	team, _ := shopTeam(t, log.NewMemoryLogger())

	ops := map[string]func() error{
		"BuyPet":  func() error { return team.BuyPet(0, 0) },
		"BuyFood": func() error { return team.BuyFood(0, 0) },
		"Sell":    func() error { return team.Sell(0) },
		"Roll":    func() error { return team.RollShop() },
		"Freeze":  func() error { return team.FreezePet(0) },
		"Close":   func() error { return team.CloseShop() },
	}
	for name, op := range ops {
		if err := op(); !errors.Is(err, ErrInvalidShopState) {
			t.Errorf("%s on closed shop: want ErrInvalidShopState, got %v", name, err)
		}
	}
}

func TestBuyPetPlacesAndCharges(t *testing.T) {
	logger := log.NewMemoryLogger()
	team, shop := shopTeam(t, logger)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	name := shop.PetSlots[0].Pet.Name()
	cost := shop.PetSlots[0].Cost
	if err := team.BuyPet(0, 0); err != nil {
		t.Fatalf("BuyPet: %v", err)
	}

	if shop.Gold != DefaultShopConfig().StartGold-cost {
		t.Errorf("gold %d after buy", shop.Gold)
	}
	if got := team.At(0); got == nil || got.Name() != name {
		t.Errorf("roster slot 0 = %v, want %s", got, name)
	}
	if shop.PetSlots[0].Pet != nil {
		t.Error("bought slot should be empty")
	}
	if len(logger.EventsOfType(log.EventBuyPet)) != 1 {
		t.Error("want one buy-pet event")
	}
}

func TestBuyPetFailuresLeaveStateUntouched(t *testing.T) {
	team, shop := shopTeam(t, log.NewMemoryLogger())
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	// Occupy slot 2 with a non-matching pet.
	if err := team.Add(vanillaPet("Blocker", 1, 1), 2); err != nil {
		t.Fatalf("Add: %v", err)
	}
	goldBefore := shop.Gold
	cases := map[string]error{
		"bad shop slot":   team.BuyPet(9, 0),
		"bad roster slot": team.BuyPet(0, TeamCapacity),
		"occupied slot":   team.BuyPet(0, 2),
	}
	for name, err := range cases {
		if !errors.Is(err, ErrInvalidPosition) {
			t.Errorf("%s: want ErrInvalidPosition, got %v", name, err)
		}
	}
	if shop.Gold != goldBefore {
		t.Errorf("failed buys changed gold: %d -> %d", goldBefore, shop.Gold)
	}
	if shop.PetSlots[0].Pet == nil {
		t.Error("failed buys consumed the shop slot")
	}

	// Drain the purse, then a legitimate buy must fail cleanly.
	shop.Gold = 0
	if err := team.BuyPet(0, 0); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("want ErrInsufficientFunds, got %v", err)
	}
	if shop.PetSlots[0].Pet == nil || team.At(0) != nil {
		t.Error("broke buy mutated state")
	}
}

func TestBuyPetMergesAndLevels(t *testing.T) {
	reg := DefaultRegistry()
	logger := log.NewMemoryLogger()
	ant, _ := reg.Pet("Ant", 1)
	team, shop := shopTeam(t, logger, ant)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	// One exp away from level 2; the merged copy tips it over.
	ant.GainExp(1, DefaultShopConfig().MergeBonus, MaxStat)
	fresh, _ := reg.Pet("Ant", 1)
	shop.PetSlots[0] = &ShopPetSlot{Pet: fresh, Cost: 3}

	if err := team.BuyPet(0, 0); err != nil {
		t.Fatalf("BuyPet merge: %v", err)
	}
	if ant.Level != 2 || ant.Exp != 2 {
		t.Errorf("merged pet at level %d exp %d, want 2/2", ant.Level, ant.Exp)
	}
	if team.LiveCount() != 1 {
		t.Errorf("merge must not occupy a second slot, roster has %d", team.LiveCount())
	}
	if len(logger.EventsOfType(log.EventLevelUp)) != 1 {
		t.Error("want a level-up event from the merge")
	}
}

func TestSellRefundsAndTriggers(t *testing.T) {
	reg := DefaultRegistry()
	logger := log.NewMemoryLogger()
	pig, _ := reg.Pet("Pig", 1)
	team, shop := shopTeam(t, logger, pig)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	// Level 1 refund is 1 gold, and the Pig's own sell trigger adds 1.
	if err := team.Sell(0); err != nil {
		t.Fatalf("Sell: %v", err)
	}
	if shop.Gold != DefaultShopConfig().StartGold+2 {
		t.Errorf("gold %d, want %d", shop.Gold, DefaultShopConfig().StartGold+2)
	}
	if team.LiveCount() != 0 {
		t.Error("sold pet still on the roster")
	}
	if len(team.Sold) != 1 || team.Sold[0].Name() != "Pig" {
		t.Errorf("sold history: %v", team.Sold)
	}
	if err := team.Sell(0); !errors.Is(err, ErrEmptySlot) {
		t.Errorf("selling empty slot: want ErrEmptySlot, got %v", err)
	}
}

func TestBuyFoodSingleUseAndFaint(t *testing.T) {
	reg := DefaultRegistry()
	logger := log.NewMemoryLogger()
	ant, _ := reg.Pet("Ant", 1)
	team, shop := shopTeam(t, logger, ant)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	apple, _ := reg.Food("Apple")
	shop.FoodSlots[0] = &ShopFoodSlot{Food: apple.Def, Cost: 3}
	if err := team.BuyFood(0, 0); err != nil {
		t.Fatalf("BuyFood: %v", err)
	}
	if ant.Stats != (Stats{Attack: 3, Health: 2}) {
		t.Errorf("Ant after Apple: %s, want 3/2", ant.Stats)
	}
	if !eventWithPet(logger, log.EventAteFood, "Ant") {
		t.Error("want an ate-food event")
	}

	// A Sleeping Pill faints the eater on the spot.
	pill, _ := reg.Food("Sleeping Pill")
	shop.FoodSlots[0] = &ShopFoodSlot{Food: pill.Def, Cost: 1}
	if err := team.BuyFood(0, 0); err != nil {
		t.Fatalf("BuyFood pill: %v", err)
	}
	if team.LiveCount() != 0 {
		t.Error("pill should faint the eater")
	}
	if len(logger.EventsOfType(log.EventFaint)) != 1 {
		t.Error("want a faint event from the pill")
	}
}

func TestBuyFoodHoldableAttachesItem(t *testing.T) {
	reg := DefaultRegistry()
	cricket, _ := reg.Pet("Cricket", 1)
	team, shop := shopTeam(t, log.NewMemoryLogger(), cricket)
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	honey, _ := reg.Food("Honey")
	shop.FoodSlots[0] = &ShopFoodSlot{Food: honey.Def, Cost: 3}
	if err := team.BuyFood(0, 0); err != nil {
		t.Fatalf("BuyFood: %v", err)
	}
	if cricket.Item == nil || cricket.Item.Def.Name != "Honey" {
		t.Errorf("held item: %v", cricket.Item)
	}
}

func TestRollRespectsFreezeAndCharges(t *testing.T) {
	team, shop := shopTeam(t, log.NewMemoryLogger())
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}

	if err := team.FreezePet(0); err != nil {
		t.Fatalf("FreezePet: %v", err)
	}
	frozen := shop.PetSlots[0].Pet
	goldBefore := shop.Gold

	if err := team.RollShop(); err != nil {
		t.Fatalf("RollShop: %v", err)
	}
	if shop.PetSlots[0].Pet != frozen {
		t.Error("frozen slot was redrawn")
	}
	if shop.Gold != goldBefore-DefaultShopConfig().RollCost {
		t.Errorf("gold %d after roll", shop.Gold)
	}
	if shop.RollCount != 1 {
		t.Errorf("roll count %d, want 1", shop.RollCount)
	}

	shop.Gold = 0
	if err := team.RollShop(); !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("broke roll: want ErrInsufficientFunds, got %v", err)
	}

	if err := team.FreezePet(99); !errors.Is(err, ErrInvalidPosition) {
		t.Errorf("freeze out of range: want ErrInvalidPosition, got %v", err)
	}
}

// TestSwanEarnsGoldAtTurnStart: shop triggers run through the same event
// pipeline as battle triggers.
func TestSwanEarnsGoldAtTurnStart(t *testing.T) {
	reg := DefaultRegistry()
	logger := log.NewMemoryLogger()
	swan, _ := reg.Pet("Swan", 1)
	team := makeTeam(t, "shopper", 1, swan)
	shop, err := NewShop(2, 7, reg, DefaultShopConfig())
	if err != nil {
		t.Fatalf("NewShop: %v", err)
	}
	team.AttachShop(shop, reg, logger, DefaultGameConfig())

	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if shop.Gold != DefaultShopConfig().StartGold+1 {
		t.Errorf("gold %d, want %d", shop.Gold, DefaultShopConfig().StartGold+1)
	}
	if len(logger.EventsOfType(log.EventGoldChange)) != 1 {
		t.Error("want a gold-change event from the Swan")
	}
}

func TestFrozenSlotSurvivesReopen(t *testing.T) {
	team, shop := shopTeam(t, log.NewMemoryLogger())
	if err := team.OpenShop(); err != nil {
		t.Fatalf("OpenShop: %v", err)
	}
	if err := team.FreezeFood(0); err != nil {
		t.Fatalf("FreezeFood: %v", err)
	}
	frozen := shop.FoodSlots[0].Food

	if err := team.CloseShop(); err != nil {
		t.Fatalf("CloseShop: %v", err)
	}
	if err := team.OpenShop(); err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if shop.FoodSlots[0].Food != frozen {
		t.Error("frozen food lost across reopen")
	}
}
