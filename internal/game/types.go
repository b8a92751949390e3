package game

// --- Enums ---

// Phase is the battle orchestrator's position within a turn.
type Phase int

const (
	PhaseNone Phase = iota
	PhaseTurnStart
	PhaseBeforeAttack
	PhaseAttack
	PhaseFaintCleanup
	PhaseAfterAttack
	PhaseEndOfTurn
	PhaseShop
)

func (p Phase) String() string {
	switch p {
	case PhaseTurnStart:
		return "Turn Start"
	case PhaseBeforeAttack:
		return "Before Attack"
	case PhaseAttack:
		return "Attack"
	case PhaseFaintCleanup:
		return "Faint Cleanup"
	case PhaseAfterAttack:
		return "After Attack"
	case PhaseEndOfTurn:
		return "End of Turn"
	case PhaseShop:
		return "Shop"
	default:
		return "None"
	}
}

// FightOutcome is the terminal classification of a battle.
type FightOutcome int

const (
	OutcomeNone FightOutcome = iota
	OutcomeWinA
	OutcomeWinB
	OutcomeDraw
)

func (o FightOutcome) String() string {
	switch o {
	case OutcomeWinA:
		return "side A wins"
	case OutcomeWinB:
		return "side B wins"
	case OutcomeDraw:
		return "draw"
	default:
		return "undecided"
	}
}

// PetRef is a non-owning reference to a pet: a side plus a position hint
// plus the pet's engine-unique ID. Effects hold PetRefs, never pointers,
// so cross-pet references cannot form ownership cycles.
type PetRef struct {
	Side int
	Pos  int
	ID   int
}

// Valid reports whether the reference points at an actual pet.
func (r PetRef) Valid() bool {
	return r.ID != 0
}

// --- Configuration ---

// GameConfig holds engine-level tunables. Passed explicitly into battle
// and shop constructors; there is no process-wide default state.
type GameConfig struct {
	// MaxStat caps attack and health for every pet.
	MaxStat int
	// CascadeLimit bounds the total events processed per phase. Exceeding
	// it aborts the battle with ErrCascadeLimit.
	CascadeLimit int
	// MaxTurns forces a draw once reached, guaranteeing termination.
	MaxTurns int
}

// DefaultGameConfig returns the standard tunables.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		MaxStat:      MaxStat,
		CascadeLimit: 1000,
		MaxTurns:     200,
	}
}

// ShopConfig holds economy tunables. The refund fraction and merge bonus
// are game-content constants, kept configurable pending rule confirmation.
type ShopConfig struct {
	StartGold          int
	PetCost            int
	FoodCost           int
	RollCost           int
	SellRefundPerLevel int
	MergeBonus         Stats // stats gained per experience point on merge
}

// DefaultShopConfig returns the standard economy constants.
func DefaultShopConfig() ShopConfig {
	return ShopConfig{
		StartGold:          10,
		PetCost:            3,
		FoodCost:           3,
		RollCost:           1,
		SellRefundPerLevel: 1,
		MergeBonus:         Stats{Attack: 1, Health: 1},
	}
}
