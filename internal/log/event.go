package log

// EventType enumerates all observable battle and shop events. The trigger
// kinds double as effect subscriptions: an effect whose Trigger equals the
// dispatched event's type is a candidate for execution.
type EventType int

const (
	EventNone EventType = iota

	// Phase-level events emitted by the orchestrator.
	EventPhaseChange
	EventTurnStart
	EventTurnEnd
	EventBattleStart
	EventBattleEnd

	// Combat events.
	EventBeforeAttack
	EventAttack
	EventHurt
	EventFaint
	EventSummon
	EventLevelUp

	// Shop events.
	EventBuyPet
	EventBuyFood
	EventAteFood
	EventSell
	EventRoll

	// Action results. Recorded in the log but never subscribed to.
	EventStatChange
	EventStatSwap
	EventItemGiven
	EventGoldChange

	// Terminal classification.
	EventResult
)

func (e EventType) String() string {
	switch e {
	case EventPhaseChange:
		return "PhaseChange"
	case EventTurnStart:
		return "TurnStart"
	case EventTurnEnd:
		return "TurnEnd"
	case EventBattleStart:
		return "BattleStart"
	case EventBattleEnd:
		return "BattleEnd"
	case EventBeforeAttack:
		return "BeforeAttack"
	case EventAttack:
		return "Attack"
	case EventHurt:
		return "Hurt"
	case EventFaint:
		return "Faint"
	case EventSummon:
		return "Summon"
	case EventLevelUp:
		return "LevelUp"
	case EventBuyPet:
		return "BuyPet"
	case EventBuyFood:
		return "BuyFood"
	case EventAteFood:
		return "AteFood"
	case EventSell:
		return "Sell"
	case EventRoll:
		return "Roll"
	case EventStatChange:
		return "StatChange"
	case EventStatSwap:
		return "StatSwap"
	case EventItemGiven:
		return "ItemGiven"
	case EventGoldChange:
		return "GoldChange"
	case EventResult:
		return "Result"
	default:
		return "None"
	}
}

// ParseEventType maps a lowercase trigger name (as used in YAML definition
// packs) to its EventType. Returns EventNone for unknown names.
func ParseEventType(name string) EventType {
	switch name {
	case "turn-start":
		return EventTurnStart
	case "turn-end":
		return EventTurnEnd
	case "battle-start":
		return EventBattleStart
	case "before-attack":
		return EventBeforeAttack
	case "attack":
		return EventAttack
	case "hurt":
		return EventHurt
	case "faint":
		return EventFaint
	case "summon":
		return EventSummon
	case "level-up":
		return EventLevelUp
	case "buy-pet":
		return EventBuyPet
	case "buy-food":
		return EventBuyFood
	case "ate-food":
		return EventAteFood
	case "sell":
		return EventSell
	case "roll":
		return EventRoll
	default:
		return EventNone
	}
}

// Event represents a single observable event in a battle or shop session.
type Event struct {
	Seq     int       // monotonic sequence number
	Turn    int       // which turn (1-based)
	Phase   string    // current phase name (e.g. "Attack Phase")
	Side    int       // acting side (0 or 1)
	Type    EventType // event type
	Pet     string    // pet name (if applicable)
	Details string    // human-readable detail string
}
