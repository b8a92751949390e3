package game

import (
	"fmt"

	"github.com/koisland/sapsim/internal/log"
)

// Scope restricts which dispatched events an effect reacts to, relative to
// the effect's owner. Global events (turn start, battle start, roll) carry
// no affected pet and only match ScopeNone.
type Scope int

const (
	// ScopeNone matches any event of the subscribed type.
	ScopeNone Scope = iota
	// ScopeSelf matches only events afflicting the owner itself.
	ScopeSelf
	// ScopeFriend matches events afflicting a teammate other than the owner.
	ScopeFriend
	// ScopeAhead matches events afflicting the nearest living pet in front
	// of the owner.
	ScopeAhead
	// ScopeEnemy matches events afflicting any pet on the opposing side.
	ScopeEnemy
)

func (s Scope) String() string {
	switch s {
	case ScopeSelf:
		return "self"
	case ScopeFriend:
		return "friend"
	case ScopeAhead:
		return "ahead"
	case ScopeEnemy:
		return "enemy"
	default:
		return "any"
	}
}

// SelectorKind enumerates the closed set of target selection rules.
type SelectorKind int

const (
	SelectNone SelectorKind = iota
	SelectSelf
	SelectAhead
	SelectBehind
	SelectAllFriends
	SelectAllEnemies
	SelectRandomFriends // N random living friends, owner excluded
	SelectRandomEnemies // N random living enemies
	SelectFriendAt      // friendly position Pos
	SelectEnemyAt       // enemy position Pos
	SelectLowestHealthEnemy
	SelectHighestHealthFriend
	SelectHighestAttackEnemy
	SelectTriggerTarget // the pet the triggering event afflicted
)

// Selector maps an event's context to an ordered set of target positions.
type Selector struct {
	Kind SelectorKind
	N    int // count for random-N selectors
	Pos  int // index for positional selectors
}

func (s Selector) String() string {
	switch s.Kind {
	case SelectSelf:
		return "self"
	case SelectAhead:
		return "ahead"
	case SelectBehind:
		return "behind"
	case SelectAllFriends:
		return "all friends"
	case SelectAllEnemies:
		return "all enemies"
	case SelectRandomFriends:
		return fmt.Sprintf("%d random friends", s.N)
	case SelectRandomEnemies:
		return fmt.Sprintf("%d random enemies", s.N)
	case SelectFriendAt:
		return fmt.Sprintf("friend at %d", s.Pos)
	case SelectEnemyAt:
		return fmt.Sprintf("enemy at %d", s.Pos)
	case SelectLowestHealthEnemy:
		return "lowest-health enemy"
	case SelectHighestHealthFriend:
		return "highest-health friend"
	case SelectHighestAttackEnemy:
		return "highest-attack enemy"
	case SelectTriggerTarget:
		return "trigger target"
	default:
		return "none"
	}
}

// ActionKind tags the closed union of effect operations. The set is fixed
// and exhaustively matchable by the engine.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionDamage
	ActionAddStats
	ActionRemoveStats
	ActionSetStats
	ActionSwapStats // swap the target's attack and health
	ActionSummon
	ActionGainItem
	ActionGainExp
	ActionGainGold
)

func (a ActionKind) String() string {
	switch a {
	case ActionDamage:
		return "damage"
	case ActionAddStats:
		return "add stats"
	case ActionRemoveStats:
		return "remove stats"
	case ActionSetStats:
		return "set stats"
	case ActionSwapStats:
		return "swap stats"
	case ActionSummon:
		return "summon"
	case ActionGainItem:
		return "gain item"
	case ActionGainExp:
		return "gain exp"
	case ActionGainGold:
		return "gain gold"
	default:
		return "none"
	}
}

// Action is a tagged operation executed against each resolved target.
type Action struct {
	Kind   ActionKind
	Amount int   // damage points, experience, or gold
	Stats  Stats // add/remove/set payload

	// Summon parameters.
	SummonName  string
	SummonStats *Stats // nil = summoned pet's base stats
	SummonCount int    // 0 treated as 1

	ItemName string // for ActionGainItem
}

// Effect is a trigger subscription attached to a pet or item: when an
// event of the subscribed kind (and matching scope) is dispatched, the
// selector resolves targets and the action executes against them.
type Effect struct {
	Name     string // owning entity's name, for log attribution
	Trigger  log.EventType
	Scope    Scope
	Selector Selector
	Action   Action

	// Uses, when non-nil, counts remaining activations. At zero the effect
	// is inert and pruned at the next cleanup point.
	Uses *int

	// Temporary effects are stripped at the end of the phase that
	// attached them.
	Temporary bool

	addedPhase Phase // set by the engine when a temporary effect attaches
	fromItem   bool  // effect granted by a held item
}

// Uses builds a remaining-uses counter for effect literals.
func Uses(n int) *int {
	return &n
}

// Exhausted reports whether the effect has no activations left.
func (e *Effect) Exhausted() bool {
	return e.Uses != nil && *e.Uses <= 0
}

// consumeUse decrements the remaining-uses counter, never below zero.
func (e *Effect) consumeUse() {
	if e.Uses == nil {
		return
	}
	if *e.Uses > 0 {
		*e.Uses--
	}
}

// clone deep-copies the effect so instances never share a uses counter.
func (e Effect) clone() Effect {
	if e.Uses != nil {
		n := *e.Uses
		e.Uses = &n
	}
	if e.Action.SummonStats != nil {
		s := *e.Action.SummonStats
		e.Action.SummonStats = &s
	}
	return e
}
