package log

import (
	"fmt"
	"io"
	"strings"
)

// EventLogger is the interface for recording game events.
type EventLogger interface {
	Log(event Event)
	Events() []Event
}

// --- MemoryLogger: stores events in memory for test assertions ---

type MemoryLogger struct {
	events []Event
	seq    int
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(event Event) {
	l.seq++
	event.Seq = l.seq
	l.events = append(l.events, event)
}

func (l *MemoryLogger) Events() []Event {
	return l.events
}

// EventsOfType returns all events matching the given type.
func (l *MemoryLogger) EventsOfType(t EventType) []Event {
	var result []Event
	for _, e := range l.events {
		if e.Type == t {
			result = append(result, e)
		}
	}
	return result
}

// LastEvent returns the most recent event, or a zero event if none.
func (l *MemoryLogger) LastEvent() Event {
	if len(l.events) == 0 {
		return Event{}
	}
	return l.events[len(l.events)-1]
}

// --- TextLogger: writes human-readable lines to an io.Writer ---

type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(event Event) {
	l.MemoryLogger.Log(event)
	fmt.Fprintln(l.w, FormatEvent(event))
}

// --- Formatting ---

// SideName returns "A" or "B" for display.
func SideName(side int) string {
	if side == 0 {
		return "A"
	}
	return "B"
}

// FormatEvent formats a single event as a human-readable line.
func FormatEvent(e Event) string {
	phase := e.Phase
	if phase == "" {
		phase = "          "
	}
	// Pad phase to 16 chars for alignment
	for len(phase) < 16 {
		phase += " "
	}

	return fmt.Sprintf("T%-2d %s| %s", e.Turn, phase, e.Details)
}

// FormatAll formats all events as a multi-line string.
func FormatAll(events []Event) string {
	var sb strings.Builder
	for _, e := range events {
		sb.WriteString(FormatEvent(e))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// --- Helper constructors for common events ---

func NewPhaseChangeEvent(turn int, phase string) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Type:    EventPhaseChange,
		Details: fmt.Sprintf("Phase → %s", phase),
	}
}

func NewTurnEvent(turn int) Event {
	return Event{
		Turn:    turn,
		Phase:   "Turn Start",
		Type:    EventTurnStart,
		Details: fmt.Sprintf("=== Turn %d ===", turn),
	}
}

func NewAttackEvent(turn int, side int, attacker, defender string, damage int) Event {
	return Event{
		Turn:    turn,
		Phase:   "Attack",
		Side:    side,
		Type:    EventAttack,
		Pet:     attacker,
		Details: fmt.Sprintf("%s (%s) attacks %s for %d", attacker, SideName(side), defender, damage),
	}
}

func NewHurtEvent(turn int, phase string, side int, pet string, damage int, health int) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventHurt,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s) hurt for %d (health %d)", pet, SideName(side), damage, health),
	}
}

func NewFaintEvent(turn int, phase string, side int, pet string, pos int) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventFaint,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s%d) faints", pet, SideName(side), pos),
	}
}

func NewSummonEvent(turn int, phase string, side int, pet string, attack, health, pos int) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventSummon,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%d/%d) summoned at %s%d", pet, attack, health, SideName(side), pos),
	}
}

func NewStatChangeEvent(turn int, phase string, side int, pet string, attack, health int, source string) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventStatChange,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s) now %d/%d (%s)", pet, SideName(side), attack, health, source),
	}
}

func NewStatSwapEvent(turn int, phase string, side int, pet string, attack, health int, source string) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventStatSwap,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s) swapped to %d/%d (%s)", pet, SideName(side), attack, health, source),
	}
}

func NewLevelUpEvent(turn int, phase string, side int, pet string, level int) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventLevelUp,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s) reaches level %d", pet, SideName(side), level),
	}
}

func NewItemGivenEvent(turn int, phase string, side int, pet string, item string) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventItemGiven,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s) holds %s", pet, SideName(side), item),
	}
}

func NewGoldChangeEvent(turn int, phase string, side int, delta, total int, source string) Event {
	return Event{
		Turn:    turn,
		Phase:   phase,
		Side:    side,
		Type:    EventGoldChange,
		Details: fmt.Sprintf("%s gold %+d → %d (%s)", SideName(side), delta, total, source),
	}
}

func NewBuyPetEvent(turn int, side int, pet string, cost, pos int) Event {
	return Event{
		Turn:    turn,
		Phase:   "Shop",
		Side:    side,
		Type:    EventBuyPet,
		Pet:     pet,
		Details: fmt.Sprintf("%s buys %s for %d → slot %d", SideName(side), pet, cost, pos),
	}
}

func NewBuyFoodEvent(turn int, side int, food string, cost int, pet string) Event {
	return Event{
		Turn:    turn,
		Phase:   "Shop",
		Side:    side,
		Type:    EventBuyFood,
		Pet:     pet,
		Details: fmt.Sprintf("%s buys %s for %d → %s", SideName(side), food, cost, pet),
	}
}

func NewAteFoodEvent(turn int, side int, pet string, food string) Event {
	return Event{
		Turn:    turn,
		Phase:   "Shop",
		Side:    side,
		Type:    EventAteFood,
		Pet:     pet,
		Details: fmt.Sprintf("%s (%s) eats %s", pet, SideName(side), food),
	}
}

func NewSellEvent(turn int, side int, pet string, refund int) Event {
	return Event{
		Turn:    turn,
		Phase:   "Shop",
		Side:    side,
		Type:    EventSell,
		Pet:     pet,
		Details: fmt.Sprintf("%s sells %s for %d", SideName(side), pet, refund),
	}
}

func NewRollEvent(turn int, side int, rollCount int) Event {
	return Event{
		Turn:    turn,
		Phase:   "Shop",
		Side:    side,
		Type:    EventRoll,
		Details: fmt.Sprintf("%s rolls the shop (roll #%d)", SideName(side), rollCount),
	}
}

func NewResultEvent(turn int, result string) Event {
	return Event{
		Turn:    turn,
		Phase:   "Battle End",
		Type:    EventResult,
		Details: result,
	}
}
