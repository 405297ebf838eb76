package game

import (
	"math/rand"

	"github.com/user/potion-wars/config"
	"github.com/user/potion-wars/internal/types"
)

// Action is the tagged union of every state transition the core accepts.
type Action interface {
	isAction()
}

// BrewPotionAction buys and brews Quantity potions at the current price.
type BrewPotionAction struct {
	Potion   string
	Quantity int
}

// SellPotionAction sells Quantity potions from the inventory.
type SellPotionAction struct {
	Potion   string
	Quantity int
}

// TravelAction relocates the player, rerolls prices and runs the one
// authoritative encounter roll.
type TravelAction struct {
	Location string
}

// RepayDebtAction pays Amount toward the outstanding debt.
type RepayDebtAction struct {
	Amount int
}

// AdvanceDayAction moves to the next day, optionally rolling an event and
// applying debt interest.
type AdvanceDayAction struct {
	TriggerEvent bool
	TriggerDebt  bool
}

// UpdateWeatherAction sets the weather explicitly, or rolls it when
// Weather is empty.
type UpdateWeatherAction struct {
	Weather types.Weather
}

// TriggerEventAction forces an immediate event roll outside day
// advancement.
type TriggerEventAction struct{}

// EventChoiceAction answers the current step of an open multi-step event.
type EventChoiceAction struct {
	Choice int
}

// NewGameAction discards the current state and starts over.
type NewGameAction struct{}

func (BrewPotionAction) isAction()    {}
func (SellPotionAction) isAction()    {}
func (TravelAction) isAction()        {}
func (RepayDebtAction) isAction()     {}
func (AdvanceDayAction) isAction()    {}
func (UpdateWeatherAction) isAction() {}
func (TriggerEventAction) isAction()  {}
func (EventChoiceAction) isAction()   {}
func (NewGameAction) isAction()       {}

// Result describes the user-visible outcome of a reduced action.
type Result struct {
	Message string
	Type    types.MessageType
}

// Engine bundles the world catalog, the event registry, the game
// configuration and a random source into the single dispatch point for
// state transitions. It holds no game state itself.
type Engine struct {
	cfg     config.GameConfig
	catalog Catalog
	events  *Registry
	rng     *rand.Rand
}

// NewEngine builds an engine. A nil registry gets the default event
// tables.
func NewEngine(cfg config.GameConfig, catalog Catalog, events *Registry, rng *rand.Rand) *Engine {
	if events == nil {
		events = DefaultRegistry()
	}
	return &Engine{cfg: cfg, catalog: catalog, events: events, rng: rng}
}

// Catalog exposes the engine's world data for selectors and presentation.
func (e *Engine) Catalog() Catalog {
	return e.catalog
}

// Events exposes the engine's event registry.
func (e *Engine) Events() *Registry {
	return e.events
}

// MaxDays returns the configured day budget.
func (e *Engine) MaxDays() int {
	return e.cfg.MaxDays
}

// NewGame rolls a fresh state with the engine's configuration.
func (e *Engine) NewGame() types.GameState {
	return NewGame(e.cfg, e.catalog, e.rng)
}

// GameOver evaluates the end-of-game predicate with the configured day
// budget.
func (e *Engine) GameOver(state types.GameState) bool {
	return IsGameOver(state, e.cfg.MaxDays)
}

// Reduce applies one action and returns the next state. The input state
// is never modified; business-rule failures come back as an unchanged
// state plus an inline message.
func (e *Engine) Reduce(state types.GameState, action Action) (types.GameState, Result) {
	switch a := action.(type) {
	case BrewPotionAction:
		newState, message := BrewPotion(state, a.Potion, a.Quantity)
		return newState, Result{Message: message, Type: types.MessagePurchase}

	case SellPotionAction:
		newState, message := SellPotion(state, a.Potion, a.Quantity)
		return newState, Result{Message: message, Type: types.MessageSale}

	case TravelAction:
		newState, message := Travel(state, a.Location, e.catalog, e.rng)
		if newState.Location.Name != a.Location {
			// Invalid destination, nothing moved.
			return newState, Result{Message: message, Type: types.MessageInfo}
		}
		combatState, combatLog, fought := EncounterRoll(newState, e.catalog, e.rng, e.cfg.MaxCombatRounds)
		if fought {
			return combatState, Result{Message: message + "\n" + combatLog, Type: types.MessageCombat}
		}
		return newState, Result{Message: message, Type: types.MessageInfo}

	case RepayDebtAction:
		newState, message := RepayDebt(state, a.Amount)
		return newState, Result{Message: message, Type: types.MessageInfo}

	case AdvanceDayAction:
		opts := AdvanceDayOptions{
			TriggerEvent:        a.TriggerEvent,
			TriggerDebt:         a.TriggerDebt,
			DebtInterestPercent: e.cfg.DebtInterestPercent,
		}
		newState, message := AdvanceDay(state, opts, e.events, e.catalog, e.rng)
		if a.TriggerEvent {
			return newState, Result{Message: message, Type: types.MessageRandomEvent}
		}
		return newState, Result{Message: message, Type: types.MessageInfo}

	case UpdateWeatherAction:
		newState := state.Clone()
		if a.Weather == "" {
			newState.Weather = RollWeather(e.rng)
		} else {
			newState.Weather = a.Weather
		}
		return newState, Result{Message: "", Type: types.MessageInfo}

	case TriggerEventAction:
		newState, message, ok := TriggerRandomEvent(state, e.events, e.rng)
		if !ok {
			return state, Result{Message: "", Type: types.MessageInfo}
		}
		return newState, Result{Message: message, Type: types.MessageRandomEvent}

	case EventChoiceAction:
		newState, message := HandleEventChoice(state, e.events, a.Choice, e.rng)
		return newState, Result{Message: message, Type: types.MessageRandomEvent}

	case NewGameAction:
		return e.NewGame(), Result{Message: "A new venture begins.", Type: types.MessageInfo}

	default:
		return state, Result{}
	}
}
