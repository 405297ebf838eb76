package game

import (
	"fmt"
	"math/rand"

	"github.com/user/potion-wars/internal/types"
)

// Travel moves the player to the named location and rerolls every price.
// Traveling is the only price-refresh trigger in the game.
func Travel(state types.GameState, destination string, catalog Catalog, rng *rand.Rand) (types.GameState, string) {
	location, ok := catalog.FindLocation(destination)
	if !ok {
		return state, "Invalid location!"
	}

	newState := state.Clone()
	newState.Location = location
	newState.Prices = GeneratePrices(catalog, rng)
	return newState, fmt.Sprintf("Traveled to %s. %s", location.Name, location.Description)
}

// EncounterRoll is the single authoritative combat trigger. It rolls once
// against dangerLevel/20 (5%-50% across danger 1-10) and, on an
// encounter, resolves the full combat. Callers merge only the
// CombatResult fields back into the state; nothing else re-rolls combat.
func EncounterRoll(state types.GameState, catalog Catalog, rng *rand.Rand, maxRounds int) (types.GameState, string, bool) {
	if rng.Float64() >= float64(state.Location.DangerLevel)/20 {
		return state, "", false
	}

	result := HandleCombat(state, catalog, rng, maxRounds)
	newState := state.Clone()
	newState.Health = result.Health
	newState.Cash = result.Cash
	newState.Inventory = result.Inventory
	return newState, result.Message, true
}

// AdvanceDayOptions selects the side effects of a day advance.
type AdvanceDayOptions struct {
	TriggerEvent bool
	TriggerDebt  bool
	// DebtInterestPercent is the daily compounding rate applied when
	// TriggerDebt is set.
	DebtInterestPercent int
}

// AdvanceDay moves the calendar forward one day. With TriggerEvent it
// delegates to the event system and merges the event message; otherwise a
// flavor closer narrates the morning. With TriggerDebt the outstanding
// debt compounds by the configured percent, floored.
func AdvanceDay(state types.GameState, opts AdvanceDayOptions, reg *Registry, catalog Catalog, rng *rand.Rand) (types.GameState, string) {
	newState := state.Clone()
	newState.Day++
	message := fmt.Sprintf("Day %d: ", newState.Day)

	fired := false
	if opts.TriggerEvent {
		eventState, eventMessage, ok := TriggerRandomEvent(newState, reg, rng)
		if ok {
			fired = true
			newState = eventState
			message += eventMessage
		}
	}
	if !fired {
		// Quiet day: no event rolled or none fired.
		closer := ""
		if len(catalog.NewDayClosers) > 0 {
			closer = catalog.NewDayClosers[rng.Intn(len(catalog.NewDayClosers))]
		}
		message += fmt.Sprintf("Another %s day here in the %s... %s", newState.Weather, newState.Location.Name, closer)
	}

	if opts.TriggerDebt && opts.DebtInterestPercent > 0 {
		newState.Debt = newState.Debt * (100 + opts.DebtInterestPercent) / 100
		message += fmt.Sprintf(" Your debt has increased to %dg due to interest.", newState.Debt)
	}

	return newState, message
}

// IsGameOver reports whether the run has ended: the day budget is spent,
// the player's health is gone, or they are broke with an empty inventory.
func IsGameOver(state types.GameState, maxDays int) bool {
	if state.Day > maxDays || state.Health <= 0 {
		return true
	}
	if state.Cash > 0 {
		return false
	}
	for _, quantity := range state.Inventory {
		if quantity > 0 {
			return false
		}
	}
	return true
}
