package game

import (
	"sort"

	"github.com/user/potion-wars/internal/types"
)

// Selectors are pure read-only projections over GameState for the
// presentation layer. None of them modify state or touch I/O.

// PriceEntry is one row of the sorted price list.
type PriceEntry struct {
	Name  string
	Price int
}

// SelectPriceList returns the current prices sorted by potion name.
func SelectPriceList(state types.GameState) []PriceEntry {
	entries := make([]PriceEntry, 0, len(state.Prices))
	for name, price := range state.Prices {
		entries = append(entries, PriceEntry{Name: name, Price: price})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// SelectItemQuantity returns the held count for an item, zero when the
// item is unknown.
func SelectItemQuantity(state types.GameState, item string) int {
	return state.Inventory[item]
}

// SelectItemPrice returns the current price for an item, zero when the
// item is unknown.
func SelectItemPrice(state types.GameState, item string) int {
	return state.Prices[item]
}

// SelectMaxAffordableQuantity returns how many of an item the current
// cash can buy.
func SelectMaxAffordableQuantity(state types.GameState, item string) int {
	price := state.Prices[item]
	if price <= 0 {
		return 0
	}
	return state.Cash / price
}

// InventoryEntry is one held item with its quantity.
type InventoryEntry struct {
	Name     string
	Quantity int
}

// SelectSellableItems returns held items with a positive count, sorted by
// name.
func SelectSellableItems(state types.GameState) []InventoryEntry {
	entries := make([]InventoryEntry, 0, len(state.Inventory))
	for name, quantity := range state.Inventory {
		if quantity > 0 {
			entries = append(entries, InventoryEntry{Name: name, Quantity: quantity})
		}
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// SelectMaxRepayableAmount returns the largest debt payment the player
// can make right now.
func SelectMaxRepayableAmount(state types.GameState) int {
	if state.Cash < state.Debt {
		return state.Cash
	}
	return state.Debt
}

// SelectTotalCost prices a prospective purchase.
func SelectTotalCost(state types.GameState, item string, quantity int) int {
	return state.Prices[item] * quantity
}

// DayInfo summarizes calendar progress for display.
type DayInfo struct {
	Current  int
	Total    int
	Progress float64
}

// SelectDayInfo returns the day counter against the given day budget.
func SelectDayInfo(state types.GameState, maxDays int) DayInfo {
	progress := 0.0
	if maxDays > 0 {
		progress = float64(state.Day) / float64(maxDays) * 100
	}
	return DayInfo{Current: state.Day, Total: maxDays, Progress: progress}
}

// SelectCurrentStep resolves the open multi-step event's current step, if
// any.
func SelectCurrentStep(state types.GameState, reg *Registry) (EventStep, bool) {
	if !state.InEvent() {
		return EventStep{}, false
	}
	event, ok := reg.Find(*state.CurrentEvent)
	if !ok || *state.CurrentStep >= len(event.Steps) {
		return EventStep{}, false
	}
	return event.Steps[*state.CurrentStep], true
}
