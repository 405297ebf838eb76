package game

import (
	"fmt"
	"math/rand"

	"github.com/user/potion-wars/internal/types"
)

// GeneratePrices rolls a fresh price for every catalog potion, uniformly
// within its inclusive [min, max] bounds. Prices are independent per
// potion; traveling is the only caller that rerolls them.
func GeneratePrices(catalog Catalog, rng *rand.Rand) map[string]int {
	prices := make(map[string]int, len(catalog.Potions))
	for _, potion := range catalog.Potions {
		prices[potion.Name] = rng.Intn(potion.MaxPrice-potion.MinPrice+1) + potion.MinPrice
	}
	return prices
}

// RepayDebt pays down outstanding debt. Business-rule failures return the
// state unchanged with an explanatory message, never an error.
func RepayDebt(state types.GameState, amount int) (types.GameState, string) {
	if amount <= 0 {
		return state, "You can't repay that amount!"
	}
	if amount > state.Cash {
		return state, "You don't have enough gold to repay that much!"
	}
	if amount > state.Debt {
		return state, "You're trying to repay more than you owe!"
	}

	newState := state.Clone()
	newState.Cash -= amount
	newState.Debt -= amount
	return newState, fmt.Sprintf("Repaid %d gold of debt.", amount)
}

// BrewPotion buys ingredients and brews quantity potions at the current
// price, spending cash and adding to the inventory.
func BrewPotion(state types.GameState, potionName string, quantity int) (types.GameState, string) {
	if quantity <= 0 {
		return state, "You can't brew that amount!"
	}
	price, ok := state.Prices[potionName]
	if !ok {
		return state, "Price is not available for this potion!"
	}

	totalCost := price * quantity
	if totalCost > state.Cash {
		return state, "You don't have enough gold!"
	}

	newState := state.Clone()
	newState.Cash -= totalCost
	newState.Inventory[potionName] += quantity
	return newState, fmt.Sprintf("Brewed %d %s for %d gold", quantity, potionName, totalCost)
}

// SellPotion sells quantity potions from the inventory at the current
// price, adding the proceeds to cash.
func SellPotion(state types.GameState, potionName string, quantity int) (types.GameState, string) {
	if state.Inventory[potionName] < quantity || quantity <= 0 {
		return state, "You don't have enough to sell!"
	}

	price, ok := state.Prices[potionName]
	if !ok {
		return state, "Price is not available for this potion!"
	}

	totalEarned := price * quantity

	newState := state.Clone()
	newState.Cash += totalEarned
	newState.Inventory[potionName] -= quantity
	return newState, fmt.Sprintf("Sold %d %s for %d gold", quantity, potionName, totalEarned)
}
