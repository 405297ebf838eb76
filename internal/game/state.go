package game

import (
	"math/rand"

	"github.com/user/potion-wars/config"
	"github.com/user/potion-wars/internal/types"
)

// NewGame rolls a fresh game state: configured cash and debt, full
// health, attributes in [5,10), a random starting location and an initial
// price sheet. Day 0 marks the start; the first day advance sets day 1.
func NewGame(cfg config.GameConfig, catalog Catalog, rng *rand.Rand) types.GameState {
	location := catalog.Locations[rng.Intn(len(catalog.Locations))]
	return types.GameState{
		Day:          0,
		Cash:         cfg.StartingCash,
		Debt:         cfg.StartingDebt,
		Health:       cfg.StartingHealth,
		Strength:     5 + rng.Intn(5),
		Agility:      5 + rng.Intn(5),
		Intelligence: 5 + rng.Intn(5),
		Location:     location,
		Inventory:    map[string]int{},
		Prices:       GeneratePrices(catalog, rng),
		Weather:      types.WeatherSunny,
	}
}
