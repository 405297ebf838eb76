package game

import (
	"fmt"
	"math/rand"

	"github.com/user/potion-wars/internal/types"
)

// StandardEvents returns the base narrative event table.
func StandardEvents() []Event {
	return []Event{
		{
			Name:        "Royal Inspection",
			Description: "The royal guards inspect your potions! You lose half of your inventory.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, amount := range newState.Inventory {
					newState.Inventory[potion] = amount / 2
				}
				return newState, ""
			},
			Probability: 0.1,
			Type:        EventNegative,
		},
		{
			Name:        "Ingredient Shortage",
			Description: "There's a shortage of potion ingredients! Prices double for the day.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					newState.Prices[potion] = price * 2
				}
				return newState, ""
			},
			Probability: 0.2,
			Type:        EventNegative,
		},
		{
			Name:        "Lucky Find",
			Description: "You found a rare ingredient! Gain 1000 gold.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				newState.Cash += 1000
				return newState, ""
			},
			Probability: 0.15,
			Type:        EventPositive,
		},
		{
			Name:        "Alchemist Rivalry",
			Description: "A rivalry between alchemists breaks out! Prices are volatile and danger increases.",
			Effect: func(state types.GameState, rng *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					if rng.Float64() < 0.5 {
						newState.Prices[potion] = price / 2
					} else {
						newState.Prices[potion] = price * 3 / 2
					}
				}
				newState.Location.DangerLevel = min(newState.Location.DangerLevel+2, 10)
				return newState, ""
			},
			Probability: 0.1,
			Type:        EventNeutral,
			Locations:   []string{"Alchemist's Quarter", "Merchant's District"},
		},
		{
			Name:        "Royal Decree",
			Description: "A royal decree increases demand for potions! Nobles are desperate for your concoctions.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					newState.Prices[potion] = price * 9 / 5
				}
				return newState, ""
			},
			Probability: 0.1,
			Type:        EventPositive,
			Locations:   []string{"Royal Castle"},
		},
		{
			Name:        "Potion Brewing Contest",
			Description: "The local alchemist guild is hosting a potion brewing contest!",
			Effect: func(state types.GameState, rng *rand.Rand) (types.GameState, string) {
				reward := rng.Intn(500) + 500
				newState := state.Clone()
				newState.Cash += reward
				return newState, fmt.Sprintf("You won %d gold!", reward)
			},
			Probability: 0.1,
			Type:        EventPositive,
			Locations:   []string{"Alchemist's Quarter"},
		},
		{
			Name:        "Market Crash",
			Description: "The potion market has suddenly crashed!",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					newState.Prices[potion] = price / 2
				}
				return newState, ""
			},
			Probability: 0.05,
			Type:        EventNegative,
			Days:        &DayRange{First: 10, Last: 30},
		},
		{
			Name:        "Mysterious Stranger",
			Description: "A cloaked figure approaches you with an intriguing offer...",
			Steps: []EventStep{
				{
					Description: "The stranger offers to teach you a rare potion recipe for 1000 gold. Do you accept?",
					Choices: []Choice{
						{
							Text: "Accept the offer",
							Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
								if state.Cash < 1000 {
									return state, "You don't have enough gold!"
								}
								newState := state.Clone()
								newState.Cash -= 1000
								newState.Inventory["Rare Potion"]++
								return newState, "You learned how to brew a Rare Potion!"
							},
						},
						{
							Text: "Decline the offer",
							Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
								return state, "You politely decline the offer."
							},
						},
					},
				},
			},
			Probability: 0.1,
			Type:        EventNeutral,
		},
		{
			Name:        "Royal Wedding",
			Description: "The royal family is preparing for a grand wedding!",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					newState.Prices[potion] = price * 3 / 2
				}
				return newState, "Potion prices have increased due to high demand!"
			},
			Probability: 0.05,
			Type:        EventPositive,
			Locations:   []string{"Royal Castle"},
			Days:        &DayRange{First: 15, Last: 15},
		},
		{
			Name:        "Potion Explosion",
			Description: "One of your potions has become unstable!",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				lostGold := newState.Cash / 10
				newState.Cash -= lostGold
				newState.Health = max(newState.Health-10, 0)
				return newState, fmt.Sprintf("Your potion exploded! You lost %d gold and 10 health.", lostGold)
			},
			Probability: 0.1,
			Type:        EventNegative,
		},
		{
			Name:        "Alchemist Convention",
			Description: "The annual Alchemist Convention is in town!",
			Steps: []EventStep{
				{
					Description: "You can attend workshops to improve your skills. Which one do you choose?",
					Choices: []Choice{
						{
							Text: "Brewing Efficiency (Increases gold)",
							Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
								newState := state.Clone()
								newState.Cash += 300
								return newState, "You learned how to brew potions more efficiently!"
							},
						},
						{
							Text: "Advanced Techniques (Increases health)",
							Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
								newState := state.Clone()
								newState.Health = min(newState.Health+20, 100)
								return newState, "You learned advanced brewing techniques, improving your health!"
							},
						},
						{
							Text: "Rare Ingredients (New inventory item)",
							Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
								newState := state.Clone()
								newState.Inventory["Exotic Herb"] += 5
								return newState, "You received 5 Exotic Herbs!"
							},
						},
					},
				},
			},
			Probability: 0.1,
			Type:        EventPositive,
			Locations:   []string{"Alchemist's Quarter"},
			Days:        &DayRange{First: 5, Last: 25},
		},
	}
}

// WeatherEvents returns the weather-gated event table.
func WeatherEvents() []Event {
	return []Event{
		{
			Name:        "Sunny Day",
			Description: "The sun is shining brightly, boosting potion potency.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					newState.Prices[potion] = price * 11 / 10
				}
				return newState, ""
			},
			Probability: 0.3,
			Type:        EventPositive,
			Weather:     []types.Weather{types.WeatherSunny},
		},
		{
			Name:        "Rainy Day",
			Description: "The rain is making it difficult to brew potions outdoors.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				for potion, price := range newState.Prices {
					newState.Prices[potion] = price * 9 / 10
				}
				return newState, ""
			},
			Probability: 0.2,
			Type:        EventNegative,
			Weather:     []types.Weather{types.WeatherRainy},
		},
		{
			Name:        "Stormy Weather",
			Description: "A fierce storm is raging, making travel dangerous.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				newState.Weather = types.WeatherStormy
				newState.Location.DangerLevel = min(newState.Location.DangerLevel+3, 10)
				return newState, ""
			},
			Probability: 0.1,
			Type:        EventNegative,
			Weather:     []types.Weather{types.WeatherStormy},
		},
		{
			Name:        "Windy Day",
			Description: "Strong winds are spreading potion fumes far and wide.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				newState.Cash += 200
				return newState, ""
			},
			Probability: 0.2,
			Type:        EventPositive,
			Weather:     []types.Weather{types.WeatherWindy},
		},
		{
			Name:        "Foggy Morning",
			Description: "A thick fog has settled, making it hard to see.",
			Effect: func(state types.GameState, _ *rand.Rand) (types.GameState, string) {
				newState := state.Clone()
				newState.Location.DangerLevel = max(newState.Location.DangerLevel-1, 1)
				return newState, ""
			},
			Probability: 0.2,
			Type:        EventNeutral,
			Weather:     []types.Weather{types.WeatherFoggy},
		},
	}
}
