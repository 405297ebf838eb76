package game

import (
	"fmt"
	"math/rand"
	"sort"
	"strings"

	"github.com/user/potion-wars/internal/types"
)

// Combatant is the minimal view of either side used by the damage roll.
type Combatant struct {
	Strength int
	Agility  int
}

// GenerateEnemy rolls a random enemy archetype scaled to the player's
// level, which is floor((strength+agility+intelligence)/3) at encounter
// time.
func GenerateEnemy(playerLevel int, catalog Catalog, rng *rand.Rand) types.Enemy {
	name := catalog.EnemyTypes[rng.Intn(len(catalog.EnemyTypes))]
	return types.Enemy{
		Name:         name,
		Health:       50 + rng.Intn(50) + playerLevel*5,
		Strength:     5 + rng.Intn(5) + playerLevel/2,
		Agility:      5 + rng.Intn(5) + playerLevel/2,
		Intelligence: 5 + rng.Intn(5) + playerLevel/2,
	}
}

// CalculateDamage resolves one strike. Hit chance starts at 50% and moves
// 5% per point of agility difference, clamped to [0,1] so extreme agility
// gaps cannot push it past certainty either way. A hit deals the
// attacker's strength, a miss deals nothing.
func CalculateDamage(attacker, defender Combatant, rng *rand.Rand) int {
	hitChance := 0.5 + float64(attacker.Agility-defender.Agility)*0.05
	if hitChance < 0 {
		hitChance = 0
	}
	if hitChance > 1 {
		hitChance = 1
	}
	if rng.Float64() < hitChance {
		return attacker.Strength
	}
	return 0
}

// ActivatePotion consumes one potion from the inventory and applies its
// battle effect. Unknown potions are rejected without consumption.
func ActivatePotion(state types.GameState, potionName string) (types.GameState, string) {
	if state.Inventory[potionName] <= 0 {
		return state, fmt.Sprintf("You don't have any %s to use!", potionName)
	}

	newState := state.Clone()
	var message string

	switch potionName {
	case "Health Potion":
		newState.Health += 30
		if newState.Health > 100 {
			newState.Health = 100
		}
		message = "You used a Health Potion and restored 30 health!"
	case "Strength Potion":
		newState.Strength += 5
		message = "You used a Strength Potion and gained 5 strength for this battle!"
	case "Agility Potion":
		newState.Agility += 5
		message = "You used an Agility Potion and gained 5 agility for this battle!"
	default:
		return state, fmt.Sprintf("%s cannot be used in combat!", potionName)
	}

	newState.Inventory[potionName]--
	return newState, message
}

// HandleCombat simulates a full encounter and returns the surviving
// health, cash and inventory plus a narrative log. Strength and agility
// gained mid-battle (defending, potions) are dropped with the result;
// only CombatResult's fields outlive the fight.
func HandleCombat(state types.GameState, catalog Catalog, rng *rand.Rand, maxRounds int) types.CombatResult {
	playerLevel := (state.Strength + state.Agility + state.Intelligence) / 3
	enemy := GenerateEnemy(playerLevel, catalog, rng)

	var log strings.Builder
	fmt.Fprintf(&log, "You've encountered a %s!\n", enemy.Name)

	current := state.Clone()
	round := 0

	for current.Health > 0 && enemy.Health > 0 && round < maxRounds {
		round++
		fmt.Fprintf(&log, "\nRound %d:\n", round)

		switch playerAction(rng) {
		case "attack":
			damage := CalculateDamage(
				Combatant{Strength: current.Strength, Agility: current.Agility},
				Combatant{Strength: enemy.Strength, Agility: enemy.Agility},
				rng,
			)
			enemy.Health -= damage
			fmt.Fprintf(&log, "You attack and deal %d damage.\n", damage)

		case "defend":
			current.Agility += 2
			log.WriteString("You take a defensive stance, increasing your agility by 2.\n")

		case "use_potion":
			potions := heldPotions(current.Inventory)
			if len(potions) == 0 {
				log.WriteString("You try to use a potion, but you don't have any!\n")
				break
			}
			chosen := potions[rng.Intn(len(potions))]
			next, potionMessage := ActivatePotion(current, chosen)
			current = next
			log.WriteString(potionMessage + "\n")
		}

		if enemy.Health <= 0 {
			break
		}

		enemyDamage := CalculateDamage(
			Combatant{Strength: enemy.Strength, Agility: enemy.Agility},
			Combatant{Strength: current.Strength, Agility: current.Agility},
			rng,
		)
		current.Health -= enemyDamage
		fmt.Fprintf(&log, "%s attacks and deals %d damage.\n", enemy.Name, enemyDamage)
	}

	won := current.Health > 0
	if !won {
		fmt.Fprintf(&log, "\nYou were defeated by the %s!", enemy.Name)
		cashLost := current.Cash * 20 / 100
		current.Cash -= cashLost
		for potion, quantity := range current.Inventory {
			current.Inventory[potion] = quantity - quantity*30/100
		}
		fmt.Fprintf(&log, " You lost %d gold and some potions.", cashLost)
	} else {
		fmt.Fprintf(&log, "\nYou defeated the %s!", enemy.Name)
		goldGained := rng.Intn(100) + 50
		current.Cash += goldGained
		fmt.Fprintf(&log, " You gained %d gold.", goldGained)
	}

	if current.Health < 0 {
		current.Health = 0
	}

	return types.CombatResult{
		Health:    current.Health,
		Cash:      current.Cash,
		Inventory: current.Inventory,
		Message:   log.String(),
		Won:       won,
	}
}

// playerAction picks the player's move: ~70% attack, ~15% defend,
// ~15% use a potion.
func playerAction(rng *rand.Rand) string {
	if rng.Float64() < 0.7 {
		return "attack"
	}
	if rng.Float64() < 0.5 {
		return "defend"
	}
	return "use_potion"
}

// heldPotions lists inventory items usable in combat, in a stable order
// so a seeded rng picks deterministically.
func heldPotions(inventory map[string]int) []string {
	names := make([]string, 0, len(inventory))
	for name, quantity := range inventory {
		if quantity > 0 && strings.Contains(name, "Potion") {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
