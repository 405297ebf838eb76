package game

import (
	"fmt"
	"os"

	"github.com/user/potion-wars/internal/types"
	"gopkg.in/yaml.v3"
)

// Potion is a catalog entry: a brewable commodity with its price bounds.
type Potion struct {
	Name     string `yaml:"name" json:"name"`
	MinPrice int    `yaml:"min_price" json:"min_price"`
	MaxPrice int    `yaml:"max_price" json:"max_price"`
}

// Catalog holds the static world data: map nodes, the commodity list,
// enemy archetypes and flavor lines. It is constructed explicitly and
// passed in wherever needed, never kept as package state.
type Catalog struct {
	Locations     []types.Location `yaml:"locations" json:"locations"`
	Potions       []Potion         `yaml:"potions" json:"potions"`
	EnemyTypes    []string         `yaml:"enemy_types" json:"enemy_types"`
	NewDayClosers []string         `yaml:"new_day_closers" json:"new_day_closers"`
}

// DefaultCatalog returns the built-in world data.
func DefaultCatalog() Catalog {
	return Catalog{
		Locations: []types.Location{
			{
				Name:        "Alchemist's Quarter",
				Description: "Narrow lanes crowded with bubbling cauldrons and rival brewers.",
				DangerLevel: 1,
			},
			{
				Name:        "Merchant's District",
				Description: "Stalls and counting houses where every potion has a price.",
				DangerLevel: 3,
			},
			{
				Name:        "Royal Castle",
				Description: "Marble halls where nobles pay dearly and guards watch closely.",
				DangerLevel: 2,
			},
			{
				Name:        "Harbor District",
				Description: "Smugglers, sailors and salt air. Good deals, rough company.",
				DangerLevel: 5,
			},
			{
				Name:        "The Slums",
				Description: "Desperate buyers and cutpurses share the same muddy streets.",
				DangerLevel: 7,
			},
			{
				Name:        "Dark Forest",
				Description: "Rare ingredients grow here, guarded by things best avoided.",
				DangerLevel: 9,
			},
		},
		Potions: []Potion{
			{Name: "Elixir of Immortality", MinPrice: 15000, MaxPrice: 29000},
			{Name: "Dragon's Breath", MinPrice: 5000, MaxPrice: 13000},
			{Name: "Invisibility Potion", MinPrice: 1000, MaxPrice: 4400},
			{Name: "Health Potion", MinPrice: 300, MaxPrice: 900},
			{Name: "Strength Potion", MinPrice: 70, MaxPrice: 250},
			{Name: "Agility Potion", MinPrice: 10, MaxPrice: 60},
		},
		EnemyTypes: []string{
			"Royal Guard",
			"Rival Alchemist",
			"Bandit",
			"Corrupt Merchant",
		},
		NewDayClosers: []string{
			"The cauldron calls.",
			"Another chance to turn herbs into gold.",
			"Your creditor is counting the days too.",
			"The market waits for no one.",
			"Fresh ingredients, fresh prices.",
		},
	}
}

// LoadCatalog reads a world catalog from a YAML file. A missing path
// returns the built-in defaults.
func LoadCatalog(path string) (Catalog, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultCatalog(), nil
		}
		return Catalog{}, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return Catalog{}, fmt.Errorf("failed to parse catalog data: %w", err)
	}
	if err := catalog.Validate(); err != nil {
		return Catalog{}, fmt.Errorf("invalid catalog %s: %w", path, err)
	}

	return catalog, nil
}

// Validate checks the catalog is usable: at least one location and potion,
// sane price bounds and danger levels.
func (c Catalog) Validate() error {
	if len(c.Locations) == 0 {
		return fmt.Errorf("catalog has no locations")
	}
	if len(c.Potions) == 0 {
		return fmt.Errorf("catalog has no potions")
	}
	for _, loc := range c.Locations {
		if loc.DangerLevel < 1 || loc.DangerLevel > 10 {
			return fmt.Errorf("location %q: danger level %d out of range 1-10", loc.Name, loc.DangerLevel)
		}
	}
	for _, p := range c.Potions {
		if p.MinPrice <= 0 || p.MaxPrice < p.MinPrice {
			return fmt.Errorf("potion %q: bad price bounds [%d,%d]", p.Name, p.MinPrice, p.MaxPrice)
		}
	}
	return nil
}

// FindLocation looks up a location by name.
func (c Catalog) FindLocation(name string) (types.Location, bool) {
	for _, loc := range c.Locations {
		if loc.Name == name {
			return loc, true
		}
	}
	return types.Location{}, false
}
