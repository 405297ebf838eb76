package types

// Weather describes the current weather, which gates event eligibility
// and drives a handful of price modifiers.
type Weather string

const (
	WeatherSunny  Weather = "sunny"
	WeatherRainy  Weather = "rainy"
	WeatherStormy Weather = "stormy"
	WeatherWindy  Weather = "windy"
	WeatherFoggy  Weather = "foggy"
)

// AllWeathers lists every valid weather value.
var AllWeathers = []Weather{
	WeatherSunny,
	WeatherRainy,
	WeatherStormy,
	WeatherWindy,
	WeatherFoggy,
}

// Location is a map node the player can travel to. DangerLevel runs 1-10
// and controls the probability of a combat encounter during travel.
type Location struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`
	DangerLevel int    `json:"danger_level" yaml:"danger_level"`
}

// GameState is the sole unit of save/load. It is never mutated in place:
// every transition produces a fresh value (see Clone).
type GameState struct {
	Day          int            `json:"day"`
	Cash         int            `json:"cash"`
	Debt         int            `json:"debt"`
	Health       int            `json:"health"`
	Strength     int            `json:"strength"`
	Agility      int            `json:"agility"`
	Intelligence int            `json:"intelligence"`
	Location     Location       `json:"location"`
	Inventory    map[string]int `json:"inventory"`
	Prices       map[string]int `json:"prices"`
	Weather      Weather        `json:"weather"`

	// CurrentEvent names the unresolved multi-step event and CurrentStep
	// indexes into its steps. Both are set or both are nil, never one
	// without the other.
	CurrentEvent *string `json:"current_event,omitempty"`
	CurrentStep  *int    `json:"current_step,omitempty"`

	// LastSave is stamped by the persistence layer on save (RFC 3339).
	LastSave   string `json:"last_save,omitempty"`
	PlayerName string `json:"player_name,omitempty"`
}

// Clone returns a deep copy of the state. Inventory and price maps are
// copied so transforms on the clone never leak into the original.
func (s GameState) Clone() GameState {
	out := s
	out.Inventory = make(map[string]int, len(s.Inventory))
	for k, v := range s.Inventory {
		out.Inventory[k] = v
	}
	out.Prices = make(map[string]int, len(s.Prices))
	for k, v := range s.Prices {
		out.Prices[k] = v
	}
	if s.CurrentEvent != nil {
		name := *s.CurrentEvent
		out.CurrentEvent = &name
	}
	if s.CurrentStep != nil {
		step := *s.CurrentStep
		out.CurrentStep = &step
	}
	return out
}

// InEvent reports whether a multi-step event is awaiting a choice.
func (s GameState) InEvent() bool {
	return s.CurrentEvent != nil && s.CurrentStep != nil
}

// Valid performs the structural check used by the self-healing load path.
func (s GameState) Valid() bool {
	if s.Day < 0 || s.Health < 0 || s.Health > 100 || s.Debt < 0 {
		return false
	}
	if s.Inventory == nil || s.Prices == nil {
		return false
	}
	for _, qty := range s.Inventory {
		if qty < 0 {
			return false
		}
	}
	// The event pointers travel as a pair.
	if (s.CurrentEvent == nil) != (s.CurrentStep == nil) {
		return false
	}
	return s.Location.Name != ""
}

// Enemy is a combat opponent generated per encounter.
type Enemy struct {
	Name         string `json:"name"`
	Health       int    `json:"health"`
	Strength     int    `json:"strength"`
	Agility      int    `json:"agility"`
	Intelligence int    `json:"intelligence"`
}

// CombatResult carries the only player fields combat may change. Attribute
// boosts from defending or potions are deliberately absent: they last for
// the battle and are discarded with it.
type CombatResult struct {
	Health    int            `json:"health"`
	Cash      int            `json:"cash"`
	Inventory map[string]int `json:"inventory"`
	Message   string         `json:"message"`
	Won       bool           `json:"won"`
}
