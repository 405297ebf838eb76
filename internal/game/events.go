package game

import (
	"math/rand"

	"github.com/user/potion-wars/internal/types"
)

// EventType labels an event's overall flavor for presentation.
type EventType string

const (
	EventPositive EventType = "positive"
	EventNeutral  EventType = "neutral"
	EventNegative EventType = "negative"
)

// EventEffect is a pure transform applied when an event (or a choice
// within one) fires. It must not perform I/O; randomness comes only from
// the supplied rng. The returned string is optional narrative text.
type EventEffect func(state types.GameState, rng *rand.Rand) (types.GameState, string)

// Choice is one selectable option within a multi-step event.
type Choice struct {
	Text   string
	Effect EventEffect
}

// EventStep is a single prompt in a multi-step event dialogue.
type EventStep struct {
	Description string
	Choices     []Choice
}

// DayRange restricts an event to a span of days, inclusive. First == Last
// pins the event to a single day.
type DayRange struct {
	First int
	Last  int
}

// Event is a randomized narrative event. Single-step events carry an
// Effect applied immediately on selection; events with Steps instead open
// an interactive dialogue resolved choice by choice. The eligibility
// filters (Locations, Weather, Days) are each "no constraint" when empty.
type Event struct {
	Name        string
	Description string
	Effect      EventEffect
	Steps       []EventStep
	Probability float64
	Type        EventType
	Locations   []string
	Weather     []types.Weather
	Days        *DayRange
}

// MultiStep reports whether the event resolves through a dialogue.
func (e Event) MultiStep() bool {
	return len(e.Steps) > 0
}

// Eligible reports whether every filter matches the given state.
func (e Event) Eligible(state types.GameState) bool {
	if len(e.Locations) > 0 {
		match := false
		for _, name := range e.Locations {
			if name == state.Location.Name {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	if len(e.Weather) > 0 {
		match := false
		for _, w := range e.Weather {
			if w == state.Weather {
				match = true
				break
			}
		}
		if !match {
			return false
		}
	}
	if e.Days != nil && (state.Day < e.Days.First || state.Day > e.Days.Last) {
		return false
	}
	return true
}

// Registry is the full set of events a game can roll. It is built
// explicitly so tests can substitute fixture tables.
type Registry struct {
	events []Event
	byName map[string]Event
}

// NewRegistry builds a registry from the given event tables.
func NewRegistry(tables ...[]Event) *Registry {
	reg := &Registry{byName: make(map[string]Event)}
	for _, table := range tables {
		for _, event := range table {
			reg.events = append(reg.events, event)
			reg.byName[event.Name] = event
		}
	}
	return reg
}

// DefaultRegistry returns the standard and weather event tables combined.
func DefaultRegistry() *Registry {
	return NewRegistry(StandardEvents(), WeatherEvents())
}

// Find looks an event up by name.
func (r *Registry) Find(name string) (Event, bool) {
	event, ok := r.byName[name]
	return event, ok
}

// Events returns the registered events in registration order.
func (r *Registry) Events() []Event {
	return r.events
}

// SelectEvent runs the roulette over the eligible events for a given
// draw. Probabilities are not normalised: when the eligible
// probabilities sum below the draw nothing is selected. Exposed
// separately so selection determinism is directly testable.
func SelectEvent(eligible []Event, draw float64) (Event, bool) {
	remaining := draw
	for _, event := range eligible {
		remaining -= event.Probability
		if remaining <= 0 {
			return event, true
		}
	}
	return Event{}, false
}

// TriggerRandomEvent filters the registry by eligibility and runs a
// single weighted draw. Selecting a single-step event applies its effect
// immediately; selecting a multi-step event opens the dialogue instead.
// When no event fires the state is returned unchanged with ok == false.
func TriggerRandomEvent(state types.GameState, reg *Registry, rng *rand.Rand) (types.GameState, string, bool) {
	var eligible []Event
	total := 0.0
	for _, event := range reg.events {
		if event.Eligible(state) {
			eligible = append(eligible, event)
			total += event.Probability
		}
	}
	if len(eligible) == 0 {
		return state, "", false
	}

	// The draw spans [0, max(1, total)): when the eligible probabilities
	// sum below 1 the shortfall is the chance of a quiet day, and when
	// they sum above 1 every event keeps its proportional share instead
	// of starving the tail of the list.
	span := total
	if span < 1 {
		span = 1
	}
	selected, ok := SelectEvent(eligible, rng.Float64()*span)
	if !ok {
		return state, "", false
	}

	if selected.MultiStep() {
		newState := state.Clone()
		name := selected.Name
		step := 0
		newState.CurrentEvent = &name
		newState.CurrentStep = &step
		message := selected.Name + ": " + selected.Description
		if len(selected.Steps) > 0 {
			message += "\n" + selected.Steps[0].Description
		}
		return newState, message, true
	}

	newState, effectMessage := selected.Effect(state, rng)
	message := selected.Name + ": " + selected.Description
	if effectMessage != "" {
		message += " " + effectMessage
	}
	return newState, message, true
}

// HandleEventChoice applies the chosen option of the current multi-step
// event and advances the dialogue. Exhausting the steps clears
// CurrentEvent and CurrentStep together; otherwise the next step's
// prompt becomes the message. Called without an open event, or with an
// out-of-range choice, it leaves the state untouched.
func HandleEventChoice(state types.GameState, reg *Registry, choiceIndex int, rng *rand.Rand) (types.GameState, string) {
	if !state.InEvent() {
		return state, ""
	}

	event, ok := reg.Find(*state.CurrentEvent)
	if !ok || !event.MultiStep() {
		return state, ""
	}

	stepIndex := *state.CurrentStep
	if stepIndex >= len(event.Steps) {
		cleared := state.Clone()
		cleared.CurrentEvent = nil
		cleared.CurrentStep = nil
		return cleared, ""
	}

	step := event.Steps[stepIndex]
	if choiceIndex < 0 || choiceIndex >= len(step.Choices) {
		return state, ""
	}

	newState, effectMessage := state.Clone(), ""
	if effect := step.Choices[choiceIndex].Effect; effect != nil {
		newState, effectMessage = effect(state, rng)
	}
	nextStep := stepIndex + 1

	if nextStep >= len(event.Steps) {
		// Dialogue complete.
		newState.CurrentEvent = nil
		newState.CurrentStep = nil
		return newState, effectMessage
	}

	name := event.Name
	newState.CurrentEvent = &name
	newState.CurrentStep = &nextStep
	message := event.Steps[nextStep].Description
	if effectMessage != "" {
		message = effectMessage + "\n" + message
	}
	return newState, message
}
