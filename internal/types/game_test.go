package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGameStateClone(t *testing.T) {
	// Setup
	name := "Mysterious Stranger"
	step := 1
	state := GameState{
		Day:          5,
		Cash:         1000,
		Health:       90,
		Location:     Location{Name: "The Slums", DangerLevel: 7},
		Inventory:    map[string]int{"Health Potion": 2},
		Prices:       map[string]int{"Health Potion": 400},
		CurrentEvent: &name,
		CurrentStep:  &step,
	}

	clone := state.Clone()
	assert.Equal(t, state, clone)

	// Mutating the clone must not leak into the original.
	clone.Inventory["Health Potion"] = 99
	clone.Prices["Health Potion"] = 1
	*clone.CurrentEvent = "other"
	*clone.CurrentStep = 9

	assert.Equal(t, 2, state.Inventory["Health Potion"])
	assert.Equal(t, 400, state.Prices["Health Potion"])
	assert.Equal(t, "Mysterious Stranger", *state.CurrentEvent)
	assert.Equal(t, 1, *state.CurrentStep)
}

func TestGameStateValid(t *testing.T) {
	base := GameState{
		Day:       1,
		Health:    100,
		Location:  Location{Name: "Alchemist's Quarter", DangerLevel: 1},
		Inventory: map[string]int{},
		Prices:    map[string]int{},
	}
	assert.True(t, base.Valid())

	cases := []struct {
		name   string
		mutate func(*GameState)
	}{
		{"negative day", func(s *GameState) { s.Day = -1 }},
		{"health above cap", func(s *GameState) { s.Health = 101 }},
		{"negative health", func(s *GameState) { s.Health = -1 }},
		{"negative debt", func(s *GameState) { s.Debt = -1 }},
		{"nil inventory", func(s *GameState) { s.Inventory = nil }},
		{"nil prices", func(s *GameState) { s.Prices = nil }},
		{"negative quantity", func(s *GameState) { s.Inventory = map[string]int{"X": -1} }},
		{"empty location", func(s *GameState) { s.Location = Location{} }},
		{"dangling event name", func(s *GameState) {
			name := "X"
			s.CurrentEvent = &name
		}},
		{"dangling step index", func(s *GameState) {
			step := 0
			s.CurrentStep = &step
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			state := base.Clone()
			tc.mutate(&state)
			assert.False(t, state.Valid())
		})
	}
}

func TestInEvent(t *testing.T) {
	state := GameState{}
	assert.False(t, state.InEvent())

	name := "X"
	step := 0
	state.CurrentEvent = &name
	state.CurrentStep = &step
	assert.True(t, state.InEvent())
}
