package game

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/user/potion-wars/internal/types"
)

func testEngine(seed int64) *Engine {
	return NewEngine(testGameConfig(), DefaultCatalog(), nil, rand.New(rand.NewSource(seed)))
}

func TestReduceBrewAndSell(t *testing.T) {
	// Setup
	engine := testEngine(1)
	state := testState()
	state.Prices = map[string]int{"Health Potion": 100}

	// Test case 1: brewing debits cash and credits inventory
	newState, result := engine.Reduce(state, BrewPotionAction{Potion: "Health Potion", Quantity: 5})
	assert.Equal(t, 1500, newState.Cash)
	assert.Equal(t, 5, newState.Inventory["Health Potion"])
	assert.Equal(t, types.MessagePurchase, result.Type)
	assert.Equal(t, "Brewed 5 Health Potion for 500 gold", result.Message)

	// Test case 2: selling the stock back at the same price
	newState, result = engine.Reduce(newState, SellPotionAction{Potion: "Health Potion", Quantity: 5})
	assert.Equal(t, 2000, newState.Cash)
	assert.Equal(t, 0, newState.Inventory["Health Potion"])
	assert.Equal(t, types.MessageSale, result.Type)
	assert.Equal(t, "Sold 5 Health Potion for 500 gold", result.Message)

	// Test case 3: the input state is never mutated
	assert.Equal(t, 2000, state.Cash)
	assert.Empty(t, state.Inventory)
}

func TestReduceTravel(t *testing.T) {
	// Setup
	engine := testEngine(3)
	state := testState()

	// Test case 1: invalid destination leaves the state alone
	newState, result := engine.Reduce(state, TravelAction{Location: "Nowhere"})
	assert.Equal(t, state, newState)
	assert.Equal(t, "Invalid location!", result.Message)
	assert.Equal(t, types.MessageInfo, result.Type)

	// Test case 2: valid travel moves and rerolls prices; combat, when it
	// happens, appends its log and tags the result as combat
	sawCombat := false
	for seed := int64(0); seed < 100; seed++ {
		engine = testEngine(seed)
		newState, result = engine.Reduce(state, TravelAction{Location: "The Slums"})
		require.Equal(t, "The Slums", newState.Location.Name)
		require.Contains(t, result.Message, "Traveled to The Slums")
		if result.Type == types.MessageCombat {
			sawCombat = true
			assert.True(t, strings.Contains(result.Message, "You defeated the") ||
				strings.Contains(result.Message, "You were defeated by"))
		}
		require.GreaterOrEqual(t, newState.Health, 0)
		require.GreaterOrEqual(t, newState.Cash, 0)
	}
	assert.True(t, sawCombat, "danger 7 should produce at least one encounter in 100 trips")
}

func TestReduceRepayDebt(t *testing.T) {
	// Setup
	engine := testEngine(1)
	state := testState()

	newState, result := engine.Reduce(state, RepayDebtAction{Amount: 1500})
	assert.Equal(t, 500, newState.Cash)
	assert.Equal(t, 3500, newState.Debt)
	assert.Equal(t, "Repaid 1500 gold of debt.", result.Message)
	assert.Equal(t, types.MessageInfo, result.Type)
}

func TestReduceAdvanceDay(t *testing.T) {
	// Setup
	engine := testEngine(1)
	state := testState()

	// Test case 1: plain advance is an info message
	newState, result := engine.Reduce(state, AdvanceDayAction{})
	assert.Equal(t, 2, newState.Day)
	assert.Equal(t, types.MessageInfo, result.Type)

	// Test case 2: with events enabled the result is a random-event message
	newState, result = engine.Reduce(state, AdvanceDayAction{TriggerEvent: true, TriggerDebt: true})
	assert.Equal(t, 2, newState.Day)
	assert.Equal(t, 5500, newState.Debt)
	assert.Equal(t, types.MessageRandomEvent, result.Type)
	assert.Contains(t, result.Message, "Day 2:")

	// Test case 3: the engine applies the configured interest rate, not a
	// built-in one
	cfg := testGameConfig()
	cfg.DebtInterestPercent = 25
	steep := NewEngine(cfg, DefaultCatalog(), nil, rand.New(rand.NewSource(1)))
	newState, _ = steep.Reduce(state, AdvanceDayAction{TriggerDebt: true})
	assert.Equal(t, 6250, newState.Debt)
}

func TestReduceUpdateWeather(t *testing.T) {
	// Setup
	engine := testEngine(1)
	state := testState()

	// Test case 1: explicit weather is applied verbatim
	newState, _ := engine.Reduce(state, UpdateWeatherAction{Weather: types.WeatherFoggy})
	assert.Equal(t, types.WeatherFoggy, newState.Weather)

	// Test case 2: empty weather rolls a valid one
	newState, _ = engine.Reduce(state, UpdateWeatherAction{})
	assert.Contains(t, types.AllWeathers, newState.Weather)
}

func TestReduceEventFlow(t *testing.T) {
	// Setup: a registry with one guaranteed multi-step event
	event := Event{
		Name:        "Crossroads",
		Description: "A fork in the road.",
		Probability: 1,
		Type:        EventNeutral,
		Steps: []EventStep{{
			Description: "Left or right?",
			Choices: []Choice{
				{Text: "Left", Effect: func(s types.GameState, _ *rand.Rand) (types.GameState, string) {
					n := s.Clone()
					n.Cash += 100
					return n, "You found 100 gold."
				}},
				{Text: "Right"},
			},
		}},
	}
	engine := NewEngine(testGameConfig(), DefaultCatalog(), NewRegistry([]Event{event}), rand.New(rand.NewSource(1)))
	state := testState()

	// Test case 1: triggering opens the event
	newState, result := engine.Reduce(state, TriggerEventAction{})
	require.True(t, newState.InEvent())
	assert.Equal(t, "Crossroads", *newState.CurrentEvent)
	assert.Equal(t, 0, *newState.CurrentStep)
	assert.Equal(t, types.MessageRandomEvent, result.Type)

	// Test case 2: answering the only step applies the effect and closes it
	newState, result = engine.Reduce(newState, EventChoiceAction{Choice: 0})
	assert.False(t, newState.InEvent())
	assert.Equal(t, 2100, newState.Cash)
	assert.Equal(t, "You found 100 gold.", result.Message)
}

func TestReduceNewGame(t *testing.T) {
	// Setup
	engine := testEngine(1)
	state := testState()
	state.Day = 20
	state.Cash = 9

	newState, result := engine.Reduce(state, NewGameAction{})
	assert.Equal(t, 0, newState.Day)
	assert.Equal(t, 2000, newState.Cash)
	assert.Equal(t, "A new venture begins.", result.Message)
	assert.False(t, engine.GameOver(newState))
}
