package game

import (
	"math/rand"

	"github.com/user/potion-wars/internal/types"
)

// RollWeather draws the next day's weather from a fixed weighted table:
// sunny 40%, rainy 20%, stormy 10%, windy 20%, foggy 10%.
func RollWeather(rng *rand.Rand) types.Weather {
	value := rng.Float64()
	switch {
	case value < 0.4:
		return types.WeatherSunny
	case value < 0.6:
		return types.WeatherRainy
	case value < 0.7:
		return types.WeatherStormy
	case value < 0.9:
		return types.WeatherWindy
	default:
		return types.WeatherFoggy
	}
}
