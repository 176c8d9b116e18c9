package policy

import "math"

// ForecastAssessment compares a player's demand forecast against the
// historical mean and the true base demand behind the simulator's draws.
type ForecastAssessment struct {
	PlayerForecast float64 `json:"player_forecast"`
	SystemForecast float64 `json:"system_forecast"`
	ActualDemand   int     `json:"actual_demand"`
	PlayerError    float64 `json:"player_error"`
	SystemError    float64 `json:"system_error"`
	Score          float64 `json:"score"` // 0-100
	BeatsSystem    bool    `json:"beats_system"`
}

// AssessForecast scores a forecast on a 0-100 scale. Up to 50% error is
// tolerated before the score bottoms out at zero.
func AssessForecast(player, system float64, actualBase int) ForecastAssessment {
	playerErr := math.Abs(player - float64(actualBase))
	systemErr := math.Abs(system - float64(actualBase))

	score := 0.0
	if maxErr := float64(actualBase) * 0.5; maxErr > 0 {
		score = math.Max(0, 100-(playerErr/maxErr*100))
	}

	return ForecastAssessment{
		PlayerForecast: player,
		SystemForecast: system,
		ActualDemand:   actualBase,
		PlayerError:    playerErr,
		SystemError:    systemErr,
		Score:          score,
		BeatsSystem:    playerErr <= systemErr,
	}
}
