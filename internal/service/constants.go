package service

const (
	// Dashboard limits
	RecentScoresLimit  = 10
	RatingHistoryLimit = 24

	// Unit conversions
	MetersPerKm      = 1000.0
	SecondsPerMinute = 60
)
