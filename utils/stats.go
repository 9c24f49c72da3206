package utils

import "time"

// Stats for a play session
type Stats struct {
	TicksPerSecond float64
	AverageLength  float64
	TotalTicks     int
	FoodEaten      int
	MaxLength      int
	StartTime      time.Time
}

func NewStats(start time.Time) *Stats {
	return &Stats{StartTime: start, MaxLength: 1}
}

// Update records one tick that took duration and left the snake at length
func (s *Stats) Update(length int, ate bool, duration time.Duration) {
	s.TotalTicks++
	if duration > 0 {
		s.TicksPerSecond = 1.0 / duration.Seconds()
	}
	if ate {
		s.FoodEaten++
	}
	s.MaxLength = max(s.MaxLength, length)

	// Simple moving average for length
	if s.AverageLength == 0 {
		s.AverageLength = float64(length)
	} else {
		s.AverageLength = (s.AverageLength * 0.9) + (float64(length) * 0.1)
	}
}

// Runtime returns how long the session has been running at now
func (s *Stats) Runtime(now time.Time) time.Duration {
	return now.Sub(s.StartTime)
}
