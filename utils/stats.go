package utils

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats for performance monitoring
type Stats struct {
	GenerationsPerSecond float64
	AveragePopulation    float64
	TotalGenerations     int
	StartTime            time.Time
	ActiveCells          int
	BoundingBoxSize      int64
}

func NewStats() *Stats {
	return &Stats{StartTime: time.Now()}
}

func (s *Stats) Update(generation int, population int, boundingBox int64, duration time.Duration) {
	s.TotalGenerations = generation
	s.ActiveCells = population
	s.BoundingBoxSize = boundingBox
	if duration > 0 {
		s.GenerationsPerSecond = 1.0 / duration.Seconds()
	}

	// Simple moving average for population
	if s.AveragePopulation == 0 {
		s.AveragePopulation = float64(population)
	} else {
		s.AveragePopulation = (s.AveragePopulation * 0.9) + (float64(population) * 0.1)
	}
}

// Summary formats the stats for a status line
func (s *Stats) Summary() string {
	return fmt.Sprintf("Gen: %s | Living: %s | Bounding box: %s cells | %.1f gen/sec | Avg Pop: %.1f",
		humanize.Comma(int64(s.TotalGenerations)),
		humanize.Comma(int64(s.ActiveCells)),
		humanize.Comma(s.BoundingBoxSize),
		s.GenerationsPerSecond,
		s.AveragePopulation,
	)
}
