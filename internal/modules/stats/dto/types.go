package dto

import "time"

type SummaryInput struct {
	From *time.Time
	To   *time.Time
}

type SummaryOutput struct {
	TotalsByGoal      map[string]int
	CurrentStreak     int
	LongestStreak     int
	AveragePerDaySec  float64
	MostProductiveDay string
}

type HistogramInput struct {
	Start time.Time
	Days  int
}

type HistogramOutput struct {
	SecondsByDay map[string]int
}
