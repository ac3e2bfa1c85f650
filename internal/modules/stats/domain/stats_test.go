package domain_test

import (
	"testing"
	"time"

	"focal/internal/modules/stats/domain"
)

func day(yyyy int, mm time.Month, dd int) time.Time {
	return time.Date(yyyy, mm, dd, 10, 0, 0, 0, time.UTC)
}

func TestTotalByGoalRollsUpParents(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{
		{GoalID: "child", Start: day(2026, 8, 1), Seconds: 600},
		{GoalID: "grandchild", Start: day(2026, 8, 2), Seconds: 300},
		{GoalID: "root", Start: day(2026, 8, 3), Seconds: 100},
		{GoalID: "", Start: day(2026, 8, 3), Seconds: 999}, // untargeted, ignored
	}
	parents := map[string]string{
		"child":      "root",
		"grandchild": "child",
	}
	totals := domain.TotalByGoal(records, parents, nil, nil)
	if totals["grandchild"] != 300 {
		t.Fatalf("grandchild: got %d", totals["grandchild"])
	}
	if totals["child"] != 900 {
		t.Fatalf("child must include its descendant, got %d", totals["child"])
	}
	if totals["root"] != 1000 {
		t.Fatalf("root must include the whole subtree, got %d", totals["root"])
	}
}

func TestTotalByGoalSurvivesParentCycle(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{{GoalID: "a", Start: day(2026, 8, 1), Seconds: 60}}
	parents := map[string]string{"a": "b", "b": "a"}
	totals := domain.TotalByGoal(records, parents, nil, nil)
	if totals["a"] != 60 || totals["b"] != 60 {
		t.Fatalf("cyclic chain must terminate with each node counted once: %v", totals)
	}
}

func TestTotalByGoalRangeFiltersByDay(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{
		{GoalID: "g", Start: day(2026, 8, 1), Seconds: 100},
		{GoalID: "g", Start: day(2026, 8, 5), Seconds: 200},
		{GoalID: "g", Start: day(2026, 8, 9), Seconds: 400},
	}
	start := day(2026, 8, 5)
	end := day(2026, 8, 9)
	totals := domain.TotalByGoal(records, nil, &start, &end)
	if totals["g"] != 600 {
		t.Fatalf("inclusive day range: got %d", totals["g"])
	}
}

func TestDateHistogramIncludesEmptyDays(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{
		{GoalID: "g", Start: day(2026, 8, 1), Seconds: 100},
		{GoalID: "g", Start: day(2026, 8, 1), Seconds: 50},
		{GoalID: "g", Start: day(2026, 8, 3), Seconds: 25},
		{GoalID: "g", Start: day(2026, 8, 9), Seconds: 999}, // outside range
	}
	hist := domain.DateHistogram(records, day(2026, 8, 1), day(2026, 8, 3))
	if len(hist) != 3 {
		t.Fatalf("three days expected, got %v", hist)
	}
	if hist["2026-08-01"] != 150 || hist["2026-08-02"] != 0 || hist["2026-08-03"] != 25 {
		t.Fatalf("unexpected buckets: %v", hist)
	}
}

func TestWeeklyHistogramSpansSevenDays(t *testing.T) {
	t.Parallel()
	hist := domain.WeeklyHistogram(nil, day(2026, 8, 24))
	if len(hist) != 7 {
		t.Fatalf("seven days expected, got %d", len(hist))
	}
	if _, ok := hist["2026-08-30"]; !ok {
		t.Fatalf("final day missing: %v", hist)
	}
}

func TestStreaks(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{
		// A three day run, a gap, then two days ending today.
		{GoalID: "g", Start: day(2026, 8, 20), Seconds: 60},
		{GoalID: "g", Start: day(2026, 8, 21), Seconds: 60},
		{GoalID: "g", Start: day(2026, 8, 22), Seconds: 60},
		{GoalID: "g", Start: day(2026, 8, 29), Seconds: 60},
		{GoalID: "g", Start: day(2026, 8, 30), Seconds: 60},
	}
	today := day(2026, 8, 30)
	if got := domain.CurrentStreak(records, today); got != 2 {
		t.Fatalf("current streak: got %d", got)
	}
	if got := domain.LongestStreak(records); got != 3 {
		t.Fatalf("longest streak: got %d", got)
	}
	if got := domain.CurrentStreak(records, day(2026, 8, 31)); got != 0 {
		t.Fatalf("no session today means no streak, got %d", got)
	}
	if got := domain.CurrentStreak(nil, today); got != 0 {
		t.Fatalf("empty history streak: got %d", got)
	}
}

func TestAverageFocusPerDayCountsEmptyDays(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{
		{GoalID: "g", Start: day(2026, 8, 1), Seconds: 300},
		{GoalID: "g", Start: day(2026, 8, 5), Seconds: 200},
	}
	// 500 seconds over the five day span.
	if got := domain.AverageFocusPerDay(records, nil, nil); got != 100 {
		t.Fatalf("average: got %v", got)
	}
	if got := domain.AverageFocusPerDay(nil, nil, nil); got != 0 {
		t.Fatalf("empty average: got %v", got)
	}

	// An explicit range restricts both the sessions counted and the days
	// divided by: only the 300s session falls in the first two days.
	from := day(2026, 8, 1)
	to := day(2026, 8, 2)
	if got := domain.AverageFocusPerDay(records, &from, &to); got != 150 {
		t.Fatalf("ranged average: got %v", got)
	}
	if got := domain.AverageFocusPerDay(records, &to, &from); got != 0 {
		t.Fatalf("inverted range must average to zero, got %v", got)
	}
}

func TestMostProductiveWeekday(t *testing.T) {
	t.Parallel()
	records := []domain.FocusRecord{
		{GoalID: "g", Start: day(2026, 8, 24), Seconds: 100}, // Monday
		{GoalID: "g", Start: day(2026, 8, 25), Seconds: 300}, // Tuesday
		{GoalID: "g", Start: day(2026, 8, 18), Seconds: 100}, // Tuesday
	}
	if got := domain.MostProductiveWeekday(records); got != "Tuesday" {
		t.Fatalf("got %q", got)
	}
	if got := domain.MostProductiveWeekday(nil); got != "" {
		t.Fatalf("empty history: got %q", got)
	}

	tied := []domain.FocusRecord{
		{GoalID: "g", Start: day(2026, 8, 24), Seconds: 100}, // Monday
		{GoalID: "g", Start: day(2026, 8, 28), Seconds: 100}, // Friday
	}
	if got := domain.MostProductiveWeekday(tied); got != "Friday" {
		t.Fatalf("tie must break alphabetically, got %q", got)
	}
}
