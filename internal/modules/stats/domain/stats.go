package domain

import "time"

// FocusRecord is one completed timer flattened for aggregation.
type FocusRecord struct {
	GoalID  string
	Start   time.Time
	Seconds int
}

const dayKey = "2006-01-02"

// TotalByGoal sums focused seconds per goal inside the optional day range and
// rolls every total up through the parent chain, so an ancestor's total
// includes all of its descendants. Cycles are not prevented at the data
// level; the walk carries a visited set so a cyclic parent chain terminates.
func TotalByGoal(records []FocusRecord, parents map[string]string, start, end *time.Time) map[string]int {
	totals := map[string]int{}
	for _, r := range records {
		if r.GoalID == "" || r.Seconds == 0 {
			continue
		}
		if !inRange(r.Start, start, end) {
			continue
		}
		totals[r.GoalID] += r.Seconds
	}
	rolled := map[string]int{}
	for goalID, total := range totals {
		rolled[goalID] += total
		visited := map[string]struct{}{goalID: {}}
		parent, ok := parents[goalID]
		for ok {
			if _, seen := visited[parent]; seen {
				break
			}
			visited[parent] = struct{}{}
			rolled[parent] += total
			parent, ok = parents[parent]
		}
	}
	return rolled
}

// DateHistogram buckets focused seconds per day across the inclusive range,
// including zero-valued days. Keys use the YYYY-MM-DD form.
func DateHistogram(records []FocusRecord, start, end time.Time) map[string]int {
	buckets := map[string]int{}
	for day := startOfDay(start); !day.After(startOfDay(end)); day = day.AddDate(0, 0, 1) {
		buckets[day.Format(dayKey)] = 0
	}
	for _, r := range records {
		if r.Seconds == 0 {
			continue
		}
		key := startOfDay(r.Start).Format(dayKey)
		if _, ok := buckets[key]; ok {
			buckets[key] += r.Seconds
		}
	}
	return buckets
}

func WeeklyHistogram(records []FocusRecord, start time.Time) map[string]int {
	return DateHistogram(records, start, start.AddDate(0, 0, 6))
}

// CurrentStreak counts consecutive days ending today that have at least one
// session.
func CurrentStreak(records []FocusRecord, today time.Time) int {
	days := sessionDays(records)
	streak := 0
	for cursor := startOfDay(today); ; cursor = cursor.AddDate(0, 0, -1) {
		if _, ok := days[cursor.Format(dayKey)]; !ok {
			break
		}
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive days with sessions.
func LongestStreak(records []FocusRecord) int {
	days := sessionDays(records)
	longest := 0
	for key := range days {
		day, _ := time.Parse(dayKey, key)
		if _, ok := days[day.AddDate(0, 0, -1).Format(dayKey)]; ok {
			continue // not a streak start
		}
		length := 0
		for cursor := day; ; cursor = cursor.AddDate(0, 0, 1) {
			if _, ok := days[cursor.Format(dayKey)]; !ok {
				break
			}
			length++
		}
		if length > longest {
			longest = length
		}
	}
	return longest
}

// AverageFocusPerDay averages focused seconds over every day in the optional
// range, counting empty days. Missing endpoints default to the first and last
// session; an inverted range averages to zero.
func AverageFocusPerDay(records []FocusRecord, start, end *time.Time) float64 {
	first, last, ok := recordSpan(records)
	if !ok {
		return 0
	}
	if start != nil {
		first = *start
	}
	if end != nil {
		last = *end
	}
	if startOfDay(first).After(startOfDay(last)) {
		return 0
	}
	hist := DateHistogram(records, first, last)
	total := 0
	for _, seconds := range hist {
		total += seconds
	}
	return float64(total) / float64(len(hist))
}

// MostProductiveWeekday names the weekday with the highest focused total, or
// the empty string when there are no sessions.
func MostProductiveWeekday(records []FocusRecord) string {
	totals := map[string]int{}
	for _, r := range records {
		if r.Seconds == 0 {
			continue
		}
		totals[r.Start.Weekday().String()] += r.Seconds
	}
	best := ""
	bestTotal := 0
	for weekday, total := range totals {
		if total > bestTotal || (total == bestTotal && weekday < best) {
			best = weekday
			bestTotal = total
		}
	}
	return best
}

func sessionDays(records []FocusRecord) map[string]struct{} {
	days := map[string]struct{}{}
	for _, r := range records {
		days[startOfDay(r.Start).Format(dayKey)] = struct{}{}
	}
	return days
}

func recordSpan(records []FocusRecord) (time.Time, time.Time, bool) {
	if len(records) == 0 {
		return time.Time{}, time.Time{}, false
	}
	first, last := records[0].Start, records[0].Start
	for _, r := range records[1:] {
		if r.Start.Before(first) {
			first = r.Start
		}
		if r.Start.After(last) {
			last = r.Start
		}
	}
	return first, last, true
}

func startOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func inRange(t time.Time, start, end *time.Time) bool {
	day := startOfDay(t)
	if start != nil && day.Before(startOfDay(*start)) {
		return false
	}
	if end != nil && day.After(startOfDay(*end)) {
		return false
	}
	return true
}
