package stats

import (
	"math"
	"time"

	"github.com/ponzhin/habit-tracker/pkg/db"
)

const DefaultRollupWindow = 7

type DayStat struct {
	Date          time.Time
	Completed     bool
	RunningStreak int
}

type WeekStat struct {
	Window         int
	CompletedCount int
	TotalDays      int
	Percentage     int
}

// BuildDailySeries expands the records for one habit into one entry per
// calendar day over [start, end]. Days without a record count as missed, and
// any miss resets the running streak to zero.
func BuildDailySeries(records []db.CompletionRecord, start, end time.Time) []DayStat {
	start = db.DateOnly(start)
	end = db.DateOnly(end)
	if end.Before(start) {
		return []DayStat{}
	}

	completed := make(map[time.Time]bool, len(records))
	for _, record := range records {
		if record.Completed {
			completed[db.DateOnly(record.Date)] = true
		}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	series := make([]DayStat, 0, days)
	streak := 0
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		done := completed[day]
		if done {
			streak++
		} else {
			streak = 0
		}
		series = append(series, DayStat{Date: day, Completed: done, RunningStreak: streak})
	}
	return series
}

// BestStreak returns the longest contiguous run of completed days in the
// series, 0 when nothing was completed.
func BestStreak(series []DayStat) int {
	best, run := 0, 0
	for _, day := range series {
		if day.Completed {
			run++
			if run > best {
				best = run
			}
		} else {
			run = 0
		}
	}
	return best
}

// WeeklyRollup partitions the series into consecutive non-overlapping windows
// of windowSize days. The last window may be shorter.
func WeeklyRollup(series []DayStat, windowSize int) []WeekStat {
	if windowSize <= 0 {
		windowSize = DefaultRollupWindow
	}

	rollup := make([]WeekStat, 0, (len(series)+windowSize-1)/windowSize)
	for offset := 0; offset < len(series); offset += windowSize {
		limit := offset + windowSize
		if limit > len(series) {
			limit = len(series)
		}
		window := series[offset:limit]

		count := 0
		for _, day := range window {
			if day.Completed {
				count++
			}
		}
		rollup = append(rollup, WeekStat{
			Window:         offset / windowSize,
			CompletedCount: count,
			TotalDays:      len(window),
			Percentage:     int(math.Round(float64(count) / float64(len(window)) * 100)),
		})
	}
	return rollup
}
