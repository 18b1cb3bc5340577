package growth

import (
	"slices"

	"github.com/shopspring/decimal"
)

// This file holds the metrics engine: pure functions deriving every figure
// the views display. None of them modify their inputs.

// Platformed is implemented by records that belong to a platform.
type Platformed interface {
	PlatformOf() Platform
}

// FilterByPlatform returns the items of platform p, in their original order.
func FilterByPlatform[T Platformed](items []T, p Platform) []T {
	res := make([]T, 0, len(items))
	for _, item := range items {
		if item.PlatformOf() == p {
			res = append(res, item)
		}
	}
	return res
}

// byRecency returns the stats of platform p, most recent day first.
// Entries on the same day keep their original order.
func byRecency(stats []DailyStat, p Platform) []DailyStat {
	res := FilterByPlatform(stats, p)
	slices.SortStableFunc(res, func(a, b DailyStat) int {
		return b.Day().Compare(a.Day())
	})
	return res
}

// LatestStat returns the most recent stat of platform p.
func LatestStat(stats []DailyStat, p Platform) (DailyStat, bool) {
	sorted := byRecency(stats, p)
	if len(sorted) == 0 {
		return DailyStat{}, false
	}
	return sorted[0], true
}

// PreviousStat returns the stat just before LatestStat, if any.
func PreviousStat(stats []DailyStat, p Platform) (DailyStat, bool) {
	sorted := byRecency(stats, p)
	if len(sorted) < 2 {
		return DailyStat{}, false
	}
	return sorted[1], true
}

// TrendPercent is the change from previous to current in percent, rounded to
// 1 decimal. It is 0 when previous is 0.
func TrendPercent(current, previous float64) float64 {
	if previous == 0 {
		return 0
	}
	return round((current-previous)/previous*100, 1)
}

// EngagementRate is (likes+comments) per view in percent.
//
// A zero view count is counted as 1 view, so a post with no views but some
// interactions reports (likes+comments)*100.
func EngagementRate(likes, comments, views int) float64 {
	if views == 0 {
		views = 1
	}
	return float64(likes+comments) / float64(views) * 100
}

// TopPosts returns at most n posts of platform p, highest stored engagement
// rate first. Posts with equal rates keep their original order.
func TopPosts(posts []Post, p Platform, n int) []Post {
	res := FilterByPlatform(posts, p)
	slices.SortStableFunc(res, func(a, b Post) int {
		switch {
		case a.EngagementRate > b.EngagementRate:
			return -1
		case a.EngagementRate < b.EngagementRate:
			return 1
		}
		return 0
	})
	if n < 0 {
		n = 0
	}
	if len(res) > n {
		res = res[:n]
	}
	return res
}

// ChronologicalSeries returns the stats of platform p, oldest day first.
func ChronologicalSeries(stats []DailyStat, p Platform) []DailyStat {
	res := FilterByPlatform(stats, p)
	slices.SortStableFunc(res, func(a, b DailyStat) int {
		return a.Day().Compare(b.Day())
	})
	return res
}

// round rounds the exact binary value of v to the given number of decimal
// places, so 1.15 (stored as 1.1499...) gives 1.1.
func round(v float64, places int32) float64 {
	return decimal.NewFromFloatWithExponent(v, -places).InexactFloat64()
}
