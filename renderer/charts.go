package renderer

import (
	"strings"

	"github.com/etnz/growth"
)

const barWidth = 20

// Point is one day of the charts.
type Point struct {
	Label      string
	Followers  int
	Bar        string
	Engagement float64
	PostsCount int
}

// Charts is the day by day evolution of a platform.
type Charts struct {
	Platform growth.Platform
	Points   []Point
}

// NewCharts computes the chronological series of platform p.
func NewCharts(stats []growth.DailyStat, p growth.Platform) *Charts {
	series := growth.ChronologicalSeries(stats, p)

	lo, hi := 0, 0
	for i, s := range series {
		if i == 0 || s.Followers < lo {
			lo = s.Followers
		}
		if i == 0 || s.Followers > hi {
			hi = s.Followers
		}
	}

	c := &Charts{Platform: p}
	for _, s := range series {
		label := s.Date
		if d := s.Day(); !d.IsZero() {
			label = d.Short()
		}
		c.Points = append(c.Points, Point{
			Label:      label,
			Followers:  s.Followers,
			Bar:        bar(s.Followers, lo, hi),
			Engagement: s.EngagementRate(),
			PostsCount: s.PostsCount,
		})
	}
	return c
}

// bar draws v on a scale from lo to hi. The lowest value still gets one
// block so every day is visible.
func bar(v, lo, hi int) string {
	n := barWidth
	if hi > lo {
		n = 1 + (v-lo)*(barWidth-1)/(hi-lo)
	}
	return strings.Repeat("█", n)
}

// RenderCharts renders c as markdown.
func RenderCharts(c *Charts) string {
	return renderTemplate("charts.md", c)
}
