package renderer

import (
	"github.com/etnz/growth"
)

// TopPostsCount is the number of posts listed on the dashboard.
const TopPostsCount = 5

// Card is a single headline figure.
type Card struct {
	Title    string
	Value    string
	Subtext  string
	HasTrend bool
	Trend    float64
}

// Dashboard is the overview of a platform: headline cards computed from its
// two most recent stats, and its best posts.
type Dashboard struct {
	Platform growth.Platform
	Date     string
	Cards    []Card
	TopPosts []growth.Post
}

// NewDashboard computes the dashboard of platform p.
func NewDashboard(stats []growth.DailyStat, posts []growth.Post, p growth.Platform) *Dashboard {
	cur, hasCur := growth.LatestStat(stats, p)
	prev, hasPrev := growth.PreviousStat(stats, p)

	trend := func(current, previous int) float64 {
		if !hasPrev {
			return 0
		}
		return growth.TrendPercent(float64(current), float64(previous))
	}

	engagement := "0%"
	if hasCur {
		engagement = formatRate(cur.EngagementRate())
	}

	return &Dashboard{
		Platform: p,
		Date:     cur.Date,
		Cards: []Card{
			{Title: p.FollowerLabel(), Value: formatCount(cur.Followers), HasTrend: true, Trend: trend(cur.Followers, prev.Followers)},
			{Title: "Avg Views", Value: formatCount(cur.Views), HasTrend: true, Trend: trend(cur.Views, prev.Views)},
			{Title: "Engagement", Value: engagement, Subtext: "Rate per view"},
			{Title: "Posts", Value: formatCount(cur.PostsCount), Subtext: "Posted today"},
		},
		TopPosts: growth.TopPosts(posts, p, TopPostsCount),
	}
}

// RenderDashboard renders d as markdown.
func RenderDashboard(d *Dashboard) string {
	return renderTemplate("dashboard.md", d)
}
