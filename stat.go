package growth

import "github.com/etnz/growth/date"

// DailyStat is the snapshot of a platform's absolute counters on one day.
// Counters are cumulative totals for that day, not deltas.
type DailyStat struct {
	ID         string   `json:"id"`
	Date       string   `json:"date"`
	Platform   Platform `json:"platform"`
	Followers  int      `json:"followers"`
	Views      int      `json:"views"`
	Likes      int      `json:"likes"`
	Comments   int      `json:"comments"`
	PostsCount int      `json:"postsCount"`
}

// NewDailyStat builds a DailyStat from entry form values and validates it.
func NewDailyStat(id, on string, p Platform, followers, views, likes, comments, postsCount int) (DailyStat, error) {
	s := DailyStat{
		ID:         id,
		Date:       on,
		Platform:   p,
		Followers:  followers,
		Views:      views,
		Likes:      likes,
		Comments:   comments,
		PostsCount: postsCount,
	}
	return s, s.Validate()
}

func (s DailyStat) PlatformOf() Platform { return s.Platform }

// Day returns the parsed date. Unparseable dates yield the zero Date, which
// sorts before every valid day.
func (s DailyStat) Day() date.Date {
	d, _ := date.Parse(s.Date)
	return d
}

// EngagementRate is the day's (likes+comments) per view, in percent.
func (s DailyStat) EngagementRate() float64 {
	return EngagementRate(s.Likes, s.Comments, s.Views)
}

// Validate returns a *ValidationError listing every problem with s.
func (s DailyStat) Validate() error {
	var v validation
	v.check(s.ID != "", "id is required")
	_, err := date.Parse(s.Date)
	v.check(err == nil, "date %q is not a valid YYYY-MM-DD date", s.Date)
	v.check(s.Platform.Valid(), "platform %q is not supported", s.Platform)
	v.check(s.Followers >= 0, "followers must not be negative, got %d", s.Followers)
	v.check(s.Views >= 0, "views must not be negative, got %d", s.Views)
	v.check(s.Likes >= 0, "likes must not be negative, got %d", s.Likes)
	v.check(s.Comments >= 0, "comments must not be negative, got %d", s.Comments)
	v.check(s.PostsCount >= 0, "posts count must not be negative, got %d", s.PostsCount)
	return v.err()
}
