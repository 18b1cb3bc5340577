package growth

import "strings"

// Post is the performance of a single tracked content item.
type Post struct {
	ID       string   `json:"id"`
	Title    string   `json:"title"`
	Platform Platform `json:"platform"`
	Type     PostType `json:"type"`
	Views    int      `json:"views"`
	Likes    int      `json:"likes"`
	Comments int      `json:"comments"`
	// EngagementRate is computed once by NewPost and stored as is.
	EngagementRate float64 `json:"engagementRate"`
}

// NewPost builds a Post from entry form values, computes its engagement rate
// rounded to 2 decimals, and validates it.
func NewPost(id, title string, p Platform, t PostType, views, likes, comments int) (Post, error) {
	post := Post{
		ID:             id,
		Title:          title,
		Platform:       p,
		Type:           t,
		Views:          views,
		Likes:          likes,
		Comments:       comments,
		EngagementRate: postRate(likes, comments, views),
	}
	return post, post.Validate()
}

func (p Post) PlatformOf() Platform { return p.Platform }

// Validate returns a *ValidationError listing every problem with p.
func (p Post) Validate() error {
	var v validation
	v.check(p.ID != "", "id is required")
	v.check(strings.TrimSpace(p.Title) != "", "title is required")
	v.check(p.Platform.Valid(), "platform %q is not supported", p.Platform)
	v.check(p.Type.Valid(), "post type %q is not supported", p.Type)
	v.check(p.Views >= 0, "views must not be negative, got %d", p.Views)
	v.check(p.Likes >= 0, "likes must not be negative, got %d", p.Likes)
	v.check(p.Comments >= 0, "comments must not be negative, got %d", p.Comments)
	if p.Views >= 0 && p.Likes >= 0 && p.Comments >= 0 {
		want := postRate(p.Likes, p.Comments, p.Views)
		v.check(p.EngagementRate == want, "engagement rate %v does not match the counts, want %v", p.EngagementRate, want)
	}
	return v.err()
}

// postRate is the engagement rate stored with a post, rounded to 2 decimals.
func postRate(likes, comments, views int) float64 {
	return round(EngagementRate(likes, comments, views), 2)
}

// AdvisorResponse is the growth advice returned by the model. It is never
// persisted.
type AdvisorResponse struct {
	Advice      string   `json:"advice"`
	FocusArea   string   `json:"focusArea"`
	ActionItems []string `json:"actionItems"`
}
