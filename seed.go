package growth

// The seed is the first-run dataset, and the replacement for any record
// that cannot be read back.

// SeedStats returns a fresh copy of the built-in stats: two platforms over
// three days.
func SeedStats() []DailyStat {
	return []DailyStat{
		{ID: "1", Date: "2023-10-20", Platform: Instagram, Followers: 1200, Views: 500, Likes: 120, Comments: 10, PostsCount: 1},
		{ID: "2", Date: "2023-10-21", Platform: Instagram, Followers: 1215, Views: 600, Likes: 150, Comments: 15, PostsCount: 1},
		{ID: "3", Date: "2023-10-22", Platform: Instagram, Followers: 1230, Views: 450, Likes: 100, Comments: 8, PostsCount: 0},
		{ID: "4", Date: "2023-10-20", Platform: YouTube, Followers: 5000, Views: 2500, Likes: 600, Comments: 40, PostsCount: 2},
		{ID: "5", Date: "2023-10-21", Platform: YouTube, Followers: 5050, Views: 3000, Likes: 750, Comments: 60, PostsCount: 1},
		{ID: "6", Date: "2023-10-22", Platform: YouTube, Followers: 5100, Views: 2800, Likes: 650, Comments: 45, PostsCount: 1},
	}
}

// SeedPosts returns a fresh copy of the built-in posts.
func SeedPosts() []Post {
	return []Post{
		{ID: "101", Title: "Morning Routine", Platform: Instagram, Type: Reel, Views: 5000, Likes: 500, Comments: 45, EngagementRate: 10.9},
		{ID: "102", Title: "Dance Trend", Platform: YouTube, Type: Video, Views: 15000, Likes: 2500, Comments: 120, EngagementRate: 17.5},
	}
}
