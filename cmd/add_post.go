package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/growth"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type addPostCmd struct {
	platform string
	title    string
	postType string
	views    int
	likes    int
	comments int
}

func (*addPostCmd) Name() string     { return "add-post" }
func (*addPostCmd) Synopsis() string { return "track the performance of a post" }
func (*addPostCmd) Usage() string {
	return `add-post [-p <platform>] -title <title> [-type <type>] -views <n> -likes <n> -comments <n>

  Tracks a post and its engagement rate, (likes + comments) / views in percent:
  - type: reel, photo, carousel or video (defaults to reel).
  - views, likes, comments: totals received by the post.
`
}

func (c *addPostCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Platform of the post (instagram or youtube). Defaults to $GROWTH_PLATFORM")
	f.StringVar(&c.title, "title", "", "Title of the post (required)")
	f.StringVar(&c.postType, "type", string(growth.Reel), "Type of the post (reel, photo, carousel or video)")
	f.IntVar(&c.views, "views", 0, "Views of the post (required)")
	f.IntVar(&c.likes, "likes", 0, "Likes of the post (required)")
	f.IntVar(&c.comments, "comments", 0, "Comments of the post (required)")
}

func (c *addPostCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if missing := missingFlags(f, "title", "views", "likes", "comments"); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Error: missing required flags %s\n", strings.Join(missing, ", "))
		return subcommands.ExitUsageError
	}
	p, err := activePlatform(c.platform)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}
	t, err := growth.ParsePostType(c.postType)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	post, err := growth.NewPost(uuid.NewString(), c.title, p, t, c.views, c.likes, c.comments)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if err := OpenTracker().AppendPost(post); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving post: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("post recorded", "id", post.ID, "platform", post.Platform, "engagementRate", post.EngagementRate)
	fmt.Fprintln(stdout, "Post added to tracking!")
	return subcommands.ExitSuccess
}
