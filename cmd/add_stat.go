package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/growth"
	"github.com/etnz/growth/date"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

type addStatCmd struct {
	platform   string
	date       string
	followers  int
	views      int
	likes      int
	comments   int
	postsCount int
}

func (*addStatCmd) Name() string     { return "add-stat" }
func (*addStatCmd) Synopsis() string { return "record the daily stats of a platform" }
func (*addStatCmd) Usage() string {
	return `add-stat [-p <platform>] [-d <date>] -followers <n> -views <n> -likes <n> -comments <n> -posts <n>

  Records one day of account stats for the platform:
  - followers: total followers (or subscribers) at the end of the day.
  - views, likes, comments: totals received during the day.
  - posts: number of posts published that day.

  All counts are required and must not be negative. The date defaults to today.
`
}

func (c *addStatCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Platform of the stats (instagram or youtube). Defaults to $GROWTH_PLATFORM")
	f.StringVar(&c.date, "d", date.Today().String(), "Day of the stats (YYYY-MM-DD)")
	f.IntVar(&c.followers, "followers", 0, "Total followers or subscribers (required)")
	f.IntVar(&c.views, "views", 0, "Views received that day (required)")
	f.IntVar(&c.likes, "likes", 0, "Likes received that day (required)")
	f.IntVar(&c.comments, "comments", 0, "Comments received that day (required)")
	f.IntVar(&c.postsCount, "posts", 0, "Posts published that day (required)")
}

// missingFlags returns the names in required that were not set on f.
func missingFlags(f *flag.FlagSet, required ...string) []string {
	set := make(map[string]bool)
	f.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
	var missing []string
	for _, name := range required {
		if !set[name] {
			missing = append(missing, "-"+name)
		}
	}
	return missing
}

func (c *addStatCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if missing := missingFlags(f, "followers", "views", "likes", "comments", "posts"); len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Error: missing required flags %s\n", strings.Join(missing, ", "))
		return subcommands.ExitUsageError
	}
	p, err := activePlatform(c.platform)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	s, err := growth.NewDailyStat(uuid.NewString(), c.date, p, c.followers, c.views, c.likes, c.comments, c.postsCount)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	if err := OpenTracker().AppendStat(s); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving stats: %v\n", err)
		return subcommands.ExitFailure
	}
	logger.Debug("stat recorded", "id", s.ID, "platform", s.Platform, "date", s.Date)
	fmt.Fprintln(stdout, "Daily stats saved!")
	return subcommands.ExitSuccess
}
