package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
)

type dashboardCmd struct {
	platform string
}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show the latest stats and top posts of a platform" }
func (*dashboardCmd) Usage() string {
	return `dashboard [-p <platform>]

  Shows the four summary cards of the platform, computed from its latest
  daily stats and compared to the previous day, followed by its top posts
  ranked by engagement rate.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Platform to show (instagram or youtube). Defaults to $GROWTH_PLATFORM")
}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := activePlatform(c.platform)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	t := OpenTracker()
	stats, err := t.Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		return subcommands.ExitFailure
	}
	posts, err := t.Posts()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading posts: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderDashboard(renderer.NewDashboard(stats, posts, p)))
	return subcommands.ExitSuccess
}
