package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
)

type chartsCmd struct {
	platform string
}

func (*chartsCmd) Name() string     { return "charts" }
func (*chartsCmd) Synopsis() string { return "show the growth and engagement series of a platform" }
func (*chartsCmd) Usage() string {
	return `charts [-p <platform>]

  Shows the daily stats of the platform in chronological order: the follower
  (or subscriber) count with a bar scaled between the lowest and highest day,
  then the engagement rate and the number of posts of each day.
`
}

func (c *chartsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Platform to show (instagram or youtube). Defaults to $GROWTH_PLATFORM")
}

func (c *chartsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	p, err := activePlatform(c.platform)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return subcommands.ExitUsageError
	}

	stats, err := OpenTracker().Stats()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading stats: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderCharts(renderer.NewCharts(stats, p)))
	return subcommands.ExitSuccess
}
