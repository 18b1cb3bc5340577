package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth"
	"github.com/etnz/growth/advisor"
	"github.com/etnz/growth/renderer"
	"github.com/google/subcommands"
	"google.golang.org/genai"
)

// newGenerator connects to Gemini. The client reads its API key from
// GEMINI_API_KEY or GOOGLE_API_KEY.
var newGenerator = func(ctx context.Context) (advisor.Generator, error) {
	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		return nil, err
	}
	return client.Models, nil
}

type adviseCmd struct {
	platform string
	model    string
}

func (*adviseCmd) Name() string     { return "advise" }
func (*adviseCmd) Synopsis() string { return "ask the AI strategist for a growth plan" }
func (*adviseCmd) Usage() string {
	return `advise [-p <platform>] [-model <model>]

  Sends the recent daily stats and top posts of the platform to Gemini and
  shows its analysis: a focus area, the advice, and an action plan.

  At least two days of stats are needed. The API key is read from
  GEMINI_API_KEY or GOOGLE_API_KEY.
`
}

func (c *adviseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.platform, "p", "", "Platform to analyze (instagram or youtube). Defaults to $GROWTH_PLATFORM")
	f.StringVar(&c.model, "model", "", "Gemini model to use. Defaults to $GROWTH_MODEL")
}

func (c *adviseCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	if err := advisor.Check(stats, p); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	gen, err := newGenerator(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}
	a := advisor.New(gen, logger)
	a.ModelName = c.model
	if a.ModelName == "" {
		a.ModelName = config.Model
	}

	fmt.Fprintln(os.Stderr, "Analyzing...")
	var res advisor.Result
	select {
	case res = <-a.AdviseAsync(ctx, stats, posts, p):
	case <-ctx.Done():
		res.Err = ctx.Err()
	}
	if res.Err != nil {
		var remote *growth.RemoteAdviceError
		if errors.As(res.Err, &remote) {
			fmt.Fprintf(os.Stderr, "Failed to generate advice, please try again: %v\n", remote.Err)
		} else {
			fmt.Fprintln(os.Stderr, "Error:", res.Err)
		}
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderAdvice(p, res.Response))
	return subcommands.ExitSuccess
}
