package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/growth/docs"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2/predict"
)

type topicCmd struct{}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Show documentation for the given topics, or the list of topics. Use '*'
  to show them all.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(doc)

	return subcommands.ExitSuccess
}

func topicNames() predict.Set {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return nil
	}
	return append(predict.Set{"*"}, topics...)
}
