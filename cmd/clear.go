package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type clearCmd struct {
	yes bool
}

func (*clearCmd) Name() string     { return "clear" }
func (*clearCmd) Synopsis() string { return "remove all recorded stats and posts" }
func (*clearCmd) Usage() string {
	return `clear [-y]

  Removes the stats and posts records from the data folder. The next command
  starts again from the sample data.
`
}

func (c *clearCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.yes, "y", false, "Do not ask for confirmation")
}

func (c *clearCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.yes {
		fmt.Fprintf(stdout, "Remove all records in %s? [y/N] ", DataDir())
		answer, _ := bufio.NewReader(stdin).ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(stdout, "Aborted.")
			return subcommands.ExitSuccess
		}
	}

	if err := OpenStore().Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error clearing records: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintln(stdout, "All records removed.")
	return subcommands.ExitSuccess
}
