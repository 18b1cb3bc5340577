// Command sg tracks the growth of a social media account.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path"

	"github.com/etnz/growth/cmd"
	"github.com/google/subcommands"
)

func main() {
	name := path.Base(os.Args[0])
	cmd.Completion().Complete(name)

	commander := subcommands.NewCommander(flag.CommandLine, name)
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()

	config, err := cmd.LoadConfig(".env")
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}

	var debug io.Writer
	if *cmd.DebugFile != "" {
		f, err := os.OpenFile(*cmd.DebugFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error opening debug file:", err)
			os.Exit(int(subcommands.ExitFailure))
		}
		debug = f
	}

	logger, err := cmd.NewLogger(config.LogLevel, os.Stderr, debug)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(int(subcommands.ExitFailure))
	}
	cmd.Configure(config, logger)

	status := commander.Execute(context.Background())
	if f, ok := debug.(*os.File); ok {
		f.Close()
	}
	os.Exit(int(status))
}
