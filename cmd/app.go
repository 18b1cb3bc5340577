// Package cmd implements the CLI application to track social media growth.
package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/growth"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	for _, g := range groups {
		for _, cmd := range g.commands {
			c.Register(cmd, g.name)
		}
	}
}

type group struct {
	name     string
	commands []subcommands.Command
}

var groups = []group{
	{"views", []subcommands.Command{&dashboardCmd{}, &chartsCmd{}}},
	{"entry", []subcommands.Command{&addStatCmd{}, &addPostCmd{}, &clearCmd{}}},
	{"advice", []subcommands.Command{&adviseCmd{}}},
	{"help", []subcommands.Command{&topicCmd{}}},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var (
	config = DefaultConfig()
	logger = slog.New(slog.DiscardHandler)

	stdout io.Writer = os.Stdout
	stdin  io.Reader = os.Stdin
)

// Configure sets the configuration and logger used by all commands.
func Configure(c *Config, l *slog.Logger) {
	config = c
	logger = l
}

// DataDir is the folder holding the records, the -data-dir flag wins over
// the configuration.
func DataDir() string {
	if *dataDir != "" {
		return *dataDir
	}
	return config.DataDir
}

// OpenStore opens the store in the data folder.
func OpenStore() *growth.Store {
	return growth.NewStore(growth.NewDirKV(DataDir()), logger)
}

// OpenTracker opens the store and loads both collections.
func OpenTracker() *growth.Tracker {
	t := growth.NewTracker(OpenStore(), logger)
	t.Initialize()
	return t
}

// activePlatform resolves a command's -p flag, falling back on the
// configured platform.
func activePlatform(flagValue string) (growth.Platform, error) {
	if flagValue == "" {
		flagValue = config.Platform
	}
	return growth.ParsePlatform(flagValue)
}

// printMarkdown prints md to stdout, styled for the terminal unless -plain
// is set.
func printMarkdown(md string) {
	if *plain {
		fmt.Fprint(stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		logger.Debug("cannot create markdown renderer", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		logger.Debug("cannot render markdown", "error", err)
		fmt.Fprint(stdout, md)
		return
	}
	fmt.Fprint(stdout, out)
}
