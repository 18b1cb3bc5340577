package cmd

import (
	"flag"

	"github.com/etnz/growth"
	"github.com/etnz/growth/advisor"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

var dataDir = flag.String("data-dir", "", "Folder holding stats.json and posts.json. Defaults to $GROWTH_DATA_DIR or .growth")
var plain = flag.Bool("plain", false, "Print raw markdown instead of styling it for the terminal")

// DebugFile is the file debug logs are also written to, as json.
var DebugFile = flag.String("debug", "", "Also write debug logs as json to this file")

var platformNames = func() predict.Set {
	var s predict.Set
	for _, p := range growth.Platforms {
		s = append(s, string(p))
	}
	return s
}()

var postTypeNames = func() predict.Set {
	var s predict.Set
	for _, t := range growth.PostTypes {
		s = append(s, string(t))
	}
	return s
}()

// flagPredictors maps flag names to their completion.
var flagPredictors = map[string]complete.Predictor{
	"p":        platformNames,
	"type":     postTypeNames,
	"model":    predict.Set{advisor.DefaultModel, "gemini-2.5-pro"},
	"data-dir": predict.Something,
	"debug":    predict.Something,
}

type boolFlag interface {
	IsBoolFlag() bool
}

// predictors returns the completion of every flag in fs.
func predictors(fs *flag.FlagSet) map[string]complete.Predictor {
	m := make(map[string]complete.Predictor)
	fs.VisitAll(func(f *flag.Flag) {
		if b, ok := f.Value.(boolFlag); ok && b.IsBoolFlag() {
			m[f.Name] = predict.Nothing
			return
		}
		if p, ok := flagPredictors[f.Name]; ok {
			m[f.Name] = p
			return
		}
		m[f.Name] = predict.Something
	})
	return m
}

// Completion describes the command line for shell completion.
func Completion() *complete.Command {
	root := &complete.Command{
		Sub:   make(map[string]*complete.Command),
		Flags: predictors(flag.CommandLine),
	}
	for _, g := range groups {
		for _, c := range g.commands {
			fs := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
			c.SetFlags(fs)
			sub := &complete.Command{Flags: predictors(fs)}
			if c.Name() == "topic" {
				sub.Args = topicNames()
			}
			root.Sub[c.Name()] = sub
		}
	}
	return root
}
