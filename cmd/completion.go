package cmd

import (
	"flag"
	"strings"

	"github.com/etnz/moneytracker"
	"github.com/etnz/moneytracker/docs"
	"github.com/etnz/moneytracker/report"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// flagPredictors completes flag values that have a closed set of values.
var flagPredictors = map[string]complete.Predictor{
	"config":      predict.Files("*.yaml"),
	"ledger-file": predict.Files("*"),
	"backend":     predict.Set{"auto", "json", "sqlite"},
	"o-backend":   predict.Set{"auto", "json", "sqlite"},
	"style":       predict.Set{"auto", "dark", "light", "notty", "raw"},
	"k":           kindPredictor(),
	"order":       predict.Set{"asc", "desc"},
	"s":           predict.Set{"id", "title", "amount", "date"},
	"f":           formatPredictor(),
}

func kindPredictor() predict.Set {
	s := predict.Set{"all"}
	for _, k := range moneytracker.ItemTypes {
		s = append(s, strings.ToLower(k.String()))
	}
	return s
}

func formatPredictor() predict.Set {
	var s predict.Set
	for _, f := range report.Formats {
		s = append(s, f.String())
	}
	return s
}

// Completion builds the shell completion of the commander from the flag sets
// of its commands.
func Completion(c *subcommands.Commander, global *flag.FlagSet) *complete.Command {
	root := &complete.Command{
		Sub:   map[string]*complete.Command{},
		Flags: flagsOf(global),
	}
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
		cmd.SetFlags(fs)
		sub := &complete.Command{Flags: flagsOf(fs)}
		switch cmd.Name() {
		case "topic":
			topics, _ := docs.GetAllTopics()
			sub.Args = predict.Set(append(topics, "readme"))
		case "help":
			var names predict.Set
			c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
				names = append(names, cmd.Name())
			})
			sub.Args = names
		}
		root.Sub[cmd.Name()] = sub
	})
	return root
}

func flagsOf(fs *flag.FlagSet) map[string]complete.Predictor {
	flags := map[string]complete.Predictor{}
	fs.VisitAll(func(f *flag.Flag) {
		if p, ok := flagPredictors[f.Name]; ok {
			flags[f.Name] = p
			return
		}
		if b, ok := f.Value.(interface{ IsBoolFlag() bool }); ok && b.IsBoolFlag() {
			flags[f.Name] = predict.Nothing
			return
		}
		if strings.HasSuffix(f.Name, "file") {
			flags[f.Name] = predict.Files("*")
			return
		}
		flags[f.Name] = predict.Something
	})
	return flags
}
