// Command mt is a personal money tracker: a ledger of incomes and expenses
// with an interactive menu and scriptable subcommands.
package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"path"

	"github.com/etnz/moneytracker/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	// exits when called by the shell for completion.
	cmd.Completion(commander, flag.CommandLine).Complete(commander.Name())

	flag.Parse()
	if !*cmd.Verbose {
		log.SetOutput(io.Discard)
	}

	ctx := context.Background()
	if flag.NArg() == 0 {
		os.Exit(int(cmd.RunSession(ctx)))
	}

	if !registered(commander, flag.Arg(0)) {
		if found, code := cmd.RunExtension(flag.Arg(0), flag.Args()[1:]); found {
			os.Exit(code)
		}
	}
	os.Exit(int(commander.Execute(ctx)))
}

// registered reports whether name is a registered subcommand.
func registered(c *subcommands.Commander, name string) (found bool) {
	c.VisitCommands(func(_ *subcommands.CommandGroup, cmd subcommands.Command) {
		found = found || cmd.Name() == name
	})
	return found
}
