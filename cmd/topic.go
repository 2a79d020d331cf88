package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/moneytracker/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	list bool
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [-l] [<topic>...]

Show documentation for the given topics, or the index of topics.
Use '*' for all of them, or -l for their titles.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.list, "l", false, "list the topics with their titles")
}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var doc string
	var err error
	switch {
	case c.list:
		doc, err = topicList()
	case f.NArg() == 0:
		doc, err = docs.GetTopic("readme")
	default:
		doc, err = docs.GetTopics(f.Args()...)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading doc: %v\n", err)
		return subcommands.ExitFailure
	}
	cfg, err := Settings()
	if err != nil {
		// documentation must stay readable with a broken configuration.
		cfg.Style = "auto"
	}
	printMarkdown(cfg, doc)
	return subcommands.ExitSuccess
}

// topicList returns a markdown list of every topic and its title.
func topicList() (string, error) {
	topics, err := docs.GetAllTopics()
	if err != nil {
		return "", err
	}
	var b strings.Builder
	b.WriteString("# Topics\n\n")
	for _, topic := range topics {
		title, err := docs.Title(topic)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "* `%s`: %s\n", topic, title)
	}
	return b.String(), nil
}
