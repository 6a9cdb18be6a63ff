package commands

import (
	"fmt"
	"os"

	"code.cloudfoundry.org/lager"

	"github.com/passrisk/passrisk/toplist"
)

type FetchCommand struct {
	Output string `short:"o" long:"output" description:"where to save the downloaded list" value-name:"PATH" default:"pwned-top100k.txt"`
	URL    string `long:"url" description:"download from this URL only, skipping the built-in fallback chain" value-name:"URL"`
	Debug  bool   `long:"debug" description:"enables debug logging"`
}

func (command *FetchCommand) Execute(args []string) error {
	logger := lager.NewLogger("fetch")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	}

	urls := toplist.DefaultURLs()
	if command.URL != "" {
		urls = []string{command.URL}
	}

	fmt.Println("Downloading top-passwords list...")

	fetcher := toplist.NewFetcher(nil)
	if err := fetcher.Fetch(logger, urls, command.Output); err != nil {
		fmt.Println(red("FAILED"))
		return err
	}

	table, err := toplist.Load(logger, command.Output)
	if err != nil {
		return err
	}

	fmt.Println(green("DONE"))
	fmt.Printf("Saved %s (%d entries).\n", command.Output, table.Len())

	return nil
}
