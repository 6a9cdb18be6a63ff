package commands

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/lager"
	"github.com/kardianos/osext"

	"github.com/passrisk/passrisk/analyzer"
	"github.com/passrisk/passrisk/suggest"
	"github.com/passrisk/passrisk/toplist"
)

type CheckCommand struct {
	Password  string `short:"p" long:"password" description:"analyze a single password and exit" value-name:"PASSWORD"`
	TopList   string `long:"top-list" description:"path to a local top-passwords list" value-name:"PATH" default:"pwned-top100k.txt"`
	NoTopList bool   `long:"no-top-list" description:"skip loading a top-passwords list"`
	JSON      bool   `long:"json" description:"emit each analysis as a JSON record"`
	Debug     bool   `long:"debug" description:"enables debug logging"`
}

func (command *CheckCommand) Execute(args []string) error {
	warnIfOldExecutable()

	logger := lager.NewLogger("check")
	if command.Debug {
		logger.RegisterSink(lager.NewWriterSink(os.Stderr, lager.DEBUG))
	}

	ana := analyzer.New(command.loadRanks(logger), suggest.NewGenerator(nil))

	riskyFound := 0
	report := func(result analyzer.Analysis) error {
		if risky(result) {
			riskyFound++
		}

		if command.JSON {
			return json.NewEncoder(os.Stdout).Encode(result)
		}

		printAnalysis(result)
		return nil
	}

	if command.Password != "" {
		if err := report(ana.Analyze(command.Password)); err != nil {
			return err
		}
	} else if err := command.runPromptLoop(ana, report); err != nil {
		return err
	}

	if riskyFound > 0 {
		os.Exit(3)
	}

	return nil
}

// runPromptLoop reads passwords from stdin until a blank line or EOF. The
// password is the one string that must never appear on stdout, in logs, or in
// any analysis record.
func (command *CheckCommand) runPromptLoop(ana *analyzer.Analyzer, report func(analyzer.Analysis) error) error {
	if !command.JSON {
		fmt.Println("passrisk - defensive checks only; no password is stored or printed.")
	}

	stdin := bufio.NewScanner(os.Stdin)
	for {
		if !command.JSON {
			fmt.Print("\nEnter password to check (blank line to exit): ")
		}

		if !stdin.Scan() {
			break
		}

		password := stdin.Text()
		if password == "" {
			break
		}

		if err := report(ana.Analyze(password)); err != nil {
			return err
		}
	}

	return stdin.Err()
}

func (command *CheckCommand) loadRanks(logger lager.Logger) analyzer.RankLookup {
	if command.NoTopList {
		return nil
	}

	table, err := toplist.Load(logger, command.TopList)
	if err != nil {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "No usable top list at", command.TopList, "- continuing without breach-rank warnings.")
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Run `passrisk fetch` to download one.")
		return nil
	}

	fmt.Fprintf(os.Stderr, "Loaded top list (%d entries) for rank-based warnings.\n", table.Len())
	return table
}

func risky(result analyzer.Analysis) bool {
	return result.InTop || result.Strength == analyzer.StrengthWeak
}

func printAnalysis(result analyzer.Analysis) {
	fmt.Println()
	fmt.Println("Estimated entropy (bits):", result.EntropyBits)
	fmt.Println("Strength:", strengthTag(result.Strength))
	if result.InTop {
		fmt.Printf("%s This password appears in breached lists (rank: %d)\n", red("[BREACH]"), result.Rank)
	}
	fmt.Println("Estimated time to compromise (very coarse):", result.TimeToCompromise)
	for _, tip := range result.Tips {
		fmt.Println("-", tip)
	}
}

func strengthTag(strength string) string {
	switch strength {
	case analyzer.StrengthWeak:
		return red("[WEAK]")
	case analyzer.StrengthModerate:
		return yellow("[MODERATE]")
	default:
		return green("[STRONG]")
	}
}

func warnIfOldExecutable() {
	const twoWeeks = 14 * 24 * time.Hour

	exePath, err := osext.Executable()
	if err != nil {
		return
	}

	info, err := os.Stat(exePath)
	if err != nil {
		return
	}

	if time.Since(info.ModTime()) > twoWeeks {
		fmt.Fprintln(os.Stderr, yellow("[WARN]"), "Executable is old! Please consider running `passrisk update`.")
	}
}
