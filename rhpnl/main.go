// Command rhpnl reports position and profit for a brokerage trade history.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/golang/glog"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/kosarinj/robinhood-pnl-tracker-sub001/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Credentials for the quote and assistant services may live in a .env file.
	_ = godotenv.Load()

	// Shell completion, a no-op unless invoked by the shell.
	completer().Complete("rhpnl")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	status := commander.Execute(context.Background())
	glog.Flush()
	os.Exit(int(status))
}

func completer() *complete.Command {
	dateFlag := map[string]complete.Predictor{"d": predict.Something}
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"report":  {Flags: dateFlag},
			"symbol":  {Flags: dateFlag, Args: predict.Something},
			"export":  {Flags: map[string]complete.Predictor{"d": predict.Something, "o": predict.Files("*.json")}},
			"fetch":   {},
			"explain": {Flags: dateFlag, Args: predict.Something},
			"topic":   {Args: predict.Set{"readme", "accounting", "made-up-ground", "data-files"}},
		},
		Flags: map[string]complete.Predictor{"config": predict.Files("*.yaml")},
	}
}
