package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/mpelletier/rebalance/cmd"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// API keys may live in a .env file next to the data
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the verbs and the file flags.
func completion() {
	files := predict.Files("*.csv")
	c := &complete.Command{
		Flags: map[string]complete.Predictor{
			"holdings-file": files,
			"model-file":    files,
		},
		Sub: map[string]*complete.Command{
			"holdings":  {},
			"update":    {},
			"set":       {},
			"rebalance": {},
			"nosell":    {},
			"spend":     {},
			"topic":     {},
		},
	}
	c.Complete("rebal")
}
