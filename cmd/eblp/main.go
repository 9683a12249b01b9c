package main

import (
	"os"

	"github.com/andrei-cloud/eblp/internal/commands/cli"
	"github.com/rs/zerolog/log"
)

// main builds the command tree and runs it.
func main() {
	root, err := cli.NewRootCommand()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build commands")
	}

	if err := root.Execute(); err != nil {
		root.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
