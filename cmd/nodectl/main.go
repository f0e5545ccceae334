// nodectl is a command-line client for the node-orchestrator API. It can
// create objects in bulk, fetch, update and delete single objects, validate
// payloads against local JSON Schemas, and mint test tokens.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logger. Diagnostics go to stderr so stdout stays parseable.
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
