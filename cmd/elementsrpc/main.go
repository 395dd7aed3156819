package main

import (
	"os"

	"github.com/rs/zerolog"
)

var (
	version = "dev"
	commit  = "none"
)

func main() {
	if err := NewCommand(version, commit).Execute(); err != nil {
		log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
		log.Error().Err(err).Msg("elementsrpc failed")
		os.Exit(1)
	}
}
