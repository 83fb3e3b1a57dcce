// Command crdtctl is a small operator-facing CLI over a single on-disk
// replica of the gocrdt types. It is the "embedder" spec.md describes but
// keeps out of the core library's scope: replica-id provisioning and
// state hand-off between replicas both live here, not in the core package.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).
		With().Timestamp().Logger()

	if err := newRootCmd().Execute(); err != nil {
		log.Error().Err(err).Msg("crdtctl failed")
		os.Exit(1)
	}
}
