package main

import (
	"context"
	"os"

	"directory-service/cmd/cli"

	"github.com/rs/zerolog/log"
)

func main() {
	if err := cli.Entrypoint().ExecuteContext(context.Background()); err != nil {
		log.Error().Err(err).Msg("directory-service failed")
		os.Exit(1)
	}
}
