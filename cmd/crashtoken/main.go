// Command crashtoken mints a bearer token for a local account.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/crashbet/pkg/auth"
)

type options struct {
	Secret string `env:"JWT_SECRET" envDefault:"your-secret-key"`
}

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	opts := options{}
	if err := env.Parse(&opts); err != nil {
		log.Fatal().Err(err).Msg("can't parse environment")
	}

	accountID := flag.Int64("account", 0, "account id to issue the token for")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.StringVar(&opts.Secret, "secret", opts.Secret, "signing secret, defaults to JWT_SECRET")
	flag.Parse()

	if *accountID <= 0 {
		log.Fatal().Int64("account", *accountID).Msg("account id must be positive")
	}

	token, err := auth.NewJWTService(opts.Secret).GenerateJWT(*accountID, time.Now().Add(*ttl))
	if err != nil {
		log.Fatal().Err(err).Msg("can't generate token")
	}
	fmt.Println(token)
}
