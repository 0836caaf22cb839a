// Command tokengen issues access tokens for the vault server. It reads the
// signing secret and token lifetime from the same config sources as the
// server (-c, -s, -t).
//
//	tokengen -sub <address>
//	tokengen -new
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/timevault/internal/address"
	"github.com/dmitrijs2005/timevault/internal/flagx"
	"github.com/dmitrijs2005/timevault/internal/server/auth"
	"github.com/dmitrijs2005/timevault/internal/server/config"
	"github.com/google/uuid"
)

var errNoSubject = errors.New("either -sub or -new is required")

func run(args []string, cfg *config.Config, w io.Writer) error {
	var (
		subject string
		fresh   bool
	)

	fs := flag.NewFlagSet("tokengen", flag.ContinueOnError)
	fs.StringVar(&subject, "sub", "", "user address to put in the token subject")
	fs.BoolVar(&fresh, "new", false, "mint a fresh random user identity")
	if err := fs.Parse(flagx.FilterArgs(args, []string{"-sub", "-new"})); err != nil {
		return err
	}

	if fresh {
		subject = address.Derive("user", uuid.NewString()).String()
	}
	if subject == "" {
		return errNoSubject
	}
	if err := address.Validate(subject); err != nil {
		return fmt.Errorf("-sub %q: %w", subject, err)
	}

	token, err := auth.GenerateToken(subject, []byte(cfg.SecretKey), cfg.AccessTokenValidityDuration)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "user:  %s\n", subject)
	fmt.Fprintf(w, "token: %s\n", token)
	return nil
}

func main() {
	cfg := config.LoadConfig()
	if err := run(os.Args[1:], cfg, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}
