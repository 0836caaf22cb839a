package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/timevault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags,
// after filtering os.Args down to the flags handled here.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-w", "-k"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerEndpointAddr, "a", cfg.ServerEndpointAddr, "address and port to access server")
	fs.DurationVar(&cfg.RequestTimeout, "w", cfg.RequestTimeout, "per-request timeout")
	fs.StringVar(&cfg.AccessToken, "k", cfg.AccessToken, "access token")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
