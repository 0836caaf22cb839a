package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/timevault/internal/buildinfo"
	"github.com/dmitrijs2005/timevault/internal/server"
	"github.com/dmitrijs2005/timevault/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
