package main

import (
	"context"
	"log"

	"github.com/cryptiom/cryptiom-server/internal/server"
	"github.com/cryptiom/cryptiom-server/internal/server/config"
)

func main() {

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(ctx, cfg)

	if err != nil {
		// schema or config init failure must abort with a non-zero status
		log.Fatalf("%v", err)
	}

	app.Run(ctx)

}
