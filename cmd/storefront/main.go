package main

import (
	"context"
	"log"
	"os"

	"github.com/CaioNunes1/ecommerce-front/internal/buildinfo"
	"github.com/CaioNunes1/ecommerce-front/internal/client/cli"
	"github.com/CaioNunes1/ecommerce-front/internal/client/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := cli.NewApp(cfg)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
