package main

import (
	"context"
	"errors"
	"log"
	"os"

	"github.com/dmitrijs2005/dreamjob/internal/admin"
	"github.com/dmitrijs2005/dreamjob/internal/server"
	"github.com/dmitrijs2005/dreamjob/internal/server/config"
	"github.com/dmitrijs2005/dreamjob/internal/server/services"
)

func main() {
	if err := run(context.Background()); err != nil {
		if !errors.Is(err, admin.ErrUsage) {
			log.Print(err)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg := config.LoadConfig()

	db, rm, err := server.OpenDatabase(ctx, cfg)
	if err != nil {
		return err
	}
	if db == nil {
		log.Println("warning: no datasource configured, changes are not persisted")
	} else {
		defer db.Close()
	}

	us := services.NewUserService(db, rm, server.NewPasswordHasher(cfg))
	app := admin.NewApp(db, rm, us, os.Stdin, os.Stdout)

	return app.Run(ctx, admin.Commands(os.Args[1:]))
}
