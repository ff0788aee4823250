package main

import (
	"log"

	"github.com/990663236/veritext/app"
	"github.com/990663236/veritext/app/config"
	"github.com/990663236/veritext/classifier"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := app.OpenDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	clf, err := classifier.Load(cfg.Model.Path, cfg.Model.Required)
	if err != nil {
		log.Fatalf("failed to load classifier: %v", err)
	}

	server := app.NewServer(db, clf)
	if err := server.NewRouter().Run(cfg.Addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
