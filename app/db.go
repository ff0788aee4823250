package app

import (
	"database/sql"
	"fmt"
	"log"
	"time"

	"github.com/990663236/veritext/app/config"
	"github.com/990663236/veritext/app/migrations"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"
)

// OpenDB connects to Postgres, verifies the connection, and runs the
// embedded schema migrations.
func OpenDB(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}

	// Recycle pooled connections periodically; managed Postgres setups
	// drop idle connections well before this.
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("db.Ping: %w", err)
	}

	if err := runMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrations: %w", err)
	}

	log.Println("Connected to Postgres")
	return db, nil
}

func runMigrations(db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}
	return goose.Up(db, ".")
}
