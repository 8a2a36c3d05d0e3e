package cmd

import (
	"os"

	"github.com/jmoiron/sqlx"
	"github.com/templui/bloglist/internal/config"
	"github.com/templui/bloglist/internal/db"
	"github.com/templui/bloglist/internal/logger"
)

// open loads config the same way the server does and connects to its database.
func open() (*config.Config, *sqlx.DB, error) {
	cfg := config.Load()

	logger.Init(logger.Options{
		Development: true,
		Output:      os.Stderr,
	})

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, nil, err
	}
	return cfg, database, nil
}
