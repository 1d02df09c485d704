package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/haamee/haamee-api/internal/api"
	"github.com/haamee/haamee-api/internal/config"
	"github.com/haamee/haamee-api/internal/db"
	"github.com/haamee/haamee-api/internal/logger"
	"github.com/haamee/haamee-api/internal/storage"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	// The embedded sqlite file is the default store. DATABASE_URL switches
	// the process over to postgres without a config change.
	dbURL := os.Getenv("DATABASE_URL")
	var gormDB *gorm.DB
	if dbURL != "" {
		gormDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		gormDB, err = db.OpenSQLite(conf.SQLite)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	uploads, err := storage.New(conf.API.UploadsDir)
	if err != nil {
		return fmt.Errorf("failed to initialize uploads directory -> %w", err)
	}

	s := api.NewServer(conf, gormDB, uploads)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
