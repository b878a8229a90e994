package main

import (
	"context"
	"log"

	"ai-study-notebook-be/internal/bootstrap"
	"ai-study-notebook-be/internal/config"
	"ai-study-notebook-be/internal/server"
	"ai-study-notebook-be/internal/tracer"
	"ai-study-notebook-be/pkg/database"

	"gorm.io/gorm"
)

func main() {
	// 0. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// 2. Initialize Database
	var gormDB *gorm.DB
	var err error
	if cfg.Database.UseLocalDB {
		gormDB, err = database.NewLocalGormDB(cfg.Database.LocalDBPath)
	} else {
		gormDB, err = database.NewGormDBFromDSN(cfg.Database.Connection)
	}
	if err != nil {
		log.Panicf("Unable to connect to GORM DB: %v", err)
	}

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(gormDB, cfg)

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
