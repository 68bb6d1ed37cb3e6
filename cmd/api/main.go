package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/GoSim-25-26J-441/taskboard-backend/config"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/bootstrap"
	"github.com/GoSim-25-26J-441/taskboard-backend/internal/logging"
)

const serviceName = "taskboard-backend"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logging.SetLevel(cfg.App.LogLevel)
	bootstrap.SetGinMode(cfg.App.Environment)

	ctx := context.Background()
	deps := bootstrap.RouterDeps{
		ServiceName: serviceName,
		Version:     cfg.App.Version,
		CORS:        cfg.CORS,
	}

	var db *sql.DB
	if cfg.Database.Driver == config.StorageDriverPostgres {
		db, err = bootstrap.OpenDB(ctx, &cfg.Database)
		if err != nil {
			log.Fatalf("database: %v", err)
		}
		defer db.Close()
		deps.DB = db
		log.Printf("storage: postgres")
	} else {
		log.Printf("storage: memory (data is lost on restart)")
	}

	rdb, err := bootstrap.OpenRedis(ctx, &cfg.Redis)
	if err != nil {
		log.Fatalf("redis: %v", err)
	}
	if rdb != nil {
		defer rdb.Close()
		deps.Redis = bootstrap.RedisPinger{Client: rdb}
		log.Printf("sessions: redis at %s", cfg.Redis.Addr)
	} else {
		log.Printf("sessions: memory")
	}

	deps.Services, err = bootstrap.NewServices(&cfg.Auth, bootstrap.NewStores(db, rdb))
	if err != nil {
		log.Fatalf("services: %v", err)
	}

	maintenance, err := bootstrap.NewMaintenance(deps.Services, cfg.Auth.SweepInterval)
	if err != nil {
		log.Fatalf("maintenance: %v", err)
	}
	maintenance.Start()

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      bootstrap.BuildRouter(deps),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Printf("listening on :%s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("serve: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("shutting down http server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("http server stopped")

	maintenance.Stop(shutdownCtx)
	log.Println("cron scheduler stopped")
}
