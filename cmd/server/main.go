package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sekolahvote/voting-portal/internal/api"
	"github.com/sekolahvote/voting-portal/internal/core/domain"
	"github.com/sekolahvote/voting-portal/internal/core/service"
	"github.com/sekolahvote/voting-portal/internal/infrastructure/config"
	redisdb "github.com/sekolahvote/voting-portal/internal/infrastructure/db/redis"
	"github.com/sekolahvote/voting-portal/internal/infrastructure/db/sqlite"
	"github.com/sekolahvote/voting-portal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{})
		l := logger.Get()
		l.Fatal().Err(err).Msg("configuration failed")
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	db, err := sqlite.Open(sqlite.Config{Path: cfg.SQLite.Path})
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.SQLite.Path).Msg("sqlite open failed")
	}
	defer db.Close()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
	if err != nil {
		log.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("redis connect failed")
	}
	defer rdb.Close()

	if err := seedAdmin(ctx, db, cfg.Admin); err != nil {
		log.Fatal().Err(err).Msg("admin seed failed")
	}

	e := api.NewRouter(db, rdb, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("voting portal listening")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("shutdown failed")
	}
	log.Info().Msg("voting portal stopped")
}

// seedAdmin creates the bootstrap admin account when configured and not
// already present. Without it a fresh deployment has no way to log in and
// create accounts.
func seedAdmin(ctx context.Context, db *sql.DB, seed config.AdminSeedConfig) error {
	if seed.Username == "" || seed.Password == "" {
		return nil
	}

	admin := service.NewAdminService(sqlite.NewUserRepository(db), sqlite.NewVoteRepository(db))
	_, err := admin.CreateUser(ctx, seed.Username, seed.Password, domain.RoleAdmin)
	if errors.Is(err, domain.ErrUserExists) {
		return nil
	}
	return err
}
