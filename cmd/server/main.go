package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog"

	"github.com/chepyr/taskboard/internal/config"
	"github.com/chepyr/taskboard/internal/db"
	"github.com/chepyr/taskboard/internal/handlers"
	"github.com/chepyr/taskboard/internal/logger"
)

func main() {
	log := logger.NewDefault()

	cfg, err := config.NewEnvReader().Read()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to read config")
	}
	appLog, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatal().Err(err).Str("env", cfg.Env).Msg("failed to init logger")
	}
	log = appLog

	dbConn := initDB(cfg, log)
	defer dbConn.Close()

	handler := initHandlers(cfg, dbConn, log)
	defer handler.RateLimiter.Stop()
	defer handler.WSHub.Close()

	server := initServer(cfg, handler)
	startServer(cfg, server, log)
}

func initDB(cfg *config.Config, log zerolog.Logger) *sql.DB {
	pgCfg := cfg.Postgres
	dbConn, err := db.Connect(pgCfg.Driver, pgCfg.DSN(), pgCfg.MaxOpenConns, pgCfg.MaxIdleConns)
	if err != nil {
		log.Fatal().Err(err).
			Str("driver", pgCfg.Driver).
			Str("host", pgCfg.Host).
			Int("port", pgCfg.Port).
			Msg("failed to connect to database")
	}
	log.Info().Str("driver", pgCfg.Driver).Str("database", pgCfg.Database).Msg("connected to database")

	if pgCfg.InitSchema {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.RequestTimeout)
		defer cancel()
		if err := db.InitSchema(ctx, dbConn); err != nil {
			log.Fatal().Err(err).Msg("failed to init schema")
		}
		log.Info().Msg("database schema is ready")
	}
	return dbConn
}

func initHandlers(cfg *config.Config, dbConn *sql.DB, log zerolog.Logger) *handlers.Handler {
	return &handlers.Handler{
		TaskRepo:       db.NewTaskRepository(dbConn),
		UserRepo:       db.NewUserRepository(dbConn),
		CommentRepo:    db.NewCommentRepository(dbConn),
		DB:             dbConn,
		RateLimiter:    handlers.NewRateLimiter(cfg.WS.ConnectLimit, cfg.WS.ConnectWindow),
		WSHub:          handlers.NewWSHub(log),
		Logger:         log,
		RequestTimeout: cfg.HTTP.RequestTimeout,
	}
}

func initServer(cfg *config.Config, handler *handlers.Handler) *http.Server {
	if cfg.Env != config.EnvLocal {
		gin.SetMode(gin.ReleaseMode)
	}
	return &http.Server{
		Addr:    cfg.HTTP.Addr(),
		Handler: handlers.NewRouter(handler),
	}
}

func startServer(cfg *config.Config, server *http.Server, log zerolog.Logger) {
	log.Info().Str("addr", server.Addr).Msg("starting taskboard server")

	go func() {
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
		return
	}
	log.Info().Msg("server stopped")
}
