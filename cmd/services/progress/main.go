package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	config "github.com/talkready/backend/config/progress"
	"github.com/talkready/backend/pkg/logger"
	"github.com/talkready/backend/services/progress/server"
	"github.com/talkready/backend/services/progress/storage/postgres"
	"github.com/talkready/backend/services/progress/usecase"
)

func main() {
	log := logger.New(logger.Config{
		Level:      slog.LevelDebug,
		Output:     os.Stderr,
		AddSource:  true,
		JSONFormat: false,
	})

	cfg := config.MustLoad()

	ctx := logger.WithContext(context.Background(), log)

	rootCtx, cancel := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer cancel()

	if err := run(rootCtx, cfg, log); err != nil {
		log.Error("failed to run()", slog.String("error", err.Error()))
		return
	}
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	db, err := postgres.Open(cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect to database", slog.String("error", err.Error()))
		return err
	}
	defer db.Close()

	stg := postgres.New(db)
	uc := usecase.New(stg)

	srv := server.New(cfg, log, uc)
	return srv.Start(ctx)
}
