package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	config "github.com/talkready/backend/config/evaluation"
	"github.com/talkready/backend/pkg/logger"
	"github.com/talkready/backend/services/evaluation/clients/audiostore"
	"github.com/talkready/backend/services/evaluation/clients/speech"
	"github.com/talkready/backend/services/evaluation/server"
	"github.com/talkready/backend/services/evaluation/usecase"
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
	audio := audiostore.New(log)
	transcriber := speech.New(speech.Config{
		Key:    cfg.SpeechKey,
		Region: cfg.SpeechRegion,
	}, log)

	uc := usecase.New(audio, transcriber)

	srv := server.New(cfg, log, uc)
	return srv.Start(ctx)
}
