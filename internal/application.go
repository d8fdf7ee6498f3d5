package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/footygrid/footygrid-backend/internal/config"
	"github.com/footygrid/footygrid-backend/internal/dataset"
	"github.com/footygrid/footygrid-backend/internal/engine"
	"github.com/footygrid/footygrid-backend/internal/entity"
	"github.com/footygrid/footygrid-backend/internal/repository"
	"github.com/footygrid/footygrid-backend/internal/repository/storage"
	"github.com/footygrid/footygrid-backend/internal/service"
	"github.com/footygrid/footygrid-backend/transport/rest"
)

var (
	ErrAddrNotFound       = errors.New("redis address string is empty")
	ErrUnknownDatasetKind = errors.New("unknown dataset kind")
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	records, err := loadDataset(ctx, conf)
	if err != nil {
		return fmt.Errorf("could not load dataset: %w", err)
	}
	log.Info("Dataset loaded", "records", len(records), "kind", conf.Dataset.Kind)

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}
	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	gameRepo := repository.NewGameRepository(redisStorage.Connection)
	difficultyRepo := repository.NewDifficultyRepository(redisStorage.Connection)

	gamePlay := service.NewGamePlayService(
		logger,
		dataset.NewStatic(records),
		gameRepo,
		difficultyRepo,
		engine.Options{
			Attempts:          conf.Engine.Attempts,
			RetryAttempts:     conf.Engine.RetryAttempts,
			CenterProbability: conf.Engine.CenterProbability,
			CornerProbability: conf.Engine.CornerProbability,
		},
		time.Duration(conf.Engine.OpponentDelayMS)*time.Millisecond,
	)

	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(logger, conf.HTTPPort, gamePlay); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("Shutting down")
		return nil
	case err = <-httpErrCh:
		return fmt.Errorf("http server failed: %w", err)
	}
}

func loadDataset(ctx context.Context, conf *config.Config) ([]entity.PlayerRecord, error) {
	switch conf.Dataset.Kind {
	case "csv":
		return dataset.LoadCSV(conf.Dataset.Path)
	case "sqlite":
		return dataset.LoadSQLite(ctx, conf.Dataset.Path)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDatasetKind, conf.Dataset.Kind)
	}
}
