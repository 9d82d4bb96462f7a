// Package main запускает интерактивный игровой магазин в терминале.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/mmeshcher/gamestore/internal/config"
	"github.com/mmeshcher/gamestore/internal/console"
	"github.com/mmeshcher/gamestore/internal/logger"
	"github.com/mmeshcher/gamestore/internal/repository"
	"github.com/mmeshcher/gamestore/internal/seed"
	"github.com/mmeshcher/gamestore/internal/service"
)

func main() {
	bootstrap, _ := zap.NewProduction()
	defer bootstrap.Sync()

	sugar := bootstrap.Sugar()

	cfg, err := config.Parse()
	if err != nil {
		sugar.Fatalw("configuration error", "error", err.Error())
	}

	if err := run(cfg); err != nil {
		sugar.Fatalw("gamestore terminated with error", "error", err.Error())
	}
}

// run владеет журналом событий: файл закрывается на любом пути выхода.
func run(cfg *config.Config) error {
	traceLog, err := logger.New(cfg.LogFile, cfg.LogAppend)
	if err != nil {
		return err
	}
	defer traceLog.Close()

	traceLog.Info("program started", zap.String("log_file", cfg.LogFile))

	repo := repository.NewMemoryRepository()
	svc := service.NewService(repo, traceLog.Logger)
	defer svc.Close()

	if !cfg.NoSeed {
		data, err := seed.Load(cfg.SeedFile)
		if err != nil {
			traceLog.Error("seed load error", zap.Error(err))
			return err
		}
		if err := seed.Apply(svc, data); err != nil {
			traceLog.Error("seed apply error", zap.Error(err))
			return fmt.Errorf("apply seed: %w", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session := console.NewSession(svc, console.NewLineReader(os.Stdin), os.Stdout, traceLog.Logger)
	if err := session.Run(ctx); err != nil {
		return fmt.Errorf("session: %w", err)
	}

	traceLog.Info("program finished")
	return nil
}
