package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lotterybox/internal/app"
	"github.com/petuhovskiy/lotterybox/internal/conf"
	"github.com/petuhovskiy/lotterybox/internal/log"
)

func main() {
	cfg, err := conf.ParseEnv()
	if err != nil {
		log.DefaultGlobals()
		log.Fatal(context.Background(), "failed to parse config from env", zap.Error(err))
	}

	defer log.Globals(cfg.Debug)()
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	base, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(ctx, "failed to init app", zap.Error(err))
	}
	base.StartPrometheus()

	ctx = log.With(ctx, zap.String("pool", base.Plan.Name))
	log.Info(ctx, "starting workers",
		zap.Int("workers", cfg.Workers),
		zap.Int("draws", cfg.Draws),
		zap.Int("tickets", base.Remaining()),
	)

	res := base.RunWorkers(ctx)

	left := make(map[string]int, len(base.Plan.Deposits))
	for _, d := range base.Plan.Deposits {
		if n := base.RemainingOf(d.Item); n > 0 {
			left[d.Item] = n
		}
	}

	log.Info(ctx, "workers finished",
		zap.Int("kept", res.Total()),
		zap.Any("items", res.Items),
		zap.Any("left", left),
		zap.Stringer("dump", base.Pool),
	)

	// the pool is not persisted, unclaimed tickets are gone after exit
	base.Clear(ctx)
}
