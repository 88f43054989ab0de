// This package is used to initialize the application. It wires the config,
// the lottery pool described by the plan, metrics and background jobs.
package app

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/petuhovskiy/lotterybox/internal/bgjobs"
	"github.com/petuhovskiy/lotterybox/internal/conf"
	"github.com/petuhovskiy/lotterybox/internal/log"
	"github.com/petuhovskiy/lotterybox/internal/lottery"
	"github.com/petuhovskiy/lotterybox/internal/rdesc"
)

type App struct {
	Config   *conf.App
	Plan     *rdesc.Plan
	Pool     *lottery.Pool[string]
	Register *bgjobs.Register
	Locker   *bgjobs.PoolLocker
	Metrics  *Metrics
	Registry *prometheus.Registry

	// rnd is seeded from Config.Seed and shared by draws and return choices
	rnd *rand.Rand
}

func NewApp(cfg *conf.App) (*App, error) {
	plan, err := rdesc.LoadPlan(cfg.PlanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Info(context.Background(), "using seed", zap.Int64("seed", seed))

	// *rand.Rand is not safe for concurrent use, it's only called under the pool lock
	rnd := rand.New(rand.NewSource(seed))
	pool := plan.Build(zap.L(), lottery.WithRand(rnd))

	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)
	metrics.Tickets.WithLabelValues(plan.Name).Set(float64(pool.Count()))

	return &App{
		Config:   cfg,
		Plan:     plan,
		Pool:     pool,
		Register: bgjobs.NewRegister(),
		Locker:   bgjobs.NewPoolLocker(),
		Metrics:  metrics,
		Registry: registry,
		rnd:      rnd,
	}, nil
}

func (a *App) StartPrometheus() {
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(a.Registry, promhttp.HandlerOpts{}))
		err := http.ListenAndServe(a.Config.PrometheusBind, mux)
		if err != nil && err != http.ErrServerClosed {
			log.Fatal(context.TODO(), "prometheus server error", zap.Error(err))
		}
	}()
}

func (a *App) lock() *bgjobs.PoolLock {
	return a.Locker.Get(a.Plan.Name)
}

func (a *App) updateTickets() {
	a.Metrics.Tickets.WithLabelValues(a.Plan.Name).Set(float64(a.Pool.Count()))
}

// Draw takes one random ticket out of the pool.
func (a *App) Draw(ctx context.Context) (string, bool) {
	defer a.lock().ExclusiveLock()()

	item, ok := a.Pool.Draw()
	if !ok {
		a.Metrics.DrawFailures.WithLabelValues(a.Plan.Name).Inc()
		log.Debug(ctx, "nothing to draw")
		return "", false
	}

	a.Metrics.Draws.WithLabelValues(a.Plan.Name, item).Inc()
	a.updateTickets()
	log.Debug(ctx, "ticket drawn", zap.String("item", item), zap.Int("left", a.Pool.Count()))
	return item, true
}

// Deposit adds (n > 0) or removes (n < 0) tickets of a single item.
func (a *App) Deposit(ctx context.Context, item string, n int) error {
	defer a.lock().ExclusiveLock()()

	err := a.Pool.Adjust(item, n)
	if err != nil {
		return fmt.Errorf("failed to deposit %d of %q: %w", n, item, err)
	}

	a.updateTickets()
	log.Debug(ctx, "tickets deposited", zap.String("item", item), zap.Int("count", n))
	return nil
}

// ShouldReturn decides whether a drawn ticket is put back, using the seeded
// generator.
func (a *App) ShouldReturn() bool {
	defer a.lock().ExclusiveLock()()
	return a.Plan.ShouldReturn(a.rnd)
}

// Clear empties the pool.
func (a *App) Clear(ctx context.Context) {
	defer a.lock().ExclusiveLock()()

	a.Pool.Clear()
	a.updateTickets()
	log.Info(ctx, "pool cleared", zap.String("pool", a.Plan.Name))
}

// Remaining returns the number of tickets left in the pool.
func (a *App) Remaining() int {
	defer a.lock().SharedLock()()
	return a.Pool.Count()
}

// RemainingOf returns the number of tickets left for item.
func (a *App) RemainingOf(item string) int {
	defer a.lock().SharedLock()()
	return a.Pool.CountOf(item)
}

func (a *App) Dump(w io.Writer) error {
	defer a.lock().SharedLock()()
	return a.Pool.Dump(w)
}
