package app

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lotterybox/internal/log"
)

// Results counts drawn tickets per item.
type Results struct {
	mu    sync.Mutex
	Items map[string]int
}

func (r *Results) add(item string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Items[item]++
}

// Total returns the number of tickets kept by the workers.
func (r *Results) Total() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	var total int
	for _, n := range r.Items {
		total += n
	}
	return total
}

// RunWorkers starts Config.Workers background jobs, each drawing up to
// Config.Draws tickets. A worker stops early when the pool is empty or ctx is
// done. Drawn tickets are put back when the plan says so.
func (a *App) RunWorkers(ctx context.Context) *Results {
	res := &Results{Items: make(map[string]int)}

	for i := 0; i < a.Config.Workers; i++ {
		workerCtx := log.With(ctx, zap.Int("worker", i))
		a.Register.Go(workerCtx, fmt.Sprintf("worker-%d", i), func(ctx context.Context) {
			a.drawLoop(ctx, res)
		})
	}

	a.Register.WaitAll(ctx)
	return res
}

func (a *App) drawLoop(ctx context.Context, res *Results) {
	for i := 0; i < a.Config.Draws; i++ {
		select {
		case <-ctx.Done():
			return
		default:
		}

		item, ok := a.Draw(ctx)
		if !ok {
			log.Info(ctx, "pool is empty", zap.Int("draws", i))
			return
		}

		if a.ShouldReturn() {
			err := a.Deposit(ctx, item, 1)
			if err != nil {
				log.Warn(ctx, "failed to return ticket", zap.Error(err))
			} else {
				continue
			}
		}
		res.add(item)
	}
}
