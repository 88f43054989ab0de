package bgjobs

import (
	"context"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/petuhovskiy/lotterybox/internal/log"
)

// Register is a registry of all background jobs.
// Has a wait group to wait for all jobs to finish.
type Register struct {
	all     sync.WaitGroup
	running atomic.Int64
}

func NewRegister() *Register {
	return &Register{}
}

// Go starts a new background job. The job gets ctx with its name attached
// to the logger.
func (r *Register) Go(ctx context.Context, name string, f func(ctx context.Context)) {
	r.all.Add(1)
	r.running.Add(1)

	ctx = log.Into(ctx, name)
	go func() {
		defer r.all.Done()
		defer r.running.Add(-1)
		f(ctx)
	}()
}

// Running returns the number of jobs that have not finished yet.
func (r *Register) Running() int {
	return int(r.running.Load())
}

func (r *Register) WaitAll(ctx context.Context) {
	log.Info(ctx, "waiting for all background jobs to finish", zap.Int("running", r.Running()))
	r.all.Wait()
}
