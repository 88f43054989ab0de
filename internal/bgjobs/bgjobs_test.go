package bgjobs

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRegisterWaitAll(t *testing.T) {
	r := NewRegister()

	var done atomic.Int64
	for i := 0; i < 10; i++ {
		r.Go(context.Background(), "job", func(ctx context.Context) {
			done.Add(1)
		})
	}
	r.WaitAll(context.Background())

	assert.Equal(t, int64(10), done.Load())
	assert.Equal(t, 0, r.Running())
}

func TestPoolLocker(t *testing.T) {
	l := NewPoolLocker()

	a := l.Get("a")
	assert.Same(t, a, l.Get("a"))
	assert.NotSame(t, a, l.Get("b"))

	var counter int
	r := NewRegister()
	for i := 0; i < 50; i++ {
		r.Go(context.Background(), "writer", func(ctx context.Context) {
			defer l.Get("a").ExclusiveLock()()
			counter++
		})
	}
	r.WaitAll(context.Background())

	defer a.SharedLock()()
	assert.Equal(t, 50, counter)
}
