package jobs

import (
	"context"
	"sync"
	"time"

	"football-club/matchday/internal/logging"
)

// periodic owns the ticker goroutine of one job. It runs the job once on
// Start and then on every tick until Stop.
type periodic struct {
	name     string
	interval time.Duration
	run      func(ctx context.Context) error

	mu     sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

func (p *periodic) start(parent context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(parent)
	p.cancel = cancel
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)
		p.loop(ctx)
	}()
}

func (p *periodic) loop(ctx context.Context) {
	logging.Info("Job started", "job", p.name, "interval", p.interval.String())

	p.tick(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.Info("Job stopped", "job", p.name)
			return
		case <-ticker.C:
			p.tick(ctx)
		}
	}
}

func (p *periodic) tick(ctx context.Context) {
	if err := p.run(ctx); err != nil && ctx.Err() == nil {
		logging.Error("Job run failed", "job", p.name, "error", err.Error())
	}
}

// stop cancels the loop and waits for an in-flight run to return.
func (p *periodic) stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel, p.done = nil, nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
