package timer

import (
	"context"
	"log/slog"
	"time"

	"sagavator/src/types"
)

type TimerAction int

const (
	Start TimerAction = iota
	Stop
)

// Ticker sends a Tick event carrying the elapsed time every interval until ctx is done.
// It starts running; Stop pauses it and Start resumes it.
func Ticker(ctx context.Context, interval time.Duration, tickCh chan<- types.Event, action <-chan TimerAction) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	last := time.Now()
	running := true

	for {
		select {
		case <-ctx.Done():
			return
		case a := <-action:
			switch a {
			case Start:
				if !running {
					resetTicker(ticker, interval)
					last = time.Now()
					running = true
				}
			case Stop:
				ticker.Stop()
				running = false
			}
		case now := <-ticker.C:
			ev := types.Event{Kind: types.Tick, Dt: now.Sub(last)}
			last = now
			select {
			case tickCh <- ev:
			case <-ctx.Done():
				return
			}
			slog.Debug("Tick", "dt", ev.Dt)
		}
	}
}

// Stops the ticker, drains a pending tick and restarts it.
func resetTicker(t *time.Ticker, interval time.Duration) {
	t.Stop()
	select {
	case <-t.C:
	default:
	}
	t.Reset(interval)
}
