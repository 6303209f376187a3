package timer

import (
	"context"
	"testing"
	"time"

	"sagavator/src/types"
)

func TestTickerEmitsTicks(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tickCh := make(chan types.Event)
	action := make(chan TimerAction)
	go Ticker(ctx, 5*time.Millisecond, tickCh, action)

	for range 3 {
		select {
		case ev := <-tickCh:
			if ev.Kind != types.Tick {
				t.Fatalf("got event kind %v, expected Tick", ev.Kind)
			}
			if ev.Dt <= 0 {
				t.Errorf("tick dt = %v, expected positive", ev.Dt)
			}
		case <-time.After(time.Second):
			t.Fatal("no tick within a second")
		}
	}
}

func TestTickerStopAndStart(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	tickCh := make(chan types.Event)
	action := make(chan TimerAction)
	go Ticker(ctx, 5*time.Millisecond, tickCh, action)

	action <- Stop
	select {
	case <-tickCh:
		t.Fatal("tick received while stopped")
	case <-time.After(50 * time.Millisecond):
	}

	action <- Start
	select {
	case <-tickCh:
	case <-time.After(time.Second):
		t.Fatal("no tick after restart")
	}
}

func TestTickerReturnsOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		Ticker(ctx, time.Hour, make(chan types.Event), make(chan TimerAction))
		close(done)
	}()
	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Ticker did not return after cancel")
	}
}
