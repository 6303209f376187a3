package dispatcher

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/tiendc/go-deepcopy"

	"sagavator/lib/engine"
	"sagavator/src/config"
	"sagavator/src/elev"
	"sagavator/src/requests"
	"sagavator/src/types"
)

// Controller decides which car serves which call. All event handling happens on
// one goroutine; see Run.
type Controller struct {
	cfg      config.Config
	cars     []engine.Car
	states   []elev.CarState
	registry *requests.Registry
	handlers map[types.EventKind]handlerFunc
	cmds     chan controllerCmd
}

// New builds a controller for the given cars, in car index order.
func New(cfg config.Config, cars []engine.Car) *Controller {
	return &Controller{
		cfg:      cfg,
		cars:     cars,
		states:   elev.InitCarStates(len(cars)),
		registry: requests.NewRegistry(cfg.NumFloors),
		handlers: map[types.EventKind]handlerFunc{
			types.UpButtonPressed:    (*Controller).handleHallButton,
			types.DownButtonPressed:  (*Controller).handleHallButton,
			types.FloorButtonPressed: (*Controller).handleFloorButton,
			types.PassingFloor:       (*Controller).handlePassingFloor,
			types.StoppedAtFloor:     (*Controller).handleStoppedAtFloor,
			types.CarIdle:            (*Controller).handleIdle,
			types.Tick:               (*Controller).handleTick,
		},
		cmds: make(chan controllerCmd),
	}
}

// Handle runs the handler for one event to completion.
// It is not safe for concurrent use; use Submit while Run is active.
//   - faults are logged, and panic in strict mode
//   - in release mode the handler has already applied a safe fallback
func (c *Controller) Handle(ev types.Event) error {
	handler, ok := c.handlers[ev.Kind]
	if !ok {
		return fmt.Errorf("unhandled event kind %d", ev.Kind)
	}
	if err := c.validate(ev); err != nil {
		slog.Warn("Rejected event", "event", ev.Kind, "car", ev.Car, "floor", ev.Floor, "err", err)
		return err
	}

	err := handler(c, ev)
	if err != nil && types.IsFault(err) {
		slog.Error("Dispatch fault", "event", ev.Kind, "car", ev.Car, "floor", ev.Floor, "err", err)
		if c.cfg.Strict {
			panic(err)
		}
	}
	return err
}

func (c *Controller) validate(ev types.Event) error {
	switch ev.Kind {
	case types.FloorButtonPressed, types.PassingFloor, types.StoppedAtFloor, types.CarIdle:
		if ev.Car < 0 || ev.Car >= len(c.cars) {
			return fmt.Errorf("car %d: %w", ev.Car, types.ErrUnknownCar)
		}
	}
	switch ev.Kind {
	case types.UpButtonPressed, types.DownButtonPressed, types.FloorButtonPressed, types.PassingFloor, types.StoppedAtFloor:
		if ev.Floor < 0 || ev.Floor >= c.registry.NumFloors() {
			return fmt.Errorf("floor %d: %w", ev.Floor, types.ErrUnknownFloor)
		}
	}
	return nil
}

// Run handles events and commands until ctx is done or events is closed.
func (c *Controller) Run(ctx context.Context, events <-chan types.Event) error {
	slog.Info("Controller started", "cars", len(c.cars), "floors", c.registry.NumFloors(), "strict", c.cfg.Strict)
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			c.Handle(ev)
		case cmd := <-c.cmds:
			cmd.Exec(c)
		}
	}
}

// Submit handles ev on the Run goroutine and waits for the result.
func (c *Controller) Submit(ctx context.Context, ev types.Event) error {
	reply := make(chan error, 1)
	cmd := controllerCmd{Exec: func(c *Controller) { reply <- c.Handle(ev) }}
	select {
	case c.cmds <- cmd:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case err := <-reply:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Snapshot copies the controller state on the Run goroutine.
func (c *Controller) Snapshot(ctx context.Context) (Snapshot, error) {
	type result struct {
		snap Snapshot
		err  error
	}
	reply := make(chan result, 1)
	cmd := controllerCmd{Exec: func(c *Controller) {
		snap, err := c.snapshot()
		reply <- result{snap, err}
	}}
	select {
	case c.cmds <- cmd:
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
	select {
	case r := <-reply:
		return r.snap, r.err
	case <-ctx.Done():
		return Snapshot{}, ctx.Err()
	}
}

func (c *Controller) snapshot() (Snapshot, error) {
	var snap Snapshot
	if err := deepcopy.Copy(&snap.Cars, &c.states); err != nil {
		return snap, fmt.Errorf("copy car states: %w", err)
	}
	if err := deepcopy.Copy(&snap.Requests, c.registry); err != nil {
		return snap, fmt.Errorf("copy registry: %w", err)
	}
	snap.Views = make([]engine.CarView, len(c.cars))
	for i, car := range c.cars {
		snap.Views[i] = engine.ViewOf(car)
	}
	return snap, nil
}

// decide records the latest decision for a car.
func (c *Controller) decide(index int, format string, args ...any) {
	decision := fmt.Sprintf(format, args...)
	c.states[index].LastDecision = decision
	slog.Debug("Decision", "car", index, "decision", decision)
}
