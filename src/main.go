package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sagavator/lib/engine"
	"sagavator/src/config"
	"sagavator/src/dispatcher"
	"sagavator/src/elev"
	"sagavator/src/timer"
	"sagavator/src/types"
	"sagavator/src/utils"
)

func main() {
	configPath := flag.String("config", "", "Path to a YAML config file")
	numFloors := flag.Int("floors", config.NumFloors, "Number of floors")
	numCars := flag.Int("cars", config.NumCars, "Number of cars")
	capacity := flag.Int("capacity", config.Capacity, "Passenger capacity per car")
	strict := flag.Bool("strict", false, "Panic on dispatch faults")
	steps := flag.Int("steps", config.DemoSteps, "Number of simulation steps")
	logPath := flag.String("log", "", "Also write the log to this file")
	seed := flag.Int64("seed", 1, "Seed for passenger generation")
	debug := flag.Bool("debug", false, "Log every dispatch decision")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	// Flags given on the command line win over the config file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "floors":
			cfg.NumFloors = *numFloors
		case "cars":
			cfg.NumCars = *numCars
		case "capacity":
			cfg.Capacity = *capacity
		case "strict":
			cfg.Strict = *strict
		case "steps":
			cfg.DemoSteps = *steps
		case "log":
			cfg.LogFile = *logPath
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	closeLog, err := elev.InitLogger(level, cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	building := engine.NewBuilding(cfg.NumFloors, cfg.NumCars, cfg.Capacity, *seed)
	controller := dispatcher.New(cfg, building.Cars())

	events := make(chan types.Event)
	tickAction := make(chan timer.TimerAction)
	runDone := make(chan error, 1)
	go func() { runDone <- controller.Run(ctx, events) }()
	go timer.Ticker(ctx, cfg.TickInterval, events, tickAction)

	if err := runDemo(ctx, cfg, building, controller, rand.New(rand.NewSource(*seed))); err != nil &&
		!errors.Is(err, context.Canceled) {
		slog.Error("Simulation stopped", "err", err)
	}

	select {
	case tickAction <- timer.Stop:
	case <-ctx.Done():
	}
	if snap, err := controller.Snapshot(ctx); err == nil {
		for i, car := range snap.Cars {
			slog.Info("Car",
				"car", i,
				"floor", snap.Views[i].Floor,
				"queue", utils.FormatQueue(snap.Views[i].Queue),
				"occupancy", car.Occupancy,
				"last", car.LastDecision)
		}
		utils.ForEachHall(snap.Requests.NumFloors(), func(floor int, hall types.HallType) {
			if status := snap.Requests.Status(floor, hall); status.Pending() {
				slog.Info("Open call", "floor", floor, "hall", hall, "status", status)
			}
		})
	}
	slog.Info("Simulation done", "delivered", building.Delivered(), "waiting", building.Waiting())

	stop()
	<-runDone
}

// runDemo steps the building at StepInterval and spawns passengers at random floors.
func runDemo(ctx context.Context, cfg config.Config, building *engine.Building, controller *dispatcher.Controller, rng *rand.Rand) error {
	submit := func(events []types.Event) error {
		for _, ev := range events {
			if err := controller.Submit(ctx, ev); err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return err
				}
				slog.Warn("Event not handled", "event", ev.Kind, "err", err)
			}
		}
		return nil
	}

	if err := submit(building.Start()); err != nil {
		return err
	}
	step := time.NewTicker(cfg.StepInterval)
	defer step.Stop()

	for i := 0; i < cfg.DemoSteps; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-step.C:
		}
		if rng.Intn(3) == 0 {
			from, to := rng.Intn(cfg.NumFloors), rng.Intn(cfg.NumFloors)
			if err := submit(building.Spawn(from, to)); err != nil {
				return err
			}
		}
		if err := submit(building.Step()); err != nil {
			return err
		}
	}
	return nil
}
