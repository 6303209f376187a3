package dispatcher

import (
	"context"
	"fmt"
	"math/rand"
	"slices"
	"testing"
	"time"

	"sagavator/lib/engine"
	"sagavator/src/config"
	"sagavator/src/types"
)

func TestRunSubmitAndSnapshot(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	car := engine.NewSimCar(0, 4)
	c := newTestController(4, car)
	events := make(chan types.Event)
	done := make(chan error, 1)
	go func() { done <- c.Run(ctx, events) }()

	if err := c.Submit(ctx, types.Event{Kind: types.UpButtonPressed, Floor: 2}); err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	car.SetLoadFactor(0.5)
	events <- types.Event{Kind: types.Tick, Dt: 100 * time.Millisecond}

	snap, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if snap.Requests.UpStatus(2) != types.Accepted {
		t.Errorf("snapshot up call at 2 is %v, expected accepted", snap.Requests.UpStatus(2))
	}
	if !slices.Equal(snap.Views[0].Queue, []int{2}) {
		t.Errorf("snapshot queue = %v, expected [2]", snap.Views[0].Queue)
	}
	if snap.Cars[0].Occupancy != 1 {
		t.Errorf("snapshot occupancy = %d, expected 1", snap.Cars[0].Occupancy)
	}

	// The snapshot must not alias controller state.
	snap.Requests.Up[2] = types.Inactive
	snap.Cars[0].Occupancy = 3
	again, err := c.Snapshot(ctx)
	if err != nil {
		t.Fatalf("Snapshot returned error: %v", err)
	}
	if again.Requests.UpStatus(2) != types.Accepted || again.Cars[0].Occupancy != 1 {
		t.Error("modifying a snapshot changed the controller")
	}

	close(events)
	if err := <-done; err != nil {
		t.Errorf("Run returned %v after events closed", err)
	}
}

func TestSubmitHonoursContext(t *testing.T) {
	c := newTestController(4, engine.NewSimCar(0, 4))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := c.Submit(ctx, types.Event{Kind: types.Tick}); err != context.Canceled {
		t.Errorf("Submit without a running loop returned %v, expected context.Canceled", err)
	}
}

// Drives the controller against the simulated building until every passenger
// is delivered. Strict mode turns any dispatch fault into a test failure.
func TestBuildingDeliversEveryone(t *testing.T) {
	testCases := []struct {
		name      string
		numFloors int
		numCars   int
		capacity  int
		trips     [][2]int
	}{
		{
			name:      "single car",
			numFloors: 4,
			numCars:   1,
			capacity:  4,
			trips:     [][2]int{{3, 0}, {1, 2}, {2, 0}, {0, 3}},
		},
		{
			name:      "two cars, both directions at one floor",
			numFloors: 6,
			numCars:   2,
			capacity:  4,
			trips:     [][2]int{{2, 5}, {2, 0}, {4, 1}, {5, 0}, {1, 3}, {0, 5}, {3, 2}},
		},
		{
			name:      "crowd larger than the car",
			numFloors: 5,
			numCars:   1,
			capacity:  2,
			trips:     [][2]int{{0, 4}, {0, 3}, {0, 2}, {0, 1}, {4, 0}},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			cfg.NumFloors = tc.numFloors
			cfg.NumCars = tc.numCars
			cfg.Capacity = tc.capacity
			cfg.Strict = true

			building := engine.NewBuilding(tc.numFloors, tc.numCars, tc.capacity, 7)
			c := New(cfg, building.Cars())
			handleAll := func(events []types.Event) {
				for _, ev := range events {
					if err := c.Handle(ev); err != nil {
						t.Fatalf("Handle(%v car=%d floor=%d) returned error: %v", ev.Kind, ev.Car, ev.Floor, err)
					}
				}
			}

			handleAll(building.Start())
			for i, trip := range tc.trips {
				handleAll(building.Spawn(trip[0], trip[1]))
				if i%2 == 1 {
					handleAll(building.Step())
				}
			}

			for step := 0; step < 500 && building.Delivered() < len(tc.trips); step++ {
				handleAll(building.Step())
				handleAll([]types.Event{{Kind: types.Tick}})
			}

			if building.Delivered() != len(tc.trips) {
				t.Fatalf("delivered %d of %d passengers, %d still waiting",
					building.Delivered(), len(tc.trips), building.Waiting())
			}
			for i := range tc.numCars {
				if got := c.states[i].Occupancy; got < 0 || got > tc.capacity {
					t.Errorf("car %d occupancy %d out of range", i, got)
				}
			}
		})
	}
}

// Random traffic over varied buildings in strict mode. Events of one Step are
// handled in the order the building reports them, so a car's arrival can reach the
// controller after another car's hall press has already been dispatched to it.
func TestRandomTrafficNeverFaults(t *testing.T) {
	for seed := int64(1); seed <= 200; seed++ {
		rng := rand.New(rand.NewSource(seed))
		numFloors := 2 + rng.Intn(7)
		numCars := 1 + rng.Intn(3)
		capacity := 1 + rng.Intn(5)
		name := fmt.Sprintf("seed %d floors=%d cars=%d cap=%d", seed, numFloors, numCars, capacity)

		t.Run(name, func(t *testing.T) {
			cfg := config.Default()
			cfg.NumFloors = numFloors
			cfg.NumCars = numCars
			cfg.Capacity = capacity
			cfg.Strict = true

			building := engine.NewBuilding(numFloors, numCars, capacity, seed)
			c := New(cfg, building.Cars())
			handleAll := func(events []types.Event) {
				t.Helper()
				for _, ev := range events {
					func() {
						defer func() {
							if r := recover(); r != nil {
								t.Fatalf("Handle(%v car=%d floor=%d) panicked: %v", ev.Kind, ev.Car, ev.Floor, r)
							}
						}()
						if err := c.Handle(ev); err != nil {
							t.Fatalf("Handle(%v car=%d floor=%d) returned error: %v", ev.Kind, ev.Car, ev.Floor, err)
						}
					}()
				}
			}

			handleAll(building.Start())
			spawned := 0
			for range 60 {
				if rng.Intn(2) == 0 {
					from := rng.Intn(numFloors)
					to := (from + 1 + rng.Intn(numFloors-1)) % numFloors
					handleAll(building.Spawn(from, to))
					spawned++
				}
				handleAll(building.Step())
				handleAll([]types.Event{{Kind: types.Tick}})
			}
			for step := 0; step < 5000 && building.Delivered() < spawned; step++ {
				handleAll(building.Step())
				handleAll([]types.Event{{Kind: types.Tick}})
			}

			if building.Delivered() != spawned {
				t.Fatalf("delivered %d of %d passengers, %d still waiting",
					building.Delivered(), spawned, building.Waiting())
			}
		})
	}
}
