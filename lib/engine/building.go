package engine

import (
	"math/rand"
	"slices"
	"sync"

	"sagavator/src/types"
)

type passenger struct {
	dest   int
	weight float64
}

type carLoad struct {
	riders    []passenger
	doorsOpen bool
}

// Building is a discrete stand-in for the external engine. Each Step moves every
// car one floor towards the front of its queue, or opens/closes its doors, and
// returns the events the controller would be notified of.
type Building struct {
	mu          sync.Mutex
	numFloors   int
	cars        []*SimCar
	loads       []carLoad
	waitingUp   [][]passenger
	waitingDown [][]passenger
	rng         *rand.Rand
	delivered   int
}

func NewBuilding(numFloors, numCars, capacity int, seed int64) *Building {
	b := &Building{
		numFloors:   numFloors,
		cars:        make([]*SimCar, numCars),
		loads:       make([]carLoad, numCars),
		waitingUp:   make([][]passenger, numFloors),
		waitingDown: make([][]passenger, numFloors),
		rng:         rand.New(rand.NewSource(seed)),
	}
	for i := range b.cars {
		b.cars[i] = NewSimCar(0, capacity)
	}
	return b
}

func (b *Building) NumFloors() int {
	return b.numFloors
}

// Cars returns the cars in index order.
func (b *Building) Cars() []Car {
	cars := make([]Car, len(b.cars))
	for i, c := range b.cars {
		cars[i] = c
	}
	return cars
}

func (b *Building) Car(index int) *SimCar {
	return b.cars[index]
}

// Start reports every car as idle so the controller can settle its indicators.
func (b *Building) Start() []types.Event {
	events := make([]types.Event, 0, len(b.cars))
	for i := range b.cars {
		events = append(events, types.Event{Kind: types.CarIdle, Car: i})
	}
	return events
}

// Spawn places a passenger at floor from who wants to go to floor to.
// A hall button event is returned only when the button was not already lit.
func (b *Building) Spawn(from, to int) []types.Event {
	if from == to || from < 0 || to < 0 || from >= b.numFloors || to >= b.numFloors {
		return nil
	}
	b.mu.Lock()
	defer b.mu.Unlock()

	p := passenger{dest: to, weight: 0.8 + 0.4*b.rng.Float64()}
	if to > from {
		b.waitingUp[from] = append(b.waitingUp[from], p)
		if len(b.waitingUp[from]) == 1 {
			return []types.Event{{Kind: types.UpButtonPressed, Floor: from}}
		}
		return nil
	}
	b.waitingDown[from] = append(b.waitingDown[from], p)
	if len(b.waitingDown[from]) == 1 {
		return []types.Event{{Kind: types.DownButtonPressed, Floor: from}}
	}
	return nil
}

// Waiting returns the number of passengers still waiting at any floor.
func (b *Building) Waiting() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	total := 0
	for floor := range b.numFloors {
		total += len(b.waitingUp[floor]) + len(b.waitingDown[floor])
	}
	return total
}

// Delivered returns the number of passengers that reached their destination.
func (b *Building) Delivered() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.delivered
}

// Riders returns the number of passengers inside a car.
func (b *Building) Riders(index int) int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.loads[index].riders)
}

func (b *Building) Step() []types.Event {
	b.mu.Lock()
	defer b.mu.Unlock()

	var events []types.Event
	for i, c := range b.cars {
		c.mu.Lock()
		events = append(events, b.stepCar(i, c)...)
		c.mu.Unlock()
	}
	return events
}

// stepCar is called with both the building and the car locked.
func (b *Building) stepCar(index int, c *SimCar) []types.Event {
	load := &b.loads[index]
	if load.doorsOpen {
		// Sent to the floor it is already at: stop here again with the doors still open.
		if len(c.queue) > 0 && c.queue[0] == c.floor {
			c.queue = slices.Delete(c.queue, 0, 1)
			return []types.Event{{Kind: types.StoppedAtFloor, Car: index, Floor: c.floor}}
		}
		events := b.board(index, c)
		load.doorsOpen = false
		if len(c.queue) == 0 {
			events = append(events, types.Event{Kind: types.CarIdle, Car: index})
		}
		return events
	}
	if len(c.queue) == 0 {
		return nil
	}

	target := c.queue[0]
	if c.floor != target {
		dir := types.DirectionBetween(c.floor, target)
		c.floor += int(dir)
		if c.floor != target {
			return []types.Event{{Kind: types.PassingFloor, Car: index, Floor: c.floor, Dir: dir}}
		}
	}

	c.queue = slices.Delete(c.queue, 0, 1)
	c.pressed = slices.DeleteFunc(c.pressed, func(f int) bool { return f == c.floor })
	load.riders = slices.DeleteFunc(load.riders, func(p passenger) bool {
		if p.dest == c.floor {
			b.delivered++
			return true
		}
		return false
	})
	b.updateLoad(index, c)
	load.doorsOpen = true
	return []types.Event{{Kind: types.StoppedAtFloor, Car: index, Floor: c.floor}}
}

// board lets waiting passengers in, following the car's indicators.
//   - every rider presses the cab button for its destination
//   - passengers left behind press their hall button again
func (b *Building) board(index int, c *SimCar) []types.Event {
	var events []types.Event
	load := &b.loads[index]
	floor := c.floor

	boardFrom := func(waiting []passenger) []passenger {
		for len(waiting) > 0 && len(load.riders) < c.capacity {
			p := waiting[0]
			waiting = waiting[1:]
			load.riders = append(load.riders, p)
			if c.press(p.dest) {
				events = append(events, types.Event{Kind: types.FloorButtonPressed, Car: index, Floor: p.dest})
			}
		}
		return waiting
	}

	if c.upIndicator {
		b.waitingUp[floor] = boardFrom(b.waitingUp[floor])
	}
	if c.downIndicator {
		b.waitingDown[floor] = boardFrom(b.waitingDown[floor])
	}
	if len(b.waitingUp[floor]) > 0 {
		events = append(events, types.Event{Kind: types.UpButtonPressed, Floor: floor})
	}
	if len(b.waitingDown[floor]) > 0 {
		events = append(events, types.Event{Kind: types.DownButtonPressed, Floor: floor})
	}
	b.updateLoad(index, c)
	return events
}

func (b *Building) updateLoad(index int, c *SimCar) {
	if c.capacity == 0 {
		c.loadFactor = 0
		return
	}
	total := 0.0
	for _, p := range b.loads[index].riders {
		total += p.weight
	}
	c.loadFactor = min(total/float64(c.capacity), 1)
}
