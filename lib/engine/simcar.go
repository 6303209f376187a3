package engine

import (
	"slices"
	"sync"

	"sagavator/src/types"
)

// SimCar is an in-memory Car. It is safe for use from several goroutines.
type SimCar struct {
	mu            sync.Mutex
	floor         int
	queue         []int
	pressed       []int
	upIndicator   bool
	downIndicator bool
	capacity      int
	loadFactor    float64
	checks        int
}

func NewSimCar(floor, capacity int) *SimCar {
	return &SimCar{
		floor:         floor,
		capacity:      capacity,
		upIndicator:   true,
		downIndicator: true,
	}
}

func (c *SimCar) CurrentFloor() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.floor
}

func (c *SimCar) DestinationDirection() types.Direction {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.direction()
}

func (c *SimCar) direction() types.Direction {
	if len(c.queue) == 0 {
		return types.DirStopped
	}
	return types.DirectionBetween(c.floor, c.queue[0])
}

func (c *SimCar) DestinationQueue() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.queue)
}

func (c *SimCar) SetDestinationQueue(queue []int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.queue = slices.Clone(queue)
}

// CheckDestinationQueue is a no-op besides counting; the next Step always reads the queue front.
func (c *SimCar) CheckDestinationQueue() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.checks++
}

// Checks returns how many times CheckDestinationQueue was called.
func (c *SimCar) Checks() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.checks
}

func (c *SimCar) PressedFloors() []int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.pressed)
}

// PressFloor lights a cab button. It reports false if the button was already lit.
func (c *SimCar) PressFloor(floor int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.press(floor)
}

func (c *SimCar) press(floor int) bool {
	if slices.Contains(c.pressed, floor) {
		return false
	}
	c.pressed = append(c.pressed, floor)
	slices.Sort(c.pressed)
	return true
}

func (c *SimCar) MaxPassengerCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.capacity
}

func (c *SimCar) LoadFactor() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loadFactor
}

func (c *SimCar) SetLoadFactor(loadFactor float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loadFactor = min(max(loadFactor, 0), 1)
}

func (c *SimCar) GoingUpIndicator() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.upIndicator
}

func (c *SimCar) SetGoingUpIndicator(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.upIndicator = on
}

func (c *SimCar) GoingDownIndicator() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.downIndicator
}

func (c *SimCar) SetGoingDownIndicator(on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.downIndicator = on
}

// MoveTo places the car on a floor without emitting events.
func (c *SimCar) MoveTo(floor int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.floor = floor
}
