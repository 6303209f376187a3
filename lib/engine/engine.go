// This file defines the capability interface the controller uses to talk to the
// engine that owns car motion, doors and passengers.
package engine

import "sagavator/src/types"

// Car is one elevator car as seen from the controller.
// Setters are the only commands; everything else is a query.
type Car interface {
	// CurrentFloor is rounded to the nearest floor and may lag the true position.
	CurrentFloor() int
	DestinationDirection() types.Direction
	// DestinationQueue returns a copy; use SetDestinationQueue to change it.
	DestinationQueue() []int
	SetDestinationQueue(queue []int)
	// CheckDestinationQueue makes the engine act on a modified queue immediately.
	CheckDestinationQueue()
	PressedFloors() []int
	MaxPassengerCount() int
	LoadFactor() float64
	GoingUpIndicator() bool
	SetGoingUpIndicator(on bool)
	GoingDownIndicator() bool
	SetGoingDownIndicator(on bool)
}

// CarView is a plain copy of everything the controller can query about a car.
type CarView struct {
	Floor         int
	Dir           types.Direction
	Queue         []int
	Pressed       []int
	UpIndicator   bool
	DownIndicator bool
	Capacity      int
	LoadFactor    float64
}

func ViewOf(car Car) CarView {
	return CarView{
		Floor:         car.CurrentFloor(),
		Dir:           car.DestinationDirection(),
		Queue:         car.DestinationQueue(),
		Pressed:       car.PressedFloors(),
		UpIndicator:   car.GoingUpIndicator(),
		DownIndicator: car.GoingDownIndicator(),
		Capacity:      car.MaxPassengerCount(),
		LoadFactor:    car.LoadFactor(),
	}
}
