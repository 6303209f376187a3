package elev

import (
	"fmt"

	"sagavator/lib/engine"
	"sagavator/src/types"
)

// ApplyByDestination lights the indicator pointing at the front of the queue.
// The car must have a destination other than its current floor.
func ApplyByDestination(car engine.Car) error {
	queue := car.DestinationQueue()
	if len(queue) == 0 {
		return types.ErrNoDestination
	}
	floor := car.CurrentFloor()
	dir := types.DirectionBetween(floor, queue[0])
	if dir == types.DirStopped {
		return fmt.Errorf("floor %d: %w", floor, types.ErrAlreadyAtDestination)
	}
	ApplyDirection(car, dir)
	return nil
}

// ApplyDirection lights exactly one indicator. DirStopped lights both.
func ApplyDirection(car engine.Car, dir types.Direction) {
	switch dir {
	case types.DirUp:
		car.SetGoingUpIndicator(true)
		car.SetGoingDownIndicator(false)
	case types.DirDown:
		car.SetGoingUpIndicator(false)
		car.SetGoingDownIndicator(true)
	default:
		ApplyBoth(car)
	}
}

// ApplyBoth tells passengers on either side that they may board.
func ApplyBoth(car engine.Car) {
	car.SetGoingUpIndicator(true)
	car.SetGoingDownIndicator(true)
}

// Signaled reports whether the car's indicator for dir is lit.
func Signaled(car engine.Car, dir types.Direction) bool {
	switch dir {
	case types.DirUp:
		return car.GoingUpIndicator()
	case types.DirDown:
		return car.GoingDownIndicator()
	}
	return false
}
