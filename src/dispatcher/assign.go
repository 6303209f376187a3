package dispatcher

import (
	"slices"

	"sagavator/src/elev"
	"sagavator/src/types"
	"sagavator/src/utils"
)

// idleCars returns, in car index order, every car free to take a new call:
//   - stopped, with an empty queue and no cab buttons lit
//   - not about to serve a call at its own floor in a direction it already signals
func (c *Controller) idleCars() []int {
	var idle []int
	for i, car := range c.cars {
		if car.DestinationDirection() != types.DirStopped ||
			len(car.DestinationQueue()) > 0 ||
			len(car.PressedFloors()) > 0 {
			continue
		}
		floor := car.CurrentFloor()
		if car.GoingUpIndicator() && c.registry.UpStatus(floor).Pending() {
			continue
		}
		if car.GoingDownIndicator() && c.registry.DownStatus(floor).Pending() {
			continue
		}
		idle = append(idle, i)
	}
	return idle
}

// dispatchIdleCar sends the nearest car in idle to a hall call and marks it accepted.
// It reports false if idle is empty.
func (c *Controller) dispatchIdleCar(idle []int, floor int, hall types.HallType) bool {
	best, err := utils.Closest(idle, func(i int) int {
		return utils.FloorDistance(c.cars[i].CurrentFloor(), floor)
	})
	if err != nil {
		return false
	}
	car := c.cars[best]
	elev.Replace(car, best, floor)
	elev.ApplyDirection(car, hall.Dir())
	c.registry.SetStatus(floor, hall, types.Accepted)
	c.decide(best, "dispatched to %s call at floor %d", hall, floor)
	return true
}

// nearestRequest finds the pending call closest to origin, skipping floor exclude.
//   - ties go to the lowest floor
//   - if both directions are pending, the one matching the travel direction wins
func (c *Controller) nearestRequest(origin, exclude int) (int, types.HallType, bool) {
	pending := slices.DeleteFunc(c.registry.Pending(), func(f int) bool { return f == exclude })
	floor, err := utils.Closest(pending, func(f int) int { return utils.FloorDistance(f, origin) })
	if err != nil {
		return 0, types.HallUp, false
	}
	up := c.registry.UpStatus(floor).Pending()
	down := c.registry.DownStatus(floor).Pending()
	switch {
	case up && down && types.DirectionBetween(origin, floor) == types.DirDown:
		return floor, types.HallDown, true
	case up:
		return floor, types.HallUp, true
	default:
		return floor, types.HallDown, true
	}
}

// assignNearestRequest sends an empty car to the nearest pending call.
// Pass exclude = -1 to consider every floor.
func (c *Controller) assignNearestRequest(index, exclude int) bool {
	car := c.cars[index]
	floor, hall, ok := c.nearestRequest(car.CurrentFloor(), exclude)
	if !ok {
		return false
	}
	elev.Replace(car, index, floor)
	elev.ApplyDirection(car, hall.Dir())
	c.registry.SetStatus(floor, hall, types.Accepted)
	c.decide(index, "heading to nearest %s call at floor %d", hall, floor)
	return true
}

// nearestPressed returns the lit cab button closest to the car, ignoring its current floor.
func (c *Controller) nearestPressed(index int) (int, bool) {
	car := c.cars[index]
	floor := car.CurrentFloor()
	pressed := slices.DeleteFunc(car.PressedFloors(), func(f int) bool { return f == floor })
	target, err := utils.Closest(pressed, func(f int) int { return utils.FloorDistance(f, floor) })
	return target, err == nil
}

// canIntercept reports whether a car passing floor in dir should stop for the call there.
func (c *Controller) canIntercept(index, floor int, dir types.Direction) (types.HallType, bool) {
	hall, ok := types.HallFor(dir)
	if !ok {
		return hall, false
	}
	car := c.cars[index]
	if !elev.Signaled(car, dir) {
		return hall, false
	}
	if !c.states[index].HasRoom(car.LoadFactor(), car.MaxPassengerCount()) {
		return hall, false
	}
	return hall, c.registry.Status(floor, hall) == types.Active
}

// applyIndicators points the car's indicators at its next stop. If that is not
// possible both indicators are lit and the fault is returned.
func (c *Controller) applyIndicators(index int) error {
	car := c.cars[index]
	if err := elev.ApplyByDestination(car); err != nil {
		elev.ApplyBoth(car)
		return err
	}
	return nil
}

// clearDeparting clears the calls at floor that the car's indicators will let board.
func (c *Controller) clearDeparting(index, floor int) {
	car := c.cars[index]
	if car.GoingUpIndicator() {
		c.registry.SetUpStatus(floor, types.Inactive)
	}
	if car.GoingDownIndicator() {
		c.registry.SetDownStatus(floor, types.Inactive)
	}
}

// stopPendingHere reports whether the car's next stop is the floor it is already at.
// The engine stops there again before leaving, so the indicators set by the dispatch stay.
func (c *Controller) stopPendingHere(index int) bool {
	car := c.cars[index]
	queue := car.DestinationQueue()
	return len(queue) > 0 && queue[0] == car.CurrentFloor()
}
