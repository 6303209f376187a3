package dispatcher

import (
	"fmt"
	"log/slog"

	"sagavator/src/elev"
	"sagavator/src/types"
	"sagavator/src/utils"
)

// handleHallButton marks the call active and hands it to the nearest idle car, if any.
// A call some car already accepted stays accepted.
func (c *Controller) handleHallButton(ev types.Event) error {
	hall := types.HallUp
	if ev.Kind == types.DownButtonPressed {
		hall = types.HallDown
	}
	if c.registry.Status(ev.Floor, hall) == types.Accepted {
		slog.Debug("Call already accepted", "floor", ev.Floor, "hall", hall)
		return nil
	}

	// Idle cars are collected first so a car waiting at this floor still counts.
	idle := c.idleCars()
	if err := c.registry.SetStatus(ev.Floor, hall, types.Active); err != nil {
		return err
	}
	if !c.dispatchIdleCar(idle, ev.Floor, hall) {
		slog.Debug("No idle car, call stays active", "floor", ev.Floor, "hall", hall)
	}
	return nil
}

// handleFloorButton handles a cab button press.
//   - the car's own floor has no direction and is rejected
//   - the call at the current floor in the travel direction is cleared, the car serves it
//   - a floor closer than the next stop preempts the queue, otherwise it is inserted in order
func (c *Controller) handleFloorButton(ev types.Event) error {
	car := c.cars[ev.Car]
	floor := car.CurrentFloor()
	if ev.Floor == floor {
		return fmt.Errorf("car %d at floor %d: %w", ev.Car, floor, types.ErrInvalidButtonForCurrentFloor)
	}

	if hall, ok := types.HallFor(types.DirectionBetween(floor, ev.Floor)); ok {
		c.registry.SetStatus(floor, hall, types.Inactive)
	}

	queue := car.DestinationQueue()
	if len(queue) == 0 || utils.FloorDistance(ev.Floor, floor) < utils.FloorDistance(queue[0], floor) {
		elev.PreemptCar(car, ev.Car, ev.Floor)
		c.decide(ev.Car, "cab call to floor %d goes first", ev.Floor)
	} else {
		elev.Insert(car, ev.Car, floor, ev.Floor)
		c.decide(ev.Car, "cab call to floor %d queued", ev.Floor)
	}
	if c.stopPendingHere(ev.Car) {
		return nil
	}
	if err := c.applyIndicators(ev.Car); err != nil {
		return fmt.Errorf("car %d: %w", ev.Car, err)
	}
	return nil
}

// handlePassingFloor lets a car with room pick up an active call it is about to pass.
func (c *Controller) handlePassingFloor(ev types.Event) error {
	hall, ok := c.canIntercept(ev.Car, ev.Floor, ev.Dir)
	if !ok {
		return nil
	}
	car := c.cars[ev.Car]
	// The rounded floor may already read as the floor being passed.
	origin := car.CurrentFloor()
	if origin == ev.Floor {
		origin -= int(ev.Dir)
	}
	elev.Insert(car, ev.Car, origin, ev.Floor)
	elev.ApplyDirection(car, ev.Dir)
	c.registry.SetStatus(ev.Floor, hall, types.Accepted)
	c.decide(ev.Car, "intercepting %s call at floor %d", hall, ev.Floor)
	return nil
}

// handleStoppedAtFloor picks the car's next move and clears the calls it is about to take.
//   - a queued entry for the arrival floor is served by this stop
//   - the nearest lit cab button becomes the next stop
//   - a queued stop is kept
//   - otherwise both indicators are lit; without calls here the car heads for the nearest call elsewhere
func (c *Controller) handleStoppedAtFloor(ev types.Event) error {
	car := c.cars[ev.Car]
	var err error

	// A dispatch issued while this stop was still in flight.
	elev.DropArrived(car, ev.Car, ev.Floor)

	if target, ok := c.nearestPressed(ev.Car); ok {
		if len(car.DestinationQueue()) == 0 {
			elev.Replace(car, ev.Car, target)
		} else {
			elev.PreemptCar(car, ev.Car, target)
		}
		err = c.applyIndicators(ev.Car)
		c.decide(ev.Car, "stopped at floor %d, cab call to floor %d next", ev.Floor, target)
	} else if queue := car.DestinationQueue(); len(queue) > 0 {
		err = c.applyIndicators(ev.Car)
		c.decide(ev.Car, "stopped at floor %d, continuing to floor %d", ev.Floor, queue[0])
	} else {
		elev.ApplyBoth(car)
		switch {
		case c.registry.UpStatus(ev.Floor).Pending() || c.registry.DownStatus(ev.Floor).Pending():
			// Calls here board first; the car moves on once they press their floors.
			c.decide(ev.Car, "stopped at floor %d, boarding", ev.Floor)
		case c.assignNearestRequest(ev.Car, ev.Floor):
		default:
			c.decide(ev.Car, "stopped at floor %d, nothing pending", ev.Floor)
		}
	}

	c.clearDeparting(ev.Car, ev.Floor)
	if err != nil {
		return fmt.Errorf("car %d: %w", ev.Car, err)
	}
	return nil
}

// handleIdle gives a car with nothing queued its next job, or leaves it waiting with both indicators lit.
func (c *Controller) handleIdle(ev types.Event) error {
	car := c.cars[ev.Car]
	if len(car.DestinationQueue()) > 0 {
		slog.Debug("Idle car still has a queue", "car", ev.Car)
		if c.stopPendingHere(ev.Car) {
			c.decide(ev.Car, "idle, stopping again at floor %d", car.CurrentFloor())
			return nil
		}
		if err := c.applyIndicators(ev.Car); err != nil {
			return fmt.Errorf("car %d: %w", ev.Car, err)
		}
		return nil
	}

	if target, ok := c.nearestPressed(ev.Car); ok {
		elev.Replace(car, ev.Car, target)
		c.decide(ev.Car, "idle, cab call to floor %d", target)
		if err := c.applyIndicators(ev.Car); err != nil {
			return fmt.Errorf("car %d: %w", ev.Car, err)
		}
		return nil
	}

	if c.assignNearestRequest(ev.Car, -1) {
		return nil
	}
	elev.ApplyBoth(car)
	c.decide(ev.Car, "idle at floor %d", car.CurrentFloor())
	return nil
}

func (c *Controller) handleTick(ev types.Event) error {
	for i, car := range c.cars {
		c.states[i].UpdateOccupancy(car.LoadFactor(), car.MaxPassengerCount())
	}
	return nil
}
