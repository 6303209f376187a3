package elev

import (
	"log/slog"
	"slices"

	"sagavator/lib/engine"
	"sagavator/src/types"
	"sagavator/src/utils"
)

// InsertFloor returns queue with floor placed on the first leg that passes it.
// Legs are walked from origin through each queued floor in order; a floor strictly
// between a leg's endpoints is inserted right before the leg's end. Otherwise the
// floor is appended. A floor already in the queue leaves it unchanged.
func InsertFloor(queue []int, origin, floor int) []int {
	if slices.Contains(queue, floor) {
		return queue
	}
	from := origin
	for i, to := range queue {
		switch types.DirectionBetween(from, to) {
		case types.DirUp:
			if from < floor && floor < to {
				return slices.Insert(slices.Clone(queue), i, floor)
			}
		case types.DirDown:
			if from > floor && floor > to {
				return slices.Insert(slices.Clone(queue), i, floor)
			}
		}
		from = to
	}
	return append(slices.Clone(queue), floor)
}

// Preempt returns queue with floor moved, or added, to the front.
func Preempt(queue []int, floor int) []int {
	rest := slices.DeleteFunc(slices.Clone(queue), func(f int) bool { return f == floor })
	return append([]int{floor}, rest...)
}

// Insert adds floor to the car's queue, walking legs from origin.
// It reports whether the queue changed.
func Insert(car engine.Car, index, origin, floor int) bool {
	queue := car.DestinationQueue()
	updated := InsertFloor(queue, origin, floor)
	if len(updated) == len(queue) {
		slog.Debug("Floor already queued", "car", index, "floor", floor, "queue", utils.FormatQueue(queue))
		return false
	}
	car.SetDestinationQueue(updated)
	car.CheckDestinationQueue()
	slog.Debug("Inserted destination", "car", index, "floor", floor, "origin", origin, "queue", utils.FormatQueue(updated))
	return true
}

// Replace makes floor the car's only destination.
func Replace(car engine.Car, index, floor int) {
	car.SetDestinationQueue([]int{floor})
	car.CheckDestinationQueue()
	slog.Debug("Replaced destination queue", "car", index, "floor", floor)
}

// PreemptCar sends the car to floor before anything else it has queued.
func PreemptCar(car engine.Car, index, floor int) {
	updated := Preempt(car.DestinationQueue(), floor)
	car.SetDestinationQueue(updated)
	car.CheckDestinationQueue()
	slog.Debug("Preempted destination queue", "car", index, "floor", floor, "queue", utils.FormatQueue(updated))
}

// DropArrived removes floor from the front of the car's queue. A car stopped at
// floor has served that entry even if it was queued after the engine popped it.
// It reports whether the queue changed.
func DropArrived(car engine.Car, index, floor int) bool {
	queue := car.DestinationQueue()
	if len(queue) == 0 || queue[0] != floor {
		return false
	}
	car.SetDestinationQueue(queue[1:])
	car.CheckDestinationQueue()
	slog.Debug("Dropped arrived floor", "car", index, "floor", floor, "queue", utils.FormatQueue(queue[1:]))
	return true
}
