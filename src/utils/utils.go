package utils

import (
	"fmt"

	"sagavator/src/types"
)

// Closest returns the candidate with the smallest distance.
//   - ties go to the first candidate in slice order
//   - returns types.ErrNoCandidate if candidates is empty
func Closest[T any](candidates []T, distance func(T) int) (T, error) {
	var best T
	if len(candidates) == 0 {
		return best, types.ErrNoCandidate
	}
	best = candidates[0]
	bestDistance := distance(best)
	for _, candidate := range candidates[1:] {
		if d := distance(candidate); d < bestDistance {
			best = candidate
			bestDistance = d
		}
	}
	return best, nil
}

// FloorDistance is the absolute number of floors between a and b.
func FloorDistance(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

// ForEachHall is a helper that reduces indentation when visiting both hall buttons of every floor
func ForEachHall(numFloors int, action func(floor int, hall types.HallType)) {
	for floor := range numFloors {
		for _, hall := range []types.HallType{types.HallUp, types.HallDown} {
			action(floor, hall)
		}
	}
}

// FormatQueue renders a destination queue for log lines.
func FormatQueue(queue []int) string {
	return fmt.Sprint(queue)
}
