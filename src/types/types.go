package types

import "time"

// Direction is the direction a car is heading towards, as reported by the engine.
type Direction int

const (
	DirDown    Direction = -1
	DirStopped Direction = 0
	DirUp      Direction = 1
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	default:
		return "stopped"
	}
}

// DirectionBetween returns the direction of travel from one floor to another.
func DirectionBetween(from, to int) Direction {
	if from < to {
		return DirUp
	}
	if from > to {
		return DirDown
	}
	return DirStopped
}

type HallType int

const (
	HallUp HallType = iota
	HallDown
)

func (h HallType) String() string {
	if h == HallUp {
		return "up"
	}
	return "down"
}

// Dir maps a hall button to the direction its passengers want to travel.
func (h HallType) Dir() Direction {
	if h == HallUp {
		return DirUp
	}
	return DirDown
}

// HallFor maps a direction of travel to the hall button serving it.
// DirStopped has no hall button and reports ok == false.
func HallFor(dir Direction) (hall HallType, ok bool) {
	switch dir {
	case DirUp:
		return HallUp, true
	case DirDown:
		return HallDown, true
	}
	return HallUp, false
}

// RequestStatus is the per-floor, per-direction call state.
type RequestStatus int

const (
	Inactive RequestStatus = iota
	Active
	Accepted
)

func (s RequestStatus) String() string {
	switch s {
	case Active:
		return "active"
	case Accepted:
		return "accepted"
	default:
		return "inactive"
	}
}

// Pending reports whether the call is waiting for, or committed to, a car.
func (s RequestStatus) Pending() bool {
	return s == Active || s == Accepted
}

type EventKind int

const (
	UpButtonPressed EventKind = iota
	DownButtonPressed
	FloorButtonPressed
	PassingFloor
	StoppedAtFloor
	CarIdle
	Tick
)

func (k EventKind) String() string {
	switch k {
	case UpButtonPressed:
		return "up_button_pressed"
	case DownButtonPressed:
		return "down_button_pressed"
	case FloorButtonPressed:
		return "floor_button_pressed"
	case PassingFloor:
		return "passing_floor"
	case StoppedAtFloor:
		return "stopped_at_floor"
	case CarIdle:
		return "idle"
	case Tick:
		return "tick"
	}
	return "unknown"
}

// Event is a single notification from the engine. Fields not used by Kind are zero.
type Event struct {
	Kind  EventKind
	Car   int
	Floor int
	Dir   Direction
	Dt    time.Duration
}
