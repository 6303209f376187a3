package types

import "errors"

// Faults raised by the dispatch policy. All of them mean a scheduling bug or a
// misbehaving engine, never an expected runtime condition.
var (
	ErrNoCandidate                  = errors.New("no candidate to choose from")
	ErrNoDestination                = errors.New("car has no destination")
	ErrAlreadyAtDestination         = errors.New("car is already at its destination")
	ErrInvalidButtonForCurrentFloor = errors.New("floor button pressed for the car's current floor")
)

var (
	ErrUnknownFloor = errors.New("unknown floor")
	ErrUnknownCar   = errors.New("unknown car")
)

// IsFault reports whether err is one of the policy faults above.
func IsFault(err error) bool {
	return errors.Is(err, ErrNoCandidate) ||
		errors.Is(err, ErrNoDestination) ||
		errors.Is(err, ErrAlreadyAtDestination) ||
		errors.Is(err, ErrInvalidButtonForCurrentFloor)
}
