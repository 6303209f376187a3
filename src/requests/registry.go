// Package requests tracks the up and down hall calls of every floor.
package requests

import (
	"fmt"

	"sagavator/src/types"
)

// Registry stores the request status of both hall buttons for each floor.
// It holds no transition logic; the dispatcher decides every change.
type Registry struct {
	Up   []types.RequestStatus
	Down []types.RequestStatus
}

func NewRegistry(numFloors int) *Registry {
	return &Registry{
		Up:   make([]types.RequestStatus, numFloors),
		Down: make([]types.RequestStatus, numFloors),
	}
}

func (r *Registry) NumFloors() int {
	return len(r.Up)
}

func (r *Registry) valid(floor int) error {
	if floor < 0 || floor >= len(r.Up) {
		return fmt.Errorf("floor %d: %w", floor, types.ErrUnknownFloor)
	}
	return nil
}

func (r *Registry) SetUpStatus(floor int, status types.RequestStatus) error {
	if err := r.valid(floor); err != nil {
		return err
	}
	r.Up[floor] = status
	return nil
}

func (r *Registry) SetDownStatus(floor int, status types.RequestStatus) error {
	if err := r.valid(floor); err != nil {
		return err
	}
	r.Down[floor] = status
	return nil
}

// UpStatus returns Inactive for floors outside the building.
func (r *Registry) UpStatus(floor int) types.RequestStatus {
	if r.valid(floor) != nil {
		return types.Inactive
	}
	return r.Up[floor]
}

// DownStatus returns Inactive for floors outside the building.
func (r *Registry) DownStatus(floor int) types.RequestStatus {
	if r.valid(floor) != nil {
		return types.Inactive
	}
	return r.Down[floor]
}

func (r *Registry) Status(floor int, hall types.HallType) types.RequestStatus {
	if hall == types.HallUp {
		return r.UpStatus(floor)
	}
	return r.DownStatus(floor)
}

func (r *Registry) SetStatus(floor int, hall types.HallType, status types.RequestStatus) error {
	if hall == types.HallUp {
		return r.SetUpStatus(floor, status)
	}
	return r.SetDownStatus(floor, status)
}

// Pending returns, in ascending order, every floor with an active or accepted call.
func (r *Registry) Pending() []int {
	var floors []int
	for floor := range r.Up {
		if r.Up[floor].Pending() || r.Down[floor].Pending() {
			floors = append(floors, floor)
		}
	}
	return floors
}
