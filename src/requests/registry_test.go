package requests

import (
	"errors"
	"slices"
	"testing"

	"sagavator/src/types"
)

func TestUpAndDownAreIndependent(t *testing.T) {
	r := NewRegistry(4)

	if err := r.SetUpStatus(2, types.Active); err != nil {
		t.Fatal(err)
	}
	if err := r.SetDownStatus(2, types.Accepted); err != nil {
		t.Fatal(err)
	}

	if got := r.UpStatus(2); got != types.Active {
		t.Errorf("UpStatus(2) = %v, expected active", got)
	}
	if got := r.DownStatus(2); got != types.Accepted {
		t.Errorf("DownStatus(2) = %v, expected accepted", got)
	}

	if err := r.SetStatus(2, types.HallUp, types.Inactive); err != nil {
		t.Fatal(err)
	}
	if r.Status(2, types.HallUp) != types.Inactive || r.Status(2, types.HallDown) != types.Accepted {
		t.Errorf("clearing up changed down: up=%v down=%v", r.UpStatus(2), r.DownStatus(2))
	}
}

func TestUnknownFloor(t *testing.T) {
	r := NewRegistry(3)

	for _, floor := range []int{-1, 3} {
		if err := r.SetUpStatus(floor, types.Active); !errors.Is(err, types.ErrUnknownFloor) {
			t.Errorf("SetUpStatus(%d) error = %v, expected ErrUnknownFloor", floor, err)
		}
		if got := r.DownStatus(floor); got != types.Inactive {
			t.Errorf("DownStatus(%d) = %v, expected inactive", floor, got)
		}
	}
}

func TestPending(t *testing.T) {
	r := NewRegistry(5)
	r.SetUpStatus(4, types.Active)
	r.SetDownStatus(1, types.Accepted)
	r.SetUpStatus(1, types.Active)
	r.SetDownStatus(3, types.Inactive)

	expected := []int{1, 4}
	if got := r.Pending(); !slices.Equal(got, expected) {
		t.Errorf("Pending() = %v, expected %v", got, expected)
	}
}
