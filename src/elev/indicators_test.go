package elev

import (
	"errors"
	"testing"

	"sagavator/lib/engine"
	"sagavator/src/types"
)

func TestApplyByDestination(t *testing.T) {
	testCases := []struct {
		name         string
		floor        int
		queue        []int
		expectedUp   bool
		expectedDown bool
		expectedErr  error
	}{
		{name: "going up", floor: 1, queue: []int{3, 0}, expectedUp: true},
		{name: "going down", floor: 3, queue: []int{0}, expectedDown: true},
		{name: "no destination", floor: 2, queue: nil, expectedUp: true, expectedDown: true, expectedErr: types.ErrNoDestination},
		{name: "already there", floor: 2, queue: []int{2}, expectedUp: true, expectedDown: true, expectedErr: types.ErrAlreadyAtDestination},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			car := engine.NewSimCar(tc.floor, 4)
			car.SetDestinationQueue(tc.queue)

			err := ApplyByDestination(car)
			if !errors.Is(err, tc.expectedErr) {
				t.Fatalf("error = %v, expected %v", err, tc.expectedErr)
			}
			if car.GoingUpIndicator() != tc.expectedUp || car.GoingDownIndicator() != tc.expectedDown {
				t.Errorf("indicators up=%v down=%v, expected up=%v down=%v",
					car.GoingUpIndicator(), car.GoingDownIndicator(), tc.expectedUp, tc.expectedDown)
			}
		})
	}
}

func TestApplyBothAndSignaled(t *testing.T) {
	car := engine.NewSimCar(0, 4)
	ApplyDirection(car, types.DirDown)
	if Signaled(car, types.DirUp) || !Signaled(car, types.DirDown) {
		t.Fatal("expected only the down indicator")
	}
	ApplyBoth(car)
	if !Signaled(car, types.DirUp) || !Signaled(car, types.DirDown) {
		t.Error("expected both indicators")
	}
	if Signaled(car, types.DirStopped) {
		t.Error("no indicator should match a stopped direction")
	}
}
