// State types owned by the controller for each car. The engine's car objects are
// never extended; everything the controller remembers lives here, indexed by car.
package elev

// CarState is the controller's side table entry for one car.
type CarState struct {
	Index int
	// Occupancy is the estimated passenger count, 0..capacity.
	Occupancy      int
	PrevLoadFactor float64
	// LastDecision describes the most recent decision taken for the car.
	LastDecision string
}

// InitCarStates creates one entry per car, in car index order.
func InitCarStates(numCars int) []CarState {
	states := make([]CarState, numCars)
	for i := range states {
		states[i].Index = i
	}
	return states
}
