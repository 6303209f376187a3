package elev

// UpdateOccupancy moves the occupancy estimate one step based on the change in load factor.
//   - a load factor of exactly zero means the car is empty
//   - an increase means one more passenger, capped at capacity
//   - a decrease means one less passenger, but never below one since the car is not empty
//
// Calling it again with an unchanged load factor does nothing.
func (s *CarState) UpdateOccupancy(loadFactor float64, capacity int) {
	switch {
	case loadFactor == 0:
		s.Occupancy = 0
	case loadFactor > s.PrevLoadFactor:
		s.Occupancy++
	case loadFactor < s.PrevLoadFactor:
		s.Occupancy = max(s.Occupancy-1, 1)
	}
	s.Occupancy = min(s.Occupancy, max(capacity, 0))
	s.PrevLoadFactor = loadFactor
}

// HasRoom reports whether the car can take another passenger.
func (s *CarState) HasRoom(loadFactor float64, capacity int) bool {
	return s.Occupancy < capacity && loadFactor < 1
}
