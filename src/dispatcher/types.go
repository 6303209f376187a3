package dispatcher

import (
	"sagavator/lib/engine"
	"sagavator/src/elev"
	"sagavator/src/requests"
	"sagavator/src/types"
)

type handlerFunc func(c *Controller, ev types.Event) error

// controllerCmd runs on the controller goroutine.
type controllerCmd struct {
	Exec func(c *Controller)
}

// Snapshot is a copy of the controller's view of the building. It shares no
// memory with the controller.
type Snapshot struct {
	Cars     []elev.CarState
	Views    []engine.CarView
	Requests requests.Registry
}
