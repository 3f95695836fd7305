package tasksim

import "github.com/taskgraph-sim/tasksim/internal/model"

// Error kinds re-exported from internal/model so callers can use
// errors.Is against this package without reaching into an internal
// package themselves. ErrConfig and ErrValidation are returned by the
// loaders and the dependency validator; ErrUnknownHost, ErrInvalidAmount,
// and ErrUnknownLinkRef can also surface from the simulator driver
// itself.
const (
	ErrConfig         = model.ErrConfig
	ErrValidation     = model.ErrValidation
	ErrUnknownHost    = model.ErrUnknownHost
	ErrInvalidAmount  = model.ErrInvalidAmount
	ErrUnknownLinkRef = model.ErrUnknownLinkRef
)
