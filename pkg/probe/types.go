package probe

import "context"

type Status int

const (
	StatusHealthy Status = iota
	StatusUnhealthy
	StatusError
)

func (s Status) String() string {
	switch s {
	case StatusHealthy:
		return "healthy"
	case StatusUnhealthy:
		return "unhealthy"
	default:
		return "error"
	}
}

// Outcome is the result of a single probe invocation. Fault is set
// only when Status is StatusError and carries the fault's textual
// description.
type Outcome struct {
	Status Status
	Fault  string
}

type Probe interface {
	Exec(ctx context.Context) Outcome
}
