package layout

import "fmt"

// InsufficientSpaceError reports that a placement request exceeded the
// eligible parcels. It is a reported condition, not a generator defect:
// the caller decides whether to retry with relaxed parameters.
type InsufficientSpaceError struct {
	What      string
	Requested int
	Available int
}

func (e *InsufficientSpaceError) Error() string {
	return fmt.Sprintf("insufficient space: %d %s requested, %d available",
		e.Requested, e.What, e.Available)
}
