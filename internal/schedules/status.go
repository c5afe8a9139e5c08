package schedules

// Schedule statuses
const (
	StatusScheduled  = "SCHEDULED"
	StatusInProgress = "IN_PROGRESS"
	StatusDelayed    = "DELAYED"
	StatusCompleted  = "COMPLETED"
	StatusCancelled  = "CANCELLED"
)

// validTransitions is the schedule state machine. COMPLETED and
// CANCELLED are terminal.
var validTransitions = map[string][]string{
	StatusScheduled:  {StatusInProgress, StatusDelayed, StatusCancelled},
	StatusInProgress: {StatusCompleted, StatusDelayed, StatusCancelled},
	StatusDelayed:    {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusCompleted:  {},
	StatusCancelled:  {},
}

// CanTransition reports whether a schedule may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, allowed := range validTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a status admits no further transitions.
func IsTerminal(status string) bool {
	return len(validTransitions[status]) == 0 && isKnownStatus(status)
}

// IsBookable reports whether tickets and parcels may still be added to
// a schedule in this status.
func IsBookable(status string) bool {
	return status != StatusCancelled && status != StatusCompleted
}

func isKnownStatus(status string) bool {
	_, ok := validTransitions[status]
	return ok
}
