package entities

// jobTransitions declares the allowed job status flow as a directed graph.
// Cancellation is reachable from open and assigned only; completed and
// cancelled are terminal.
var jobTransitions = map[JobStatus][]JobStatus{
	JobStatusOpen:       {JobStatusAssigned, JobStatusCancelled},
	JobStatusAssigned:   {JobStatusInProgress, JobStatusCancelled},
	JobStatusInProgress: {JobStatusCompleted},
	JobStatusCompleted:  {},
	JobStatusCancelled:  {},
}

// CanTransition reports whether from -> to is a legal job status move.
func CanTransition(from, to JobStatus) bool {
	allowed, ok := jobTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// IsTerminal reports whether a job status admits no further transitions.
func IsTerminal(s JobStatus) bool {
	return len(jobTransitions[s]) == 0
}
