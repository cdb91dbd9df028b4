package types

// Status is the lifecycle state of a generation request. The machine only
// moves forward: pending -> processing -> {completed, failed}.
type Status string

// Generation request statuses.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// Valid reports whether s is a known status.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Terminal reports whether no further work happens on a request in s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed
}

// CanTransition reports whether the s -> to transition is allowed.
// completed -> completed is permitted because the workflow engine may
// redeliver a result; every other transition out of a terminal state is
// rejected.
func (s Status) CanTransition(to Status) bool {
	switch s {
	case StatusPending:
		return to == StatusProcessing || to == StatusCompleted || to == StatusFailed
	case StatusProcessing:
		return to == StatusCompleted || to == StatusFailed
	case StatusCompleted:
		return to == StatusCompleted
	default:
		return false
	}
}
