package workflow

import "fmt"

// TriggerError reports a failed workflow trigger. Trigger failures are the
// only workflow-engine errors surfaced to callers; status and listing
// queries degrade instead.
type TriggerError struct {
	Cause error
}

func (e *TriggerError) Error() string {
	return fmt.Sprintf("failed to trigger workflow: %v", e.Cause)
}

func (e *TriggerError) Unwrap() error {
	return e.Cause
}
