package generator

import "fmt"

// Stage identifies which pipeline stage an error came from.
type Stage string

// Pipeline stages.
const (
	StagePrimary   Stage = "primary"
	StageSecondary Stage = "secondary"
)

// GenerationError wraps a provider failure with the stage it occurred in.
type GenerationError struct {
	Stage Stage
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation stage failed: %v", e.Stage, e.Cause)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}
