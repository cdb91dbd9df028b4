package db

import (
	"errors"
	"fmt"

	"github.com/healthygutai/content-engine/internal/types"
)

// ErrNotFound is returned when a lookup by id matches no row.
var ErrNotFound = errors.New("record not found")

// InvalidTransitionError reports a status change rejected by the request
// state machine, such as completing a request that already failed.
type InvalidTransitionError struct {
	From types.Status
	To   types.Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition: %s -> %s", e.From, e.To)
}
