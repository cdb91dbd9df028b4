package server

import (
	"errors"
	"net/http"

	"github.com/healthygutai/content-engine/internal/db"
	"github.com/healthygutai/content-engine/internal/schemas"
	"github.com/healthygutai/content-engine/internal/workflow"
)

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	if errors.Is(err, db.ErrNotFound) {
		return http.StatusNotFound
	}

	var transition *db.InvalidTransitionError
	if errors.As(err, &transition) {
		return http.StatusConflict
	}

	var validation *schemas.ValidationError
	if errors.As(err, &validation) {
		return http.StatusBadRequest
	}

	var trigger *workflow.TriggerError
	if errors.As(err, &trigger) {
		return http.StatusBadGateway
	}

	return http.StatusInternalServerError
}
