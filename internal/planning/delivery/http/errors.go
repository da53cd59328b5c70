package http

import (
	"errors"
	"net/http"

	"ai-planning-service/internal/planning"
	pkgErrors "ai-planning-service/pkg/errors"
)

var (
	errEventRequired       = errors.New("both 'event' and 'event_info' are required")
	errEventNameRequired   = errors.New("'event_name' is required")
	errDescriptionRequired = errors.New("description is required")
	errNoTasks             = errors.New("no tasks provided")
	errNoMembers           = errors.New("no members provided")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, planning.ErrEmptyInput),
		errors.Is(err, planning.ErrNoTasks),
		errors.Is(err, planning.ErrNoMembers):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, planning.ErrNoValidRecords):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, "the model response contained no usable records, please try again")
	case errors.Is(err, planning.ErrGeneratorFailed):
		return pkgErrors.NewHTTPError(http.StatusBadGateway, "the language model is unavailable, please try again later")
	default:
		return pkgErrors.ErrInternalServerError
	}
}
