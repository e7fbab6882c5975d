package adaptor

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"travel-agency/internal/booking"
	"travel-agency/internal/remote"
	"travel-agency/internal/usecase"
	"travel-agency/pkg/utils"

	"go.uber.org/zap"
)

// respondError maps a service error onto the response envelope. backLink is
// attached to 404 responses for detail lookups.
func respondError(w http.ResponseWriter, log *zap.Logger, err error, operation, backLink string) {
	var validationErr *utils.ValidationError

	switch {
	case errors.As(err, &validationErr):
		log.Warn(operation+" validation failed",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrPackageNotFound),
		errors.Is(err, usecase.ErrBlogPostNotFound),
		errors.Is(err, usecase.ErrDestinationNotFound),
		errors.Is(err, usecase.ErrCategoryNotFound),
		errors.Is(err, usecase.ErrSessionNotFound):
		log.Warn(operation+" failed - not found",
			zap.Error(err),
			zap.String("operation", operation))
		if backLink != "" {
			utils.ResponseNotFoundWithLink(w, notFoundMessage(err), backLink)
			return
		}
		utils.ResponseNotFound(w, notFoundMessage(err))

	case errors.Is(err, remote.ErrDuplicate):
		log.Warn(operation+" failed - already exists",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, "A record with the same name already exists")

	case errors.Is(err, usecase.ErrDestinationInUse),
		errors.Is(err, usecase.ErrCategoryInUse),
		errors.Is(err, booking.ErrWizardClosed),
		errors.Is(err, usecase.ErrNotSubmitted):
		log.Info(operation+" refused",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseConflict(w, err.Error())

	case errors.Is(err, booking.ErrTermsNotAccepted),
		errors.Is(err, booking.ErrNotAtFinalStep),
		errors.Is(err, booking.ErrInvalidTravelers),
		errors.Is(err, remote.ErrMissingID):
		log.Warn("Invalid input for "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadRequest(w, err.Error(), nil)

	case errors.Is(err, booking.ErrSubmitFailed),
		errors.Is(err, remote.ErrUnavailable),
		errors.Is(err, context.DeadlineExceeded):
		log.Error(operation+" failed - backend unavailable",
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseBadGateway(w, "The content service is unavailable, please try again")

	default:
		log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

func notFoundMessage(err error) string {
	for _, target := range []error{
		usecase.ErrPackageNotFound,
		usecase.ErrBlogPostNotFound,
		usecase.ErrDestinationNotFound,
		usecase.ErrCategoryNotFound,
		usecase.ErrSessionNotFound,
	} {
		if errors.Is(err, target) {
			return target.Error()
		}
	}
	return "not found"
}

// decodeAndValidate reads a JSON body into dst and runs its validation tags.
// It writes the 400 response itself and reports whether the caller should
// continue.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return false
	}

	if validationErrors := utils.ValidateStruct(dst); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Validation failed", validationErrors)
		return false
	}
	return true
}
