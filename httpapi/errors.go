package httpapi

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"switchboard/errors"
)

// respondErr translates a domain error into an HTTP status and a JSON body.
// The mapping is deliberately coarse: clients get just enough to react
// (re-authenticate, clear a stale cookie, show "forbidden") and no more.
func respondErr(c *gin.Context, err error) {
	c.JSON(httpStatus(err), gin.H{"error": err.Error()})
}

func httpStatus(err error) int {
	var validationErrs validator.ValidationErrors
	switch {
	case stderrors.Is(err, errors.ErrNoSession),
		stderrors.Is(err, errors.ErrInvalidSession),
		stderrors.Is(err, errors.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case stderrors.Is(err, errors.ErrNotDelegated),
		stderrors.Is(err, errors.ErrCapabilityDenied),
		stderrors.Is(err, errors.ErrNotMember):
		return http.StatusForbidden
	case stderrors.Is(err, errors.ErrConversationNotFound),
		stderrors.Is(err, errors.ErrMessageNotFound),
		stderrors.Is(err, errors.ErrPostNotFound),
		stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrDelegationNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrUsernameTaken):
		return http.StatusConflict
	case stderrors.Is(err, errors.ErrInvalidPassword),
		stderrors.As(err, &validationErrs):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
