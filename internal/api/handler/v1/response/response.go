package response

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation"
	"go.uber.org/zap"

	"github.com/starevents/starevents-api/internal/domain"
)

// Err is the body of every error response.
type Err struct {
	Err            error             `json:"-"`
	HTTPStatusCode int               `json:"-"`
	StatusText     string            `json:"status"`
	ErrorText      string            `json:"error,omitempty"`
	Fields         map[string]string `json:"fields,omitempty"`
}

func (e *Err) Error() string {
	return e.ErrorText
}

func RenderErr(ctx *gin.Context, err *Err) {
	if err.Err != nil {
		_ = ctx.Error(err.Err)
	}
	ctx.AbortWithStatusJSON(err.HTTPStatusCode, err)
}

func newErr(status int, err error) *Err {
	e := &Err{
		Err:            err,
		HTTPStatusCode: status,
		StatusText:     http.StatusText(status),
	}
	if err != nil {
		e.ErrorText = err.Error()
	}
	return e
}

// ErrBadRequest renders ozzo field errors and domain.ValidationError as a fields map.
func ErrBadRequest(err error) *Err {
	e := newErr(http.StatusBadRequest, err)
	e.Fields = fieldsOf(err)
	if e.Fields != nil {
		e.ErrorText = domain.ErrValidation.Error()
	}
	return e
}

func ErrNotFound(resource, field string, value any) *Err {
	return newErr(http.StatusNotFound, fmt.Errorf("%s with %s %v not found", resource, field, value))
}

func ErrPermissionDenied(err error) *Err {
	e := newErr(http.StatusForbidden, err)
	e.ErrorText = "permission denied"
	return e
}

func ErrUnauthorized(err error) *Err {
	e := newErr(http.StatusUnauthorized, err)
	e.ErrorText = "authentication required"
	return e
}

func ErrWrongCredentials(err error) *Err {
	e := newErr(http.StatusUnauthorized, err)
	e.ErrorText = "wrong email or password"
	return e
}

func ErrConflict(err error) *Err {
	return newErr(http.StatusConflict, err)
}

func ErrUnprocessable(err error) *Err {
	return newErr(http.StatusUnprocessableEntity, err)
}

// ErrInternalServerError logs err and hides it from the client.
func ErrInternalServerError(err error) *Err {
	zap.L().Error("internal server error", zap.Error(err))

	e := newErr(http.StatusInternalServerError, err)
	e.ErrorText = "internal server error"
	return e
}

// FromDomain maps a core error kind to its HTTP rendering.
func FromDomain(err error) *Err {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return ErrBadRequest(err)
	case errors.Is(err, domain.ErrInsufficientInventory):
		e := ErrConflict(err)
		e.ErrorText = domain.ErrInsufficientInventory.Error()
		return e
	case errors.Is(err, domain.ErrCapacityViolation):
		return ErrUnprocessable(err)
	case errors.Is(err, domain.ErrEventNotBookable):
		return ErrConflict(err)
	case errors.Is(err, domain.ErrNotAuthorized):
		return ErrPermissionDenied(err)
	case errors.Is(err, domain.ErrNotFound):
		return newErr(http.StatusNotFound, err)
	case errors.Is(err, domain.ErrDuplicate):
		return ErrConflict(err)
	case errors.Is(err, domain.ErrInvalidTransition), errors.Is(err, domain.ErrUserHasDependents):
		return ErrConflict(err)
	case errors.Is(err, domain.ErrConflict):
		e := ErrConflict(err)
		e.ErrorText = domain.ErrConflict.Error()
		return e
	default:
		return ErrInternalServerError(err)
	}
}

func fieldsOf(err error) map[string]string {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for f, e := range verrs {
			fields[f] = e.Error()
		}
		return fields
	}

	var derr *domain.ValidationError
	if errors.As(err, &derr) {
		return derr.Fields
	}

	return nil
}

type LoginResponse struct {
	Token string      `json:"token"`
	User  domain.User `json:"user"`
}

type CancelEventResponse struct {
	Event            domain.Event `json:"event"`
	BookingsRefunded int          `json:"bookings_refunded"`
}
