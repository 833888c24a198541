package api

import (
	"errors"
	"net/http"

	"github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/adapters/repository"
	service "github.com/muudzo/Closet-Muse-Mobile-App-Interface/internal/app"
)

// Sentinel kinds for API errors.
var (
	ErrBadRequest  = errors.New("bad request")
	ErrNotFound    = errors.New("not found")
	ErrConflict    = errors.New("conflict")
	ErrUpstream    = errors.New("upstream unavailable")
	ErrUnavailable = errors.New("service unavailable")
	ErrInternal    = errors.New("internal error")
)

// Error is an API failure tagged with the operation and kind.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return e.Op + ": " + e.Kind.Error()
	}
	return e.Op + ": " + e.Err.Error()
}

// Unwrap exposes both the kind and the cause to errors.Is.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

// NewKind returns an error of the given kind with no cause.
func NewKind(op string, kind error) error {
	return &Error{Op: op, Kind: kind}
}

// WrapKind tags err with op and kind.
func WrapKind(op string, kind, err error) error {
	return &Error{Op: op, Kind: kind, Err: err}
}

// Wrap classifies a service error and tags it with op.
func Wrap(op string, err error) error {
	return WrapKind(op, Kind(err), err)
}

// Kind returns the API kind of err.
func Kind(err error) error {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, service.ErrInvalidRequest), errors.Is(err, service.ErrInvalidItem):
		return ErrBadRequest
	case errors.Is(err, service.ErrRecommendationNotFound), errors.Is(err, repository.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, service.ErrAlreadyConfirmed):
		return ErrConflict
	case errors.Is(err, service.ErrWeatherUnavailable):
		return ErrUpstream
	case errors.Is(err, service.ErrNotStarted):
		return ErrUnavailable
	}
	return ErrInternal
}

// statusOf maps a kind to its HTTP status and response code.
func statusOf(kind error) (int, string) {
	switch kind {
	case ErrBadRequest:
		return http.StatusBadRequest, "bad_request"
	case ErrNotFound:
		return http.StatusNotFound, "not_found"
	case ErrConflict:
		return http.StatusConflict, "conflict"
	case ErrUpstream:
		return http.StatusBadGateway, "upstream_unavailable"
	case ErrUnavailable:
		return http.StatusServiceUnavailable, "unavailable"
	}
	return http.StatusInternalServerError, "internal_error"
}
