package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pii-keeper/internal/service"
	"github.com/MKhiriev/go-pii-keeper/internal/store"
	"github.com/MKhiriev/go-pii-keeper/internal/utils"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusUnauthorized,
	service.ErrEmailTaken:              http.StatusConflict,
	service.ErrDataKeyUnavailable:      http.StatusUnauthorized,
	service.ErrSessionInvalid:          http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTokenCreationFailed:     http.StatusInternalServerError,
	service.ErrSearchUnavailable:       http.StatusNotImplemented,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrSessionNotFound:    http.StatusUnauthorized,
	store.ErrContactNotSaved:    http.StatusInternalServerError,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,

	ErrNoSessionInContext: http.StatusUnauthorized,
}

// statusFromError returns the status for err and the sentinel it matched,
// if any.
func statusFromError(err error) (int, error) {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status, target
		}
	}
	return http.StatusInternalServerError, nil
}

// writeError writes err as a JSON error body. Only the matched sentinel's
// message reaches the client; internal errors get the status text.
func writeError(w http.ResponseWriter, err error) int {
	status, target := statusFromError(err)

	message := http.StatusText(status)
	if target != nil && status < http.StatusInternalServerError {
		message = target.Error()
	}

	utils.WriteError(w, message, status)
	return status
}
