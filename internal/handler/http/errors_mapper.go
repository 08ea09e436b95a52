package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-users-registry/internal/roconuri"
	"github.com/MKhiriev/go-users-registry/internal/service"
	"github.com/MKhiriev/go-users-registry/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatusTable is checked in order; the first match wins.
var errorStatusTable = []errorStatus{
	{service.ErrValidationNoUsersProvided, http.StatusBadRequest},
	{service.ErrValidationLengthMismatch, http.StatusBadRequest},
	{service.ErrInvalidFilter, http.StatusBadRequest},
	{service.ErrInvalidJournalFilter, http.StatusBadRequest},
	{service.ErrInvalidRetention, http.StatusBadRequest},
	{roconuri.ErrInvalidURI, http.StatusBadRequest},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrInvalidLimit, http.StatusBadRequest},

	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized},

	{service.ErrJournalUnavailable, http.StatusServiceUnavailable},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},
}

func statusFromError(err error) int {
	for _, es := range errorStatusTable {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}
