package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-users-registry/internal/service"
	"github.com/MKhiriev/go-users-registry/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestJournal(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Enabled().Return(false)
	m.journal.EXPECT().List(gomock.Any(), models.JournalFilter{Operation: models.OperationUnload, Limit: 10}).
		Return([]models.JournalEntry{{ID: 3, Operation: models.OperationUnload, Name: "alice"}}, nil)

	rec := serve(t, h, http.MethodGet, "/api/journal?limit=10&operation=unload", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeBody[models.JournalResponse](t, rec)
	require.Equal(t, 1, got.Length)
	assert.Equal(t, "alice", got.Entries[0].Name)
}

func TestJournal_InvalidLimit(t *testing.T) {
	h, m := newTestHandler(t)
	m.auth.EXPECT().Enabled().Return(false)

	rec := serve(t, h, http.MethodGet, "/api/journal?limit=ten", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestJournal_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid operation", fmt.Errorf("%w: drop", service.ErrInvalidJournalFilter), http.StatusBadRequest},
		{"unavailable", fmt.Errorf("%w: timeout", service.ErrJournalUnavailable), http.StatusServiceUnavailable},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, m := newTestHandler(t)
			m.auth.EXPECT().Enabled().Return(false)
			m.journal.EXPECT().List(gomock.Any(), gomock.Any()).Return(nil, tt.err)

			rec := serve(t, h, http.MethodGet, "/api/journal", nil)

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
