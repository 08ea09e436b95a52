package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
)

// journal lists recent journal entries. Query: limit, operation.
func (h *Handler) journal(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	query := r.URL.Query()

	filter := models.JournalFilter{Operation: models.JournalOperation(query.Get("operation"))}
	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			err = fmt.Errorf("%w %q", ErrInvalidLimit, raw)
			log.Err(err).Str("func", "*Handler.journal").Send()
			utils.WriteError(w, r, err.Error(), statusFromError(err))
			return
		}
		filter.Limit = limit
	}

	entries, err := h.services.JournalService.List(r.Context(), filter)
	if err != nil {
		log.Err(err).Str("func", "*Handler.journal").Msg("error listing journal")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.JournalResponse{Entries: entries, Length: len(entries)}, http.StatusOK)
}
