package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	version := h.services.AppInfoService.GetAppVersion(r.Context())

	utils.WriteJSON(w, models.VersionResponse{Version: version}, http.StatusOK)
}
