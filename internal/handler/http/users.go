// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
)

// maxBodyBytes bounds JSON request bodies.
const maxBodyBytes = 8 << 20

func (h *Handler) names(w http.ResponseWriter, r *http.Request) {
	names := h.services.UsersService.Names(r.Context())

	utils.WriteJSON(w, models.NamesResponse{Names: names, Length: len(names)}, http.StatusOK)
}

func (h *Handler) roles(w http.ResponseWriter, r *http.Request) {
	roles := h.services.UsersService.Roles(r.Context(), r.URL.Query().Get("user"))

	utils.WriteJSON(w, models.RolesResponse{Roles: roles, Length: len(roles)}, http.StatusOK)
}

// roleView derives Size from the view itself so both come from one snapshot.
func (h *Handler) roleView(w http.ResponseWriter, r *http.Request) {
	view := h.services.UsersService.RoleView(r.Context())

	size := 0
	for _, users := range view {
		size += len(users)
	}

	utils.WriteJSON(w, models.RoleViewResponse{View: view, Size: size}, http.StatusOK)
}

// filter accepts an empty body as "every role, root URI".
func (h *Handler) filter(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.FilterRequest
	if err := decodeJSON(r, &request, true); err != nil {
		log.Err(err).Str("func", "*Handler.filter").Msg("error decoding filter request")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	users, err := h.services.UsersService.Filter(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.filter").Msg("error filtering users")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, models.UsersResponse{Users: users, Length: len(users)}, http.StatusOK)
}

func (h *Handler) load(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.LoadRequest
	if err := decodeJSON(r, &request, false); err != nil {
		log.Err(err).Str("func", "*Handler.load").Msg("error decoding load request")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	log.Debug().Str("func", "*Handler.load").Str("operator", operator).Int("users", len(request.Users)).Msg("load requested")

	response, err := h.services.UsersService.Load(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.load").Msg("error loading users")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

func (h *Handler) unload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.UnloadRequest
	if err := decodeJSON(r, &request, false); err != nil {
		log.Err(err).Str("func", "*Handler.unload").Msg("error decoding unload request")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	log.Debug().Str("func", "*Handler.unload").Str("operator", operator).Int("users", len(request.Users)).Msg("unload requested")

	response, err := h.services.UsersService.Unload(r.Context(), request)
	if err != nil {
		log.Err(err).Str("func", "*Handler.unload").Msg("error unloading users")
		utils.WriteError(w, r, err.Error(), statusFromError(err))
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}

// decodeJSON decodes the request body into dst. An empty body is an error
// unless allowEmpty is set.
func decodeJSON(r *http.Request, dst any, allowEmpty bool) error {
	if r.Body == nil {
		if allowEmpty {
			return nil
		}
		return fmt.Errorf("%w: empty body", ErrInvalidJSON)
	}

	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(dst)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF) && allowEmpty:
		return nil
	default:
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
}
