// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoadResponse reports the full accounting of a load: every accepted spec as
// a constructed user and every rejected spec with its reason.
type LoadResponse struct {
	Added    []User         `json:"added"`
	Rejected []RejectedSpec `json:"rejected"`
}

// UnloadResponse lists the specs that matched a stored user and were removed,
// in request order.
type UnloadResponse struct {
	Removed []UserSpec `json:"removed"`
	Length  int        `json:"length"`
}

// UsersResponse is returned by the filter endpoint.
type UsersResponse struct {
	Users  []User `json:"users"`
	Length int    `json:"length"`
}

// NamesResponse lists distinct user names.
type NamesResponse struct {
	Names  []string `json:"names"`
	Length int      `json:"length"`
}

// RolesResponse lists distinct roles.
type RolesResponse struct {
	Roles  []string `json:"roles"`
	Length int      `json:"length"`
}

// RoleViewResponse is the current users grouped by role.
type RoleViewResponse struct {
	View map[string][]User `json:"view"`
	Size int               `json:"size"`
}

// JournalResponse lists journal entries, newest first.
type JournalResponse struct {
	Entries []JournalEntry `json:"entries"`
	Length  int            `json:"length"`
}

// VersionResponse carries the running application version.
type VersionResponse struct {
	Version string `json:"version"`
}
