// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// LoadRequest carries a batch of user specs to be loaded into the table.
type LoadRequest struct {
	// Users is the batch of raw specs, processed one at a time.
	Users []UserSpec `json:"users"`

	// Length, when non-zero, must equal len(Users); it guards against
	// truncated bodies. Zero means the length was not declared.
	Length int `json:"length"`
}

// UnloadRequest carries a batch of user specs to be removed from the table.
// Only Name, Role and Namespace of each spec are used for matching.
type UnloadRequest struct {
	Users  []UserSpec `json:"users"`
	Length int        `json:"length"`
}

// FilterRequest describes a selection over the current users.
//
// An empty or missing Roles list means "do not filter by role"; it never
// means "match nothing". An empty CompatibilityURI means [DefaultCompatibility].
type FilterRequest struct {
	Roles            []string `json:"roles,omitempty"`
	CompatibilityURI string   `json:"compatibility_uri,omitempty"`
}

// JournalFilter narrows a journal listing.
type JournalFilter struct {
	// Operation restricts entries to a single operation when non-empty.
	Operation JournalOperation `json:"operation,omitempty"`

	// Limit caps the number of returned entries; zero means the server default.
	Limit uint64 `json:"limit,omitempty"`
}
