// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// DefaultCompatibility is the rocon URI that matches every resource context.
// It is used when a spec leaves its compatibility empty and as the default
// reference for filtering.
const DefaultCompatibility = "rocon:/"

// UserSpec is the raw, unvalidated description of a user as delivered by a
// caller. It is turned into a canonical [User] by the registry's builder.
type UserSpec struct {
	// Name is the display name of the user.
	Name string `json:"name"`

	// Role is the classification tag the user is grouped under.
	Role string `json:"role"`

	// Namespace scopes the user; together with Name and Role it forms the
	// identity of the user.
	Namespace string `json:"namespace"`

	// Compatibility is a rocon URI describing the resource contexts this
	// user is compatible with.
	Compatibility string `json:"compatibility"`

	// Description is free-form text carried along for display purposes.
	Description string `json:"description,omitempty"`
}

// User is a validated user entity stored by the users table.
//
// Two users with the same Key are the same user regardless of any other
// field. Key is derived from (Name, Role, Namespace) and is never set by
// callers directly.
type User struct {
	Key           string `json:"key"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	Namespace     string `json:"namespace"`
	Compatibility string `json:"compatibility"`
	Description   string `json:"description,omitempty"`
}

// Spec returns the raw specification the user was built from, without the
// derived identity key.
func (u User) Spec() UserSpec {
	return UserSpec{
		Name:          u.Name,
		Role:          u.Role,
		Namespace:     u.Namespace,
		Compatibility: u.Compatibility,
		Description:   u.Description,
	}
}

// RejectedSpec is a spec that could not be turned into a [User] during a
// load. The original spec is embedded unchanged.
type RejectedSpec struct {
	UserSpec

	// Reason is the human-readable cause of the rejection.
	Reason string `json:"reason"`
}
