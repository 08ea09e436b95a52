// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import "errors"

// ErrInvalidUser is returned (wrapped) by a [UserBuilder] when a spec cannot
// be turned into a user. [UsersTable.Load] recovers it and reports the spec
// as rejected.
var ErrInvalidUser = errors.New("invalid user spec")
