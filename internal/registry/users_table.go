// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package registry

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/utils"
	"github.com/MKhiriev/go-users-registry/models"
)

// UsersTable is the identity-keyed set of currently registered users.
//
// The zero value is not usable; construct tables with [NewUsersTable].
type UsersTable struct {
	mu    sync.RWMutex
	users map[string]models.User

	builder UserBuilder
	checker CompatibilityChecker
	logger  *logger.Logger
}

// NewUsersTable returns an empty table that builds users with builder and
// evaluates compatibility with checker.
func NewUsersTable(builder UserBuilder, checker CompatibilityChecker, log *logger.Logger) *UsersTable {
	return &UsersTable{
		users:   make(map[string]models.User),
		builder: builder,
		checker: checker,
		logger:  log,
	}
}

// Users returns the distinct names of all users, sorted.
func (t *UsersTable) Users() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	names := make([]string, 0, len(t.users))
	for _, u := range t.users {
		names = append(names, u.Name)
	}

	return sortedUnique(names)
}

// Roles returns the distinct roles, sorted. When user is non-empty only the
// roles of users with that name are returned; an unknown name yields an empty
// slice.
func (t *UsersTable) Roles(user string) []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	roles := make([]string, 0, len(t.users))
	for _, u := range t.users {
		if user == "" || u.Name == user {
			roles = append(roles, u.Role)
		}
	}

	return sortedUnique(roles)
}

// Len returns the number of distinct users.
func (t *UsersTable) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.users)
}

// GenerateRoleView groups users by role. Every user appears in exactly one
// group and every group is non-empty. Users inside a group are ordered by
// (name, namespace). The returned map is owned by the caller.
func (t *UsersTable) GenerateRoleView() map[string][]models.User {
	t.mu.RLock()
	defer t.mu.RUnlock()

	view := make(map[string][]models.User)
	for _, u := range t.users {
		view[u.Role] = append(view[u.Role], u)
	}
	for role := range view {
		slices.SortFunc(view[role], compareUsers)
	}

	return view
}

// Filter returns the users whose role is one of roles and whose compatibility
// is compatible with compatibilityURI. A nil or empty roles slice disables
// role filtering; an empty compatibilityURI means [models.DefaultCompatibility].
//
// The reference URI is checked before the table is scanned, so a malformed
// URI is reported even when the table is empty. Results are sorted by
// (role, name, namespace) instead of keeping membership order.
func (t *UsersTable) Filter(ctx context.Context, roles []string, compatibilityURI string) ([]models.User, error) {
	if compatibilityURI == "" {
		compatibilityURI = models.DefaultCompatibility
	}
	if err := t.checker.Validate(compatibilityURI); err != nil {
		return nil, fmt.Errorf("filter by %q: %w", compatibilityURI, err)
	}

	t.mu.RLock()
	defer t.mu.RUnlock()

	result := make([]models.User, 0)
	for _, u := range t.users {
		if len(roles) > 0 && !slices.Contains(roles, u.Role) {
			continue
		}

		ok, err := t.checker.IsCompatible(u.Compatibility, compatibilityURI)
		if err != nil {
			// stored users were built from valid specs; a failure here means
			// the checker disagrees with the builder
			t.logger.Warn().Err(err).
				Str("func", "UsersTable.Filter").
				Str("user", u.Name).
				Msg("skipping user with unparsable compatibility")
			continue
		}
		if ok {
			result = append(result, u)
		}
	}

	slices.SortFunc(result, compareByRole)

	return result, nil
}

// Load builds and inserts every spec independently. Specs that the builder
// rejects are returned in rejected together with the reason and never abort
// the batch. Every successfully built user is returned in added, including
// users whose identity was already present; in that case the stored user is
// kept unchanged.
func (t *UsersTable) Load(ctx context.Context, specs ...models.UserSpec) (added []models.User, rejected []models.RejectedSpec) {
	t.mu.Lock()
	defer t.mu.Unlock()

	added = make([]models.User, 0, len(specs))
	rejected = make([]models.RejectedSpec, 0)

	for _, spec := range specs {
		user, err := t.builder.Build(ctx, spec)
		if err != nil {
			if !errors.Is(err, ErrInvalidUser) {
				err = fmt.Errorf("%w: %w", ErrInvalidUser, err)
			}
			t.logger.Debug().Err(err).
				Str("func", "UsersTable.Load").
				Str("name", spec.Name).
				Str("role", spec.Role).
				Msg("rejected user spec")
			rejected = append(rejected, models.RejectedSpec{UserSpec: spec, Reason: err.Error()})
			continue
		}

		if _, exists := t.users[user.Key]; !exists {
			t.users[user.Key] = user
		}
		added = append(added, user)
	}

	return added, rejected
}

// Unload removes the users identified by specs. Only Name, Role and Namespace
// are used; specs are not validated. The specs that matched a stored user are
// returned in input order; specs that match nothing are ignored.
func (t *UsersTable) Unload(ctx context.Context, specs ...models.UserSpec) []models.UserSpec {
	t.mu.Lock()
	defer t.mu.Unlock()

	removed := make([]models.UserSpec, 0, len(specs))
	for _, spec := range specs {
		key := utils.IdentityKey(spec.Name, spec.Role, spec.Namespace)
		if _, exists := t.users[key]; !exists {
			continue
		}
		delete(t.users, key)
		removed = append(removed, spec)
	}

	return removed
}

// String renders the table grouped by role, roles sorted, users indented
// under their role.
func (t *UsersTable) String() string {
	view := t.GenerateRoleView()

	roles := make([]string, 0, len(view))
	for role := range view {
		roles = append(roles, role)
	}
	slices.Sort(roles)

	var b strings.Builder
	for _, role := range roles {
		b.WriteString(role)
		b.WriteString("\n")
		for _, u := range view[role] {
			fmt.Fprintf(&b, "  %s [%s] %s\n", u.Name, u.Namespace, u.Compatibility)
		}
	}

	return b.String()
}

func sortedUnique(values []string) []string {
	slices.Sort(values)
	return slices.Compact(values)
}

func compareUsers(a, b models.User) int {
	if c := strings.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return strings.Compare(a.Namespace, b.Namespace)
}

func compareByRole(a, b models.User) int {
	if c := strings.Compare(a.Role, b.Role); c != 0 {
		return c
	}
	return compareUsers(a, b)
}
