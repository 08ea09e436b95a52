// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package registry implements the users table: an in-memory, identity-keyed
// set of users that callers grow and shrink in batches and query by name,
// role and rocon compatibility.
//
// A user's identity is the triple (name, role, namespace). Two users with the
// same identity are the same user, so the table never holds duplicates. The
// table does not validate specs or interpret compatibility addresses itself;
// it delegates both to a [UserBuilder] and a [CompatibilityChecker] supplied
// at construction time.
//
// A [UsersTable] is safe for concurrent use. Load and Unload take the write
// lock; every query takes the read lock.
package registry
