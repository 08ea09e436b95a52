// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"hash"
	"sync"
)

// identitySeparator joins the key-bearing fields. Validated specs never
// contain it, so distinct field tuples cannot produce the same input.
const identitySeparator = 0x00

// hasherPool holds reusable SHA-256 instances for identity key computation.
var hasherPool = sync.Pool{
	New: func() any {
		return sha256.New()
	},
}

// IdentityKey computes the identity key of a user from its key-bearing
// fields. It is a pure, deterministic function: the same (name, role,
// namespace) always yields the same hex-encoded SHA-256 digest, and any other
// field of the user has no influence on it.
//
// Example usage:
//
//	key := utils.IdentityKey("bob", "admin", "/concert")
func IdentityKey(name, role, namespace string) string {
	h := hasherPool.Get().(hash.Hash)
	h.Reset()

	h.Write([]byte(name))
	h.Write([]byte{identitySeparator})
	h.Write([]byte(role))
	h.Write([]byte{identitySeparator})
	h.Write([]byte(namespace))
	sum := h.Sum(nil)

	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)
}
