// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roconuri

// IsCompatible reports whether the two addresses describe overlapping resource
// contexts: for the concert name and every path field either side is a
// wildcard or the alternatives intersect, and the rapp names are equal
// whenever both are set.
//
// It returns an error wrapping [ErrInvalidURI] if either address is malformed.
func IsCompatible(candidate, reference string) (bool, error) {
	a, err := Parse(candidate)
	if err != nil {
		return false, err
	}
	b, err := Parse(reference)
	if err != nil {
		return false, err
	}
	return a.CompatibleWith(b), nil
}

// CompatibleWith is the parsed form of [IsCompatible].
func (u URI) CompatibleWith(other URI) bool {
	if !u.Concert.intersects(other.Concert) {
		return false
	}
	for i := range u.Fields {
		if !u.Fields[i].intersects(other.Fields[i]) {
			return false
		}
	}
	return u.Rapp == "" || other.Rapp == "" || u.Rapp == other.Rapp
}

// Matcher adapts the package functions to the registry's compatibility
// checker contract.
type Matcher struct{}

// NewMatcher returns a ready-to-use [Matcher].
func NewMatcher() Matcher {
	return Matcher{}
}

// Validate returns an error wrapping [ErrInvalidURI] if uri is malformed.
func (Matcher) Validate(uri string) error {
	_, err := Parse(uri)
	return err
}

// IsCompatible implements the registry compatibility predicate.
func (Matcher) IsCompatible(candidate, reference string) (bool, error) {
	return IsCompatible(candidate, reference)
}
