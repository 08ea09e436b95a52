// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roconuri

import (
	"fmt"
	"net/url"
	"strings"
)

const (
	// Scheme is the only accepted URI scheme.
	Scheme = "rocon"

	// Wildcard matches any value of a field.
	Wildcard = "*"

	alternativeSeparator = "|"
)

// Field indexes of the path part of a rocon URI.
const (
	HardwarePlatform = iota
	Name
	ApplicationFramework
	OperatingSystem

	pathFields
)

var fieldNames = [pathFields]string{
	HardwarePlatform:     "hardware_platform",
	Name:                 "name",
	ApplicationFramework: "application_framework",
	OperatingSystem:      "operating_system",
}

// Field is a single parsed URI component: either a wildcard or a non-empty
// set of alternatives.
type Field struct {
	alternatives []string
}

// IsWildcard reports whether the field matches anything.
func (f Field) IsWildcard() bool {
	return len(f.alternatives) == 0
}

// Alternatives returns the accepted values; it is empty for a wildcard.
func (f Field) Alternatives() []string {
	return append([]string(nil), f.alternatives...)
}

// String renders the field the way it appears in a URI.
func (f Field) String() string {
	if f.IsWildcard() {
		return Wildcard
	}
	return strings.Join(f.alternatives, alternativeSeparator)
}

// intersects reports whether two fields accept at least one common value.
func (f Field) intersects(other Field) bool {
	if f.IsWildcard() || other.IsWildcard() {
		return true
	}
	for _, a := range f.alternatives {
		for _, b := range other.alternatives {
			if a == b {
				return true
			}
		}
	}
	return false
}

// URI is a parsed rocon compatibility address.
type URI struct {
	Concert Field
	Fields  [pathFields]Field
	Rapp    string
}

// String renders the URI in canonical form, with every path field spelled out.
// Parse(u.String()) yields u.
func (u URI) String() string {
	var b strings.Builder
	b.WriteString(Scheme)
	b.WriteString(":")
	if !u.Concert.IsWildcard() {
		b.WriteString("//")
		b.WriteString(u.Concert.String())
	}
	for _, f := range u.Fields {
		b.WriteString("/")
		b.WriteString(f.String())
	}
	if u.Rapp != "" {
		b.WriteString("#")
		b.WriteString(u.Rapp)
	}
	return b.String()
}

// Parse parses s as a rocon URI. Every failure wraps [ErrInvalidURI].
//
// The concert name may carry '|' alternatives, which net/url rejects in a
// host, so the authority is split off before the rest is parsed.
func Parse(s string) (URI, error) {
	concert, rest, err := splitAuthority(strings.TrimSpace(s))
	if err != nil {
		return URI{}, fmt.Errorf("%w %q: %w", ErrInvalidURI, s, err)
	}

	parsed, err := url.Parse(rest)
	if err != nil {
		return URI{}, fmt.Errorf("%w %q: %w", ErrInvalidURI, s, err)
	}
	if parsed.Scheme != Scheme {
		return URI{}, fmt.Errorf("%w %q: %w", ErrInvalidURI, s, errWrongScheme)
	}
	if parsed.Host != "" || parsed.User != nil || parsed.RawQuery != "" || parsed.Opaque != "" {
		return URI{}, fmt.Errorf("%w %q: %w", ErrInvalidURI, s, errUnexpectedPart)
	}

	var uri URI

	if uri.Concert, err = parseField(concert); err != nil {
		return URI{}, fmt.Errorf("%w %q: concert: %w", ErrInvalidURI, s, err)
	}

	path := strings.Trim(parsed.Path, "/")
	if path != "" {
		parts := strings.Split(path, "/")
		if len(parts) > pathFields {
			return URI{}, fmt.Errorf("%w %q: %w", ErrInvalidURI, s, errTooManyFields)
		}
		for i, part := range parts {
			if uri.Fields[i], err = parseField(part); err != nil {
				return URI{}, fmt.Errorf("%w %q: %s: %w", ErrInvalidURI, s, fieldNames[i], err)
			}
		}
	}

	if parsed.Fragment != "" {
		if !validRapp(parsed.Fragment) {
			return URI{}, fmt.Errorf("%w %q: rapp: %w", ErrInvalidURI, s, errBadCharacter)
		}
		uri.Rapp = parsed.Fragment
	}

	return uri, nil
}

// splitAuthority separates the concert name of "rocon://concert/..." from
// the remainder, which is returned as "rocon:/...". Strings without an
// authority are returned unchanged.
func splitAuthority(s string) (concert, rest string, err error) {
	prefix := Scheme + "://"
	if !strings.HasPrefix(s, prefix) {
		return "", s, nil
	}

	tail := s[len(prefix):]
	end := strings.IndexAny(tail, "/?#")
	if end < 0 {
		end = len(tail)
	}

	concert = tail[:end]
	if strings.ContainsAny(concert, "@:") {
		return "", "", errUnexpectedPart
	}

	return concert, Scheme + ":/" + strings.TrimLeft(tail[end:], "/"), nil
}

// parseField parses one URI component. An empty component is a wildcard.
func parseField(raw string) (Field, error) {
	if raw == "" || raw == Wildcard {
		return Field{}, nil
	}

	alternatives := strings.Split(raw, alternativeSeparator)
	for _, alt := range alternatives {
		switch {
		case alt == "":
			return Field{}, errEmptyAlternative
		case alt == Wildcard:
			return Field{}, errMixedWildcard
		case !validToken(alt):
			return Field{}, fmt.Errorf("%w in %q", errBadCharacter, alt)
		}
	}

	return Field{alternatives: alternatives}, nil
}

// validRapp accepts rapp names such as "rocon_apps/teleop".
func validRapp(s string) bool {
	for _, part := range strings.Split(s, "/") {
		if !validToken(part) {
			return false
		}
	}
	return true
}

func validToken(s string) bool {
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		case r == '_', r == '-', r == '.':
		default:
			return false
		}
	}
	return s != ""
}
