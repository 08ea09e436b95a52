// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package roconuri

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsCompatible(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		reference string
		want      bool
	}{
		{name: "root matches root", candidate: "rocon:/", reference: "rocon:/", want: true},
		{name: "root matches anything", candidate: "rocon:/pc/dude/hydro/precise", reference: "rocon:/", want: true},
		{name: "anything matches root", candidate: "rocon:/", reference: "rocon:/turtlebot2", want: true},
		{name: "same platform", candidate: "rocon:/pc", reference: "rocon:/pc", want: true},
		{name: "different platform", candidate: "rocon:/pc", reference: "rocon:/turtlebot2", want: false},
		{name: "alternatives intersect", candidate: "rocon:/pc|turtlebot2", reference: "rocon:/turtlebot2|waiterbot", want: true},
		{name: "alternatives disjoint", candidate: "rocon:/pc|kobuki", reference: "rocon:/turtlebot2|waiterbot", want: false},
		{name: "deeper field differs", candidate: "rocon:/pc/*/hydro", reference: "rocon:/pc/*/indigo", want: false},
		{name: "concert differs", candidate: "rocon://a/pc", reference: "rocon://b/pc", want: false},
		{name: "concert wildcard", candidate: "rocon:/pc", reference: "rocon://b/pc", want: true},
		{name: "rapp differs", candidate: "rocon:/pc#teleop", reference: "rocon:/pc#chirp", want: false},
		{name: "rapp unset", candidate: "rocon:/pc#teleop", reference: "rocon:/pc", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := IsCompatible(tt.candidate, tt.reference)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)

			// compatibility is symmetric
			back, err := IsCompatible(tt.reference, tt.candidate)
			require.NoError(t, err)
			assert.Equal(t, tt.want, back)
		})
	}
}

func TestIsCompatible_InvalidAddress(t *testing.T) {
	_, err := IsCompatible("rocon:/pc", "not-a-uri")
	require.ErrorIs(t, err, ErrInvalidURI)

	_, err = IsCompatible("rocon:/a/b/c/d/e", "rocon:/")
	require.ErrorIs(t, err, ErrInvalidURI)
}

func TestMatcher(t *testing.T) {
	m := NewMatcher()

	require.NoError(t, m.Validate("rocon:/pc"))
	require.ErrorIs(t, m.Validate("rocon:pc"), ErrInvalidURI)

	ok, err := m.IsCompatible("rocon:/pc", "rocon:/")
	require.NoError(t, err)
	assert.True(t, ok)
}
