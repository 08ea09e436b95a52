// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAppBuildInfo_FillsMissingValues(t *testing.T) {
	info := NewAppBuildInfo("", "2026-01-01", "")

	assert.Equal(t, "N/A", info.Version)
	assert.Equal(t, "2026-01-01", info.Date)
	assert.Equal(t, "N/A", info.Commit)
}

func TestUser_SpecDropsKey(t *testing.T) {
	u := User{Key: "k", Name: "bob", Role: "admin", Namespace: "/", Compatibility: "rocon:/"}

	assert.Equal(t, UserSpec{Name: "bob", Role: "admin", Namespace: "/", Compatibility: "rocon:/"}, u.Spec())
}

func TestJournalOperation_Valid(t *testing.T) {
	assert.True(t, OperationLoad.Valid())
	assert.True(t, OperationReject.Valid())
	assert.True(t, OperationUnload.Valid())
	assert.False(t, JournalOperation("update").Valid())
	assert.False(t, JournalOperation("").Valid())
}
