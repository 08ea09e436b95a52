// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JournalOperation names the table operation a journal entry records.
type JournalOperation string

const (
	// OperationLoad records a spec accepted by a load.
	OperationLoad JournalOperation = "load"

	// OperationReject records a spec rejected by a load.
	OperationReject JournalOperation = "reject"

	// OperationUnload records a spec removed by an unload.
	OperationUnload JournalOperation = "unload"
)

// Valid reports whether o is one of the known operations.
func (o JournalOperation) Valid() bool {
	switch o {
	case OperationLoad, OperationReject, OperationUnload:
		return true
	default:
		return false
	}
}

// JournalEntry is a single append-only audit record of a table mutation.
// The journal is never replayed into the table.
type JournalEntry struct {
	ID            int64            `json:"id"`
	TraceID       string           `json:"trace_id,omitempty"`
	Operation     JournalOperation `json:"operation"`
	Key           string           `json:"key,omitempty"`
	Name          string           `json:"name"`
	Role          string           `json:"role"`
	Namespace     string           `json:"namespace"`
	Compatibility string           `json:"compatibility"`
	Reason        string           `json:"reason,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
}

// TableName returns the name of the database table associated with the
// JournalEntry model.
func (e JournalEntry) TableName() string {
	return "journal"
}
