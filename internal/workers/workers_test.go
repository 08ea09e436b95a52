// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/service"
	"github.com/stretchr/testify/assert"
)

// countingWorker counts Run calls and returns immediately.
type countingWorker struct {
	runs atomic.Int32
}

func (c *countingWorker) Run(context.Context) {
	c.runs.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}

	ws := &Workers{workers: []Worker{w1, w2, w3}}
	ws.Run(context.Background())

	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.runs.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := &Workers{}

	// Should not block or panic when there are no workers
	ws.Run(context.Background())
}

func TestNewWorkers(t *testing.T) {
	services := &service.Services{}

	enabled := NewWorkers(services, config.Workers{PruneInterval: time.Minute, JournalRetention: time.Hour}, logger.Nop())
	assert.Len(t, enabled.workers, 1)

	disabled := NewWorkers(services, config.Workers{}, logger.Nop())
	assert.Empty(t, disabled.workers)
}
