// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/service"
)

// JournalPruner deletes journal entries older than the retention period on
// every tick.
type JournalPruner struct {
	journal   service.JournalService
	interval  time.Duration
	retention time.Duration
	logger    *logger.Logger
}

func NewJournalPruner(journal service.JournalService, interval, retention time.Duration, logger *logger.Logger) *JournalPruner {
	return &JournalPruner{
		journal:   journal,
		interval:  interval,
		retention: retention,
		logger:    logger,
	}
}

// Run prunes once per interval until ctx is cancelled. A failed prune is
// logged and retried on the next tick.
func (p *JournalPruner) Run(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.logger.Info().
		Dur("interval", p.interval).
		Dur("retention", p.retention).
		Msg("journal pruner started")

	for {
		select {
		case <-ctx.Done():
			p.logger.Info().Msg("journal pruner stopped")
			return
		case <-ticker.C:
			p.prune(ctx)
		}
	}
}

func (p *JournalPruner) prune(ctx context.Context) {
	removed, err := p.journal.Prune(ctx, p.retention)
	if err != nil {
		p.logger.Err(err).Str("func", "*JournalPruner.prune").Msg("error pruning journal")
		return
	}
	if removed > 0 {
		p.logger.Info().Int64("removed", removed).Msg("journal pruned")
	}
}
