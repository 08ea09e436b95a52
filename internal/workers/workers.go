package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-users-registry/internal/config"
	"github.com/MKhiriev/go-users-registry/internal/logger"
	"github.com/MKhiriev/go-users-registry/internal/service"
)

type Workers struct {
	workers []Worker
}

// NewWorkers builds the configured workers. A pruner with a zero interval or
// retention is not created.
func NewWorkers(services *service.Services, cfg config.Workers, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.PruneInterval > 0 && cfg.JournalRetention > 0 {
		w.workers = append(w.workers, NewJournalPruner(services.JournalService, cfg.PruneInterval, cfg.JournalRetention, logger))
	} else {
		logger.Info().Str("func", "NewWorkers").Msg("journal pruning disabled")
	}

	return w
}

// Run starts every worker in its own goroutine and waits for all of them.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			worker.Run(ctx)
		}()
	}
	wg.Wait()
}
