package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"campusevents/internal/domain"
)

// Pruner sweeps saved-event edges whose event has been deleted. Reads already
// treat dangling edges as absent, so the sweep is hygiene, not correctness.
type Pruner struct {
	relRepo domain.RelationshipRepository
	logger  *slog.Logger
	timeout time.Duration
}

func NewPruner(relRepo domain.RelationshipRepository, logger *slog.Logger, timeout time.Duration) *Pruner {
	return &Pruner{relRepo: relRepo, logger: logger, timeout: timeout}
}

// Run performs one sweep. Errors are logged, never fatal.
func (p *Pruner) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
	defer cancel()

	removed, err := p.relRepo.DeleteDanglingSavedEvents(ctx)
	if err != nil {
		p.logger.ErrorContext(ctx, "dangling saved-event sweep failed", "err", err)
		return
	}
	if removed > 0 {
		p.logger.InfoContext(ctx, "pruned dangling saved events", "removed", removed)
	}
}

// Schedule registers the sweep on the given cron runner. The caller owns
// starting and stopping the runner.
func (p *Pruner) Schedule(c *cron.Cron, spec string) error {
	_, err := c.AddFunc(spec, p.Run)
	return err
}
