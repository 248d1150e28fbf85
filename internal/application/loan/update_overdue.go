package loan

import (
	"context"
	"log"
	"time"

	"github.com/mdelvaux/library-api/internal/domain/loan"
)

// UpdateOverdueUseCase is the periodic sweep promoting past-due active
// loans to OVERDUE. It is the only writer of that status.
type UpdateOverdueUseCase struct {
	loanRepo loan.Repository
}

// NewUpdateOverdueUseCase wires the sweep.
func NewUpdateOverdueUseCase(loanRepo loan.Repository) *UpdateOverdueUseCase {
	return &UpdateOverdueUseCase{loanRepo: loanRepo}
}

// Execute promotes every active, unreturned loan past its due date and
// returns how many were promoted. Running it twice changes nothing the
// second time; a failure mid-sweep is healed by the next run.
func (uc *UpdateOverdueUseCase) Execute(ctx context.Context) (int64, error) {
	return uc.loanRepo.MarkOverdue(ctx, time.Now())
}

// Sweeper triggers the overdue sweep on a fixed interval.
type Sweeper struct {
	uc       *UpdateOverdueUseCase
	interval time.Duration
}

// NewSweeper creates a sweeper with the configured interval
// (loan.sweep_interval).
func NewSweeper(uc *UpdateOverdueUseCase, interval time.Duration) *Sweeper {
	return &Sweeper{uc: uc, interval: interval}
}

// Start runs the sweep loop until ctx is cancelled. One sweep runs
// immediately so a restart does not delay promotion by a full interval.
func (s *Sweeper) Start(ctx context.Context) {
	go func() {
		s.sweep(ctx)

		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.sweep(ctx)
			}
		}
	}()
}

func (s *Sweeper) sweep(ctx context.Context) {
	n, err := s.uc.Execute(ctx)
	if err != nil {
		log.Printf("overdue sweep failed: %v", err)
		return
	}
	if n > 0 {
		log.Printf("overdue sweep: %d loan(s) marked overdue", n)
	}
}
