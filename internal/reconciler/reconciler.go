package reconciler

import (
	"context"

	"github.com/centavo/centavo-api/internal/config"
	"github.com/centavo/centavo-api/internal/savingsgoal"
	"github.com/robfig/cron/v3"
	"golang.org/x/sync/errgroup"
)

// Default schedule: every night at 03:00.
const DefaultSchedule = "0 3 * * *"

const maxConcurrentSyncs = 4

// Reconciler periodically rebuilds the savings plan-item mirror for
// every user with goals, since drift accumulates between manual syncs.
type Reconciler struct {
	goals    savingsgoal.Service
	goalRepo savingsgoal.Repository
	cron     *cron.Cron
}

func New(goals savingsgoal.Service, goalRepo savingsgoal.Repository) *Reconciler {
	return &Reconciler{
		goals:    goals,
		goalRepo: goalRepo,
		cron:     cron.New(),
	}
}

// Start registers the sync job and starts the scheduler.
func (r *Reconciler) Start(schedule string) error {
	if schedule == "" {
		schedule = DefaultSchedule
	}

	_, err := r.cron.AddFunc(schedule, func() {
		if err := r.RunOnce(context.Background()); err != nil {
			config.WithContext(context.Background()).
				WithError(err).Error("Savings reconciliation run failed")
		}
	})
	if err != nil {
		return err
	}

	r.cron.Start()
	return nil
}

func (r *Reconciler) Stop() {
	ctx := r.cron.Stop()
	<-ctx.Done()
}

// RunOnce syncs every user that owns at least one savings goal.
func (r *Reconciler) RunOnce(ctx context.Context) error {
	log := config.WithContext(ctx)

	userIDs, err := r.goalRepo.ListOwnerIDs()
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSyncs)

	for _, userID := range userIDs {
		g.Go(func() error {
			result, err := r.goals.Sync(ctx, userID)
			if err != nil {
				log.WithError(err).WithField("user_id", userID).Error("Failed to sync user savings")
				return err
			}
			if result.SyncStatus != savingsgoal.SyncStatusSynced {
				log.WithField("user_id", userID).Warn("Savings still out of sync after rebuild")
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	log.WithField("users", len(userIDs)).Info("Savings reconciliation run finished")
	return nil
}
