package savingsgoal

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/centavo/centavo-api/internal/config"
	"github.com/centavo/centavo-api/internal/events"
	"github.com/centavo/centavo-api/internal/planitem"
	util "github.com/centavo/centavo-api/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrGoalNotFound  = errors.New("savings goal not found")
	ErrForbidden     = errors.New("savings goal does not belong to user")
	ErrGoalCompleted = errors.New("savings goal is already completed")
	ErrInvalidAmount = errors.New("amount must be positive")
)

const (
	SyncStatusSynced    = "synced"
	SyncStatusError     = "error"
	SyncStatusNeedsSync = "needs_sync"
)

type Service interface {
	GetGoals(ctx context.Context, userID uuid.UUID, completed *bool) ([]GoalResponse, error)
	Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
	AddFunds(ctx context.Context, id, userID uuid.UUID, dto AddFundsDTO) (*GoalResponse, error)
	Complete(ctx context.Context, id, userID uuid.UUID) (*GoalResponse, error)
	Sync(ctx context.Context, userID uuid.UUID) (*SyncResponse, error)
	Analytics(ctx context.Context, userID uuid.UUID, periodKey string) (*AnalyticsResponse, error)
	History(ctx context.Context, userID uuid.UUID, months int) (*HistoryResponse, error)
}

type service struct {
	db        *gorm.DB
	repo      Repository
	planItems planitem.Repository
	publisher *events.Publisher
}

func NewService(db *gorm.DB, repo Repository, planItems planitem.Repository, publisher *events.Publisher) Service {
	return &service{
		db:        db,
		repo:      repo,
		planItems: planItems,
		publisher: publisher,
	}
}

func (s *service) GetGoals(ctx context.Context, userID uuid.UUID, completed *bool) ([]GoalResponse, error) {
	goals, err := s.repo.ListByUser(userID, completed)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	responses := make([]GoalResponse, 0, len(goals))
	for i := range goals {
		responses = append(responses, toResponse(&goals[i], now))
	}
	return responses, nil
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	if dto.CurrentAmount.IsNegative() || dto.TargetAmount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	now := time.Now()
	goal := SavingsGoal{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          dto.Name,
		TargetAmount:  dto.TargetAmount,
		CurrentAmount: dto.CurrentAmount,
		TargetDate:    dto.TargetDate,
		Completed:     dto.TargetAmount.IsPositive() && dto.CurrentAmount.GreaterThanOrEqual(dto.TargetAmount),
	}

	// An initial balance is mirrored into the current month's plan items
	// in the same transaction, so dashboard totals are right from day one.
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&goal).Error; err != nil {
			return err
		}
		if goal.CurrentAmount.IsPositive() {
			item := planitem.PlanItem{
				ID:          uuid.New(),
				UserID:      userID,
				ItemType:    planitem.ItemTypeSavings,
				PlanType:    util.PeriodKey(now),
				Description: goal.Name,
				Amount:      goal.CurrentAmount,
				Notes:       depositNote(goal.CurrentAmount, now, "initial balance"),
				GoalID:      &goal.ID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to create savings goal")
		return nil, err
	}

	log.WithField("goal_id", goal.ID).Info("Savings goal created")
	resp := toResponse(&goal, now)
	return &resp, nil
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateGoalDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	goal, err := s.ownedGoal(id, userID)
	if err != nil {
		return nil, err
	}

	renamed := dto.Name != nil && *dto.Name != goal.Name
	if dto.Name != nil {
		goal.Name = *dto.Name
	}
	if dto.TargetAmount != nil {
		if dto.TargetAmount.IsNegative() {
			return nil, ErrInvalidAmount
		}
		goal.TargetAmount = *dto.TargetAmount
	}
	if dto.TargetDate != nil {
		goal.TargetDate = dto.TargetDate
	}

	// Renames are propagated to the mirrored plan items in the same
	// transaction so their display labels never diverge from the goal.
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(goal).Error; err != nil {
			return err
		}
		if renamed {
			if err := tx.Model(&planitem.PlanItem{}).
				Where("goal_id = ?", goal.ID).
				Update("description", goal.Name).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to update savings goal")
		return nil, err
	}

	resp := toResponse(goal, time.Now())
	return &resp, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	log := config.WithContext(ctx)

	goal, err := s.ownedGoal(id, userID)
	if err != nil {
		return err
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&planitem.PlanItem{}, "goal_id = ?", goal.ID).Error; err != nil {
			return err
		}
		return tx.Delete(&SavingsGoal{}, "id = ?", goal.ID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to delete savings goal")
		return err
	}

	log.WithField("goal_id", id).Info("Savings goal deleted")
	return nil
}

func (s *service) AddFunds(ctx context.Context, id, userID uuid.UUID, dto AddFundsDTO) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	if !dto.Amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	goal, err := s.ownedGoal(id, userID)
	if err != nil {
		return nil, err
	}
	if goal.Completed {
		return nil, ErrGoalCompleted
	}

	now := time.Now()
	periodKey := util.PeriodKey(now)
	note := depositNote(dto.Amount, now, dto.Note)

	var updated SavingsGoal
	err = s.db.Transaction(func(tx *gorm.DB) error {
		// The increment runs as an SQL expression so two concurrent
		// deposits cannot lose each other's update.
		if err := tx.Model(&SavingsGoal{}).
			Where("id = ?", goal.ID).
			Update("current_amount", gorm.Expr("current_amount + ?", dto.Amount)).Error; err != nil {
			return err
		}

		if err := tx.First(&updated, "id = ?", goal.ID).Error; err != nil {
			return err
		}
		if !updated.Completed && updated.CurrentAmount.GreaterThanOrEqual(updated.TargetAmount) {
			updated.Completed = true
			if err := tx.Model(&SavingsGoal{}).
				Where("id = ?", goal.ID).
				Update("completed", true).Error; err != nil {
				return err
			}
		}

		var item planitem.PlanItem
		err := tx.Where("goal_id = ? AND plan_type = ? AND item_type = ?",
			goal.ID, periodKey, planitem.ItemTypeSavings).
			First(&item).Error
		switch {
		case err == nil:
			item.Amount = item.Amount.Add(dto.Amount)
			item.Notes = appendNote(item.Notes, note)
			return tx.Save(&item).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			item = planitem.PlanItem{
				ID:          uuid.New(),
				UserID:      userID,
				ItemType:    planitem.ItemTypeSavings,
				PlanType:    periodKey,
				Description: updated.Name,
				Amount:      dto.Amount,
				Notes:       note,
				GoalID:      &goal.ID,
			}
			return tx.Create(&item).Error
		default:
			return err
		}
	})
	if err != nil {
		log.WithError(err).Error("Failed to add funds to savings goal")
		return nil, err
	}

	if updated.Completed && !goal.Completed {
		s.publishCompleted(ctx, &updated)
	}

	log.WithField("goal_id", goal.ID).Info("Funds added to savings goal")
	resp := toResponse(&updated, now)
	return &resp, nil
}

func (s *service) Complete(ctx context.Context, id, userID uuid.UUID) (*GoalResponse, error) {
	log := config.WithContext(ctx)

	goal, err := s.ownedGoal(id, userID)
	if err != nil {
		return nil, err
	}
	if goal.Completed {
		return nil, ErrGoalCompleted
	}

	// Explicit override: the goal completes even below its target.
	goal.Completed = true
	if err := s.repo.Update(goal); err != nil {
		log.WithError(err).Error("Failed to complete savings goal")
		return nil, err
	}

	s.publishCompleted(ctx, goal)

	log.WithField("goal_id", goal.ID).Info("Savings goal completed")
	resp := toResponse(goal, time.Now())
	return &resp, nil
}

// Sync rebuilds the current month's SAVINGS plan items from the goals
// themselves. It exists because the mirrored rows can drift from the
// goals they project.
func (s *service) Sync(ctx context.Context, userID uuid.UUID) (*SyncResponse, error) {
	log := config.WithContext(ctx)

	now := time.Now()
	periodKey := util.PeriodKey(now)

	var synced int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&planitem.PlanItem{},
			"user_id = ? AND item_type = ? AND plan_type = ?",
			userID, planitem.ItemTypeSavings, periodKey).Error; err != nil {
			return err
		}

		var goals []SavingsGoal
		if err := tx.Where("user_id = ?", userID).Find(&goals).Error; err != nil {
			return err
		}

		for i := range goals {
			if !goals[i].CurrentAmount.IsPositive() {
				continue
			}
			item := planitem.PlanItem{
				ID:          uuid.New(),
				UserID:      userID,
				ItemType:    planitem.ItemTypeSavings,
				PlanType:    periodKey,
				Description: goals[i].Name,
				Amount:      goals[i].CurrentAmount,
				Notes:       "Synced from goal balance",
				GoalID:      &goals[i].ID,
			}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
			synced++
		}
		return nil
	})
	if err != nil {
		log.WithError(err).Error("Failed to sync savings goals")
		return nil, err
	}

	planned, err := s.planItems.SumSavingsByPeriod(userID, periodKey)
	if err != nil {
		return nil, err
	}
	actual, err := s.repo.SumCurrentAmounts(userID)
	if err != nil {
		return nil, err
	}

	status := SyncStatusSynced
	if !planned.Equal(actual) {
		status = SyncStatusError
	}

	log.WithField("synced_goals", synced).Info("Savings goals synced with dashboard")
	return &SyncResponse{
		SyncedGoals:  synced,
		PlannedTotal: planned,
		ActualTotal:  actual,
		SyncStatus:   status,
		SyncedAt:     now,
	}, nil
}

func (s *service) Analytics(ctx context.Context, userID uuid.UUID, periodKey string) (*AnalyticsResponse, error) {
	if periodKey == "" {
		periodKey = util.PeriodKey(time.Now())
	}

	actual, err := s.repo.SumCurrentAmounts(userID)
	if err != nil {
		return nil, err
	}
	target, err := s.repo.SumTargetAmounts(userID)
	if err != nil {
		return nil, err
	}
	planned, err := s.planItems.SumSavingsByPeriod(userID, periodKey)
	if err != nil {
		return nil, err
	}

	progress := 0.0
	if target.IsPositive() {
		progress, _ = actual.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	}

	// With no plan for the period the goals are trivially on plan.
	planVsActual := 100.0
	if planned.IsPositive() {
		planVsActual, _ = actual.Div(planned).Mul(decimal.NewFromInt(100)).Float64()
	}

	remaining := target.Sub(actual)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	status := SyncStatusSynced
	if !actual.Equal(planned) {
		status = SyncStatusNeedsSync
	}

	return &AnalyticsResponse{
		Period:            periodKey,
		ActualSavings:     actual,
		PlannedSavings:    planned,
		TargetAmount:      target,
		RemainingToTarget: remaining,
		SavingsProgress:   progress,
		PlanVsActual:      planVsActual,
		SyncStatus:        status,
	}, nil
}

func (s *service) History(ctx context.Context, userID uuid.UUID, months int) (*HistoryResponse, error) {
	if months <= 0 {
		months = 6
	}

	now := time.Now()
	entries := make([]MonthlySavings, 0, months)
	total := decimal.Zero
	var best *MonthlySavings

	// Most recent month first, current month included.
	for i := 0; i < months; i++ {
		key := util.PeriodKey(util.MonthStart(now, i))
		amount, err := s.planItems.SumSavingsByPeriod(userID, key)
		if err != nil {
			return nil, err
		}

		entries = append(entries, MonthlySavings{Month: key, Amount: amount})
		total = total.Add(amount)
		if amount.IsPositive() && (best == nil || amount.GreaterThan(best.Amount)) {
			best = &MonthlySavings{Month: key, Amount: amount}
		}
	}

	return &HistoryResponse{
		Months:         entries,
		TotalSaved:     total,
		MonthlyAverage: total.Div(decimal.NewFromInt(int64(months))).Round(2),
		BestMonth:      best,
	}, nil
}

func (s *service) ownedGoal(id, userID uuid.UUID) (*SavingsGoal, error) {
	goal, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrForbidden
	}
	return goal, nil
}

func (s *service) publishCompleted(ctx context.Context, goal *SavingsGoal) {
	log := config.WithContext(ctx)
	err := s.publisher.GoalCompleted(ctx, events.GoalCompletedEvent{
		UserID:        goal.UserID,
		GoalID:        goal.ID,
		Name:          goal.Name,
		CurrentAmount: goal.CurrentAmount,
		TargetAmount:  goal.TargetAmount,
		CompletedAt:   time.Now(),
	})
	if err != nil {
		log.WithError(err).Warn("Failed to publish goal completed event")
	}
}

func toResponse(g *SavingsGoal, now time.Time) GoalResponse {
	progress := 0.0
	if g.TargetAmount.IsPositive() {
		progress, _ = g.CurrentAmount.Div(g.TargetAmount).Mul(decimal.NewFromInt(100)).Float64()
		progress = math.Min(100, progress)
	}

	var daysRemaining *int
	if g.TargetDate != nil {
		days := int(math.Ceil(g.TargetDate.Sub(now).Hours() / 24))
		if days < 0 {
			days = 0
		}
		daysRemaining = &days
	}

	return GoalResponse{
		ID:                 g.ID,
		Name:               g.Name,
		TargetAmount:       g.TargetAmount,
		CurrentAmount:      g.CurrentAmount,
		TargetDate:         g.TargetDate,
		Completed:          g.Completed,
		ProgressPercentage: progress,
		DaysRemaining:      daysRemaining,
		CreatedAt:          g.CreatedAt,
		UpdatedAt:          g.UpdatedAt,
	}
}

func depositNote(amount decimal.Decimal, at time.Time, extra string) string {
	note := fmt.Sprintf("+%s on %s", amount.StringFixed(2), at.Format("2006-01-02"))
	if extra != "" {
		note += " (" + extra + ")"
	}
	return note
}

func appendNote(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}
