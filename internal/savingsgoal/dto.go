package savingsgoal

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateGoalDTO struct {
	Name          string          `json:"name"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetDate    *time.Time      `json:"target_date"`
}

type UpdateGoalDTO struct {
	Name         *string          `json:"name"`
	TargetAmount *decimal.Decimal `json:"target_amount"`
	TargetDate   *time.Time       `json:"target_date"`
}

type AddFundsDTO struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note"`
}

// GoalResponse annotates a goal with display-only progress fields.
// DaysRemaining is nil for goals without a target date.
type GoalResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	TargetAmount       decimal.Decimal `json:"target_amount"`
	CurrentAmount      decimal.Decimal `json:"current_amount"`
	TargetDate         *time.Time      `json:"target_date,omitempty"`
	Completed          bool            `json:"completed"`
	ProgressPercentage float64         `json:"progress_percentage"`
	DaysRemaining      *int            `json:"days_remaining"`
	CreatedAt          time.Time       `json:"created_at"`
	UpdatedAt          time.Time       `json:"updated_at"`
}

type SyncResponse struct {
	SyncedGoals  int             `json:"synced_goals"`
	PlannedTotal decimal.Decimal `json:"planned_total"`
	ActualTotal  decimal.Decimal `json:"actual_total"`
	SyncStatus   string          `json:"sync_status"`
	SyncedAt     time.Time       `json:"synced_at"`
}

type AnalyticsResponse struct {
	Period            string          `json:"period"`
	ActualSavings     decimal.Decimal `json:"actual_savings"`
	PlannedSavings    decimal.Decimal `json:"planned_savings"`
	TargetAmount      decimal.Decimal `json:"target_amount"`
	RemainingToTarget decimal.Decimal `json:"remaining_to_target"`
	SavingsProgress   float64         `json:"savings_progress"`
	PlanVsActual      float64         `json:"plan_vs_actual"`
	SyncStatus        string          `json:"sync_status"`
}

type MonthlySavings struct {
	Month  string          `json:"month"`
	Amount decimal.Decimal `json:"amount"`
}

type HistoryResponse struct {
	Months         []MonthlySavings `json:"months"`
	TotalSaved     decimal.Decimal  `json:"total_saved"`
	MonthlyAverage decimal.Decimal  `json:"monthly_average"`
	BestMonth      *MonthlySavings  `json:"best_month,omitempty"`
}
