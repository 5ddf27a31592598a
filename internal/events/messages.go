package events

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	RouteGoalCompleted = "goal.completed"
	RouteDataCleared   = "data.cleared"
)

type GoalCompletedEvent struct {
	UserID        uuid.UUID       `json:"user_id"`
	GoalID        uuid.UUID       `json:"goal_id"`
	Name          string          `json:"name"`
	CurrentAmount decimal.Decimal `json:"current_amount"`
	TargetAmount  decimal.Decimal `json:"target_amount"`
	CompletedAt   time.Time       `json:"completed_at"`
}

type DataClearedEvent struct {
	UserID    uuid.UUID        `json:"user_id"`
	Scope     string           `json:"scope"`
	Counts    map[string]int64 `json:"counts"`
	ClearedAt time.Time        `json:"cleared_at"`
}
