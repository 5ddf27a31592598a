package reconciler

import (
	"context"
	"testing"
	"time"

	"github.com/centavo/centavo-api/internal/planitem"
	"github.com/centavo/centavo-api/internal/savingsgoal"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestRunOnce(t *testing.T) {
	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&savingsgoal.SavingsGoal{}, &planitem.PlanItem{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repo := savingsgoal.NewRepository(db)
	svc := savingsgoal.NewService(db, repo, planitem.NewRepository(db), nil)

	ctx := context.Background()
	users := []uuid.UUID{uuid.New(), uuid.New()}
	for _, userID := range users {
		if _, err := svc.Create(ctx, userID, savingsgoal.CreateGoalDTO{
			Name:          "Goal",
			TargetAmount:  decimal.NewFromInt(1000),
			CurrentAmount: decimal.NewFromInt(200),
		}); err != nil {
			t.Fatalf("failed to create goal: %v", err)
		}
	}

	// Drift one user's mirror so the run has something to repair.
	if err := db.Model(&planitem.PlanItem{}).
		Where("user_id = ?", users[0]).
		Update("amount", decimal.NewFromInt(5)).Error; err != nil {
		t.Fatalf("failed to tamper with plan item: %v", err)
	}

	r := New(svc, repo)
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := r.RunOnce(ctx); err != nil {
		t.Fatalf("RunOnce returned error: %v", err)
	}

	for _, userID := range users {
		analytics, err := svc.Analytics(ctx, userID, "")
		if err != nil {
			t.Fatalf("Analytics returned error: %v", err)
		}
		if analytics.SyncStatus != savingsgoal.SyncStatusSynced {
			t.Errorf("user %s status = %s, want %s", userID, analytics.SyncStatus, savingsgoal.SyncStatusSynced)
		}
	}
}
