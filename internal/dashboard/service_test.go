package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/centavo/centavo-api/internal/bill"
	"github.com/centavo/centavo-api/internal/budget"
	"github.com/centavo/centavo-api/internal/category"
	"github.com/centavo/centavo-api/internal/planitem"
	"github.com/centavo/centavo-api/internal/savingsgoal"
	"github.com/centavo/centavo-api/internal/transaction"
	util "github.com/centavo/centavo-api/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestService(t *testing.T) (Service, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+uuid.NewString()+"?mode=memory&cache=shared"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(
		&category.Category{},
		&transaction.Transaction{},
		&budget.Budget{},
		&budget.CategoryAllocation{},
		&bill.Bill{},
		&savingsgoal.SavingsGoal{},
		&planitem.PlanItem{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	svc := NewService(
		db,
		transaction.NewRepository(db),
		budget.NewRepository(db),
		planitem.NewRepository(db),
		nil,
	)
	return svc, db
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedTransaction(t *testing.T, db *gorm.DB, userID uuid.UUID, txType transaction.Type, amount string, date time.Time) *transaction.Transaction {
	t.Helper()
	row := transaction.Transaction{
		ID:     uuid.New(),
		UserID: userID,
		Amount: dec(amount),
		Type:   txType,
		Date:   date,
	}
	if err := db.Create(&row).Error; err != nil {
		t.Fatalf("failed to seed transaction: %v", err)
	}
	return &row
}

func TestGetFinancialSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("MonthWindowWithLifetimeSavings", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()
		now := time.Now()

		seedTransaction(t, db, userID, transaction.TypeIncome, "3000", now)
		seedTransaction(t, db, userID, transaction.TypeExpense, "1200", now)
		// Outside the default window, must not count.
		seedTransaction(t, db, userID, transaction.TypeIncome, "9999", now.AddDate(0, -3, 0))

		// Savings are lifetime, so the old month still counts.
		for _, m := range []struct {
			key    string
			amount string
		}{
			{util.PeriodKey(now), "500"},
			{util.PeriodKey(util.MonthStart(now, 4)), "300"},
		} {
			item := planitem.PlanItem{
				ID:          uuid.New(),
				UserID:      userID,
				ItemType:    planitem.ItemTypeSavings,
				PlanType:    m.key,
				Description: "Saved",
				Amount:      dec(m.amount),
			}
			if err := db.Create(&item).Error; err != nil {
				t.Fatalf("failed to seed plan item: %v", err)
			}
		}

		summary, err := svc.GetFinancialSummary(ctx, userID, nil, nil)
		if err != nil {
			t.Fatalf("GetFinancialSummary returned error: %v", err)
		}
		if !summary.Income.Equal(dec("3000")) {
			t.Errorf("income = %s, want 3000", summary.Income)
		}
		if !summary.Expenses.Equal(dec("1200")) {
			t.Errorf("expenses = %s, want 1200", summary.Expenses)
		}
		if !summary.Savings.Equal(dec("800")) {
			t.Errorf("savings = %s, want 800", summary.Savings)
		}
		want := summary.Income.Sub(summary.Expenses).Sub(summary.Savings)
		if !summary.Remaining.Equal(want) {
			t.Errorf("remaining = %s, want %s", summary.Remaining, want)
		}
	})

	t.Run("ExplicitWindow", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()
		now := time.Now()

		old := now.AddDate(0, -3, 0)
		seedTransaction(t, db, userID, transaction.TypeIncome, "100", old)
		seedTransaction(t, db, userID, transaction.TypeIncome, "40", now)

		from := old.AddDate(0, 0, -1)
		to := old.AddDate(0, 0, 1)
		summary, err := svc.GetFinancialSummary(ctx, userID, &from, &to)
		if err != nil {
			t.Fatalf("GetFinancialSummary returned error: %v", err)
		}
		if !summary.Income.Equal(dec("100")) {
			t.Errorf("income = %s, want 100", summary.Income)
		}
	})

	t.Run("EmptyUser", func(t *testing.T) {
		svc, _ := newTestService(t)

		summary, err := svc.GetFinancialSummary(ctx, uuid.New(), nil, nil)
		if err != nil {
			t.Fatalf("GetFinancialSummary returned error: %v", err)
		}
		if !summary.Remaining.Equal(decimal.Zero) {
			t.Errorf("remaining = %s, want 0", summary.Remaining)
		}
	})
}

func TestGetTodaySpending(t *testing.T) {
	ctx := context.Background()

	monthlyBudget := func(t *testing.T, db *gorm.DB, userID uuid.UUID, amount decimal.Decimal) {
		t.Helper()
		start, end := util.MonthBounds(time.Now())
		b := budget.Budget{
			ID:        uuid.New(),
			UserID:    userID,
			Amount:    amount,
			Type:      budget.TypeMonthly,
			StartDate: start,
			EndDate:   end,
		}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
	}

	t.Run("DailyBudgetUsesMonthLength", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()
		now := time.Now()

		days := decimal.NewFromInt(int64(util.DaysInMonth(now)))
		monthlyBudget(t, db, userID, days.Mul(dec("12")))
		seedTransaction(t, db, userID, transaction.TypeExpense, "4.50", now)

		today, err := svc.GetTodaySpending(ctx, userID)
		if err != nil {
			t.Fatalf("GetTodaySpending returned error: %v", err)
		}
		if !today.DailyBudget.Equal(dec("12")) {
			t.Errorf("daily budget = %s, want 12", today.DailyBudget)
		}
		if !today.SpentToday.Equal(dec("4.50")) {
			t.Errorf("spent = %s, want 4.50", today.SpentToday)
		}
		if !today.RemainingBudget.Equal(dec("7.50")) {
			t.Errorf("remaining = %s, want 7.50", today.RemainingBudget)
		}
	})

	t.Run("OverspendFloorsAtZero", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()
		now := time.Now()

		days := decimal.NewFromInt(int64(util.DaysInMonth(now)))
		monthlyBudget(t, db, userID, days.Mul(dec("10")))
		seedTransaction(t, db, userID, transaction.TypeExpense, "25", now)

		today, err := svc.GetTodaySpending(ctx, userID)
		if err != nil {
			t.Fatalf("GetTodaySpending returned error: %v", err)
		}
		if !today.RemainingBudget.Equal(decimal.Zero) {
			t.Errorf("remaining = %s, want 0", today.RemainingBudget)
		}
	})

	t.Run("NoActiveBudget", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()

		seedTransaction(t, db, userID, transaction.TypeExpense, "4.50", time.Now())

		today, err := svc.GetTodaySpending(ctx, userID)
		if err != nil {
			t.Fatalf("GetTodaySpending returned error: %v", err)
		}
		if !today.DailyBudget.Equal(decimal.Zero) || !today.RemainingBudget.Equal(decimal.Zero) {
			t.Errorf("daily = %s remaining = %s, want both 0", today.DailyBudget, today.RemainingBudget)
		}
		if !today.SpentToday.Equal(dec("4.50")) {
			t.Errorf("spent = %s, want 4.50", today.SpentToday)
		}
	})
}

func TestGetBudgetProgress(t *testing.T) {
	ctx := context.Background()

	t.Run("RejectsUnknownPeriod", func(t *testing.T) {
		svc, _ := newTestService(t)

		if _, err := svc.GetBudgetProgress(ctx, uuid.New(), "YEARLY"); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("error = %v, want ErrInvalidPeriod", err)
		}
	})

	t.Run("MonthlyProgress", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()
		now := time.Now()

		start, end := util.MonthBounds(now)
		b := budget.Budget{
			ID:        uuid.New(),
			UserID:    userID,
			Amount:    dec("500"),
			Type:      budget.TypeMonthly,
			StartDate: start,
			EndDate:   end,
		}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}
		seedTransaction(t, db, userID, transaction.TypeExpense, "200", now)

		progress, err := svc.GetBudgetProgress(ctx, userID, budget.TypeMonthly)
		if err != nil {
			t.Fatalf("GetBudgetProgress returned error: %v", err)
		}
		if !progress.SpentAmount.Equal(dec("200")) {
			t.Errorf("spent = %s, want 200", progress.SpentAmount)
		}
		if progress.PercentageUsed != 40 {
			t.Errorf("percentage = %v, want 40", progress.PercentageUsed)
		}
		if !progress.RemainingAmount.Equal(dec("300")) {
			t.Errorf("remaining = %s, want 300", progress.RemainingAmount)
		}
	})

	t.Run("NoBudgetZeroTarget", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()

		seedTransaction(t, db, userID, transaction.TypeExpense, "200", time.Now())

		progress, err := svc.GetBudgetProgress(ctx, userID, budget.TypeWeekly)
		if err != nil {
			t.Fatalf("GetBudgetProgress returned error: %v", err)
		}
		if progress.PercentageUsed != 0 {
			t.Errorf("percentage = %v, want 0 with no target", progress.PercentageUsed)
		}
		if !progress.RemainingAmount.Equal(decimal.Zero) {
			t.Errorf("remaining = %s, want 0", progress.RemainingAmount)
		}
	})
}

func TestGetRecentExpenses(t *testing.T) {
	ctx := context.Background()

	svc, db := newTestService(t)
	userID := uuid.New()
	today := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	seedTransaction(t, db, userID, transaction.TypeExpense, "100", today)
	seedTransaction(t, db, userID, transaction.TypeExpense, "50", today.Add(-2*time.Hour))
	seedTransaction(t, db, userID, transaction.TypeExpense, "75", today.AddDate(0, 0, -1))
	// Income never shows up in the expense feed.
	seedTransaction(t, db, userID, transaction.TypeIncome, "2000", today)

	recent, err := svc.GetRecentExpenses(ctx, userID, 0)
	if err != nil {
		t.Fatalf("GetRecentExpenses returned error: %v", err)
	}
	if recent.Count != 3 {
		t.Fatalf("count = %d, want 3", recent.Count)
	}
	if !recent.TotalAmount.Equal(dec("225")) {
		t.Errorf("total = %s, want 225", recent.TotalAmount)
	}
	if len(recent.Days) != 2 {
		t.Fatalf("day groups = %d, want 2", len(recent.Days))
	}
	if recent.Days[0].Date != "2026-08-28" {
		t.Errorf("first group = %s, want newest day first", recent.Days[0].Date)
	}
	if !recent.Days[0].Total.Equal(dec("150")) {
		t.Errorf("first group total = %s, want 150", recent.Days[0].Total)
	}
	if len(recent.Days[0].Expenses) != 2 {
		t.Errorf("first group size = %d, want 2", len(recent.Days[0].Expenses))
	}

	limited, err := svc.GetRecentExpenses(ctx, userID, 1)
	if err != nil {
		t.Fatalf("GetRecentExpenses returned error: %v", err)
	}
	if limited.Count != 1 {
		t.Errorf("limited count = %d, want 1", limited.Count)
	}
}

func TestClearOperations(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearTransactions", func(t *testing.T) {
		svc, db := newTestService(t)
		userID, other := uuid.New(), uuid.New()

		seedTransaction(t, db, userID, transaction.TypeExpense, "10", time.Now())
		seedTransaction(t, db, userID, transaction.TypeIncome, "20", time.Now())
		seedTransaction(t, db, other, transaction.TypeExpense, "30", time.Now())

		result, err := svc.ClearTransactions(ctx, userID)
		if err != nil {
			t.Fatalf("ClearTransactions returned error: %v", err)
		}
		if result.Transactions != 2 {
			t.Errorf("cleared = %d, want 2", result.Transactions)
		}

		var remaining int64
		db.Model(&transaction.Transaction{}).Count(&remaining)
		if remaining != 1 {
			t.Errorf("other user's rows = %d, want 1 untouched", remaining)
		}
	})

	t.Run("ClearBillsRemovesLinkedTransactions", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()

		b := bill.Bill{ID: uuid.New(), UserID: userID, Name: "Rent", Amount: dec("900"), DueDate: time.Now()}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed bill: %v", err)
		}
		linked := seedTransaction(t, db, userID, transaction.TypeExpense, "900", time.Now())
		if err := db.Model(linked).Update("bill_id", b.ID).Error; err != nil {
			t.Fatalf("failed to link transaction: %v", err)
		}
		seedTransaction(t, db, userID, transaction.TypeExpense, "15", time.Now())

		result, err := svc.ClearBills(ctx, userID)
		if err != nil {
			t.Fatalf("ClearBills returned error: %v", err)
		}
		if result.Bills != 1 || result.LinkedTransactions != 1 {
			t.Errorf("cleared bills=%d linked=%d, want 1 and 1", result.Bills, result.LinkedTransactions)
		}

		var remaining int64
		db.Model(&transaction.Transaction{}).Where("user_id = ?", userID).Count(&remaining)
		if remaining != 1 {
			t.Errorf("unlinked transactions = %d, want 1 kept", remaining)
		}
	})

	t.Run("ClearSavingsGoals", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()

		goal := savingsgoal.SavingsGoal{
			ID: uuid.New(), UserID: userID, Name: "Goal",
			TargetAmount: dec("100"), CurrentAmount: dec("40"),
		}
		if err := db.Create(&goal).Error; err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}
		item := planitem.PlanItem{
			ID: uuid.New(), UserID: userID, ItemType: planitem.ItemTypeSavings,
			PlanType: util.PeriodKey(time.Now()), Description: "Goal", Amount: dec("40"), GoalID: &goal.ID,
		}
		if err := db.Create(&item).Error; err != nil {
			t.Fatalf("failed to seed plan item: %v", err)
		}

		result, err := svc.ClearSavingsGoals(ctx, userID)
		if err != nil {
			t.Fatalf("ClearSavingsGoals returned error: %v", err)
		}
		if result.Goals != 1 || result.PlanItems != 1 {
			t.Errorf("cleared goals=%d items=%d, want 1 and 1", result.Goals, result.PlanItems)
		}
	})

	t.Run("ClearAllKeepsDefaultCategories", func(t *testing.T) {
		svc, db := newTestService(t)
		userID := uuid.New()

		defaultCat := category.Category{ID: uuid.New(), Name: "Groceries", IsDefault: true}
		if err := db.Create(&defaultCat).Error; err != nil {
			t.Fatalf("failed to seed default category: %v", err)
		}
		ownCat := category.Category{ID: uuid.New(), Name: "Hobby", UserID: &userID}
		if err := db.Create(&ownCat).Error; err != nil {
			t.Fatalf("failed to seed category: %v", err)
		}

		seedTransaction(t, db, userID, transaction.TypeExpense, "10", time.Now())
		b := bill.Bill{ID: uuid.New(), UserID: userID, Name: "Rent", Amount: dec("900"), DueDate: time.Now()}
		if err := db.Create(&b).Error; err != nil {
			t.Fatalf("failed to seed bill: %v", err)
		}
		goal := savingsgoal.SavingsGoal{
			ID: uuid.New(), UserID: userID, Name: "Goal",
			TargetAmount: dec("100"), CurrentAmount: dec("40"),
		}
		if err := db.Create(&goal).Error; err != nil {
			t.Fatalf("failed to seed goal: %v", err)
		}
		bdg := budget.Budget{
			ID: uuid.New(), UserID: userID, Amount: dec("500"),
			Type: budget.TypeMonthly, StartDate: time.Now(), EndDate: time.Now().AddDate(0, 1, 0),
		}
		if err := db.Create(&bdg).Error; err != nil {
			t.Fatalf("failed to seed budget: %v", err)
		}

		result, err := svc.ClearAllUserData(ctx, userID)
		if err != nil {
			t.Fatalf("ClearAllUserData returned error: %v", err)
		}
		if result.Transactions != 1 || result.Bills != 1 || result.SavingsGoals != 1 || result.Budgets != 1 || result.Categories != 1 {
			t.Errorf("unexpected counts: %+v", result)
		}

		var defaults int64
		db.Model(&category.Category{}).Where("is_default = ?", true).Count(&defaults)
		if defaults != 1 {
			t.Errorf("default categories = %d, want 1 surviving", defaults)
		}

		// Clearing again is harmless and reports nothing left.
		again, err := svc.ClearAllUserData(ctx, userID)
		if err != nil {
			t.Fatalf("second ClearAllUserData returned error: %v", err)
		}
		if again.Transactions != 0 || again.Bills != 0 || again.SavingsGoals != 0 || again.Budgets != 0 || again.Categories != 0 {
			t.Errorf("second clear counts should be zero: %+v", again)
		}
	})
}
