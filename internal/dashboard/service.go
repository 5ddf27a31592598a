package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/centavo/centavo-api/internal/bill"
	"github.com/centavo/centavo-api/internal/budget"
	"github.com/centavo/centavo-api/internal/category"
	"github.com/centavo/centavo-api/internal/config"
	"github.com/centavo/centavo-api/internal/events"
	"github.com/centavo/centavo-api/internal/planitem"
	"github.com/centavo/centavo-api/internal/savingsgoal"
	"github.com/centavo/centavo-api/internal/transaction"
	util "github.com/centavo/centavo-api/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var ErrInvalidPeriod = errors.New("period must be WEEKLY or MONTHLY")

const defaultRecentLimit = 10

type Service interface {
	GetFinancialSummary(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*FinancialSummaryResponse, error)
	GetTodaySpending(ctx context.Context, userID uuid.UUID) (*TodaySpendingResponse, error)
	GetBudgetProgress(ctx context.Context, userID uuid.UUID, period budget.Type) (*BudgetProgressResponse, error)
	GetRecentExpenses(ctx context.Context, userID uuid.UUID, limit int) (*RecentExpensesResponse, error)
	ClearTransactions(ctx context.Context, userID uuid.UUID) (*ClearTransactionsResponse, error)
	ClearBills(ctx context.Context, userID uuid.UUID) (*ClearBillsResponse, error)
	ClearSavingsGoals(ctx context.Context, userID uuid.UUID) (*ClearSavingsGoalsResponse, error)
	ClearAllUserData(ctx context.Context, userID uuid.UUID) (*ClearAllDataResponse, error)
}

type service struct {
	db           *gorm.DB
	transactions transaction.Repository
	budgets      budget.Repository
	planItems    planitem.Repository
	publisher    *events.Publisher
}

func NewService(
	db *gorm.DB,
	transactions transaction.Repository,
	budgets budget.Repository,
	planItems planitem.Repository,
	publisher *events.Publisher,
) Service {
	return &service{
		db:           db,
		transactions: transactions,
		budgets:      budgets,
		planItems:    planItems,
		publisher:    publisher,
	}
}

// GetFinancialSummary totals income and expenses inside the window
// (current calendar month by default) and subtracts the lifetime savings
// total. Savings are deliberately not window-scoped: the dashboard shows
// everything set aside so far.
func (s *service) GetFinancialSummary(ctx context.Context, userID uuid.UUID, from, to *time.Time) (*FinancialSummaryResponse, error) {
	monthStart, monthEnd := util.MonthBounds(time.Now())
	start, end := monthStart, monthEnd
	if from != nil {
		start = *from
	}
	if to != nil {
		end = *to
	}

	income, err := s.transactions.SumByTypeInRange(userID, transaction.TypeIncome, start, end)
	if err != nil {
		return nil, err
	}
	expenses, err := s.transactions.SumByTypeInRange(userID, transaction.TypeExpense, start, end)
	if err != nil {
		return nil, err
	}
	savings, err := s.planItems.SumSavings(userID)
	if err != nil {
		return nil, err
	}

	return &FinancialSummaryResponse{
		StartDate: start,
		EndDate:   end,
		Income:    income,
		Expenses:  expenses,
		Savings:   savings,
		Remaining: income.Sub(expenses).Sub(savings),
	}, nil
}

func (s *service) GetTodaySpending(ctx context.Context, userID uuid.UUID) (*TodaySpendingResponse, error) {
	now := time.Now()
	dayStart, dayEnd := util.DayBounds(now)

	spent, err := s.transactions.SumByTypeInRange(userID, transaction.TypeExpense, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	dailyBudget := decimal.Zero
	remaining := decimal.Zero

	monthly, err := s.budgets.ActiveByType(userID, budget.TypeMonthly, now)
	switch {
	case err == nil:
		// The divisor is the real month length, never a fixed 30.
		days := decimal.NewFromInt(int64(util.DaysInMonth(now)))
		dailyBudget = monthly.Amount.Div(days)
		remaining = dailyBudget.Sub(spent)
		if remaining.IsNegative() {
			remaining = decimal.Zero
		}
	case errors.Is(err, budget.ErrNotFound):
		// No active monthly budget: both figures stay zero.
	default:
		return nil, err
	}

	return &TodaySpendingResponse{
		Date:            dayStart.Format("2006-01-02"),
		SpentToday:      spent,
		DailyBudget:     dailyBudget,
		RemainingBudget: remaining,
	}, nil
}

func (s *service) GetBudgetProgress(ctx context.Context, userID uuid.UUID, period budget.Type) (*BudgetProgressResponse, error) {
	if !period.IsValid() {
		return nil, ErrInvalidPeriod
	}

	now := time.Now()
	var start, end time.Time
	if period == budget.TypeWeekly {
		start, end = util.WeekBounds(now)
	} else {
		start, end = util.MonthBounds(now)
	}

	spent, err := s.transactions.SumByTypeInRange(userID, transaction.TypeExpense, start, end)
	if err != nil {
		return nil, err
	}

	target := decimal.Zero
	b, err := s.budgets.ActiveByType(userID, period, now)
	switch {
	case err == nil:
		target = b.Amount
	case errors.Is(err, budget.ErrNotFound):
	default:
		return nil, err
	}

	percentage := 0.0
	if target.IsPositive() {
		percentage, _ = spent.Div(target).Mul(decimal.NewFromInt(100)).Float64()
	}

	remaining := target.Sub(spent)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	return &BudgetProgressResponse{
		Period:          period,
		StartDate:       start,
		EndDate:         end,
		SpentAmount:     spent,
		TargetAmount:    target,
		PercentageUsed:  percentage,
		RemainingAmount: remaining,
	}, nil
}

func (s *service) GetRecentExpenses(ctx context.Context, userID uuid.UUID, limit int) (*RecentExpensesResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}

	expenses, err := s.transactions.RecentByType(userID, transaction.TypeExpense, limit)
	if err != nil {
		return nil, err
	}

	response := RecentExpensesResponse{
		Days:        []ExpenseDayGroup{},
		TotalAmount: decimal.Zero,
		Count:       len(expenses),
	}

	// Expenses arrive newest first, so groups come out newest day first.
	for _, e := range expenses {
		entry := ExpenseEntry{
			ID:          e.ID,
			Amount:      e.Amount,
			Date:        e.Date,
			Description: e.Description,
		}
		if e.Category != nil {
			entry.CategoryName = e.Category.Name
			entry.CategoryIcon = e.Category.Icon
			entry.CategoryColor = e.Category.Color
		}

		dayKey := e.Date.Format("2006-01-02")
		if n := len(response.Days); n > 0 && response.Days[n-1].Date == dayKey {
			group := &response.Days[n-1]
			group.Expenses = append(group.Expenses, entry)
			group.Total = group.Total.Add(e.Amount)
		} else {
			response.Days = append(response.Days, ExpenseDayGroup{
				Date:     dayKey,
				Total:    e.Amount,
				Expenses: []ExpenseEntry{entry},
			})
		}
		response.TotalAmount = response.TotalAmount.Add(e.Amount)
	}

	return &response, nil
}

func (s *service) ClearTransactions(ctx context.Context, userID uuid.UUID) (*ClearTransactionsResponse, error) {
	log := config.WithContext(ctx)

	var count int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&transaction.Transaction{}).
			Where("user_id = ?", userID).Count(&count).Error; err != nil {
			return err
		}
		return tx.Delete(&transaction.Transaction{}, "user_id = ?", userID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to clear transactions")
		return nil, err
	}

	response := ClearTransactionsResponse{Transactions: count, ClearedAt: time.Now()}
	s.publishCleared(ctx, userID, "transactions", map[string]int64{"transactions": count}, response.ClearedAt)
	return &response, nil
}

func (s *service) ClearBills(ctx context.Context, userID uuid.UUID) (*ClearBillsResponse, error) {
	log := config.WithContext(ctx)

	var bills, linked int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&bill.Bill{}).
			Where("user_id = ?", userID).Count(&bills).Error; err != nil {
			return err
		}
		if err := tx.Model(&transaction.Transaction{}).
			Where("user_id = ? AND bill_id IS NOT NULL", userID).Count(&linked).Error; err != nil {
			return err
		}

		// Transactions referencing bills go first.
		if err := tx.Delete(&transaction.Transaction{},
			"user_id = ? AND bill_id IS NOT NULL", userID).Error; err != nil {
			return err
		}
		return tx.Delete(&bill.Bill{}, "user_id = ?", userID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to clear bills")
		return nil, err
	}

	response := ClearBillsResponse{Bills: bills, LinkedTransactions: linked, ClearedAt: time.Now()}
	s.publishCleared(ctx, userID, "bills", map[string]int64{
		"bills":               bills,
		"linked_transactions": linked,
	}, response.ClearedAt)
	return &response, nil
}

func (s *service) ClearSavingsGoals(ctx context.Context, userID uuid.UUID) (*ClearSavingsGoalsResponse, error) {
	log := config.WithContext(ctx)

	var goals, items int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&savingsgoal.SavingsGoal{}).
			Where("user_id = ?", userID).Count(&goals).Error; err != nil {
			return err
		}
		if err := tx.Model(&planitem.PlanItem{}).
			Where("user_id = ? AND item_type = ?", userID, planitem.ItemTypeSavings).
			Count(&items).Error; err != nil {
			return err
		}

		// Plan items mirror the goals, so they go first.
		if err := tx.Delete(&planitem.PlanItem{},
			"user_id = ? AND item_type = ?", userID, planitem.ItemTypeSavings).Error; err != nil {
			return err
		}
		return tx.Delete(&savingsgoal.SavingsGoal{}, "user_id = ?", userID).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to clear savings goals")
		return nil, err
	}

	response := ClearSavingsGoalsResponse{Goals: goals, PlanItems: items, ClearedAt: time.Now()}
	s.publishCleared(ctx, userID, "savings_goals", map[string]int64{
		"goals":      goals,
		"plan_items": items,
	}, response.ClearedAt)
	return &response, nil
}

// ClearAllUserData removes every row the user owns, children before
// parents. Seeded default categories survive.
func (s *service) ClearAllUserData(ctx context.Context, userID uuid.UUID) (*ClearAllDataResponse, error) {
	log := config.WithContext(ctx)

	var response ClearAllDataResponse
	err := s.db.Transaction(func(tx *gorm.DB) error {
		counts := []struct {
			model any
			query string
			args  []any
			out   *int64
		}{
			{&transaction.Transaction{}, "user_id = ?", []any{userID}, &response.Transactions},
			{&bill.Bill{}, "user_id = ?", []any{userID}, &response.Bills},
			{&savingsgoal.SavingsGoal{}, "user_id = ?", []any{userID}, &response.SavingsGoals},
			{&planitem.PlanItem{}, "user_id = ?", []any{userID}, &response.PlanItems},
			{&budget.CategoryAllocation{}, "user_id = ?", []any{userID}, &response.Allocations},
			{&budget.Budget{}, "user_id = ?", []any{userID}, &response.Budgets},
			{&category.Category{}, "user_id = ? AND is_default = ?", []any{userID, false}, &response.Categories},
		}
		for _, c := range counts {
			if err := tx.Model(c.model).Where(c.query, c.args...).Count(c.out).Error; err != nil {
				return err
			}
		}

		if err := tx.Delete(&transaction.Transaction{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&planitem.PlanItem{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&budget.CategoryAllocation{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&bill.Bill{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&savingsgoal.SavingsGoal{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		if err := tx.Delete(&budget.Budget{}, "user_id = ?", userID).Error; err != nil {
			return err
		}
		return tx.Delete(&category.Category{}, "user_id = ? AND is_default = ?", userID, false).Error
	})
	if err != nil {
		log.WithError(err).Error("Failed to clear all user data")
		return nil, err
	}

	response.ClearedAt = time.Now()
	s.publishCleared(ctx, userID, "all", map[string]int64{
		"transactions":  response.Transactions,
		"bills":         response.Bills,
		"savings_goals": response.SavingsGoals,
		"plan_items":    response.PlanItems,
		"budgets":       response.Budgets,
		"allocations":   response.Allocations,
		"categories":    response.Categories,
	}, response.ClearedAt)

	log.WithField("user_id", userID).Info("All user data cleared")
	return &response, nil
}

func (s *service) publishCleared(ctx context.Context, userID uuid.UUID, scope string, counts map[string]int64, at time.Time) {
	log := config.WithContext(ctx)
	err := s.publisher.DataCleared(ctx, events.DataClearedEvent{
		UserID:    userID,
		Scope:     scope,
		Counts:    counts,
		ClearedAt: at,
	})
	if err != nil {
		log.WithError(err).Warn("Failed to publish data cleared event")
	}
}
