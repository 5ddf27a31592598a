package dashboard

import (
	"time"

	"github.com/centavo/centavo-api/internal/budget"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type FinancialSummaryResponse struct {
	StartDate time.Time       `json:"start_date"`
	EndDate   time.Time       `json:"end_date"`
	Income    decimal.Decimal `json:"income"`
	Expenses  decimal.Decimal `json:"expenses"`
	Savings   decimal.Decimal `json:"savings"`
	Remaining decimal.Decimal `json:"remaining"`
}

type TodaySpendingResponse struct {
	Date            string          `json:"date"`
	SpentToday      decimal.Decimal `json:"spent_today"`
	DailyBudget     decimal.Decimal `json:"daily_budget"`
	RemainingBudget decimal.Decimal `json:"remaining_budget"`
}

type BudgetProgressResponse struct {
	Period          budget.Type     `json:"period"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	SpentAmount     decimal.Decimal `json:"spent_amount"`
	TargetAmount    decimal.Decimal `json:"target_amount"`
	PercentageUsed  float64         `json:"percentage_used"`
	RemainingAmount decimal.Decimal `json:"remaining_amount"`
}

type ExpenseEntry struct {
	ID            uuid.UUID       `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description,omitempty"`
	CategoryName  string          `json:"category_name,omitempty"`
	CategoryIcon  string          `json:"category_icon,omitempty"`
	CategoryColor string          `json:"category_color,omitempty"`
}

// ExpenseDayGroup buckets expenses by calendar day, newest day first.
type ExpenseDayGroup struct {
	Date     string          `json:"date"`
	Total    decimal.Decimal `json:"total"`
	Expenses []ExpenseEntry  `json:"expenses"`
}

type RecentExpensesResponse struct {
	Days        []ExpenseDayGroup `json:"days"`
	TotalAmount decimal.Decimal   `json:"total_amount"`
	Count       int               `json:"count"`
}

type ClearTransactionsResponse struct {
	Transactions int64     `json:"transactions"`
	ClearedAt    time.Time `json:"cleared_at"`
}

type ClearBillsResponse struct {
	Bills              int64     `json:"bills"`
	LinkedTransactions int64     `json:"linked_transactions"`
	ClearedAt          time.Time `json:"cleared_at"`
}

type ClearSavingsGoalsResponse struct {
	Goals     int64     `json:"goals"`
	PlanItems int64     `json:"plan_items"`
	ClearedAt time.Time `json:"cleared_at"`
}

type ClearAllDataResponse struct {
	Transactions int64     `json:"transactions"`
	Bills        int64     `json:"bills"`
	SavingsGoals int64     `json:"savings_goals"`
	PlanItems    int64     `json:"plan_items"`
	Budgets      int64     `json:"budgets"`
	Allocations  int64     `json:"allocations"`
	Categories   int64     `json:"categories"`
	ClearedAt    time.Time `json:"cleared_at"`
}
