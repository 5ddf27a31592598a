package container

import (
	"context"
	"log"
	"os"

	"github.com/centavo/centavo-api/internal/auth"
	"github.com/centavo/centavo-api/internal/bill"
	"github.com/centavo/centavo-api/internal/budget"
	"github.com/centavo/centavo-api/internal/category"
	"github.com/centavo/centavo-api/internal/config"
	"github.com/centavo/centavo-api/internal/dashboard"
	"github.com/centavo/centavo-api/internal/events"
	"github.com/centavo/centavo-api/internal/planitem"
	"github.com/centavo/centavo-api/internal/reconciler"
	"github.com/centavo/centavo-api/internal/savingsgoal"
	"github.com/centavo/centavo-api/internal/transaction"
	"github.com/centavo/centavo-api/internal/user"
)

type Container struct {
	UserContainer        *user.UserContainer
	CategoryContainer    *category.Container
	TransactionContainer *transaction.Container
	BudgetContainer      *budget.Container
	BillContainer        *bill.Container
	SavingsGoalContainer *savingsgoal.Container
	DashboardContainer   *dashboard.Container
	Publisher            *events.Publisher
	Reconciler           *reconciler.Reconciler
}

func New() *Container {
	config.Init()
	auth.Init()

	if err := config.Connect(context.Background(), os.Getenv("DATABASE_DSN")); err != nil {
		log.Fatalf("failed to connect to DB: %v", err)
	}

	if err := config.DB.AutoMigrate(
		&user.User{},
		&category.Category{},
		&transaction.Transaction{},
		&budget.Budget{},
		&budget.CategoryAllocation{},
		&bill.Bill{},
		&savingsgoal.SavingsGoal{},
		&planitem.PlanItem{},
	); err != nil {
		log.Fatalf("failed to migrate DB: %v", err)
	}

	// Without a broker configured the publisher stays nil and every
	// emit is a no-op.
	var publisher *events.Publisher
	if url := os.Getenv("AMQP_URL"); url != "" {
		p, err := events.NewPublisher(url, "centavo.events")
		if err != nil {
			log.Fatalf("failed to connect to AMQP: %v", err)
		}
		publisher = p
	}

	userContainer := user.NewUserContainer(config.DB)
	categoryContainer := category.NewContainer(config.DB)
	transactionContainer := transaction.NewContainer(config.DB)
	budgetContainer := budget.NewContainer(config.DB)
	billContainer := bill.NewContainer(config.DB)

	planItemRepo := planitem.NewRepository(config.DB)
	savingsGoalContainer := savingsgoal.NewContainer(config.DB, planItemRepo, publisher)

	dashboardContainer := dashboard.NewContainer(
		config.DB,
		transactionContainer.Repo,
		budgetContainer.Repo,
		planItemRepo,
		publisher,
	)

	if err := categoryContainer.Repo.SeedDefaults(category.DefaultCategories); err != nil {
		log.Fatalf("failed to seed default categories: %v", err)
	}

	return &Container{
		UserContainer:        userContainer,
		CategoryContainer:    categoryContainer,
		TransactionContainer: transactionContainer,
		BudgetContainer:      budgetContainer,
		BillContainer:        billContainer,
		SavingsGoalContainer: savingsGoalContainer,
		DashboardContainer:   dashboardContainer,
		Publisher:            publisher,
		Reconciler: reconciler.New(
			savingsGoalContainer.Service,
			savingsGoalContainer.Repo,
		),
	}
}
