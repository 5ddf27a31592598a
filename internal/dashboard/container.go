package dashboard

import (
	"github.com/centavo/centavo-api/internal/budget"
	"github.com/centavo/centavo-api/internal/events"
	"github.com/centavo/centavo-api/internal/planitem"
	"github.com/centavo/centavo-api/internal/transaction"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
}

func NewContainer(
	db *gorm.DB,
	transactions transaction.Repository,
	budgets budget.Repository,
	planItems planitem.Repository,
	publisher *events.Publisher,
) *Container {
	service := NewService(db, transactions, budgets, planItems, publisher)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
	}
}
