package savingsgoal

import (
	"github.com/centavo/centavo-api/internal/events"
	"github.com/centavo/centavo-api/internal/planitem"
	"gorm.io/gorm"
)

type Container struct {
	Handler *Handler
	Service Service
	Repo    Repository
}

func NewContainer(db *gorm.DB, planItems planitem.Repository, publisher *events.Publisher) *Container {
	repo := NewRepository(db)
	service := NewService(db, repo, planItems, publisher)
	handler := NewHandler(service)

	return &Container{
		Handler: handler,
		Service: service,
		Repo:    repo,
	}
}
