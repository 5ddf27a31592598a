package budget

import (
	"context"
	"errors"

	"github.com/centavo/centavo-api/internal/config"
	"github.com/google/uuid"
)

var (
	ErrInvalidType   = errors.New("budget type must be WEEKLY or MONTHLY")
	ErrInvalidWindow = errors.New("budget end date must be after start date")
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateBudgetDTO) (*Budget, error)
	List(ctx context.Context, userID uuid.UUID) ([]Budget, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateBudgetDTO) (*Budget, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateBudgetDTO) (*Budget, error) {
	log := config.WithContext(ctx)

	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}
	if !dto.EndDate.After(dto.StartDate) {
		return nil, ErrInvalidWindow
	}

	b := Budget{
		ID:        uuid.New(),
		UserID:    userID,
		Amount:    dto.Amount,
		Type:      dto.Type,
		StartDate: dto.StartDate,
		EndDate:   dto.EndDate,
	}
	for _, a := range dto.Allocations {
		b.Allocations = append(b.Allocations, CategoryAllocation{
			ID:         uuid.New(),
			BudgetID:   b.ID,
			CategoryID: a.CategoryID,
			UserID:     userID,
			Amount:     a.Amount,
		})
	}

	if err := s.repo.Create(&b); err != nil {
		log.WithError(err).Error("Failed to create budget")
		return nil, err
	}

	log.WithField("budget_id", b.ID).Info("Budget created")
	return &b, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Budget, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateBudgetDTO) (*Budget, error) {
	log := config.WithContext(ctx)

	b, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Amount != nil {
		b.Amount = *dto.Amount
	}
	if dto.StartDate != nil {
		b.StartDate = *dto.StartDate
	}
	if dto.EndDate != nil {
		b.EndDate = *dto.EndDate
	}
	if !b.EndDate.After(b.StartDate) {
		return nil, ErrInvalidWindow
	}

	if err := s.repo.Update(b); err != nil {
		log.WithError(err).Error("Failed to update budget")
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(id, userID)
}
