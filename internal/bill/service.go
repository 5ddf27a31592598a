package bill

import (
	"context"

	"github.com/centavo/centavo-api/internal/config"
	"github.com/google/uuid"
)

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateBillDTO) (*Bill, error)
	List(ctx context.Context, userID uuid.UUID) ([]Bill, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateBillDTO) (*Bill, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateBillDTO) (*Bill, error) {
	log := config.WithContext(ctx)

	b := Bill{
		ID:      uuid.New(),
		UserID:  userID,
		Name:    dto.Name,
		Amount:  dto.Amount,
		DueDate: dto.DueDate,
	}
	if err := s.repo.Create(&b); err != nil {
		log.WithError(err).Error("Failed to create bill")
		return nil, err
	}
	return &b, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID) ([]Bill, error) {
	return s.repo.ListByUser(userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateBillDTO) (*Bill, error) {
	log := config.WithContext(ctx)

	b, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		b.Name = *dto.Name
	}
	if dto.Amount != nil {
		b.Amount = *dto.Amount
	}
	if dto.DueDate != nil {
		b.DueDate = *dto.DueDate
	}
	if dto.Paid != nil {
		b.Paid = *dto.Paid
	}

	if err := s.repo.Update(b); err != nil {
		log.WithError(err).Error("Failed to update bill")
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(id, userID)
}
