package transaction

import (
	"context"
	"errors"

	"github.com/centavo/centavo-api/internal/config"
	"github.com/google/uuid"
)

var ErrInvalidType = errors.New("transaction type must be INCOME or EXPENSE")

type Service interface {
	Create(ctx context.Context, userID uuid.UUID, dto CreateTransactionDTO) (*Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Transaction, error)
	Get(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	Update(ctx context.Context, id, userID uuid.UUID, dto UpdateTransactionDTO) (*Transaction, error)
	Delete(ctx context.Context, id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID, dto CreateTransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)

	if !dto.Type.IsValid() {
		return nil, ErrInvalidType
	}

	t := Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      dto.Amount,
		Type:        dto.Type,
		Date:        dto.Date,
		Description: dto.Description,
		CategoryID:  dto.CategoryID,
		BillID:      dto.BillID,
	}
	if err := s.repo.Create(&t); err != nil {
		log.WithError(err).Error("Failed to create transaction")
		return nil, err
	}

	log.WithField("transaction_id", t.ID).Info("Transaction created")
	return &t, nil
}

func (s *service) List(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]Transaction, error) {
	return s.repo.ListByUser(userID, filter)
}

func (s *service) Get(ctx context.Context, id, userID uuid.UUID) (*Transaction, error) {
	return s.repo.FindByIDAndUser(id, userID)
}

func (s *service) Update(ctx context.Context, id, userID uuid.UUID, dto UpdateTransactionDTO) (*Transaction, error) {
	log := config.WithContext(ctx)

	t, err := s.repo.FindByIDAndUser(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Amount != nil {
		t.Amount = *dto.Amount
	}
	if dto.Type != nil {
		if !dto.Type.IsValid() {
			return nil, ErrInvalidType
		}
		t.Type = *dto.Type
	}
	if dto.Date != nil {
		t.Date = *dto.Date
	}
	if dto.Description != nil {
		t.Description = *dto.Description
	}
	if dto.CategoryID != nil {
		t.CategoryID = dto.CategoryID
	}

	if err := s.repo.Update(t); err != nil {
		log.WithError(err).Error("Failed to update transaction")
		return nil, err
	}
	return t, nil
}

func (s *service) Delete(ctx context.Context, id, userID uuid.UUID) error {
	return s.repo.Delete(id, userID)
}
