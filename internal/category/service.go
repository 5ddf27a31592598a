package category

import (
	"errors"

	"github.com/google/uuid"
)

var ErrForbidden = errors.New("category does not belong to user")

type Service interface {
	Create(userID uuid.UUID, dto CreateCategoryDTO) (*Category, error)
	List(userID uuid.UUID) ([]Category, error)
	Update(id, userID uuid.UUID, dto UpdateCategoryDTO) (*Category, error)
	Delete(id, userID uuid.UUID) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(userID uuid.UUID, dto CreateCategoryDTO) (*Category, error) {
	c := Category{
		ID:     uuid.New(),
		Name:   dto.Name,
		Icon:   dto.Icon,
		Color:  dto.Color,
		UserID: &userID,
	}
	if err := s.repo.Create(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (s *service) List(userID uuid.UUID) ([]Category, error) {
	return s.repo.ListVisibleToUser(userID)
}

func (s *service) Update(id, userID uuid.UUID, dto UpdateCategoryDTO) (*Category, error) {
	c, err := s.ownedCategory(id, userID)
	if err != nil {
		return nil, err
	}

	if dto.Name != nil {
		c.Name = *dto.Name
	}
	if dto.Icon != nil {
		c.Icon = *dto.Icon
	}
	if dto.Color != nil {
		c.Color = *dto.Color
	}

	if err := s.repo.Update(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *service) Delete(id, userID uuid.UUID) error {
	if _, err := s.ownedCategory(id, userID); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Default categories are shared and cannot be mutated through the API.
func (s *service) ownedCategory(id, userID uuid.UUID) (*Category, error) {
	c, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if c.IsDefault || c.UserID == nil || *c.UserID != userID {
		return nil, ErrForbidden
	}
	return c, nil
}
