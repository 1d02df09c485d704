package service

import (
	"context"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository"
)

var ErrOrganizationNotFound = repository.ErrOrganizationNotFound

type OrganizationService struct {
	repo *repository.OrganizationRepository
}

func NewOrganizationService(repo *repository.OrganizationRepository) *OrganizationService {
	return &OrganizationService{
		repo: repo,
	}
}

func (s *OrganizationService) List(ctx context.Context) ([]domain.Organization, error) {
	return s.repo.List(ctx)
}

func (s *OrganizationService) Get(ctx context.Context, id uint) (domain.Organization, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *OrganizationService) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	return s.repo.Create(ctx, org)
}

func (s *OrganizationService) Update(ctx context.Context, id uint, org domain.Organization) error {
	return s.repo.Update(ctx, id, org)
}

func (s *OrganizationService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
