package repository

import (
	"context"
	"fmt"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository/dao"
)

var ErrOrganizationNotFound = dao.ErrOrganizationNotFound

type OrganizationDAO interface {
	Insert(ctx context.Context, org dao.Organization) (dao.Organization, error)
	List(ctx context.Context) ([]dao.Organization, error)
	FindByID(ctx context.Context, id uint) (dao.Organization, error)
	Update(ctx context.Context, id uint, org dao.Organization) error
	Delete(ctx context.Context, id uint) error
}

type OrganizationRepository struct {
	dao OrganizationDAO
}

func NewOrganizationRepository(dao OrganizationDAO) *OrganizationRepository {
	return &OrganizationRepository{
		dao: dao,
	}
}

func (r *OrganizationRepository) Create(ctx context.Context, org domain.Organization) (domain.Organization, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(org))
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *OrganizationRepository) List(ctx context.Context) ([]domain.Organization, error) {
	orgs, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	results := make([]domain.Organization, len(orgs))
	for i, org := range orgs {
		results[i] = r.daoToDomain(org)
	}

	return results, nil
}

func (r *OrganizationRepository) FindByID(ctx context.Context, id uint) (domain.Organization, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Organization{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *OrganizationRepository) Update(ctx context.Context, id uint, org domain.Organization) error {
	if err := r.dao.Update(ctx, id, r.domainToDao(org)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *OrganizationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *OrganizationRepository) domainToDao(org domain.Organization) dao.Organization {
	return dao.Organization{
		ID:         org.ID,
		Name:       org.Name,
		Type:       org.Type,
		NationalID: org.NationalID,
		Country:    org.Country,
		City:       org.City,
		Address:    org.Address,
		Phone:      org.Phone,
		Website:    org.Website,
		Notes:      org.Notes,
	}
}

func (r *OrganizationRepository) daoToDomain(org dao.Organization) domain.Organization {
	return domain.Organization{
		ID:         org.ID,
		Name:       org.Name,
		Type:       org.Type,
		NationalID: org.NationalID,
		Country:    org.Country,
		City:       org.City,
		Address:    org.Address,
		Phone:      org.Phone,
		Website:    org.Website,
		Notes:      org.Notes,
		CreatedAt:  org.CreatedAt,
	}
}
