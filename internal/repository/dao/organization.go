package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var ErrOrganizationNotFound = errors.New("organization not found")

type Organization struct {
	ID         uint `gorm:"primaryKey"`
	Name       string
	Type       string
	NationalID string
	Country    string
	City       string
	Address    string
	Phone      string
	Website    string
	Notes      string

	EventCollaborations []EventOrgCollaborator `gorm:"foreignKey:OrganizationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

type OrganizationDAO struct {
	db *gorm.DB
}

func NewOrganizationDAO(db *gorm.DB) *OrganizationDAO {
	return &OrganizationDAO{
		db: db,
	}
}

func (d *OrganizationDAO) Insert(ctx context.Context, org Organization) (Organization, error) {
	result := d.db.WithContext(ctx).Create(&org)
	if result.Error != nil {
		return Organization{}, result.Error
	}

	return org, nil
}

func (d *OrganizationDAO) List(ctx context.Context) ([]Organization, error) {
	var orgs []Organization

	result := d.db.WithContext(ctx).Order("id DESC").Find(&orgs)
	if result.Error != nil {
		return nil, result.Error
	}

	return orgs, nil
}

func (d *OrganizationDAO) FindByID(ctx context.Context, id uint) (Organization, error) {
	var org Organization

	result := d.db.WithContext(ctx).First(&org, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Organization{}, ErrOrganizationNotFound
		}

		return Organization{}, result.Error
	}

	return org, nil
}

func (d *OrganizationDAO) Update(ctx context.Context, id uint, org Organization) error {
	result := d.db.WithContext(ctx).Model(&Organization{}).Where("id = ?", id).Updates(map[string]interface{}{
		"name":        org.Name,
		"type":        org.Type,
		"national_id": org.NationalID,
		"country":     org.Country,
		"city":        org.City,
		"address":     org.Address,
		"phone":       org.Phone,
		"website":     org.Website,
		"notes":       org.Notes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizationNotFound
	}

	return nil
}

func (d *OrganizationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Organization{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrganizationNotFound
	}

	return nil
}
