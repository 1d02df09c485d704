package dao

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound         = errors.New("application not found")
	ErrApplicationDocumentNotFound = errors.New("document not found")
)

type Application struct {
	ID uint `gorm:"primaryKey"`
	// Weak reference to a Person; ApplicantName is a snapshot, the client
	// copies it in when the application is filed.
	ApplicantID    uint
	ApplicantName  string
	RequestType    string
	Field          string
	SubmitYear     string
	SubmitSeason   string
	Status         string
	Score          string
	ApprovedAmount string
	Currency       string
	Notes          string

	Documents []ApplicationDocument `gorm:"foreignKey:ApplicationID;constraint:OnDelete:CASCADE"`

	CreatedAt time.Time
}

type ApplicationDocument struct {
	ID            uint `gorm:"primaryKey"`
	ApplicationID uint `gorm:"index"`
	DocumentType  string
	FileName      string
	FilePath      string
	UploadDate    time.Time `gorm:"autoCreateTime"`
}

type ApplicationDAO struct {
	db *gorm.DB
}

func NewApplicationDAO(db *gorm.DB) *ApplicationDAO {
	return &ApplicationDAO{
		db: db,
	}
}

func (d *ApplicationDAO) Insert(ctx context.Context, application Application) (Application, error) {
	result := d.db.WithContext(ctx).Create(&application)
	if result.Error != nil {
		return Application{}, result.Error
	}

	return application, nil
}

func (d *ApplicationDAO) List(ctx context.Context) ([]Application, error) {
	var applications []Application

	result := d.db.WithContext(ctx).Order("id DESC").Find(&applications)
	if result.Error != nil {
		return nil, result.Error
	}

	return applications, nil
}

func (d *ApplicationDAO) FindByID(ctx context.Context, id uint) (Application, error) {
	var application Application

	result := d.db.WithContext(ctx).First(&application, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return Application{}, ErrApplicationNotFound
		}

		return Application{}, result.Error
	}

	return application, nil
}

func (d *ApplicationDAO) Update(ctx context.Context, id uint, application Application) error {
	result := d.db.WithContext(ctx).Model(&Application{}).Where("id = ?", id).Updates(map[string]interface{}{
		"applicant_id":    application.ApplicantID,
		"applicant_name":  application.ApplicantName,
		"request_type":    application.RequestType,
		"field":           application.Field,
		"submit_year":     application.SubmitYear,
		"submit_season":   application.SubmitSeason,
		"status":          application.Status,
		"score":           application.Score,
		"approved_amount": application.ApprovedAmount,
		"currency":        application.Currency,
		"notes":           application.Notes,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

func (d *ApplicationDAO) Delete(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&Application{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}

	return nil
}

func (d *ApplicationDAO) ListDocuments(ctx context.Context, applicationID uint) ([]ApplicationDocument, error) {
	var documents []ApplicationDocument

	result := d.db.WithContext(ctx).Where("application_id = ?", applicationID).Find(&documents)
	if result.Error != nil {
		return nil, result.Error
	}

	return documents, nil
}

func (d *ApplicationDAO) InsertDocument(ctx context.Context, document ApplicationDocument) (ApplicationDocument, error) {
	result := d.db.WithContext(ctx).Create(&document)
	if result.Error != nil {
		return ApplicationDocument{}, result.Error
	}

	return document, nil
}

func (d *ApplicationDAO) FindDocumentByID(ctx context.Context, id uint) (ApplicationDocument, error) {
	var document ApplicationDocument

	result := d.db.WithContext(ctx).First(&document, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return ApplicationDocument{}, ErrApplicationDocumentNotFound
		}

		return ApplicationDocument{}, result.Error
	}

	return document, nil
}

func (d *ApplicationDAO) DeleteDocument(ctx context.Context, id uint) error {
	result := d.db.WithContext(ctx).Delete(&ApplicationDocument{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationDocumentNotFound
	}

	return nil
}
