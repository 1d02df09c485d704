package repository

import (
	"context"
	"fmt"

	"github.com/haamee/haamee-api/internal/domain"
	"github.com/haamee/haamee-api/internal/repository/dao"
)

var (
	ErrApplicationNotFound         = dao.ErrApplicationNotFound
	ErrApplicationDocumentNotFound = dao.ErrApplicationDocumentNotFound
)

type ApplicationDAO interface {
	Insert(ctx context.Context, application dao.Application) (dao.Application, error)
	List(ctx context.Context) ([]dao.Application, error)
	FindByID(ctx context.Context, id uint) (dao.Application, error)
	Update(ctx context.Context, id uint, application dao.Application) error
	Delete(ctx context.Context, id uint) error
	ListDocuments(ctx context.Context, applicationID uint) ([]dao.ApplicationDocument, error)
	InsertDocument(ctx context.Context, document dao.ApplicationDocument) (dao.ApplicationDocument, error)
	FindDocumentByID(ctx context.Context, id uint) (dao.ApplicationDocument, error)
	DeleteDocument(ctx context.Context, id uint) error
}

type ApplicationRepository struct {
	dao ApplicationDAO
}

func NewApplicationRepository(dao ApplicationDAO) *ApplicationRepository {
	return &ApplicationRepository{
		dao: dao,
	}
}

func (r *ApplicationRepository) Create(ctx context.Context, application domain.Application) (domain.Application, error) {
	created, err := r.dao.Insert(ctx, r.domainToDao(application))
	if err != nil {
		return domain.Application{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return r.daoToDomain(created), nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]domain.Application, error) {
	applications, err := r.dao.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.List -> %w", err)
	}

	results := make([]domain.Application, len(applications))
	for i, application := range applications {
		results[i] = r.daoToDomain(application)
	}

	return results, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id uint) (domain.Application, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Application{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return r.daoToDomain(found), nil
}

func (r *ApplicationRepository) Update(ctx context.Context, id uint, application domain.Application) error {
	if err := r.dao.Update(ctx, id, r.domainToDao(application)); err != nil {
		return fmt.Errorf("r.dao.Update -> %w", err)
	}

	return nil
}

func (r *ApplicationRepository) Delete(ctx context.Context, id uint) error {
	if err := r.dao.Delete(ctx, id); err != nil {
		return fmt.Errorf("r.dao.Delete -> %w", err)
	}

	return nil
}

func (r *ApplicationRepository) ListDocuments(ctx context.Context, applicationID uint) ([]domain.ApplicationDocument, error) {
	documents, err := r.dao.ListDocuments(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("r.dao.ListDocuments -> %w", err)
	}

	results := make([]domain.ApplicationDocument, len(documents))
	for i, doc := range documents {
		results[i] = r.documentDaoToDomain(doc)
	}

	return results, nil
}

func (r *ApplicationRepository) CreateDocument(ctx context.Context, document domain.ApplicationDocument) (domain.ApplicationDocument, error) {
	created, err := r.dao.InsertDocument(ctx, dao.ApplicationDocument{
		ApplicationID: document.ApplicationID,
		DocumentType:  document.DocumentType,
		FileName:      document.FileName,
		FilePath:      document.FilePath,
	})
	if err != nil {
		return domain.ApplicationDocument{}, fmt.Errorf("r.dao.InsertDocument -> %w", err)
	}

	return r.documentDaoToDomain(created), nil
}

func (r *ApplicationRepository) FindDocumentByID(ctx context.Context, id uint) (domain.ApplicationDocument, error) {
	found, err := r.dao.FindDocumentByID(ctx, id)
	if err != nil {
		return domain.ApplicationDocument{}, fmt.Errorf("r.dao.FindDocumentByID -> %w", err)
	}

	return r.documentDaoToDomain(found), nil
}

func (r *ApplicationRepository) DeleteDocument(ctx context.Context, id uint) error {
	if err := r.dao.DeleteDocument(ctx, id); err != nil {
		return fmt.Errorf("r.dao.DeleteDocument -> %w", err)
	}

	return nil
}

func (r *ApplicationRepository) domainToDao(application domain.Application) dao.Application {
	return dao.Application{
		ID:             application.ID,
		ApplicantID:    application.ApplicantID,
		ApplicantName:  application.ApplicantName,
		RequestType:    application.RequestType,
		Field:          application.Field,
		SubmitYear:     application.SubmitYear,
		SubmitSeason:   application.SubmitSeason,
		Status:         application.Status,
		Score:          application.Score,
		ApprovedAmount: application.ApprovedAmount,
		Currency:       application.Currency,
		Notes:          application.Notes,
	}
}

func (r *ApplicationRepository) daoToDomain(application dao.Application) domain.Application {
	return domain.Application{
		ID:             application.ID,
		ApplicantID:    application.ApplicantID,
		ApplicantName:  application.ApplicantName,
		RequestType:    application.RequestType,
		Field:          application.Field,
		SubmitYear:     application.SubmitYear,
		SubmitSeason:   application.SubmitSeason,
		Status:         application.Status,
		Score:          application.Score,
		ApprovedAmount: application.ApprovedAmount,
		Currency:       application.Currency,
		Notes:          application.Notes,
		CreatedAt:      application.CreatedAt,
	}
}

func (r *ApplicationRepository) documentDaoToDomain(doc dao.ApplicationDocument) domain.ApplicationDocument {
	return domain.ApplicationDocument{
		ID:            doc.ID,
		ApplicationID: doc.ApplicationID,
		DocumentType:  doc.DocumentType,
		FileName:      doc.FileName,
		FilePath:      doc.FilePath,
		UploadDate:    doc.UploadDate,
	}
}
